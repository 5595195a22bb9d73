package input

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseRow parses one whitespace-separated row of n entries, each 0 or 1.
// Checks run in order: numeric tokens, entry count, binary values.
func ParseRow(line string, n int) ([]bool, error) {
	fields := strings.Fields(line)
	vals := make([]int, len(fields))
	for k, f := range fields {
		v, err := strconv.Atoi(f)
		if err != nil {
			return nil, fmt.Errorf("token %q: %w", f, ErrNotNumeric)
		}
		vals[k] = v
	}
	if len(vals) != n {
		return nil, fmt.Errorf("want %d entries, got %d: %w", n, len(vals), ErrWrongCount)
	}
	row := make([]bool, n)
	for k, v := range vals {
		switch v {
		case 0:
		case 1:
			row[k] = true
		default:
			return nil, fmt.Errorf("entry %d is %d: %w", k+1, v, ErrNotBinary)
		}
	}

	return row, nil
}
