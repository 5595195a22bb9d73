package input

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"

	"github.com/katalvlaran/relclosure/relation"
)

// Reader collects an n×n relation row by row from an interactive session.
type Reader struct {
	sc  *bufio.Scanner
	out io.Writer
	n   int
	log *zap.Logger
}

// ReaderOption configures a Reader.
type ReaderOption func(*Reader)

// WithLogger attaches a logger that records rejected rows at debug level.
func WithLogger(l *zap.Logger) ReaderOption {
	return func(r *Reader) {
		if l != nil {
			r.log = l
		}
	}
}

// NewReader returns a Reader that prompts on out and reads lines from in.
func NewReader(in io.Reader, out io.Writer, n int, opts ...ReaderOption) *Reader {
	r := &Reader{
		sc:  bufio.NewScanner(in),
		out: out,
		n:   n,
		log: zap.NewNop(),
	}
	for _, fn := range opts {
		fn(r)
	}

	return r
}

// ReadMatrix prompts for each row until it is valid. A wrong entry count,
// a non-binary value or a non-numeric token prints an error and repeats the
// prompt for the same row. Returns ErrIncomplete if input ends early.
func (r *Reader) ReadMatrix() (*relation.Relation, error) {
	if r.n <= 0 {
		return nil, inputErrorf("ReadMatrix", ErrInvalidSize)
	}

	fmt.Fprintf(r.out, "Enter the relation matrix over A = {%s} (N=%d).\n", setLabels(r.n), r.n)
	fmt.Fprintf(r.out, "Type each row as %d values (0 or 1) separated by spaces.\n", r.n)

	rows := make([][]bool, 0, r.n)
	for i := 0; i < r.n; {
		fmt.Fprintf(r.out, "  row %d: ", i+1)
		if !r.sc.Scan() {
			if err := r.sc.Err(); err != nil {
				return nil, inputErrorf("ReadMatrix", err)
			}
			return nil, inputErrorf("ReadMatrix", ErrIncomplete)
		}

		row, err := ParseRow(r.sc.Text(), r.n)
		if err != nil {
			fmt.Fprintf(r.out, "  [error] %s\n", rowMessage(err, r.n, len(strings.Fields(r.sc.Text()))))
			r.log.Debug("row rejected", zap.Int("row", i+1), zap.Error(err))
			continue
		}
		rows = append(rows, row)
		i++
	}

	rel, err := relation.FromRows(rows)
	if err != nil {
		return nil, inputErrorf("ReadMatrix", err)
	}

	return rel, nil
}

// rowMessage turns a ParseRow error into the message shown to the user.
// got is the number of values on the rejected line.
func rowMessage(err error, n, got int) string {
	switch {
	case errors.Is(err, ErrNotNumeric):
		return "please enter numbers only."
	case errors.Is(err, ErrWrongCount):
		return fmt.Sprintf("enter exactly %d values (got %d).", n, got)
	case errors.Is(err, ErrNotBinary):
		return "only 0 or 1 is allowed."
	default:
		return err.Error()
	}
}

// setLabels renders "1, 2, ..., n".
func setLabels(n int) string {
	parts := make([]string, n)
	for i := range parts {
		parts[i] = fmt.Sprint(i + 1)
	}

	return strings.Join(parts, ", ")
}
