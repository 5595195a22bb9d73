package input_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/relclosure/input"
)

func TestParseRow(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		line    string
		n       int
		want    []bool
		wantErr error
	}{
		{name: "valid", line: "0 1 1", n: 3, want: []bool{false, true, true}},
		{name: "extra spaces", line: "  1\t0  ", n: 2, want: []bool{true, false}},
		{name: "too few", line: "0 1", n: 3, wantErr: input.ErrWrongCount},
		{name: "too many", line: "0 1 0 1", n: 3, wantErr: input.ErrWrongCount},
		{name: "empty", line: "", n: 2, wantErr: input.ErrWrongCount},
		{name: "not binary", line: "0 2", n: 2, wantErr: input.ErrNotBinary},
		{name: "negative", line: "-1 0", n: 2, wantErr: input.ErrNotBinary},
		{name: "not numeric", line: "0 x", n: 2, wantErr: input.ErrNotNumeric},
		{name: "numeric check first", line: "a", n: 2, wantErr: input.ErrNotNumeric},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got, err := input.ParseRow(tc.line, tc.n)
			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}
