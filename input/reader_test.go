package input_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/katalvlaran/relclosure/input"
)

func TestReader_RetriesUntilValid(t *testing.T) {
	t.Parallel()

	in := strings.NewReader(strings.Join([]string{
		"0 1",     // too few
		"0 1 2",   // not binary
		"0 one 0", // not numeric
		"0 1 0",
		"0 0 0",
		"0 0 1",
	}, "\n"))
	var out bytes.Buffer
	core, logs := observer.New(zapcore.DebugLevel)

	r := input.NewReader(in, &out, 3, input.WithLogger(zap.New(core)))
	rel, err := r.ReadMatrix()
	require.NoError(t, err)
	assert.Equal(t, [][]int{{0, 1, 0}, {0, 0, 0}, {0, 0, 1}}, rel.Bits())

	text := out.String()
	assert.Contains(t, text, "A = {1, 2, 3} (N=3)")
	assert.Equal(t, 4, strings.Count(text, "row 1:"), "row 1 is asked again after each rejection")
	assert.Contains(t, text, "enter exactly 3 values (got 2).")
	assert.Contains(t, text, "only 0 or 1 is allowed")
	assert.Contains(t, text, "please enter numbers only")
	assert.Equal(t, 3, logs.FilterMessage("row rejected").Len())
}

func TestReader_Incomplete(t *testing.T) {
	t.Parallel()

	r := input.NewReader(strings.NewReader("1 0\n"), &bytes.Buffer{}, 2)
	_, err := r.ReadMatrix()
	require.ErrorIs(t, err, input.ErrIncomplete)
}

func TestReader_InvalidSize(t *testing.T) {
	t.Parallel()

	r := input.NewReader(strings.NewReader(""), &bytes.Buffer{}, 0)
	_, err := r.ReadMatrix()
	require.ErrorIs(t, err, input.ErrInvalidSize)
}
