package streamparse

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseYield(t *testing.T) {
	// spec.md §8 property 2: parse(yield(v), xs) = Ok(v) for all xs.
	tests := []struct {
		name  string
		input []int
	}{
		{"empty input", nil},
		{"nonempty input", []int{1, 2, 3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, leftover, err := Parse(context.Background(), Yield[int, string]("ok"), NewSliceSource(tt.input))
			require.NoError(t, err)
			assert.Equal(t, "ok", result)
			assert.Equal(t, tt.input, leftover)
		})
	}
}

func TestParseDie(t *testing.T) {
	// spec.md §8 property 3: parse(die(m), xs) = Err(ParseError(m)) for every xs.
	_, _, err := Parse(context.Background(), Die[int, string]("boom"), NewSliceSource([]int{1, 2, 3}))
	require.Error(t, err)
	var pe ParseError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, "boom", pe.Message)
}

func TestParseSatisfyLeftover(t *testing.T) {
	p := Satisfy(func(tok int) bool { return tok == 1 })
	result, leftover, err := Parse(context.Background(), p, NewSliceSource([]int{1, 2, 3}))
	require.NoError(t, err)
	assert.Equal(t, 1, result)
	assert.Equal(t, []int{2, 3}, leftover)
}

func TestParsePeekLeavesWholeInputAsLeftover(t *testing.T) {
	// spec.md §8 property 4: after parse(peek, xs) the leftover equals xs.
	xs := []int{1, 2, 3}
	result, leftover, err := Parse(context.Background(), Peek[int](), NewSliceSource(xs))
	require.NoError(t, err)
	assert.Equal(t, 1, result)
	assert.Equal(t, xs, leftover)
}

func TestParseSatisfyRejects(t *testing.T) {
	p := Satisfy(func(tok int) bool { return tok == 99 })
	_, _, err := Parse(context.Background(), p, NewSliceSource([]int{1}))
	require.Error(t, err)
}

func TestParseContextCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, _, err := Parse(ctx, Yield[int, string]("ok"), NewSliceSource([]int{1}))
	require.Error(t, err)
}

type recordingLogger struct {
	lines []string
}

func (r *recordingLogger) Logf(format string, args ...any) {
	r.lines = append(r.lines, format)
}

func TestParseWithLogger(t *testing.T) {
	logger := &recordingLogger{}
	p := Satisfy(func(tok int) bool { return tok == 1 })
	_, _, err := Parse(context.Background(), p, NewSliceSource([]int{1}), WithLogger(logger))
	require.NoError(t, err)
	assert.NotEmpty(t, logger.lines)
}
