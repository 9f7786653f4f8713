package streamparse

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type pair struct {
	first, second int
}

func TestSplitWithSequencing(t *testing.T) {
	// S1: parse(splitWith(pair, satisfy(==1), satisfy(==2)), [1,2,3]) =
	// Ok((1,2)), leftover [3].
	p := SplitWith(
		func(a, b int) pair { return pair{a, b} },
		Satisfy(func(tok int) bool { return tok == 1 }),
		Satisfy(func(tok int) bool { return tok == 2 }),
	)
	result, leftover, err := Parse(context.Background(), p, NewSliceSource([]int{1, 2, 3}))
	require.NoError(t, err)
	assert.Equal(t, pair{1, 2}, result)
	assert.Equal(t, []int{3}, leftover)
}

func TestSplitWithPropagatesLeftError(t *testing.T) {
	p := SplitWith(
		func(a, b int) pair { return pair{a, b} },
		Satisfy(func(tok int) bool { return tok == 9 }),
		Satisfy(func(tok int) bool { return tok == 2 }),
	)
	_, _, err := Parse(context.Background(), p, NewSliceSource([]int{1, 2}))
	require.Error(t, err)
}

func TestSplitDiscardsLeftResult(t *testing.T) {
	p := Split_(
		Satisfy(func(tok int) bool { return tok == 1 }),
		Satisfy(func(tok int) bool { return tok == 2 }),
	)
	result, leftover, err := Parse(context.Background(), p, NewSliceSource([]int{1, 2, 3}))
	require.NoError(t, err)
	assert.Equal(t, 2, result)
	assert.Equal(t, []int{3}, leftover)
}
