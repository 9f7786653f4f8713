package streamparse

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEOF(t *testing.T) {
	// property 5: eof succeeds iff xs is empty.
	t.Run("empty input", func(t *testing.T) {
		_, leftover, err := Parse(context.Background(), EOF[int](), NewSliceSource[int](nil))
		require.NoError(t, err)
		assert.Empty(t, leftover)
	})

	t.Run("nonempty input", func(t *testing.T) {
		_, _, err := Parse(context.Background(), EOF[int](), NewSliceSource([]int{1}))
		require.Error(t, err)
	})
}

func TestTake(t *testing.T) {
	// property 7: parse(take n, xs) = Ok(take(n, xs)) when |xs| >= n.
	result, leftover, err := Parse(context.Background(), Take[int](2), NewSliceSource([]int{1, 2, 3}))
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2}, result)
	assert.Equal(t, []int{3}, leftover)
}

func TestTakeShortInputIsTolerant(t *testing.T) {
	result, _, err := Parse(context.Background(), Take[int](5), NewSliceSource([]int{1, 2}))
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2}, result)
}

func TestTakeEQ(t *testing.T) {
	// property 8: takeEQ n succeeds with the first n iff |xs| >= n; fails otherwise.
	t.Run("enough input", func(t *testing.T) {
		result, leftover, err := Parse(context.Background(), TakeEQ[int](2), NewSliceSource([]int{1, 2, 3}))
		require.NoError(t, err)
		assert.Equal(t, []int{1, 2}, result)
		assert.Equal(t, []int{3}, leftover)
	})

	t.Run("short input", func(t *testing.T) {
		_, _, err := Parse(context.Background(), TakeEQ[int](5), NewSliceSource([]int{1, 2}))
		require.Error(t, err)
	})
}

func TestTakeGE(t *testing.T) {
	// property 9: takeGE n succeeds with all of xs iff |xs| >= n; fails otherwise.
	t.Run("enough input", func(t *testing.T) {
		result, leftover, err := Parse(context.Background(), TakeGE[int](2), NewSliceSource([]int{1, 2, 3}))
		require.NoError(t, err)
		assert.Equal(t, []int{1, 2, 3}, result)
		assert.Empty(t, leftover)
	})

	t.Run("short input", func(t *testing.T) {
		_, _, err := Parse(context.Background(), TakeGE[int](5), NewSliceSource([]int{1, 2}))
		require.Error(t, err)
	})
}

func TestTakeWhile(t *testing.T) {
	// property 11: parse(takeWhile φ, xs) = Ok(takeWhile φ xs).
	result, leftover, err := Parse(context.Background(), TakeWhile(func(tok int) bool { return tok < 5 }), NewSliceSource([]int{1, 2, 9, 3}))
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2}, result)
	assert.Equal(t, []int{9, 3}, leftover)
}

func TestTakeWhileAcceptsEmptyResult(t *testing.T) {
	result, leftover, err := Parse(context.Background(), TakeWhile(func(tok int) bool { return tok < 5 }), NewSliceSource([]int{9}))
	require.NoError(t, err)
	assert.Empty(t, result)
	assert.Equal(t, []int{9}, leftover)
}

func TestTakeWhile1(t *testing.T) {
	// property 12: takeWhile1 succeeds iff φ(head xs); result equals takeWhile φ xs.
	t.Run("matches", func(t *testing.T) {
		result, _, err := Parse(context.Background(), TakeWhile1(func(tok int) bool { return tok < 5 }), NewSliceSource([]int{1, 2, 9}))
		require.NoError(t, err)
		assert.Equal(t, []int{1, 2}, result)
	})

	t.Run("rejects first token", func(t *testing.T) {
		_, _, err := Parse(context.Background(), TakeWhile1(func(tok int) bool { return tok < 5 }), NewSliceSource([]int{9}))
		require.Error(t, err)
	})
}

func TestLookAheadIdempotence(t *testing.T) {
	// property 10: two consecutive lookAhead(p) calls observe the same
	// value and leave the cursor where it started.
	p := SplitWith(
		func(a, b int) pair { return pair{a, b} },
		LookAhead(Satisfy(func(tok int) bool { return tok == 1 })),
		LookAhead(Satisfy(func(tok int) bool { return tok == 1 })),
	)
	result, leftover, err := Parse(context.Background(), p, NewSliceSource([]int{1, 2}))
	require.NoError(t, err)
	assert.Equal(t, pair{1, 1}, result)
	assert.Equal(t, []int{1, 2}, leftover)
}

func TestLookAheadFailurePropagates(t *testing.T) {
	p := LookAhead(Satisfy(func(tok int) bool { return tok == 9 }))
	_, _, err := Parse(context.Background(), p, NewSliceSource([]int{1}))
	require.Error(t, err)
}

func TestSliceSepBy(t *testing.T) {
	// S6: parse(sliceSepBy(==1, toListFold), [0,0,1,0]) = Ok([0,0]).
	p := SliceSepBy(func(tok int) bool { return tok == 1 }, ToListFold[int]())
	result, leftover, err := Parse(context.Background(), p, NewSliceSource([]int{0, 0, 1, 0}))
	require.NoError(t, err)
	assert.Equal(t, []int{0, 0}, result)
	assert.Equal(t, []int{0}, leftover)
}
