package streamparse

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConcatMapSequencesDynamically(t *testing.T) {
	// p reads a length, k builds a parser that reads exactly that many
	// more tokens — a minimal "length-prefixed record" bind use.
	p := ConcatMap(func(n int) Parser[int, []int] {
		return Take[int](n)
	}, Satisfy(func(tok int) bool { return tok >= 0 }))

	result, leftover, err := Parse(context.Background(), p, NewSliceSource([]int{2, 10, 20, 30}))
	require.NoError(t, err)
	assert.Equal(t, []int{10, 20}, result)
	assert.Equal(t, []int{30}, leftover)
}

func TestConcatMapPropagatesLeftError(t *testing.T) {
	p := ConcatMap(func(n int) Parser[int, []int] {
		return Take[int](n)
	}, Satisfy(func(tok int) bool { return tok < 0 }))

	_, _, err := Parse(context.Background(), p, NewSliceSource([]int{2, 10}))
	require.Error(t, err)
}

func TestConcatMapPropagatesRightError(t *testing.T) {
	p := ConcatMap(func(n int) Parser[int, int] {
		return Die[int, int]("right always fails")
	}, Satisfy(func(tok int) bool { return tok >= 0 }))

	_, _, err := Parse(context.Background(), p, NewSliceSource([]int{1, 2}))
	require.Error(t, err)
}

func TestBindAssociativity(t *testing.T) {
	// property 15: (p >>= f) >>= g ≡ p >>= (λx → f x >>= g), observationally.
	p := Satisfy(func(tok int) bool { return tok >= 0 })
	f := func(n int) Parser[int, int] { return Yield[int, int](n + 1) }
	g := func(n int) Parser[int, int] { return Yield[int, int](n * 2) }

	left := ConcatMap(g, ConcatMap(f, p))
	right := ConcatMap(func(x int) Parser[int, int] {
		return ConcatMap(g, f(x))
	}, p)

	r1, l1, err1 := Parse(context.Background(), left, NewSliceSource([]int{5, 9}))
	require.NoError(t, err1)
	r2, l2, err2 := Parse(context.Background(), right, NewSliceSource([]int{5, 9}))
	require.NoError(t, err2)
	assert.Equal(t, r1, r2)
	assert.Equal(t, l1, l2)
}
