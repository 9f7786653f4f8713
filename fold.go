package streamparse

// Fold is the non-failing accumulator collaborator SplitMany and
// SplitSome feed each successful parse into. Unlike Parser it never
// emits a driver command and is never allowed to fail — it has exactly
// the initial/step/extract shape spec.md §6 describes for the fold
// collaborator, with no error channel because the contract forbids it
// from raising.
type Fold[B, C any] struct {
	initial func() any
	step    func(state any, b B) any
	extract func(state any) C
}

// NewFold builds a Fold from a concrete, strongly-typed state S. S is
// erased to any only to let Fold live alongside Parser's own erased
// state without forcing every Fold instantiation to repeat S as a type
// parameter of SplitMany/SplitSome.
func NewFold[S, B, C any](initial func() S, step func(S, B) S, extract func(S) C) Fold[B, C] {
	return Fold[B, C]{
		initial: func() any { return initial() },
		step:    func(state any, b B) any { return step(state.(S), b) },
		extract: func(state any) C { return extract(state.(S)) },
	}
}

// ToListFold accumulates every successful result into a slice, the
// fold used by scenario S3 in spec.md §8.
func ToListFold[B any]() Fold[B, []B] {
	return NewFold(
		func() []B { return nil },
		func(acc []B, b B) []B { return append(acc, b) },
		func(acc []B) []B { return acc },
	)
}

// CountFold counts successful results, discarding their values.
func CountFold[B any]() Fold[B, int] {
	return NewFold(
		func() int { return 0 },
		func(acc int, _ B) int { return acc + 1 },
		func(acc int) int { return acc },
	)
}
