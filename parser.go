// Package streamparse implements the core of a streaming, backtracking
// parser combinator library: parsers are direct-style fold functions
// whose steps emit driver commands (Step) that a single Driver
// interprets against a backtrack buffer. See the package-level
// combinators Map, Yield, Die, SplitWith, Alt, SplitMany, SplitSome and
// ConcatMap.
package streamparse

// Parser is the existentially-stated triple (initial, step, extract)
// described by the driver protocol. Its internal state type is erased
// to any at construction time — every combinator that builds a Parser
// captures its own concrete state in the three closures and never lets
// that type escape, which is the Go realization of the "hidden state"
// invariant (see DESIGN.md, the parser.go entry).
type Parser[A, B any] struct {
	initial func() (any, error)
	step    func(state any, tok A) (Step[B], any, error)
	extract func(state any) (B, error)
}

// Map applies f to the result of p, leaving every Step's tag and n
// offsets untouched.
func Map[A, B, C any](f func(B) C, p Parser[A, B]) Parser[A, C] {
	return Parser[A, C]{
		initial: p.initial,
		step: func(state any, tok A) (Step[C], any, error) {
			s, st, err := p.step(state, tok)
			return mapStep(s, f), st, err
		},
		extract: func(state any) (C, error) {
			b, err := p.extract(state)
			var zero C
			if err != nil {
				return zero, err
			}
			return f(b), nil
		},
	}
}
