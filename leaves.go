package streamparse

import "fmt"

// This file holds the handful of concrete leaf parsers spec.md §1
// allows inside the otherwise out-of-scope "concrete leaf parsers"
// category, purely to illustrate the driver protocol end to end. A
// production leaf-parser library (character classes, numeric literals,
// delimited records, ...) is an external collaborator.

// Satisfy succeeds with the current token if pred accepts it,
// consuming it. It fails on a rejecting token or on end of input.
func Satisfy[A any](pred func(A) bool) Parser[A, A] {
	return Parser[A, A]{
		initial: func() (any, error) { return nil, nil },
		step: func(_ any, tok A) (Step[A], any, error) {
			if pred(tok) {
				return Stop(0, tok), nil, nil
			}
			return Error[A](fmt.Sprintf("satisfy: unexpected token %v", tok)), nil, nil
		},
		extract: func(_ any) (A, error) {
			var zero A
			return zero, ParseError{Message: "satisfy: unexpected end of input"}
		},
	}
}

// Peek returns the current token without consuming it — after
// Parse(Peek[A](), xs) the leftover equals xs (spec.md §8 property 4).
func Peek[A any]() Parser[A, A] {
	return Parser[A, A]{
		initial: func() (any, error) { return nil, nil },
		step: func(_ any, tok A) (Step[A], any, error) {
			return Stop(1, tok), nil, nil
		},
		extract: func(_ any) (A, error) {
			var zero A
			return zero, ParseError{Message: "peek: unexpected end of input"}
		},
	}
}

// EOF succeeds iff the input is exhausted (spec.md §8 property 5).
func EOF[A any]() Parser[A, struct{}] {
	return Parser[A, struct{}]{
		initial: func() (any, error) { return nil, nil },
		step: func(_ any, tok A) (Step[struct{}], any, error) {
			return Error[struct{}](fmt.Sprintf("eof: unexpected token %v", tok)), nil, nil
		},
		extract: func(_ any) (struct{}, error) { return struct{}{}, nil },
	}
}

type takeState[A any] struct {
	acc []A
}

// Take collects the next n tokens. If input is exhausted early, it
// succeeds with whatever was collected — the short-input behavior the
// spec leaves implementation-defined (spec.md §8 property 7); see
// DESIGN.md.
func Take[A any](n int) Parser[A, []A] {
	return Parser[A, []A]{
		initial: func() (any, error) { return &takeState[A]{}, nil },
		step: func(state any, tok A) (Step[[]A], any, error) {
			st := state.(*takeState[A])
			st.acc = append(st.acc, tok)
			if len(st.acc) >= n {
				return Stop(0, st.acc), nil, nil
			}
			return Skip[[]A](0), st, nil
		},
		extract: func(state any) ([]A, error) {
			return state.(*takeState[A]).acc, nil
		},
	}
}

// TakeEQ collects exactly n tokens, failing if fewer are available
// (spec.md §8 property 8).
func TakeEQ[A any](n int) Parser[A, []A] {
	return Parser[A, []A]{
		initial: func() (any, error) { return &takeState[A]{}, nil },
		step: func(state any, tok A) (Step[[]A], any, error) {
			st := state.(*takeState[A])
			st.acc = append(st.acc, tok)
			if len(st.acc) >= n {
				return Stop(0, st.acc), nil, nil
			}
			return Skip[[]A](0), st, nil
		},
		extract: func(state any) ([]A, error) {
			st := state.(*takeState[A])
			return nil, ParseError{Message: fmt.Sprintf("takeEQ: expected %d tokens, got %d", n, len(st.acc))}
		},
	}
}

// TakeGE consumes the rest of the input and succeeds with all of it
// iff at least n tokens were available (spec.md §8 property 9).
func TakeGE[A any](n int) Parser[A, []A] {
	return Parser[A, []A]{
		initial: func() (any, error) { return &takeState[A]{}, nil },
		step: func(state any, tok A) (Step[[]A], any, error) {
			st := state.(*takeState[A])
			st.acc = append(st.acc, tok)
			return Skip[[]A](0), st, nil
		},
		extract: func(state any) ([]A, error) {
			st := state.(*takeState[A])
			if len(st.acc) < n {
				return nil, ParseError{Message: fmt.Sprintf("takeGE: expected at least %d tokens, got %d", n, len(st.acc))}
			}
			return st.acc, nil
		},
	}
}

// TakeWhile collects tokens while pred holds, stopping (without
// consuming the rejecting token) the first time it doesn't, or on
// exhaustion. It always succeeds, possibly with an empty slice
// (spec.md §8 property 11).
func TakeWhile[A any](pred func(A) bool) Parser[A, []A] {
	return Parser[A, []A]{
		initial: func() (any, error) { return &takeState[A]{}, nil },
		step: func(state any, tok A) (Step[[]A], any, error) {
			st := state.(*takeState[A])
			if !pred(tok) {
				return Stop(1, st.acc), nil, nil
			}
			st.acc = append(st.acc, tok)
			return Skip[[]A](0), st, nil
		},
		extract: func(state any) ([]A, error) {
			return state.(*takeState[A]).acc, nil
		},
	}
}

// TakeWhile1 is TakeWhile but requires at least one matching token
// (spec.md §8 property 12).
func TakeWhile1[A any](pred func(A) bool) Parser[A, []A] {
	return Parser[A, []A]{
		initial: func() (any, error) { return &takeState[A]{}, nil },
		step: func(state any, tok A) (Step[[]A], any, error) {
			st := state.(*takeState[A])
			if !pred(tok) {
				if len(st.acc) == 0 {
					return Error[[]A](fmt.Sprintf("takeWhile1: rejected first token %v", tok)), nil, nil
				}
				return Stop(1, st.acc), nil, nil
			}
			st.acc = append(st.acc, tok)
			return Skip[[]A](0), st, nil
		},
		extract: func(state any) ([]A, error) {
			st := state.(*takeState[A])
			if len(st.acc) == 0 {
				return nil, ParseError{Message: "takeWhile1: unexpected end of input"}
			}
			return st.acc, nil
		},
	}
}

// lookAheadState tracks net tokens consumed since entering LookAhead,
// the same "distance since last commit" bookkeeping Alt uses for cnt —
// every commit p makes internally is swallowed (translated to a
// non-committing Skip) because LookAhead must never let anything
// escape as a commit to the enclosing driver.
type lookAheadState struct {
	cnt int
	sp  any
}

// LookAhead runs p and returns its result without consuming any input:
// two consecutive LookAhead(p) calls observe the same value and leave
// the cursor where it started (spec.md §8 property 10).
func LookAhead[A, B any](p Parser[A, B]) Parser[A, B] {
	return Parser[A, B]{
		initial: func() (any, error) {
			sp, err := p.initial()
			if err != nil {
				return nil, err
			}
			return &lookAheadState{sp: sp}, nil
		},
		step: func(state any, tok A) (Step[B], any, error) {
			st := state.(*lookAheadState)
			rs, newSp, err := p.step(st.sp, tok)
			if err != nil {
				var zero Step[B]
				return zero, nil, err
			}
			fed := st.cnt + 1
			switch rs.tag {
			case stepYield, stepYieldB:
				return Skip[B](0), &lookAheadState{cnt: fed, sp: newSp}, nil
			case stepSkip:
				newCnt := fed - rs.n
				if newCnt < 0 {
					panic(invariantViolation{"LookAhead: inner parser rewound past its own start"})
				}
				return Skip[B](rs.n), &lookAheadState{cnt: newCnt, sp: newSp}, nil
			case stepStop:
				return Stop(fed, rs.b), nil, nil
			default: // stepError
				return Error[B](rs.msg), nil, nil
			}
		},
		extract: func(state any) (B, error) {
			return p.extract(state.(*lookAheadState).sp)
		},
	}
}

type sliceSepByState[C any] struct {
	fs any
}

// SliceSepBy accumulates tokens into fold until sep matches, consumes
// the separator, and commits — scenario S6 in spec.md §8. On
// exhaustion before a separator is seen, it succeeds with whatever was
// accumulated, matching the tolerant-on-short-input stance Take and
// TakeWhile take (an implementation choice; see DESIGN.md).
func SliceSepBy[A any, C any](sep func(A) bool, fold Fold[A, C]) Parser[A, C] {
	return Parser[A, C]{
		initial: func() (any, error) { return &sliceSepByState[C]{fs: fold.initial()}, nil },
		step: func(state any, tok A) (Step[C], any, error) {
			st := state.(*sliceSepByState[C])
			if sep(tok) {
				return Stop(0, fold.extract(st.fs)), nil, nil
			}
			return Skip[C](0), &sliceSepByState[C]{fs: fold.step(st.fs, tok)}, nil
		},
		extract: func(state any) (C, error) {
			st := state.(*sliceSepByState[C])
			return fold.extract(st.fs), nil
		},
	}
}
