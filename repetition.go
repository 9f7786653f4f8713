package streamparse

// repeatState is the (parser_state, uncommitted_count, fold_state)
// triple spec.md §4.7 describes, plus gotOne distinguishing, for
// SplitSome, "before the first success" from "at least one success" —
// the two states whose Error branches differ.
type repeatState struct {
	ps     any
	cnt    int
	fs     any
	gotOne bool
}

func buildRepeat[A, B, C any](fold Fold[B, C], p Parser[A, B], requireOne bool) Parser[A, C] {
	return Parser[A, C]{
		initial: func() (any, error) {
			ps, err := p.initial()
			if err != nil {
				return nil, err
			}
			return &repeatState{ps: ps, fs: fold.initial()}, nil
		},
		step: func(state any, tok A) (Step[C], any, error) {
			st := state.(*repeatState)
			rs, newPs, err := p.step(st.ps, tok)
			if err != nil {
				var zero Step[C]
				return zero, nil, err
			}
			switch rs.tag {
			case stepYield:
				return Skip[C](0), &repeatState{ps: newPs, cnt: st.cnt + 1, fs: st.fs, gotOne: st.gotOne}, nil
			case stepYieldB:
				newCnt := st.cnt + 1 - rs.n
				if newCnt < 0 {
					panic(invariantViolation{"SplitMany/SplitSome: YieldB rewound past the start of the iteration"})
				}
				return Skip[C](rs.n), &repeatState{ps: newPs, cnt: newCnt, fs: st.fs, gotOne: st.gotOne}, nil
			case stepSkip:
				newCnt := st.cnt + 1 - rs.n
				if newCnt < 0 {
					panic(invariantViolation{"SplitMany/SplitSome: Skip rewound past the start of the iteration"})
				}
				return Skip[C](rs.n), &repeatState{ps: newPs, cnt: newCnt, fs: st.fs, gotOne: st.gotOne}, nil
			case stepStop:
				newFs := fold.step(st.fs, rs.b)
				freshPs, err := p.initial()
				if err != nil {
					var zero Step[C]
					return zero, nil, err
				}
				return YieldB[C](rs.n), &repeatState{ps: freshPs, fs: newFs, gotOne: true}, nil
			default: // stepError
				if requireOne && !st.gotOne {
					return Error[C](rs.msg), nil, nil
				}
				return Stop(st.cnt+1, fold.extract(st.fs)), nil, nil
			}
		},
		extract: func(state any) (C, error) {
			st := state.(*repeatState)
			b, err := p.extract(st.ps)
			if err != nil {
				if requireOne && !st.gotOne {
					var zero C
					return zero, err
				}
				// Tolerant of a partial last iteration: the fold is
				// finalized with whatever it has accumulated so far,
				// per spec.md §4.7's extract-on-exhaustion rule.
				return fold.extract(st.fs), nil
			}
			return fold.extract(fold.step(st.fs, b)), nil
		},
	}
}

// SplitMany runs p zero or more times, feeding every success into
// fold. On the first failure — even with zero prior successes — the
// fold is finalized and returned as a Stop, never an Error.
func SplitMany[A, B, C any](fold Fold[B, C], p Parser[A, B]) Parser[A, C] {
	return buildRepeat(fold, p, false)
}

// SplitSome is SplitMany but requires at least one success: an Error
// from p before any iteration has completed propagates as Error rather
// than finalizing an empty fold. Running out of input before the first
// success likewise fails, with the error p's extract returns.
func SplitSome[A, B, C any](fold Fold[B, C], p Parser[A, B]) Parser[A, C] {
	return buildRepeat(fold, p, true)
}
