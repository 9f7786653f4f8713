package streamparse

// splitState is the two-state machine SplitWith runs over: Left holds
// the left parser's state, Right holds the partially-applied combining
// function together with the right parser's state. It is a tagged
// variant (the `right` flag), not an inheritance hierarchy, per
// DESIGN.md's realization of spec.md §9.
type splitState[B2, C any] struct {
	right bool
	sl    any
	g     func(B2) C
	sr    any
}

// SplitWith sequences left then right, combining their results with f.
// The left parser's intermediate Yield/YieldB are translated to Skip —
// its commits are invisible to the composite, which commits no earlier
// than the right parser's own first Yield/YieldB (forwarded unchanged)
// or its Stop. Composing a SplitWith chain under Alt therefore makes Alt
// retain the whole left span plus the right's uncommitted span; this is
// documented behavior (spec.md §9, Open Question 1), not
// a bug to work around.
//
// Each layer of SplitWith inspects every token, so a long p1 *> p2 *>
// p3 *> ... chain is O(n²) in the number of stages. There is no
// auto-flattening.
func SplitWith[A, B1, B2, C any](f func(B1, B2) C, left Parser[A, B1], right Parser[A, B2]) Parser[A, C] {
	return Parser[A, C]{
		initial: func() (any, error) {
			sl, err := left.initial()
			if err != nil {
				return nil, err
			}
			return &splitState[B2, C]{sl: sl}, nil
		},
		step: func(state any, tok A) (Step[C], any, error) {
			st := state.(*splitState[B2, C])
			if !st.right {
				ls, newSl, err := left.step(st.sl, tok)
				if err != nil {
					var zero Step[C]
					return zero, nil, err
				}
				switch ls.tag {
				case stepYield:
					return Skip[C](0), &splitState[B2, C]{sl: newSl}, nil
				case stepYieldB:
					return Skip[C](ls.n), &splitState[B2, C]{sl: newSl}, nil
				case stepSkip:
					return Skip[C](ls.n), &splitState[B2, C]{sl: newSl}, nil
				case stepStop:
					b1 := ls.b
					sr, err := right.initial()
					if err != nil {
						var zero Step[C]
						return zero, nil, err
					}
					g := func(b2 B2) C { return f(b1, b2) }
					return Skip[C](ls.n), &splitState[B2, C]{right: true, g: g, sr: sr}, nil
				default: // stepError
					return Error[C](ls.msg), nil, nil
				}
			}

			rs, newSr, err := right.step(st.sr, tok)
			if err != nil {
				var zero Step[C]
				return zero, nil, err
			}
			switch rs.tag {
			case stepStop:
				return Stop(rs.n, st.g(rs.b)), nil, nil
			case stepError:
				return Error[C](rs.msg), nil, nil
			default:
				return Step[C]{tag: rs.tag, n: rs.n}, &splitState[B2, C]{right: true, g: st.g, sr: newSr}, nil
			}
		},
		extract: func(state any) (C, error) {
			st := state.(*splitState[B2, C])
			var zero C
			if st.right {
				b2, err := right.extract(st.sr)
				if err != nil {
					return zero, err
				}
				return st.g(b2), nil
			}
			b1, err := left.extract(st.sl)
			if err != nil {
				return zero, err
			}
			sr0, err := right.initial()
			if err != nil {
				return zero, err
			}
			b2, err := right.extract(sr0)
			if err != nil {
				return zero, err
			}
			return f(b1, b2), nil
		},
	}
}

// split_State is SplitWith's slightly tighter state when the left
// result is discarded: it never needs to carry a combining closure.
type split_State struct {
	right bool
	sl    any
	sr    any
}

// Split_ is SplitWith(func(_ B1, b B2) B2 { return b }, left, right),
// specified separately because it admits that tighter state: the
// right-branch no longer needs a stashed partial application, just the
// right parser's own state.
func Split_[A, B1, B2 any](left Parser[A, B1], right Parser[A, B2]) Parser[A, B2] {
	return Parser[A, B2]{
		initial: func() (any, error) {
			sl, err := left.initial()
			if err != nil {
				return nil, err
			}
			return &split_State{sl: sl}, nil
		},
		step: func(state any, tok A) (Step[B2], any, error) {
			st := state.(*split_State)
			if !st.right {
				ls, newSl, err := left.step(st.sl, tok)
				if err != nil {
					var zero Step[B2]
					return zero, nil, err
				}
				switch ls.tag {
				case stepYield:
					return Skip[B2](0), &split_State{sl: newSl}, nil
				case stepYieldB:
					return Skip[B2](ls.n), &split_State{sl: newSl}, nil
				case stepSkip:
					return Skip[B2](ls.n), &split_State{sl: newSl}, nil
				case stepStop:
					sr, err := right.initial()
					if err != nil {
						var zero Step[B2]
						return zero, nil, err
					}
					return Skip[B2](ls.n), &split_State{right: true, sr: sr}, nil
				default:
					return Error[B2](ls.msg), nil, nil
				}
			}

			rs, newSr, err := right.step(st.sr, tok)
			if err != nil {
				var zero Step[B2]
				return zero, nil, err
			}
			if rs.tag == stepStop || rs.tag == stepError {
				return rs, nil, nil
			}
			return Step[B2]{tag: rs.tag, n: rs.n}, &split_State{right: true, sr: newSr}, nil
		},
		extract: func(state any) (B2, error) {
			st := state.(*split_State)
			var zero B2
			if st.right {
				return right.extract(st.sr)
			}
			if _, err := left.extract(st.sl); err != nil {
				return zero, err
			}
			sr0, err := right.initial()
			if err != nil {
				return zero, err
			}
			return right.extract(sr0)
		},
	}
}
