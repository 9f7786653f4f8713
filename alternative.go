package streamparse

// altState is Alt's two-state machine: AltL tracks the left parser's
// state along with cnt, the number of tokens consumed since entering
// the combinator (minus rewinds); AltR holds only the right parser's
// state, since once the left has failed there is nothing left to
// rewind to.
type altState struct {
	right bool
	cnt   int
	sl    any
	sr    any
}

// Alt tries left; on an in-band Error it replays every token left
// consumed (including the failing one) into right. Once left commits
// via Yield/YieldB, cnt resets to zero — a later failure is no longer
// possible for this alternative, so there is nothing left to bound.
//
// While in AltL before any commit, the caller (the Driver) must retain
// all cnt uncommitted tokens so they can be replayed into right; Alt
// relies on the "no Error after Yield" invariant to keep that buffer
// bounded.
func Alt[A, B any](left, right Parser[A, B]) Parser[A, B] {
	return Parser[A, B]{
		initial: func() (any, error) {
			sl, err := left.initial()
			if err != nil {
				return nil, err
			}
			return &altState{sl: sl}, nil
		},
		step: func(state any, tok A) (Step[B], any, error) {
			st := state.(*altState)
			if !st.right {
				ls, newSl, err := left.step(st.sl, tok)
				if err != nil {
					var zero Step[B]
					return zero, nil, err
				}
				switch ls.tag {
				case stepYield:
					return yieldStep[B](ls.n), &altState{sl: newSl}, nil
				case stepYieldB:
					return YieldB[B](ls.n), &altState{sl: newSl}, nil
				case stepSkip:
					newCnt := st.cnt + 1 - ls.n
					if newCnt < 0 {
						panic(invariantViolation{"Alt: left parser rewound past the start of the alternative"})
					}
					return Skip[B](ls.n), &altState{cnt: newCnt, sl: newSl}, nil
				case stepStop:
					return Stop(ls.n, ls.b), nil, nil
				default: // stepError
					sr, err := right.initial()
					if err != nil {
						var zero Step[B]
						return zero, nil, err
					}
					return Skip[B](st.cnt + 1), &altState{right: true, sr: sr}, nil
				}
			}

			rs, newSr, err := right.step(st.sr, tok)
			if err != nil {
				var zero Step[B]
				return zero, nil, err
			}
			if rs.tag == stepStop || rs.tag == stepError {
				return rs, nil, nil
			}
			return Step[B]{tag: rs.tag, n: rs.n}, &altState{right: true, sr: newSr}, nil
		},
		extract: func(state any) (B, error) {
			st := state.(*altState)
			if st.right {
				return right.extract(st.sr)
			}
			return left.extract(st.sl)
		},
	}
}
