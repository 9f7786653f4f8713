package streamparse

// bindState is ConcatMap's Left|Right machine. In Right, pPrime is the
// dynamically constructed parser and sr is its state — cached after
// the first step rather than rebuilt from pPrime's initial on every
// token. The literal spec.md §4.8 behavior re-initializes pPrime every
// step; caching is the explicitly permitted faster alternative (§9,
// "concatMap's repeated re-init"), kept here because initialR in every
// parser this package builds is pure.
type bindState[A, B2 any] struct {
	right       bool
	sl          any
	pPrime      Parser[A, B2]
	initialized bool
	sr          any
}

// ConcatMap is the monadic bind: it runs p, then builds and runs
// k(result) for the remainder of the input. k is invoked at most once:
// when p reaches its Stop, or, if the input runs out first, on the
// result of p's extract. It is not invoked when p fails.
func ConcatMap[A, B1, B2 any](k func(B1) Parser[A, B2], p Parser[A, B1]) Parser[A, B2] {
	return Parser[A, B2]{
		initial: func() (any, error) {
			sl, err := p.initial()
			if err != nil {
				return nil, err
			}
			return &bindState[A, B2]{sl: sl}, nil
		},
		step: func(state any, tok A) (Step[B2], any, error) {
			st := state.(*bindState[A, B2])
			if !st.right {
				ls, newSl, err := p.step(st.sl, tok)
				if err != nil {
					var zero Step[B2]
					return zero, nil, err
				}
				switch ls.tag {
				case stepStop:
					pPrime := k(ls.b)
					return Skip[B2](ls.n), &bindState[A, B2]{right: true, pPrime: pPrime}, nil
				case stepError:
					return Error[B2](ls.msg), nil, nil
				default:
					return Step[B2]{tag: ls.tag, n: ls.n}, &bindState[A, B2]{sl: newSl}, nil
				}
			}

			sr := st.sr
			if !st.initialized {
				var err error
				sr, err = st.pPrime.initial()
				if err != nil {
					var zero Step[B2]
					return zero, nil, err
				}
			}
			rs, newSr, err := st.pPrime.step(sr, tok)
			if err != nil {
				var zero Step[B2]
				return zero, nil, err
			}
			if rs.tag == stepStop || rs.tag == stepError {
				return rs, nil, nil
			}
			return Step[B2]{tag: rs.tag, n: rs.n}, &bindState[A, B2]{right: true, pPrime: st.pPrime, initialized: true, sr: newSr}, nil
		},
		extract: func(state any) (B2, error) {
			st := state.(*bindState[A, B2])
			var zero B2
			if st.right {
				sr := st.sr
				if !st.initialized {
					var err error
					sr, err = st.pPrime.initial()
					if err != nil {
						return zero, err
					}
				}
				return st.pPrime.extract(sr)
			}
			b1, err := p.extract(st.sl)
			if err != nil {
				return zero, err
			}
			pPrime := k(b1)
			sr0, err := pPrime.initial()
			if err != nil {
				return zero, err
			}
			return pPrime.extract(sr0)
		},
	}
}
