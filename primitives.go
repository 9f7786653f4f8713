package streamparse

// Yield builds a Parser that succeeds with b on the very first token
// offered to it, without consuming it. On empty input extract also
// returns b, matching property 2 in spec.md §8: parse(yield(v), xs) =
// Ok(v) for all xs, including the empty stream.
func Yield[A, B any](b B) Parser[A, B] {
	return Parser[A, B]{
		initial: func() (any, error) { return nil, nil },
		step: func(_ any, _ A) (Step[B], any, error) {
			return Stop(1, b), nil, nil
		},
		extract: func(_ any) (B, error) { return b, nil },
	}
}

// YieldM is Yield whose result is produced by running a monadic action
// inside step and extract, rather than being a pre-computed value.
func YieldM[A, B any](mb func() (B, error)) Parser[A, B] {
	return Parser[A, B]{
		initial: func() (any, error) { return nil, nil },
		step: func(_ any, _ A) (Step[B], any, error) {
			b, err := mb()
			if err != nil {
				return Step[B]{}, nil, err
			}
			return Stop(1, b), nil, nil
		},
		extract: func(_ any) (B, error) { return mb() },
	}
}

// Die builds a Parser that always fails with msg. Property 3 in
// spec.md §8: parse(die(m), xs) = Err(ParseError(m)) for every xs.
func Die[A, B any](msg string) Parser[A, B] {
	return Parser[A, B]{
		initial: func() (any, error) { return nil, nil },
		step: func(_ any, _ A) (Step[B], any, error) {
			return Error[B](msg), nil, nil
		},
		extract: func(_ any) (B, error) {
			var zero B
			return zero, ParseError{Message: msg}
		},
	}
}

// DieM is Die whose message is produced by a monadic action.
func DieM[A, B any](mMsg func() (string, error)) Parser[A, B] {
	return Parser[A, B]{
		initial: func() (any, error) { return nil, nil },
		step: func(_ any, _ A) (Step[B], any, error) {
			msg, err := mMsg()
			if err != nil {
				return Step[B]{}, nil, err
			}
			return Error[B](msg), nil, nil
		},
		extract: func(_ any) (B, error) {
			var zero B
			msg, err := mMsg()
			if err != nil {
				return zero, err
			}
			return zero, ParseError{Message: msg}
		},
	}
}
