// Package producer implements the resumable generator abstraction
// spec.md §4.9 describes: a Producer is a (inject, step, extract)
// triple over a hidden seed state, the mirror image of package
// streamparse's Parser triple but driving output instead of consuming
// input. Its state is erased to any for the same reason Parser's is —
// see streamparse.Parser's doc comment.
package producer

import (
	"context"

	"github.com/go-streamparse/streamparse"
)

type producerTag int

const (
	producerYield producerTag = iota
	producerSkip
	producerStop
)

// ProducerStep is the three-command alphabet a Producer's step function
// emits: Yield hands back a value and continues, Skip continues without
// a value (the generator equivalent of Parser's Skip), Stop ends the
// generator, optionally surrendering a residual seed of type A so an
// enclosing combinator (Cross, Concat) can resume or report it onward.
type ProducerStep[A, B any] struct {
	tag         producerTag
	b           B
	residual    A
	hasResidual bool
}

// PYield continues the generator with a produced value.
func PYield[A, B any](b B) ProducerStep[A, B] {
	return ProducerStep[A, B]{tag: producerYield, b: b}
}

// PSkip continues the generator without producing a value this step.
func PSkip[A, B any]() ProducerStep[A, B] {
	return ProducerStep[A, B]{tag: producerSkip}
}

// PStopNone ends the generator with no residual seed to surrender.
func PStopNone[A, B any]() ProducerStep[A, B] {
	return ProducerStep[A, B]{tag: producerStop}
}

// PStopSome ends the generator, surrendering a as the residual seed.
func PStopSome[A, B any](a A) ProducerStep[A, B] {
	return ProducerStep[A, B]{tag: producerStop, residual: a, hasResidual: true}
}

// Producer is the existential (inject, step, extract) triple: inject
// turns a seed of type A into hidden state, step advances that state
// and possibly yields a B, and extract lets a paused producer surrender
// its current seed back to the caller (Maybe A, realized as (A, bool)).
type Producer[A, B any] struct {
	inject  func(a A) (any, error)
	step    func(state any) (ProducerStep[A, B], any, error)
	extract func(state any) (A, bool, error)
}

// unfoldTag is Unfold's two-command alphabet — the extract-less
// generator Simplify produces, matching spec.md §4.9's "discard
// extract, yielding a plain unfold (mapping Stop _ -> end)".
type unfoldTag int

const (
	unfoldYield unfoldTag = iota
	unfoldSkip
	unfoldStop
)

// UnfoldStep is Unfold's step alphabet: Yield/Skip mirror Producer's,
// Stop carries no residual since Unfold has no extract to surrender one
// through.
type UnfoldStep[B any] struct {
	tag unfoldTag
	b   B
}

func uYield[B any](b B) UnfoldStep[B] { return UnfoldStep[B]{tag: unfoldYield, b: b} }
func uSkip[B any]() UnfoldStep[B]     { return UnfoldStep[B]{tag: unfoldSkip} }
func uStop[B any]() UnfoldStep[B]     { return UnfoldStep[B]{tag: unfoldStop} }

// Unfold is a Producer with extract discarded.
type Unfold[A, B any] struct {
	inject func(a A) (any, error)
	step   func(state any) (UnfoldStep[B], any, error)
}

// Simplify discards a Producer's extract, yielding a plain Unfold —
// spec.md §4.9: "simplify: discard extract, yielding a plain unfold
// (mapping Stop _ -> end)".
func Simplify[A, B any](p Producer[A, B]) Unfold[A, B] {
	return Unfold[A, B]{
		inject: p.inject,
		step: func(state any) (UnfoldStep[B], any, error) {
			s, newState, err := p.step(state)
			if err != nil {
				return UnfoldStep[B]{}, nil, err
			}
			switch s.tag {
			case producerYield:
				return uYield(s.b), newState, nil
			case producerSkip:
				return uSkip[B](), newState, nil
			default: // producerStop
				return uStop[B](), nil, nil
			}
		},
	}
}

// DriveToSlice runs u to exhaustion, collecting every yielded value —
// the harness a Simplify-then-drive test fixture uses, and the one
// described informally by spec.md §8 scenario S5 ("unfolded on ...").
func DriveToSlice[A, B any](u Unfold[A, B], seed A) ([]B, error) {
	state, err := u.inject(seed)
	if err != nil {
		return nil, err
	}
	var out []B
	for {
		s, newState, err := u.step(state)
		if err != nil {
			return nil, err
		}
		switch s.tag {
		case unfoldYield:
			out = append(out, s.b)
			state = newState
		case unfoldSkip:
			state = newState
		default: // unfoldStop
			return out, nil
		}
	}
}

// FromList seeds a Producer from a slice: the seed is the list itself,
// step pops the head each call, and extract surrenders whatever of the
// list remains unconsumed.
func FromList[B any]() Producer[[]B, B] {
	return Producer[[]B, B]{
		inject: func(a []B) (any, error) { return a, nil },
		step: func(state any) (ProducerStep[[]B, B], any, error) {
			lst := state.([]B)
			if len(lst) == 0 {
				return PStopNone[[]B, B](), nil, nil
			}
			head, tail := lst[0], lst[1:]
			return PYield[[]B, B](head), tail, nil
		},
		extract: func(state any) ([]B, bool, error) {
			return state.([]B), true, nil
		},
	}
}

// FromStreamD embeds an external streamparse.Source as a Producer. The
// seed is the context used to drive Next; extract always surrenders it
// unchanged, since a Source has no functional snapshot of its own
// position to hand back.
func FromStreamD[B any](src streamparse.Source[B]) Producer[context.Context, B] {
	return Producer[context.Context, B]{
		inject: func(ctx context.Context) (any, error) { return ctx, nil },
		step: func(state any) (ProducerStep[context.Context, B], any, error) {
			ctx := state.(context.Context)
			tok, ok, err := src.Next(ctx)
			if err != nil {
				return ProducerStep[context.Context, B]{}, nil, err
			}
			if !ok {
				return PStopNone[context.Context, B](), nil, nil
			}
			return PYield[context.Context, B](tok), ctx, nil
		},
		extract: func(state any) (context.Context, bool, error) {
			return state.(context.Context), true, nil
		},
	}
}

// UnfoldrM is the standard monadic generator from a -> M (Maybe (b, a)):
// f returns the next value and seed, or ok=false when the generator is
// done. On ok=false the residual seed reported is None: "done" means no
// further work remains, not "pause here".
func UnfoldrM[A, B any](f func(a A) (b B, next A, ok bool, err error)) Producer[A, B] {
	return Producer[A, B]{
		inject: func(a A) (any, error) { return a, nil },
		step: func(state any) (ProducerStep[A, B], any, error) {
			a := state.(A)
			b, next, ok, err := f(a)
			if err != nil {
				return ProducerStep[A, B]{}, nil, err
			}
			if !ok {
				return PStopNone[A, B](), nil, nil
			}
			return PYield[A, B](b), next, nil
		},
		extract: func(state any) (A, bool, error) {
			return state.(A), true, nil
		},
	}
}

// Translate bijectively changes a Producer's seed type via a forward
// map f and its inverse g, so extract can still surrender a seed in the
// new type.
func Translate[A, A2, B any](f func(A) A2, g func(A2) A, p Producer[A, B]) Producer[A2, B] {
	return Producer[A2, B]{
		inject: func(a2 A2) (any, error) { return p.inject(g(a2)) },
		step: func(state any) (ProducerStep[A2, B], any, error) {
			s, newState, err := p.step(state)
			if err != nil {
				return ProducerStep[A2, B]{}, nil, err
			}
			switch s.tag {
			case producerYield:
				return PYield[A2, B](s.b), newState, nil
			case producerSkip:
				return PSkip[A2, B](), newState, nil
			default: // producerStop
				if s.hasResidual {
					return PStopSome[A2, B](f(s.residual)), nil, nil
				}
				return PStopNone[A2, B](), nil, nil
			}
		},
		extract: func(state any) (A2, bool, error) {
			var zero A2
			a, ok, err := p.extract(state)
			if err != nil || !ok {
				return zero, ok, err
			}
			return f(a), true, nil
		},
	}
}

// Lmap pre-transforms the seed with a one-directional map. Unlike
// Translate it has no inverse, so a paused Lmap-wrapped producer cannot
// honestly surrender a seed of the new type back; extract always
// reports None. Callers that need resumability should use Translate
// with a real bijection instead.
func Lmap[A2, A, B any](f func(A2) A, p Producer[A, B]) Producer[A2, B] {
	return Producer[A2, B]{
		inject: func(a2 A2) (any, error) { return p.inject(f(a2)) },
		step: func(state any) (ProducerStep[A2, B], any, error) {
			s, newState, err := p.step(state)
			if err != nil {
				return ProducerStep[A2, B]{}, nil, err
			}
			switch s.tag {
			case producerYield:
				return PYield[A2, B](s.b), newState, nil
			case producerSkip:
				return PSkip[A2, B](), newState, nil
			default: // producerStop: residual of type A cannot be
				// translated back to A2 without an inverse (see Lmap's
				// doc comment and extract below), so it is dropped.
				return PStopNone[A2, B](), nil, nil
			}
		},
		extract: func(_ any) (A2, bool, error) {
			var zero A2
			return zero, false, nil
		},
	}
}

// PMap post-transforms every value a Producer yields. Named PMap, not
// Map, to avoid colliding with streamparse.Map's combinator name the
// way package streamparse's own Yield/yieldStep split had to be
// resolved (see DESIGN.md).
func PMap[A, B, B2 any](f func(B) B2, p Producer[A, B]) Producer[A, B2] {
	return Producer[A, B2]{
		inject: p.inject,
		step: func(state any) (ProducerStep[A, B2], any, error) {
			s, newState, err := p.step(state)
			if err != nil {
				return ProducerStep[A, B2]{}, nil, err
			}
			switch s.tag {
			case producerYield:
				return PYield[A, B2](f(s.b)), newState, nil
			case producerSkip:
				return PSkip[A, B2](), newState, nil
			default: // producerStop
				if s.hasResidual {
					return PStopSome[A, B2](s.residual), nil, nil
				}
				return PStopNone[A, B2](), nil, nil
			}
		},
		extract: p.extract,
	}
}

// Pair is Cross's yielded element: one value from the outer producer
// paired with one from the inner.
type Pair[B, C any] struct {
	First  B
	Second C
}

type crossState[B, C any] struct {
	inner      bool
	outerState any
	b          B
	innerState any
}

// Cross pulls exactly one value b from the outer producer p, surrenders
// the remainder of p's seed via extract, and re-seeds the inner
// producer q from that remainder — zipping b against every value q
// yields. Once q stops, Cross itself stops, reporting the (re-entered)
// outer extract as its own residual seed: a single Cross invocation
// produces one "row" of the cross product, not the full cartesian
// product over every outer value (spec.md §8 scenario S5: cross of
// fromList over [1,2,3,4] yields exactly [(1,2),(1,3),(1,4)], the first
// element paired with the rest — not all twelve ordered pairs). A
// caller wanting every row re-injects Cross with the residual seed
// Cross's own Stop reports.
//
// If the outer's extract returns None right after a Yield — spec.md §9
// Open Question 2 — Cross stops cleanly rather than raising an error;
// see DESIGN.md for why the non-error reading was chosen.
func Cross[A, B, C any](p Producer[A, B], q Producer[A, C]) Producer[A, Pair[B, C]] {
	advanceInner := func(outerState any, b B, innerState any) (ProducerStep[A, Pair[B, C]], any, error) {
		qs, newIs, err := q.step(innerState)
		if err != nil {
			return ProducerStep[A, Pair[B, C]]{}, nil, err
		}
		switch qs.tag {
		case producerYield:
			pair := Pair[B, C]{First: b, Second: qs.b}
			return PYield[A, Pair[B, C]](pair), &crossState[B, C]{inner: true, outerState: outerState, b: b, innerState: newIs}, nil
		case producerSkip:
			return PSkip[A, Pair[B, C]](), &crossState[B, C]{inner: true, outerState: outerState, b: b, innerState: newIs}, nil
		default: // producerStop
			a, ok, err := p.extract(outerState)
			if err != nil {
				return ProducerStep[A, Pair[B, C]]{}, nil, err
			}
			if !ok {
				return PStopNone[A, Pair[B, C]](), nil, nil
			}
			return PStopSome[A, Pair[B, C]](a), nil, nil
		}
	}

	return Producer[A, Pair[B, C]]{
		inject: func(a A) (any, error) {
			os, err := p.inject(a)
			if err != nil {
				return nil, err
			}
			return &crossState[B, C]{outerState: os}, nil
		},
		step: func(state any) (ProducerStep[A, Pair[B, C]], any, error) {
			st := state.(*crossState[B, C])
			if st.inner {
				return advanceInner(st.outerState, st.b, st.innerState)
			}

			ps, newOs, err := p.step(st.outerState)
			if err != nil {
				return ProducerStep[A, Pair[B, C]]{}, nil, err
			}
			switch ps.tag {
			case producerSkip:
				return PSkip[A, Pair[B, C]](), &crossState[B, C]{outerState: newOs}, nil
			case producerStop:
				if ps.hasResidual {
					return PStopSome[A, Pair[B, C]](ps.residual), nil, nil
				}
				return PStopNone[A, Pair[B, C]](), nil, nil
			default: // producerYield
				a, ok, err := p.extract(newOs)
				if err != nil {
					return ProducerStep[A, Pair[B, C]]{}, nil, err
				}
				if !ok {
					return PStopNone[A, Pair[B, C]](), nil, nil
				}
				is, err := q.inject(a)
				if err != nil {
					return ProducerStep[A, Pair[B, C]]{}, nil, err
				}
				return advanceInner(newOs, ps.b, is)
			}
		},
		extract: func(state any) (A, bool, error) {
			st := state.(*crossState[B, C])
			return p.extract(st.outerState)
		},
	}
}

type concatState[B any] struct {
	inner      bool
	outerState any
	innerState any
}

// Concat runs a nested loop: the outer producer p yields a value b,
// which seeds the inner producer q; every value q yields is passed
// through as Concat's own output, and once q stops, Concat resumes the
// outer loop from its saved state — q's residual seed (type B) is
// discarded regardless, since spec.md §4.9 names no destination for it
// (§9 Open Question 3; see DESIGN.md).
func Concat[A, B, C any](p Producer[A, B], q Producer[B, C]) Producer[A, C] {
	advanceInner := func(outerState any, innerState any) (ProducerStep[A, C], any, error) {
		qs, newIs, err := q.step(innerState)
		if err != nil {
			return ProducerStep[A, C]{}, nil, err
		}
		switch qs.tag {
		case producerYield:
			return PYield[A, C](qs.b), &concatState[B]{inner: true, outerState: outerState, innerState: newIs}, nil
		case producerSkip:
			return PSkip[A, C](), &concatState[B]{inner: true, outerState: outerState, innerState: newIs}, nil
		default: // producerStop: residual of type B discarded
			return PSkip[A, C](), &concatState[B]{outerState: outerState}, nil
		}
	}

	return Producer[A, C]{
		inject: func(a A) (any, error) {
			os, err := p.inject(a)
			if err != nil {
				return nil, err
			}
			return &concatState[B]{outerState: os}, nil
		},
		step: func(state any) (ProducerStep[A, C], any, error) {
			st := state.(*concatState[B])
			if st.inner {
				return advanceInner(st.outerState, st.innerState)
			}

			ps, newOs, err := p.step(st.outerState)
			if err != nil {
				return ProducerStep[A, C]{}, nil, err
			}
			switch ps.tag {
			case producerSkip:
				return PSkip[A, C](), &concatState[B]{outerState: newOs}, nil
			case producerStop:
				if ps.hasResidual {
					return PStopSome[A, C](ps.residual), nil, nil
				}
				return PStopNone[A, C](), nil, nil
			default: // producerYield
				is, err := q.inject(ps.b)
				if err != nil {
					return ProducerStep[A, C]{}, nil, err
				}
				return advanceInner(newOs, is)
			}
		},
		extract: func(state any) (A, bool, error) {
			st := state.(*concatState[B])
			return p.extract(st.outerState)
		},
	}
}
