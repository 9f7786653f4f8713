package streamparse

import (
	"context"
	"fmt"
)

// Source is the pull interface the driver feeds from: one token per
// Next call, ok=false on exhaustion. It is the one point where the
// spec's "external" stream library would be plugged in; this package
// only needs the pull shape, not the library itself.
type Source[A any] interface {
	Next(ctx context.Context) (tok A, ok bool, err error)
}

// SliceSource adapts an in-memory slice to Source, the common case for
// tests and for the scenarios in spec.md §8 (S1–S6).
type SliceSource[A any] struct {
	items []A
	pos   int
}

// NewSliceSource wraps items as a Source.
func NewSliceSource[A any](items []A) *SliceSource[A] {
	return &SliceSource[A]{items: items}
}

func (s *SliceSource[A]) Next(ctx context.Context) (A, bool, error) {
	var zero A
	if err := ctx.Err(); err != nil {
		return zero, false, err
	}
	if s.pos >= len(s.items) {
		return zero, false, nil
	}
	tok := s.items[s.pos]
	s.pos++
	return tok, true, nil
}

// Logger is the one-method seam used by WithLogger. It matches the
// teacher's own preference for log.Printf-shaped calls over a
// structured-logging dependency: nothing in the retrieval pack pulls in
// a structured logging library, so the ambient logging surface stays
// this thin.
type Logger interface {
	Logf(format string, args ...any)
}

type parseConfig struct {
	logger Logger
}

// ParseOption configures Parse. The only option today is WithLogger.
type ParseOption func(*parseConfig)

// WithLogger makes Parse report every driver command it interprets,
// the mechanism behind the `streamparse trace` CLI subcommand.
func WithLogger(l Logger) ParseOption {
	return func(c *parseConfig) { c.logger = l }
}

func (s stepTag) String() string {
	switch s {
	case stepYield:
		return "Yield"
	case stepYieldB:
		return "YieldB"
	case stepSkip:
		return "Skip"
	case stepStop:
		return "Stop"
	case stepError:
		return "Error"
	default:
		return "Unknown"
	}
}

// Parse is the top-level driver entry point described in spec.md §4.1
// and §6: it pumps tokens from src through p one at a time, maintains
// the backtrack buffer, and interprets every Step the parser emits. It
// returns the result, the leftover tokens (on Stop: the unused buffered
// tokens followed by everything src had not yet delivered), and a
// non-nil error for an unrecovered in-band Error (as a ParseError), for
// an error raised by extract on exhaustion, or for an error returned by
// src or by the parser's own initial/step.
func Parse[A, B any](ctx context.Context, p Parser[A, B], src Source[A], opts ...ParseOption) (B, []A, error) {
	cfg := &parseConfig{}
	for _, opt := range opts {
		opt(cfg)
	}

	var zero B
	state, err := p.initial()
	if err != nil {
		return zero, nil, err
	}

	var buf []A
	cursor := 0

	for {
		var tok A
		if cursor < len(buf) {
			tok = buf[cursor]
		} else {
			next, ok, err := src.Next(ctx)
			if err != nil {
				return zero, nil, err
			}
			if !ok {
				break
			}
			buf = append(buf, next)
			tok = next
		}

		step, newState, err := p.step(state, tok)
		if err != nil {
			return zero, nil, err
		}
		cursor++

		if cfg.logger != nil {
			cfg.logger.Logf("%s n=%d cursor=%d buffered=%d", step.tag, step.n, cursor, len(buf))
		}

		switch step.tag {
		case stepYield:
			keepFrom := cursor - step.n
			if keepFrom < 0 {
				panic(invariantViolation{fmt.Sprintf("Yield %d exceeds %d tokens consumed since commit", step.n, cursor)})
			}
			buf = buf[keepFrom:]
			cursor -= keepFrom
			state = newState

		case stepYieldB:
			keepFrom := cursor - step.n
			if keepFrom < 0 {
				panic(invariantViolation{fmt.Sprintf("YieldB %d exceeds %d tokens consumed since commit", step.n, cursor)})
			}
			buf = buf[keepFrom:]
			cursor -= keepFrom
			cursor -= step.n
			state = newState

		case stepSkip:
			cursor -= step.n
			if cursor < 0 {
				panic(invariantViolation{fmt.Sprintf("Skip %d rewinds before the committed prefix", step.n)})
			}
			state = newState

		case stepStop:
			if step.n > cursor {
				panic(invariantViolation{fmt.Sprintf("Stop %d exceeds %d buffered tokens", step.n, cursor)})
			}
			// buf[cursor:] can be non-empty here: a prior rewind (e.g.
			// Alt replaying tokens into its right alternative) may have
			// buffered more tokens than this Stop ends up consuming, and
			// those still belong in leftover.
			leftover := append([]A(nil), buf[cursor-step.n:]...)
			// spec.md §4.1: "Stop n b: return success (b, leftover =
			// last n tokens + unread source)" — drain whatever the
			// source still has, since leftover must reflect the whole
			// unconsumed suffix, not just what happened to be buffered.
			for {
				next, ok, err := src.Next(ctx)
				if err != nil {
					return zero, nil, err
				}
				if !ok {
					break
				}
				leftover = append(leftover, next)
			}
			return step.b, leftover, nil

		case stepError:
			return zero, nil, ParseError{Message: step.msg}
		}
	}

	b, err := p.extract(state)
	if err != nil {
		return zero, nil, err
	}
	return b, nil, nil
}
