// Package nary adapts a strictly binary (or unary) function into one
// accepting a variable-length argument list.
//
// Given binary f(x, y), the spread function satisfies
// f(x, y, z) = f(x, f(y, z)), etc. A single argument returns itself:
// f(x) = x, without invoking the underlying function at all.
package nary

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/on-the-ground/wrap_ive_go/shared/helper"
	"github.com/on-the-ground/wrap_ive_go/wraps"
)

var (
	// ErrUnknownArity means the target's declared arity is variadic or
	// otherwise not a fixed positive count, so there is no window to fold.
	ErrUnknownArity = fmt.Errorf("target arity is not a fixed positive count")
	// ErrNoArgs means the spread function was called with no arguments;
	// the reduction base case needs at least one.
	ErrNoArgs = fmt.Errorf("spread call needs at least one argument")
	// ErrNotFoldable means more arguments than the target accepts were
	// given but the target is not binary, so the pairwise fold cannot
	// consume the surplus.
	ErrNotFoldable = fmt.Errorf("only a binary target can fold surplus arguments")
	// ErrKwargs means named options were passed; only positional
	// arguments participate in spreading.
	ErrKwargs = fmt.Errorf("spread calls are positional-only")
)

type naryOptions struct {
	logger *zap.Logger
}

type Option func(*naryOptions)

// WithLogger routes fold diagnostics to the given logger instead of a nop.
func WithLogger(logger *zap.Logger) Option {
	return func(o *naryOptions) { o.logger = logger }
}

// Wrap spreads target, whose declared arity P is read once here, into a
// variadic function. With N positional arguments:
//
//   - N == P: target is invoked directly.
//   - 0 < N < P: the first argument is returned unchanged and target is
//     not invoked. This is the designed base case of the reduction.
//   - N > P (P == 2 only): right fold — the last two arguments are reduced
//     first, then each preceding argument is paired with the running
//     intermediate, so f(a, b, c) == f(a, f(b, c)).
//
// An error from any intermediate application aborts the fold and
// propagates. Named options are rejected with ErrKwargs.
func Wrap(target wraps.Func, opts ...Option) (wraps.Func, error) {
	arity := target.Arity
	if arity < 1 {
		return wraps.Func{}, fmt.Errorf("%w: %s declares %d", ErrUnknownArity, target.Name, arity)
	}

	o := naryOptions{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(&o)
	}

	spread := wraps.Preserve(func(args []wraps.Arg, kw wraps.Kwargs) (wraps.Arg, error) {
		if len(kw) > 0 {
			return nil, fmt.Errorf("%w: %s", ErrKwargs, target.Name)
		}
		switch n := len(args); {
		case n == 0:
			return nil, fmt.Errorf("%w: %s", ErrNoArgs, target.Name)
		case n == arity:
			return target.Invoke(args...)
		case n < arity:
			return args[0], nil
		case arity != 2:
			return nil, fmt.Errorf("%w: %s declares %d", ErrNotFoldable, target.Name, arity)
		default:
			return foldRight(target, args, o.logger)
		}
	}, target)
	spread.Arity = wraps.ArityVariadic

	return spread, nil
}

// foldRight reduces args through a binary target, rightmost pair first.
func foldRight(target wraps.Func, args []wraps.Arg, logger *zap.Logger) (wraps.Arg, error) {
	n := len(args)
	intermediate, err := target.Invoke(args[n-2], args[n-1])
	if err != nil {
		return nil, err
	}
	for i := n - 3; i >= 0; i-- {
		logger.Debug("fold step",
			zap.String("function", target.Name),
			zap.Int("argIndex", i),
		)
		intermediate, err = target.Invoke(args[i], intermediate)
		if err != nil {
			return nil, err
		}
	}
	return intermediate, nil
}

// Spread2 lifts a pure binary function straight to its n-ary form.
func Spread2[T any](name string, fn func(T, T) T, opts ...Option) (func(...T) (T, error), error) {
	spread, err := Wrap(wraps.Lift2(name, "", fn), opts...)
	if err != nil {
		var zero func(...T) (T, error)
		return zero, err
	}
	return func(args ...T) (T, error) {
		boxed := make([]wraps.Arg, len(args))
		for i, a := range args {
			boxed[i] = a
		}
		return helper.GetTypedValueOf[T](func() (any, error) {
			return spread.Invoke(boxed...)
		})
	}, nil
}
