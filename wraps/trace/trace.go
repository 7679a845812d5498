// Package trace prints indented call/return lines for the functions it
// wraps, reflecting recursion depth.
//
//	traced := trace.With("____")(fib)
//	traced.Invoke(3)
//	 --> fib(3)
//	____ --> fib(2)
//	________ --> fib(1)
//	________ <-- fib(1) == 1
//	________ --> fib(0)
//	________ <-- fib(0) == 1
//	____ <-- fib(2) == 2
//	____ --> fib(1)
//	____ <-- fib(1) == 1
//	 <-- fib(3) == 3
//
// The line format above is contract: downstream tooling parses the arrow
// and indentation forms byte for byte.
//
// Depth is an explicit counter private to one wrapped function's closure.
// Recursive calls re-enter through the same wrapper, so incrementing before
// the descent and decrementing after covers every entry and exit, and depth
// is back at zero whenever a fresh top-level trace begins. Independently
// traced functions track depth independently. Only positional arguments are
// rendered.
package trace

import (
	"fmt"
	"io"
	"os"
	"strings"

	"go.uber.org/zap"

	"github.com/on-the-ground/wrap_ive_go/wraps"
)

type traceOptions struct {
	writer io.Writer
	logger *zap.Logger
}

type Option func(*traceOptions)

// WithWriter redirects trace lines away from os.Stdout.
func WithWriter(w io.Writer) Option {
	return func(o *traceOptions) { o.writer = w }
}

// WithLogger additionally emits each entry/exit as a structured debug event.
func WithLogger(logger *zap.Logger) Option {
	return func(o *traceOptions) { o.logger = logger }
}

// With binds the indentation unit first (e.g. four spaces or "____") and
// returns the stage that wraps a target. Each application of the stage owns
// a fresh depth counter.
func With(unit string, opts ...Option) wraps.Wrapper {
	o := traceOptions{writer: os.Stdout, logger: zap.NewNop()}
	for _, opt := range opts {
		opt(&o)
	}

	return func(target wraps.Func) wraps.Func {
		depth := 0
		return wraps.Preserve(func(args []wraps.Arg, kw wraps.Kwargs) (wraps.Arg, error) {
			prefix := strings.Repeat(unit, depth)
			rendered := wraps.FormatArgs(args)
			fmt.Fprintf(o.writer, "%s --> %s(%s)\n", prefix, target.Name, rendered)
			o.logger.Debug("trace enter",
				zap.String("function", target.Name),
				zap.Int("depth", depth),
			)

			depth++
			result, err := target.InvokeKw(kw, args...)
			depth--

			shown := result
			if err != nil {
				shown = err
			}
			fmt.Fprintf(o.writer, "%s <-- %s(%s) == %v\n", prefix, target.Name, rendered, shown)
			o.logger.Debug("trace exit",
				zap.String("function", target.Name),
				zap.Int("depth", depth),
			)
			return result, err
		}, target)
	}
}

// Disabled matches With's two-stage shape while stripping the behavior:
// assign it in place of With to turn tracing off without touching call
// sites.
func Disabled(unit string, opts ...Option) wraps.Wrapper {
	return wraps.Disable
}
