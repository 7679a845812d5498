// Package count counts calls made to the functions it wraps.
//
// A Counter keeps one entry per wrapped function instance, keyed by the
// instance itself rather than the function's name, so two same-named
// functions never share an entry. The Calls accessor aggregates by name,
// which is the read surface callers and tests use; when several same-named
// functions are wrapped by one Counter their counts sum there.
//
// The increment happens unconditionally on every call that passes through
// the layer, whether or not an inner layer (e.g. a memo cache) serves the
// call without executing the body. Composition order therefore decides if
// counts mean "logical calls" or "calls that ran the body".
package count

import (
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/on-the-ground/wrap_ive_go/wraps"
)

// entry is the count of one wrapped function instance.
type entry struct {
	id    string
	name  string
	calls uint64
}

// Counter counts invocations of the functions wrapped through it. Counts
// are monotonically non-decreasing and never reset. Not safe for
// concurrent use.
type Counter struct {
	logger  *zap.Logger
	calls   *prometheus.CounterVec
	entries []*entry
}

type counterOptions struct {
	logger *zap.Logger
	calls  *prometheus.CounterVec
}

type Option func(*counterOptions)

// WithLogger routes per-call diagnostics to the given logger instead of a nop.
func WithLogger(logger *zap.Logger) Option {
	return func(o *counterOptions) { o.logger = logger }
}

// WithCounterVec mirrors every counted call into a prometheus counter,
// labeled by function name. The vec must carry exactly one label.
func WithCounterVec(calls *prometheus.CounterVec) Option {
	return func(o *counterOptions) { o.calls = calls }
}

// New creates an empty Counter.
func New(opts ...Option) *Counter {
	o := counterOptions{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(&o)
	}
	return &Counter{logger: o.logger, calls: o.calls}
}

// Wrap counts invocations of target: on each call the instance count is
// incremented first, then target is invoked with the original arguments and
// its result and error returned unchanged. Works for any callable shape.
func (c *Counter) Wrap(target wraps.Func) wraps.Func {
	e := &entry{id: uuid.New().String(), name: target.Name}
	c.entries = append(c.entries, e)
	c.logger.Debug("created call counter",
		zap.String("counterId", e.id),
		zap.String("function", e.name),
	)

	return wraps.Preserve(func(args []wraps.Arg, kw wraps.Kwargs) (wraps.Arg, error) {
		e.calls++
		c.logger.Debug("function call counted",
			zap.String("counterId", e.id),
			zap.String("function", e.name),
			zap.Uint64("calls", e.calls),
		)
		if c.calls != nil {
			c.calls.WithLabelValues(e.name).Inc()
		}
		return target.InvokeKw(kw, args...)
	}, target)
}

// Calls returns the number of calls counted for the given function name,
// summed over all wrapped instances sharing that name. Zero for names never
// wrapped.
func (c *Counter) Calls(name string) uint64 {
	var total uint64
	for _, e := range c.entries {
		if e.name == name {
			total += e.calls
		}
	}
	return total
}
