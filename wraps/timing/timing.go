// Package timing records the wall-clock span of every call made through
// the functions it wraps.
package timing

import (
	"time"

	"github.com/rickb777/date/v2/timespan"

	"github.com/on-the-ground/wrap_ive_go/wraps"
)

// TimeSpan is the span of one completed call.
type TimeSpan = timespan.TimeSpan

// Recorder collects the spans of one wrapped function. Spans keep call
// order. Not safe for concurrent use.
type Recorder struct {
	name  string
	spans []TimeSpan
}

// Wrap records one span per call through the layer, failed calls included;
// the time was spent either way. Result and error pass through unchanged.
func Wrap(target wraps.Func) (wraps.Func, *Recorder) {
	recorder := &Recorder{name: target.Name}

	wrapped := wraps.Preserve(func(args []wraps.Arg, kw wraps.Kwargs) (wraps.Arg, error) {
		start := time.Now()
		result, err := target.InvokeKw(kw, args...)
		recorder.spans = append(recorder.spans, timespan.BetweenTimes(start, time.Now()))
		return result, err
	}, target)

	return wrapped, recorder
}

// Name returns the wrapped function's name.
func (r *Recorder) Name() string { return r.name }

// Count returns how many calls completed through the layer.
func (r *Recorder) Count() int { return len(r.spans) }

// Spans returns the recorded spans in call order.
func (r *Recorder) Spans() []TimeSpan {
	return append([]TimeSpan(nil), r.spans...)
}

// Total returns the summed duration of all recorded spans.
func (r *Recorder) Total() time.Duration {
	var total time.Duration
	for _, s := range r.spans {
		total += s.Duration()
	}
	return total
}
