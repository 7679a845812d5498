package count

import "github.com/prometheus/client_golang/prometheus"

// NewCallsVec builds the conventional counter vec for WithCounterVec:
// one "function" label, total calls per wrapped function name.
// Registration is the caller's concern.
func NewCallsVec(namespace string) *prometheus.CounterVec {
	return prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "function_calls_total",
			Help:      "Total calls made through counted function wrappers.",
		},
		[]string{"function"},
	)
}
