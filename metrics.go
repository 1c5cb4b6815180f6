package easysteam

import (
	"github.com/prometheus/client_golang/prometheus"
)

// MetricsMiddleware returns a MiddlewareFunc counting the callbacks handled,
// labelled by callback kind and outcome ("ok" or "error").
// The counter is registered to reg, it panics if registration fails.
func MetricsMiddleware(reg prometheus.Registerer) MiddlewareFunc {
	handled := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "easysteam",
		Name:      "callbacks_handled_total",
		Help:      "Number of callbacks handled, by kind and outcome.",
	}, []string{"kind", "outcome"})
	reg.MustRegister(handled)

	return func(next HandlerFunc) HandlerFunc {
		return func(cb Callback) error {
			err := next(cb)
			outcome := "ok"
			if err != nil {
				outcome = "error"
			}
			handled.WithLabelValues(cb.Kind().String(), outcome).Inc()
			return err
		}
	}
}
