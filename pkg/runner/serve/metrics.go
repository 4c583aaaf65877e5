package serve

import (
	"github.com/prometheus/client_golang/prometheus"

	"tableflip.dev/stickycal/pkg/board"
)

// Metrics holds the server's collectors on a private registry so tests and
// multiple servers never collide on the global one.
type Metrics struct {
	Registry *prometheus.Registry

	gestures *prometheus.CounterVec
	full     prometheus.Counter
	requests *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

// NewMetrics creates and registers the collectors.
func NewMetrics() *Metrics {
	m := &Metrics{
		Registry: prometheus.NewRegistry(),
		gestures: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "stickycal_gestures_total",
				Help: "Board events applied, by event kind and outcome",
			},
			[]string{"event", "outcome"},
		),
		full: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "stickycal_calendar_full_total",
			Help: "Times the calendar transitioned to full",
		}),
		requests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "stickycal_http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"route", "method", "status"},
		),
		duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "stickycal_http_request_duration_seconds",
				Help:    "Duration of HTTP requests",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"route", "method"},
		),
	}
	m.Registry.MustRegister(m.gestures, m.full, m.requests, m.duration)
	return m
}

// Observe counts one applied event. It is a board.Observer.
func (m *Metrics) Observe(ev board.Event, out board.Outcome) {
	m.gestures.WithLabelValues(string(ev.Kind()), string(out.Result)).Inc()
}

// CalendarFull implements board.Notifier.
func (m *Metrics) CalendarFull() {
	m.full.Inc()
}
