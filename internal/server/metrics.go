package server

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/me/seeksim/pkg/sched"
)

// serverMetrics holds the Prometheus instruments the server exports. Every
// Server owns its own instruments, so independent instances never collide
// on registration.
type serverMetrics struct {
	registry    *prometheus.Registry
	simulations *prometheus.CounterVec
	seekTracks  *prometheus.HistogramVec
}

func newServerMetrics(reg *prometheus.Registry) *serverMetrics {
	m := &serverMetrics{
		registry: reg,
		simulations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "seeksim",
			Name:      "simulations_total",
			Help:      "Simulation runs handled, by algorithm and outcome.",
		}, []string{"algorithm", "status"}),
		seekTracks: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "seeksim",
			Name:      "seek_distance_tracks",
			Help:      "Total seek distance per completed run, in tracks.",
			Buckets:   prometheus.ExponentialBuckets(8, 2, 12),
		}, []string{"algorithm"}),
	}
	reg.MustRegister(m.simulations, m.seekTracks)
	return m
}

// recordRun counts one completed simulation and observes its seek distance.
func (m *serverMetrics) recordRun(res *sched.Result) {
	m.simulations.WithLabelValues(res.Algorithm.String(), "ok").Inc()
	m.seekTracks.WithLabelValues(res.Algorithm.String()).Observe(res.TotalSeek)
}

// recordRejected counts a request that never reached the engine. The label
// is the parsed algorithm name, or "unknown" when parsing is what failed,
// keeping the label set bounded no matter what callers send.
func (m *serverMetrics) recordRejected(algorithm string) {
	if algorithm == "" {
		algorithm = "unknown"
	}
	m.simulations.WithLabelValues(algorithm, "rejected").Inc()
}

// handler serves the registry in the Prometheus text format.
func (m *serverMetrics) handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
