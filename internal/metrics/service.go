package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var _ Metrics = (*Service)(nil)

// NewMetricsHandler returns an http.Handler for the given Gatherer.
// If no gatherer is provided, it uses the default one.
func NewMetricsHandler(gatherer ...prometheus.Gatherer) http.Handler {
	gath := prometheus.DefaultGatherer
	if len(gatherer) > 0 {
		gath = gatherer[0]
	}
	return promhttp.HandlerFor(gath, promhttp.HandlerOpts{})
}

// NewService creates and registers the Prometheus metrics.
// If no registerer is provided, it uses the default Prometheus registerer.
func NewService(registerer ...prometheus.Registerer) *Service {
	reg := prometheus.DefaultRegisterer
	if len(registerer) > 0 {
		reg = registerer[0]
	}

	s := &Service{
		Queries: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "darts_queries_total",
			Help: "The total number of catalog queries served, by operation.",
		}, []string{"operation"}),
		QueryFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "darts_query_failures_total",
			Help: "The total number of failed catalog queries, by operation and failure kind.",
		}, []string{"operation", "kind"}),
		QueryDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "darts_query_duration_seconds",
			Help:    "The duration of individual catalog queries.",
			Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		}, []string{"operation"}),
		StartupTimeSeconds: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "darts_startup_duration_seconds",
			Help: "The duration of the application startup in seconds.",
		}),
	}

	reg.MustRegister(
		s.Queries,
		s.QueryFailures,
		s.QueryDuration,
		s.StartupTimeSeconds,
	)

	return s
}

func (s *Service) IncQuery(operation string) {
	s.Queries.WithLabelValues(operation).Inc()
}

func (s *Service) IncQueryFailure(operation, kind string) {
	s.QueryFailures.WithLabelValues(operation, kind).Inc()
}

func (s *Service) ObserveQueryDuration(operation string, duration float64) {
	s.QueryDuration.WithLabelValues(operation).Observe(duration)
}

func (s *Service) SetStartupTime(duration float64) {
	s.StartupTimeSeconds.Set(duration)
}
