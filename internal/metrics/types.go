package metrics

import "github.com/prometheus/client_golang/prometheus"

// Service holds all the Prometheus metrics for the application.
// By defining them all in one place, we ensure consistency in naming and labeling.
type Service struct {
	Queries            *prometheus.CounterVec
	QueryFailures      *prometheus.CounterVec
	QueryDuration      *prometheus.HistogramVec
	StartupTimeSeconds prometheus.Gauge
}
