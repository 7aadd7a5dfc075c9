package metrics

// Metrics defines the interface for collecting application metrics.
// This decouples the application from the specific metrics implementation (e.g., Prometheus).
type Metrics interface {
	IncQuery(operation string)
	IncQueryFailure(operation, kind string)
	ObserveQueryDuration(operation string, duration float64)
	SetStartupTime(duration float64)
}

// MetricsStore persists lifetime counters in the database, so totals
// survive restarts independently of the process-local Prometheus registry.
type MetricsStore interface {
	Increment(key string)
	GetAll() (map[string]int, error)
}
