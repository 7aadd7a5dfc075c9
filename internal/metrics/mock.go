package metrics

import "sync"

// Mock is a mock implementation of the Metrics interface for testing.
// It is safe for concurrent use.
type Mock struct {
	mu             sync.Mutex
	queries        map[string]int
	queryFailures  map[string]int
	queryDurations []float64
	startupTime    float64
}

// NewMock creates a new mock instance.
func NewMock() *Mock {
	return &Mock{
		queries:       make(map[string]int),
		queryFailures: make(map[string]int),
	}
}

func (m *Mock) IncQuery(operation string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.queries[operation]++
}

func (m *Mock) IncQueryFailure(operation, kind string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.queryFailures[operation+"/"+kind]++
}

func (m *Mock) ObserveQueryDuration(operation string, duration float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.queryDurations = append(m.queryDurations, duration)
}

func (m *Mock) SetStartupTime(duration float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.startupTime = duration
}

// Queries returns how often IncQuery was called for the operation.
func (m *Mock) Queries(operation string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.queries[operation]
}

// QueryFailures returns how often IncQueryFailure was called for the
// operation and kind.
func (m *Mock) QueryFailures(operation, kind string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.queryFailures[operation+"/"+kind]
}
