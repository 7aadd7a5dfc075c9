package metrics

import (
	"database/sql"
	"sync"

	"github.com/charmbracelet/log"
)

// store persists per-operation query counters in the catalog database.
type store struct {
	db *sql.DB
	mu sync.Mutex
}

// New creates a new metrics Store over the given database handle.
func New(db *sql.DB) MetricsStore {
	return &store{
		db: db,
	}
}

// Increment bumps the lifetime counter for a query operation, creating the
// row on first sight. Counter writes are best-effort: a failed bump is
// logged and dropped rather than failing the query it accounts for.
func (s *store) Increment(operation string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.Exec(`
		INSERT INTO metrics (key, value) VALUES (?, 1)
		ON CONFLICT(key) DO UPDATE SET value = value + 1;
	`, operation)
	if err != nil {
		log.Error("Failed to bump query counter", "operation", operation, "error", err)
		return
	}
	log.Debug("Bumped query counter", "operation", operation)
}

// GetAll returns every lifetime query counter keyed by operation.
func (s *store) GetAll() (map[string]int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rows, err := s.db.Query("SELECT key, value FROM metrics")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counters := make(map[string]int)
	for rows.Next() {
		var operation string
		var value int
		if err := rows.Scan(&operation, &value); err != nil {
			return nil, err
		}
		counters[operation] = value
	}
	return counters, rows.Err()
}
