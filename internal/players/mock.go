package players

import "sync"

// MockStore is a mock implementation of the PlayerStore interface for testing.
// It is safe for concurrent use.
type MockStore struct {
	mu sync.Mutex

	// Spies for method calls
	GetAllPlayersFunc  func() ([]Player, error)
	DistinctValuesFunc func(field Field) ([]string, error)
	GetPlayerByIDFunc  func(id string) (*Player, error)
	InsertPlayersFunc  func(players []Player) error
	CountPlayersFunc   func() (int, error)
	ClearFunc          func() error

	// Call records
	DistinctValuesCalls []Field
	GetPlayerByIDCalls  []string
	InsertPlayersCalls  [][]Player
	GetAllPlayersCalls  int
}

// NewMock creates a new mock instance.
func NewMock() *MockStore {
	return &MockStore{}
}

func (m *MockStore) GetAllPlayers() ([]Player, error) {
	m.mu.Lock()
	m.GetAllPlayersCalls++
	m.mu.Unlock()
	if m.GetAllPlayersFunc != nil {
		return m.GetAllPlayersFunc()
	}
	return nil, nil
}

func (m *MockStore) DistinctValues(field Field) ([]string, error) {
	m.mu.Lock()
	m.DistinctValuesCalls = append(m.DistinctValuesCalls, field)
	m.mu.Unlock()
	if m.DistinctValuesFunc != nil {
		return m.DistinctValuesFunc(field)
	}
	return nil, nil
}

func (m *MockStore) GetPlayerByID(id string) (*Player, error) {
	m.mu.Lock()
	m.GetPlayerByIDCalls = append(m.GetPlayerByIDCalls, id)
	m.mu.Unlock()
	if m.GetPlayerByIDFunc != nil {
		return m.GetPlayerByIDFunc(id)
	}
	return nil, ErrNotFound
}

func (m *MockStore) InsertPlayers(batch []Player) error {
	m.mu.Lock()
	m.InsertPlayersCalls = append(m.InsertPlayersCalls, batch)
	m.mu.Unlock()
	if m.InsertPlayersFunc != nil {
		return m.InsertPlayersFunc(batch)
	}
	return nil
}

func (m *MockStore) CountPlayers() (int, error) {
	if m.CountPlayersFunc != nil {
		return m.CountPlayersFunc()
	}
	return 0, nil
}

func (m *MockStore) Clear() error {
	if m.ClearFunc != nil {
		return m.ClearFunc()
	}
	return nil
}
