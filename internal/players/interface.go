package players

// PlayerStore defines the interface for reading the player catalog.
type PlayerStore interface {
	GetAllPlayers() ([]Player, error)
	DistinctValues(field Field) ([]string, error)
	GetPlayerByID(id string) (*Player, error)
	InsertPlayers(players []Player) error
	CountPlayers() (int, error)
	Clear() error
}
