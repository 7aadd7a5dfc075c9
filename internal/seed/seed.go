package seed

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/checkout170/darts-api/internal/players"
)

//go:embed players.json
var embeddedDataset []byte

// Load reads a player dataset. An empty path means the embedded dataset.
// Files ending in .msgpack are decoded as msgpack snapshots; everything
// else is treated as JSON. Duplicate names in the dataset are kept: they
// are legitimate input the query engine dedups at read time.
func Load(path string) ([]players.Player, error) {
	if path == "" {
		return decode(embeddedDataset, false)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read seed file %s: %w", path, err)
	}
	return decode(data, strings.HasSuffix(path, ".msgpack"))
}

func decode(data []byte, asMsgpack bool) ([]players.Player, error) {
	var batch []players.Player
	if asMsgpack {
		if err := msgpack.Unmarshal(data, &batch); err != nil {
			return nil, fmt.Errorf("failed to decode msgpack seed data: %w", err)
		}
		return batch, nil
	}
	if err := json.Unmarshal(data, &batch); err != nil {
		return nil, fmt.Errorf("failed to decode JSON seed data: %w", err)
	}
	return batch, nil
}

// EnsureSeeded populates an empty store with the dataset. A store that
// already holds records is left untouched; seeding happens once.
func EnsureSeeded(store players.PlayerStore, path string) error {
	count, err := store.CountPlayers()
	if err != nil {
		return fmt.Errorf("failed to count players: %w", err)
	}
	if count > 0 {
		log.Debug("Store already seeded", "players", count)
		return nil
	}

	batch, err := Load(path)
	if err != nil {
		return err
	}
	if err := store.InsertPlayers(batch); err != nil {
		return fmt.Errorf("failed to insert seed players: %w", err)
	}
	log.Info("Seeded player store", "players", len(batch))
	return nil
}
