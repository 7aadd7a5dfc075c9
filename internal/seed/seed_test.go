package seed_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/checkout170/darts-api/internal/players"
	"github.com/checkout170/darts-api/internal/seed"
)

func TestLoad_EmbeddedDataset(t *testing.T) {
	batch, err := seed.Load("")
	require.NoError(t, err)
	require.NotEmpty(t, batch)

	// The dataset deliberately contains duplicate names; first-wins dedup
	// in the query engine depends on them being stored verbatim.
	counts := make(map[string]int)
	for _, p := range batch {
		counts[p.Name]++
	}
	assert.Greater(t, counts["Michael van Gerwen"], 1, "expected duplicate seed entries")

	// Some entries have no ranking at all.
	var unranked int
	for _, p := range batch {
		if p.Ranking == nil {
			unranked++
		}
	}
	assert.Greater(t, unranked, 0, "expected unranked seed entries")
}

func TestLoad_MsgpackFile(t *testing.T) {
	ranking := 5
	batch := []players.Player{
		{Name: "Gerwyn Price", Country: "Wales", Nickname: "The Iceman", Ranking: &ranking},
	}
	data, err := msgpack.Marshal(batch)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "players.msgpack")
	require.NoError(t, os.WriteFile(path, data, 0o644))

	loaded, err := seed.Load(path)
	require.NoError(t, err)
	require.Len(t, loaded, 1)
	assert.Equal(t, "Gerwyn Price", loaded[0].Name)
	require.NotNil(t, loaded[0].Ranking)
	assert.Equal(t, 5, *loaded[0].Ranking)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := seed.Load("/does/not/exist.json")
	assert.Error(t, err)
}

func TestEnsureSeeded(t *testing.T) {
	t.Run("seeds an empty store once", func(t *testing.T) {
		store := players.NewMock()
		require.NoError(t, seed.EnsureSeeded(store, ""))
		require.Len(t, store.InsertPlayersCalls, 1)
		assert.NotEmpty(t, store.InsertPlayersCalls[0])
	})

	t.Run("leaves a populated store untouched", func(t *testing.T) {
		store := players.NewMock()
		store.CountPlayersFunc = func() (int, error) { return 42, nil }
		require.NoError(t, seed.EnsureSeeded(store, ""))
		assert.Empty(t, store.InsertPlayersCalls)
	})
}
