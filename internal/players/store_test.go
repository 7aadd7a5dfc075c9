package players_test

import (
	"database/sql"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/checkout170/darts-api/internal/database"
	"github.com/checkout170/darts-api/internal/players"
)

// setupTestDB creates a temporary in-memory SQLite database for testing.
func setupTestDB(t *testing.T) (players.PlayerStore, *sql.DB, func()) {
	t.Helper()

	db, dbTeardown, err := database.InitDB(":memory:", "", "", "../../migrations")
	require.NoError(t, err)

	store := players.New(db)
	return store, db, dbTeardown
}

func intPtr(v int) *int { return &v }

func TestInsertAndGetAllPlayers(t *testing.T) {
	store, _, teardown := setupTestDB(t)
	defer teardown()

	err := store.InsertPlayers([]players.Player{
		{Name: "Michael van Gerwen", Country: "Netherlands", Nickname: "Mighty Mike", Ranking: intPtr(3)},
		{Name: "Luke Humphries", Country: "England", Nickname: "Cool Hand Luke", Ranking: intPtr(1)},
		{Name: "Michael van Gerwen", Country: "Netherlands", Nickname: "Mighty Mike", Ranking: intPtr(3)},
	})
	require.NoError(t, err)

	all, err := store.GetAllPlayers()
	require.NoError(t, err)
	require.Len(t, all, 3, "duplicates must be stored verbatim")

	// Insertion order is preserved.
	assert.Equal(t, "Michael van Gerwen", all[0].Name)
	assert.Equal(t, "Luke Humphries", all[1].Name)
	assert.Equal(t, "Michael van Gerwen", all[2].Name)

	// Every record got a distinct id.
	assert.NotEmpty(t, all[0].ID)
	assert.NotEqual(t, all[0].ID, all[2].ID)

	count, err := store.CountPlayers()
	require.NoError(t, err)
	assert.Equal(t, 3, count)
}

func TestGetAllPlayers_OptionalFields(t *testing.T) {
	store, _, teardown := setupTestDB(t)
	defer teardown()

	err := store.InsertPlayers([]players.Player{
		{Name: "Fallon Sherrock", Country: "England", Nickname: "Queen of the Palace"},
	})
	require.NoError(t, err)

	all, err := store.GetAllPlayers()
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Nil(t, all[0].Ranking, "absent ranking must stay absent")
	assert.Nil(t, all[0].Age)
}

func TestDistinctValues(t *testing.T) {
	store, _, teardown := setupTestDB(t)
	defer teardown()

	err := store.InsertPlayers([]players.Player{
		{Name: "A", Country: "Netherlands", Nickname: "Mighty Mike"},
		{Name: "B", Country: "England"},
		{Name: "C", Country: "Netherlands", Nickname: "Barney"},
		{Name: "D", Country: "Wales", Nickname: "The Iceman"},
	})
	require.NoError(t, err)

	t.Run("countries in first-occurrence order", func(t *testing.T) {
		countries, err := store.DistinctValues(players.FieldCountry)
		require.NoError(t, err)
		assert.Equal(t, []string{"Netherlands", "England", "Wales"}, countries)
	})

	t.Run("absent nicknames are excluded", func(t *testing.T) {
		nicknames, err := store.DistinctValues(players.FieldNickname)
		require.NoError(t, err)
		assert.Equal(t, []string{"Mighty Mike", "Barney", "The Iceman"}, nicknames)
	})

	t.Run("unknown field is rejected", func(t *testing.T) {
		_, err := store.DistinctValues(players.Field("ranking"))
		assert.Error(t, err)
	})
}

func TestGetPlayerByID(t *testing.T) {
	store, _, teardown := setupTestDB(t)
	defer teardown()

	err := store.InsertPlayers([]players.Player{
		{Name: "Gerwyn Price", Country: "Wales", Nickname: "The Iceman", Ranking: intPtr(5)},
	})
	require.NoError(t, err)

	all, err := store.GetAllPlayers()
	require.NoError(t, err)
	require.Len(t, all, 1)

	t.Run("found", func(t *testing.T) {
		p, err := store.GetPlayerByID(all[0].ID)
		require.NoError(t, err)
		assert.Equal(t, "Gerwyn Price", p.Name)
		require.NotNil(t, p.Ranking)
		assert.Equal(t, 5, *p.Ranking)
	})

	t.Run("malformed id", func(t *testing.T) {
		_, err := store.GetPlayerByID("not-a-uuid")
		assert.ErrorIs(t, err, players.ErrInvalidID)
	})

	t.Run("well-formed but absent", func(t *testing.T) {
		_, err := store.GetPlayerByID(uuid.New().String())
		assert.ErrorIs(t, err, players.ErrNotFound)
	})
}

func TestClear(t *testing.T) {
	store, _, teardown := setupTestDB(t)
	defer teardown()

	err := store.InsertPlayers([]players.Player{{Name: "A"}, {Name: "B"}})
	require.NoError(t, err)

	require.NoError(t, store.Clear())

	count, err := store.CountPlayers()
	require.NoError(t, err)
	assert.Equal(t, 0, count)
}
