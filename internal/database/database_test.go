package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitDB_CreatesTables(t *testing.T) {
	db, teardown, err := InitDB(":memory:", "", "", "../../migrations")
	require.NoError(t, err, "InitDB should not return an error")
	defer teardown()

	// Check if the 'players' table was created
	var playersTableName string
	err = db.QueryRow("SELECT name FROM sqlite_master WHERE type='table' AND name='players'").Scan(&playersTableName)
	require.NoError(t, err, "Querying for players table should not produce an error")
	assert.Equal(t, "players", playersTableName, "The 'players' table should be created")

	// Check if the 'metrics' table was created
	var metricsTableName string
	err = db.QueryRow("SELECT name FROM sqlite_master WHERE type='table' AND name='metrics'").Scan(&metricsTableName)
	require.NoError(t, err, "Querying for metrics table should not produce an error")
	assert.Equal(t, "metrics", metricsTableName, "The 'metrics' table should be created")
}

func TestInitDB_MigrationsAreIdempotent(t *testing.T) {
	dbPath := t.TempDir() + "/catalog.db"

	db, teardown, err := InitDB(dbPath, "", "", "../../migrations")
	require.NoError(t, err)
	_, err = db.Exec("INSERT INTO players (id, name) VALUES ('abc', 'Test Player')")
	require.NoError(t, err)
	teardown()

	// Reopening the same file must not fail or lose data.
	db, teardown, err = InitDB(dbPath, "", "", "../../migrations")
	require.NoError(t, err)
	defer teardown()

	var count int
	require.NoError(t, db.QueryRow("SELECT COUNT(*) FROM players").Scan(&count))
	assert.Equal(t, 1, count)
}
