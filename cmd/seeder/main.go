package main

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/checkout170/darts-api/internal/database"
	"github.com/checkout170/darts-api/internal/players"
	"github.com/checkout170/darts-api/internal/seed"
)

// Simplified config loading for the script.
func loadConfig() map[string]string {
	err := godotenv.Load()
	if err != nil {
		log.Warn("No .env file found, reading from environment variables")
	}

	config := map[string]string{
		"DB_NAME":           os.Getenv("DB_NAME"),
		"TURSO_PRIMARY_URL": os.Getenv("TURSO_PRIMARY_URL"),
		"TURSO_AUTH_TOKEN":  os.Getenv("TURSO_AUTH_TOKEN"),
		"MIGRATIONS_DIR":    os.Getenv("MIGRATIONS_DIR"),
		"SEED_FILE":         os.Getenv("SEED_FILE"),
		"SNAPSHOT_OUT":      os.Getenv("SNAPSHOT_OUT"),
	}
	if config["DB_NAME"] == "" && config["TURSO_PRIMARY_URL"] == "" {
		log.Fatalf("Error: Either DB_NAME or TURSO_PRIMARY_URL must be set.")
	}
	if config["MIGRATIONS_DIR"] == "" {
		config["MIGRATIONS_DIR"] = "./migrations"
	}
	return config
}

func main() {
	log.Info("Starting database seeder...")
	cfg := loadConfig()

	batch, err := seed.Load(cfg["SEED_FILE"])
	if err != nil {
		log.Fatalf("Failed to load seed dataset: %s", err)
	}
	log.Info("Loaded seed dataset", "players", len(batch))

	// Optionally write a compact msgpack snapshot of the dataset, useful
	// for shipping large seed files around.
	if out := cfg["SNAPSHOT_OUT"]; out != "" {
		data, err := msgpack.Marshal(batch)
		if err != nil {
			log.Fatalf("Failed to encode msgpack snapshot: %s", err)
		}
		if err := os.WriteFile(out, data, 0o644); err != nil {
			log.Fatalf("Failed to write msgpack snapshot: %s", err)
		}
		log.Info("Wrote msgpack snapshot", "path", out, "bytes", len(data))
	}

	db, teardown, err := database.InitDB(cfg["DB_NAME"], cfg["TURSO_PRIMARY_URL"], cfg["TURSO_AUTH_TOKEN"], cfg["MIGRATIONS_DIR"])
	if err != nil {
		log.Fatalf("Failed to initialize database: %s", err)
	}
	defer teardown()

	store := players.New(db)
	if err := store.InsertPlayers(batch); err != nil {
		log.Fatalf("Failed to insert players: %s", err)
	}

	count, err := store.CountPlayers()
	if err != nil {
		log.Fatalf("Failed to count players: %s", err)
	}
	log.Info("Seeding complete", "inserted", len(batch), "total", count)
}
