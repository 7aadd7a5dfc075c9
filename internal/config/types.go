package config

// Config holds all configuration for the application.
type Config struct {
	DBName        string
	MigrationsDir string
	Port          string
	// SeedFile optionally points at a dataset file used instead of the
	// embedded seed data. Empty means use the embedded dataset.
	SeedFile string
	Turso    TursoConfig
}

// TursoConfig holds the optional remote database settings. When PrimaryURL
// is empty the service runs against a local SQLite file.
type TursoConfig struct {
	PrimaryURL string
	AuthToken  string
}
