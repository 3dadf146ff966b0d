package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Storage backends understood by Config.Storage.
const (
	StorageMemory   = "memory"
	StorageFile     = "file"
	StorageSQLite   = "sqlite"
	StoragePostgres = "postgres"
)

// ID schemes understood by Config.IDScheme.
const (
	IDSchemeClock = "clock"
	IDSchemeUUID  = "uuid"
)

type Config struct {
	Addr        string   `env:"ROSTER_ADDR"         envDefault:":8080"`
	Storage     string   `env:"ROSTER_STORAGE"      envDefault:"file"`
	DataDir     string   `env:"ROSTER_DATA_DIR"     envDefault:"data"`
	SQLitePath  string   `env:"ROSTER_SQLITE_PATH"  envDefault:"roster.db"`
	IDScheme    string   `env:"ROSTER_ID_SCHEME"    envDefault:"clock"`
	SeedSamples bool     `env:"ROSTER_SEED_SAMPLES" envDefault:"true"`
	CORSOrigins []string `env:"ROSTER_CORS_ORIGINS" envSeparator:"," envDefault:"http://localhost:3000"`

	DBHost     string `env:"DB_HOST" envDefault:"localhost"`
	DBUser     string `env:"DB_USER"`
	DBPassword string `env:"DB_PASSWORD"`
	DBName     string `env:"DB_NAME" envDefault:"studentdb"`
	DBPort     string `env:"DB_PORT" envDefault:"5432"`
}

// Load reads an optional .env file from the working directory and then
// parses the environment into a Config.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}
	return Parse()
}

// Parse builds a Config from the current environment only.
func Parse() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	switch c.Storage {
	case StorageMemory, StorageFile, StorageSQLite, StoragePostgres:
	default:
		return fmt.Errorf("unknown storage backend %q", c.Storage)
	}
	switch c.IDScheme {
	case IDSchemeClock, IDSchemeUUID:
	default:
		return fmt.Errorf("unknown id scheme %q", c.IDScheme)
	}
	return nil
}

// PostgresDSN assembles the connection string for the postgres backend.
func (c Config) PostgresDSN() string {
	return "host=" + c.DBHost + " user=" + c.DBUser + " password=" + c.DBPassword + " dbname=" + c.DBName + " port=" + c.DBPort + " sslmode=disable"
}
