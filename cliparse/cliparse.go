package cliparse

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"path/filepath"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Supported database types
const (
	DatabaseSQLite   = "sqlite"
	DatabasePostgres = "postgres"
)

// SQLiteFileName is the database file created inside DBPath.
const SQLiteFileName = "voting.db"

type Config struct {
	Port          int           `env:"PORT" envDefault:"3001"`
	DatabaseType  string        `env:"DATABASE_TYPE" envDefault:"sqlite"`
	DatabaseURL   string        `env:"DATABASE_URL"`
	DBPath        string        `env:"DB_PATH" envDefault:"."`
	FrontendURL   string        `env:"FRONTEND_URL" envDefault:"http://localhost:5173"`
	AdminKeySalt  string        `env:"ADMIN_KEY_SALT"`
	SweepInterval time.Duration `env:"SWEEP_INTERVAL" envDefault:"6h"`
}

// LoadDotEnv loads variables from a .env file without overriding ones
// already set. A missing file is not an error.
func LoadDotEnv(path string) error {
	err := godotenv.Load(path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("load %s: %w", path, err)
	}
	return nil
}

// ParseFlags reads the environment, then lets CLI flags override it
func ParseFlags(args []string) (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	fs := flag.NewFlagSet("vote-service", flag.ContinueOnError)

	// Environment values become the flag defaults
	fs.IntVar(&cfg.Port, "p", cfg.Port, "Server port")
	fs.StringVar(&cfg.DatabaseType, "t", cfg.DatabaseType, "Database type (sqlite or postgres)")
	fs.StringVar(&cfg.DatabaseURL, "d", cfg.DatabaseURL, "Database URL (postgres DSN or sqlite file)")
	fs.StringVar(&cfg.DBPath, "db-path", cfg.DBPath, "Directory for the sqlite database file")
	fs.StringVar(&cfg.FrontendURL, "origin", cfg.FrontendURL, "Allowed cross-origin caller")
	fs.StringVar(&cfg.AdminKeySalt, "admin-salt", cfg.AdminKeySalt, "Admin key salt (prefer env)")
	fs.DurationVar(&cfg.SweepInterval, "sweep", cfg.SweepInterval, "Expired session sweep interval")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if cfg.Port <= 0 || cfg.Port > 65535 {
		return Config{}, fmt.Errorf("invalid port %d", cfg.Port)
	}
	if cfg.SweepInterval <= 0 {
		return Config{}, errors.New("sweep interval must be positive")
	}

	switch cfg.DatabaseType {
	case DatabaseSQLite:
		if cfg.DatabaseURL == "" {
			cfg.DatabaseURL = filepath.Join(cfg.DBPath, SQLiteFileName)
		}
	case DatabasePostgres:
		if cfg.DatabaseURL == "" {
			return Config{}, errors.New("database URL required for postgres (use -d or DATABASE_URL env)")
		}
	default:
		return Config{}, fmt.Errorf("unsupported database type %q", cfg.DatabaseType)
	}

	return cfg, nil
}
