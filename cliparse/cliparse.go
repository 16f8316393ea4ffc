package cliparse

import (
	"errors"
	"flag"
	"os"
	"strconv"

	"github.com/danielhkuo/mood-diary/auth"
	"github.com/danielhkuo/mood-diary/db"
)

// DefaultDatabasePath is the diary file created in the working directory.
const DefaultDatabasePath = "mood_diary.db"

type Config struct {
	Port           int
	DatabaseURL    string
	DatabaseType   db.Dialect
	SessionSecret  string
	PasswordScheme string
}

// ParseFlags validates flags and fills unset values from the environment
func ParseFlags(args []string) (Config, error) {
	var cfg Config
	var dbType string

	fs := flag.NewFlagSet("mood-diary", flag.ContinueOnError)

	// Network and storage config (can be CLI args or env)
	fs.IntVar(&cfg.Port, "p", 0, "Server port")
	fs.StringVar(&cfg.DatabaseURL, "d", "", "Database file path or URL")
	fs.StringVar(&dbType, "t", "", "Database type (sqlite or postgres)")
	fs.StringVar(&cfg.PasswordScheme, "hash", "", "Password hash for new users (sha256 or bcrypt)")

	// Secrets (prefer env variables, but allow CLI for dev)
	fs.StringVar(&cfg.SessionSecret, "session-secret", "", "Session token signing secret (prefer env)")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	// Fall back to environment variables
	if cfg.Port == 0 {
		if portStr := os.Getenv("PORT"); portStr != "" {
			port, err := strconv.Atoi(portStr)
			if err != nil {
				return Config{}, errors.New("invalid PORT env variable")
			}
			cfg.Port = port
		} else {
			cfg.Port = 3318 // default
		}
	}

	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}
	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = DefaultDatabasePath
	}

	if dbType == "" {
		dbType = os.Getenv("DATABASE_TYPE")
		if dbType == "" {
			dbType = string(db.SQLite)
		}
	}
	dialect, err := db.ParseDialect(dbType)
	if err != nil {
		return Config{}, err
	}
	cfg.DatabaseType = dialect

	if cfg.PasswordScheme == "" {
		cfg.PasswordScheme = os.Getenv("PASSWORD_HASH")
		if cfg.PasswordScheme == "" {
			cfg.PasswordScheme = auth.SchemeSHA256
		}
	}
	if !auth.ValidScheme(cfg.PasswordScheme) {
		return Config{}, errors.New("password hash must be sha256 or bcrypt")
	}

	// Secrets - MUST be provided
	if cfg.SessionSecret == "" {
		cfg.SessionSecret = os.Getenv("SESSION_SECRET")
	}
	if cfg.SessionSecret == "" {
		return Config{}, errors.New("SESSION_SECRET required")
	}

	return cfg, nil
}
