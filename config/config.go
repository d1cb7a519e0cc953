package config

import (
	"errors"
	"flag"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// DefaultNotificationTTL is how long a transient message stays visible
// before it auto-clears.
const DefaultNotificationTTL = 3 * time.Second

type Config struct {
	DatabaseURL     string
	DatabaseType    string // sqlite or postgres
	NotificationTTL time.Duration
}

// ParseFlags validates flags and fills in defaults
func ParseFlags(args []string) (Config, error) {
	// A .env file is optional; a missing one is not an error.
	_ = godotenv.Load()

	var cfg Config
	var ttlSecs int

	fs := flag.NewFlagSet("wetten", flag.ContinueOnError)

	fs.StringVar(&cfg.DatabaseURL, "d", "", "Database URL or file path")
	fs.StringVar(&cfg.DatabaseType, "t", "", "Database type (sqlite or postgres)")
	fs.IntVar(&ttlSecs, "notify-ttl", 0, "Notification auto-clear delay in seconds")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	// Fall back to environment variables
	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}
	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = "wetten.db" // local file next to the app
	}

	if cfg.DatabaseType == "" {
		cfg.DatabaseType = os.Getenv("DATABASE_TYPE")
		if cfg.DatabaseType == "" {
			cfg.DatabaseType = "sqlite"
		}
	}
	if cfg.DatabaseType != "sqlite" && cfg.DatabaseType != "postgres" {
		return Config{}, errors.New("database type must be sqlite or postgres")
	}

	if ttlSecs == 0 {
		if ttlStr := os.Getenv("NOTIFY_TTL"); ttlStr != "" {
			n, err := strconv.Atoi(ttlStr)
			if err != nil {
				return Config{}, errors.New("invalid NOTIFY_TTL env variable")
			}
			ttlSecs = n
		}
	}
	if ttlSecs > 0 {
		cfg.NotificationTTL = time.Duration(ttlSecs) * time.Second
	} else {
		cfg.NotificationTTL = DefaultNotificationTTL
	}

	return cfg, nil
}
