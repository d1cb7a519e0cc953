// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package config handles flag and environment configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := config.ParseFlags(os.Args[1:])

A .env file in the working directory is loaded first (via godotenv) and
silently skipped when absent.

# Config Fields

  - DatabaseURL: sqlite file path or PostgreSQL connection string
    (default: wetten.db)
  - DatabaseType: sqlite or postgres (default: sqlite)
  - NotificationTTL: auto-clear delay for transient messages (default: 3s)

# Flags

	-d          Database URL or file path
	-t          Database type (sqlite or postgres)
	-notify-ttl Notification auto-clear delay in seconds

# Environment Variables

Flags fall back to environment variables:

	DATABASE_URL  → -d
	DATABASE_TYPE → -t
	NOTIFY_TTL    → -notify-ttl

Flags take precedence over environment variables.
*/
package config
