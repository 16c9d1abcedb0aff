// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Config Fields

  - Port: Server listen port (default: 8080)
  - DatabaseURL: SQLite file or PostgreSQL connection string (required)
  - DatabaseType: "sqlite" (default) or "postgres"
  - CASValidateURL: CAS ticket validation endpoint (required)
  - TicketTTL: Ticket retention window (default: 120h)
  - GCInterval: Ticket purge loop interval (default: 120h)
  - IPHashSalt: Secret for login IP hashing (required)

# CLI Flags

	-p           Server port
	-d           Database URL
	-t           Database type
	-cas-url     CAS validation endpoint
	-ticket-ttl  Ticket retention window
	-gc-interval Ticket purge interval
	-ip-salt     IP hashing salt

# Environment Variables

Flags fall back to environment variables:

	PORT               → -p
	DATABASE_URL       → -d
	DATABASE_TYPE      → -t
	CAS_VALIDATE_URL   → -cas-url
	TICKET_TTL         → -ticket-ttl
	TICKET_GC_INTERVAL → -gc-interval
	IP_HASH_SALT       → -ip-salt

CLI flags take precedence over environment variables. Durations use Go
syntax ("120h", "30m").

# Validation

ParseFlags returns an error if required values are missing:

  - DATABASE_URL must be provided
  - CAS_VALIDATE_URL must be provided
  - IP_HASH_SALT must be provided

# Example

	// In main.go
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		log.Fatal(err)
	}

	db, err := sql.Open("sqlite", cfg.DatabaseURL)
	// ...
	mux := router.NewRouter(db, cfg)
*/
package cliparse
