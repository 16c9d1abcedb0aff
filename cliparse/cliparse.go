package cliparse

import (
	"errors"
	"flag"
	"os"
	"strconv"
	"time"
)

// Tickets are retained for five days; the purge loop runs on the same cadence.
const defaultTicketTTL = 5 * 24 * time.Hour

type Config struct {
	Port           int
	DatabaseURL    string
	DatabaseType   string
	CASValidateURL string
	TicketTTL      time.Duration
	GCInterval     time.Duration
	IPHashSalt     string
}

// ParseFlags validates flags and sets port number
func ParseFlags(args []string) (Config, error) {
	var cfg Config

	fs := flag.NewFlagSet("mealmeter", flag.ContinueOnError)

	// Network config (can be CLI args or env)
	fs.IntVar(&cfg.Port, "p", 0, "Server port")
	fs.StringVar(&cfg.DatabaseURL, "d", "", "Database URL")
	fs.StringVar(&cfg.DatabaseType, "t", "", "Database type (sqlite or postgres)")

	// SSO integration
	fs.StringVar(&cfg.CASValidateURL, "cas-url", "", "CAS ticket validation endpoint")

	// Ticket lifecycle
	fs.DurationVar(&cfg.TicketTTL, "ticket-ttl", 0, "Ticket retention window")
	fs.DurationVar(&cfg.GCInterval, "gc-interval", 0, "Ticket purge interval")

	// Secrets (prefer env variables, but allow CLI for dev)
	fs.StringVar(&cfg.IPHashSalt, "ip-salt", "", "IP hashing salt (prefer env)")

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
			cfg.Port = 8080 // default
		}
	}
	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}
	if cfg.DatabaseURL == "" {
		return Config{}, errors.New("database URL required (use -d or DATABASE_URL env)")
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

	if cfg.CASValidateURL == "" {
		cfg.CASValidateURL = os.Getenv("CAS_VALIDATE_URL")
	}
	if cfg.CASValidateURL == "" {
		return Config{}, errors.New("CAS validate URL required (use -cas-url or CAS_VALIDATE_URL env)")
	}

	if cfg.TicketTTL == 0 {
		ttl, err := durationEnv("TICKET_TTL", defaultTicketTTL)
		if err != nil {
			return Config{}, err
		}
		cfg.TicketTTL = ttl
	}
	if cfg.GCInterval == 0 {
		interval, err := durationEnv("TICKET_GC_INTERVAL", defaultTicketTTL)
		if err != nil {
			return Config{}, err
		}
		cfg.GCInterval = interval
	}
	if cfg.TicketTTL <= 0 || cfg.GCInterval <= 0 {
		return Config{}, errors.New("ticket TTL and GC interval must be positive")
	}

	// Secrets - MUST be provided
	if cfg.IPHashSalt == "" {
		cfg.IPHashSalt = os.Getenv("IP_HASH_SALT")
	}
	if cfg.IPHashSalt == "" {
		return Config{}, errors.New("IP_HASH_SALT required")
	}

	return cfg, nil
}

func durationEnv(name string, fallback time.Duration) (time.Duration, error) {
	raw := os.Getenv(name)
	if raw == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, errors.New("invalid " + name + " env variable")
	}
	return d, nil
}
