// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the Mealmeter API server.

Mealmeter lets members of the campus community rate the dining hall once per
serving window (breakfast, brunch, lunch, dinner) on a 0-10 scale. Voting is
gated behind the university's CAS single-sign-on: a login ticket validated
against the CAS server becomes the voter's credential.

# Starting the Server

The server requires environment variables or CLI flags for configuration:

	DATABASE_URL=file:mealmeter.db CAS_VALIDATE_URL=https://login.example.edu/cas/validate go run .

Or with flags:

	go run . -p 8080 -d "file:mealmeter.db" -cas-url "https://login.example.edu/cas/validate"

A .env file in the working directory is loaded first if present.

# Configuration

Required settings:

  - DATABASE_URL (-d): SQLite file or PostgreSQL connection string
  - CAS_VALIDATE_URL (-cas-url): CAS ticket validation endpoint
  - IP_HASH_SALT (-ip-salt): Secret for hashing login IP addresses

Optional settings:

  - PORT (-p): Server port (default: 8080)
  - DATABASE_TYPE (-t): "sqlite" (default) or "postgres"
  - TICKET_TTL (-ticket-ttl): Ticket retention window (default: 120h)
  - TICKET_GC_INTERVAL (-gc-interval): Purge loop interval (default: 120h)

# Architecture

The server uses a handler-based architecture with dependency injection:

  - handlers: HTTP request handlers (stats, voting, SSO callback)
  - router: Route definitions using Go 1.22+ routing
  - middleware: CORS, logging, JSON helpers
  - models: Request/response and row types
  - mealclock: Wall-clock to meal-period resolution
  - tickets: Ticket persistence and background garbage collection
  - cas: CAS ticket validation client
  - auth: Credential cookie and hashing helpers
  - db: Schema creation
  - cliparse: Configuration parsing

See package documentation for each component.
*/
package main
