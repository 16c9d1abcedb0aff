// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"fmt"
)

// CreateSchema creates all tables needed for the application.
// Safe to call multiple times - uses IF NOT EXISTS.
func CreateSchema(db *sql.DB) error {
	_, err := db.Exec(schema)
	if err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

// Timestamps are epoch seconds written by the application, so the schema
// stays portable between SQLite and PostgreSQL.
const schema = `
-- Meals: one row per serving window per service day
CREATE TABLE IF NOT EXISTS meal (
    id TEXT PRIMARY KEY,
    year INTEGER NOT NULL,
    month INTEGER NOT NULL,
    day INTEGER NOT NULL,
    meal_period INTEGER NOT NULL,
    UNIQUE (year, month, day, meal_period)
);

-- Votes: one score per voter per meal
CREATE TABLE IF NOT EXISTS vote (
    id TEXT PRIMARY KEY,
    meal_id TEXT NOT NULL REFERENCES meal(id),
    voter_caseid TEXT NOT NULL,
    score INTEGER NOT NULL CHECK (score >= 0 AND score <= 10),
    UNIQUE (meal_id, voter_caseid)
);

CREATE INDEX IF NOT EXISTS idx_vote_meal_id ON vote(meal_id);

-- Tickets: CAS credentials mirrored locally
CREATE TABLE IF NOT EXISTS ticket (
    id TEXT PRIMARY KEY,
    ticket TEXT NOT NULL UNIQUE,
    case_id TEXT NOT NULL,
    issued_at INTEGER NOT NULL,
    ip_hash TEXT
);

CREATE INDEX IF NOT EXISTS idx_ticket_issued_at ON ticket(issued_at);
`
