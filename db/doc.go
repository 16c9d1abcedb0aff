// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db handles database schema creation.

# Schema Creation

CreateSchema initializes all required tables:

	if err := db.CreateSchema(conn); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS for all tables and indexes.

# Tables

The schema includes:

  - meal: One serving window on one service day
  - vote: One 0-10 score per voter per meal
  - ticket: CAS credentials mirrored locally with issuance time

# Relationships

	meal 1──* vote

# Uniqueness

Two UNIQUE constraints carry the application's invariants, so concurrent
check-then-insert requests converge on a single row instead of racing:

  - meal.(year, month, day, meal_period): one meal row per window
  - vote.(meal_id, voter_caseid): one vote per voter per meal

A UNIQUE violation on vote is the authoritative "already voted" signal.

# Indexes

Performance indexes on:

  - vote.meal_id (stats aggregation)
  - ticket.ticket (unique, credential lookup)
  - ticket.issued_at (garbage collection)
*/
package db
