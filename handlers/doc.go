// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the Mealmeter API.

# Handler Types

Each handler is a struct with database and config dependencies:

  - StatsHandler: Current meal and running tally
  - VoteHandler: Score submission
  - AuthHandler: SSO callback, credential check, failure page

Handlers are created via constructor functions that accept *sql.DB and
Config; VoteHandler and AuthHandler additionally take the ticket store,
and AuthHandler takes a TicketValidator (the CAS client in production):

	statsHandler := handlers.NewStatsHandler(db, cfg)
	voteHandler := handlers.NewVoteHandler(db, cfg, ticketStore)
	authHandler := handlers.NewAuthHandler(db, cfg, casClient, ticketStore)

# Meal Ledger

meals.go holds the get-or-create logic shared by stats and voting:

	meal, err := getOrCreateCurrentMeal(db, now)

A nil meal with a nil error means no serving window is active. Creation is
an INSERT .. ON CONFLICT DO NOTHING followed by a fetch, so concurrent
first requests of a window all resolve to the same row.

# Voting Flow

	GET  /sso-auth?ticket=... → AuthHandler.SSOAuth (CAS round trip, sets cookie)
	POST /vote                → VoteHandler.SubmitVote
	GET  /stats               → StatsHandler.GetStats

SubmitVote validates the score, resolves the ticket cookie to a case ID,
and inserts the vote; a UNIQUE violation on (meal_id, voter_caseid) is
reported as "already voted".

# Error Semantics

Domain conditions map to client errors with specific messages: no meal in
progress and duplicate votes are 409, a bad score is 400, a missing or
unknown credential is 401. Store failures surface as a generic 500.
*/
package handlers
