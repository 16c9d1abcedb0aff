// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package tickets persists CAS tickets and garbage-collects stale ones.

# Lifecycle

A ticket is inserted once after a successful CAS validation, read on every
authenticated action, and eventually deleted by the purge loop once it is
older than the retention window. Rows are never updated.

	store := tickets.NewStore(db)
	err := store.Insert(ticket, caseID, ipHash)
	ok, err := store.IsValid(ticket)
	caseID, err := store.CaseID(ticket)

Validity is pure existence: a ticket is good until the garbage collector
removes it.

# Garbage Collection

RunGC owns the background purge loop:

	go tickets.RunGC(ctx, store, cfg.GCInterval, cfg.TicketTTL)

Each tick deletes tickets issued more than the TTL ago. Errors are logged
and the loop keeps running; cancelling the context stops it, which main
joins on shutdown. Retention window and interval are configured separately
and both default to five days.
*/
package tickets
