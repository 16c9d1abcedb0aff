// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines the HTTP routes for the Mealmeter API.

# Routes

Uses Go 1.22+ method-qualified patterns on the standard ServeMux:

	GET  /health       → liveness probe
	GET  /stats        → current meal and tally
	POST /vote         → submit a score (ticket cookie required)
	GET  /sso-auth     → CAS callback: validate ticket, set credential
	GET  /check-ticket → is the caller's credential still on record
	GET  /auth-failed  → static login-failure notice

# Construction

NewRouter wires the handlers to their dependencies:

	mux := router.NewRouter(db, cfg)

The ticket store and CAS client are created here and shared by the vote
and auth handlers. Request logging wraps every application route; CORS is
applied around the whole mux in main.
*/
package router
