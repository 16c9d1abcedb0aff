// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, and database row types.

# Request Types

  - VoteRequest: {"score": 0-10} body for POST /vote

# Response Types

  - StatsResponse: current meal token plus running totals
  - VoteResponse: confirmation message
  - CheckTicketResponse: credential validity boolean
  - ErrorResponse: standard error envelope

# Domain Types

  - Meal: one serving window on one service day
  - Vote: one voter's score for one meal
  - Ticket: a CAS credential mirrored locally

Voter identities, ticket tokens, and IP hashes carry `json:"-"` tags and are
never serialized into responses.
*/
package models
