// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package auth provides credential and token helper utilities.

# Ticket Cookie

A CAS ticket validated by the SSO callback becomes the client's credential,
carried in an HttpOnly cookie:

	auth.SetTicketCookie(w, ticket, cfg.TicketTTL)
	ticket, ok := auth.ReadTicketCookie(r)

The cookie's MaxAge mirrors the ticket retention window, so the browser
drops the credential around the time the garbage collector purges it.

# ID Generation

Random hex IDs for database records:

	id, err := auth.GenerateID(16)  // 32 hex characters

# IP Hashing

For privacy-preserving login auditing:

	hash := auth.HashIP(ipAddress, salt)

Returns first 8 bytes (16 hex chars) of HMAC-SHA256.
*/
package auth
