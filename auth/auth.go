// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package auth

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"net/http"
	"time"
)

// TicketCookie is the name of the cookie carrying the voter's CAS ticket.
const TicketCookie = "ticket"

// GenerateID creates a random hex ID of the specified byte length
func GenerateID(byteLen int) (string, error) {
	b := make([]byte, byteLen)
	_, err := rand.Read(b)
	if err != nil {
		return "", fmt.Errorf("failed to generate random ID: %w", err)
	}
	return hex.EncodeToString(b), nil
}

// SetTicketCookie stores the validated CAS ticket as the client's credential.
// The cookie expires with the ticket retention window, so a purged ticket is
// not re-presented forever.
func SetTicketCookie(w http.ResponseWriter, ticket string, ttl time.Duration) {
	http.SetCookie(w, &http.Cookie{
		Name:     TicketCookie,
		Value:    ticket,
		Path:     "/",
		MaxAge:   int(ttl.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// ReadTicketCookie returns the caller's ticket credential, if any.
func ReadTicketCookie(r *http.Request) (string, bool) {
	c, err := r.Cookie(TicketCookie)
	if err != nil || c.Value == "" {
		return "", false
	}
	return c.Value, true
}

// HashIP creates a one-way hash of an IP address for privacy
// Includes salt to prevent rainbow table attacks
func HashIP(ip, salt string) string {
	h := hmac.New(sha256.New, []byte(salt))
	h.Write([]byte(ip))
	sum := h.Sum(nil)
	// Return first 16 hex chars (64 bits) - enough for deduplication
	return hex.EncodeToString(sum[:8])
}
