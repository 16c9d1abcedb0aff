// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"context"
	"database/sql"
	"log/slog"
	"net/http"

	"github.com/danielhkuo/mealmeter/auth"
	"github.com/danielhkuo/mealmeter/cliparse"
	"github.com/danielhkuo/mealmeter/middleware"
	"github.com/danielhkuo/mealmeter/models"
	"github.com/danielhkuo/mealmeter/tickets"
)

// TicketValidator is the narrow seam to the external SSO provider, so
// tests can substitute a fake for the real CAS client.
type TicketValidator interface {
	Validate(ctx context.Context, ticket, serviceURL string) (string, error)
}

type AuthHandler struct {
	db        *sql.DB
	cfg       cliparse.Config
	validator TicketValidator
	tickets   *tickets.Store
}

func NewAuthHandler(db *sql.DB, cfg cliparse.Config, validator TicketValidator, store *tickets.Store) *AuthHandler {
	return &AuthHandler{db: db, cfg: cfg, validator: validator, tickets: store}
}

// SSOAuth handles GET /sso-auth?ticket=...
// One CAS round trip per callback, no retry. Success stores the ticket and
// sets it as the client credential; every failure redirects to the static
// failure page with no detail leaked.
func (h *AuthHandler) SSOAuth(w http.ResponseWriter, r *http.Request) {
	ticket := r.URL.Query().Get("ticket")
	if ticket == "" {
		http.Redirect(w, r, "/auth-failed", http.StatusSeeOther)
		return
	}

	caseID, err := h.validator.Validate(r.Context(), ticket, serviceCallbackURL(r))
	if err != nil {
		slog.Warn("SSO validation failed", "error", err)
		http.Redirect(w, r, "/auth-failed", http.StatusSeeOther)
		return
	}

	ipHash := auth.HashIP(middleware.GetClientIP(r), h.cfg.IPHashSalt)
	if err := h.tickets.Insert(ticket, caseID, ipHash); err != nil {
		// A credential we failed to persist is a credential the user does
		// not have; treat like any other failed login.
		slog.Error("failed to persist ticket", "error", err)
		http.Redirect(w, r, "/auth-failed", http.StatusSeeOther)
		return
	}

	auth.SetTicketCookie(w, ticket, h.cfg.TicketTTL)
	slog.Info("login succeeded", "case_id", caseID)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// CheckTicket handles GET /check-ticket
// Reports whether the caller's current credential is on record.
func (h *AuthHandler) CheckTicket(w http.ResponseWriter, r *http.Request) {
	valid := false
	if token, ok := auth.ReadTicketCookie(r); ok {
		var err error
		valid, err = h.tickets.IsValid(token)
		if err != nil {
			slog.Error("failed to check ticket", "error", err)
			middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
			return
		}
	}

	middleware.JSONResponse(w, http.StatusOK, models.CheckTicketResponse{Valid: valid})
}

// AuthFailed handles GET /auth-failed
func (h *AuthHandler) AuthFailed(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Write([]byte("Login failed. Please try signing in again."))
}

// serviceCallbackURL rebuilds the URL the CAS server redirected the client
// back to, from the request's own host. CAS requires it to match the
// original service parameter.
func serviceCallbackURL(r *http.Request) string {
	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}
	return scheme + "://" + r.Host + "/sso-auth"
}
