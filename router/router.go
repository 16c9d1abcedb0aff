// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"database/sql"
	"net/http"

	"github.com/danielhkuo/mealmeter/cas"
	"github.com/danielhkuo/mealmeter/cliparse"
	"github.com/danielhkuo/mealmeter/handlers"
	"github.com/danielhkuo/mealmeter/middleware"
	"github.com/danielhkuo/mealmeter/tickets"
)

func NewRouter(db *sql.DB, cfg cliparse.Config) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize handlers
	ticketStore := tickets.NewStore(db)
	casClient := cas.NewClient(cfg.CASValidateURL)

	statsHandler := handlers.NewStatsHandler(db, cfg)
	voteHandler := handlers.NewVoteHandler(db, cfg, ticketStore)
	authHandler := handlers.NewAuthHandler(db, cfg, casClient, ticketStore)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Meal stats (public)
	mux.HandleFunc("GET /stats", middleware.WithLogging(statsHandler.GetStats))

	// Voting (requires ticket credential)
	mux.HandleFunc("POST /vote", middleware.WithLogging(voteHandler.SubmitVote))

	// SSO flow
	mux.HandleFunc("GET /sso-auth", middleware.WithLogging(authHandler.SSOAuth))
	mux.HandleFunc("GET /check-ticket", middleware.WithLogging(authHandler.CheckTicket))
	mux.HandleFunc("GET /auth-failed", middleware.WithLogging(authHandler.AuthFailed))

	// Root endpoint
	mux.HandleFunc("GET /", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("mealmeter API v1"))
	})

	return mux
}
