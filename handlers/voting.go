// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/danielhkuo/mealmeter/auth"
	"github.com/danielhkuo/mealmeter/cliparse"
	"github.com/danielhkuo/mealmeter/middleware"
	"github.com/danielhkuo/mealmeter/models"
	"github.com/danielhkuo/mealmeter/tickets"
)

var (
	ErrNoMealInProgress = errors.New("no meal in progress")
	ErrAlreadyVoted     = errors.New("user already voted for this meal")
)

// insertVoteForCurrentMeal records one score against the serving window
// active at now. The vote row's UNIQUE(meal_id, voter_caseid) constraint is
// the authoritative duplicate check, so two near-simultaneous submissions
// cannot both land.
func insertVoteForCurrentMeal(db *sql.DB, now time.Time, caseID string, score int) error {
	meal, err := getOrCreateCurrentMeal(db, now)
	if err != nil {
		return err
	}
	if meal == nil {
		return ErrNoMealInProgress
	}

	id, err := auth.GenerateID(16)
	if err != nil {
		return err
	}

	_, err = db.Exec(`
		INSERT INTO vote (id, meal_id, voter_caseid, score)
		VALUES ($1, $2, $3, $4)
	`, id, meal.ID, caseID, score)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrAlreadyVoted
		}
		return fmt.Errorf("failed to insert vote: %w", err)
	}

	return nil
}

type VoteHandler struct {
	db      *sql.DB
	cfg     cliparse.Config
	tickets *tickets.Store
	now     func() time.Time
}

func NewVoteHandler(db *sql.DB, cfg cliparse.Config, store *tickets.Store) *VoteHandler {
	return &VoteHandler{db: db, cfg: cfg, tickets: store, now: time.Now}
}

// SubmitVote handles POST /vote
// The score is validated before the credential so an out-of-range value is
// reported as such regardless of auth state.
func (h *VoteHandler) SubmitVote(w http.ResponseWriter, r *http.Request) {
	var req models.VoteRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	if req.Score == nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, `"score" field is required`)
		return
	}
	score := *req.Score
	if score < 0 || score > 10 {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Score is out of range")
		return
	}

	token, ok := auth.ReadTicketCookie(r)
	if !ok {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Not authenticated")
		return
	}

	caseID, err := h.tickets.CaseID(token)
	if errors.Is(err, tickets.ErrTicketNotFound) {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Not authenticated")
		return
	}
	if err != nil {
		slog.Error("failed to resolve ticket", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	err = insertVoteForCurrentMeal(h.db, h.now(), caseID, score)
	switch {
	case errors.Is(err, ErrNoMealInProgress):
		middleware.ErrorResponse(w, http.StatusConflict, "No meal in progress")
	case errors.Is(err, ErrAlreadyVoted):
		middleware.ErrorResponse(w, http.StatusConflict, "User already submitted a vote for this period")
	case err != nil:
		slog.Error("failed to record vote", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
	default:
		slog.Info("vote recorded", "score", score)
		middleware.JSONResponse(w, http.StatusCreated, models.VoteResponse{
			Message: "Vote submitted",
		})
	}
}
