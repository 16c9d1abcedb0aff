// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"log/slog"
	"net/http"
	"time"

	"github.com/danielhkuo/mealmeter/cliparse"
	"github.com/danielhkuo/mealmeter/mealclock"
	"github.com/danielhkuo/mealmeter/middleware"
	"github.com/danielhkuo/mealmeter/models"
)

type StatsHandler struct {
	db  *sql.DB
	cfg cliparse.Config
	now func() time.Time
}

func NewStatsHandler(db *sql.DB, cfg cliparse.Config) *StatsHandler {
	return &StatsHandler{db: db, cfg: cfg, now: time.Now}
}

// GetStats handles GET /stats
// Reports the active serving window with its running tally. Outside every
// window, current_meal is null and the totals are omitted.
func (h *StatsHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	meal, err := getOrCreateCurrentMeal(h.db, h.now())
	if err != nil {
		slog.Error("failed to resolve current meal", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	resp := models.StatsResponse{}
	if meal != nil {
		period, ok := mealclock.PeriodFromCode(meal.MealPeriod)
		if !ok {
			slog.Error("meal row has unknown period code", "meal_id", meal.ID, "code", meal.MealPeriod)
			middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
			return
		}
		token := period.String()
		resp.CurrentMeal = &token

		total, count, err := getMealStats(h.db, meal.ID)
		if err != nil {
			slog.Error("failed to query stats", "error", err, "meal_id", meal.ID)
			middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
			return
		}
		resp.ScoresTotal = &total
		resp.NumVotes = &count
	}

	middleware.JSONResponse(w, http.StatusOK, resp)
}
