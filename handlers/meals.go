// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/danielhkuo/mealmeter/auth"
	"github.com/danielhkuo/mealmeter/mealclock"
	"github.com/danielhkuo/mealmeter/models"
)

// getOrCreateCurrentMeal returns the meal row for the serving window active
// at now, creating it on first use. Returns (nil, nil) when no window is
// active - voting is simply closed.
func getOrCreateCurrentMeal(db *sql.DB, now time.Time) (*models.Meal, error) {
	period, ok := mealclock.CurrentPeriod(now)
	if !ok {
		return nil, nil
	}
	year, month, day := mealclock.ServiceDay(now)

	id, err := auth.GenerateID(16)
	if err != nil {
		return nil, err
	}

	// ON CONFLICT DO NOTHING makes concurrent first-requests of a window
	// converge on a single row; the UNIQUE constraint is the arbiter.
	_, err = db.Exec(`
		INSERT INTO meal (id, year, month, day, meal_period)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (year, month, day, meal_period) DO NOTHING
	`, id, year, month, day, period.Code())
	if err != nil {
		return nil, fmt.Errorf("failed to create meal: %w", err)
	}

	var meal models.Meal
	err = db.QueryRow(`
		SELECT id, year, month, day, meal_period
		FROM meal
		WHERE year = $1 AND month = $2 AND day = $3 AND meal_period = $4
	`, year, month, day, period.Code()).Scan(
		&meal.ID, &meal.Year, &meal.Month, &meal.Day, &meal.MealPeriod,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch meal: %w", err)
	}

	return &meal, nil
}

// getMealStats returns the score total and vote count for one meal.
// A meal with no votes reports 0/0.
func getMealStats(db *sql.DB, mealID string) (total int64, count int64, err error) {
	err = db.QueryRow(`
		SELECT COALESCE(SUM(score), 0), COUNT(*)
		FROM vote
		WHERE meal_id = $1
	`, mealID).Scan(&total, &count)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to query meal stats: %w", err)
	}
	return total, count, nil
}

// isUniqueViolation matches the duplicate-key errors of both supported
// drivers (modernc sqlite and lib/pq).
func isUniqueViolation(err error) bool {
	msg := err.Error()
	return strings.Contains(msg, "UNIQUE constraint failed") ||
		strings.Contains(msg, "duplicate key value violates unique constraint")
}
