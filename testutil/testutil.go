// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/danielhkuo/mealmeter/auth"
	"github.com/danielhkuo/mealmeter/cliparse"
	"github.com/danielhkuo/mealmeter/db"
)

// SetupTestDB creates a fresh in-memory SQLite database with the full
// schema. Each test gets its own named memory database so parallel tests
// never share state.
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	dsn := "file:" + uuid.NewString() + "?mode=memory&cache=shared"
	conn, err := sql.Open("sqlite", dsn)
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}

	// A single connection keeps the memory database alive and serializes
	// concurrent writers instead of surfacing SQLITE_BUSY.
	conn.SetMaxOpenConns(1)

	if err := db.CreateSchema(conn); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	return conn
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:           8080,
		DatabaseURL:    "file:test?mode=memory",
		DatabaseType:   "sqlite",
		CASValidateURL: "https://login.example.edu/cas/validate",
		TicketTTL:      5 * 24 * time.Hour,
		GCInterval:     5 * 24 * time.Hour,
		IPHashSalt:     "test-ip-salt",
	}
}

// CreateTestMeal inserts a meal row for the given service day and period
// and returns its ID.
func CreateTestMeal(t *testing.T, conn *sql.DB, year, month, day, period int) string {
	t.Helper()

	mealID, _ := auth.GenerateID(16)
	_, err := conn.Exec(`
		INSERT INTO meal (id, year, month, day, meal_period)
		VALUES ($1, $2, $3, $4, $5)
	`, mealID, year, month, day, period)
	if err != nil {
		t.Fatalf("Failed to create test meal: %v", err)
	}

	return mealID
}

// SubmitTestVote inserts a vote row directly.
func SubmitTestVote(t *testing.T, conn *sql.DB, mealID, caseID string, score int) string {
	t.Helper()

	voteID, _ := auth.GenerateID(16)
	_, err := conn.Exec(`
		INSERT INTO vote (id, meal_id, voter_caseid, score)
		VALUES ($1, $2, $3, $4)
	`, voteID, mealID, caseID, score)
	if err != nil {
		t.Fatalf("Failed to create test vote: %v", err)
	}

	return voteID
}

// CreateTestTicket inserts a ticket row with an explicit issuance time.
func CreateTestTicket(t *testing.T, conn *sql.DB, ticket, caseID string, issuedAt time.Time) {
	t.Helper()

	id, _ := auth.GenerateID(16)
	_, err := conn.Exec(`
		INSERT INTO ticket (id, ticket, case_id, issued_at, ip_hash)
		VALUES ($1, $2, $3, $4, $5)
	`, id, ticket, caseID, issuedAt.Unix(), "")
	if err != nil {
		t.Fatalf("Failed to create test ticket: %v", err)
	}
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
