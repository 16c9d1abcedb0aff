// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/danielhkuo/mealmeter/auth"
	"github.com/danielhkuo/mealmeter/models"
	"github.com/danielhkuo/mealmeter/testutil"
	"github.com/danielhkuo/mealmeter/tickets"
)

func newTestVoteHandler(t *testing.T) (*VoteHandler, *tickets.Store, func()) {
	t.Helper()

	db := testutil.SetupTestDB(t)
	store := tickets.NewStore(db)
	handler := NewVoteHandler(db, testutil.GetTestConfig(), store)
	handler.now = func() time.Time { return tuesdayLunch }

	return handler, store, func() { db.Close() }
}

func withTicket(req *http.Request, token string) *http.Request {
	req.AddCookie(&http.Cookie{Name: auth.TicketCookie, Value: token})
	return req
}

func intPtr(v int) *int { return &v }

func TestSubmitVote(t *testing.T) {
	handler, store, cleanup := newTestVoteHandler(t)
	defer cleanup()

	if err := store.Insert("ST-abc", "abc123", ""); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name           string
		body           interface{}
		ticket         string
		expectedStatus int
	}{
		{
			name:           "valid vote",
			body:           models.VoteRequest{Score: intPtr(7)},
			ticket:         "ST-abc",
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "second vote same meal",
			body:           models.VoteRequest{Score: intPtr(3)},
			ticket:         "ST-abc",
			expectedStatus: http.StatusConflict,
		},
		{
			name:           "score too high",
			body:           models.VoteRequest{Score: intPtr(11)},
			ticket:         "ST-abc",
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "score negative",
			body:           models.VoteRequest{Score: intPtr(-1)},
			ticket:         "ST-abc",
			expectedStatus: http.StatusBadRequest,
		},
		{
			// Range check runs before auth, so a bad score is reported as
			// such even without a credential
			name:           "score out of range without auth",
			body:           models.VoteRequest{Score: intPtr(11)},
			ticket:         "",
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "missing score field",
			body:           map[string]int{},
			ticket:         "ST-abc",
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "no credential",
			body:           models.VoteRequest{Score: intPtr(5)},
			ticket:         "",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "unknown ticket",
			body:           models.VoteRequest{Score: intPtr(5)},
			ticket:         "ST-forged",
			expectedStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := testutil.MakeRequest("POST", "/vote", tt.body, nil)
			if tt.ticket != "" {
				withTicket(req, tt.ticket)
			}
			w := httptest.NewRecorder()

			handler.SubmitVote(w, req)
			testutil.AssertStatus(t, w, tt.expectedStatus)
		})
	}
}

func TestSubmitVoteNoMealInProgress(t *testing.T) {
	handler, store, cleanup := newTestVoteHandler(t)
	defer cleanup()

	handler.now = func() time.Time { return tuesdayNight }
	if err := store.Insert("ST-abc", "abc123", ""); err != nil {
		t.Fatal(err)
	}

	req := withTicket(testutil.MakeRequest("POST", "/vote", models.VoteRequest{Score: intPtr(7)}, nil), "ST-abc")
	w := httptest.NewRecorder()
	handler.SubmitVote(w, req)

	testutil.AssertStatus(t, w, http.StatusConflict)

	var resp models.ErrorResponse
	testutil.AssertJSON(t, w, &resp)
	if resp.Message != "No meal in progress" {
		t.Errorf("message = %q, want %q", resp.Message, "No meal in progress")
	}
}

func TestSubmitVoteNextWindowAllowsRevote(t *testing.T) {
	handler, store, cleanup := newTestVoteHandler(t)
	defer cleanup()

	if err := store.Insert("ST-abc", "abc123", ""); err != nil {
		t.Fatal(err)
	}

	req := withTicket(testutil.MakeRequest("POST", "/vote", models.VoteRequest{Score: intPtr(4)}, nil), "ST-abc")
	w := httptest.NewRecorder()
	handler.SubmitVote(w, req)
	testutil.AssertStatus(t, w, http.StatusCreated)

	// Same voter, same day, dinner window: a fresh meal, a fresh vote
	handler.now = func() time.Time { return tuesdayLunch.Add(6 * time.Hour) }
	req = withTicket(testutil.MakeRequest("POST", "/vote", models.VoteRequest{Score: intPtr(9)}, nil), "ST-abc")
	w = httptest.NewRecorder()
	handler.SubmitVote(w, req)
	testutil.AssertStatus(t, w, http.StatusCreated)
}
