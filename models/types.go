package models

// Request types

// Score is a pointer so a missing field is distinguishable from a zero score.
type VoteRequest struct {
	Score *int `json:"score"`
}

// Response types

// StatsResponse reports the active serving window and its running tally.
// The totals are only present while a meal is in progress; CurrentMeal is
// null outside every window.
type StatsResponse struct {
	CurrentMeal *string `json:"current_meal"`
	ScoresTotal *int64  `json:"scores_total,omitempty"`
	NumVotes    *int64  `json:"num_votes,omitempty"`
}

type VoteResponse struct {
	Message string `json:"message"`
}

type CheckTicketResponse struct {
	Valid bool `json:"valid"`
}

// Domain types

// Meal is one serving window on one service day. At most one row exists per
// (year, month, day, meal_period) tuple; rows are created lazily and never
// updated or deleted.
type Meal struct {
	ID         string `json:"id"`
	Year       int    `json:"year"`
	Month      int    `json:"month"`
	Day        int    `json:"day"`
	MealPeriod int    `json:"meal_period"`
}

// Vote is one voter's score for one meal. Immutable once inserted.
type Vote struct {
	ID          string `json:"id"`
	MealID      string `json:"meal_id"`
	VoterCaseID string `json:"-"` // Never expose in JSON
	Score       int    `json:"score"`
}

// Ticket mirrors a CAS credential locally. IssuedAt is epoch seconds.
type Ticket struct {
	ID       string  `json:"id"`
	Ticket   string  `json:"-"` // Never expose in JSON
	CaseID   string  `json:"-"` // Never expose in JSON
	IssuedAt int64   `json:"issued_at"`
	IPHash   *string `json:"-"` // Never expose in JSON
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
