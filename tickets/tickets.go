// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package tickets

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/danielhkuo/mealmeter/auth"
)

var ErrTicketNotFound = errors.New("ticket not found")

// Store persists CAS tickets. The clock is a field so tests can pin time.
type Store struct {
	db  *sql.DB
	now func() time.Time
}

func NewStore(db *sql.DB) *Store {
	return &Store{db: db, now: time.Now}
}

// Insert records a freshly validated ticket for the given case ID. The CAS
// protocol guarantees ticket uniqueness per login, so there is no
// pre-check; the UNIQUE column is only a backstop.
func (s *Store) Insert(ticket, caseID, ipHash string) error {
	id, err := auth.GenerateID(16)
	if err != nil {
		return err
	}

	_, err = s.db.Exec(`
		INSERT INTO ticket (id, ticket, case_id, issued_at, ip_hash)
		VALUES ($1, $2, $3, $4, $5)
	`, id, ticket, caseID, s.now().Unix(), ipHash)
	if err != nil {
		return fmt.Errorf("failed to insert ticket: %w", err)
	}
	return nil
}

// IsValid reports whether the ticket is currently on record. Existence is
// the whole check - expiry is enforced by the purge loop, not here.
func (s *Store) IsValid(ticket string) (bool, error) {
	var exists bool
	err := s.db.QueryRow(`
		SELECT EXISTS(SELECT 1 FROM ticket WHERE ticket = $1)
	`, ticket).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check ticket: %w", err)
	}
	return exists, nil
}

// CaseID resolves a ticket back to the voter identity it was issued for.
func (s *Store) CaseID(ticket string) (string, error) {
	var caseID string
	err := s.db.QueryRow(`
		SELECT case_id FROM ticket WHERE ticket = $1
	`, ticket).Scan(&caseID)
	if err == sql.ErrNoRows {
		return "", ErrTicketNotFound
	}
	if err != nil {
		return "", fmt.Errorf("failed to look up ticket: %w", err)
	}
	return caseID, nil
}

// PurgeOld deletes every ticket issued at or before now minus ttl and
// returns the number deleted.
func (s *Store) PurgeOld(ttl time.Duration) (int64, error) {
	cutoff := s.now().Add(-ttl).Unix()
	res, err := s.db.Exec(`DELETE FROM ticket WHERE issued_at <= $1`, cutoff)
	if err != nil {
		return 0, fmt.Errorf("failed to purge tickets: %w", err)
	}
	return res.RowsAffected()
}

// RunGC purges expired tickets on a fixed interval until ctx is cancelled.
// A failed purge is logged and retried on the next tick.
func RunGC(ctx context.Context, store *Store, interval, ttl time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			slog.Info("ticket GC stopped")
			return
		case <-ticker.C:
			n, err := store.PurgeOld(ttl)
			if err != nil {
				slog.Error("ticket purge failed", "error", err)
				continue
			}
			if n > 0 {
				slog.Info("purged expired tickets", "count", n)
			}
		}
	}
}
