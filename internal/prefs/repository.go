// Package prefs remembers each visitor's chosen comment limit between page loads.
package prefs

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/roland/portfolio/internal/comment"
)

// Repository stores visitor preferences in SQLite.
type Repository struct {
	db *sql.DB
}

// NewRepository creates a preference repository.
func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

// MaxComments returns the visitor's saved limit. ok is false when none is saved.
func (r *Repository) MaxComments(visitorID string) (n int, ok bool, err error) {
	err = r.db.QueryRow(
		"SELECT max_comments FROM visitor_prefs WHERE visitor_id = ?", visitorID,
	).Scan(&n)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("reading max comments: %w", err)
	}
	return n, true, nil
}

// SetMaxComments saves the visitor's limit, clamped to the allowed range.
func (r *Repository) SetMaxComments(visitorID string, n int) error {
	if visitorID == "" {
		return fmt.Errorf("visitor id is required")
	}
	_, err := r.db.Exec(
		`INSERT INTO visitor_prefs (visitor_id, max_comments) VALUES (?, ?)
		 ON CONFLICT(visitor_id) DO UPDATE SET max_comments = excluded.max_comments, updated_at = CURRENT_TIMESTAMP`,
		visitorID, comment.ClampMaxComments(n),
	)
	if err != nil {
		return fmt.Errorf("saving max comments: %w", err)
	}
	return nil
}
