package storage

import (
	"context"
	"time"

	"domainsuggest/pkg/domain"
)

// Cursor is a position in a listing ordered by created_at DESC, id DESC. The
// zero Cursor is the start of the listing.
type Cursor struct {
	CreatedAt time.Time
	ID        domain.SuggestionID
}

// IsZero reports whether c is the start of the listing.
func (c Cursor) IsZero() bool {
	return c.CreatedAt.IsZero()
}

// UserSuggestions is a page of stored runs with an optional cursor for the
// next page.
type UserSuggestions struct {
	// Suggestions contains the current page, newest first.
	Suggestions []domain.Suggestion
	// NextCursor points at the last row of this page. It is nil when there is
	// no next page.
	NextCursor *Cursor
}

// SuggestionStorage stores suggestion runs. Deletes are soft; soft-deleted rows
// are invisible to every read.
type SuggestionStorage interface {
	// StoreSuggestions inserts one or more runs and returns them as stored
	// (with generated ID and CreatedAt).
	StoreSuggestions(ctx context.Context, suggestions ...domain.Suggestion) ([]domain.Suggestion, error)
	// UserSuggestions returns runs of a user that sort after cursor, newest
	// first, at most limit rows.
	UserSuggestions(ctx context.Context, userID domain.UserID, cursor Cursor, limit uint) (UserSuggestions, error)
	// SuggestionByID returns a run of the given user, or nil if not found.
	SuggestionByID(ctx context.Context, userID domain.UserID, ID domain.SuggestionID) (*domain.Suggestion, error)
	// DeleteSuggestion soft-deletes a run of the given user and returns it, or
	// nil if it was not found.
	DeleteSuggestion(ctx context.Context, userID domain.UserID, ID domain.SuggestionID) (*domain.Suggestion, error)
}
