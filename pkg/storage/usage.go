package storage

import (
	"context"
	"time"

	"domainsuggest/pkg/domain"
)

// UsageStorage is the append-only usage ledger.
type UsageStorage interface {
	// StoreUsageEvents appends events. An event whose SuggestionID is already
	// recorded is skipped, so redelivered jobs do not double count.
	StoreUsageEvents(ctx context.Context, events ...domain.UsageEvent) error
	// UsageSummary totals the events of a user created at or after since.
	UsageSummary(ctx context.Context, userID domain.UserID, since time.Time) (domain.UsageSummary, error)
}
