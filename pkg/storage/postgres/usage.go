package postgres

import (
	"context"
	"fmt"
	"time"

	"domainsuggest/pkg/domain"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"
)

const (
	usageEventsTable = "usage_events"
)

// StoreUsageEvents appends events, skipping any whose suggestion_id is already
// in the ledger.
func (p *PgSQL) StoreUsageEvents(ctx context.Context, events ...domain.UsageEvent) error {
	if len(events) == 0 {
		return nil
	}

	rows := make([]PgUsageEvent, len(events))
	for i, e := range events {
		rows[i].FromDomain(e)
	}

	if _, err := p.Builder.Insert(usageEventsTable).
		Rows(rows).
		OnConflict(goqu.DoNothing()).
		Executor().ExecContext(ctx); err != nil {
		return fmt.Errorf("could not store usage events into pg: %w", err)
	}

	return nil
}

// UsageSummary sums the ledger of a user from since onwards.
func (p *PgSQL) UsageSummary(ctx context.Context, userID domain.UserID, since time.Time) (domain.UsageSummary, error) {
	var totals pgUsageTotals
	_, err := p.Builder.From(usageEventsTable).
		Select(
			goqu.COUNT(goqu.Star()).As("requests"),
			goqu.COALESCE(goqu.SUM("candidates"), 0).As("candidates"),
			goqu.COALESCE(goqu.SUM("available"), 0).As("available"),
			goqu.COALESCE(goqu.SUM("estimated_profit"), 0).As("estimated_profit"),
		).
		Where(
			goqu.I("user_id").Eq(uuid.UUID(userID)),
			goqu.I("created_at").Gte(since),
		).
		ScanStructContext(ctx, &totals)
	if err != nil {
		return domain.UsageSummary{}, fmt.Errorf("could not summarize usage in pg: %w", err)
	}

	return domain.UsageSummary{
		Since:           since,
		Requests:        totals.Requests,
		Candidates:      totals.Candidates,
		Available:       totals.Available,
		EstimatedProfit: totals.EstimatedProfit,
	}, nil
}
