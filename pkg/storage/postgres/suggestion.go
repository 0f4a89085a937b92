package postgres

import (
	"context"
	"fmt"

	"domainsuggest/pkg/domain"
	"domainsuggest/pkg/storage"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"
)

const (
	suggestionsTable = "suggestions"
)

func (p *PgSQL) StoreSuggestions(ctx context.Context, suggestions ...domain.Suggestion) ([]domain.Suggestion, error) {
	if len(suggestions) == 0 {
		return nil, nil
	}

	rows, err := domainSuggestionsToPg(suggestions)
	if err != nil {
		return nil, err
	}

	var result []PgSuggestion
	if err := p.Builder.Insert(suggestionsTable).
		Rows(rows).
		Returning(&PgSuggestion{}).
		Executor().ScanStructsContext(ctx, &result); err != nil {
		return nil, fmt.Errorf("could not store suggestions into pg: %w", err)
	}

	return pgSuggestionsToDomain(result)
}

// UserSuggestions returns a page of runs ordered by created_at DESC, id DESC.
// The cursor compares on (created_at, id) so rows sharing a timestamp are
// neither skipped nor repeated. One extra row is fetched to find out whether a
// next page exists.
func (p *PgSQL) UserSuggestions(ctx context.Context,
	userID domain.UserID,
	cursor storage.Cursor,
	limit uint) (storage.UserSuggestions, error) {
	w := []goqu.Expression{
		goqu.I("user_id").Eq(uuid.UUID(userID)),
		goqu.I("deleted_at").IsNull(),
	}
	if !cursor.IsZero() {
		w = append(w, goqu.Or(
			goqu.I("created_at").Lt(cursor.CreatedAt),
			goqu.And(
				goqu.I("created_at").Eq(cursor.CreatedAt),
				goqu.I("id").Lt(uuid.UUID(cursor.ID)),
			),
		))
	}

	var rows []PgSuggestion
	if err := p.Builder.From(suggestionsTable).
		Where(w...).
		Order(goqu.I("created_at").Desc(), goqu.I("id").Desc()).
		Limit(limit+1).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return storage.UserSuggestions{}, fmt.Errorf("could not fetch user suggestions from pg: %w", err)
	}

	var nextCursor *storage.Cursor
	if uint(len(rows)) > limit {
		rows = rows[:limit]
		if limit > 0 {
			last := rows[len(rows)-1]
			nextCursor = &storage.Cursor{CreatedAt: last.CreatedAt, ID: domain.SuggestionID(last.ID)}
		}
	}

	suggestions, err := pgSuggestionsToDomain(rows)
	if err != nil {
		return storage.UserSuggestions{}, err
	}

	return storage.UserSuggestions{
		Suggestions: suggestions,
		NextCursor:  nextCursor,
	}, nil
}

// SuggestionByID returns a run by its ID, excluding soft-deleted rows.
func (p *PgSQL) SuggestionByID(ctx context.Context, userID domain.UserID, id domain.SuggestionID) (*domain.Suggestion, error) {
	var row PgSuggestion
	found, err := p.Builder.From(suggestionsTable).
		Where(
			goqu.I("id").Eq(uuid.UUID(id)),
			goqu.I("user_id").Eq(uuid.UUID(userID)),
			goqu.I("deleted_at").IsNull(),
		).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch suggestion by id: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain()
}

// DeleteSuggestion sets deleted_at on a run of the given user and returns the
// deleted record.
func (p *PgSQL) DeleteSuggestion(ctx context.Context, userID domain.UserID, id domain.SuggestionID) (*domain.Suggestion, error) {
	var row PgSuggestion
	found, err := p.Builder.Update(suggestionsTable).
		Set(goqu.Record{
			"deleted_at": goqu.L("CURRENT_TIMESTAMP"),
		}).Where(
		goqu.I("id").Eq(uuid.UUID(id)),
		goqu.I("user_id").Eq(uuid.UUID(userID)),
		goqu.I("deleted_at").IsNull(),
	).Returning(&PgSuggestion{}).Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not delete suggestion in pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain()
}
