package postgres

import (
	"database/sql"
	"encoding/json"
	"time"

	"domainsuggest/pkg/domain"
	"domainsuggest/pkg/storage"

	"github.com/go-faster/errors"
	"github.com/google/uuid"
)

// PgSuggestion is a row of the suggestions table. Results and recommendation
// are stored as jsonb since they are only ever read back as a whole.
type PgSuggestion struct {
	ID     uuid.UUID `db:"id"      goqu:"skipinsert"`
	UserID uuid.UUID `db:"user_id"`

	Name          string `db:"name"`
	TargetCompany string `db:"target_company"`
	TargetRole    string `db:"target_role"`

	Results         json.RawMessage `db:"results"`
	Recommendation  json.RawMessage `db:"recommendation"`
	Candidates      int             `db:"candidates"`
	EstimatedProfit float64         `db:"estimated_profit"`

	CreatedAt time.Time    `db:"created_at" goqu:"skipinsert"`
	DeletedAt sql.NullTime `db:"deleted_at" goqu:"skipinsert"`
}

// ToDomain converts the row into a domain.Suggestion.
func (p *PgSuggestion) ToDomain() (*domain.Suggestion, error) {
	var results []domain.DomainResult
	if err := json.Unmarshal(p.Results, &results); err != nil {
		return nil, errors.Wrapf(storage.ErrCorruptRecord, "could not unmarshal results of %s: %v", p.ID, err)
	}
	var recommendation domain.Recommendation
	if err := json.Unmarshal(p.Recommendation, &recommendation); err != nil {
		return nil, errors.Wrapf(storage.ErrCorruptRecord, "could not unmarshal recommendation of %s: %v", p.ID, err)
	}

	return &domain.Suggestion{
		ID:     domain.SuggestionID(p.ID),
		UserID: domain.UserID(p.UserID),
		SuggestionSet: domain.SuggestionSet{
			Applicant: domain.Applicant{
				Name:          p.Name,
				TargetCompany: p.TargetCompany,
				TargetRole:    p.TargetRole,
			},
			Results:        results,
			Recommendation: recommendation,
			Insight:        domain.Insight{EstimatedAnnualProfit: p.EstimatedProfit},
			Candidates:     p.Candidates,
		},
		CreatedAt: p.CreatedAt,
		DeletedAt: p.DeletedAt.Time,
	}, nil
}

// FromDomain fills the row from a domain.Suggestion.
func (p *PgSuggestion) FromDomain(s domain.Suggestion) error {
	results := s.Results
	if results == nil {
		results = []domain.DomainResult{}
	}
	resultsJSON, err := json.Marshal(results)
	if err != nil {
		return errors.Wrap(err, "could not marshal results")
	}
	recommendationJSON, err := json.Marshal(s.Recommendation)
	if err != nil {
		return errors.Wrap(err, "could not marshal recommendation")
	}

	p.ID = uuid.UUID(s.ID)
	p.UserID = uuid.UUID(s.UserID)
	p.Name = s.Applicant.Name
	p.TargetCompany = s.Applicant.TargetCompany
	p.TargetRole = s.Applicant.TargetRole
	p.Results = resultsJSON
	p.Recommendation = recommendationJSON
	p.Candidates = s.Candidates
	p.EstimatedProfit = s.Insight.EstimatedAnnualProfit
	p.CreatedAt = s.CreatedAt
	if !s.DeletedAt.IsZero() {
		p.DeletedAt = sql.NullTime{Time: s.DeletedAt, Valid: true}
	}

	return nil
}

func domainSuggestionsToPg(suggestions []domain.Suggestion) ([]PgSuggestion, error) {
	rows := make([]PgSuggestion, len(suggestions))
	for i, s := range suggestions {
		if err := rows[i].FromDomain(s); err != nil {
			return nil, err
		}
	}

	return rows, nil
}

func pgSuggestionsToDomain(rows []PgSuggestion) ([]domain.Suggestion, error) {
	suggestions := make([]domain.Suggestion, 0, len(rows))
	for i := range rows {
		s, err := rows[i].ToDomain()
		if err != nil {
			return nil, err
		}
		suggestions = append(suggestions, *s)
	}

	return suggestions, nil
}

// PgUsageEvent is a row of the append-only usage_events table.
type PgUsageEvent struct {
	ID           int64     `db:"id"            goqu:"skipinsert"`
	UserID       uuid.UUID `db:"user_id"`
	SuggestionID uuid.UUID `db:"suggestion_id"`
	Operation    string    `db:"operation"`

	Candidates      int     `db:"candidates"`
	Available       int     `db:"available"`
	EstimatedProfit float64 `db:"estimated_profit"`

	CreatedAt time.Time `db:"created_at" goqu:"skipinsert"`
}

func (p *PgUsageEvent) FromDomain(e domain.UsageEvent) {
	p.UserID = uuid.UUID(e.UserID)
	p.SuggestionID = uuid.UUID(e.SuggestionID)
	p.Operation = string(e.Operation)
	p.Candidates = e.Candidates
	p.Available = e.Available
	p.EstimatedProfit = e.EstimatedProfit
}

// pgUsageTotals is the aggregate row of a usage summary query.
type pgUsageTotals struct {
	Requests        int64   `db:"requests"`
	Candidates      int64   `db:"candidates"`
	Available       int64   `db:"available"`
	EstimatedProfit float64 `db:"estimated_profit"`
}
