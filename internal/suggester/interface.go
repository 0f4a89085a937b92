package suggester

import (
	"context"

	"domainsuggest/pkg/domain"
)

//go:generate mockgen -package mocksuggester -source=interface.go -destination=mock/mocksuggester.go *
type Suggester interface {
	// Suggest runs the production pathway. With a non-nil userID the run is
	// stored and metered; anonymous runs are only returned.
	Suggest(ctx context.Context, userID *domain.UserID, applicant domain.Applicant) (*domain.Suggestion, error)
	Demo(ctx context.Context) (domain.Demo, error)
	PricingReport(ctx context.Context, domains []string) (domain.PricingReport, error)
	UserSuggestions(ctx context.Context,
		userID domain.UserID,
		cursor string,
		limit uint) ([]domain.Suggestion, string, error)
	Result(ctx context.Context, userID domain.UserID, ID domain.SuggestionID) (*domain.Suggestion, error)
	Delete(ctx context.Context, userID domain.UserID, ID domain.SuggestionID) error
	Usage(ctx context.Context, userID domain.UserID, days int) (domain.UsageSummary, error)
	RecordUsage(ctx context.Context, args UsageJobArgs) error
}
