package suggester

import (
	"context"
	"fmt"
	"strings"
	"time"

	"domainsuggest/internal/config"
	"domainsuggest/internal/engine"
	"domainsuggest/pkg/domain"
	"domainsuggest/pkg/logger"
	"domainsuggest/pkg/serrors"
	"domainsuggest/pkg/storage"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	// DefaultPageSize is used when a listing asks for no explicit limit.
	DefaultPageSize = 20
	// MaxPageSize caps a listing page.
	MaxPageSize = 100
	// DefaultUsageDays is the usage window when none is given.
	DefaultUsageDays = 30
	// MaxUsageDays is the widest usage window.
	MaxUsageDays = 365
	// MaxPricingDomains caps the domains quoted by one pricing report.
	MaxPricingDomains = 20
)

// InputRequiredMessage is returned when name or target company is blank.
const InputRequiredMessage = "name and target company are required"

// Options configure the production pathway and the usage ledger.
type Options struct {
	// Engine bounds each production run.
	Engine engine.Options
	// MaxAttempts is the number of attempts of a usage job.
	MaxAttempts int
	// Now is the clock used for usage windows; nil means time.Now.
	Now func() time.Time
	// NewSource creates the availability RandomSource of each run; nil means
	// engine.NewRandomSource.
	NewSource func() engine.RandomSource
}

// NewOptions constructs an Options value from the provided application config.
func NewOptions(cfg *config.Config) Options {
	return Options{
		Engine: engine.Options{
			MaxCandidates: cfg.Suggestions.MaxCandidates,
			MaxResults:    cfg.Suggestions.MaxResults,
		},
		MaxAttempts: cfg.Usage.MaxAttempts,
	}
}

// suggester is the concrete implementation of the Suggester interface.
type suggester struct {
	options Options
	engine  *engine.Engine
	storage storage.Storage
}

// ValidateApplicant trims the applicant fields and fails with a bad request
// when the name or target company is blank.
func ValidateApplicant(a domain.Applicant) (domain.Applicant, error) {
	a.Name = strings.TrimSpace(a.Name)
	a.TargetCompany = strings.TrimSpace(a.TargetCompany)
	a.TargetRole = strings.TrimSpace(a.TargetRole)
	if a.Name == "" || a.TargetCompany == "" {
		return a, serrors.With(serrors.ErrBadRequest, InputRequiredMessage)
	}

	return a, nil
}

// Suggest runs the engine for the applicant. Authenticated runs are stored
// together with their usage job in one transaction.
func (s suggester) Suggest(ctx context.Context, userID *domain.UserID, applicant domain.Applicant) (*domain.Suggestion, error) {
	applicant, err := ValidateApplicant(applicant)
	if err != nil {
		return nil, err
	}

	set := s.engine.Suggest(applicant)
	logger.Debug(ctx, "suggestions generated",
		zap.Int("candidates", set.Candidates),
		zap.Int("available", set.AvailableCount()),
		zap.String("topChoice", set.Recommendation.TopChoice))

	if userID == nil {
		return &domain.Suggestion{SuggestionSet: set}, nil
	}

	var stored *domain.Suggestion
	if err := s.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		res, err := tx.StoreSuggestions(ctx, domain.Suggestion{
			UserID:        *userID,
			SuggestionSet: set,
		})
		if err != nil {
			return fmt.Errorf("could not store suggestion: %w", err)
		}
		stored = &res[0]

		if _, err := tx.AddJob(ctx, UsageJobArgs{
			UserID:          uuid.UUID(*userID),
			SuggestionID:    uuid.UUID(stored.ID),
			Candidates:      set.Candidates,
			Available:       set.AvailableCount(),
			EstimatedProfit: set.Insight.EstimatedAnnualProfit,
			maxAttempts:     s.options.MaxAttempts,
		}, nil); err != nil {
			return fmt.Errorf("could not add usage job: %w", err)
		}

		return nil
	}); err != nil {
		return nil, fmt.Errorf("could not persist suggestion: %w", err)
	}

	return stored, nil
}

// Demo runs the uncapped pathway for the fixed demo applicant. It is never stored.
func (s suggester) Demo(_ context.Context) (domain.Demo, error) {
	return s.engine.Demo(), nil
}

// PricingReport quotes domains, or the sample domains when none are given.
func (s suggester) PricingReport(_ context.Context, domains []string) (domain.PricingReport, error) {
	if len(domains) > MaxPricingDomains {
		return domain.PricingReport{}, serrors.With(serrors.ErrBadRequest, "at most %d domains can be priced at once", MaxPricingDomains)
	}
	normalized := make([]string, 0, len(domains))
	for _, d := range domains {
		d = strings.ToLower(strings.TrimSpace(d))
		if !engine.Validate(d) {
			return domain.PricingReport{}, serrors.With(serrors.ErrBadRequest, "invalid domain %q", d)
		}
		normalized = append(normalized, d)
	}

	return engine.PricingReport(normalized), nil
}

// UserSuggestions returns a page of stored runs. The cursor is the opaque
// value returned by the previous page.
func (s suggester) UserSuggestions(ctx context.Context,
	userID domain.UserID,
	cursor string,
	limit uint) ([]domain.Suggestion, string, error) {
	pos, err := ParseCursor(cursor)
	if err != nil {
		return nil, "", serrors.Wrap(serrors.ErrBadRequest, err, "invalid cursor")
	}
	if limit == 0 {
		limit = DefaultPageSize
	}
	limit = min(limit, MaxPageSize)

	page, err := s.storage.UserSuggestions(ctx, userID, pos, limit)
	if err != nil {
		return nil, "", fmt.Errorf("could not get user suggestions: %w", err)
	}

	var next string
	if page.NextCursor != nil {
		next = EncodeCursor(*page.NextCursor)
	}

	return page.Suggestions, next, nil
}

// Result fetches a single stored run of the user.
func (s suggester) Result(ctx context.Context, userID domain.UserID, ID domain.SuggestionID) (*domain.Suggestion, error) {
	res, err := s.storage.SuggestionByID(ctx, userID, ID)
	if err != nil {
		return nil, fmt.Errorf("could not get suggestion: %w", err)
	}
	if res == nil {
		return nil, serrors.With(serrors.ErrNotFound, "suggestion not found")
	}

	return res, nil
}

// Delete soft-deletes a stored run. Its usage entry stays in the ledger.
func (s suggester) Delete(ctx context.Context, userID domain.UserID, ID domain.SuggestionID) error {
	res, err := s.storage.DeleteSuggestion(ctx, userID, ID)
	if err != nil {
		return fmt.Errorf("could not delete suggestion: %w", err)
	}
	if res == nil {
		return serrors.With(serrors.ErrNotFound, "suggestion not found")
	}

	return nil
}

// Usage totals the ledger of the user over the last days days.
func (s suggester) Usage(ctx context.Context, userID domain.UserID, days int) (domain.UsageSummary, error) {
	if days == 0 {
		days = DefaultUsageDays
	}
	if days < 0 || days > MaxUsageDays {
		return domain.UsageSummary{}, serrors.With(serrors.ErrBadRequest, "days must be between 1 and %d", MaxUsageDays)
	}

	since := s.options.Now().AddDate(0, 0, -days)
	summary, err := s.storage.UsageSummary(ctx, userID, since)
	if err != nil {
		return domain.UsageSummary{}, fmt.Errorf("could not get usage summary: %w", err)
	}

	return summary, nil
}

// RecordUsage appends the ledger entry of a usage job.
func (s suggester) RecordUsage(ctx context.Context, args UsageJobArgs) error {
	if err := s.storage.StoreUsageEvents(ctx, domain.UsageEvent{
		UserID:          domain.UserID(args.UserID),
		SuggestionID:    domain.SuggestionID(args.SuggestionID),
		Operation:       domain.UsageOperationSuggest,
		Candidates:      args.Candidates,
		Available:       args.Available,
		EstimatedProfit: args.EstimatedProfit,
	}); err != nil {
		return fmt.Errorf("could not record usage: %w", err)
	}

	return nil
}

// New creates a new Suggester backed by the provided storage.
func New(storage storage.Storage, options Options) Suggester {
	if options.Now == nil {
		options.Now = time.Now
	}

	return &suggester{
		options: options,
		engine:  engine.New(options.Engine, options.NewSource),
		storage: storage,
	}
}
