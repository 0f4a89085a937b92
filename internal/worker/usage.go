package worker

import (
	"context"
	"fmt"
	"time"

	"domainsuggest/internal/suggester"
	"domainsuggest/pkg/logger"
	"domainsuggest/pkg/serrors"

	"github.com/go-faster/errors"
	"github.com/google/uuid"
	"github.com/riverqueue/river"
	"go.uber.org/zap"
)

// usageJobTimeout bounds a single ledger write.
const usageJobTimeout = 30 * time.Second

// UsageWorker appends the usage ledger entry of a stored suggestion run.
// Recording is idempotent per run, so River retries are safe.
type UsageWorker struct {
	river.WorkerDefaults[suggester.UsageJobArgs]

	suggester suggester.Suggester
}

// NewUsageWorker constructs a UsageWorker recording through the given suggester.
func NewUsageWorker(suggester suggester.Suggester) *UsageWorker {
	return &UsageWorker{suggester: suggester}
}

// Timeout overrides River's default job timeout.
func (u *UsageWorker) Timeout(*river.Job[suggester.UsageJobArgs]) time.Duration {
	return usageJobTimeout
}

// Work records the job. Jobs that can never succeed are cancelled instead of
// retried.
func (u *UsageWorker) Work(ctx context.Context, job *river.Job[suggester.UsageJobArgs]) error {
	ctx = logger.WithFields(ctx,
		zap.Int64("jobID", job.ID),
		zap.Int("attempt", job.Attempt),
		zap.String("suggestionID", job.Args.SuggestionID.String()))

	if job.Args.SuggestionID == uuid.Nil || job.Args.UserID == uuid.Nil {
		return river.JobCancel(serrors.With(serrors.ErrBadRequest, "usage job without suggestion or user")) //nolint: wrapcheck
	}

	if err := u.suggester.RecordUsage(ctx, job.Args); err != nil {
		if errors.Is(err, serrors.ErrBadRequest) {
			return river.JobCancel(err) //nolint: wrapcheck
		}

		logger.Error(ctx, "could not record usage", zap.Error(err))

		return fmt.Errorf("could not record usage: %w", err)
	}

	logger.Debug(ctx, "usage recorded")

	return nil
}
