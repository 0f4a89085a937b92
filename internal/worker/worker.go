package worker

import (
	"context"
	"fmt"
	"log/slog"

	"domainsuggest/internal/suggester"
	"domainsuggest/pkg/logger"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/riverqueue/river"
	"github.com/riverqueue/river/riverdriver/riverpgxv5"
	"go.uber.org/zap/exp/zapslog"
)

// DefaultWorkers is the default-queue concurrency when Options.Workers is unset.
const DefaultWorkers = 10

// Options configure the River client started by Start.
type Options struct {
	// Workers is the maximum number of concurrent jobs of the default queue.
	Workers int
}

// Start registers the workers of the service and starts a River client on the
// pool. The caller stops it with Stop on shutdown.
func Start(ctx context.Context,
	dbPool *pgxpool.Pool,
	suggester suggester.Suggester,
	options Options) (*river.Client[pgx.Tx], error) {
	workers := river.NewWorkers()
	river.AddWorker(workers, NewUsageWorker(suggester))

	maxWorkers := options.Workers
	if maxWorkers <= 0 {
		maxWorkers = DefaultWorkers
	}

	riverClient, err := river.NewClient(riverpgxv5.New(dbPool), &river.Config{
		Queues: map[string]river.QueueConfig{
			river.QueueDefault: {MaxWorkers: maxWorkers},
		},
		Workers: workers,
		Logger:  slog.New(zapslog.NewHandler(logger.Get(ctx).Core())),
	})
	if err != nil {
		return nil, fmt.Errorf("could not create river queue client: %w", err)
	}

	if err := riverClient.Start(ctx); err != nil {
		return nil, fmt.Errorf("could not start river queue client: %w", err)
	}

	return riverClient, nil
}
