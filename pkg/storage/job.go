package storage

import (
	"context"

	"github.com/riverqueue/river"
)

// JobStorage enqueues background jobs. When the handle is transactional the job
// only becomes visible once the transaction commits.
type JobStorage interface {
	// AddJob enqueues a job and reports whether it was inserted (false when it
	// was skipped as a unique duplicate).
	AddJob(ctx context.Context, args river.JobArgs, opts *river.InsertOpts) (bool, error)
}
