package suggester

import (
	"github.com/google/uuid"
	"github.com/riverqueue/river"
	"github.com/riverqueue/river/rivertype"
)

// UsageJobArgs carries a stored run to the usage ledger. It is enqueued in the
// same transaction that stores the run.
type UsageJobArgs struct {
	UserID uuid.UUID `json:"userId"`
	// SuggestionID is unique so a run is metered at most once.
	SuggestionID    uuid.UUID `json:"suggestionId"    river:"unique"`
	Candidates      int       `json:"candidates"`
	Available       int       `json:"available"`
	EstimatedProfit float64   `json:"estimatedProfit"`

	// maxAttempts configures the maximum number of times River should retry the job.
	maxAttempts int
}

// Kind returns the River job kind used to dispatch the usage worker.
func (args UsageJobArgs) Kind() string { return "RecordUsageJob" }

// InsertOpts returns the River options used when the job is enqueued.
func (args UsageJobArgs) InsertOpts() river.InsertOpts {
	return river.InsertOpts{
		MaxAttempts: args.maxAttempts,
		UniqueOpts: river.UniqueOpts{
			ByArgs: true,
			ByState: []rivertype.JobState{
				rivertype.JobStateAvailable,
				rivertype.JobStateCompleted,
				rivertype.JobStatePending,
				rivertype.JobStateRunning,
				rivertype.JobStateRetryable,
				rivertype.JobStateScheduled,
			},
		},
	}
}
