package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/riverqueue/river"
	"github.com/riverqueue/river/riverdriver/riverdatabasesql"
	"github.com/riverqueue/river/rivertype"
)

// AddJob enqueues a River job. Inside a transaction the job is inserted with
// InsertTx and only becomes visible on commit; otherwise it is inserted
// directly through the *sql.DB. The returned bool is false when River skipped
// the job as a unique duplicate.
func (p *PgSQL) AddJob(ctx context.Context, args river.JobArgs, opts *river.InsertOpts) (bool, error) {
	var (
		res *rivertype.JobInsertResult
		err error
	)
	if tx, ok := p.DB.(*sql.Tx); ok {
		client, cErr := river.NewClient[*sql.Tx](riverdatabasesql.New(nil), &river.Config{})
		if cErr != nil {
			return false, fmt.Errorf("could not create river client: %w", cErr)
		}
		res, err = client.InsertTx(ctx, tx, args, opts)
	} else {
		client, cErr := river.NewClient(riverdatabasesql.New(p.DB.(*sql.DB)), &river.Config{})
		if cErr != nil {
			return false, fmt.Errorf("could not create river client: %w", cErr)
		}
		res, err = client.Insert(ctx, args, opts)
	}
	if err != nil {
		return false, fmt.Errorf("could not insert %s job: %w", args.Kind(), err)
	}

	return !res.UniqueSkippedAsDuplicate, nil
}
