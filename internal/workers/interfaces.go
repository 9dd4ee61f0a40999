// Package workers runs the background jobs of the server: removal of
// expired ingestion jobs and directory cache invalidation.
package workers

import (
	"context"
	"time"
)

// Worker is a background job. Run blocks until ctx is done or the worker
// fails for good.
type Worker interface {
	Run(ctx context.Context) error
}

// JobCleaner removes finished ingestion jobs.
type JobCleaner interface {
	CleanupJobs(ctx context.Context, olderThan time.Duration) (int64, error)
}

// ChangeListener delivers directory change notifications.
type ChangeListener interface {
	Listen(ctx context.Context, purge func(context.Context)) error
}
