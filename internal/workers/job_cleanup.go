// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/go-taxii/internal/config"
	"github.com/MKhiriev/go-taxii/internal/logger"
)

// JobCleanupWorker periodically deletes complete ingestion jobs older than
// the retention period.
type JobCleanupWorker struct {
	cleaner   JobCleaner
	interval  time.Duration
	retention time.Duration
	logger    *logger.Logger
}

func NewJobCleanupWorker(cleaner JobCleaner, cfg config.Workers, log *logger.Logger) *JobCleanupWorker {
	return &JobCleanupWorker{
		cleaner:   cleaner,
		interval:  cfg.JobCleanupInterval,
		retention: cfg.JobRetention,
		logger:    log.WithComponent("job-cleanup"),
	}
}

// Run cleans up once per interval. Failed runs are logged and retried on
// the next tick.
func (w *JobCleanupWorker) Run(ctx context.Context) error {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	w.logger.Info().Dur("interval", w.interval).Dur("retention", w.retention).Msg("job cleanup started")
	for {
		select {
		case <-ctx.Done():
			w.logger.Info().Msg("job cleanup stopped")
			return nil
		case <-ticker.C:
			w.cleanup(ctx)
		}
	}
}

func (w *JobCleanupWorker) cleanup(ctx context.Context) {
	removed, err := w.cleaner.CleanupJobs(w.logger.WithContext(ctx), w.retention)
	if err != nil {
		w.logger.Err(err).Str("func", "JobCleanupWorker.cleanup").Msg("failed to clean up jobs")
		return
	}
	if removed > 0 {
		w.logger.Info().Int64("removed", removed).Msg("expired jobs removed")
	}
}
