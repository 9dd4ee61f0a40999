// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/MKhiriev/go-taxii/internal/config"
	"github.com/MKhiriev/go-taxii/internal/logger"
	"github.com/MKhiriev/go-taxii/internal/store"
	"github.com/MKhiriev/go-taxii/internal/validators"
	"github.com/MKhiriev/go-taxii/models"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// maxOutcomeAttempts bounds how often a transient failure to record one
// object outcome is retried.
const maxOutcomeAttempts = 5

// ingestService records submitted batches as jobs and stores their objects
// in the background with bounded parallelism.
type ingestService struct {
	jobs      store.JobRepository
	objects   store.ObjectRepository
	gate      PermissionGate
	validator validators.Validator
	workers   int
	now       func() time.Time

	retryable  func(error) bool
	retryDelay time.Duration

	inflight sync.WaitGroup
	logger   *logger.Logger
}

// NewIngestService returns an IngestService. validator checks every object
// before it is stored.
func NewIngestService(jobs store.JobRepository, objects store.ObjectRepository, gate PermissionGate, validator validators.Validator, cfg config.Ingest, log *logger.Logger) IngestService {
	return &ingestService{
		jobs:      jobs,
		objects:   objects,
		gate:      gate,
		validator: validator,
		workers:   max(cfg.Workers, 1),
		now:       time.Now,

		retryable:  store.IsRetryable,
		retryDelay: 100 * time.Millisecond,

		logger: log,
	}
}

func (s *ingestService) SubmitBatch(ctx context.Context, principal *models.Account, ref models.CollectionRef, objects []map[string]any) (models.JobStatusResource, error) {
	log := logger.FromContext(ctx)

	collection, err := s.gate.ResolveRef(ctx, principal, ref, models.AccessWrite)
	if err != nil {
		return models.JobStatusResource{}, err
	}
	if len(objects) == 0 {
		return models.JobStatusResource{}, fmt.Errorf("%w: %w", ErrValidation, ErrEmptyBatch)
	}

	rows := make([]models.STIXObject, len(objects))
	for i, raw := range objects {
		// A payload that cannot be encoded still gets a detail; it fails
		// validation later.
		rows[i], _ = models.NewSTIXObject(collection.ID, raw)
		if rows[i].ID == "" {
			rows[i].ID, _ = raw["id"].(string)
		}
	}

	job := models.NewJob(ref.APIRootID, rows, s.now().UTC())
	for i := range rows {
		if overflow := rows[i].ColumnOverflow(); overflow != "" {
			job.Reject(i, overflow)
		}
	}
	if err = s.jobs.CreateJob(ctx, job); err != nil {
		log.Err(err).Str("func", "ingestService.SubmitBatch").Str("collection_id", collection.ID.String()).Msg("failed to create job")
		return models.JobStatusResource{}, mapStoreError(err)
	}

	log.Info().
		Str("job_id", job.ID.String()).
		Str("collection_id", collection.ID.String()).
		Int("objects", len(objects)).
		Msg("batch accepted")

	s.inflight.Add(1)
	go func() {
		defer s.inflight.Done()
		s.process(context.WithoutCancel(ctx), job, rows, objects)
	}()

	return models.NewJobStatusResource(job), nil
}

// process stores every object of job and records its outcome. A failed
// object never stops the others.
func (s *ingestService) process(ctx context.Context, job models.Job, rows []models.STIXObject, raws []map[string]any) {
	var g errgroup.Group
	g.SetLimit(s.workers)

	for i, detail := range job.Details {
		if detail.Status != models.DetailPending {
			continue
		}
		g.Go(func() error {
			status, message := s.store(ctx, rows[i], raws[i])
			s.recordOutcome(ctx, job.ID, detail, status, message)
			return nil
		})
	}
	_ = g.Wait()

	logger.FromContext(ctx).Debug().Str("job_id", job.ID.String()).Msg("batch processed")
}

// recordOutcome persists the outcome of one detail. Transient storage
// failures are retried with a growing delay; a detail left pending would
// keep its job pending forever.
func (s *ingestService) recordOutcome(ctx context.Context, jobID uuid.UUID, detail models.JobDetail, status models.JobDetailStatus, message string) {
	log := logger.FromContext(ctx).With().
		Str("func", "ingestService.recordOutcome").
		Str("job_id", jobID.String()).
		Str("object_id", detail.STIXID).
		Logger()

	for attempt := 1; ; attempt++ {
		err := s.jobs.RecordOutcome(ctx, jobID, detail.ID, status, message)
		switch {
		case err == nil:
			return
		case errors.Is(err, store.ErrJobDetailNotPending):
			// A previous attempt committed before its error was reported.
			return
		case attempt >= maxOutcomeAttempts || !s.retryable(err):
			log.Err(err).Int("attempt", attempt).Msg("failed to record object outcome")
			return
		}

		log.Warn().Err(err).Int("attempt", attempt).Msg("retrying object outcome")
		time.Sleep(s.retryDelay * time.Duration(attempt))
	}
}

func (s *ingestService) store(ctx context.Context, row models.STIXObject, raw map[string]any) (models.JobDetailStatus, string) {
	if err := s.validator.Validate(ctx, raw); err != nil {
		return models.DetailFailure, err.Error()
	}

	if _, err := s.objects.AddObject(ctx, row); err != nil {
		var conflict *store.ConflictError
		if errors.As(err, &conflict) {
			return models.DetailFailure, conflict.Error()
		}
		logger.FromContext(ctx).Err(err).Str("func", "ingestService.store").Str("object_id", row.ID).Msg("failed to store object")
		return models.DetailFailure, "failed to store object"
	}

	return models.DetailSuccess, ""
}

// GetJob returns the status of a job. Any authenticated principal may read
// any job of the root.
func (s *ingestService) GetJob(ctx context.Context, principal *models.Account, apiRootID, jobID uuid.UUID) (models.JobStatusResource, error) {
	if principal == nil {
		return models.JobStatusResource{}, ErrUnauthenticated
	}

	job, err := s.jobs.GetJob(ctx, apiRootID, jobID)
	if err != nil {
		return models.JobStatusResource{}, mapStoreError(err)
	}
	return models.NewJobStatusResource(job), nil
}

func (s *ingestService) CleanupJobs(ctx context.Context, olderThan time.Duration) (int64, error) {
	cutoff := s.now().UTC().Add(-olderThan)

	deleted, err := s.jobs.DeleteCompletedJobs(ctx, cutoff)
	if err != nil {
		return 0, mapStoreError(err)
	}

	logger.FromContext(ctx).Info().Time("cutoff", cutoff).Int64("deleted", deleted).Msg("completed jobs cleaned up")
	return deleted, nil
}

func (s *ingestService) Wait(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		s.inflight.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
