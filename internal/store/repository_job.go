package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-taxii/internal/logger"
	"github.com/MKhiriev/go-taxii/models"
	"github.com/google/uuid"
)

// jobRepository is the PostgreSQL-backed implementation of [JobRepository]
// over opentaxii_job and opentaxii_job_detail.
type jobRepository struct {
	*DB
	logger *logger.Logger
}

// NewJobRepository constructs a [JobRepository] backed by the provided
// database connection and logger.
func NewJobRepository(db *DB, log *logger.Logger) JobRepository {
	log.Debug().Msg("creating job repository")
	return &jobRepository{
		DB:     db,
		logger: log,
	}
}

// CreateJob inserts the job row and one row per detail in a single
// transaction, so a job is never visible without its pending details.
func (r *jobRepository) CreateJob(ctx context.Context, job models.Job) error {
	log := logger.FromContext(ctx)

	err := r.withinTx(ctx, nil, "jobRepository.CreateJob", func(tx *sql.Tx) error {
		_, err := tx.ExecContext(ctx, insertJob,
			job.ID, job.APIRootID, string(job.Status), job.RequestTimestamp.UTC(), job.CompletedTimestamp,
			job.TotalCount, job.SuccessCount, job.FailureCount, job.PendingCount)
		if err != nil {
			log.Err(err).Str("func", "jobRepository.CreateJob").Str("job_id", job.ID.String()).Msg("failed to insert job")
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}

		stmt, err := tx.PrepareContext(ctx, insertJobDetail)
		if err != nil {
			log.Err(err).Str("func", "jobRepository.CreateJob").Msg("failed to prepare statement")
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
		defer stmt.Close()

		for idx, detail := range job.Details {
			_, err = stmt.ExecContext(ctx, detail.ID, job.ID, detail.STIXID, detail.Version.UTC(), detail.Message, string(detail.Status))
			if err != nil {
				log.Err(err).
					Str("func", "jobRepository.CreateJob").
					Int("iteration", idx+1).
					Int("total", len(job.Details)).
					Str("stix_id", detail.STIXID).
					Msg("failed to insert job detail")
				return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	log.Info().
		Str("func", "jobRepository.CreateJob").
		Str("job_id", job.ID.String()).
		Int("total_count", job.TotalCount).
		Msg("job created")
	return nil
}

// RecordOutcome resolves one pending detail and moves the job counters in the
// same transaction. The job becomes complete when its last pending detail is
// resolved.
func (r *jobRepository) RecordOutcome(ctx context.Context, jobID, detailID uuid.UUID, status models.JobDetailStatus, message string) error {
	log := logger.FromContext(ctx).With().
		Str("func", "jobRepository.RecordOutcome").
		Str("job_id", jobID.String()).
		Str("detail_id", detailID.String()).
		Str("status", string(status)).
		Logger()

	var success, failure int
	switch status {
	case models.DetailSuccess:
		success = 1
	case models.DetailFailure:
		failure = 1
	default:
		return fmt.Errorf("cannot record %q outcome", status)
	}

	return r.withinTx(ctx, nil, "jobRepository.RecordOutcome", func(tx *sql.Tx) error {
		result, err := tx.ExecContext(ctx, resolveJobDetail, detailID, jobID, string(status), message)
		if err != nil {
			log.Err(err).Msg("failed to resolve job detail")
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
		if affected, _ := result.RowsAffected(); affected == 0 {
			log.Warn().Msg("job detail is not pending")
			return ErrJobDetailNotPending
		}

		result, err = tx.ExecContext(ctx, bumpJobCounters, jobID, success, failure)
		if err != nil {
			log.Err(err).Msg("failed to update job counters")
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
		if affected, _ := result.RowsAffected(); affected == 0 {
			log.Warn().Msg("job has no pending details")
			return ErrJobNotFound
		}

		return nil
	})
}

// GetJob returns the job together with all of its details.
func (r *jobRepository) GetJob(ctx context.Context, apiRootID, jobID uuid.UUID) (models.Job, error) {
	log := logger.FromContext(ctx)

	var (
		job    models.Job
		status string
	)
	err := r.DB.QueryRowContext(ctx, getJob, apiRootID, jobID).Scan(
		&job.ID, &job.APIRootID, &status, &job.RequestTimestamp, &job.CompletedTimestamp,
		&job.TotalCount, &job.SuccessCount, &job.FailureCount, &job.PendingCount,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Job{}, ErrJobNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "jobRepository.GetJob").Str("job_id", jobID.String()).Msg("failed to get job")
		return models.Job{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	job.Status = models.JobStatus(status)

	rows, err := r.DB.QueryContext(ctx, getJobDetails, jobID)
	if err != nil {
		log.Err(err).Str("func", "jobRepository.GetJob").Str("job_id", jobID.String()).Msg("failed to get job details")
		return models.Job{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	job.Details, err = collectRows(ctx, rows, "jobRepository.GetJob", scanJobDetail)
	if err != nil {
		return models.Job{}, err
	}

	return job, nil
}

func (r *jobRepository) DeleteCompletedJobs(ctx context.Context, before time.Time) (int64, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteCompletedJobsQuery(before)
	if err != nil {
		log.Err(err).Str("func", "jobRepository.DeleteCompletedJobs").Msg("failed to create query")
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.DB.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "jobRepository.DeleteCompletedJobs").Msg("failed to delete completed jobs")
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	deleted, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	log.Info().
		Str("func", "jobRepository.DeleteCompletedJobs").
		Time("before", before).
		Int64("deleted", deleted).
		Msg("completed jobs deleted")
	return deleted, nil
}

func scanJobDetail(row rowScanner) (models.JobDetail, error) {
	var (
		detail  models.JobDetail
		message sql.NullString
		status  string
	)
	err := row.Scan(&detail.ID, &detail.JobID, &detail.STIXID, &detail.Version, &message, &status)
	detail.Version = detail.Version.UTC()
	detail.Message = message.String
	detail.Status = models.JobDetailStatus(status)
	return detail, err
}
