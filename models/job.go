// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"time"

	"github.com/google/uuid"
)

// JobStatus is the lifecycle state of an ingestion job.
type JobStatus string

const (
	JobPending  JobStatus = "pending"
	JobComplete JobStatus = "complete"
)

// JobDetailStatus is the outcome of a single submitted object.
type JobDetailStatus string

const (
	DetailPending JobDetailStatus = "pending"
	DetailSuccess JobDetailStatus = "success"
	DetailFailure JobDetailStatus = "failure"
)

// Job tracks one bulk submission.
// TotalCount == SuccessCount + FailureCount + PendingCount at all times.
type Job struct {
	ID                 uuid.UUID  `json:"id"`
	APIRootID          uuid.UUID  `json:"-"`
	Status             JobStatus  `json:"status"`
	RequestTimestamp   time.Time  `json:"request_timestamp"`
	CompletedTimestamp *time.Time `json:"completed_timestamp,omitempty"`
	TotalCount         int        `json:"total_count"`
	SuccessCount       int        `json:"success_count"`
	FailureCount       int        `json:"failure_count"`
	PendingCount       int        `json:"pending_count"`

	Details []JobDetail `json:"-"`
}

// TableName returns the name of the database table
// associated with the Job model.
func (j Job) TableName() string {
	return "opentaxii_job"
}

// NewJob creates a pending job with one pending detail per submitted object.
func NewJob(apiRootID uuid.UUID, objects []STIXObject, now time.Time) Job {
	job := Job{
		ID:               uuid.New(),
		APIRootID:        apiRootID,
		Status:           JobPending,
		RequestTimestamp: now,
		TotalCount:       len(objects),
		PendingCount:     len(objects),
		Details:          make([]JobDetail, 0, len(objects)),
	}

	for _, obj := range objects {
		job.Details = append(job.Details, JobDetail{
			ID:      uuid.New(),
			JobID:   job.ID,
			STIXID:  obj.ID,
			Version: obj.Version,
			Status:  DetailPending,
		})
	}

	return job
}

// Reject resolves detail i as a failure before the job is stored. The
// detail id is cut to fit its column and the counters move as they would
// for a processed object.
func (j *Job) Reject(i int, message string) {
	detail := &j.Details[i]
	if detail.Status != DetailPending {
		return
	}
	detail.STIXID = TruncateRunes(detail.STIXID, MaxSTIXIDLength)
	detail.Status = DetailFailure
	detail.Message = message

	j.PendingCount--
	j.FailureCount++
	if j.PendingCount == 0 {
		completed := j.RequestTimestamp
		j.Status = JobComplete
		j.CompletedTimestamp = &completed
	}
}

// JobDetail is the per-object outcome of a job.
// It is immutable once its status leaves pending.
type JobDetail struct {
	ID      uuid.UUID       `json:"-"`
	JobID   uuid.UUID       `json:"-"`
	STIXID  string          `json:"id"`
	Version time.Time       `json:"version"`
	Message string          `json:"message,omitempty"`
	Status  JobDetailStatus `json:"-"`
}

// TableName returns the name of the database table
// associated with the JobDetail model.
func (d JobDetail) TableName() string {
	return "opentaxii_job_detail"
}

// JobStatusResource is the TAXII status resource built from a job.
type JobStatusResource struct {
	Job
	Successes []JobDetail `json:"successes,omitempty"`
	Failures  []JobDetail `json:"failures,omitempty"`
	Pendings  []JobDetail `json:"pendings,omitempty"`
}

// NewJobStatusResource groups job details by status.
func NewJobStatusResource(job Job) JobStatusResource {
	res := JobStatusResource{Job: job}
	for _, detail := range job.Details {
		switch detail.Status {
		case DetailSuccess:
			res.Successes = append(res.Successes, detail)
		case DetailFailure:
			res.Failures = append(res.Failures, detail)
		default:
			res.Pendings = append(res.Pendings, detail)
		}
	}
	return res
}
