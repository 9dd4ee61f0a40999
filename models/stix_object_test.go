// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectVersion(t *testing.T) {
	tests := []struct {
		name string
		raw  map[string]any
		want time.Time
	}{
		{
			name: "modified wins",
			raw:  map[string]any{"created": "2020-01-01T00:00:00Z", "modified": "2021-01-01T00:00:00.123Z"},
			want: time.Date(2021, 1, 1, 0, 0, 0, 123000000, time.UTC),
		},
		{
			name: "created fallback",
			raw:  map[string]any{"created": "2020-01-01T00:00:00Z"},
			want: time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			name: "unparsable modified falls back to created",
			raw:  map[string]any{"created": "2020-01-01T00:00:00Z", "modified": "soon"},
			want: time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			name: "epoch",
			raw:  map[string]any{},
			want: time.Unix(0, 0).UTC(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.True(t, tt.want.Equal(ObjectVersion(tt.raw)))
		})
	}
}

func TestObjectTypeFromID(t *testing.T) {
	assert.Equal(t, "indicator", ObjectTypeFromID("indicator--8e2e2d2b-17d4-4cbf-938f-98ee46b3cd3f"))
	assert.Equal(t, "", ObjectTypeFromID("no-separator"))
}

func TestNewSTIXObject_SplitsColumnsFromPayload(t *testing.T) {
	collectionID := uuid.New()
	raw := map[string]any{
		"id":       "indicator--8e2e2d2b-17d4-4cbf-938f-98ee46b3cd3f",
		"modified": "2021-01-01T00:00:00Z",
		"pattern":  "[file:name = 'x']",
	}

	obj, err := NewSTIXObject(collectionID, raw)
	require.NoError(t, err)

	assert.Equal(t, collectionID, obj.CollectionID)
	assert.Equal(t, "indicator", obj.Type)
	assert.Equal(t, DefaultSpecVersion, obj.SpecVersion)
	assert.JSONEq(t, `{"modified":"2021-01-01T00:00:00Z","pattern":"[file:name = 'x']"}`, string(obj.Payload))

	rendered, err := json.Marshal(obj)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"id":"indicator--8e2e2d2b-17d4-4cbf-938f-98ee46b3cd3f",
		"type":"indicator",
		"spec_version":"2.1",
		"modified":"2021-01-01T00:00:00Z",
		"pattern":"[file:name = 'x']"
	}`, string(rendered))
}

func TestNewJobStatusResource_GroupsDetails(t *testing.T) {
	job := Job{Details: []JobDetail{
		{STIXID: "a", Status: DetailSuccess},
		{STIXID: "b", Status: DetailFailure, Message: "bad"},
		{STIXID: "c", Status: DetailPending},
	}}

	res := NewJobStatusResource(job)

	require.Len(t, res.Successes, 1)
	require.Len(t, res.Failures, 1)
	require.Len(t, res.Pendings, 1)
	assert.Equal(t, "bad", res.Failures[0].Message)
}

func TestSTIXObject_ColumnOverflow(t *testing.T) {
	tests := []struct {
		name string
		obj  STIXObject
		want string
	}{
		{
			name: "fits",
			obj:  STIXObject{ID: "indicator--" + uuid.NewString(), Type: "indicator", SpecVersion: "2.1"},
		},
		{
			name: "long id",
			obj:  STIXObject{ID: "x-" + strings.Repeat("a", 70) + "--" + uuid.NewString(), Type: "x-a", SpecVersion: "2.1"},
			want: "id is 110 characters long",
		},
		{
			name: "long type",
			obj:  STIXObject{ID: "x--" + uuid.NewString(), Type: "x-" + strings.Repeat("b", 49), SpecVersion: "2.1"},
			want: "type is 51 characters long",
		},
		{
			name: "counts characters not bytes",
			obj:  STIXObject{ID: strings.Repeat("é", MaxSTIXIDLength), Type: "t", SpecVersion: "2.1"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.obj.ColumnOverflow()
			if tt.want == "" {
				assert.Empty(t, got)
				return
			}
			assert.Contains(t, got, tt.want)
		})
	}
}

func TestJob_Reject(t *testing.T) {
	now := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)
	longID := strings.Repeat("a", 150)
	job := NewJob(uuid.New(), []STIXObject{{ID: longID}, {ID: "indicator--1"}}, now)

	job.Reject(0, "id too long")

	assert.Equal(t, DetailFailure, job.Details[0].Status)
	assert.Equal(t, "id too long", job.Details[0].Message)
	assert.Len(t, job.Details[0].STIXID, MaxSTIXIDLength)
	assert.Equal(t, 1, job.FailureCount)
	assert.Equal(t, 1, job.PendingCount)
	assert.Equal(t, JobPending, job.Status)
	assert.Nil(t, job.CompletedTimestamp)

	job.Reject(0, "again")
	assert.Equal(t, 1, job.FailureCount)

	job.Reject(1, "bad")
	assert.Equal(t, JobComplete, job.Status)
	require.NotNil(t, job.CompletedTimestamp)
	assert.Equal(t, now, *job.CompletedTimestamp)
	assert.Equal(t, job.TotalCount, job.SuccessCount+job.FailureCount+job.PendingCount)
}
