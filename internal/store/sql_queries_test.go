// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/go-taxii/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testCollectionID = uuid.MustParse("2b2b6f8e-3a1c-4c0e-9f4f-2d0d3f9f6a11")

func Test_buildListObjectsQuery_AllVersions(t *testing.T) {
	query, args, err := buildListObjectsQuery(models.ObjectQuery{
		Filter: models.ObjectFilter{
			CollectionID: testCollectionID,
			Version:      models.VersionFilter{Mode: models.VersionAll},
		},
		Limit: 11,
	}, objectColumns)
	require.NoError(t, err)

	assert.Equal(t,
		"SELECT pk, id, collection_id, type, spec_version, date_added, version, serialized_data "+
			"FROM opentaxii_stixobject WHERE (collection_id = $1) "+
			"ORDER BY date_added ASC, id ASC, version ASC LIMIT 11",
		query)
	assert.Equal(t, []any{testCollectionID.String()}, args)
}

func Test_buildListObjectsQuery_LastVersionUsesDistinctOn(t *testing.T) {
	addedAfter := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	cursor := models.Position{
		DateAdded: time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC),
		ID:        "indicator--1",
		Version:   time.Date(2023, 12, 1, 0, 0, 0, 0, time.UTC),
	}

	query, args, err := buildListObjectsQuery(models.ObjectQuery{
		Filter: models.ObjectFilter{
			CollectionID: testCollectionID,
			Types:        []string{"indicator", "malware"},
			AddedAfter:   &addedAfter,
		},
		After: &cursor,
		Limit: 3,
	}, manifestColumns)
	require.NoError(t, err)

	assert.Contains(t, query, "SELECT id, date_added, version, spec_version FROM (SELECT DISTINCT ON (id) pk,")
	assert.Contains(t, query, "WHERE (collection_id = $1 AND type IN ($2,$3)) ORDER BY id, version DESC) AS selected")
	assert.Contains(t, query, "WHERE date_added > $4 AND (date_added, id, version) > ($5, $6, $7)")
	assert.True(t, strings.HasSuffix(query, "ORDER BY date_added ASC, id ASC, version ASC LIMIT 3"), query)

	require.Len(t, args, 7)
	assert.Equal(t, testCollectionID.String(), args[0])
	assert.Equal(t, "indicator", args[1])
	assert.Equal(t, "malware", args[2])
	assert.Equal(t, addedAfter, args[3])
	assert.Equal(t, cursor.DateAdded, args[4])
	assert.Equal(t, cursor.ID, args[5])
	assert.Equal(t, cursor.Version, args[6])
}

func Test_buildListObjectsQuery_FirstVersionOrdersAscending(t *testing.T) {
	query, _, err := buildListObjectsQuery(models.ObjectQuery{
		Filter: models.ObjectFilter{
			CollectionID: testCollectionID,
			Version:      models.VersionFilter{Mode: models.VersionFirst},
		},
	}, objectColumns)
	require.NoError(t, err)

	assert.Contains(t, query, "ORDER BY id, version ASC) AS selected")
	assert.NotContains(t, query, "LIMIT")
}

func Test_buildListObjectsQuery_SpecificVersions(t *testing.T) {
	v1 := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	v2 := time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)

	query, args, err := buildListObjectsQuery(models.ObjectQuery{
		Filter: models.ObjectFilter{
			CollectionID: testCollectionID,
			IDs:          []string{"indicator--1"},
			SpecVersions: []string{"2.1"},
			Version:      models.VersionFilter{Mode: models.VersionSpecific, Versions: []time.Time{v1, v2}},
		},
	}, objectColumns)
	require.NoError(t, err)

	assert.NotContains(t, query, "DISTINCT ON")
	assert.Contains(t, query, "id IN ($2)")
	assert.Contains(t, query, "spec_version IN ($3)")
	assert.Contains(t, query, "version IN ($4,$5)")
	assert.Equal(t, []any{testCollectionID.String(), "indicator--1", "2.1", v1, v2}, args)
}

func Test_buildDeleteObjectsQuery(t *testing.T) {
	tests := []struct {
		name     string
		mode     models.VersionMode
		contains []string
		absent   []string
	}{
		{
			name:     "all versions",
			mode:     models.VersionAll,
			contains: []string{"DELETE FROM opentaxii_stixobject WHERE (collection_id = $1 AND id IN ($2))"},
			absent:   []string{"DISTINCT ON"},
		},
		{
			name: "last version",
			mode: models.VersionLast,
			contains: []string{
				"DELETE FROM opentaxii_stixobject WHERE pk IN (SELECT DISTINCT ON (id) pk FROM opentaxii_stixobject",
				"ORDER BY id, version DESC)",
			},
		},
		{
			name:     "first version",
			mode:     models.VersionFirst,
			contains: []string{"ORDER BY id, version ASC)"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, args, err := buildDeleteObjectsQuery(models.ObjectFilter{
				CollectionID: testCollectionID,
				IDs:          []string{"indicator--1"},
				Version:      models.VersionFilter{Mode: tt.mode},
			})
			require.NoError(t, err)

			for _, part := range tt.contains {
				assert.Contains(t, query, part)
			}
			for _, part := range tt.absent {
				assert.NotContains(t, query, part)
			}
			assert.NotContains(t, query, "?")
			assert.Equal(t, []any{testCollectionID.String(), "indicator--1"}, args)
		})
	}
}

func Test_buildListVersionsQuery(t *testing.T) {
	query, args, err := buildListVersionsQuery(testCollectionID, "indicator--1", nil)
	require.NoError(t, err)
	assert.Equal(t, "SELECT version FROM opentaxii_stixobject WHERE collection_id = $1 AND id = $2 ORDER BY version ASC", query)
	assert.Equal(t, []any{testCollectionID.String(), "indicator--1"}, args)

	query, args, err = buildListVersionsQuery(testCollectionID, "indicator--1", []string{"2.0", "2.1"})
	require.NoError(t, err)
	assert.Contains(t, query, "AND spec_version IN ($3,$4)")
	assert.Len(t, args, 4)
}

func Test_buildDeleteCompletedJobsQuery(t *testing.T) {
	before := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	query, args, err := buildDeleteCompletedJobsQuery(before)
	require.NoError(t, err)

	assert.Equal(t, "DELETE FROM opentaxii_job WHERE status = $1 AND completed_timestamp < $2", query)
	assert.Equal(t, []any{"complete", before}, args)
}
