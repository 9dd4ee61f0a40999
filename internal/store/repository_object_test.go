// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"encoding/json"
	"errors"
	"regexp"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/go-taxii/internal/logger"
	"github.com/MKhiriev/go-taxii/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestObjectRepo(t *testing.T) (ObjectRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock := newTestDB(t)
	return NewObjectRepository(newDBFromSQL(db), logger.Nop()), mock
}

func testObject() models.STIXObject {
	return models.STIXObject{
		PK:           uuid.MustParse("6f1d9c4e-7a52-4f0b-8d6e-0e7a1b2c3d4e"),
		ID:           "indicator--1",
		CollectionID: testCollectionID,
		Type:         "indicator",
		SpecVersion:  "2.1",
		Version:      time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		Payload:      json.RawMessage(`{"name":"a"}`),
	}
}

// ── AddObject ──

func TestAddObject(t *testing.T) {
	obj := testObject()
	insertArgs := []any{obj.PK, obj.ID, obj.CollectionID, obj.Type, obj.SpecVersion, obj.Version, `{"name":"a"}`}
	compareArgs := []any{obj.CollectionID, obj.ID, obj.Version, `{"name":"a"}`}

	t.Run("success: created", func(t *testing.T) {
		repo, mock := newTestObjectRepo(t)

		mock.ExpectQuery(regexp.QuoteMeta(insertObject)).
			WithArgs(toDriverArgs(insertArgs)...).
			WillReturnRows(sqlmock.NewRows([]string{"pk"}).AddRow(obj.PK.String()))

		result, err := repo.AddObject(testContext(), obj)
		require.NoError(t, err)
		assert.Equal(t, models.Created, result)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("success: identical payload already stored", func(t *testing.T) {
		repo, mock := newTestObjectRepo(t)

		mock.ExpectQuery(regexp.QuoteMeta(insertObject)).
			WithArgs(toDriverArgs(insertArgs)...).
			WillReturnRows(sqlmock.NewRows([]string{"pk"}))
		mock.ExpectQuery(regexp.QuoteMeta(sameObjectPayload)).
			WithArgs(toDriverArgs(compareArgs)...).
			WillReturnRows(sqlmock.NewRows([]string{"same"}).AddRow(true))

		result, err := repo.AddObject(testContext(), obj)
		require.NoError(t, err)
		assert.Equal(t, models.AlreadyExists, result)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("error: different payload under the same version", func(t *testing.T) {
		repo, mock := newTestObjectRepo(t)

		mock.ExpectQuery(regexp.QuoteMeta(insertObject)).
			WillReturnRows(sqlmock.NewRows([]string{"pk"}))
		mock.ExpectQuery(regexp.QuoteMeta(sameObjectPayload)).
			WillReturnRows(sqlmock.NewRows([]string{"same"}).AddRow(false))

		_, err := repo.AddObject(testContext(), obj)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrVersionConflict)

		var conflict *ConflictError
		require.ErrorAs(t, err, &conflict)
		assert.Equal(t, "indicator--1", conflict.ObjectID)
		assert.Equal(t, obj.Version, conflict.Version)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("error: insert fails", func(t *testing.T) {
		repo, mock := newTestObjectRepo(t)

		mock.ExpectQuery(regexp.QuoteMeta(insertObject)).
			WillReturnError(errors.New("connection reset"))

		_, err := repo.AddObject(testContext(), obj)
		assert.ErrorIs(t, err, ErrExecutingStatement)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("generates a primary key when missing", func(t *testing.T) {
		repo, mock := newTestObjectRepo(t)
		noPK := obj
		noPK.PK = uuid.Nil

		mock.ExpectQuery(regexp.QuoteMeta(insertObject)).
			WithArgs(sqlmock.AnyArg(), obj.ID, obj.CollectionID, obj.Type, obj.SpecVersion, obj.Version, `{"name":"a"}`).
			WillReturnRows(sqlmock.NewRows([]string{"pk"}).AddRow(uuid.NewString()))

		_, err := repo.AddObject(testContext(), noPK)
		require.NoError(t, err)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

// ── ListObjects / ListManifest ──

func TestListObjects(t *testing.T) {
	repo, mock := newTestObjectRepo(t)
	dateAdded := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	obj := testObject()

	query := models.ObjectQuery{
		Filter: models.ObjectFilter{CollectionID: testCollectionID, Version: models.VersionFilter{Mode: models.VersionAll}},
		Limit:  2,
	}
	sqlQuery, _, err := buildListObjectsQuery(query, objectColumns)
	require.NoError(t, err)

	mock.ExpectQuery(regexp.QuoteMeta(sqlQuery)).
		WithArgs(testCollectionID.String()).
		WillReturnRows(sqlmock.NewRows(objectColumns).
			AddRow(obj.PK.String(), obj.ID, testCollectionID.String(), obj.Type, obj.SpecVersion, dateAdded, obj.Version, []byte(`{"name":"a"}`)))

	objects, err := repo.ListObjects(testContext(), query)
	require.NoError(t, err)
	require.Len(t, objects, 1)
	assert.Equal(t, obj.PK, objects[0].PK)
	assert.Equal(t, testCollectionID, objects[0].CollectionID)
	assert.Equal(t, dateAdded, objects[0].DateAdded)
	assert.JSONEq(t, `{"name":"a"}`, string(objects[0].Payload))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestListObjects_QueryError(t *testing.T) {
	repo, mock := newTestObjectRepo(t)

	mock.ExpectQuery("SELECT").WillReturnError(errors.New("boom"))

	_, err := repo.ListObjects(testContext(), models.ObjectQuery{Filter: models.ObjectFilter{CollectionID: testCollectionID}})
	assert.ErrorIs(t, err, ErrExecutingQuery)
}

func TestListObjects_ScanError(t *testing.T) {
	repo, mock := newTestObjectRepo(t)

	mock.ExpectQuery("SELECT").WillReturnRows(sqlmock.NewRows([]string{"pk"}).AddRow("x"))

	_, err := repo.ListObjects(testContext(), models.ObjectQuery{Filter: models.ObjectFilter{CollectionID: testCollectionID}})
	assert.ErrorIs(t, err, ErrScanningRow)
}

func TestListManifest(t *testing.T) {
	repo, mock := newTestObjectRepo(t)
	dateAdded := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	version := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery("SELECT id, date_added, version, spec_version FROM").
		WillReturnRows(sqlmock.NewRows(manifestColumns).AddRow("indicator--1", dateAdded, version, "2.0"))

	entries, err := repo.ListManifest(testContext(), models.ObjectQuery{Filter: models.ObjectFilter{CollectionID: testCollectionID}})
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, models.ManifestEntry{
		ID:        "indicator--1",
		DateAdded: dateAdded,
		Version:   version,
		MediaType: "application/stix+json;version=2.0",
	}, entries[0])
	require.NoError(t, mock.ExpectationsWereMet())
}

// ── ListVersions ──

func TestListVersions(t *testing.T) {
	v1 := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	v2 := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)

	t.Run("success", func(t *testing.T) {
		repo, mock := newTestObjectRepo(t)
		mock.ExpectQuery("SELECT version FROM opentaxii_stixobject").
			WithArgs(testCollectionID.String(), "indicator--1").
			WillReturnRows(sqlmock.NewRows([]string{"version"}).AddRow(v1).AddRow(v2))

		versions, err := repo.ListVersions(testContext(), testCollectionID, "indicator--1", nil)
		require.NoError(t, err)
		assert.Equal(t, []time.Time{v1, v2}, versions)
	})

	t.Run("error: no versions", func(t *testing.T) {
		repo, mock := newTestObjectRepo(t)
		mock.ExpectQuery("SELECT version FROM opentaxii_stixobject").
			WillReturnRows(sqlmock.NewRows([]string{"version"}))

		_, err := repo.ListVersions(testContext(), testCollectionID, "indicator--1", nil)
		assert.ErrorIs(t, err, ErrObjectNotFound)
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

// ── DeleteObjects ──

func TestDeleteObjects(t *testing.T) {
	filter := models.ObjectFilter{
		CollectionID: testCollectionID,
		IDs:          []string{"indicator--1"},
		Version:      models.VersionFilter{Mode: models.VersionAll},
	}

	t.Run("success", func(t *testing.T) {
		repo, mock := newTestObjectRepo(t)
		mock.ExpectExec(regexp.QuoteMeta("DELETE FROM opentaxii_stixobject WHERE (collection_id = $1 AND id IN ($2))")).
			WithArgs(testCollectionID.String(), "indicator--1").
			WillReturnResult(sqlmock.NewResult(0, 2))

		deleted, err := repo.DeleteObjects(testContext(), filter)
		require.NoError(t, err)
		assert.Equal(t, int64(2), deleted)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("error: nothing deleted", func(t *testing.T) {
		repo, mock := newTestObjectRepo(t)
		mock.ExpectExec("DELETE FROM opentaxii_stixobject").
			WillReturnResult(sqlmock.NewResult(0, 0))

		_, err := repo.DeleteObjects(testContext(), filter)
		assert.ErrorIs(t, err, ErrObjectNotFound)
	})

	t.Run("error: exec fails", func(t *testing.T) {
		repo, mock := newTestObjectRepo(t)
		mock.ExpectExec("DELETE FROM opentaxii_stixobject").
			WillReturnError(errors.New("boom"))

		_, err := repo.DeleteObjects(testContext(), filter)
		assert.ErrorIs(t, err, ErrExecutingStatement)
	})
}
