// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"encoding/json"
	"errors"
	"regexp"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/go-taxii/internal/logger"
	"github.com/MKhiriev/go-taxii/models"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSyncRepo(t *testing.T) (SyncRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock := newTestDB(t)
	return NewSyncRepository(newDBFromSQL(db), logger.Nop()), mock
}

func expectSyncLock(mock sqlmock.Sqlmock) {
	mock.ExpectExec(regexp.QuoteMeta(acquireSyncLock)).
		WithArgs(syncLockKey).
		WillReturnResult(sqlmock.NewResult(0, 0))
}

func expectSyncUnlock(mock sqlmock.Sqlmock) {
	mock.ExpectExec(regexp.QuoteMeta(releaseSyncLock)).
		WithArgs(syncLockKey).
		WillReturnResult(sqlmock.NewResult(0, 0))
}

// ── WithinSyncTx ──

func TestWithinSyncTx(t *testing.T) {
	t.Run("success: lock then transaction then unlock", func(t *testing.T) {
		repo, mock := newTestSyncRepo(t)

		expectSyncLock(mock)
		mock.ExpectBegin()
		mock.ExpectExec(regexp.QuoteMeta(insertService)).
			WithArgs("inbox", "inbox", `{"address":"/inbox"}`).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()
		expectSyncUnlock(mock)

		err := repo.WithinSyncTx(testContext(), func(ctx context.Context, tx SyncTx) error {
			return tx.CreateService(ctx, models.Service{
				ID:         "inbox",
				Type:       models.ServiceInbox,
				Properties: json.RawMessage(`{"address":"/inbox"}`),
			})
		})
		require.NoError(t, err)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("error from callback rolls back and unlocks", func(t *testing.T) {
		repo, mock := newTestSyncRepo(t)
		wantErr := errors.New("validation failed")

		expectSyncLock(mock)
		mock.ExpectBegin()
		mock.ExpectRollback()
		expectSyncUnlock(mock)

		err := repo.WithinSyncTx(testContext(), func(ctx context.Context, tx SyncTx) error {
			return wantErr
		})
		assert.ErrorIs(t, err, wantErr)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("serialization failure is retried under the same lock", func(t *testing.T) {
		repo, mock := newTestSyncRepo(t)

		expectSyncLock(mock)
		mock.ExpectBegin()
		mock.ExpectExec(regexp.QuoteMeta(insertService)).
			WillReturnError(&pgconn.PgError{Code: pgerrcode.SerializationFailure})
		mock.ExpectRollback()
		mock.ExpectBegin()
		mock.ExpectExec(regexp.QuoteMeta(insertService)).WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()
		expectSyncUnlock(mock)

		calls := 0
		err := repo.WithinSyncTx(testContext(), func(ctx context.Context, tx SyncTx) error {
			calls++
			return tx.CreateService(ctx, models.Service{ID: "inbox", Type: models.ServiceInbox})
		})
		require.NoError(t, err)
		assert.Equal(t, 2, calls)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("retries are bounded", func(t *testing.T) {
		repo, mock := newTestSyncRepo(t)

		expectSyncLock(mock)
		for range maxSyncAttempts {
			mock.ExpectBegin()
			mock.ExpectRollback()
		}
		expectSyncUnlock(mock)

		calls := 0
		err := repo.WithinSyncTx(testContext(), func(ctx context.Context, tx SyncTx) error {
			calls++
			return &pgconn.PgError{Code: pgerrcode.SerializationFailure}
		})
		assert.True(t, IsRetryable(err))
		assert.Equal(t, maxSyncAttempts, calls)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("lock failure runs nothing", func(t *testing.T) {
		repo, mock := newTestSyncRepo(t)

		mock.ExpectExec(regexp.QuoteMeta(acquireSyncLock)).WillReturnError(errors.New("boom"))

		err := repo.WithinSyncTx(testContext(), func(ctx context.Context, tx SyncTx) error {
			t.Fatal("callback must not run without the lock")
			return nil
		})
		assert.ErrorIs(t, err, ErrAcquiringLock)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("unlock failure discards the connection", func(t *testing.T) {
		repo, mock := newTestSyncRepo(t)

		expectSyncLock(mock)
		mock.ExpectBegin()
		mock.ExpectCommit()
		mock.ExpectExec(regexp.QuoteMeta(releaseSyncLock)).WillReturnError(errors.New("connection lost"))
		mock.ExpectClose()

		err := repo.WithinSyncTx(testContext(), func(ctx context.Context, tx SyncTx) error {
			return nil
		})
		require.NoError(t, err)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

// ── LoadState ──

func TestSyncTx_LoadState(t *testing.T) {
	repo, mock := newTestSyncRepo(t)
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	expectSyncLock(mock)
	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(listServices)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "type", "_properties", "date_created", "date_updated"}).
			AddRow("inbox", "inbox", `{"a":1}`, now, now))
	mock.ExpectQuery(regexp.QuoteMeta(listLegacyCollections)).
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "name", "type", "description", "available", "accept_all_content", "bindings", "volume", "date_created",
		}).AddRow(int64(5), "collection-a", "DATA_FEED", nil, true, false, `["urn:stix"]`, 0, now))
	mock.ExpectQuery(regexp.QuoteMeta(listServiceLinks)).
		WillReturnRows(sqlmock.NewRows([]string{"service_id", "collection_id"}).AddRow("inbox", int64(5)))
	mock.ExpectQuery(regexp.QuoteMeta(listAllCollections)).
		WillReturnRows(sqlmock.NewRows(collectionRowColumns).
			AddRow(testCollectionID.String(), testAPIRootID.String(), "Indicators", nil, nil, false, false, true))
	mock.ExpectQuery(regexp.QuoteMeta(listAPIRoots)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "title", "description", "default", "is_public"}).
			AddRow(testAPIRootID.String(), "Default", nil, true, false))
	mock.ExpectQuery(regexp.QuoteMeta(listAccounts)).
		WillReturnRows(sqlmock.NewRows(accountRowColumns).AddRow(int64(1), "alice", "h", false, `{"collection-a":"read"}`))
	mock.ExpectCommit()
	expectSyncUnlock(mock)

	var state models.SyncState
	err := repo.WithinSyncTx(testContext(), func(ctx context.Context, tx SyncTx) error {
		var loadErr error
		state, loadErr = tx.LoadState(ctx)
		return loadErr
	})
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())

	require.Len(t, state.Services, 1)
	assert.JSONEq(t, `{"a":1}`, string(state.Services[0].Properties))
	require.Len(t, state.LegacyCollections, 1)
	assert.Equal(t, []string{"urn:stix"}, state.LegacyCollections[0].SupportedContent)
	assert.Equal(t, []string{"inbox"}, state.LegacyCollections[0].ServiceIDs)
	assert.True(t, state.LegacyCollections[0].Available)
	require.Len(t, state.Collections, 1)
	require.Len(t, state.APIRoots, 1)
	require.Len(t, state.Accounts, 1)
	assert.True(t, state.Accounts[0].Permissions.Equal(models.Permissions{
		models.ByName("collection-a"): models.LegacyGrantOf(models.LegacyRead),
	}))
}

// ── Writes ──

func TestSyncTx_LegacyCollectionWrites(t *testing.T) {
	repo, mock := newTestSyncRepo(t)
	description := "feed"
	collection := models.LegacyCollection{
		Name:             "collection-a",
		Type:             models.DataFeed,
		Description:      &description,
		Available:        true,
		SupportedContent: []string{"urn:stix"},
		ServiceIDs:       []string{"inbox", "poll"},
	}

	expectSyncLock(mock)
	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(insertLegacyCollection)).
		WithArgs("collection-a", "DATA_FEED", "feed", false, `["urn:stix"]`, true).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(9)))
	mock.ExpectExec(regexp.QuoteMeta(insertServiceLink)).WithArgs("inbox", int64(9)).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta(insertServiceLink)).WithArgs("poll", int64(9)).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta(updateLegacyCollection)).
		WithArgs(int64(9), "DATA_FEED", "feed", false, `["urn:stix"]`, true).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta(deleteServiceLinks)).WithArgs(int64(9)).WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectExec(regexp.QuoteMeta(insertServiceLink)).WithArgs("inbox", int64(9)).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta(insertServiceLink)).WithArgs("poll", int64(9)).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta(disableLegacyCollection)).WithArgs(int64(9)).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()
	expectSyncUnlock(mock)

	err := repo.WithinSyncTx(testContext(), func(ctx context.Context, tx SyncTx) error {
		id, err := tx.CreateLegacyCollection(ctx, collection)
		if err != nil {
			return err
		}
		collection.ID = id
		if err = tx.UpdateLegacyCollection(ctx, collection); err != nil {
			return err
		}
		return tx.DisableLegacyCollection(ctx, id)
	})
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSyncTx_AccountWrites(t *testing.T) {
	repo, mock := newTestSyncRepo(t)
	account := models.Account{
		ID:           4,
		Username:     "alice",
		PasswordHash: "scrypt:h",
		Permissions:  models.Permissions{models.ByID(testCollectionID): models.ModernGrantOf(models.AccessWrite)},
	}
	perms := `{"` + testCollectionID.String() + `":["write"]}`

	expectSyncLock(mock)
	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(insertAccount)).
		WithArgs("alice", "scrypt:h", false, perms).
		WillReturnResult(sqlmock.NewResult(4, 1))
	mock.ExpectExec(regexp.QuoteMeta(updateAccount)).
		WithArgs(int64(4), "scrypt:h", false, perms).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta(deleteAccountByID)).
		WithArgs(int64(4)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()
	expectSyncUnlock(mock)

	err := repo.WithinSyncTx(testContext(), func(ctx context.Context, tx SyncTx) error {
		if err := tx.CreateAccount(ctx, account); err != nil {
			return err
		}
		if err := tx.UpdateAccount(ctx, account); err != nil {
			return err
		}
		return tx.DeleteAccount(ctx, account.ID)
	})
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSyncTx_CollectionWrites(t *testing.T) {
	repo, mock := newTestSyncRepo(t)
	collection := models.Collection{ID: testCollectionID, APIRootID: testAPIRootID, Title: "Indicators", Available: true}

	expectSyncLock(mock)
	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(insertCollection)).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta(updateCollection)).
		WithArgs(testCollectionID, testAPIRootID, "Indicators", nil, nil, false, false, true).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta(disableCollection)).WithArgs(testCollectionID).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta(deleteCollection)).WithArgs(testCollectionID).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta(updateService)).WithArgs("inbox", "inbox", "{}").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta(deleteService)).WithArgs("inbox").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()
	expectSyncUnlock(mock)

	err := repo.WithinSyncTx(testContext(), func(ctx context.Context, tx SyncTx) error {
		for _, step := range []func() error{
			func() error { return tx.CreateCollection(ctx, collection) },
			func() error { return tx.UpdateCollection(ctx, collection) },
			func() error { return tx.DisableCollection(ctx, collection.ID) },
			func() error { return tx.DeleteCollection(ctx, collection.ID) },
			func() error { return tx.UpdateService(ctx, models.Service{ID: "inbox", Type: models.ServiceInbox}) },
			func() error { return tx.DeleteService(ctx, "inbox") },
		} {
			if err := step(); err != nil {
				return err
			}
		}
		return nil
	})
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}
