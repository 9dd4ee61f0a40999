// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cache

import (
	"context"
	"testing"
	"time"

	"github.com/MKhiriev/go-taxii/internal/config"
	"github.com/MKhiriev/go-taxii/internal/logger"
	"github.com/MKhiriev/go-taxii/internal/mock"
	"github.com/MKhiriev/go-taxii/internal/store"
	"github.com/MKhiriev/go-taxii/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var (
	testRootID       = uuid.MustParse("1a1a6f8e-3a1c-4c0e-9f4f-2d0d3f9f6a11")
	testCollectionID = uuid.MustParse("2b2b6f8e-3a1c-4c0e-9f4f-2d0d3f9f6a11")
)

func newTestCache(t *testing.T, ttl time.Duration) (*DirectoryCache, *mock.MockDirectoryRepository) {
	t.Helper()
	ctrl := gomock.NewController(t)
	repo := mock.NewMockDirectoryRepository(ctrl)
	return NewDirectoryCache(repo, config.Cache{TTL: ttl, Size: 16}, logger.Nop()), repo
}

func TestDirectoryCache_GetCollectionReadsThroughOnce(t *testing.T) {
	c, repo := newTestCache(t, time.Minute)
	ctx := context.Background()
	collection := models.Collection{ID: testCollectionID, APIRootID: testRootID, Title: "Indicators", Available: true}

	repo.EXPECT().GetCollection(ctx, testCollectionID).Return(collection, nil).Times(1)

	for range 3 {
		got, err := c.GetCollection(ctx, testCollectionID)
		require.NoError(t, err)
		assert.Equal(t, collection, got)
	}
}

func TestDirectoryCache_ErrorsAreNotCached(t *testing.T) {
	c, repo := newTestCache(t, time.Minute)
	ctx := context.Background()

	gomock.InOrder(
		repo.EXPECT().GetAPIRoot(ctx, testRootID).Return(models.APIRoot{}, store.ErrAPIRootNotFound),
		repo.EXPECT().GetAPIRoot(ctx, testRootID).Return(models.APIRoot{ID: testRootID, Title: "root"}, nil),
	)

	_, err := c.GetAPIRoot(ctx, testRootID)
	assert.ErrorIs(t, err, store.ErrNotFound)

	root, err := c.GetAPIRoot(ctx, testRootID)
	require.NoError(t, err)
	assert.Equal(t, "root", root.Title)
}

func TestDirectoryCache_EntriesExpire(t *testing.T) {
	c, repo := newTestCache(t, 20*time.Millisecond)
	ctx := context.Background()

	repo.EXPECT().ListAPIRoots(ctx).Return([]models.APIRoot{{ID: testRootID}}, nil).Times(2)

	_, err := c.ListAPIRoots(ctx)
	require.NoError(t, err)
	_, err = c.ListAPIRoots(ctx)
	require.NoError(t, err)

	time.Sleep(50 * time.Millisecond)

	_, err = c.ListAPIRoots(ctx)
	require.NoError(t, err)
}

func TestDirectoryCache_AliasesAreScopedByRoot(t *testing.T) {
	c, repo := newTestCache(t, time.Minute)
	ctx := context.Background()
	otherRoot := uuid.New()

	repo.EXPECT().GetCollectionByAlias(ctx, testRootID, "indicators").Return(models.Collection{ID: testCollectionID}, nil).Times(1)
	repo.EXPECT().GetCollectionByAlias(ctx, otherRoot, "indicators").Return(models.Collection{}, store.ErrCollectionNotFound).Times(1)

	got, err := c.GetCollectionByAlias(ctx, testRootID, "indicators")
	require.NoError(t, err)
	assert.Equal(t, testCollectionID, got.ID)

	_, err = c.GetCollectionByAlias(ctx, otherRoot, "indicators")
	assert.ErrorIs(t, err, store.ErrCollectionNotFound)

	_, err = c.GetCollectionByAlias(ctx, testRootID, "indicators")
	require.NoError(t, err)
}

func TestDirectoryCache_WritesPurge(t *testing.T) {
	c, repo := newTestCache(t, time.Minute)
	ctx := context.Background()
	collection := models.Collection{ID: testCollectionID, APIRootID: testRootID}

	repo.EXPECT().ListCollections(ctx, testRootID).Return(nil, nil).Times(1)
	repo.EXPECT().CreateCollection(ctx, collection).Return(collection, nil)
	repo.EXPECT().ListCollections(ctx, testRootID).Return([]models.Collection{collection}, nil).Times(1)

	got, err := c.ListCollections(ctx, testRootID)
	require.NoError(t, err)
	assert.Empty(t, got)

	_, err = c.CreateCollection(ctx, collection)
	require.NoError(t, err)

	got, err = c.ListCollections(ctx, testRootID)
	require.NoError(t, err)
	assert.Len(t, got, 1)
}

func TestDirectoryCache_FailedWriteKeepsEntries(t *testing.T) {
	c, repo := newTestCache(t, time.Minute)
	ctx := context.Background()
	root := models.APIRoot{ID: testRootID}

	repo.EXPECT().GetAPIRoot(ctx, testRootID).Return(root, nil).Times(1)
	repo.EXPECT().CreateAPIRoot(ctx, root).Return(models.APIRoot{}, store.ErrAPIRootExists)

	_, err := c.GetAPIRoot(ctx, testRootID)
	require.NoError(t, err)

	_, err = c.CreateAPIRoot(ctx, root)
	assert.ErrorIs(t, err, store.ErrAPIRootExists)

	_, err = c.GetAPIRoot(ctx, testRootID)
	require.NoError(t, err)
}
