// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cache

import (
	"context"

	"github.com/MKhiriev/go-taxii/internal/config"
	"github.com/MKhiriev/go-taxii/internal/logger"
	"github.com/MKhiriev/go-taxii/internal/store"
	"github.com/MKhiriev/go-taxii/models"
	"github.com/google/uuid"
	"github.com/hashicorp/golang-lru/v2/expirable"
)

const allRootsKey = "*"

var _ store.DirectoryRepository = (*DirectoryCache)(nil)

type aliasKey struct {
	apiRootID uuid.UUID
	alias     string
}

// DirectoryCache is a read-through [store.DirectoryRepository].
// Only successful lookups are cached.
type DirectoryCache struct {
	repo   store.DirectoryRepository
	logger *logger.Logger

	roots           *expirable.LRU[uuid.UUID, models.APIRoot]
	rootLists       *expirable.LRU[string, []models.APIRoot]
	collections     *expirable.LRU[uuid.UUID, models.Collection]
	collectionLists *expirable.LRU[uuid.UUID, []models.Collection]
	aliases         *expirable.LRU[aliasKey, models.Collection]
}

// NewDirectoryCache wraps repo.
func NewDirectoryCache(repo store.DirectoryRepository, cfg config.Cache, log *logger.Logger) *DirectoryCache {
	log.Debug().Dur("ttl", cfg.TTL).Int("size", cfg.Size).Msg("creating directory cache")
	return &DirectoryCache{
		repo:            repo,
		logger:          log,
		roots:           expirable.NewLRU[uuid.UUID, models.APIRoot](cfg.Size, nil, cfg.TTL),
		rootLists:       expirable.NewLRU[string, []models.APIRoot](1, nil, cfg.TTL),
		collections:     expirable.NewLRU[uuid.UUID, models.Collection](cfg.Size, nil, cfg.TTL),
		collectionLists: expirable.NewLRU[uuid.UUID, []models.Collection](cfg.Size, nil, cfg.TTL),
		aliases:         expirable.NewLRU[aliasKey, models.Collection](cfg.Size, nil, cfg.TTL),
	}
}

func (c *DirectoryCache) ListAPIRoots(ctx context.Context) ([]models.APIRoot, error) {
	if roots, ok := c.rootLists.Get(allRootsKey); ok {
		return roots, nil
	}

	roots, err := c.repo.ListAPIRoots(ctx)
	if err != nil {
		return nil, err
	}
	c.rootLists.Add(allRootsKey, roots)
	return roots, nil
}

func (c *DirectoryCache) GetAPIRoot(ctx context.Context, id uuid.UUID) (models.APIRoot, error) {
	if root, ok := c.roots.Get(id); ok {
		return root, nil
	}

	root, err := c.repo.GetAPIRoot(ctx, id)
	if err != nil {
		return models.APIRoot{}, err
	}
	c.roots.Add(id, root)
	return root, nil
}

func (c *DirectoryCache) CreateAPIRoot(ctx context.Context, root models.APIRoot) (models.APIRoot, error) {
	created, err := c.repo.CreateAPIRoot(ctx, root)
	if err != nil {
		return models.APIRoot{}, err
	}
	c.Purge(ctx)
	return created, nil
}

func (c *DirectoryCache) ListCollections(ctx context.Context, apiRootID uuid.UUID) ([]models.Collection, error) {
	if collections, ok := c.collectionLists.Get(apiRootID); ok {
		return collections, nil
	}

	collections, err := c.repo.ListCollections(ctx, apiRootID)
	if err != nil {
		return nil, err
	}
	c.collectionLists.Add(apiRootID, collections)
	return collections, nil
}

func (c *DirectoryCache) GetCollection(ctx context.Context, id uuid.UUID) (models.Collection, error) {
	if collection, ok := c.collections.Get(id); ok {
		return collection, nil
	}

	collection, err := c.repo.GetCollection(ctx, id)
	if err != nil {
		return models.Collection{}, err
	}
	c.collections.Add(id, collection)
	return collection, nil
}

func (c *DirectoryCache) GetCollectionByAlias(ctx context.Context, apiRootID uuid.UUID, alias string) (models.Collection, error) {
	key := aliasKey{apiRootID: apiRootID, alias: alias}
	if collection, ok := c.aliases.Get(key); ok {
		return collection, nil
	}

	collection, err := c.repo.GetCollectionByAlias(ctx, apiRootID, alias)
	if err != nil {
		return models.Collection{}, err
	}
	c.aliases.Add(key, collection)
	return collection, nil
}

func (c *DirectoryCache) CreateCollection(ctx context.Context, collection models.Collection) (models.Collection, error) {
	created, err := c.repo.CreateCollection(ctx, collection)
	if err != nil {
		return models.Collection{}, err
	}
	c.Purge(ctx)
	return created, nil
}

// Purge drops every cached entry.
func (c *DirectoryCache) Purge(ctx context.Context) {
	logger.FromContext(ctx).Debug().Str("func", "DirectoryCache.Purge").Msg("purging directory cache")
	c.roots.Purge()
	c.rootLists.Purge()
	c.collections.Purge()
	c.collectionLists.Purge()
	c.aliases.Purge()
}
