// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-taxii/internal/cache"
	"github.com/MKhiriev/go-taxii/internal/logger"
	"github.com/MKhiriev/go-taxii/internal/store"
	"github.com/MKhiriev/go-taxii/models"
	"github.com/google/uuid"
)

// collectionMediaTypes is advertised for every collection.
var collectionMediaTypes = []string{models.MediaTypeFor(models.DefaultSpecVersion)}

type directoryService struct {
	directory store.DirectoryRepository
	notifier  cache.Notifier
	logger    *logger.Logger
}

// NewDirectoryService returns a DirectoryService. notifier is told about
// every successful administrative write.
func NewDirectoryService(directory store.DirectoryRepository, notifier cache.Notifier, log *logger.Logger) DirectoryService {
	return &directoryService{
		directory: directory,
		notifier:  notifier,
		logger:    log,
	}
}

func (d *directoryService) ListAPIRoots(ctx context.Context, principal *models.Account) ([]models.APIRoot, error) {
	roots, err := d.directory.ListAPIRoots(ctx)
	if err != nil {
		return nil, mapStoreError(err)
	}
	if principal != nil {
		return roots, nil
	}

	public := make([]models.APIRoot, 0, len(roots))
	for _, root := range roots {
		if root.IsPublic {
			public = append(public, root)
		}
	}
	return public, nil
}

// GetAPIRoot returns the root. Anonymous callers only see public roots.
func (d *directoryService) GetAPIRoot(ctx context.Context, principal *models.Account, id uuid.UUID) (models.APIRoot, error) {
	root, err := d.directory.GetAPIRoot(ctx, id)
	if err != nil {
		return models.APIRoot{}, mapStoreError(err)
	}
	if principal == nil && !root.IsPublic {
		return models.APIRoot{}, ErrUnauthenticated
	}
	return root, nil
}

// ListCollections returns the available collections of the root that the
// principal can read or write.
func (d *directoryService) ListCollections(ctx context.Context, principal *models.Account, apiRootID uuid.UUID) ([]models.CollectionView, error) {
	if _, err := d.GetAPIRoot(ctx, principal, apiRootID); err != nil {
		return nil, err
	}

	collections, err := d.directory.ListCollections(ctx, apiRootID)
	if err != nil {
		return nil, mapStoreError(err)
	}

	views := make([]models.CollectionView, 0, len(collections))
	for _, collection := range collections {
		if !collection.Available {
			continue
		}
		view := newCollectionView(principal, collection)
		if view.CanRead || view.CanWrite {
			views = append(views, view)
		}
	}
	return views, nil
}

func (d *directoryService) GetCollection(ctx context.Context, principal *models.Account, ref models.CollectionRef) (models.CollectionView, error) {
	collection, err := lookupCollection(ctx, d.directory, ref)
	if err != nil {
		return models.CollectionView{}, err
	}
	if !collection.Available {
		return models.CollectionView{}, fmt.Errorf("%w: %w", ErrNotFound, store.ErrCollectionNotFound)
	}

	view := newCollectionView(principal, collection)
	if !view.CanRead && !view.CanWrite {
		return models.CollectionView{}, ErrPermissionDenied
	}
	return view, nil
}

func (d *directoryService) CreateAPIRoot(ctx context.Context, principal *models.Account, root models.APIRoot) (models.APIRoot, error) {
	log := logger.FromContext(ctx)

	if err := requireAdmin(principal); err != nil {
		return models.APIRoot{}, err
	}
	if root.Title == "" {
		return models.APIRoot{}, fmt.Errorf("%w: api root title is required", ErrValidation)
	}

	created, err := d.directory.CreateAPIRoot(ctx, root)
	if err != nil {
		log.Err(err).Str("func", "directoryService.CreateAPIRoot").Str("title", root.Title).Msg("failed to create api root")
		return models.APIRoot{}, mapStoreError(err)
	}

	d.announce(ctx)
	log.Info().Str("api_root_id", created.ID.String()).Bool("default", created.IsDefault).Msg("api root created")
	return created, nil
}

func (d *directoryService) CreateCollection(ctx context.Context, principal *models.Account, collection models.Collection) (models.Collection, error) {
	log := logger.FromContext(ctx)

	if err := requireAdmin(principal); err != nil {
		return models.Collection{}, err
	}
	if collection.Title == "" {
		return models.Collection{}, fmt.Errorf("%w: collection title is required", ErrValidation)
	}
	if collection.ID == uuid.Nil {
		collection.ID = uuid.New()
	}
	collection.Available = true

	created, err := d.directory.CreateCollection(ctx, collection)
	if err != nil {
		log.Err(err).Str("func", "directoryService.CreateCollection").Str("title", collection.Title).Msg("failed to create collection")
		return models.Collection{}, mapStoreError(err)
	}

	d.announce(ctx)
	log.Info().Str("collection_id", created.ID.String()).Str("api_root_id", created.APIRootID.String()).Msg("collection created")
	return created, nil
}

// announce tells other instances to drop cached directory entries.
// A failed broadcast only delays their view until the cache TTL expires.
func (d *directoryService) announce(ctx context.Context) {
	if err := d.notifier.Publish(ctx); err != nil {
		logger.FromContext(ctx).Warn().Err(err).Str("func", "directoryService.announce").Msg("directory change not broadcast")
	}
}

func newCollectionView(principal *models.Account, collection models.Collection) models.CollectionView {
	return models.CollectionView{
		Collection: collection,
		CanRead:    Allowed(principal, collection, models.AccessRead),
		CanWrite:   Allowed(principal, collection, models.AccessWrite),
		MediaTypes: collectionMediaTypes,
	}
}

func requireAdmin(principal *models.Account) error {
	if principal == nil {
		return ErrUnauthenticated
	}
	if !principal.IsAdmin {
		return fmt.Errorf("%w: %w", ErrPermissionDenied, ErrAdminRequired)
	}
	return nil
}
