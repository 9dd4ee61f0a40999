// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-taxii/internal/logger"
	"github.com/MKhiriev/go-taxii/internal/pagination"
	"github.com/MKhiriev/go-taxii/internal/store"
	"github.com/MKhiriev/go-taxii/models"
)

// objectService serves the versioned object store through the permission
// gate and the cursor engine.
type objectService struct {
	objects store.ObjectRepository
	gate    PermissionGate
	pages   *pagination.Engine
	logger  *logger.Logger
}

// NewObjectService returns an ObjectService.
func NewObjectService(objects store.ObjectRepository, gate PermissionGate, pages *pagination.Engine, log *logger.Logger) ObjectService {
	return &objectService{
		objects: objects,
		gate:    gate,
		pages:   pages,
		logger:  log,
	}
}

func (s *objectService) ListObjects(ctx context.Context, principal *models.Account, ref models.CollectionRef, filter models.ObjectFilter, page models.PageRequest) (models.ObjectPage, error) {
	collection, err := s.gate.ResolveRef(ctx, principal, ref, models.AccessRead)
	if err != nil {
		return models.ObjectPage{}, err
	}
	filter.CollectionID = collection.ID

	return s.listObjects(ctx, filter, page)
}

// GetObject returns the versions of one object selected by filter.
func (s *objectService) GetObject(ctx context.Context, principal *models.Account, ref models.CollectionRef, objectID string, filter models.ObjectFilter, page models.PageRequest) (models.ObjectPage, error) {
	collection, err := s.gate.ResolveRef(ctx, principal, ref, models.AccessRead)
	if err != nil {
		return models.ObjectPage{}, err
	}
	filter.CollectionID = collection.ID
	filter.IDs = []string{objectID}
	filter.Types = nil

	result, err := s.listObjects(ctx, filter, page)
	if err != nil {
		return models.ObjectPage{}, err
	}
	if len(result.Objects) == 0 {
		return models.ObjectPage{}, mapStoreError(store.ErrObjectNotFound)
	}
	return result, nil
}

func (s *objectService) listObjects(ctx context.Context, filter models.ObjectFilter, page models.PageRequest) (models.ObjectPage, error) {
	result, err := pagination.NextPage(ctx, s.pages, filter, page, s.objects.ListObjects, objectPosition)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "objectService.listObjects").Str("collection_id", filter.CollectionID.String()).Msg("failed to list objects")
		return models.ObjectPage{}, mapStoreError(err)
	}

	return models.ObjectPage{More: result.More, Next: result.Next, Objects: result.Items}, nil
}

func (s *objectService) ListVersions(ctx context.Context, principal *models.Account, ref models.CollectionRef, objectID string, specVersions []string) ([]time.Time, error) {
	collection, err := s.gate.ResolveRef(ctx, principal, ref, models.AccessRead)
	if err != nil {
		return nil, err
	}

	versions, err := s.objects.ListVersions(ctx, collection.ID, objectID, specVersions)
	if err != nil {
		return nil, mapStoreError(err)
	}
	return versions, nil
}

func (s *objectService) ListManifest(ctx context.Context, principal *models.Account, ref models.CollectionRef, filter models.ObjectFilter, page models.PageRequest) (models.ManifestPage, error) {
	collection, err := s.gate.ResolveRef(ctx, principal, ref, models.AccessRead)
	if err != nil {
		return models.ManifestPage{}, err
	}
	filter.CollectionID = collection.ID

	result, err := pagination.NextPage(ctx, s.pages, filter, page, s.objects.ListManifest, manifestPosition)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "objectService.ListManifest").Str("collection_id", filter.CollectionID.String()).Msg("failed to list manifest")
		return models.ManifestPage{}, mapStoreError(err)
	}

	return models.ManifestPage{More: result.More, Next: result.Next, Objects: result.Items}, nil
}

// DeleteObject removes the versions of objectID selected by filter.Version
// and filter.SpecVersions.
func (s *objectService) DeleteObject(ctx context.Context, principal *models.Account, ref models.CollectionRef, objectID string, filter models.ObjectFilter) error {
	log := logger.FromContext(ctx)

	collection, err := s.gate.ResolveRef(ctx, principal, ref, models.AccessWrite)
	if err != nil {
		return err
	}
	filter.CollectionID = collection.ID
	filter.IDs = []string{objectID}
	filter.Types = nil
	filter.AddedAfter = nil

	deleted, err := s.objects.DeleteObjects(ctx, filter)
	if err != nil {
		return mapStoreError(err)
	}

	log.Info().
		Str("collection_id", collection.ID.String()).
		Str("object_id", objectID).
		Stringer("versions", filter.Version.Mode).
		Int64("deleted", deleted).
		Msg("object versions deleted")
	return nil
}

func objectPosition(o models.STIXObject) models.Position {
	return models.Position{DateAdded: o.DateAdded, ID: o.ID, Version: o.Version}
}

func manifestPosition(m models.ManifestEntry) models.Position {
	return models.Position{DateAdded: m.DateAdded, ID: m.ID, Version: m.Version}
}
