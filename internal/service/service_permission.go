// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-taxii/internal/logger"
	"github.com/MKhiriev/go-taxii/internal/store"
	"github.com/MKhiriev/go-taxii/models"
	"github.com/google/uuid"
)

// permissionGate resolves collections through the directory and applies
// the access rules of [Allowed]. It never writes.
type permissionGate struct {
	directory store.DirectoryRepository
	logger    *logger.Logger
}

// NewPermissionGate returns a PermissionGate reading from directory.
func NewPermissionGate(directory store.DirectoryRepository, log *logger.Logger) PermissionGate {
	return &permissionGate{
		directory: directory,
		logger:    log,
	}
}

func (g *permissionGate) Resolve(ctx context.Context, principal *models.Account, collectionID uuid.UUID, action models.Access) (models.Collection, error) {
	collection, err := g.directory.GetCollection(ctx, collectionID)
	if err != nil {
		return models.Collection{}, mapStoreError(err)
	}
	return g.decide(ctx, principal, collection, action)
}

func (g *permissionGate) ResolveRef(ctx context.Context, principal *models.Account, ref models.CollectionRef, action models.Access) (models.Collection, error) {
	collection, err := lookupCollection(ctx, g.directory, ref)
	if err != nil {
		return models.Collection{}, err
	}
	return g.decide(ctx, principal, collection, action)
}

func (g *permissionGate) decide(ctx context.Context, principal *models.Account, collection models.Collection, action models.Access) (models.Collection, error) {
	if !collection.Available {
		return models.Collection{}, fmt.Errorf("%w: %w", ErrNotFound, store.ErrCollectionNotFound)
	}

	if !Allowed(principal, collection, action) {
		logger.FromContext(ctx).Debug().
			Str("func", "permissionGate.decide").
			Str("collection_id", collection.ID.String()).
			Stringer("action", action).
			Bool("anonymous", principal == nil).
			Msg("access denied")
		return models.Collection{}, ErrPermissionDenied
	}

	return collection, nil
}

// lookupCollection finds a collection of ref.APIRootID by id or alias.
// A collection owned by another API root is reported as missing.
func lookupCollection(ctx context.Context, directory store.DirectoryRepository, ref models.CollectionRef) (models.Collection, error) {
	var (
		collection models.Collection
		err        error
	)
	if id, parseErr := uuid.Parse(ref.Collection); parseErr == nil {
		collection, err = directory.GetCollection(ctx, id)
	} else {
		collection, err = directory.GetCollectionByAlias(ctx, ref.APIRootID, ref.Collection)
	}
	if err != nil {
		return models.Collection{}, mapStoreError(err)
	}

	if collection.APIRootID != ref.APIRootID {
		return models.Collection{}, fmt.Errorf("%w: %w", ErrNotFound, store.ErrCollectionNotFound)
	}
	return collection, nil
}

// Allowed applies the access rules to an already loaded collection:
// admins may do anything; public flags open reads or writes to everyone;
// otherwise the principal needs a grant under the collection's UUID.
// Name-keyed grants never apply to UUID-identified collections.
func Allowed(principal *models.Account, collection models.Collection, action models.Access) bool {
	if principal != nil && principal.IsAdmin {
		return true
	}

	switch action {
	case models.AccessRead:
		if collection.IsPublic {
			return true
		}
	case models.AccessWrite:
		if collection.IsPublicWrite {
			return true
		}
	}

	grant, ok := principal.Grant(models.ByID(collection.ID))
	return ok && grant.Allows(action)
}
