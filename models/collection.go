// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "github.com/google/uuid"

// Collection is a UUID-identified container of versioned STIX objects owned
// by an APIRoot. The ID is the only stable identifier; Title is display-only.
type Collection struct {
	ID            uuid.UUID `json:"id"`
	APIRootID     uuid.UUID `json:"-"`
	Title         string    `json:"title"`
	Description   *string   `json:"description,omitempty"`
	Alias         *string   `json:"alias,omitempty"`
	IsPublic      bool      `json:"-"`
	IsPublicWrite bool      `json:"-"`

	// Available is cleared by reconciliation when the collection is disabled.
	// Unavailable collections are treated as missing by the permission gate.
	Available bool `json:"-"`
}

// TableName returns the name of the database table
// associated with the Collection model.
func (c Collection) TableName() string {
	return "opentaxii_collection"
}

// CollectionView is a Collection as seen by a particular principal,
// carrying the resolved access flags.
type CollectionView struct {
	Collection
	CanRead    bool     `json:"can_read"`
	CanWrite   bool     `json:"can_write"`
	MediaTypes []string `json:"media_types"`
}

// CollectionRef addresses a collection of an API root by its id or alias.
type CollectionRef struct {
	APIRootID  uuid.UUID
	Collection string
}
