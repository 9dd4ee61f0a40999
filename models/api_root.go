// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "github.com/google/uuid"

// APIRoot is a top-level grouping of collections.
// At most one APIRoot is marked as default; the administrative path keeps
// that invariant, the schema does not.
type APIRoot struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Description *string   `json:"description,omitempty"`
	IsDefault   bool      `json:"is_default"`
	IsPublic    bool      `json:"is_public"`
}

// TableName returns the name of the database table
// associated with the APIRoot model.
func (a APIRoot) TableName() string {
	return "opentaxii_api_root"
}
