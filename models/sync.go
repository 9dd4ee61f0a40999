// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// CollectionPolicy decides what reconciliation does with persisted
// collections that the document no longer lists.
type CollectionPolicy string

const (
	PolicyIgnore  CollectionPolicy = "ignore"
	PolicyDisable CollectionPolicy = "disable"
	PolicyDelete  CollectionPolicy = "delete"
)

// UnmarshalYAML rejects unknown policies while parsing.
func (p *CollectionPolicy) UnmarshalYAML(node *yaml.Node) error {
	switch CollectionPolicy(node.Value) {
	case PolicyIgnore, PolicyDisable, PolicyDelete:
		*p = CollectionPolicy(node.Value)
		return nil
	case "":
		*p = PolicyIgnore
		return nil
	default:
		return fmt.Errorf("line %d: unknown collections_not_in_config policy %q", node.Line, node.Value)
	}
}

// SyncDocument is the declarative desired state of services, collections
// and accounts.
type SyncDocument struct {
	PruneServices          bool             `yaml:"prune_services"`
	CollectionsNotInConfig CollectionPolicy `yaml:"collections_not_in_config"`
	PruneAccounts          bool             `yaml:"prune_accounts"`

	Services    []DocService    `yaml:"services" validate:"dive"`
	Collections []DocCollection `yaml:"collections" validate:"dive"`
	Accounts    []DocAccount    `yaml:"accounts" validate:"dive"`
}

// DocService is a service entry of the document.
type DocService struct {
	ID         string         `yaml:"id" validate:"required,max=150"`
	Type       ServiceType    `yaml:"type" validate:"required,oneof=inbox discovery collection_management poll"`
	Properties map[string]any `yaml:"properties"`
}

// DocCollection is a collection entry of the document. Entries with a name
// describe legacy collections; entries with an id describe modern ones.
type DocCollection struct {
	Name             string               `yaml:"name" validate:"required_without=ID,excluded_with=ID,max=300"`
	Type             LegacyCollectionType `yaml:"type" validate:"omitempty,oneof=DATA_FEED DATA_SET"`
	AcceptAllContent *bool                `yaml:"accept_all_content"`
	SupportedContent []string             `yaml:"supported_content"`
	ServiceIDs       []string             `yaml:"service_ids"`

	ID            string  `yaml:"id" validate:"required_without=Name,omitempty,uuid_rfc4122"`
	APIRootID     string  `yaml:"api_root_id" validate:"required_with=ID,omitempty,uuid_rfc4122"`
	Title         string  `yaml:"title" validate:"required_with=ID,max=100"`
	Alias         *string `yaml:"alias" validate:"omitempty,max=100"`
	IsPublic      bool    `yaml:"is_public"`
	IsPublicWrite bool    `yaml:"is_public_write"`

	Description *string `yaml:"description"`
	Available   *bool   `yaml:"available"`
}

// IsModern reports whether the entry describes a UUID-keyed collection.
func (c DocCollection) IsModern() bool {
	return c.ID != ""
}

// IsAvailable returns the declared availability, true when omitted.
func (c DocCollection) IsAvailable() bool {
	return c.Available == nil || *c.Available
}

// AcceptsAllContent returns accept_all_content, true when omitted.
func (c DocCollection) AcceptsAllContent() bool {
	return c.AcceptAllContent == nil || *c.AcceptAllContent
}

// LegacyType returns the declared legacy type, DATA_FEED when omitted.
func (c DocCollection) LegacyType() LegacyCollectionType {
	if c.Type == "" {
		return DataFeed
	}
	return c.Type
}

// DocAccount is an account entry of the document.
type DocAccount struct {
	Username    string      `yaml:"username" validate:"required,max=256"`
	Password    *string     `yaml:"password" validate:"omitempty,min=1"`
	IsAdmin     bool        `yaml:"is_admin"`
	Permissions Permissions `yaml:"permissions"`
}

// SyncState is the persisted state reconciliation diffs against.
type SyncState struct {
	Services          []Service
	LegacyCollections []LegacyCollection
	Collections       []Collection
	APIRoots          []APIRoot
	Accounts          []Account
}

// ReferenceViolation is one unresolved reference found while validating
// a document.
type ReferenceViolation struct {
	Account string `json:"account,omitempty"`
	Key     string `json:"key,omitempty"`
	Reason  string `json:"reason"`
}

func (v ReferenceViolation) String() string {
	switch {
	case v.Account != "" && v.Key != "":
		return fmt.Sprintf("account %q, key %q: %s", v.Account, v.Key, v.Reason)
	case v.Account != "":
		return fmt.Sprintf("account %q: %s", v.Account, v.Reason)
	default:
		return v.Reason
	}
}

// SyncPlan is the set of writes a document requires.
type SyncPlan struct {
	CreateServices []Service
	UpdateServices []Service
	RemoveServices []Service

	CreateLegacyCollections []LegacyCollection
	UpdateLegacyCollections []LegacyCollection
	RemoveLegacyCollections []LegacyCollection

	CreateCollections []Collection
	UpdateCollections []Collection
	RemoveCollections []Collection

	CollectionPolicy CollectionPolicy

	CreateAccounts []Account
	UpdateAccounts []Account
	RemoveAccounts []Account
}

// SyncCounts is the per-entity summary of an applied plan.
type SyncCounts struct {
	Created  int `json:"created"`
	Updated  int `json:"updated"`
	Removed  int `json:"removed"`
	Disabled int `json:"disabled"`
}

// SyncReport summarises a reconciliation run.
type SyncReport struct {
	Services    SyncCounts `json:"services"`
	Collections SyncCounts `json:"collections"`
	Accounts    SyncCounts `json:"accounts"`
}
