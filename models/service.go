// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"time"
)

// ServiceType is the kind of a legacy protocol service.
type ServiceType string

const (
	ServiceInbox                ServiceType = "inbox"
	ServiceDiscovery            ServiceType = "discovery"
	ServiceCollectionManagement ServiceType = "collection_management"
	ServicePoll                 ServiceType = "poll"
)

// Service is a legacy protocol service definition. Properties are opaque to
// this server and stored as JSON text.
type Service struct {
	ID          string          `json:"id" yaml:"id"`
	Type        ServiceType     `json:"type" yaml:"type"`
	Properties  json.RawMessage `json:"properties" yaml:"-"`
	DateCreated time.Time       `json:"date_created" yaml:"-"`
	DateUpdated time.Time       `json:"date_updated" yaml:"-"`
}

// TableName returns the name of the database table
// associated with the Service model.
func (s Service) TableName() string {
	return "services"
}

// LegacyCollectionType is the legacy collection flavour.
type LegacyCollectionType string

const (
	DataFeed LegacyCollectionType = "DATA_FEED"
	DataSet  LegacyCollectionType = "DATA_SET"
)

// LegacyCollection is a name-keyed collection of the legacy protocol.
type LegacyCollection struct {
	ID               int64                `json:"id"`
	Name             string               `json:"name"`
	Type             LegacyCollectionType `json:"type"`
	Description      *string              `json:"description,omitempty"`
	Available        bool                 `json:"available"`
	AcceptAllContent bool                 `json:"accept_all_content"`
	SupportedContent []string             `json:"supported_content,omitempty"`
	Volume           int                  `json:"volume"`
	DateCreated      time.Time            `json:"date_created"`
	ServiceIDs       []string             `json:"service_ids,omitempty"`
}

// TableName returns the name of the database table
// associated with the LegacyCollection model.
func (c LegacyCollection) TableName() string {
	return "data_collections"
}
