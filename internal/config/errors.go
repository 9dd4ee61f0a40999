// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidStorageConfigs indicates invalid storage settings
	// (for example, an empty DSN).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidPaginationConfigs indicates page sizes that cannot be used
	// (default larger than max, or negative values).
	ErrInvalidPaginationConfigs = errors.New("invalid pagination configuration")
	// ErrInvalidIngestConfigs indicates a non-positive worker count.
	ErrInvalidIngestConfigs = errors.New("invalid ingest configuration")
	// ErrInvalidAppConfigs indicates missing token settings required by the
	// HTTP server.
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidWorkerConfigs indicates invalid background worker settings.
	ErrInvalidWorkerConfigs = errors.New("invalid worker configuration")
)
