// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "time"

// Defaults applied to fields left empty by every configuration source.
const (
	DefaultHTTPAddress        = "0.0.0.0:9000"
	DefaultRequestTimeout     = 30 * time.Second
	DefaultShutdownTimeout    = 30 * time.Second
	DefaultTokenIssuer        = "go-taxii"
	DefaultTokenDuration      = time.Hour
	DefaultIngestWorkers      = 4
	DefaultPageSize           = 100
	DefaultMaxPageSize        = 1000
	DefaultCacheTTL           = 30 * time.Second
	DefaultCacheSize          = 1024
	DefaultJobCleanupInterval = time.Hour
	DefaultJobRetention       = 24 * time.Hour
	DefaultRedisChannel       = "taxii:directory"
	DefaultDBMaxOpenConns     = 10
)

func (cfg *StructuredConfig) applyDefaults() {
	setDefault(&cfg.Server.HTTPAddress, DefaultHTTPAddress)
	setDefault(&cfg.Server.RequestTimeout, DefaultRequestTimeout)
	setDefault(&cfg.Server.ShutdownTimeout, DefaultShutdownTimeout)
	setDefault(&cfg.App.TokenIssuer, DefaultTokenIssuer)
	setDefault(&cfg.App.TokenDuration, DefaultTokenDuration)
	setDefault(&cfg.App.CursorKey, cfg.App.TokenSignKey)
	setDefault(&cfg.Ingest.Workers, DefaultIngestWorkers)
	setDefault(&cfg.Pagination.DefaultPageSize, DefaultPageSize)
	setDefault(&cfg.Pagination.MaxPageSize, DefaultMaxPageSize)
	setDefault(&cfg.Cache.TTL, DefaultCacheTTL)
	setDefault(&cfg.Cache.Size, DefaultCacheSize)
	setDefault(&cfg.Workers.JobCleanupInterval, DefaultJobCleanupInterval)
	setDefault(&cfg.Workers.JobRetention, DefaultJobRetention)
	setDefault(&cfg.Storage.Redis.Channel, DefaultRedisChannel)
	setDefault(&cfg.Storage.DB.MaxOpenConns, DefaultDBMaxOpenConns)
}

func setDefault[T comparable](field *T, value T) {
	var zero T
	if *field == zero {
		*field = value
	}
}

// validate checks that the final merged [StructuredConfig] satisfies all
// invariants shared by the server and the CLI.
func (cfg *StructuredConfig) validate() error {
	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Pagination.DefaultPageSize < 1 || cfg.Pagination.MaxPageSize < cfg.Pagination.DefaultPageSize {
		return ErrInvalidPaginationConfigs
	}

	if cfg.Ingest.Workers < 1 {
		return ErrInvalidIngestConfigs
	}

	if cfg.Workers.JobCleanupInterval < 0 || cfg.Workers.JobRetention < 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}

// ValidateServer checks the settings only the HTTP server needs.
func (cfg *StructuredConfig) ValidateServer() error {
	if cfg.App.TokenSignKey == "" || cfg.App.CursorKey == "" {
		return ErrInvalidAppConfigs
	}
	return nil
}
