// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── newConfigBuilder ──────────────────────────────────────────────────────────

func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder()
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
}

// ── build ─────────────────────────────────────────────────────────────────────

func TestBuild_EmptyBuilderFailsWithoutDSN(t *testing.T) {
	_, err := newConfigBuilder().build()
	require.ErrorIs(t, err, ErrInvalidStorageConfigs)
}

func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = errors.New("boom")

	cfg, err := b.build()
	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "boom")
}

func TestBuild_LaterSourcesOverride(t *testing.T) {
	b := newConfigBuilder().
		withValues(&StructuredConfig{Storage: Storage{DB: DB{DSN: "first"}}, Ingest: Ingest{Workers: 2}}).
		withValues(&StructuredConfig{Storage: Storage{DB: DB{DSN: "second"}}})

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "second", cfg.Storage.DB.DSN)
	assert.Equal(t, 2, cfg.Ingest.Workers)
}

func TestBuild_AppliesDefaults(t *testing.T) {
	cfg, err := newConfigBuilder().
		withValues(&StructuredConfig{
			Storage: Storage{DB: DB{DSN: "postgres://localhost/taxii"}},
			App:     App{TokenSignKey: "secret"},
		}).
		build()
	require.NoError(t, err)

	assert.Equal(t, DefaultHTTPAddress, cfg.Server.HTTPAddress)
	assert.Equal(t, DefaultIngestWorkers, cfg.Ingest.Workers)
	assert.Equal(t, DefaultPageSize, cfg.Pagination.DefaultPageSize)
	assert.Equal(t, DefaultMaxPageSize, cfg.Pagination.MaxPageSize)
	assert.Equal(t, DefaultJobRetention, cfg.Workers.JobRetention)
	assert.Equal(t, time.Hour, cfg.App.TokenDuration)
	assert.Equal(t, "secret", cfg.App.CursorKey, "cursor key falls back to the token key")
	assert.NoError(t, cfg.ValidateServer())
}

func TestBuild_RejectsInconsistentPageSizes(t *testing.T) {
	_, err := newConfigBuilder().
		withValues(&StructuredConfig{
			Storage:    Storage{DB: DB{DSN: "postgres://localhost/taxii"}},
			Pagination: Pagination{DefaultPageSize: 500, MaxPageSize: 100},
		}).
		build()
	require.ErrorIs(t, err, ErrInvalidPaginationConfigs)
}

func TestValidateServer_RequiresTokenKey(t *testing.T) {
	cfg := &StructuredConfig{}
	require.ErrorIs(t, cfg.ValidateServer(), ErrInvalidAppConfigs)
}

// ── withEnv / withJSON ────────────────────────────────────────────────────────

func TestWithEnv_ReadsEnvVars(t *testing.T) {
	t.Setenv("STORAGE_DB_DATABASE_URI", "postgres://env/taxii")

	b := newConfigBuilder().withEnv()
	require.NoError(t, b.err)
	require.Len(t, b.configs, 1)
	assert.Equal(t, "postgres://env/taxii", b.configs[0].Storage.DB.DSN)
}

func TestWithJSON_NoOp_WhenNoPathSet(t *testing.T) {
	b := newConfigBuilder().withValues(&StructuredConfig{}).withJSON()
	require.NoError(t, b.err)
	assert.Len(t, b.configs, 1)
}

func TestWithJSON_OverridesEarlierSources(t *testing.T) {
	path := writeConfigFile(t, `{"storage": {"db": {"dsn": "postgres://json/taxii"}}}`)

	cfg, err := newConfigBuilder().
		withValues(&StructuredConfig{Storage: Storage{DB: DB{DSN: "postgres://flags/taxii"}}, JSONFilePath: path}).
		withJSON().
		build()
	require.NoError(t, err)
	assert.Equal(t, "postgres://json/taxii", cfg.Storage.DB.DSN)
}

func TestWithJSON_SetsError_WhenFileNotFound(t *testing.T) {
	b := newConfigBuilder().
		withValues(&StructuredConfig{JSONFilePath: "/does/not/exist.json"}).
		withJSON()
	require.Error(t, b.err)
}
