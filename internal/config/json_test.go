// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestParseJSON_Success(t *testing.T) {
	path := writeConfigFile(t, `{
		"app": {"token_sign_key": "secret", "token_duration": "2h", "cursor_key": "cursor"},
		"storage": {"db": {"dsn": "postgres://localhost/taxii"}, "redis": {"address": "localhost:6379"}},
		"server": {"http_address": "localhost:9000", "request_timeout": "5s"},
		"ingest": {"workers": 2},
		"pagination": {"default_page_size": 10, "max_page_size": 20},
		"cache": {"ttl": 1000000000},
		"workers": {"job_retention": "12h"},
		"log": {"level": "error"}
	}`)

	cfg, err := parseJSON(path)
	require.NoError(t, err)

	assert.Equal(t, "secret", cfg.App.TokenSignKey)
	assert.Equal(t, 2*time.Hour, cfg.App.TokenDuration)
	assert.Equal(t, "cursor", cfg.App.CursorKey)
	assert.Equal(t, "postgres://localhost/taxii", cfg.Storage.DB.DSN)
	assert.Equal(t, "localhost:6379", cfg.Storage.Redis.Address)
	assert.Equal(t, "localhost:9000", cfg.Server.HTTPAddress)
	assert.Equal(t, 5*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, 2, cfg.Ingest.Workers)
	assert.Equal(t, 10, cfg.Pagination.DefaultPageSize)
	assert.Equal(t, 20, cfg.Pagination.MaxPageSize)
	assert.Equal(t, time.Second, cfg.Cache.TTL)
	assert.Equal(t, 12*time.Hour, cfg.Workers.JobRetention)
	assert.Equal(t, "error", cfg.Log.Level)
}

func TestParseJSON_FileNotFound(t *testing.T) {
	_, err := parseJSON(filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error reading a json file")
}

func TestParseJSON_InvalidJSON(t *testing.T) {
	_, err := parseJSON(writeConfigFile(t, `{"app":`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error decoding json configs")
}

func TestParseJSON_InvalidDuration(t *testing.T) {
	_, err := parseJSON(writeConfigFile(t, `{"server": {"request_timeout": "soon"}}`))
	require.Error(t, err)
}

func TestParseJSON_EmptyObject(t *testing.T) {
	cfg, err := parseJSON(writeConfigFile(t, `{}`))
	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}
