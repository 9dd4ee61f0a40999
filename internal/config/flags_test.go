// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"flag"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNetAddress_String tests the String method of NetAddress
func TestNetAddress_String(t *testing.T) {
	tests := []struct {
		name     string
		addr     NetAddress
		expected string
	}{
		{name: "empty address", addr: NetAddress{}, expected: ""},
		{name: "localhost with port", addr: NetAddress{Host: "localhost", Port: 8080}, expected: "localhost:8080"},
		{name: "IP address with port", addr: NetAddress{Host: "127.0.0.1", Port: 9090}, expected: "127.0.0.1:9090"},
		{name: "only port no host", addr: NetAddress{Port: 8080}, expected: ":8080"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.addr.String())
		})
	}
}

// TestNetAddress_Set tests the Set method of NetAddress
func TestNetAddress_Set(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		expectError bool
		want        NetAddress
	}{
		{name: "localhost", input: "localhost:9000", want: NetAddress{Host: "localhost", Port: 9000}},
		{name: "ip", input: "0.0.0.0:9000", want: NetAddress{Host: "0.0.0.0", Port: 9000}},
		{name: "any interface", input: ":9000", want: NetAddress{Port: 9000}},
		{name: "no port", input: "localhost", expectError: true},
		{name: "bad port", input: "localhost:abc", expectError: true},
		{name: "zero port", input: "localhost:0", expectError: true},
		{name: "port too big", input: "localhost:70000", expectError: true},
		{name: "bad host", input: "example:9000", expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var addr NetAddress
			err := addr.Set(tt.input)
			if tt.expectError {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, addr)
		})
	}
}

func TestParseFlagSet(t *testing.T) {
	fs := flag.NewFlagSet("test", flag.ContinueOnError)

	cfg := parseFlagSet(fs, []string{
		"-a", "127.0.0.1:9000",
		"-d", "postgres://localhost/taxii",
		"-config", "/etc/taxii.json",
		"-token-sign-key", "secret",
		"-token-issuer", "issuer",
		"-token-duration", "2h",
		"-cursor-key", "cursor",
		"-request-timeout", "15s",
		"-redis", "localhost:6379",
		"-ingest-workers", "3",
		"-max-page-size", "250",
		"-log-level", "warn",
	})

	assert.Equal(t, "127.0.0.1:9000", cfg.Server.HTTPAddress)
	assert.Equal(t, "postgres://localhost/taxii", cfg.Storage.DB.DSN)
	assert.Equal(t, "/etc/taxii.json", cfg.JSONFilePath)
	assert.Equal(t, "secret", cfg.App.TokenSignKey)
	assert.Equal(t, "issuer", cfg.App.TokenIssuer)
	assert.Equal(t, 2*time.Hour, cfg.App.TokenDuration)
	assert.Equal(t, "cursor", cfg.App.CursorKey)
	assert.Equal(t, 15*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, "localhost:6379", cfg.Storage.Redis.Address)
	assert.Equal(t, 3, cfg.Ingest.Workers)
	assert.Equal(t, 250, cfg.Pagination.MaxPageSize)
	assert.Equal(t, "warn", cfg.Log.Level)
}

func TestParseFlagSet_InvalidAddressLeavesItEmpty(t *testing.T) {
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	fs.SetOutput(discard{})

	cfg := parseFlagSet(fs, []string{"-a", "nowhere"})
	assert.Empty(t, cfg.Server.HTTPAddress)
}

type discard struct{}

func (discard) Write(p []byte) (int, error) { return len(p), nil }
