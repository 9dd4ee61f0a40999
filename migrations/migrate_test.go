// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package migrations

import (
	"errors"
	"io/fs"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrate_DBError(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(".*").WillReturnError(errors.New("connection refused"))
	mock.ExpectExec(".*").WillReturnError(errors.New("connection refused"))

	err = Migrate(db)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "migration error")
}

func TestMigrate_NilDB(t *testing.T) {
	err := Migrate(nil)
	require.ErrorIs(t, err, ErrNilDB)
}

func TestEmbeddedMigrations(t *testing.T) {
	names, err := fs.Glob(embedMigrations, "*.sql")
	require.NoError(t, err)
	require.Equal(t, []string{"00001_opentaxii_schema.sql", "00002_collection_available.sql"}, names)

	schema, err := fs.ReadFile(embedMigrations, "00001_opentaxii_schema.sql")
	require.NoError(t, err)

	for _, table := range []string{
		"accounts",
		"services",
		"data_collections",
		"service_to_collection",
		"opentaxii_api_root",
		"opentaxii_collection",
		"opentaxii_stixobject",
		"opentaxii_job",
		"opentaxii_job_detail",
	} {
		assert.True(t, strings.Contains(string(schema), "CREATE TABLE IF NOT EXISTS "+table+" "), table)
	}

	assert.Contains(t, string(schema), "UNIQUE (collection_id, id, version)")
}
