// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"errors"
	"regexp"
	"testing"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-ews-sync/internal/logger"
)

func newServerVersionRepo(db *DB) *serverVersionRepository {
	r := NewServerVersionRepository(db, logger.Nop()).(*serverVersionRepository)
	r.now = fixedClock
	return r
}

func TestGetServerVersions(t *testing.T) {
	db, mock := newMockDB(t, DialectSQLite)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT endpoint, version FROM server_versions ORDER BY endpoint")).
		WillReturnRows(sqlmock.NewRows([]string{"endpoint", "version"}).
			AddRow("https://a.example.com/EWS/Exchange.asmx", "Exchange2010_SP2").
			AddRow("https://b.example.com/EWS/Exchange.asmx", "Exchange2013"))

	got, err := newServerVersionRepo(db).GetServerVersions(testContext())
	require.NoError(t, err)
	assert.Equal(t, map[string]string{
		"https://a.example.com/EWS/Exchange.asmx": "Exchange2010_SP2",
		"https://b.example.com/EWS/Exchange.asmx": "Exchange2013",
	}, got)
}

func TestGetServerVersions_Error(t *testing.T) {
	db, mock := newMockDB(t, DialectSQLite)
	mock.ExpectQuery("FROM server_versions").WillReturnError(errors.New("boom"))

	_, err := newServerVersionRepo(db).GetServerVersions(testContext())
	require.ErrorIs(t, err, ErrExecutingQuery)
}

func TestSaveServerVersions(t *testing.T) {
	db, mock := newMockDB(t, DialectPostgres)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO server_versions (endpoint,version,updated_at) VALUES ($1,$2,$3) ON CONFLICT (endpoint) DO UPDATE SET")).
		WithArgs("https://a", "Exchange2007_SP1", fixedNow).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO server_versions").
		WithArgs("https://b", "Exchange2013_SP1", fixedNow).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := newServerVersionRepo(db).SaveServerVersions(testContext(), map[string]string{
		"https://b": "Exchange2013_SP1",
		"https://a": "Exchange2007_SP1",
	})
	require.NoError(t, err)
}

func TestSaveServerVersions_Empty(t *testing.T) {
	db, _ := newMockDB(t, DialectPostgres)
	require.NoError(t, newServerVersionRepo(db).SaveServerVersions(testContext(), nil))
}
