// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-ews-sync/internal/logger"
)

var fixedNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func newMockDB(t *testing.T, dialect Dialect) (*DB, sqlmock.Sqlmock) {
	t.Helper()
	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, mock.ExpectationsWereMet())
		conn.Close()
	})
	return newDBFromSQL(conn, dialect), mock
}

// newDBFromSQL wraps an existing *sql.DB (for tests).
func newDBFromSQL(conn *sql.DB, dialect Dialect) *DB {
	classifier := ErrorClassificator(NewSQLiteErrorClassifier())
	if dialect == DialectPostgres {
		classifier = NewPostgresErrorClassifier()
	}
	return &DB{
		DB:                 conn,
		errorClassificator: classifier,
		logger:             logger.Nop(),
		dialect:            dialect,
	}
}

func testContext() context.Context {
	return logger.Nop().WithContext(context.Background())
}

func intRef(v int) *int { return &v }

func fixedClock() time.Time { return fixedNow }
