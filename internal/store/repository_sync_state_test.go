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

func newSyncStateRepo(db *DB) *syncStateRepository {
	r := NewSyncStateRepository(db, logger.Nop()).(*syncStateRepository)
	r.now = fixedClock
	return r
}

// ── GetSyncState ──

func TestGetSyncState(t *testing.T) {
	tests := []struct {
		name    string
		setup   func(mock sqlmock.Sqlmock)
		want    string
		wantErr error
	}{
		{
			name: "found",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(regexp.QuoteMeta("SELECT sync_state FROM sync_states WHERE sync_key = $1")).
					WithArgs(FolderHierarchySyncKey).
					WillReturnRows(sqlmock.NewRows([]string{"sync_state"}).AddRow("H4sIAAA"))
			},
			want: "H4sIAAA",
		},
		{
			name: "not found",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("SELECT sync_state FROM sync_states").
					WillReturnRows(sqlmock.NewRows([]string{"sync_state"}))
			},
			wantErr: ErrSyncStateNotFound,
		},
		{
			name: "driver error",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("SELECT sync_state FROM sync_states").
					WillReturnError(errors.New("connection reset"))
			},
			wantErr: ErrScanningRow,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := newMockDB(t, DialectPostgres)
			tt.setup(mock)

			got, err := newSyncStateRepo(db).GetSyncState(testContext(), FolderHierarchySyncKey)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

// ── SaveSyncState ──

func TestSaveSyncState_Upserts(t *testing.T) {
	db, mock := newMockDB(t, DialectSQLite)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO sync_states (sync_key,sync_state,updated_at) VALUES (?,?,?) ON CONFLICT (sync_key) DO UPDATE SET")).
		WithArgs(MessageSyncKey("inbox-id"), "state-2", fixedNow).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	require.NoError(t, newSyncStateRepo(db).SaveSyncState(testContext(), MessageSyncKey("inbox-id"), "state-2"))
}

func TestSaveSyncState_ExecError(t *testing.T) {
	db, mock := newMockDB(t, DialectSQLite)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO sync_states").WillReturnError(errors.New("read-only database"))
	mock.ExpectRollback()

	err := newSyncStateRepo(db).SaveSyncState(testContext(), FolderHierarchySyncKey, "s")
	require.ErrorIs(t, err, ErrExecutingStatement)
}

// ── DeleteSyncStates ──

func TestDeleteSyncStates(t *testing.T) {
	db, mock := newMockDB(t, DialectPostgres)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM sync_states WHERE sync_key IN ($1,$2)")).
		WithArgs("messages:a", "messages:b").
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectCommit()

	require.NoError(t, newSyncStateRepo(db).DeleteSyncStates(testContext(), "messages:a", "messages:b"))
}

func TestDeleteSyncStates_NoKeys(t *testing.T) {
	db, _ := newMockDB(t, DialectPostgres)
	require.NoError(t, newSyncStateRepo(db).DeleteSyncStates(testContext()))
}
