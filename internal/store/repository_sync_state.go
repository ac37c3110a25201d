// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-ews-sync/internal/logger"
)

// syncStateRepository is the SQL implementation of [SyncStateRepository]
// over the "sync_states" table.
type syncStateRepository struct {
	db     *DB
	logger *logger.Logger
	now    func() time.Time
}

func NewSyncStateRepository(db *DB, logger *logger.Logger) SyncStateRepository {
	logger.Debug().Msg("creating sync state repository")
	return &syncStateRepository{db: db, logger: logger, now: time.Now}
}

func (r *syncStateRepository) GetSyncState(ctx context.Context, key string) (string, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildGetSyncStateQuery(r.db.builder(), key).ToSql()
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var state string
	if err = r.db.QueryRowContext(ctx, query, args...).Scan(&state); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", ErrSyncStateNotFound
		}
		log.Err(err).Str("func", "*syncStateRepository.GetSyncState").Str("key", key).Msg("error reading sync state")
		return "", fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return state, nil
}

func (r *syncStateRepository) SaveSyncState(ctx context.Context, key, state string) error {
	return r.db.inTx(ctx, func(tx *sql.Tx) error {
		return execBuilt(ctx, tx, buildSaveSyncStateQuery(r.db.builder(), key, state, r.now().UTC()))
	})
}

func (r *syncStateRepository) DeleteSyncStates(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	return r.db.inTx(ctx, func(tx *sql.Tx) error {
		return execBuilt(ctx, tx, buildDeleteSyncStatesQuery(r.db.builder(), keys))
	})
}
