// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"fmt"
	"slices"
	"time"

	"github.com/MKhiriev/go-ews-sync/internal/logger"
	"github.com/MKhiriev/go-ews-sync/models"
)

type folderRepository struct {
	db     *DB
	logger *logger.Logger
	now    func() time.Time
}

func NewFolderRepository(db *DB, logger *logger.Logger) FolderRepository {
	logger.Debug().Msg("creating folder repository")
	return &folderRepository{db: db, logger: logger, now: time.Now}
}

func (r *folderRepository) SaveFolders(ctx context.Context, folders ...models.Folder) error {
	if len(folders) == 0 {
		return nil
	}

	now := r.now().UTC()
	return r.db.inTx(ctx, func(tx *sql.Tx) error {
		for batch := range slices.Chunk(folders, insertRowsPerStatement) {
			if err := execBuilt(ctx, tx, buildSaveFoldersQuery(r.db.builder(), batch, now)); err != nil {
				logger.FromContext(ctx).Err(err).Str("func", "*folderRepository.SaveFolders").Msg("error saving folders")
				return err
			}
		}
		return nil
	})
}

func (r *folderRepository) DeleteFolders(ctx context.Context, ids ...string) error {
	if len(ids) == 0 {
		return nil
	}

	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = MessageSyncKey(id)
	}

	b := r.db.builder()
	return r.db.inTx(ctx, func(tx *sql.Tx) error {
		if err := execBuilt(ctx, tx, buildDeleteFolderMessagesQuery(b, ids)); err != nil {
			return err
		}
		if err := execBuilt(ctx, tx, buildDeleteSyncStatesQuery(b, keys)); err != nil {
			return err
		}
		return execBuilt(ctx, tx, buildDeleteFoldersQuery(b, ids))
	})
}

func (r *folderRepository) ListFolders(ctx context.Context) ([]models.Folder, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListFoldersQuery(r.db.builder()).ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*folderRepository.ListFolders").Msg("error listing folders")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var folders []models.Folder
	for rows.Next() {
		var (
			f                          models.Folder
			total, unread, childFolder sql.NullInt64
			syncedAt                   sql.NullTime
		)
		if err = rows.Scan(&f.ID, &f.ParentID, &f.DisplayName, &f.FolderClass,
			&total, &unread, &childFolder, &f.WellKnownName, &syncedAt); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		f.TotalCount, f.UnreadCount, f.ChildFolderCount = intPtr(total), intPtr(unread), intPtr(childFolder)
		f.SyncedAt = timePtr(syncedAt)
		folders = append(folders, f)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return folders, nil
}

func (r *folderRepository) SetWellKnownNames(ctx context.Context, names map[string]string) error {
	if len(names) == 0 {
		return nil
	}

	ids := make([]string, 0, len(names))
	for id := range names {
		ids = append(ids, id)
	}
	slices.Sort(ids)

	return r.db.inTx(ctx, func(tx *sql.Tx) error {
		for _, id := range ids {
			if err := execBuilt(ctx, tx, buildSetWellKnownNameQuery(r.db.builder(), id, names[id])); err != nil {
				return err
			}
		}
		return nil
	})
}
