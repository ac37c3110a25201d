// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-ews-sync/internal/config"
	"github.com/MKhiriev/go-ews-sync/internal/logger"
)

// Storages groups the repositories of the local sync-state database so they
// can be passed to the service layer as one value.
type Storages struct {
	SyncStates     SyncStateRepository
	Folders        FolderRepository
	Messages       MessageRepository
	ServerVersions ServerVersionRepository

	db *DB
}

// NewStorages opens the database selected by cfg.DB.DSN, applies pending
// migrations and builds every repository over it.
//
// A DSN starting with postgres:// or postgresql:// selects PostgreSQL; any
// other value is treated as a SQLite file path.
func NewStorages(ctx context.Context, cfg config.ClientStorage, logger *logger.Logger) (*Storages, error) {
	logger.Info().Msg("creating new storages...")

	db, err := connect(ctx, cfg.DB, logger)
	if err != nil {
		return nil, err
	}

	if err = db.Migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return NewStoragesFromDB(db, logger), nil
}

// NewStoragesFromDB builds the repositories over an already migrated db.
func NewStoragesFromDB(db *DB, logger *logger.Logger) *Storages {
	return &Storages{
		SyncStates:     NewSyncStateRepository(db, logger),
		Folders:        NewFolderRepository(db, logger),
		Messages:       NewMessageRepository(db, logger),
		ServerVersions: NewServerVersionRepository(db, logger),
		db:             db,
	}
}

// Close releases the underlying connection pool.
func (s *Storages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

func connect(ctx context.Context, cfg config.ClientDB, logger *logger.Logger) (*DB, error) {
	switch DialectFromDSN(cfg.DSN) {
	case DialectPostgres:
		db, err := NewConnectPostgres(ctx, cfg, logger)
		if err != nil {
			return nil, fmt.Errorf("postgres connection error: %w", err)
		}
		return db, nil
	case DialectSQLite:
		db, err := NewConnectSQLite(ctx, cfg, logger)
		if err != nil {
			return nil, fmt.Errorf("sqlite connection error: %w", err)
		}
		return db, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnsupportedDSN, cfg.DSN)
}

// DialectFromDSN picks the backend for dsn. An empty dsn yields "".
func DialectFromDSN(dsn string) Dialect {
	switch {
	case dsn == "":
		return ""
	case strings.HasPrefix(dsn, "postgres://"), strings.HasPrefix(dsn, "postgresql://"):
		return DialectPostgres
	default:
		return DialectSQLite
	}
}
