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
)

type serverVersionRepository struct {
	db     *DB
	logger *logger.Logger
	now    func() time.Time
}

func NewServerVersionRepository(db *DB, logger *logger.Logger) ServerVersionRepository {
	logger.Debug().Msg("creating server version repository")
	return &serverVersionRepository{db: db, logger: logger, now: time.Now}
}

func (r *serverVersionRepository) GetServerVersions(ctx context.Context) (map[string]string, error) {
	query, args, err := buildGetServerVersionsQuery(r.db.builder()).ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*serverVersionRepository.GetServerVersions").Msg("error reading server versions")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	versions := make(map[string]string)
	for rows.Next() {
		var endpoint, version string
		if err = rows.Scan(&endpoint, &version); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		versions[endpoint] = version
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return versions, nil
}

func (r *serverVersionRepository) SaveServerVersions(ctx context.Context, versions map[string]string) error {
	if len(versions) == 0 {
		return nil
	}

	endpoints := make([]string, 0, len(versions))
	for endpoint := range versions {
		endpoints = append(endpoints, endpoint)
	}
	slices.Sort(endpoints)

	now := r.now().UTC()
	return r.db.inTx(ctx, func(tx *sql.Tx) error {
		for _, endpoint := range endpoints {
			q := buildSaveServerVersionQuery(r.db.builder(), endpoint, versions[endpoint], now)
			if err := execBuilt(ctx, tx, q); err != nil {
				return err
			}
		}
		return nil
	})
}
