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

type messageRepository struct {
	db     *DB
	logger *logger.Logger
	now    func() time.Time
}

func NewMessageRepository(db *DB, logger *logger.Logger) MessageRepository {
	logger.Debug().Msg("creating message repository")
	return &messageRepository{db: db, logger: logger, now: time.Now}
}

func (r *messageRepository) SaveMessages(ctx context.Context, messages ...models.MessageInfo) error {
	if len(messages) == 0 {
		return nil
	}

	now := r.now().UTC()
	return r.db.inTx(ctx, func(tx *sql.Tx) error {
		for batch := range slices.Chunk(messages, insertRowsPerStatement) {
			if err := execBuilt(ctx, tx, buildSaveMessagesQuery(r.db.builder(), batch, now)); err != nil {
				logger.FromContext(ctx).Err(err).Str("func", "*messageRepository.SaveMessages").Msg("error saving messages")
				return err
			}
		}
		return nil
	})
}

func (r *messageRepository) DeleteMessages(ctx context.Context, ids ...string) error {
	if len(ids) == 0 {
		return nil
	}
	return r.db.inTx(ctx, func(tx *sql.Tx) error {
		return execBuilt(ctx, tx, buildDeleteMessagesQuery(r.db.builder(), ids))
	})
}

// SetReadFlags updates stored messages only; changes for unknown ids are
// ignored.
func (r *messageRepository) SetReadFlags(ctx context.Context, changes ...models.ReadFlagChange) error {
	if len(changes) == 0 {
		return nil
	}
	return r.db.inTx(ctx, func(tx *sql.Tx) error {
		for _, change := range changes {
			if err := execBuilt(ctx, tx, buildSetReadFlagQuery(r.db.builder(), change)); err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *messageRepository) ListMessages(ctx context.Context, folderID string) ([]models.MessageInfo, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListMessagesQuery(r.db.builder(), folderID).ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*messageRepository.ListMessages").Msg("error listing messages")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var messages []models.MessageInfo
	for rows.Next() {
		var (
			m                     models.MessageInfo
			fromName, fromAddress string
			sent, syncedAt        sql.NullTime
		)
		if err = rows.Scan(&m.ID, &m.FolderID, &m.InternetMessageID, &m.Subject,
			&fromName, &fromAddress, &sent, &m.HasAttachments, &m.Size, &m.IsRead, &syncedAt); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		if fromAddress != "" || fromName != "" {
			m.From = &models.Mailbox{Name: fromName, Address: fromAddress}
		}
		m.DateTimeSent = timePtr(sent)
		messages = append(messages, m)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return messages, nil
}
