// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"database/sql"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-ews-sync/models"
)

const (
	syncStatesTable     = "sync_states"
	foldersTable        = "folders"
	messagesTable       = "messages"
	serverVersionsTable = "server_versions"
)

var (
	folderColumns = []string{
		"id", "parent_id", "display_name", "folder_class",
		"total_count", "unread_count", "child_folder_count",
		"well_known_name", "synced_at",
	}
	messageColumns = []string{
		"id", "folder_id", "internet_message_id", "subject",
		"from_name", "from_address", "date_time_sent",
		"has_attachments", "size", "is_read", "synced_at",
	}
)

const (
	upsertSyncStateSuffix = `ON CONFLICT (sync_key) DO UPDATE SET
		sync_state = excluded.sync_state,
		updated_at = excluded.updated_at`

	upsertFolderSuffix = `ON CONFLICT (id) DO UPDATE SET
		parent_id          = excluded.parent_id,
		display_name       = excluded.display_name,
		folder_class       = excluded.folder_class,
		total_count        = excluded.total_count,
		unread_count       = excluded.unread_count,
		child_folder_count = excluded.child_folder_count,
		well_known_name    = CASE WHEN excluded.well_known_name <> '' THEN excluded.well_known_name ELSE folders.well_known_name END,
		synced_at          = excluded.synced_at`

	upsertMessageSuffix = `ON CONFLICT (id) DO UPDATE SET
		folder_id           = excluded.folder_id,
		internet_message_id = excluded.internet_message_id,
		subject             = excluded.subject,
		from_name           = excluded.from_name,
		from_address        = excluded.from_address,
		date_time_sent      = excluded.date_time_sent,
		has_attachments     = excluded.has_attachments,
		size                = excluded.size,
		is_read             = excluded.is_read,
		synced_at           = excluded.synced_at`

	upsertServerVersionSuffix = `ON CONFLICT (endpoint) DO UPDATE SET
		version    = excluded.version,
		updated_at = excluded.updated_at`
)

// insertRowsPerStatement keeps multi-row inserts under SQLite's bound
// parameter limit.
const insertRowsPerStatement = 50

// FolderHierarchySyncKey is the sync-state key of the folder hierarchy.
const FolderHierarchySyncKey = "folders"

// MessageSyncKey is the sync-state key of the item sync of one folder.
func MessageSyncKey(folderID string) string {
	return "messages:" + folderID
}

func buildGetSyncStateQuery(b sq.StatementBuilderType, key string) sq.SelectBuilder {
	return b.Select("sync_state").
		From(syncStatesTable).
		Where(sq.Eq{"sync_key": key})
}

func buildSaveSyncStateQuery(b sq.StatementBuilderType, key, state string, now time.Time) sq.InsertBuilder {
	return b.Insert(syncStatesTable).
		Columns("sync_key", "sync_state", "updated_at").
		Values(key, state, now).
		Suffix(upsertSyncStateSuffix)
}

func buildDeleteSyncStatesQuery(b sq.StatementBuilderType, keys []string) sq.DeleteBuilder {
	return b.Delete(syncStatesTable).Where(sq.Eq{"sync_key": keys})
}

func buildSaveFoldersQuery(b sq.StatementBuilderType, folders []models.Folder, now time.Time) sq.InsertBuilder {
	q := b.Insert(foldersTable).Columns(folderColumns...)
	for _, f := range folders {
		q = q.Values(
			f.ID, f.ParentID, f.DisplayName, f.FolderClass,
			nullInt(f.TotalCount), nullInt(f.UnreadCount), nullInt(f.ChildFolderCount),
			f.WellKnownName, now,
		)
	}
	return q.Suffix(upsertFolderSuffix)
}

func buildListFoldersQuery(b sq.StatementBuilderType) sq.SelectBuilder {
	return b.Select(folderColumns...).From(foldersTable).OrderBy("display_name", "id")
}

func buildDeleteFoldersQuery(b sq.StatementBuilderType, ids []string) sq.DeleteBuilder {
	return b.Delete(foldersTable).Where(sq.Eq{"id": ids})
}

func buildDeleteFolderMessagesQuery(b sq.StatementBuilderType, folderIDs []string) sq.DeleteBuilder {
	return b.Delete(messagesTable).Where(sq.Eq{"folder_id": folderIDs})
}

func buildSetWellKnownNameQuery(b sq.StatementBuilderType, id, name string) sq.UpdateBuilder {
	return b.Update(foldersTable).Set("well_known_name", name).Where(sq.Eq{"id": id})
}

func buildSaveMessagesQuery(b sq.StatementBuilderType, messages []models.MessageInfo, now time.Time) sq.InsertBuilder {
	q := b.Insert(messagesTable).Columns(messageColumns...)
	for _, m := range messages {
		var fromName, fromAddress string
		if m.From != nil {
			fromName, fromAddress = m.From.Name, m.From.Address
		}
		q = q.Values(
			m.ID, m.FolderID, m.InternetMessageID, m.Subject,
			fromName, fromAddress, nullTime(m.DateTimeSent),
			m.HasAttachments, m.Size, m.IsRead, now,
		)
	}
	return q.Suffix(upsertMessageSuffix)
}

func buildListMessagesQuery(b sq.StatementBuilderType, folderID string) sq.SelectBuilder {
	return b.Select(messageColumns...).
		From(messagesTable).
		Where(sq.Eq{"folder_id": folderID}).
		OrderBy("date_time_sent DESC", "id")
}

func buildDeleteMessagesQuery(b sq.StatementBuilderType, ids []string) sq.DeleteBuilder {
	return b.Delete(messagesTable).Where(sq.Eq{"id": ids})
}

func buildSetReadFlagQuery(b sq.StatementBuilderType, change models.ReadFlagChange) sq.UpdateBuilder {
	return b.Update(messagesTable).Set("is_read", change.IsRead).Where(sq.Eq{"id": change.ID})
}

func buildGetServerVersionsQuery(b sq.StatementBuilderType) sq.SelectBuilder {
	return b.Select("endpoint", "version").From(serverVersionsTable).OrderBy("endpoint")
}

func buildSaveServerVersionQuery(b sq.StatementBuilderType, endpoint, version string, now time.Time) sq.InsertBuilder {
	return b.Insert(serverVersionsTable).
		Columns("endpoint", "version", "updated_at").
		Values(endpoint, version, now).
		Suffix(upsertServerVersionSuffix)
}

func nullInt(v *int) sql.NullInt64 {
	if v == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: int64(*v), Valid: true}
}

func intPtr(v sql.NullInt64) *int {
	if !v.Valid {
		return nil
	}
	n := int(v.Int64)
	return &n
}

func nullTime(t *time.Time) sql.NullTime {
	if t == nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: t.UTC(), Valid: true}
}

func timePtr(v sql.NullTime) *time.Time {
	if !v.Valid {
		return nil
	}
	t := v.Time.UTC()
	return &t
}
