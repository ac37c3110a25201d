// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	"github.com/MKhiriev/go-ews-sync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// SyncStateRepository persists the opaque sync tokens handed out by the
// server. Keys come from [FolderHierarchySyncKey] and [MessageSyncKey].
type SyncStateRepository interface {
	// GetSyncState returns [ErrSyncStateNotFound] when nothing was saved.
	GetSyncState(ctx context.Context, key string) (string, error)
	SaveSyncState(ctx context.Context, key, state string) error
	DeleteSyncStates(ctx context.Context, keys ...string) error
}

// FolderRepository keeps the local copy of the mail folder hierarchy.
type FolderRepository interface {
	// SaveFolders inserts or replaces folders by id. An empty WellKnownName
	// keeps the stored one.
	SaveFolders(ctx context.Context, folders ...models.Folder) error
	// DeleteFolders removes the folders together with their messages and
	// message sync states.
	DeleteFolders(ctx context.Context, ids ...string) error
	ListFolders(ctx context.Context) ([]models.Folder, error)
	SetWellKnownNames(ctx context.Context, names map[string]string) error
}

// MessageRepository keeps message summaries per folder.
type MessageRepository interface {
	SaveMessages(ctx context.Context, messages ...models.MessageInfo) error
	DeleteMessages(ctx context.Context, ids ...string) error
	SetReadFlags(ctx context.Context, changes ...models.ReadFlagChange) error
	ListMessages(ctx context.Context, folderID string) ([]models.MessageInfo, error)
}

// ServerVersionRepository persists the protocol version negotiated per
// endpoint, as wire names ("Exchange2010_SP1").
type ServerVersionRepository interface {
	GetServerVersions(ctx context.Context) (map[string]string, error)
	SaveServerVersions(ctx context.Context, versions map[string]string) error
}
