// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Folder is a mail folder as reported by the server after hydration.
type Folder struct {
	ID               string `json:"id"`
	ParentID         string `json:"parent_id"`
	DisplayName      string `json:"display_name"`
	FolderClass      string `json:"folder_class,omitempty"`
	TotalCount       *int   `json:"total_count,omitempty"`
	UnreadCount      *int   `json:"unread_count,omitempty"`
	ChildFolderCount *int   `json:"child_folder_count,omitempty"`

	// WellKnownName is the distinguished name (inbox, drafts, ...) when the
	// folder is one of the well-known folders. Filled by the caller-side store.
	WellKnownName string     `json:"well_known_name,omitempty"`
	SyncedAt      *time.Time `json:"synced_at,omitempty"`
}

// FolderSyncResult is the consolidated outcome of one folder hierarchy sync.
type FolderSyncResult struct {
	SyncState string   `json:"sync_state"`
	Created   []Folder `json:"created"`
	Updated   []Folder `json:"updated"`
	Deleted   []string `json:"deleted"`

	// WellKnownFolders maps folder id to distinguished name. It is only set
	// on a first sync (no sync state supplied).
	WellKnownFolders map[string]string `json:"well_known_folders,omitempty"`
}
