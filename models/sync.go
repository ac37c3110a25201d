// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// SyncSummary counts what one sync pass applied to the local store.
type SyncSummary struct {
	// FolderID is empty for the folder hierarchy.
	FolderID        string `json:"folder_id,omitempty"`
	Created         int    `json:"created"`
	Updated         int    `json:"updated"`
	Deleted         int    `json:"deleted"`
	ReadFlagChanges int    `json:"read_flag_changes,omitempty"`
	// Rounds is the number of engine calls needed to catch up.
	Rounds    int  `json:"rounds"`
	CaughtUp  bool `json:"caught_up"`
	FirstSync bool `json:"first_sync"`
}

// Add accumulates the counters of other into s.
func (s *SyncSummary) Add(other SyncSummary) {
	s.Created += other.Created
	s.Updated += other.Updated
	s.Deleted += other.Deleted
	s.ReadFlagChanges += other.ReadFlagChanges
	s.Rounds += other.Rounds
}

// SyncReport is the outcome of a full mailbox sync.
type SyncReport struct {
	Folders  SyncSummary   `json:"folders"`
	Messages []SyncSummary `json:"messages"`
	// Failed maps a folder id to the error that stopped its message sync.
	Failed map[string]string `json:"failed,omitempty"`
}
