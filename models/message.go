// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Mailbox is a named email address.
type Mailbox struct {
	Name    string `json:"name,omitempty"`
	Address string `json:"address"`
}

// MessageInfo is the summary of a message fetched after a sync.
type MessageInfo struct {
	ID                string     `json:"id"`
	FolderID          string     `json:"folder_id,omitempty"`
	InternetMessageID string     `json:"internet_message_id,omitempty"`
	Subject           string     `json:"subject,omitempty"`
	From              *Mailbox   `json:"from,omitempty"`
	DateTimeSent      *time.Time `json:"date_time_sent,omitempty"`
	HasAttachments    bool       `json:"has_attachments"`
	Size              int64      `json:"size"`
	IsRead            bool       `json:"is_read"`
}

// ReadFlagChange is the latest read state reported for a message.
type ReadFlagChange struct {
	ID     string `json:"id"`
	IsRead bool   `json:"is_read"`
}

// MessageSyncResult is the consolidated outcome of one folder item sync.
type MessageSyncResult struct {
	FolderID        string           `json:"folder_id"`
	SyncState       string           `json:"sync_state"`
	CaughtUp        bool             `json:"caught_up"`
	Created         []MessageInfo    `json:"created"`
	Updated         []MessageInfo    `json:"updated"`
	Deleted         []string         `json:"deleted"`
	ReadFlagChanges []ReadFlagChange `json:"read_flag_changes"`
}

// CreateMessageResult identifies a message saved by CreateMessage.
type CreateMessageResult struct {
	ItemID string `json:"item_id"`
}

// ItemUpdate describes the properties to overwrite on one item. Nil fields
// are left untouched.
type ItemUpdate struct {
	ID      string  `json:"id"`
	IsRead  *bool   `json:"is_read,omitempty"`
	Subject *string `json:"subject,omitempty"`
}
