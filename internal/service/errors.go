// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

var (
	ErrVersionIsNotSpecified = errors.New("app version is not specified")

	// ErrFolderNotSynced is returned when messages are requested for a folder
	// that the local store does not know, i.e. folders were never synced or
	// the folder is not a mail folder.
	ErrFolderNotSynced = errors.New("folder is not synced")

	// ErrSyncStalled is returned when the server reports more changes but
	// keeps handing back the same sync state.
	ErrSyncStalled = errors.New("sync made no progress")
)
