// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-ews-sync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// Mailbox is the part of the EWS engine driven by the sync services.
type Mailbox interface {
	SyncFolderHierarchy(ctx context.Context, syncState string) (*models.FolderSyncResult, error)
	SyncMessages(ctx context.Context, folderID, syncState string) (*models.MessageSyncResult, error)
}

// MailboxSyncService mirrors the server mailbox into the local store. Every
// method resumes from the sync state saved by the previous run and saves the
// new one only after the changes were stored.
type MailboxSyncService interface {
	// SyncFolders syncs the folder hierarchy. The first sync also records
	// the well-known folder names.
	SyncFolders(ctx context.Context) (*models.SyncSummary, error)

	// SyncMessages syncs the items of one mail folder until the server
	// reports no more changes.
	SyncMessages(ctx context.Context, folderID string) (*models.SyncSummary, error)

	// SyncAll syncs the hierarchy and then every selected mail folder. A
	// failing folder does not stop the others; its error is recorded in the
	// report and joined into the returned error.
	SyncAll(ctx context.Context) (*models.SyncReport, error)

	// ResolveFolder maps a folder id, well-known name or display name to the
	// id of a synced folder. Returns [ErrFolderNotSynced] when none matches.
	ResolveFolder(ctx context.Context, ref string) (string, error)
}

// VersionService carries negotiated server versions across runs.
type VersionService interface {
	// Restore loads persisted versions into the engine registry.
	Restore(ctx context.Context) error
	// Persist saves the registry contents.
	Persist(ctx context.Context) error
}

// SyncJob runs SyncAll on a ticker in the background.
type SyncJob interface {
	// Start launches the background goroutine. Any previously running job
	// is stopped first. A non-positive interval defaults to 5 minutes.
	Start(ctx context.Context, interval time.Duration)

	// Stop signals the goroutine to exit and waits until it has.
	Stop()

	// Observe registers fn to be called from the job goroutine after every
	// run, replacing any earlier observer. A nil fn removes it.
	Observe(fn SyncObserver)
}

// SyncObserver receives the outcome of one background SyncAll. report may be
// non-nil together with err when some folders failed.
type SyncObserver func(report *models.SyncReport, err error)

// AppInfoService exposes build metadata of the running binary.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
	GetAppInfo(ctx context.Context) models.AppBuildInfo
}
