// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/go-ews-sync/internal/ews"
	"github.com/MKhiriev/go-ews-sync/internal/logger"
	"github.com/MKhiriev/go-ews-sync/internal/store"
	"github.com/MKhiriev/go-ews-sync/models"
)

// Services groups the application services handed to the CLI.
type Services struct {
	Sync     MailboxSyncService
	Versions VersionService
	SyncJob  SyncJob
	AppInfo  AppInfoService
}

func NewServices(
	mailbox Mailbox,
	registry *ews.VersionRegistry,
	storages *store.Storages,
	onlyFolders []string,
	buildInfo models.AppBuildInfo,
	logger *logger.Logger,
) (*Services, error) {
	appInfo, err := NewAppInfoService(buildInfo, logger)
	if err != nil {
		return nil, err
	}

	versions := NewVersionService(registry, storages.ServerVersions, logger)
	syncSvc := NewMailboxSyncService(mailbox, storages, versions, onlyFolders, logger)

	return &Services{
		Sync:     syncSvc,
		Versions: versions,
		SyncJob:  NewSyncJob(syncSvc, logger),
		AppInfo:  appInfo,
	}, nil
}
