// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"testing"

	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-ews-sync/internal/logger"
	"github.com/MKhiriev/go-ews-sync/internal/mock"
	"github.com/MKhiriev/go-ews-sync/internal/store"
)

type syncMocks struct {
	mailbox    *mock.MockMailbox
	syncStates *mock.MockSyncStateRepository
	folders    *mock.MockFolderRepository
	messages   *mock.MockMessageRepository
	versions   *mock.MockVersionService
}

func newTestSyncSvc(t *testing.T, onlyFolders ...string) (*mailboxSyncService, syncMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)

	m := syncMocks{
		mailbox:    mock.NewMockMailbox(ctrl),
		syncStates: mock.NewMockSyncStateRepository(ctrl),
		folders:    mock.NewMockFolderRepository(ctrl),
		messages:   mock.NewMockMessageRepository(ctrl),
		versions:   mock.NewMockVersionService(ctrl),
	}

	storages := &store.Storages{
		SyncStates: m.syncStates,
		Folders:    m.folders,
		Messages:   m.messages,
	}

	svc := NewMailboxSyncService(m.mailbox, storages, m.versions, onlyFolders, logger.Nop()).(*mailboxSyncService)
	return svc, m
}
