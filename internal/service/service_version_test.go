// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-ews-sync/internal/ews"
	"github.com/MKhiriev/go-ews-sync/internal/logger"
	"github.com/MKhiriev/go-ews-sync/internal/mock"
)

func newTestVersionSvc(t *testing.T) (VersionService, *ews.VersionRegistry, *mock.MockServerVersionRepository) {
	t.Helper()
	ctrl := gomock.NewController(t)
	repo := mock.NewMockServerVersionRepository(ctrl)
	registry := ews.NewVersionRegistry()
	return NewVersionService(registry, repo, logger.Nop()), registry, repo
}

// ── Restore ──

func TestVersionService_Restore(t *testing.T) {
	svc, registry, repo := newTestVersionSvc(t)
	ctx := context.Background()

	repo.EXPECT().GetServerVersions(ctx).Return(map[string]string{
		"https://a/EWS/Exchange.asmx": "Exchange2013",
		"https://b/EWS/Exchange.asmx": "Exchange2099",
	}, nil)

	require.NoError(t, svc.Restore(ctx))
	assert.Equal(t, ews.Exchange2013, registry.Read("https://a/EWS/Exchange.asmx"))
	// unknown names are skipped, the endpoint keeps the default
	assert.Equal(t, ews.DefaultVersion, registry.Read("https://b/EWS/Exchange.asmx"))
}

func TestVersionService_RestoreError(t *testing.T) {
	svc, _, repo := newTestVersionSvc(t)
	ctx := context.Background()
	boom := errors.New("boom")

	repo.EXPECT().GetServerVersions(ctx).Return(nil, boom)

	require.ErrorIs(t, svc.Restore(ctx), boom)
}

// ── Persist ──

func TestVersionService_Persist(t *testing.T) {
	svc, registry, repo := newTestVersionSvc(t)
	ctx := context.Background()

	registry.Record("https://a", ews.Exchange2010SP1)
	repo.EXPECT().SaveServerVersions(ctx, map[string]string{"https://a": "Exchange2010_SP1"}).Return(nil)

	require.NoError(t, svc.Persist(ctx))
}

func TestVersionService_PersistEmptyRegistry(t *testing.T) {
	svc, _, _ := newTestVersionSvc(t)
	require.NoError(t, svc.Persist(context.Background()))
}

func TestVersionService_PersistError(t *testing.T) {
	svc, registry, repo := newTestVersionSvc(t)
	ctx := context.Background()

	registry.Record("https://a", ews.Exchange2013SP1)
	repo.EXPECT().SaveServerVersions(ctx, gomock.Any()).Return(errors.New("read-only"))

	require.Error(t, svc.Persist(ctx))
}
