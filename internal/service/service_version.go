// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-ews-sync/internal/ews"
	"github.com/MKhiriev/go-ews-sync/internal/logger"
	"github.com/MKhiriev/go-ews-sync/internal/store"
)

type versionService struct {
	registry   *ews.VersionRegistry
	repository store.ServerVersionRepository
	logger     *logger.Logger
}

func NewVersionService(registry *ews.VersionRegistry, repository store.ServerVersionRepository, logger *logger.Logger) VersionService {
	return &versionService{registry: registry, repository: repository, logger: logger}
}

// Restore skips stored names this build does not know.
func (s *versionService) Restore(ctx context.Context) error {
	stored, err := s.repository.GetServerVersions(ctx)
	if err != nil {
		return fmt.Errorf("load server versions: %w", err)
	}

	snapshot := make(map[string]ews.Version, len(stored))
	for endpoint, name := range stored {
		v, ok := ews.ParseVersion(name)
		if !ok {
			s.logger.Warn().
				Str("endpoint", endpoint).
				Str("version", name).
				Str("func", "*versionService.Restore").
				Msg("ignoring unknown stored server version")
			continue
		}
		snapshot[endpoint] = v
	}

	s.registry.Restore(snapshot)
	s.logger.Debug().Int("endpoints", len(snapshot)).Str("func", "*versionService.Restore").Msg("server versions restored")
	return nil
}

func (s *versionService) Persist(ctx context.Context) error {
	snapshot := s.registry.Snapshot()
	if len(snapshot) == 0 {
		return nil
	}

	names := make(map[string]string, len(snapshot))
	for endpoint, v := range snapshot {
		names[endpoint] = v.String()
	}

	if err := s.repository.SaveServerVersions(ctx, names); err != nil {
		return fmt.Errorf("save server versions: %w", err)
	}
	return nil
}
