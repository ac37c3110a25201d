// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/MKhiriev/go-ews-sync/internal/ews"
	"github.com/MKhiriev/go-ews-sync/internal/logger"
	"github.com/MKhiriev/go-ews-sync/internal/store"
	"github.com/MKhiriev/go-ews-sync/models"
)

// maxSyncRounds bounds the engine calls one SyncMessages makes when the
// engine stops paging early.
const maxSyncRounds = 1000

type mailboxSyncService struct {
	mailbox    Mailbox
	syncStates store.SyncStateRepository
	folders    store.FolderRepository
	messages   store.MessageRepository
	versions   VersionService

	// onlyFolders restricts SyncAll to these folder ids when not empty.
	onlyFolders []string

	logger *logger.Logger
}

func NewMailboxSyncService(
	mailbox Mailbox,
	storages *store.Storages,
	versions VersionService,
	onlyFolders []string,
	logger *logger.Logger,
) MailboxSyncService {
	return &mailboxSyncService{
		mailbox:     mailbox,
		syncStates:  storages.SyncStates,
		folders:     storages.Folders,
		messages:    storages.Messages,
		versions:    versions,
		onlyFolders: onlyFolders,
		logger:      logger,
	}
}

func (s *mailboxSyncService) SyncFolders(ctx context.Context) (*models.SyncSummary, error) {
	state, err := s.loadSyncState(ctx, store.FolderHierarchySyncKey)
	if err != nil {
		return nil, err
	}

	res, err := s.mailbox.SyncFolderHierarchy(ctx, state)
	if err != nil {
		return nil, fmt.Errorf("sync folder hierarchy: %w", err)
	}

	if err = s.folders.SaveFolders(ctx, slices.Concat(res.Created, res.Updated)...); err != nil {
		return nil, fmt.Errorf("save folders: %w", err)
	}
	if err = s.folders.DeleteFolders(ctx, res.Deleted...); err != nil {
		return nil, fmt.Errorf("delete folders: %w", err)
	}
	if res.WellKnownFolders != nil {
		if err = s.folders.SetWellKnownNames(ctx, res.WellKnownFolders); err != nil {
			return nil, fmt.Errorf("save well-known folder names: %w", err)
		}
	}

	if err = s.syncStates.SaveSyncState(ctx, store.FolderHierarchySyncKey, res.SyncState); err != nil {
		return nil, fmt.Errorf("save folder sync state: %w", err)
	}

	summary := &models.SyncSummary{
		Created:   len(res.Created),
		Updated:   len(res.Updated),
		Deleted:   len(res.Deleted),
		Rounds:    1,
		CaughtUp:  true,
		FirstSync: state == "",
	}
	s.logger.Info().
		Int("created", summary.Created).
		Int("updated", summary.Updated).
		Int("deleted", summary.Deleted).
		Bool("first_sync", summary.FirstSync).
		Str("func", "*mailboxSyncService.SyncFolders").
		Msg("folder hierarchy synced")

	return summary, nil
}

func (s *mailboxSyncService) SyncMessages(ctx context.Context, folderID string) (*models.SyncSummary, error) {
	key := store.MessageSyncKey(folderID)
	state, err := s.loadSyncState(ctx, key)
	if err != nil {
		return nil, err
	}

	summary := &models.SyncSummary{FolderID: folderID, FirstSync: state == ""}
	for !summary.CaughtUp {
		if summary.Rounds == maxSyncRounds {
			return summary, fmt.Errorf("sync messages of %s: %w after %d rounds", folderID, ErrSyncStalled, summary.Rounds)
		}

		res, err := s.mailbox.SyncMessages(ctx, folderID, state)
		if err != nil {
			return summary, fmt.Errorf("sync messages of %s: %w", folderID, err)
		}

		if err = s.applyMessageChanges(ctx, res); err != nil {
			return summary, err
		}
		if err = s.syncStates.SaveSyncState(ctx, key, res.SyncState); err != nil {
			return summary, fmt.Errorf("save message sync state: %w", err)
		}

		summary.Add(models.SyncSummary{
			Created:         len(res.Created),
			Updated:         len(res.Updated),
			Deleted:         len(res.Deleted),
			ReadFlagChanges: len(res.ReadFlagChanges),
			Rounds:          1,
		})
		summary.CaughtUp = res.CaughtUp

		if !res.CaughtUp && res.SyncState == state {
			return summary, fmt.Errorf("sync messages of %s: %w", folderID, ErrSyncStalled)
		}
		state = res.SyncState
	}

	s.logger.Info().
		Str("folder_id", folderID).
		Int("created", summary.Created).
		Int("updated", summary.Updated).
		Int("deleted", summary.Deleted).
		Int("read_flag_changes", summary.ReadFlagChanges).
		Int("rounds", summary.Rounds).
		Str("func", "*mailboxSyncService.SyncMessages").
		Msg("folder messages synced")

	return summary, nil
}

func (s *mailboxSyncService) applyMessageChanges(ctx context.Context, res *models.MessageSyncResult) error {
	if err := s.messages.SaveMessages(ctx, slices.Concat(res.Created, res.Updated)...); err != nil {
		return fmt.Errorf("save messages: %w", err)
	}
	if err := s.messages.DeleteMessages(ctx, res.Deleted...); err != nil {
		return fmt.Errorf("delete messages: %w", err)
	}
	if err := s.messages.SetReadFlags(ctx, res.ReadFlagChanges...); err != nil {
		return fmt.Errorf("apply read flags: %w", err)
	}
	return nil
}

func (s *mailboxSyncService) SyncAll(ctx context.Context) (*models.SyncReport, error) {
	report := &models.SyncReport{}
	defer s.persistVersions(ctx)

	folderSummary, err := s.SyncFolders(ctx)
	if err != nil {
		return report, err
	}
	report.Folders = *folderSummary

	folderIDs, err := s.selectFolders(ctx)
	if err != nil {
		return report, err
	}

	var errs []error
	for _, id := range folderIDs {
		summary, err := s.SyncMessages(ctx, id)
		if err == nil {
			report.Messages = append(report.Messages, *summary)
			continue
		}

		// no point in trying the other folders
		if errors.Is(err, ews.ErrAuthentication) || ctx.Err() != nil {
			return report, err
		}

		s.logger.Error().Err(err).Str("folder_id", id).Str("func", "*mailboxSyncService.SyncAll").Msg("folder sync failed")
		if report.Failed == nil {
			report.Failed = make(map[string]string)
		}
		report.Failed[id] = err.Error()
		errs = append(errs, err)
	}

	return report, errors.Join(errs...)
}

// selectFolders returns the stored folder ids SyncAll walks, restricted to
// onlyFolders when set.
func (s *mailboxSyncService) selectFolders(ctx context.Context) ([]string, error) {
	folders, err := s.folders.ListFolders(ctx)
	if err != nil {
		return nil, fmt.Errorf("list folders: %w", err)
	}

	ids := make([]string, 0, len(folders))
	for _, f := range folders {
		if len(s.onlyFolders) > 0 && !slices.Contains(s.onlyFolders, f.ID) && !slices.Contains(s.onlyFolders, f.WellKnownName) {
			continue
		}
		ids = append(ids, f.ID)
	}
	return ids, nil
}

func (s *mailboxSyncService) ResolveFolder(ctx context.Context, ref string) (string, error) {
	folders, err := s.folders.ListFolders(ctx)
	if err != nil {
		return "", fmt.Errorf("list folders: %w", err)
	}

	for _, match := range []func(models.Folder) bool{
		func(f models.Folder) bool { return f.ID == ref },
		func(f models.Folder) bool { return f.WellKnownName == ref },
		func(f models.Folder) bool { return strings.EqualFold(f.DisplayName, ref) },
	} {
		if i := slices.IndexFunc(folders, match); i >= 0 {
			return folders[i].ID, nil
		}
	}
	return "", fmt.Errorf("%w: %s", ErrFolderNotSynced, ref)
}

func (s *mailboxSyncService) loadSyncState(ctx context.Context, key string) (string, error) {
	state, err := s.syncStates.GetSyncState(ctx, key)
	if errors.Is(err, store.ErrSyncStateNotFound) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("load sync state %s: %w", key, err)
	}
	return state, nil
}

func (s *mailboxSyncService) persistVersions(ctx context.Context) {
	if s.versions == nil {
		return
	}
	if err := s.versions.Persist(ctx); err != nil {
		s.logger.Warn().Err(err).Str("func", "*mailboxSyncService.persistVersions").Msg("could not persist server versions")
	}
}
