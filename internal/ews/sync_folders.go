// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package ews

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-ews-sync/internal/soap"
	"github.com/MKhiriev/go-ews-sync/models"
)

// wellKnownFolders are resolved on a first sync. The root must come first.
var wellKnownFolders = []string{
	soap.DistinguishedMsgFolderRoot,
	soap.DistinguishedInbox,
	soap.DistinguishedDeletedItems,
	soap.DistinguishedDrafts,
	soap.DistinguishedOutbox,
	soap.DistinguishedSentItems,
	soap.DistinguishedJunkEmail,
	soap.DistinguishedArchive,
}

// SyncFolderHierarchy returns the folder changes since syncState. An empty
// syncState starts from the beginning of history and additionally resolves
// the well-known folders of the mailbox.
//
// Created and updated folders are hydrated; folders that are not mail
// folders are dropped. Nothing is returned on failure.
func (c *Client) SyncFolderHierarchy(ctx context.Context, syncState string) (*models.FolderSyncResult, error) {
	const operation = "SyncFolderHierarchy"
	ctx, log := c.begin(ctx, operation)

	result := &models.FolderSyncResult{}
	if syncState == "" {
		wellKnown, err := c.wellKnownFolderMap(ctx)
		if err != nil {
			return nil, err
		}
		result.WellKnownFolders = wellKnown
	}

	changes := newChangeLog()
	state := syncState
	for page := 1; ; page++ {
		resp, err := c.dispatch(ctx, soap.SyncFolderHierarchy{
			FolderShape:  soap.FolderShape{BaseShape: soap.BaseShapeIDOnly},
			SyncFolderID: &soap.FolderIDList{Refs: []soap.FolderRef{soap.NewFolderRef(soap.DistinguishedMsgFolderRoot)}},
			SyncState:    state,
		}, defaultRequestOptions)
		if err != nil {
			return nil, err
		}

		msg, err := singleResponse(log, operation, resp)
		if err != nil {
			return nil, err
		}

		for _, ch := range msg.Changes.Entries {
			if err = applyFolderChange(changes, ch); err != nil {
				return nil, err
			}
		}

		state = msg.SyncState
		log.Debug().Int("page", page).Int("changes", len(msg.Changes.Entries)).Msg("folder sync page consolidated")
		if msg.IncludesLastFolderInRange {
			break
		}
	}
	result.SyncState = state

	created, updated, deleted := changes.partition()
	details, err := c.fetchFolderDetails(ctx, append(append([]string{}, created...), updated...))
	if err != nil {
		return nil, err
	}

	result.Created = pickFolders(details, created, result.WellKnownFolders)
	result.Updated = pickFolders(details, updated, result.WellKnownFolders)
	result.Deleted = deleted

	log.Info().
		Int("created", len(result.Created)).
		Int("updated", len(result.Updated)).
		Int("deleted", len(result.Deleted)).
		Msg("folder hierarchy synced")

	return result, nil
}

// applyFolderChange records one change event. Only plain folders are
// tracked: calendar, contact and search folders never hold mail.
func applyFolderChange(changes *changeLog, ch soap.Change) error {
	switch ch.Kind() {
	case soap.ChangeCreate, soap.ChangeUpdate:
		if ch.Folder == nil {
			return nil
		}
		if ch.Folder.FolderID == nil || ch.Folder.FolderID.ID == "" {
			return missingIDError("folder id in folder change")
		}
		if ch.Kind() == soap.ChangeCreate {
			changes.create(ch.Folder.FolderID.ID)
		} else {
			changes.update(ch.Folder.FolderID.ID)
		}
	case soap.ChangeDelete:
		if ch.FolderID == nil || ch.FolderID.ID == "" {
			return missingIDError("folder id in folder delete")
		}
		changes.remove(ch.FolderID.ID)
	}
	return nil
}

func pickFolders(details map[string]models.Folder, ids []string, wellKnown map[string]string) []models.Folder {
	out := make([]models.Folder, 0, len(ids))
	for _, id := range ids {
		folder, ok := details[id]
		if !ok {
			continue
		}
		folder.WellKnownName = wellKnown[id]
		out = append(out, folder)
	}
	return out
}

// fetchFolderDetails hydrates folder ids. Non-mail folders are absent from
// the returned map.
func (c *Client) fetchFolderDetails(ctx context.Context, ids []string) (map[string]models.Folder, error) {
	out := make(map[string]models.Folder, len(ids))
	if len(ids) == 0 {
		return out, nil
	}

	folders, err := c.batchGetFolders(ctx, ids)
	if err != nil {
		return nil, err
	}

	for _, f := range folders {
		if f.ParentFolderID == nil || f.ParentFolderID.ID == "" {
			return nil, missingIDError("parent folder id of folder " + f.FolderID.ID)
		}
		if f.DisplayName == "" {
			return nil, processingError("folder %s has no display name", f.FolderID.ID)
		}

		out[f.FolderID.ID] = models.Folder{
			ID:               f.FolderID.ID,
			ParentID:         f.ParentFolderID.ID,
			DisplayName:      f.DisplayName,
			FolderClass:      f.FolderClass,
			TotalCount:       f.TotalCount,
			UnreadCount:      f.UnreadCount,
			ChildFolderCount: f.ChildFolderCount,
		}
	}
	return out, nil
}

// wellKnownFolderMap resolves the well-known folders in one request and
// returns folder id -> distinguished name. A missing optional folder is
// skipped; the root folder must resolve.
func (c *Client) wellKnownFolderMap(ctx context.Context) (map[string]string, error) {
	const operation = "GetFolder"
	ctx, log := c.begin(ctx, operation)

	resp, err := c.dispatch(ctx, soap.GetFolder{
		FolderShape: soap.FolderShape{BaseShape: soap.BaseShapeIDOnly},
		FolderIDs:   soap.NewFolderIDList(wellKnownFolders...),
	}, defaultRequestOptions)
	if err != nil {
		return nil, err
	}

	if err = validateCount(operation, resp, len(wellKnownFolders)); err != nil {
		return nil, err
	}

	out := make(map[string]string, len(wellKnownFolders))
	for i, msg := range resp.Messages {
		name := wellKnownFolders[i]
		if err = processUnit(log, operation, i, msg); err != nil {
			if i == 0 {
				return nil, fmt.Errorf("resolve root folder: %w", err)
			}
			if IsResponseCode(err, soap.ResponseCodeFolderNotFound) {
				log.Debug().Str("folder", name).Msg("well-known folder does not exist in this mailbox")
				continue
			}
			return nil, err
		}

		if len(msg.Folders.Entries) == 0 {
			return nil, missingIDError("folder in " + name + " lookup")
		}
		folder := msg.Folders.Entries[0]
		if folder.FolderID == nil || folder.FolderID.ID == "" {
			return nil, missingIDError("folder id of " + name)
		}
		out[folder.FolderID.ID] = name
	}
	return out, nil
}
