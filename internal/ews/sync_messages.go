// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package ews

import (
	"context"
	"time"

	"github.com/MKhiriev/go-ews-sync/internal/soap"
	"github.com/MKhiriev/go-ews-sync/models"
)

// maxChangesReturned is the page size of SyncFolderItems.
const maxChangesReturned = 100

// messageSummaryFields are fetched to hydrate created and updated messages.
var messageSummaryFields = []string{
	"message:IsRead",
	"message:InternetMessageId",
	"item:DateTimeSent",
	"message:From",
	"item:Subject",
	"item:HasAttachments",
	"item:Size",
}

// SyncMessages returns the item changes of folderID since syncState. An
// empty syncState starts from the beginning of history.
//
// Paging continues until the server reports the last page, or until the
// limit set with WithMaxSyncPages is reached; CaughtUp tells the two apart.
// Any error unit during hydration, ErrorItemNotFound included, fails the
// call and the sync state is not advanced.
func (c *Client) SyncMessages(ctx context.Context, folderID, syncState string) (*models.MessageSyncResult, error) {
	const operation = "SyncFolderItems"
	ctx, log := c.begin(ctx, operation)

	changes := newChangeLog()
	state := syncState
	caughtUp := false
	for page := 1; ; page++ {
		resp, err := c.dispatch(ctx, soap.SyncFolderItems{
			ItemShape:          soap.ItemShape{BaseShape: soap.BaseShapeIDOnly},
			SyncFolderID:       soap.NewFolderIDList(folderID),
			SyncState:          state,
			MaxChangesReturned: maxChangesReturned,
		}, defaultRequestOptions)
		if err != nil {
			return nil, err
		}

		msg, err := singleResponse(log, operation, resp)
		if err != nil {
			return nil, err
		}

		for _, ch := range msg.Changes.Entries {
			if err = applyItemChange(changes, ch); err != nil {
				return nil, err
			}
		}

		state = msg.SyncState
		caughtUp = msg.IncludesLastItemInRange
		log.Debug().Int("page", page).Int("changes", len(msg.Changes.Entries)).Msg("item sync page consolidated")
		if caughtUp || (c.maxSyncPages > 0 && page >= c.maxSyncPages) {
			break
		}
	}

	created, updated, deleted := changes.partition()
	details, err := c.fetchMessageSummaries(ctx, folderID, append(append([]string{}, created...), updated...))
	if err != nil {
		return nil, err
	}

	result := &models.MessageSyncResult{
		FolderID:        folderID,
		SyncState:       state,
		CaughtUp:        caughtUp,
		Created:         pickMessages(details, created),
		Updated:         pickMessages(details, updated),
		Deleted:         deleted,
		ReadFlagChanges: changes.readFlags(),
	}

	log.Info().
		Str("folder_id", folderID).
		Int("created", len(result.Created)).
		Int("updated", len(result.Updated)).
		Int("deleted", len(result.Deleted)).
		Int("read_flag_changes", len(result.ReadFlagChanges)).
		Bool("caught_up", caughtUp).
		Msg("folder items synced")

	return result, nil
}

func applyItemChange(changes *changeLog, ch soap.Change) error {
	switch ch.Kind() {
	case soap.ChangeCreate, soap.ChangeUpdate:
		if ch.Item == nil || ch.Item.ItemID == nil || ch.Item.ItemID.ID == "" {
			return missingIDError("item id in item change")
		}
		if ch.Kind() == soap.ChangeCreate {
			changes.create(ch.Item.ItemID.ID)
		} else {
			changes.update(ch.Item.ItemID.ID)
		}
	case soap.ChangeDelete:
		if ch.ItemID == nil || ch.ItemID.ID == "" {
			return missingIDError("item id in item delete")
		}
		changes.remove(ch.ItemID.ID)
	case soap.ChangeReadFlagChange:
		if ch.ItemID == nil || ch.ItemID.ID == "" {
			return missingIDError("item id in read flag change")
		}
		if ch.IsRead == nil {
			return processingError("read flag change for %s carries no IsRead value", ch.ItemID.ID)
		}
		changes.setReadFlag(ch.ItemID.ID, *ch.IsRead)
	}
	return nil
}

func pickMessages(details map[string]models.MessageInfo, ids []string) []models.MessageInfo {
	out := make([]models.MessageInfo, 0, len(ids))
	for _, id := range ids {
		if info, ok := details[id]; ok {
			out = append(out, info)
		}
	}
	return out
}

func (c *Client) fetchMessageSummaries(ctx context.Context, folderID string, ids []string) (map[string]models.MessageInfo, error) {
	out := make(map[string]models.MessageInfo, len(ids))
	if len(ids) == 0 {
		return out, nil
	}

	items, err := c.getItems(ctx, ids, soap.ItemShape{
		BaseShape:            soap.BaseShapeIDOnly,
		AdditionalProperties: &soap.AdditionalProperties{FieldURIs: soap.NewFieldURIs(messageSummaryFields...)},
	})
	if err != nil {
		return nil, err
	}

	for _, item := range items {
		info := messageInfo(item)
		if info.FolderID == "" {
			info.FolderID = folderID
		}
		out[info.ID] = info
	}
	return out, nil
}

func messageInfo(item soap.Item) models.MessageInfo {
	info := models.MessageInfo{
		ID:                item.ItemID.ID,
		InternetMessageID: item.InternetMessageID,
		Subject:           item.Subject,
	}
	if item.ParentFolderID != nil {
		info.FolderID = item.ParentFolderID.ID
	}
	if item.From != nil {
		info.From = &models.Mailbox{Name: item.From.Mailbox.Name, Address: item.From.Mailbox.EmailAddress}
	}
	if item.DateTimeSent != "" {
		if sent, err := time.Parse(time.RFC3339, item.DateTimeSent); err == nil {
			info.DateTimeSent = &sent
		}
	}
	if item.HasAttachments != nil {
		info.HasAttachments = *item.HasAttachments
	}
	if item.Size != nil {
		info.Size = *item.Size
	}
	if item.IsRead != nil {
		info.IsRead = *item.IsRead
	}
	return info
}
