// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package ews

import (
	"context"

	"github.com/MKhiriev/go-ews-sync/internal/soap"
)

// transferKind is one of the copy/move operations. Each kind knows how to
// build its request and where the new id sits in a response unit.
type transferKind int

const (
	copyItemKind transferKind = iota
	moveItemKind
	copyFolderKind
	moveFolderKind
)

func (k transferKind) String() string {
	switch k {
	case copyItemKind:
		return "CopyItem"
	case moveItemKind:
		return "MoveItem"
	case copyFolderKind:
		return "CopyFolder"
	case moveFolderKind:
		return "MoveFolder"
	default:
		return "unknown"
	}
}

// returnNewItemIDs is only understood by servers newer than Exchange 2010.
func returnNewItemIDs(v Version) *bool {
	if v <= Exchange2010 {
		return nil
	}
	yes := true
	return &yes
}

func (k transferKind) build(v Version, destination string, ids []string) soap.Operation {
	to := soap.NewFolderIDList(destination)
	switch k {
	case copyItemKind:
		return soap.CopyItem{ToFolderID: to, ItemIDs: soap.NewItemRefs(ids), ReturnNewItemIDs: returnNewItemIDs(v)}
	case moveItemKind:
		return soap.MoveItem{ToFolderID: to, ItemIDs: soap.NewItemRefs(ids), ReturnNewItemIDs: returnNewItemIDs(v)}
	case copyFolderKind:
		return soap.CopyFolder{ToFolderID: to, FolderIDs: soap.NewFolderIDList(ids...)}
	default:
		return soap.MoveFolder{ToFolderID: to, FolderIDs: soap.NewFolderIDList(ids...)}
	}
}

// newID extracts the id of the copied or moved entity from a response unit.
func (k transferKind) newID(msg soap.ResponseMessage) (string, bool) {
	switch k {
	case copyItemKind, moveItemKind:
		for _, item := range msg.Items.Entries {
			if item.ItemID != nil && item.ItemID.ID != "" {
				return item.ItemID.ID, true
			}
		}
	case copyFolderKind, moveFolderKind:
		for _, folder := range msg.Folders.Entries {
			if folder.FolderID != nil && folder.FolderID.ID != "" {
				return folder.FolderID.ID, true
			}
		}
	}
	return "", false
}

// transfer copies or moves ids into destination and returns the ids of the
// entities at their new location, in submission order. Failed ids are
// logged and left out. When the server does not report a new id the
// submitted id is returned instead.
func (c *Client) transfer(ctx context.Context, kind transferKind, destination string, ids []string) ([]string, error) {
	if len(ids) == 0 {
		return []string{}, nil
	}
	operation := kind.String()
	ctx, log := c.begin(ctx, operation)

	resp, err := c.dispatch(ctx, kind.build(c.ServerVersion(), destination, ids), defaultRequestOptions)
	if err != nil {
		return nil, err
	}

	results, err := unitResults(log, operation, resp, len(ids))
	if err != nil {
		return nil, err
	}
	logPartialFailure(log, results)

	out := make([]string, 0, len(ids))
	for _, r := range results {
		if !r.ok() {
			continue
		}
		id, ok := kind.newID(r.Message)
		if !ok {
			log.Debug().Str("id", ids[r.Index]).Msg("server did not report a new id")
			id = ids[r.Index]
		}
		out = append(out, id)
	}
	return out, nil
}

// CopyItems copies items into destination. See transfer for the result.
func (c *Client) CopyItems(ctx context.Context, destination string, ids []string) ([]string, error) {
	return c.transfer(ctx, copyItemKind, destination, ids)
}

func (c *Client) MoveItems(ctx context.Context, destination string, ids []string) ([]string, error) {
	return c.transfer(ctx, moveItemKind, destination, ids)
}

func (c *Client) CopyFolders(ctx context.Context, destination string, ids []string) ([]string, error) {
	return c.transfer(ctx, copyFolderKind, destination, ids)
}

func (c *Client) MoveFolders(ctx context.Context, destination string, ids []string) ([]string, error) {
	return c.transfer(ctx, moveFolderKind, destination, ids)
}
