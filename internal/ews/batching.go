// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package ews

import (
	"context"

	"github.com/MKhiriev/go-ews-sync/internal/logger"
	"github.com/MKhiriev/go-ews-sync/internal/soap"
)

// batchSize is the number of ids sent per GetFolder/GetItem request.
const batchSize = 10

func chunk[T any](items []T, size int) [][]T {
	if size <= 0 {
		size = batchSize
	}

	out := make([][]T, 0, (len(items)+size-1)/size)
	for start := 0; start < len(items); start += size {
		end := min(start+size, len(items))
		out = append(out, items[start:end])
	}
	return out
}

// fetchBatched splits ids into chunks, dispatches build(chunk) for each one
// in order and flattens what project extracts from every response. The first
// failing chunk aborts the whole call.
func fetchBatched[T any](
	ctx context.Context,
	c *Client,
	ids []string,
	build func(chunk []string) soap.Operation,
	project func(chunk []string, resp *soap.Response) ([]T, error),
) ([]T, error) {
	out := make([]T, 0, len(ids))
	for _, part := range chunk(ids, batchSize) {
		resp, err := c.dispatch(ctx, build(part), defaultRequestOptions)
		if err != nil {
			return nil, err
		}

		values, err := project(part, resp)
		if err != nil {
			return nil, err
		}
		out = append(out, values...)
	}
	return out, nil
}

// batchGetFolders fetches full folder details and keeps mail folders only.
func (c *Client) batchGetFolders(ctx context.Context, ids []string) ([]soap.Folder, error) {
	const operation = "GetFolder"
	ctx, log := c.begin(ctx, operation)

	return fetchBatched(ctx, c, ids,
		func(part []string) soap.Operation {
			return soap.GetFolder{
				FolderShape: soap.FolderShape{BaseShape: soap.BaseShapeAllProperties},
				FolderIDs:   soap.NewFolderIDList(part...),
			}
		},
		func(part []string, resp *soap.Response) ([]soap.Folder, error) {
			return projectFolders(log, operation, part, resp)
		},
	)
}

func projectFolders(log *logger.Logger, operation string, part []string, resp *soap.Response) ([]soap.Folder, error) {
	if err := validateCount(operation, resp, len(part)); err != nil {
		return nil, err
	}

	out := make([]soap.Folder, 0, len(part))
	for i, msg := range resp.Messages {
		if err := processUnit(log, operation, i, msg); err != nil {
			return nil, err
		}

		if len(msg.Folders.Entries) != 1 {
			return nil, processingError("%s: response %d: expected exactly one folder, got %d",
				operation, i, len(msg.Folders.Entries))
		}

		folder := msg.Folders.Entries[0]
		if folder.Kind() != "Folder" {
			return nil, processingError("%s: response %d: unexpected folder kind %q", operation, i, folder.Kind())
		}
		if folder.FolderID == nil || folder.FolderID.ID == "" {
			return nil, missingIDError("folder id in " + operation + " response")
		}

		switch {
		case folder.FolderClass == "":
			log.Warn().Str("folder_id", folder.FolderID.ID).Msg("folder has no folder class, skipping")
			continue
		case !soap.IsMailFolderClass(folder.FolderClass):
			log.Debug().
				Str("folder_id", folder.FolderID.ID).
				Str("folder_class", folder.FolderClass).
				Msg("skipping non-mail folder")
			continue
		}

		out = append(out, folder)
	}
	return out, nil
}

// getItems fetches items by id with the given shape. Any error unit, including
// ErrorItemNotFound, fails the call.
func (c *Client) getItems(ctx context.Context, ids []string, shape soap.ItemShape) ([]soap.Item, error) {
	const operation = "GetItem"
	ctx, log := c.begin(ctx, operation)

	return fetchBatched(ctx, c, ids,
		func(part []string) soap.Operation {
			return soap.GetItem{ItemShape: shape, ItemIDs: soap.NewItemRefs(part)}
		},
		func(part []string, resp *soap.Response) ([]soap.Item, error) {
			if err := validateCount(operation, resp, len(part)); err != nil {
				return nil, err
			}

			out := make([]soap.Item, 0, len(part))
			for i, msg := range resp.Messages {
				if err := processUnit(log, operation, i, msg); err != nil {
					return nil, err
				}

				if len(msg.Items.Entries) != 1 {
					log.Warn().
						Int("index", i).
						Int("items", len(msg.Items.Entries)).
						Msg("expected exactly one item in response")
				}
				for _, item := range msg.Items.Entries {
					if item.ItemID == nil || item.ItemID.ID == "" {
						return nil, missingIDError("item id in " + operation + " response")
					}
					out = append(out, item)
				}
			}
			return out, nil
		},
	)
}
