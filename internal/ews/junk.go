// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package ews

import (
	"context"

	"github.com/MKhiriev/go-ews-sync/internal/soap"
)

// MarkAsJunk marks items as junk (or not junk) and moves them accordingly.
// It returns the ids of the moved items.
//
// Exchange 2013 and newer handle this with MarkAsJunk. Older servers have
// no such operation, so the items are moved into legacyFolderID instead;
// an empty legacyFolderID is an error there.
func (c *Client) MarkAsJunk(ctx context.Context, ids []string, isJunk bool, legacyFolderID string) ([]string, error) {
	const operation = "MarkAsJunk"

	if v := c.ServerVersion(); v < Exchange2013 {
		if legacyFolderID == "" {
			return nil, processingError("%s: server %s needs a destination folder to move items to", operation, v)
		}
		return c.MoveItems(ctx, legacyFolderID, ids)
	}

	if len(ids) == 0 {
		return []string{}, nil
	}
	ctx, log := c.begin(ctx, operation)

	resp, err := c.dispatch(ctx, soap.MarkAsJunk{
		IsJunk:   isJunk,
		MoveItem: true,
		ItemIDs:  soap.NewItemRefs(ids),
	}, defaultRequestOptions)
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
		if r.Message.MovedItemID == nil || r.Message.MovedItemID.ID == "" {
			log.Warn().Str("id", ids[r.Index]).Msg("server did not report the moved item id")
			continue
		}
		out = append(out, r.Message.MovedItemID.ID)
	}
	return out, nil
}
