// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package ews

import (
	"context"

	"github.com/MKhiriev/go-ews-sync/internal/soap"
	"github.com/MKhiriev/go-ews-sync/models"
)

// UpdateItems overwrites the given properties of every item and returns the
// ids of the items that were updated. Per-item failures are logged and
// leave the id out of the result.
func (c *Client) UpdateItems(ctx context.Context, updates []models.ItemUpdate) ([]string, error) {
	if len(updates) == 0 {
		return []string{}, nil
	}

	changes := make([]soap.ItemChange, 0, len(updates))
	ids := make([]string, 0, len(updates))
	for _, u := range updates {
		fields := itemFields(u)
		if len(fields) == 0 {
			return nil, processingError("UpdateItem: no properties to update for %s", u.ID)
		}
		changes = append(changes, soap.ItemChange{ItemID: soap.ItemRef{ID: u.ID}, Updates: fields})
		ids = append(ids, u.ID)
	}

	return c.updateItems(ctx, ids, changes)
}

// MarkAsRead sets the read flag of every item and returns the ids that were
// updated.
func (c *Client) MarkAsRead(ctx context.Context, ids []string, isRead bool) ([]string, error) {
	updates := make([]models.ItemUpdate, 0, len(ids))
	for _, id := range ids {
		updates = append(updates, models.ItemUpdate{ID: id, IsRead: &isRead})
	}
	return c.UpdateItems(ctx, updates)
}

func (c *Client) updateItems(ctx context.Context, ids []string, changes []soap.ItemChange) ([]string, error) {
	const operation = "UpdateItem"
	ctx, log := c.begin(ctx, operation)

	resp, err := c.dispatch(ctx, soap.UpdateItem{
		MessageDisposition: soap.DispositionSaveOnly,
		ConflictResolution: soap.ConflictAlwaysOverwrite,
		ItemChanges:        changes,
	}, defaultRequestOptions)
	if err != nil {
		return nil, err
	}

	results, err := unitResults(log, operation, resp, len(ids))
	if err != nil {
		return nil, err
	}
	logPartialFailure(log, results)

	return succeededIDs(results, ids), nil
}

func itemFields(u models.ItemUpdate) []soap.SetItemField {
	var fields []soap.SetItemField
	if u.IsRead != nil {
		isRead := *u.IsRead
		fields = append(fields, soap.SetItemField{
			FieldURI: soap.FieldURI{FieldURI: "message:IsRead"},
			Message:  soap.MessageField{IsRead: &isRead},
		})
	}
	if u.Subject != nil {
		fields = append(fields, soap.SetItemField{
			FieldURI: soap.FieldURI{FieldURI: "item:Subject"},
			Message:  soap.MessageField{Subject: *u.Subject},
		})
	}
	return fields
}

// succeededIDs returns ids[i] for every successful unit i.
func succeededIDs(results []unitResult, ids []string) []string {
	out := make([]string, 0, len(results))
	for _, r := range results {
		if r.ok() {
			out = append(out, ids[r.Index])
		}
	}
	return out
}
