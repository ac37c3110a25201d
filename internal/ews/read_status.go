// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package ews

import (
	"context"

	"github.com/MKhiriev/go-ews-sync/internal/soap"
)

// MarkAllAsRead sets the read flag of every item in the folders and returns
// the folder ids that were processed. It needs Exchange 2013 or newer.
func (c *Client) MarkAllAsRead(ctx context.Context, folderIDs []string, isRead, suppressReadReceipts bool) ([]string, error) {
	const operation = "MarkAllItemsAsRead"
	if v := c.ServerVersion(); v < Exchange2013 {
		return nil, processingError("%s requires %s or newer, server is %s", operation, Exchange2013, v)
	}
	if len(folderIDs) == 0 {
		return []string{}, nil
	}
	ctx, log := c.begin(ctx, operation)

	resp, err := c.dispatch(ctx, soap.MarkAllItemsAsRead{
		ReadFlag:             isRead,
		SuppressReadReceipts: suppressReadReceipts,
		FolderIDs:            soap.NewFolderIDList(folderIDs...),
	}, defaultRequestOptions)
	if err != nil {
		return nil, err
	}

	results, err := unitResults(log, operation, resp, len(folderIDs))
	if err != nil {
		return nil, err
	}
	logPartialFailure(log, results)

	return succeededIDs(results, folderIDs), nil
}
