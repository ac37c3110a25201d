// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package ews

import (
	"context"
	"slices"

	"github.com/MKhiriev/go-ews-sync/internal/logger"
	"github.com/MKhiriev/go-ews-sync/internal/soap"
)

// DeleteMessages hard-deletes items. An item that no longer exists counts
// as deleted; any other failure aborts the call.
func (c *Client) DeleteMessages(ctx context.Context, ids []string) error {
	const operation = "DeleteItem"
	if len(ids) == 0 {
		return nil
	}
	ctx, log := c.begin(ctx, operation)

	resp, err := c.dispatch(ctx, soap.DeleteItem{
		DeleteType: soap.DeleteTypeHardDelete,
		ItemIDs:    soap.NewItemRefs(ids),
	}, defaultRequestOptions)
	if err != nil {
		return err
	}

	results, err := unitResults(log, operation, resp, len(ids))
	if err != nil {
		return err
	}

	return requireDeleted(log, results, ids, soap.ResponseCodeItemNotFound)
}

// requireDeleted returns the first failure whose code is not one of
// notFoundCodes. Not-found units are logged and ignored.
func requireDeleted(log *logger.Logger, results []unitResult, ids []string, notFoundCodes ...string) error {
	for _, r := range results {
		if r.ok() {
			continue
		}
		notFound := slices.ContainsFunc(notFoundCodes, func(code string) bool {
			return IsResponseCode(r.Err, code)
		})
		if notFound {
			log.Warn().Str("id", ids[r.Index]).Msg("target already gone, treating delete as done")
			continue
		}
		return r.Err
	}
	return nil
}
