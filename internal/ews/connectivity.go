// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package ews

import (
	"context"

	"github.com/MKhiriev/go-ews-sync/internal/soap"
)

// CheckConnectivity verifies that the endpoint is reachable and accepts the
// credentials by resolving the root folder. Authentication failures are only
// logged at debug level since a failed probe is an expected outcome.
func (c *Client) CheckConnectivity(ctx context.Context) error {
	const operation = "GetFolder"
	ctx, log := c.begin(ctx, operation)

	resp, err := c.dispatch(ctx, soap.GetFolder{
		FolderShape: soap.FolderShape{BaseShape: soap.BaseShapeIDOnly},
		FolderIDs:   soap.NewFolderIDList(soap.DistinguishedMsgFolderRoot),
	}, requestOptions{auth: AuthSilent, transportSec: TransportSecAlert})
	if err != nil {
		return err
	}

	msg, err := singleResponse(log, operation, resp)
	if err != nil {
		return err
	}

	if len(msg.Folders.Entries) != 1 {
		return processingError("%s: expected exactly one root folder, got %d", operation, len(msg.Folders.Entries))
	}
	if root := msg.Folders.Entries[0]; root.FolderID == nil || root.FolderID.ID == "" {
		return missingIDError("root folder id")
	}

	log.Debug().Stringer("version", c.ServerVersion()).Msg("connectivity check passed")
	return nil
}
