// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package ews

import (
	"context"

	"github.com/MKhiriev/go-ews-sync/internal/soap"
)

// CreateFolder creates a mail folder under parentID and returns its id.
// parentID may be a distinguished name such as "inbox".
func (c *Client) CreateFolder(ctx context.Context, parentID, name string) (string, error) {
	const operation = "CreateFolder"
	ctx, log := c.begin(ctx, operation)

	resp, err := c.dispatch(ctx, soap.CreateFolder{
		ParentFolderID: soap.NewFolderIDList(parentID),
		Folders:        []soap.FolderEntry{{FolderClass: soap.FolderClassNote, DisplayName: name}},
	}, defaultRequestOptions)
	if err != nil {
		return "", err
	}

	msg, err := singleResponse(log, operation, resp)
	if err != nil {
		return "", err
	}

	if len(msg.Folders.Entries) == 0 {
		return "", missingIDError("created folder")
	}
	created := msg.Folders.Entries[0]
	if created.FolderID == nil || created.FolderID.ID == "" {
		return "", missingIDError("created folder id")
	}

	return created.FolderID.ID, nil
}

// UpdateFolder renames a folder.
func (c *Client) UpdateFolder(ctx context.Context, folderID, name string) error {
	const operation = "UpdateFolder"
	ctx, log := c.begin(ctx, operation)

	resp, err := c.dispatch(ctx, soap.UpdateFolder{
		FolderChanges: []soap.FolderChange{{
			Folder: soap.NewFolderRef(folderID),
			Updates: []soap.SetFolderField{{
				FieldURI: soap.FieldURI{FieldURI: "folder:DisplayName"},
				Folder:   soap.FolderEntry{DisplayName: name},
			}},
		}},
	}, defaultRequestOptions)
	if err != nil {
		return err
	}

	_, err = singleResponse(log, operation, resp)
	return err
}

// DeleteFolders hard-deletes folders. A folder that no longer exists counts
// as deleted; any other failure aborts the call.
func (c *Client) DeleteFolders(ctx context.Context, folderIDs []string) error {
	const operation = "DeleteFolder"
	if len(folderIDs) == 0 {
		return nil
	}
	ctx, log := c.begin(ctx, operation)

	resp, err := c.dispatch(ctx, soap.DeleteFolder{
		DeleteType: soap.DeleteTypeHardDelete,
		FolderIDs:  soap.NewFolderIDList(folderIDs...),
	}, defaultRequestOptions)
	if err != nil {
		return err
	}

	results, err := unitResults(log, operation, resp, len(folderIDs))
	if err != nil {
		return err
	}

	return requireDeleted(log, results, folderIDs,
		soap.ResponseCodeFolderNotFound, soap.ResponseCodeItemNotFound)
}
