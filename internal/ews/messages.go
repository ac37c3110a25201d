// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package ews

import (
	"context"
	"encoding/base64"
	"strconv"

	"github.com/MKhiriev/go-ews-sync/internal/soap"
	"github.com/MKhiriev/go-ews-sync/models"
)

// PR_MESSAGE_FLAGS and the bits CreateMessage sets on it.
const (
	propTagMessageFlags = "3591"
	propTypeInteger     = "Integer"

	messageFlagRead       = 0x1
	messageFlagUnmodified = 0x2
	messageFlagUnsent     = 0x8
)

// GetMessage returns the raw MIME content of a message.
func (c *Client) GetMessage(ctx context.Context, id string) ([]byte, error) {
	includeMime := true
	items, err := c.getItems(ctx, []string{id}, soap.ItemShape{
		BaseShape:          soap.BaseShapeIDOnly,
		IncludeMimeContent: &includeMime,
	})
	if err != nil {
		return nil, err
	}

	if len(items) == 0 {
		return nil, processingError("GetItem: no item returned for %s", id)
	}
	mime := items[0].MimeContent
	if mime == nil || mime.Content == "" {
		return nil, processingError("GetItem: item %s has no MIME content", id)
	}

	raw, err := base64.StdEncoding.DecodeString(mime.Content)
	if err != nil {
		return nil, processingError("GetItem: decoding MIME content of %s: %v", id, err)
	}
	return raw, nil
}

// CreateMessage stores a MIME message in folderID without sending it.
// Drafts are flagged unsent so clients let the user edit them; everything
// else is flagged unmodified as if it had been received.
func (c *Client) CreateMessage(ctx context.Context, folderID string, mime []byte, isDraft, isRead bool) (*models.CreateMessageResult, error) {
	const operation = "CreateItem"
	ctx, log := c.begin(ctx, operation)

	flags := messageFlagRead | messageFlagUnmodified
	if isDraft {
		flags = messageFlagRead | messageFlagUnsent
	}

	folder := soap.NewFolderIDList(folderID)
	resp, err := c.dispatch(ctx, soap.CreateItem{
		MessageDisposition: soap.DispositionSaveOnly,
		SavedItemFolderID:  &folder,
		Messages: []soap.Message{{
			MimeContent: base64.StdEncoding.EncodeToString(mime),
			ExtendedProperties: []soap.ExtendedProperty{{
				FieldURI: soap.ExtendedFieldURI{PropertyTag: propTagMessageFlags, PropertyType: propTypeInteger},
				Value:    strconv.Itoa(flags),
			}},
			IsRead: &isRead,
		}},
	}, defaultRequestOptions)
	if err != nil {
		return nil, err
	}

	msg, err := singleResponse(log, operation, resp)
	if err != nil {
		return nil, err
	}

	if len(msg.Items.Entries) != 1 {
		return nil, processingError("%s: expected exactly one created item, got %d", operation, len(msg.Items.Entries))
	}
	item := msg.Items.Entries[0]
	if item.ItemID == nil || item.ItemID.ID == "" {
		return nil, missingIDError("created item id")
	}

	return &models.CreateMessageResult{ItemID: item.ItemID.ID}, nil
}

// SendOptions carries the envelope details of SendMessage that are not part
// of the MIME content.
type SendOptions struct {
	InternetMessageID string
	RequestDSN        bool
	Bcc               []models.Mailbox
}

// SendMessage sends a MIME message without keeping a copy. TLS failures are
// only logged at debug level; the caller reports delivery problems itself.
func (c *Client) SendMessage(ctx context.Context, mime []byte, opts SendOptions) error {
	const operation = "CreateItem"
	ctx, log := c.begin(ctx, operation)

	bcc := make([]soap.MailboxEntry, 0, len(opts.Bcc))
	for _, m := range opts.Bcc {
		bcc = append(bcc, soap.MailboxEntry{Name: m.Name, EmailAddress: m.Address})
	}

	requestDSN := opts.RequestDSN
	resp, err := c.dispatch(ctx, soap.CreateItem{
		MessageDisposition: soap.DispositionSendOnly,
		Messages: []soap.Message{{
			MimeContent:                base64.StdEncoding.EncodeToString(mime),
			BccRecipients:              soap.NewRecipients(bcc),
			IsDeliveryReceiptRequested: &requestDSN,
			InternetMessageID:          opts.InternetMessageID,
		}},
	}, requestOptions{auth: AuthReAuth, transportSec: TransportSecSilent})
	if err != nil {
		return err
	}

	_, err = singleResponse(log, operation, resp)
	return err
}
