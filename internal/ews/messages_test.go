// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package ews

import (
	"context"
	"encoding/base64"
	"testing"

	"github.com/MKhiriev/go-ews-sync/internal/ewstest"
	"github.com/MKhiriev/go-ews-sync/internal/soap"
	"github.com/MKhiriev/go-ews-sync/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const rawMime = "From: alice@example.com\r\nTo: bob@example.com\r\nSubject: hi\r\n\r\nhello\r\n"

// ── GetMessage ──

func TestGetMessage(t *testing.T) {
	c, srv, _ := newServerClient(t)
	srv.On("GetItem", ewstest.Reply(ewstest.Envelope("GetItem", "",
		ewstest.Success("GetItem", ewstest.Items(ewstest.MimeMessage("A", base64.StdEncoding.EncodeToString([]byte(rawMime))))),
	)))

	got, err := c.GetMessage(context.Background(), "A")
	require.NoError(t, err)
	assert.Equal(t, rawMime, string(got))

	body := string(lastRequest(t, srv).Body)
	assert.Contains(t, body, "<t:IncludeMimeContent>true</t:IncludeMimeContent>")
	assert.Equal(t, []string{"A"}, requestedItemIDs([]byte(body)))
}

func TestGetMessage_Failures(t *testing.T) {
	tests := []struct {
		name    string
		unit    string
		wantErr error
	}{
		{
			name:    "not found",
			unit:    ewstest.Error("GetItem", soap.ResponseCodeItemNotFound, "gone"),
			wantErr: ErrResponse,
		},
		{
			name:    "no mime content",
			unit:    ewstest.Success("GetItem", ewstest.Items(ewstest.ItemRef("A"))),
			wantErr: ErrProcessing,
		},
		{
			name:    "invalid base64",
			unit:    ewstest.Success("GetItem", ewstest.Items(ewstest.MimeMessage("A", "!!not base64!!"))),
			wantErr: ErrProcessing,
		},
		{
			name:    "no item",
			unit:    ewstest.Success("GetItem", ewstest.Items()),
			wantErr: ErrProcessing,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, srv, _ := newServerClient(t)
			srv.On("GetItem", ewstest.Reply(ewstest.Envelope("GetItem", "", tt.unit)))

			_, err := c.GetMessage(context.Background(), "A")
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

// ── CreateMessage ──

func TestCreateMessage_Flags(t *testing.T) {
	tests := []struct {
		name      string
		isDraft   bool
		wantFlags string
	}{
		{name: "draft", isDraft: true, wantFlags: "<t:Value>9</t:Value>"},
		{name: "received", isDraft: false, wantFlags: "<t:Value>3</t:Value>"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, srv, _ := newServerClient(t)
			srv.On("CreateItem", ewstest.Reply(ewstest.Envelope("CreateItem", "",
				ewstest.Success("CreateItem", ewstest.Items(ewstest.ItemRef("new-id"))),
			)))

			result, err := c.CreateMessage(context.Background(), "drafts", []byte(rawMime), tt.isDraft, true)
			require.NoError(t, err)
			assert.Equal(t, &models.CreateMessageResult{ItemID: "new-id"}, result)

			body := string(lastRequest(t, srv).Body)
			assert.Contains(t, body, `MessageDisposition="SaveOnly"`)
			assert.Contains(t, body, `<m:SavedItemFolderId><t:DistinguishedFolderId Id="drafts">`)
			assert.Contains(t, body, `<t:ExtendedFieldURI PropertyTag="3591" PropertyType="Integer"></t:ExtendedFieldURI>`+tt.wantFlags)
			assert.Contains(t, body, "<t:MimeContent>"+base64.StdEncoding.EncodeToString([]byte(rawMime))+"</t:MimeContent>")
			assert.Contains(t, body, "<t:IsRead>true</t:IsRead>")
		})
	}
}

func TestCreateMessage_Failures(t *testing.T) {
	tests := []struct {
		name    string
		unit    string
		wantErr error
	}{
		{name: "error unit", unit: ewstest.Error("CreateItem", "ErrorQuotaExceeded", "full"), wantErr: ErrResponse},
		{name: "no item", unit: ewstest.Success("CreateItem", ewstest.Items()), wantErr: ErrProcessing},
		{name: "item without id", unit: ewstest.Success("CreateItem", ewstest.Items("<t:Message></t:Message>")), wantErr: ErrMissingID},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, srv, _ := newServerClient(t)
			srv.On("CreateItem", ewstest.Reply(ewstest.Envelope("CreateItem", "", tt.unit)))

			_, err := c.CreateMessage(context.Background(), "inbox", []byte(rawMime), false, false)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

// ── SendMessage ──

func TestSendMessage(t *testing.T) {
	c, srv, _ := newServerClient(t)
	srv.On("CreateItem", ewstest.Reply(ewstest.Envelope("CreateItem", "", ewstest.Success("CreateItem"))))

	err := c.SendMessage(context.Background(), []byte(rawMime), SendOptions{
		InternetMessageID: "<abc@example.com>",
		RequestDSN:        true,
		Bcc:               []models.Mailbox{{Name: "Carol", Address: "carol@example.com"}},
	})
	require.NoError(t, err)

	body := string(lastRequest(t, srv).Body)
	assert.Contains(t, body, `MessageDisposition="SendOnly"`)
	assert.NotContains(t, body, "SavedItemFolderId")
	assert.Contains(t, body, "<t:BccRecipients><t:Mailbox><t:Name>Carol</t:Name><t:EmailAddress>carol@example.com</t:EmailAddress></t:Mailbox></t:BccRecipients>")
	assert.Contains(t, body, "<t:IsDeliveryReceiptRequested>true</t:IsDeliveryReceiptRequested>")
	assert.Contains(t, body, "<t:InternetMessageId>&lt;abc@example.com&gt;</t:InternetMessageId>")
	assert.NotContains(t, body, "ExtendedProperty")
}

func TestSendMessage_WithoutBccOmitsRecipients(t *testing.T) {
	c, srv, _ := newServerClient(t)
	srv.On("CreateItem", ewstest.Reply(ewstest.Envelope("CreateItem", "", ewstest.Success("CreateItem"))))

	err := c.SendMessage(context.Background(), []byte(rawMime), SendOptions{})
	require.NoError(t, err)

	body := string(lastRequest(t, srv).Body)
	assert.NotContains(t, body, "BccRecipients")
	assert.NotContains(t, body, "InternetMessageId")
}

func TestSendMessage_ErrorUnit(t *testing.T) {
	c, srv, _ := newServerClient(t)
	srv.On("CreateItem", ewstest.Reply(ewstest.Envelope("CreateItem", "",
		ewstest.Error("CreateItem", "ErrorInvalidRecipients", "bad recipients"))))

	err := c.SendMessage(context.Background(), []byte(rawMime), SendOptions{})
	require.ErrorIs(t, err, ErrResponse)
	assert.True(t, IsResponseCode(err, "ErrorInvalidRecipients"))
}

// ── Folders ──

func TestCreateFolder(t *testing.T) {
	c, srv, _ := newServerClient(t)
	srv.On("CreateFolder", ewstest.Reply(ewstest.Envelope("CreateFolder", "",
		ewstest.Success("CreateFolder", ewstest.Folders(ewstest.FolderRef("new-folder"))))))

	id, err := c.CreateFolder(context.Background(), "inbox", "Receipts")
	require.NoError(t, err)
	assert.Equal(t, "new-folder", id)

	body := string(lastRequest(t, srv).Body)
	assert.Contains(t, body, `<m:ParentFolderId><t:DistinguishedFolderId Id="inbox"></t:DistinguishedFolderId></m:ParentFolderId>`)
	assert.Contains(t, body, "<m:Folders><t:Folder><t:FolderClass>IPF.Note</t:FolderClass><t:DisplayName>Receipts</t:DisplayName></t:Folder></m:Folders>")
}

func TestCreateFolder_MissingID(t *testing.T) {
	c, srv, _ := newServerClient(t)
	srv.On("CreateFolder", ewstest.Reply(ewstest.Envelope("CreateFolder", "",
		ewstest.Success("CreateFolder", ewstest.Folders()))))

	_, err := c.CreateFolder(context.Background(), "inbox", "Receipts")
	assert.ErrorIs(t, err, ErrMissingID)
}

func TestUpdateFolder(t *testing.T) {
	c, srv, _ := newServerClient(t)
	srv.On("UpdateFolder", ewstest.Reply(ewstest.Envelope("UpdateFolder", "", ewstest.Success("UpdateFolder"))))

	require.NoError(t, c.UpdateFolder(context.Background(), "f1", "Renamed"))

	body := string(lastRequest(t, srv).Body)
	assert.Contains(t, body, `<t:FolderChange><t:FolderId Id="f1"></t:FolderId>`)
	assert.Contains(t, body, `<t:FieldURI FieldURI="folder:DisplayName"></t:FieldURI><t:Folder><t:DisplayName>Renamed</t:DisplayName></t:Folder>`)
}

func TestUpdateFolder_ErrorUnit(t *testing.T) {
	c, srv, _ := newServerClient(t)
	srv.On("UpdateFolder", ewstest.Reply(ewstest.Envelope("UpdateFolder", "",
		ewstest.Error("UpdateFolder", soap.ResponseCodeFolderNotFound, "gone"))))

	err := c.UpdateFolder(context.Background(), "f1", "Renamed")
	assert.ErrorIs(t, err, ErrResponse)
}

func TestDeleteFolders(t *testing.T) {
	c, srv, _ := newServerClient(t)
	srv.On("DeleteFolder", ewstest.Reply(ewstest.Envelope("DeleteFolder", "",
		ewstest.Success("DeleteFolder"),
		ewstest.Error("DeleteFolder", soap.ResponseCodeFolderNotFound, "gone"),
	)))

	require.NoError(t, c.DeleteFolders(context.Background(), []string{"f1", "f2"}))
	assert.Contains(t, string(lastRequest(t, srv).Body), `DeleteType="HardDelete"`)
}

func TestDeleteFolders_OtherErrorAborts(t *testing.T) {
	c, srv, _ := newServerClient(t)
	srv.On("DeleteFolder", ewstest.Reply(ewstest.Envelope("DeleteFolder", "",
		ewstest.Error("DeleteFolder", "ErrorDeleteDistinguishedFolder", "cannot delete"),
	)))

	err := c.DeleteFolders(context.Background(), []string{"inbox"})
	assert.ErrorIs(t, err, ErrResponse)
}
