// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package soap

import (
	"encoding/xml"
	"strings"
)

// ResponseClass classifies a single response unit.
type ResponseClass string

const (
	ResponseClassSuccess ResponseClass = "Success"
	ResponseClassWarning ResponseClass = "Warning"
	ResponseClassError   ResponseClass = "Error"
)

// Response codes the engine reacts to.
const (
	ResponseCodeNoError          = "NoError"
	ResponseCodeServerBusy       = "ErrorServerBusy"
	ResponseCodeItemNotFound     = "ErrorItemNotFound"
	ResponseCodeFolderNotFound   = "ErrorFolderNotFound"
	ResponseCodeInvalidSyncState = "ErrorInvalidSyncStateData"
)

// ID is an item or folder identifier as it appears in responses.
type ID struct {
	ID        string `xml:"Id,attr"`
	ChangeKey string `xml:"ChangeKey,attr"`
}

// ResponseMessage is one response unit. It is a union of the payloads every
// supported operation can return; only the fields of the operation that
// produced it are populated.
type ResponseMessage struct {
	XMLName            xml.Name
	ResponseClass      ResponseClass `xml:"ResponseClass,attr"`
	MessageText        string        `xml:"MessageText"`
	ResponseCode       string        `xml:"ResponseCode"`
	DescriptiveLinkKey int           `xml:"DescriptiveLinkKey"`
	MessageXML         *MessageXML   `xml:"MessageXml"`

	Folders FolderList `xml:"Folders"`
	Items   ItemList   `xml:"Items"`

	SyncState                 string     `xml:"SyncState"`
	IncludesLastFolderInRange bool       `xml:"IncludesLastFolderInRange"`
	IncludesLastItemInRange   bool       `xml:"IncludesLastItemInRange"`
	Changes                   ChangeList `xml:"Changes"`

	MovedItemID *ID `xml:"MovedItemId"`
}

// FolderList holds the folders of a response unit. Every folder kind
// (Folder, CalendarFolder, SearchFolder, ...) is captured; the element name
// is kept in Folder.XMLName.
type FolderList struct {
	Entries []Folder `xml:",any"`
}

// ItemList holds the items of a response unit. Every item kind is captured.
type ItemList struct {
	Entries []Item `xml:",any"`
}

// ChangeList holds the ordered change events of a sync response.
type ChangeList struct {
	Entries []Change `xml:",any"`
}

// Folder is a folder as returned by GetFolder and folder sync.
type Folder struct {
	XMLName          xml.Name
	FolderID         *ID    `xml:"FolderId"`
	ParentFolderID   *ID    `xml:"ParentFolderId"`
	FolderClass      string `xml:"FolderClass"`
	DisplayName      string `xml:"DisplayName"`
	TotalCount       *int   `xml:"TotalCount"`
	ChildFolderCount *int   `xml:"ChildFolderCount"`
	UnreadCount      *int   `xml:"UnreadCount"`
}

// Kind returns the element name of the folder, e.g. "Folder" or "CalendarFolder".
func (f Folder) Kind() string {
	return f.XMLName.Local
}

// IsMailFolder reports whether f is a plain folder holding mail.
func (f Folder) IsMailFolder() bool {
	return f.Kind() == "Folder" && IsMailFolderClass(f.FolderClass)
}

// IsMailFolderClass reports whether class is IPF.Note or one of its subclasses.
func IsMailFolderClass(class string) bool {
	return class == FolderClassNote || strings.HasPrefix(class, FolderClassNote+".")
}

// FolderClassNote is the folder class of mail folders.
const FolderClassNote = "IPF.Note"

// Item is an item as returned by GetItem, CreateItem, copy/move and sync.
type Item struct {
	XMLName           xml.Name
	MimeContent       *MimeContent `xml:"MimeContent"`
	ItemID            *ID          `xml:"ItemId"`
	ParentFolderID    *ID          `xml:"ParentFolderId"`
	Subject           string       `xml:"Subject"`
	Size              *int64       `xml:"Size"`
	DateTimeSent      string       `xml:"DateTimeSent"`
	HasAttachments    *bool        `xml:"HasAttachments"`
	From              *Recipient   `xml:"From"`
	InternetMessageID string       `xml:"InternetMessageId"`
	IsRead            *bool        `xml:"IsRead"`
}

// Kind returns the element name of the item, e.g. "Message".
func (i Item) Kind() string {
	return i.XMLName.Local
}

// MimeContent is base64-encoded message content.
type MimeContent struct {
	CharacterSet string `xml:"CharacterSet,attr"`
	Content      string `xml:",chardata"`
}

// Recipient wraps a mailbox, as in From and BccRecipients.
type Recipient struct {
	Mailbox Mailbox `xml:"Mailbox"`
}

// Mailbox is a named email address.
type Mailbox struct {
	Name         string `xml:"Name"`
	EmailAddress string `xml:"EmailAddress"`
}

// Change is one event of a sync change feed. XMLName.Local is the change
// kind: Create, Update, Delete or ReadFlagChange.
type Change struct {
	XMLName  xml.Name
	FolderID *ID     `xml:"FolderId"`
	ItemID   *ID     `xml:"ItemId"`
	IsRead   *bool   `xml:"IsRead"`
	Folder   *Folder `xml:"Folder"`
	Item     *Item   `xml:",any"`
}

// Change kinds.
const (
	ChangeCreate         = "Create"
	ChangeUpdate         = "Update"
	ChangeDelete         = "Delete"
	ChangeReadFlagChange = "ReadFlagChange"
)

// Kind returns the change kind.
func (c Change) Kind() string {
	return c.XMLName.Local
}
