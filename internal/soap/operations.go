// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package soap

import "encoding/xml"

// BaseShape selects the property set the server returns for folders and items.
type BaseShape string

const (
	BaseShapeIDOnly        BaseShape = "IdOnly"
	BaseShapeDefault       BaseShape = "Default"
	BaseShapeAllProperties BaseShape = "AllProperties"
)

// Dispositions, conflict resolutions and delete types used by mutations.
const (
	DispositionSaveOnly        = "SaveOnly"
	DispositionSendOnly        = "SendOnly"
	DispositionSendAndSaveCopy = "SendAndSaveCopy"

	ConflictAlwaysOverwrite = "AlwaysOverwrite"
	ConflictAutoResolve     = "AutoResolve"

	DeleteTypeHardDelete         = "HardDelete"
	DeleteTypeSoftDelete         = "SoftDelete"
	DeleteTypeMoveToDeletedItems = "MoveToDeletedItems"
)

// Distinguished folder names used by the engine.
const (
	DistinguishedMsgFolderRoot = "msgfolderroot"
	DistinguishedInbox         = "inbox"
	DistinguishedDeletedItems  = "deleteditems"
	DistinguishedDrafts        = "drafts"
	DistinguishedOutbox        = "outbox"
	DistinguishedSentItems     = "sentitems"
	DistinguishedJunkEmail     = "junkemail"
	DistinguishedArchive       = "archive"
)

var distinguishedFolderIDs = newNameSet(
	"calendar", "contacts", "deleteditems", "drafts", "inbox",
	"journal", "notes", "outbox", "sentitems", "tasks",
	"msgfolderroot", "root", "junkemail", "searchfolders", "voicemail",
	"recoverableitemsroot", "recoverableitemsdeletions",
	"recoverableitemsversions", "recoverableitemspurges",
	"archive", "archiveroot", "archivemsgfolderroot", "archivedeleteditems",
	"archiveinbox", "archiverecoverableitemsroot",
	"archiverecoverableitemsdeletions", "archiverecoverableitemsversions",
	"archiverecoverableitemspurges",
	"syncissues", "conflicts", "localfailures", "serverfailures",
	"recipientcache", "quickcontacts", "conversationhistory",
	"adminauditlogs", "todosearch", "mycontacts", "directory",
	"imcontactlist", "peopleconnect", "favorites",
)

func newNameSet(names ...string) map[string]struct{} {
	set := make(map[string]struct{}, len(names))
	for _, n := range names {
		set[n] = struct{}{}
	}
	return set
}

// IsDistinguishedFolderID reports whether id names a well-known folder
// rather than a server-issued folder id.
func IsDistinguishedFolderID(id string) bool {
	_, ok := distinguishedFolderIDs[id]
	return ok
}

// FolderRef addresses a folder either by server id or by distinguished name.
// The element name is chosen by NewFolderRef and carried in XMLName.
type FolderRef struct {
	XMLName   xml.Name
	ID        string `xml:"Id,attr"`
	ChangeKey string `xml:"ChangeKey,attr,omitempty"`
}

// NewFolderRef returns a t:DistinguishedFolderId reference for well-known
// names and a t:FolderId reference otherwise.
func NewFolderRef(id string) FolderRef {
	name := "t:FolderId"
	if IsDistinguishedFolderID(id) {
		name = "t:DistinguishedFolderId"
	}
	return FolderRef{XMLName: xml.Name{Local: name}, ID: id}
}

// FolderIDList is a list of folder references under a wrapper element
// such as m:FolderIds or m:ToFolderId.
type FolderIDList struct {
	Refs []FolderRef
}

// NewFolderIDList builds a FolderIDList from ids.
func NewFolderIDList(ids ...string) FolderIDList {
	refs := make([]FolderRef, 0, len(ids))
	for _, id := range ids {
		refs = append(refs, NewFolderRef(id))
	}
	return FolderIDList{Refs: refs}
}

// ItemRef is a t:ItemId reference.
type ItemRef struct {
	ID        string `xml:"Id,attr"`
	ChangeKey string `xml:"ChangeKey,attr,omitempty"`
}

// NewItemRefs builds item references from ids.
func NewItemRefs(ids []string) []ItemRef {
	refs := make([]ItemRef, 0, len(ids))
	for _, id := range ids {
		refs = append(refs, ItemRef{ID: id})
	}
	return refs
}

// FieldURI names a property path, e.g. "message:IsRead".
type FieldURI struct {
	FieldURI string `xml:"FieldURI,attr"`
}

// NewFieldURIs builds FieldURI values from property paths.
func NewFieldURIs(paths ...string) []FieldURI {
	out := make([]FieldURI, 0, len(paths))
	for _, p := range paths {
		out = append(out, FieldURI{FieldURI: p})
	}
	return out
}

type FolderShape struct {
	BaseShape BaseShape `xml:"t:BaseShape"`
}

type ItemShape struct {
	BaseShape            BaseShape             `xml:"t:BaseShape"`
	IncludeMimeContent   *bool                 `xml:"t:IncludeMimeContent"`
	AdditionalProperties *AdditionalProperties `xml:"t:AdditionalProperties"`
}

type AdditionalProperties struct {
	FieldURIs []FieldURI `xml:"t:FieldURI"`
}

// ── Folder operations ──

type GetFolder struct {
	XMLName     xml.Name     `xml:"m:GetFolder"`
	FolderShape FolderShape  `xml:"m:FolderShape"`
	FolderIDs   FolderIDList `xml:"m:FolderIds"`
}

func (GetFolder) OperationName() string { return "GetFolder" }

type SyncFolderHierarchy struct {
	XMLName      xml.Name      `xml:"m:SyncFolderHierarchy"`
	FolderShape  FolderShape   `xml:"m:FolderShape"`
	SyncFolderID *FolderIDList `xml:"m:SyncFolderId"`
	SyncState    string        `xml:"m:SyncState,omitempty"`
}

func (SyncFolderHierarchy) OperationName() string { return "SyncFolderHierarchy" }

type CreateFolder struct {
	XMLName        xml.Name      `xml:"m:CreateFolder"`
	ParentFolderID FolderIDList  `xml:"m:ParentFolderId"`
	Folders        []FolderEntry `xml:"m:Folders>t:Folder"`
}

func (CreateFolder) OperationName() string { return "CreateFolder" }

// FolderEntry is a folder payload in CreateFolder and SetFolderField.
type FolderEntry struct {
	FolderClass string `xml:"t:FolderClass,omitempty"`
	DisplayName string `xml:"t:DisplayName"`
}

type UpdateFolder struct {
	XMLName       xml.Name       `xml:"m:UpdateFolder"`
	FolderChanges []FolderChange `xml:"m:FolderChanges>t:FolderChange"`
}

func (UpdateFolder) OperationName() string { return "UpdateFolder" }

type FolderChange struct {
	Folder  FolderRef
	Updates []SetFolderField `xml:"t:Updates>t:SetFolderField"`
}

type SetFolderField struct {
	FieldURI FieldURI    `xml:"t:FieldURI"`
	Folder   FolderEntry `xml:"t:Folder"`
}

type DeleteFolder struct {
	XMLName    xml.Name     `xml:"m:DeleteFolder"`
	DeleteType string       `xml:"DeleteType,attr"`
	FolderIDs  FolderIDList `xml:"m:FolderIds"`
}

func (DeleteFolder) OperationName() string { return "DeleteFolder" }

type CopyFolder struct {
	XMLName    xml.Name     `xml:"m:CopyFolder"`
	ToFolderID FolderIDList `xml:"m:ToFolderId"`
	FolderIDs  FolderIDList `xml:"m:FolderIds"`
}

func (CopyFolder) OperationName() string { return "CopyFolder" }

type MoveFolder struct {
	XMLName    xml.Name     `xml:"m:MoveFolder"`
	ToFolderID FolderIDList `xml:"m:ToFolderId"`
	FolderIDs  FolderIDList `xml:"m:FolderIds"`
}

func (MoveFolder) OperationName() string { return "MoveFolder" }

// ── Item operations ──

type SyncFolderItems struct {
	XMLName            xml.Name     `xml:"m:SyncFolderItems"`
	ItemShape          ItemShape    `xml:"m:ItemShape"`
	SyncFolderID       FolderIDList `xml:"m:SyncFolderId"`
	SyncState          string       `xml:"m:SyncState,omitempty"`
	MaxChangesReturned int          `xml:"m:MaxChangesReturned"`
}

func (SyncFolderItems) OperationName() string { return "SyncFolderItems" }

type GetItem struct {
	XMLName   xml.Name  `xml:"m:GetItem"`
	ItemShape ItemShape `xml:"m:ItemShape"`
	ItemIDs   []ItemRef `xml:"m:ItemIds>t:ItemId"`
}

func (GetItem) OperationName() string { return "GetItem" }

type CreateItem struct {
	XMLName            xml.Name      `xml:"m:CreateItem"`
	MessageDisposition string        `xml:"MessageDisposition,attr,omitempty"`
	SavedItemFolderID  *FolderIDList `xml:"m:SavedItemFolderId"`
	Messages           []Message     `xml:"m:Items>t:Message"`
}

func (CreateItem) OperationName() string { return "CreateItem" }

// Message is the request-side message payload of CreateItem.
type Message struct {
	MimeContent                string             `xml:"t:MimeContent,omitempty"`
	ExtendedProperties         []ExtendedProperty `xml:"t:ExtendedProperty"`
	BccRecipients              *Recipients        `xml:"t:BccRecipients,omitempty"`
	IsDeliveryReceiptRequested *bool              `xml:"t:IsDeliveryReceiptRequested"`
	InternetMessageID          string             `xml:"t:InternetMessageId,omitempty"`
	IsRead                     *bool              `xml:"t:IsRead"`
}

// Recipients is a non-empty recipient list. The schema rejects an empty
// list, so leave the field nil when there is nobody to add.
type Recipients struct {
	Mailboxes []MailboxEntry `xml:"t:Mailbox"`
}

// NewRecipients returns nil for an empty list.
func NewRecipients(mailboxes []MailboxEntry) *Recipients {
	if len(mailboxes) == 0 {
		return nil
	}
	return &Recipients{Mailboxes: mailboxes}
}

// MailboxEntry is the request-side form of a mailbox.
type MailboxEntry struct {
	Name         string `xml:"t:Name,omitempty"`
	EmailAddress string `xml:"t:EmailAddress"`
}

type ExtendedProperty struct {
	FieldURI ExtendedFieldURI `xml:"t:ExtendedFieldURI"`
	Value    string           `xml:"t:Value"`
}

type ExtendedFieldURI struct {
	PropertyTag  string `xml:"PropertyTag,attr"`
	PropertyType string `xml:"PropertyType,attr"`
}

type UpdateItem struct {
	XMLName            xml.Name     `xml:"m:UpdateItem"`
	MessageDisposition string       `xml:"MessageDisposition,attr,omitempty"`
	ConflictResolution string       `xml:"ConflictResolution,attr,omitempty"`
	ItemChanges        []ItemChange `xml:"m:ItemChanges>t:ItemChange"`
}

func (UpdateItem) OperationName() string { return "UpdateItem" }

type ItemChange struct {
	ItemID  ItemRef        `xml:"t:ItemId"`
	Updates []SetItemField `xml:"t:Updates>t:SetItemField"`
}

type SetItemField struct {
	FieldURI FieldURI     `xml:"t:FieldURI"`
	Message  MessageField `xml:"t:Message"`
}

// MessageField carries the single property a SetItemField writes.
type MessageField struct {
	IsRead  *bool  `xml:"t:IsRead"`
	Subject string `xml:"t:Subject,omitempty"`
}

type DeleteItem struct {
	XMLName    xml.Name  `xml:"m:DeleteItem"`
	DeleteType string    `xml:"DeleteType,attr"`
	ItemIDs    []ItemRef `xml:"m:ItemIds>t:ItemId"`
}

func (DeleteItem) OperationName() string { return "DeleteItem" }

type CopyItem struct {
	XMLName          xml.Name     `xml:"m:CopyItem"`
	ToFolderID       FolderIDList `xml:"m:ToFolderId"`
	ItemIDs          []ItemRef    `xml:"m:ItemIds>t:ItemId"`
	ReturnNewItemIDs *bool        `xml:"m:ReturnNewItemIds"`
}

func (CopyItem) OperationName() string { return "CopyItem" }

type MoveItem struct {
	XMLName          xml.Name     `xml:"m:MoveItem"`
	ToFolderID       FolderIDList `xml:"m:ToFolderId"`
	ItemIDs          []ItemRef    `xml:"m:ItemIds>t:ItemId"`
	ReturnNewItemIDs *bool        `xml:"m:ReturnNewItemIds"`
}

func (MoveItem) OperationName() string { return "MoveItem" }

type MarkAllItemsAsRead struct {
	XMLName              xml.Name     `xml:"m:MarkAllItemsAsRead"`
	ReadFlag             bool         `xml:"m:ReadFlag"`
	SuppressReadReceipts bool         `xml:"m:SuppressReadReceipts"`
	FolderIDs            FolderIDList `xml:"m:FolderIds"`
}

func (MarkAllItemsAsRead) OperationName() string { return "MarkAllItemsAsRead" }

type MarkAsJunk struct {
	XMLName  xml.Name  `xml:"m:MarkAsJunk"`
	IsJunk   bool      `xml:"IsJunk,attr"`
	MoveItem bool      `xml:"MoveItem,attr"`
	ItemIDs  []ItemRef `xml:"m:ItemIds>t:ItemId"`
}

func (MarkAsJunk) OperationName() string { return "MarkAsJunk" }
