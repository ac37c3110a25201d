// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package ewstest

import (
	"fmt"
	"strings"
)

const (
	nsSOAP     = "http://schemas.xmlsoap.org/soap/envelope/"
	nsTypes    = "http://schemas.microsoft.com/exchange/services/2006/types"
	nsMessages = "http://schemas.microsoft.com/exchange/services/2006/messages"
)

// Envelope wraps units into a complete <op>Response document. An empty
// version omits the ServerVersionInfo header.
func Envelope(operation, version string, units ...string) string {
	var header string
	if version != "" {
		header = fmt.Sprintf(`<s:Header><h:ServerVersionInfo MajorVersion="15" MinorVersion="0" Version="%s" xmlns:h="%s"/></s:Header>`,
			version, nsTypes)
	}

	return fmt.Sprintf(`<?xml version="1.0" encoding="utf-8"?>`+
		`<s:Envelope xmlns:s="%s">%s<s:Body>`+
		`<m:%sResponse xmlns:m="%s" xmlns:t="%s"><m:ResponseMessages>%s</m:ResponseMessages></m:%sResponse>`+
		`</s:Body></s:Envelope>`,
		nsSOAP, header, operation, nsMessages, nsTypes, strings.Join(units, ""), operation)
}

// Success is a successful response unit carrying inner.
func Success(operation string, inner ...string) string {
	return fmt.Sprintf(`<m:%sResponseMessage ResponseClass="Success"><m:ResponseCode>NoError</m:ResponseCode>%s</m:%sResponseMessage>`,
		operation, strings.Join(inner, ""), operation)
}

// Warning is a warning response unit carrying inner.
func Warning(operation, code string, inner ...string) string {
	return fmt.Sprintf(`<m:%sResponseMessage ResponseClass="Warning"><m:MessageText>warning</m:MessageText><m:ResponseCode>%s</m:ResponseCode>%s</m:%sResponseMessage>`,
		operation, code, strings.Join(inner, ""), operation)
}

// Error is an error response unit.
func Error(operation, code, text string) string {
	return fmt.Sprintf(`<m:%sResponseMessage ResponseClass="Error"><m:MessageText>%s</m:MessageText><m:ResponseCode>%s</m:ResponseCode><m:DescriptiveLinkKey>0</m:DescriptiveLinkKey></m:%sResponseMessage>`,
		operation, text, code, operation)
}

// Busy is a server-busy error unit asking the client to wait ms milliseconds.
func Busy(operation string, ms int) string {
	return fmt.Sprintf(`<m:%sResponseMessage ResponseClass="Error"><m:MessageText>busy</m:MessageText><m:ResponseCode>ErrorServerBusy</m:ResponseCode>`+
		`<m:MessageXml><t:Value Name="BackOffMilliseconds">%d</t:Value></m:MessageXml></m:%sResponseMessage>`,
		operation, ms, operation)
}

// BusyFault is a complete SOAP fault document asking the client to wait ms
// milliseconds.
func BusyFault(ms int) string {
	return fmt.Sprintf(`<?xml version="1.0" encoding="utf-8"?><s:Envelope xmlns:s="%s"><s:Body><s:Fault>`+
		`<faultcode>a:ErrorServerBusy</faultcode><faultstring>The server cannot service this request right now.</faultstring>`+
		`<detail><e:ResponseCode xmlns:e="e">ErrorServerBusy</e:ResponseCode>`+
		`<t:MessageXml xmlns:t="%s"><t:Value Name="BackOffMilliseconds">%d</t:Value></t:MessageXml></detail>`+
		`</s:Fault></s:Body></s:Envelope>`, nsSOAP, nsTypes, ms)
}

// Folders wraps folders into an m:Folders element.
func Folders(folders ...string) string {
	return "<m:Folders>" + strings.Join(folders, "") + "</m:Folders>"
}

// Items wraps items into an m:Items element.
func Items(items ...string) string {
	return "<m:Items>" + strings.Join(items, "") + "</m:Items>"
}

// FolderRef is a folder carrying only its id.
func FolderRef(id string) string {
	return fmt.Sprintf(`<t:Folder><t:FolderId Id="%s" ChangeKey="ck"/></t:Folder>`, id)
}

// Folder is a fully populated folder of kind "Folder".
func Folder(id, parentID, class, name string) string {
	return FolderOfKind("Folder", id, parentID, class, name)
}

// FolderOfKind is a fully populated folder with the given element name,
// e.g. "CalendarFolder".
func FolderOfKind(kind, id, parentID, class, name string) string {
	var b strings.Builder
	fmt.Fprintf(&b, `<t:%s><t:FolderId Id="%s" ChangeKey="ck"/>`, kind, id)
	if parentID != "" {
		fmt.Fprintf(&b, `<t:ParentFolderId Id="%s"/>`, parentID)
	}
	if class != "" {
		fmt.Fprintf(&b, `<t:FolderClass>%s</t:FolderClass>`, class)
	}
	if name != "" {
		fmt.Fprintf(&b, `<t:DisplayName>%s</t:DisplayName>`, name)
	}
	fmt.Fprintf(&b, `<t:TotalCount>0</t:TotalCount><t:ChildFolderCount>0</t:ChildFolderCount><t:UnreadCount>0</t:UnreadCount></t:%s>`, kind)
	return b.String()
}

// ItemRef is a message carrying only its id.
func ItemRef(id string) string {
	return fmt.Sprintf(`<t:Message><t:ItemId Id="%s" ChangeKey="ck"/></t:Message>`, id)
}

// MessageSummary is a message with the summary properties fetched after a sync.
func MessageSummary(id, subject, from string, isRead bool) string {
	return fmt.Sprintf(`<t:Message><t:ItemId Id="%s" ChangeKey="ck"/><t:Subject>%s</t:Subject>`+
		`<t:DateTimeSent>2026-03-01T10:00:00Z</t:DateTimeSent><t:Size>1024</t:Size><t:HasAttachments>false</t:HasAttachments>`+
		`<t:From><t:Mailbox><t:Name>%s</t:Name><t:EmailAddress>%s</t:EmailAddress></t:Mailbox></t:From>`+
		`<t:InternetMessageId>&lt;%s@example.com&gt;</t:InternetMessageId><t:IsRead>%t</t:IsRead></t:Message>`,
		id, subject, from, from, id, isRead)
}

// MimeMessage is a message carrying base64 MIME content.
func MimeMessage(id, base64Mime string) string {
	return fmt.Sprintf(`<t:Message><t:MimeContent CharacterSet="UTF-8">%s</t:MimeContent><t:ItemId Id="%s" ChangeKey="ck"/></t:Message>`,
		base64Mime, id)
}

// MovedItemID is the MovedItemId element of a MarkAsJunk unit.
func MovedItemID(id string) string {
	return fmt.Sprintf(`<m:MovedItemId Id="%s" ChangeKey="ck"/>`, id)
}

// SyncPage is the body of a sync response unit.
func SyncPage(syncState string, last bool, lastElement string, changes ...string) string {
	return fmt.Sprintf(`<m:SyncState>%s</m:SyncState><m:%s>%t</m:%s><m:Changes>%s</m:Changes>`,
		syncState, lastElement, last, lastElement, strings.Join(changes, ""))
}

// FolderSyncPage is the body of a SyncFolderHierarchy unit.
func FolderSyncPage(syncState string, last bool, changes ...string) string {
	return SyncPage(syncState, last, "IncludesLastFolderInRange", changes...)
}

// ItemSyncPage is the body of a SyncFolderItems unit.
func ItemSyncPage(syncState string, last bool, changes ...string) string {
	return SyncPage(syncState, last, "IncludesLastItemInRange", changes...)
}

// Create is a Create change event wrapping entity.
func Create(entity string) string { return "<t:Create>" + entity + "</t:Create>" }

// Update is an Update change event wrapping entity.
func Update(entity string) string { return "<t:Update>" + entity + "</t:Update>" }

// DeleteFolder is a folder Delete change event.
func DeleteFolder(id string) string {
	return fmt.Sprintf(`<t:Delete><t:FolderId Id="%s"/></t:Delete>`, id)
}

// DeleteItem is an item Delete change event.
func DeleteItem(id string) string {
	return fmt.Sprintf(`<t:Delete><t:ItemId Id="%s"/></t:Delete>`, id)
}

// ReadFlagChange is a ReadFlagChange event.
func ReadFlagChange(id string, isRead bool) string {
	return fmt.Sprintf(`<t:ReadFlagChange><t:ItemId Id="%s"/><t:IsRead>%t</t:IsRead></t:ReadFlagChange>`, id, isRead)
}
