// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package soap is the wire codec for Exchange Web Services.
//
// Requests are typed [Operation] values wrapped into a SOAP envelope by
// [EncodeRequest]; the envelope header carries the protocol version the
// caller negotiated. Responses are decoded by [DecodeResponse] into a
// [Response] holding the ordered response units ([ResponseMessage]) and the
// optional ServerVersionInfo header. A SOAP fault is returned as a *[Fault]
// error, which may carry a server-busy back-off hint readable through
// [ThrottleDelay].
//
// Request element names carry their namespace prefixes directly ("m:" for
// messages, "t:" for types) because encoding/xml does not emit prefixed
// names from namespace URIs. Response types match on local names only, so
// any prefix the server chooses is accepted.
package soap

// XML namespaces used by the EWS envelope.
const (
	NamespaceSOAP     = "http://schemas.xmlsoap.org/soap/envelope/"
	NamespaceTypes    = "http://schemas.microsoft.com/exchange/services/2006/types"
	NamespaceMessages = "http://schemas.microsoft.com/exchange/services/2006/messages"
)

// ContentType is the HTTP content type of every EWS request.
const ContentType = "text/xml; charset=utf-8"
