// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package soap

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"time"
)

var (
	// ErrMalformedResponse is returned when a response body is not a
	// decodable SOAP envelope.
	ErrMalformedResponse = errors.New("malformed soap response")

	// ErrEncodingRequest is returned when an operation cannot be serialized.
	ErrEncodingRequest = errors.New("error encoding soap request")
)

// Operation is a typed EWS request body. Implementations are structs whose
// XMLName tag names the operation element (e.g. "m:GetFolder").
type Operation interface {
	OperationName() string
}

type requestEnvelope struct {
	XMLName    xml.Name      `xml:"soap:Envelope"`
	SOAPNS     string        `xml:"xmlns:soap,attr"`
	TypesNS    string        `xml:"xmlns:t,attr"`
	MessagesNS string        `xml:"xmlns:m,attr"`
	Header     requestHeader `xml:"soap:Header"`
	Body       requestBody   `xml:"soap:Body"`
}

type requestHeader struct {
	ServerVersion requestServerVersion `xml:"t:RequestServerVersion"`
}

type requestServerVersion struct {
	Version string `xml:"Version,attr"`
}

type requestBody struct {
	Operation Operation
}

// EncodeRequest serializes op into a complete XML document whose header
// requests the given protocol version.
func EncodeRequest(version string, op Operation) ([]byte, error) {
	if op == nil {
		return nil, fmt.Errorf("%w: nil operation", ErrEncodingRequest)
	}

	env := requestEnvelope{
		SOAPNS:     NamespaceSOAP,
		TypesNS:    NamespaceTypes,
		MessagesNS: NamespaceMessages,
		Header: requestHeader{
			ServerVersion: requestServerVersion{Version: version},
		},
		Body: requestBody{Operation: op},
	}

	var buf bytes.Buffer
	buf.WriteString(xml.Header)
	if err := xml.NewEncoder(&buf).Encode(env); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrEncodingRequest, op.OperationName(), err)
	}

	return buf.Bytes(), nil
}

// ServerVersionInfo is the version header attached to EWS responses.
type ServerVersionInfo struct {
	MajorVersion     int    `xml:"MajorVersion,attr"`
	MinorVersion     int    `xml:"MinorVersion,attr"`
	MajorBuildNumber int    `xml:"MajorBuildNumber,attr"`
	MinorBuildNumber int    `xml:"MinorBuildNumber,attr"`
	Version          string `xml:"Version,attr"`
}

// Response is a decoded operation response.
type Response struct {
	// Name is the local name of the response element, e.g. "GetFolderResponse".
	Name string
	// ServerVersion is nil when the server sent no version header.
	ServerVersion *ServerVersionInfo
	// Messages holds the response units in server order.
	Messages []ResponseMessage
}

// FirstMessageThrottle reports whether the first response unit is a
// server-busy error carrying a back-off hint.
func (r *Response) FirstMessageThrottle() (time.Duration, bool) {
	if r == nil || len(r.Messages) == 0 {
		return 0, false
	}

	first := r.Messages[0]
	if first.ResponseClass != ResponseClassError {
		return 0, false
	}

	ms, ok := first.MessageXML.BackOffMilliseconds()
	if !ok {
		return 0, false
	}

	return time.Duration(ms) * time.Millisecond, true
}

type responseEnvelope struct {
	XMLName xml.Name       `xml:"Envelope"`
	Header  responseHeader `xml:"Header"`
	Body    responseBody   `xml:"Body"`
}

type responseHeader struct {
	ServerVersionInfo *ServerVersionInfo `xml:"ServerVersionInfo"`
}

type responseBody struct {
	Fault    *Fault             `xml:"Fault"`
	Response *operationResponse `xml:",any"`
}

type operationResponse struct {
	XMLName          xml.Name
	ResponseMessages responseMessages `xml:"ResponseMessages"`
}

type responseMessages struct {
	Items []ResponseMessage `xml:",any"`
}

// DecodeResponse parses a response document. A SOAP fault is returned as a
// *Fault error; any other decoding failure wraps ErrMalformedResponse.
func DecodeResponse(data []byte) (*Response, error) {
	var env responseEnvelope
	if err := xml.Unmarshal(data, &env); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}

	if env.Body.Fault != nil {
		return nil, env.Body.Fault
	}

	if env.Body.Response == nil {
		return nil, fmt.Errorf("%w: empty body", ErrMalformedResponse)
	}

	return &Response{
		Name:          env.Body.Response.XMLName.Local,
		ServerVersion: env.Header.ServerVersionInfo,
		Messages:      env.Body.Response.ResponseMessages.Items,
	}, nil
}
