// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package soap

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Fault is a SOAP fault returned in place of an operation response.
type Fault struct {
	Code   string      `xml:"faultcode"`
	String string      `xml:"faultstring"`
	Detail FaultDetail `xml:"detail"`
}

// FaultDetail carries the EWS-specific part of a fault.
type FaultDetail struct {
	ResponseCode string      `xml:"ResponseCode"`
	Message      string      `xml:"Message"`
	MessageXML   *MessageXML `xml:"MessageXml"`
}

func (f *Fault) Error() string {
	code := f.Detail.ResponseCode
	if code == "" {
		code = f.Code
	}

	msg := f.Detail.Message
	if msg == "" {
		msg = f.String
	}

	return fmt.Sprintf("soap fault %s: %s", code, msg)
}

// MessageXML holds the named values some errors attach, such as the
// BackOffMilliseconds hint of a server-busy error.
type MessageXML struct {
	Values []MessageXMLValue `xml:"Value"`
}

// MessageXMLValue is one named value of a MessageXml block.
type MessageXMLValue struct {
	Name  string `xml:"Name,attr"`
	Value string `xml:",chardata"`
}

const backOffValueName = "BackOffMilliseconds"

// BackOffMilliseconds returns the server-busy back-off hint, if present.
func (m *MessageXML) BackOffMilliseconds() (int64, bool) {
	if m == nil {
		return 0, false
	}

	for _, v := range m.Values {
		if v.Name != backOffValueName {
			continue
		}
		ms, err := strconv.ParseInt(strings.TrimSpace(v.Value), 10, 64)
		if err != nil || ms < 0 {
			return 0, false
		}
		return ms, true
	}

	return 0, false
}

// ThrottleDelay reports whether err is a fault that asks the client to back
// off, and for how long.
func ThrottleDelay(err error) (time.Duration, bool) {
	var fault *Fault
	if !errors.As(err, &fault) {
		return 0, false
	}

	ms, ok := fault.Detail.MessageXML.BackOffMilliseconds()
	if !ok {
		return 0, false
	}

	return time.Duration(ms) * time.Millisecond, true
}
