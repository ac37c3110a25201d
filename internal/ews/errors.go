// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package ews

import (
	"errors"
	"fmt"
)

var (
	// ErrAuthentication is returned when the server rejects the credentials (HTTP 401).
	ErrAuthentication = errors.New("authentication failed")

	// ErrHTTP covers transport failures and unexpected HTTP statuses.
	ErrHTTP = errors.New("http error")

	// ErrProtocol is returned when a response cannot be decoded.
	ErrProtocol = errors.New("ews protocol error")

	// ErrResponse is returned for a server-reported error on a response unit.
	ErrResponse = errors.New("response error")

	// ErrProcessing is a local invariant violation: wrong unit count,
	// unexpected entity shape, unsupported server version.
	ErrProcessing = errors.New("processing error")

	// ErrMissingID is returned when the server omits an id the engine needs.
	ErrMissingID = errors.New("missing id in response")

	ErrInvalidEndpoint = errors.New("invalid endpoint")

	// ErrThrottleLimit is returned only when a throttle retry cap was configured
	// with WithMaxThrottleRetries and the server kept asking to back off.
	ErrThrottleLimit = errors.New("throttle retry limit reached")
)

// ResponseError is an error reported by the server on one response unit.
type ResponseError struct {
	Operation string
	Code      string
	Message   string
	// Index is the position of the unit in the response, -1 when unknown.
	Index int
}

func (e *ResponseError) Error() string {
	if e.Index >= 0 {
		return fmt.Sprintf("%s: response %d: %s: %s", e.Operation, e.Index, e.Code, e.Message)
	}
	return fmt.Sprintf("%s: %s: %s", e.Operation, e.Code, e.Message)
}

func (e *ResponseError) Is(target error) bool {
	return target == ErrResponse
}

// IsResponseCode reports whether err is a *ResponseError carrying code.
func IsResponseCode(err error, code string) bool {
	var respErr *ResponseError
	return errors.As(err, &respErr) && respErr.Code == code
}

// StatusError is returned for a non-2xx, non-401 HTTP status. It matches both
// ErrHTTP and ErrProcessing.
type StatusError struct {
	Operation string
	Status    int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s: http request failed with status: %d", e.Operation, e.Status)
}

func (e *StatusError) Is(target error) bool {
	return target == ErrHTTP || target == ErrProcessing
}

// TransportError wraps a failure of the transport itself.
type TransportError struct {
	Operation string
	Err       error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s: %v", e.Operation, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

func (e *TransportError) Is(target error) bool {
	return target == ErrHTTP
}

// ProtocolError wraps a response decoding failure.
type ProtocolError struct {
	Operation string
	Err       error
}

func (e *ProtocolError) Error() string {
	return fmt.Sprintf("%s: %v", e.Operation, e.Err)
}

func (e *ProtocolError) Unwrap() error { return e.Err }

func (e *ProtocolError) Is(target error) bool {
	return target == ErrProtocol
}

// ResponseCountError is returned when a response carries a different number
// of units than the request had targets.
type ResponseCountError struct {
	Operation string
	Expected  int
	Actual    int
}

func (e *ResponseCountError) Error() string {
	return fmt.Sprintf("%s: unexpected response message count: expected %d, got %d",
		e.Operation, e.Expected, e.Actual)
}

func (e *ResponseCountError) Is(target error) bool {
	return target == ErrProcessing
}

func processingError(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrProcessing, fmt.Sprintf(format, args...))
}

func missingIDError(what string) error {
	return fmt.Errorf("%w: %s", ErrMissingID, what)
}
