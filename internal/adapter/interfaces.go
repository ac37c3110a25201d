// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the HTTP transport the EWS engine sends its
// envelopes through.
//
// The primary abstraction is [Transport]: one authenticated POST returning
// the HTTP status and raw body. It never interprets the status; the engine
// decides what a 401 or a 500 means. Transport-level failures are mapped by
// mapTransportError so that callers can use [errors.Is] on [ErrTimeout],
// [ErrTransportSecurity] and [ErrRequestFailed].
package adapter

import (
	"context"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/transport_mock.go -package=mock

// Transport performs a single request/response exchange with an EWS endpoint.
type Transport interface {
	// Post sends req and returns the status and body of the response. A non-2xx
	// status is not an error. Returns an error only when no response was
	// received.
	Post(ctx context.Context, req Request) (*Response, error)
}

// Request is one outbound POST.
type Request struct {
	URL           string
	Authorization string
	ContentType   string
	// RequestID is sent as X-Request-Id when non-empty.
	RequestID string
	Body      []byte
}

// Response is the raw result of a POST.
type Response struct {
	StatusCode int
	Body       []byte
}
