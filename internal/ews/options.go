// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package ews

import (
	"context"
	"time"

	"github.com/MKhiriev/go-ews-sync/internal/logger"
)

// AuthFailureBehavior controls how a 401 is reported.
type AuthFailureBehavior int

const (
	// AuthReAuth logs the failure at error level and, when a refresher is
	// configured, retries once with fresh credentials.
	AuthReAuth AuthFailureBehavior = iota
	// AuthSilent logs at debug level. Used for probes such as CheckConnectivity.
	AuthSilent
)

// TransportSecFailureBehavior controls how TLS failures are reported.
type TransportSecFailureBehavior int

const (
	TransportSecAlert TransportSecFailureBehavior = iota
	TransportSecSilent
)

type requestOptions struct {
	auth         AuthFailureBehavior
	transportSec TransportSecFailureBehavior
}

var defaultRequestOptions = requestOptions{auth: AuthReAuth, transportSec: TransportSecAlert}

// CredentialRefresher returns fresh credentials after the server rejected
// the current ones.
type CredentialRefresher func(ctx context.Context) (Credentials, error)

// RequestIDGenerator produces correlation ids for outgoing requests.
type RequestIDGenerator interface {
	Generate() string
}

// Sleeper waits for d or until ctx is done. Tests replace it to avoid
// real back-off delays.
type Sleeper func(ctx context.Context, d time.Duration) error

// Option configures a Client.
type Option func(*Client)

func WithLogger(l *logger.Logger) Option {
	return func(c *Client) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithVersionRegistry shares a registry between clients. Without it every
// client owns a private one.
func WithVersionRegistry(r *VersionRegistry) Option {
	return func(c *Client) {
		if r != nil {
			c.versions = r
		}
	}
}

// WithMaxThrottleRetries caps the number of throttle back-offs per call.
// Zero, the default, means unbounded: the call only ends when the server
// stops throttling or ctx is done.
func WithMaxThrottleRetries(n int) Option {
	return func(c *Client) {
		if n > 0 {
			c.maxThrottleRetries = n
		}
	}
}

// WithBusyStatusRetry makes a non-2xx response whose body is a server-busy
// fault back off and retry like any other throttling signal. Without it
// every non-2xx status is returned as a *StatusError.
func WithBusyStatusRetry() Option {
	return func(c *Client) {
		c.busyStatusRetry = true
	}
}

func WithSleeper(s Sleeper) Option {
	return func(c *Client) {
		if s != nil {
			c.sleep = s
		}
	}
}

func WithCredentialRefresher(f CredentialRefresher) Option {
	return func(c *Client) {
		c.refresh = f
	}
}

func WithRequestIDGenerator(g RequestIDGenerator) Option {
	return func(c *Client) {
		if g != nil {
			c.requestIDs = g
		}
	}
}

func sleepContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// WithMaxSyncPages stops SyncMessages after n pages. The returned result is
// then not caught up and its sync state resumes where paging stopped.
func WithMaxSyncPages(n int) Option {
	return func(c *Client) {
		if n > 0 {
			c.maxSyncPages = n
		}
	}
}
