// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package ews is the mail-client engine for Exchange Web Services.
//
// A [Client] turns typed intents (sync a folder hierarchy, fetch message
// summaries, move items) into SOAP operations, sends them through an
// [adapter.Transport] and maps the per-unit results back to domain models.
//
// Every call goes through a single dispatcher that stamps the negotiated
// protocol version, classifies failures into the sentinel taxonomy of this
// package and transparently waits out server throttling. The throttle loop
// is unbounded by default: callers that need an overall deadline must set
// one on ctx or use [WithMaxThrottleRetries].
package ews

import (
	"fmt"
	"net/url"
	"strings"
	"sync"

	"github.com/MKhiriev/go-ews-sync/internal/adapter"
	"github.com/MKhiriev/go-ews-sync/internal/logger"
	"github.com/MKhiriev/go-ews-sync/internal/utils"
)

// Client talks to one EWS endpoint. It is safe for concurrent use.
type Client struct {
	endpoint  string
	host      string
	transport adapter.Transport

	credMu sync.RWMutex
	creds  Credentials

	versions           *VersionRegistry
	logger             *logger.Logger
	sleep              Sleeper
	refresh            CredentialRefresher
	requestIDs         RequestIDGenerator
	maxThrottleRetries int
	maxSyncPages       int
	busyStatusRetry    bool
}

// NewClient validates endpoint and returns a Client sending through transport.
func NewClient(endpoint string, creds Credentials, transport adapter.Transport, opts ...Option) (*Client, error) {
	u, err := url.Parse(endpoint)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidEndpoint, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("%w: unsupported scheme %q", ErrInvalidEndpoint, u.Scheme)
	}
	if u.Hostname() == "" {
		return nil, fmt.Errorf("%w: missing host", ErrInvalidEndpoint)
	}
	if creds == nil {
		return nil, fmt.Errorf("%w: credentials are required", ErrAuthentication)
	}

	c := &Client{
		endpoint:   endpoint,
		host:       strings.ToLower(u.Hostname()),
		transport:  transport,
		creds:      creds,
		versions:   NewVersionRegistry(),
		logger:     logger.Nop(),
		sleep:      sleepContext,
		requestIDs: utils.NewUUIDGenerator(),
	}
	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}

func (c *Client) Endpoint() string {
	return c.endpoint
}

// ServerVersion returns the version currently cached for the endpoint.
func (c *Client) ServerVersion() Version {
	return c.versions.Read(c.endpoint)
}

// Versions returns the registry the client reads and records versions in.
func (c *Client) Versions() *VersionRegistry {
	return c.versions
}

// SetCredentials replaces the credentials used by subsequent requests.
func (c *Client) SetCredentials(creds Credentials) {
	if creds == nil {
		return
	}
	c.credMu.Lock()
	c.creds = creds
	c.credMu.Unlock()
}

func (c *Client) credentials() Credentials {
	c.credMu.RLock()
	defer c.credMu.RUnlock()
	return c.creds
}

var office365HostSuffixes = []string{
	"office365.com",
	"outlook.com",
	"onmicrosoft.com",
	".microsoft",
}

// IsOffice365 reports whether the endpoint host belongs to Microsoft's
// hosted service.
func (c *Client) IsOffice365() bool {
	for _, suffix := range office365HostSuffixes {
		if strings.HasSuffix(c.host, suffix) {
			return true
		}
	}
	return false
}
