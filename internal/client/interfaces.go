// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"

	"github.com/MKhiriev/go-ews-sync/internal/service"
)

// Client defines the minimal lifecycle contract for runnable client
// applications.
type Client interface {
	// Run starts background work and blocks until ctx is done.
	Run(ctx context.Context) error
	// Close releases resources held by the client.
	Close(ctx context.Context) error
	// ObserveSync reports every background sync started by Run to fn.
	ObserveSync(fn service.SyncObserver)
}

var _ Client = (*App)(nil)
