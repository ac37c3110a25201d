// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package ews

import "sync"

// VersionRegistry maps an endpoint to the protocol version its server last
// reported. It is safe for concurrent use; writes for one endpoint never
// block readers of another. Create one per process or client pool and
// pass it to every Client talking to the same servers.
type VersionRegistry struct {
	versions sync.Map // endpoint string -> Version
}

// NewVersionRegistry returns an empty registry.
func NewVersionRegistry() *VersionRegistry {
	return &VersionRegistry{}
}

// Read returns the cached version for endpoint, or DefaultVersion.
func (r *VersionRegistry) Read(endpoint string) Version {
	if v, ok := r.versions.Load(endpoint); ok {
		return v.(Version)
	}
	return DefaultVersion
}

// Record overwrites the cached version for endpoint. Last write wins.
func (r *VersionRegistry) Record(endpoint string, v Version) {
	r.versions.Store(endpoint, v)
}

// Snapshot returns a copy of every cached entry.
func (r *VersionRegistry) Snapshot() map[string]Version {
	out := make(map[string]Version)
	r.versions.Range(func(k, v any) bool {
		out[k.(string)] = v.(Version)
		return true
	})
	return out
}

// Restore records every entry of snapshot, e.g. versions persisted by a
// previous run.
func (r *VersionRegistry) Restore(snapshot map[string]Version) {
	for endpoint, v := range snapshot {
		r.Record(endpoint, v)
	}
}
