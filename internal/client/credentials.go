// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"fmt"
	"sync"

	"github.com/MKhiriev/go-ews-sync/internal/config"
	"github.com/MKhiriev/go-ews-sync/internal/ews"
)

// credentialReloader re-reads credentials from the environment and the
// config file after the server rejected the current ones. A long-running
// watch picks up a token rotated by an external process this way.
type credentialReloader struct {
	path   string
	reload func(path string) (config.ClientEWS, error)

	mu     sync.Mutex
	header string
}

func newCredentialReloader(path string, current ews.Credentials) *credentialReloader {
	return &credentialReloader{
		path:   path,
		reload: config.ReloadCredentials,
		header: current.AuthorizationHeader(),
	}
}

// refresh returns ErrCredentialsUnchanged when the sources still hold the
// rejected credentials, so the engine does not retry with them.
func (r *credentialReloader) refresh(_ context.Context) (ews.Credentials, error) {
	fresh, err := r.reload(r.path)
	if err != nil {
		return nil, err
	}
	if fresh.Token == "" && fresh.Username == "" {
		return nil, fmt.Errorf("%w: no credentials configured", ErrCredentialsUnchanged)
	}

	creds := credentialsFromConfig(fresh)
	header := creds.AuthorizationHeader()

	r.mu.Lock()
	defer r.mu.Unlock()
	if header == r.header {
		return nil, ErrCredentialsUnchanged
	}
	r.header = header
	return creds, nil
}
