// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client assembles the mail client runtime for one mailbox.
//
// It wires the HTTP transport, the EWS engine, the sync-state storage and the
// application services into an [App] whose lifecycle the CLI drives.
package client
