// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import "errors"

// ErrCredentialsUnchanged is returned by the credential refresher when the
// configured credentials are the ones the server just rejected.
var ErrCredentialsUnchanged = errors.New("credentials unchanged")
