// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package ews

import (
	"context"
	"regexp"
	"sync"
	"testing"
	"time"

	"github.com/MKhiriev/go-ews-sync/internal/adapter"
	"github.com/MKhiriev/go-ews-sync/internal/config"
	"github.com/MKhiriev/go-ews-sync/internal/ewstest"
	"github.com/MKhiriev/go-ews-sync/internal/logger"
	"github.com/MKhiriev/go-ews-sync/internal/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const testEndpoint = "https://mail.example.com/EWS/Exchange.asmx"

var testCreds = BasicCredentials{Username: "user@example.com", Password: "secret"}

// sleepRecorder replaces real back-off sleeps and remembers every delay.
type sleepRecorder struct {
	mu     sync.Mutex
	delays []time.Duration
}

func (s *sleepRecorder) sleep(ctx context.Context, d time.Duration) error {
	s.mu.Lock()
	s.delays = append(s.delays, d)
	s.mu.Unlock()
	return ctx.Err()
}

func (s *sleepRecorder) recorded() []time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]time.Duration(nil), s.delays...)
}

// newMockClient returns a client sending through a gomock transport.
func newMockClient(t *testing.T, opts ...Option) (*Client, *mock.MockTransport, *sleepRecorder) {
	t.Helper()

	ctrl := gomock.NewController(t)
	transport := mock.NewMockTransport(ctrl)
	sleeps := &sleepRecorder{}

	opts = append([]Option{WithSleeper(sleeps.sleep)}, opts...)
	c, err := NewClient(testEndpoint, testCreds, transport, opts...)
	require.NoError(t, err)

	return c, transport, sleeps
}

// newServerClient returns a client talking to a fake EWS server over HTTP.
func newServerClient(t *testing.T, opts ...Option) (*Client, *ewstest.Server, *sleepRecorder) {
	t.Helper()

	srv := ewstest.NewServer(t)
	sleeps := &sleepRecorder{}
	transport := adapter.NewHTTPTransport(config.ClientEWS{RequestTimeout: 5 * time.Second}, logger.Nop())

	opts = append([]Option{WithSleeper(sleeps.sleep)}, opts...)
	c, err := NewClient(srv.URL(), testCreds, transport, opts...)
	require.NoError(t, err)

	return c, srv, sleeps
}

func reply(body string) *adapter.Response {
	return &adapter.Response{StatusCode: 200, Body: []byte(body)}
}

func boolPtr(b bool) *bool { return &b }

var (
	itemIDPattern   = regexp.MustCompile(`<t:ItemId Id="([^"]+)"`)
	folderIDPattern = regexp.MustCompile(`<t:(?:FolderId|DistinguishedFolderId) Id="([^"]+)"`)
)

// requestedItemIDs returns the item ids of a request body in order.
func requestedItemIDs(body []byte) []string {
	var ids []string
	for _, m := range itemIDPattern.FindAllSubmatch(body, -1) {
		ids = append(ids, string(m[1]))
	}
	return ids
}

func requestedFolderIDs(body []byte) []string {
	var ids []string
	for _, m := range folderIDPattern.FindAllSubmatch(body, -1) {
		ids = append(ids, string(m[1]))
	}
	return ids
}
