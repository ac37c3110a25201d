// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cli

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"sync"
	"testing"

	"github.com/spf13/cobra"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-ews-sync/internal/ews"
	"github.com/MKhiriev/go-ews-sync/internal/mock"
	"github.com/MKhiriev/go-ews-sync/internal/service"
	"github.com/MKhiriev/go-ews-sync/models"
)

// fakeEngine records the last call of every operation.
type fakeEngine struct {
	version   ews.Version
	office365 bool
	err       error
	mime      []byte
	returnIDs []string

	calls       []string
	ids         []string
	destination string
	folderID    string
	name        string
	sentMIME    []byte
	send        ews.SendOptions
	updates     []models.ItemUpdate
	isRead      bool
	isDraft     bool
	isJunk      bool
	suppress    bool
}

func (f *fakeEngine) record(call string) { f.calls = append(f.calls, call) }

func (f *fakeEngine) result(ids []string) ([]string, error) {
	if f.err != nil {
		return nil, f.err
	}
	if f.returnIDs != nil {
		return f.returnIDs, nil
	}
	return ids, nil
}

func (f *fakeEngine) Endpoint() string           { return "https://mail.example.com/EWS/Exchange.asmx" }
func (f *fakeEngine) ServerVersion() ews.Version { return f.version }
func (f *fakeEngine) IsOffice365() bool          { return f.office365 }

func (f *fakeEngine) CheckConnectivity(context.Context) error {
	f.record("CheckConnectivity")
	return f.err
}

func (f *fakeEngine) GetMessage(_ context.Context, id string) ([]byte, error) {
	f.record("GetMessage")
	f.ids = []string{id}
	return f.mime, f.err
}

func (f *fakeEngine) CreateMessage(_ context.Context, folderID string, mime []byte, isDraft, isRead bool) (*models.CreateMessageResult, error) {
	f.record("CreateMessage")
	f.folderID, f.sentMIME, f.isDraft, f.isRead = folderID, mime, isDraft, isRead
	if f.err != nil {
		return nil, f.err
	}
	return &models.CreateMessageResult{ItemID: "new-item"}, nil
}

func (f *fakeEngine) SendMessage(_ context.Context, mime []byte, opts ews.SendOptions) error {
	f.record("SendMessage")
	f.sentMIME, f.send = mime, opts
	return f.err
}

func (f *fakeEngine) DeleteMessages(_ context.Context, ids []string) error {
	f.record("DeleteMessages")
	f.ids = ids
	return f.err
}

func (f *fakeEngine) UpdateItems(_ context.Context, updates []models.ItemUpdate) ([]string, error) {
	f.record("UpdateItems")
	f.updates = updates
	ids := make([]string, 0, len(updates))
	for _, u := range updates {
		ids = append(ids, u.ID)
	}
	return f.result(ids)
}

func (f *fakeEngine) MarkAsRead(_ context.Context, ids []string, isRead bool) ([]string, error) {
	f.record("MarkAsRead")
	f.ids, f.isRead = ids, isRead
	return f.result(ids)
}

func (f *fakeEngine) MarkAllAsRead(_ context.Context, folderIDs []string, isRead, suppress bool) ([]string, error) {
	f.record("MarkAllAsRead")
	f.ids, f.isRead, f.suppress = folderIDs, isRead, suppress
	return f.result(folderIDs)
}

func (f *fakeEngine) MarkAsJunk(_ context.Context, ids []string, isJunk bool, legacyFolderID string) ([]string, error) {
	f.record("MarkAsJunk")
	f.ids, f.isJunk, f.destination = ids, isJunk, legacyFolderID
	return f.result(ids)
}

func (f *fakeEngine) transfer(call, destination string, ids []string) ([]string, error) {
	f.record(call)
	f.destination, f.ids = destination, ids
	return f.result(ids)
}

func (f *fakeEngine) CopyItems(_ context.Context, destination string, ids []string) ([]string, error) {
	return f.transfer("CopyItems", destination, ids)
}

func (f *fakeEngine) MoveItems(_ context.Context, destination string, ids []string) ([]string, error) {
	return f.transfer("MoveItems", destination, ids)
}

func (f *fakeEngine) CopyFolders(_ context.Context, destination string, ids []string) ([]string, error) {
	return f.transfer("CopyFolders", destination, ids)
}

func (f *fakeEngine) MoveFolders(_ context.Context, destination string, ids []string) ([]string, error) {
	return f.transfer("MoveFolders", destination, ids)
}

func (f *fakeEngine) CreateFolder(_ context.Context, parentID, name string) (string, error) {
	f.record("CreateFolder")
	f.folderID, f.name = parentID, name
	if f.err != nil {
		return "", f.err
	}
	return "new-folder", nil
}

func (f *fakeEngine) UpdateFolder(_ context.Context, folderID, name string) error {
	f.record("UpdateFolder")
	f.folderID, f.name = folderID, name
	return f.err
}

func (f *fakeEngine) DeleteFolders(_ context.Context, folderIDs []string) error {
	f.record("DeleteFolders")
	f.ids = folderIDs
	return f.err
}

// fakeApp stands in for the client runtime. Run reports report to the
// current sync observer once.
type fakeApp struct {
	ran      bool
	runErr   error
	closed   bool
	closeErr error
	report   *models.SyncReport

	mu            sync.Mutex
	observer      service.SyncObserver
	subscriptions int
}

func (a *fakeApp) Run(context.Context) error {
	a.ran = true

	a.mu.Lock()
	observer := a.observer
	a.mu.Unlock()
	if observer != nil {
		observer(a.report, a.runErr)
	}
	return a.runErr
}

func (a *fakeApp) ObserveSync(fn service.SyncObserver) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.observer = fn
	if fn != nil {
		a.subscriptions++
	}
}

func (a *fakeApp) observing() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.observer != nil
}

func (a *fakeApp) Close(context.Context) error {
	a.closed = true
	return a.closeErr
}

type testSession struct {
	engine *fakeEngine
	sync   *mock.MockMailboxSyncService
	app    *fakeApp
}

func newTestSession(t *testing.T) *testSession {
	t.Helper()
	return &testSession{
		engine: &fakeEngine{version: ews.Exchange2013SP1},
		sync:   mock.NewMockMailboxSyncService(gomock.NewController(t)),
		app:    &fakeApp{},
	}
}

func (s *testSession) session() *Session {
	return &Session{Engine: s.engine, Sync: s.sync, App: s.app}
}

// notSynced makes ResolveFolder report ref as unknown locally.
func (s *testSession) notSynced(ref string) {
	s.sync.EXPECT().ResolveFolder(gomock.Any(), ref).
		Return("", fmt.Errorf("%w: %s", service.ErrFolderNotSynced, ref))
}

func (s *testSession) resolves(ref, id string) {
	s.sync.EXPECT().ResolveFolder(gomock.Any(), ref).Return(id, nil)
}

func testBuildInfo() models.AppBuildInfo {
	return models.NewAppBuildInfo("1.2.3", "2026-01-01", "abc123")
}

// execute runs the root command against s and returns stdout.
func execute(t *testing.T, s *testSession, stdin io.Reader, args ...string) (string, error) {
	t.Helper()

	open := func(*cobra.Command, *RootOptions) (*Session, error) {
		if s == nil {
			t.Fatal("command unexpectedly opened a session")
		}
		return s.session(), nil
	}

	out := &bytes.Buffer{}
	cmd := NewRootCommand(testBuildInfo(), open)
	cmd.SetOut(out)
	cmd.SetErr(io.Discard)
	if stdin != nil {
		cmd.SetIn(stdin)
	}
	cmd.SetArgs(args)

	err := cmd.Execute()
	return out.String(), err
}
