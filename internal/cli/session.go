// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cli

import (
	"context"
	"errors"
	"io"

	"github.com/MKhiriev/go-ews-sync/internal/client"
	"github.com/MKhiriev/go-ews-sync/internal/config"
	"github.com/MKhiriev/go-ews-sync/internal/ews"
	"github.com/MKhiriev/go-ews-sync/internal/logger"
	"github.com/MKhiriev/go-ews-sync/internal/service"
	"github.com/MKhiriev/go-ews-sync/models"
	"github.com/spf13/cobra"
)

// Engine is the part of *ews.Client the commands drive.
type Engine interface {
	Endpoint() string
	ServerVersion() ews.Version
	IsOffice365() bool
	CheckConnectivity(ctx context.Context) error

	GetMessage(ctx context.Context, id string) ([]byte, error)
	CreateMessage(ctx context.Context, folderID string, mime []byte, isDraft, isRead bool) (*models.CreateMessageResult, error)
	SendMessage(ctx context.Context, mime []byte, opts ews.SendOptions) error
	DeleteMessages(ctx context.Context, ids []string) error
	UpdateItems(ctx context.Context, updates []models.ItemUpdate) ([]string, error)
	MarkAsRead(ctx context.Context, ids []string, isRead bool) ([]string, error)
	MarkAllAsRead(ctx context.Context, folderIDs []string, isRead, suppressReadReceipts bool) ([]string, error)
	MarkAsJunk(ctx context.Context, ids []string, isJunk bool, legacyFolderID string) ([]string, error)
	CopyItems(ctx context.Context, destination string, ids []string) ([]string, error)
	MoveItems(ctx context.Context, destination string, ids []string) ([]string, error)

	CreateFolder(ctx context.Context, parentID, name string) (string, error)
	UpdateFolder(ctx context.Context, folderID, name string) error
	DeleteFolders(ctx context.Context, folderIDs []string) error
	CopyFolders(ctx context.Context, destination string, ids []string) ([]string, error)
	MoveFolders(ctx context.Context, destination string, ids []string) ([]string, error)
}

var _ Engine = (*ews.Client)(nil)

// Session is everything a command needs for one mailbox.
type Session struct {
	Engine Engine
	Sync   service.MailboxSyncService
	App    client.Client
}

// Opener creates the session for cmd.
type Opener func(cmd *cobra.Command, opts *RootOptions) (*Session, error)

// OpenSession loads the configuration from the command flags, the environment
// and the config file, and opens the mailbox it describes.
func OpenSession(cmd *cobra.Command, opts *RootOptions) (*Session, error) {
	cfg, err := config.GetClientConfig(cmd.Flags())
	if err != nil {
		return nil, WrapExitError(ExitCommandError, "invalid configuration", err)
	}

	log := newCommandLogger(cfg.Log, opts.Verbose, cmd.ErrOrStderr())

	app, err := client.NewApp(cmd.Context(), cfg, opts.BuildInfo, log)
	if err != nil {
		if errors.Is(err, ews.ErrInvalidEndpoint) {
			return nil, WrapExitError(ExitCommandError, "invalid configuration", err)
		}
		return nil, err
	}

	return &Session{Engine: app.Engine, Sync: app.Services.Sync, App: app}, nil
}

// newCommandLogger writes to the configured log file, or to stderr so that
// stdout only carries command output.
func newCommandLogger(cfg config.ClientLog, verbose bool, stderr io.Writer) *logger.Logger {
	var log *logger.Logger
	if cfg.File != "" {
		log = logger.NewFileLogger("ewsclient", cfg.File)
	} else {
		log = logger.NewWriterLogger("ewsclient", stderr)
	}

	level := cfg.Level
	if verbose {
		level = "debug"
	}
	return log.WithLevel(level)
}

// runWithSession opens a session, runs fn and closes the session. Errors from
// any step are printed through the formatter.
func runWithSession(cmd *cobra.Command, opts *RootOptions, fn func(ctx context.Context, s *Session, out *OutputFormatter) error) error {
	out := newFormatter(cmd, opts)

	open := opts.Open
	if open == nil {
		open = OpenSession
	}

	s, err := open(cmd, opts)
	if err != nil {
		return out.Fail(err)
	}

	ctx := cmd.Context()
	runErr := fn(ctx, s, out)

	var closeErr error
	if s.App != nil {
		closeErr = s.App.Close(ctx)
	}

	switch {
	case runErr != nil:
		if closeErr != nil {
			out.VerboseLog("close session: %v", closeErr)
		}
		return out.Fail(runErr)
	case closeErr != nil:
		return out.Fail(closeErr)
	}
	return nil
}

// resolveFolder maps a folder id, well-known name or display name to a
// folder id using the synced hierarchy. A reference that is not in the local
// store is passed through as a server id.
func resolveFolder(ctx context.Context, s *Session, out *OutputFormatter, ref string) (string, error) {
	id, err := s.Sync.ResolveFolder(ctx, ref)
	if errors.Is(err, service.ErrFolderNotSynced) {
		out.VerboseLog("folder %q is not synced locally, using it as a server id", ref)
		return ref, nil
	}
	return id, err
}

func resolveFolders(ctx context.Context, s *Session, out *OutputFormatter, refs []string) ([]string, error) {
	ids := make([]string, 0, len(refs))
	for _, ref := range refs {
		id, err := resolveFolder(ctx, s, out, ref)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}
