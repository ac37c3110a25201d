// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cli

import (
	"context"
	"fmt"
	"maps"
	"slices"

	"github.com/MKhiriev/go-ews-sync/models"
	"github.com/spf13/cobra"
)

// SummaryView wraps a sync summary for output.
type SummaryView struct {
	*models.SyncSummary
}

func (v SummaryView) renderText(p *printer) {
	if v.FolderID == "" {
		p.heading("Folder hierarchy")
	} else {
		p.heading("Folder " + v.FolderID)
	}
	renderSummary(p, *v.SyncSummary)
}

func renderSummary(p *printer, s models.SyncSummary) {
	p.field("Created:", s.Created)
	p.field("Updated:", s.Updated)
	p.field("Deleted:", s.Deleted)
	if s.FolderID != "" {
		p.field("Read flag changes:", s.ReadFlagChanges)
		p.field("Rounds:", s.Rounds)
	}
	if s.FirstSync {
		p.field("First sync:", true)
	}
}

// ReportView wraps a full mailbox sync report for output.
type ReportView struct {
	*models.SyncReport
}

func (v ReportView) renderText(p *printer) {
	p.heading("Folder hierarchy")
	renderSummary(p, v.Folders)

	for _, s := range v.Messages {
		p.heading("Folder " + s.FolderID)
		renderSummary(p, s)
	}

	if len(v.Failed) == 0 {
		return
	}
	p.heading(p.bad.Render(fmt.Sprintf("%d folder(s) failed", len(v.Failed))))
	for _, id := range slices.Sorted(maps.Keys(v.Failed)) {
		p.item(id + ": " + v.Failed[id])
	}
}

// NewSyncCommand creates the sync command and its subcommands.
func NewSyncCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sync",
		Short: "Synchronize the mailbox into the local database",
	}

	cmd.AddCommand(&cobra.Command{
		Use:           "folders",
		Short:         "Synchronize the folder hierarchy",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWithSession(cmd, rootOpts, func(ctx context.Context, s *Session, out *OutputFormatter) error {
				summary, err := s.Sync.SyncFolders(ctx)
				if err != nil {
					return err
				}
				return out.Success(SummaryView{summary})
			})
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "messages <folder>",
		Short: "Synchronize the messages of one folder",
		Long: `Synchronize the messages of one folder until caught up.

The folder is a folder id, a well-known name (inbox, sentitems, ...) or a
display name from the synced hierarchy. Run "sync folders" first.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWithSession(cmd, rootOpts, func(ctx context.Context, s *Session, out *OutputFormatter) error {
				folderID, err := s.Sync.ResolveFolder(ctx, args[0])
				if err != nil {
					return err
				}
				out.VerboseLog("resolved %q to folder %s", args[0], folderID)

				summary, err := s.Sync.SyncMessages(ctx, folderID)
				if err != nil {
					return err
				}
				return out.Success(SummaryView{summary})
			})
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:           "all",
		Short:         "Synchronize the folder hierarchy and the messages of every folder",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWithSession(cmd, rootOpts, func(ctx context.Context, s *Session, out *OutputFormatter) error {
				report, err := s.Sync.SyncAll(ctx)
				if err != nil && (report == nil || len(report.Failed) == 0) {
					return err
				}
				if outErr := out.Success(ReportView{report}); outErr != nil {
					return outErr
				}
				if err != nil {
					return &reportedError{WrapExitError(ExitFailure, "some folders failed to sync", err)}
				}
				return nil
			})
		},
	})

	return cmd
}
