// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cli

import (
	"context"

	"github.com/spf13/cobra"
)

// NewFolderCommand creates the folder command and its subcommands.
func NewFolderCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "folder",
		Short: "Create, rename, delete and reorganize folders",
	}

	cmd.AddCommand(newFolderCreateCommand(rootOpts))
	cmd.AddCommand(newFolderRenameCommand(rootOpts))
	cmd.AddCommand(newFolderDeleteCommand(rootOpts))
	cmd.AddCommand(newTransferCommand(rootOpts, "copy", "copied", "folder", Engine.CopyFolders))
	cmd.AddCommand(newTransferCommand(rootOpts, "move", "moved", "folder", Engine.MoveFolders))

	return cmd
}

func newFolderCreateCommand(rootOpts *RootOptions) *cobra.Command {
	var parent string

	cmd := &cobra.Command{
		Use:           "create <name>",
		Short:         "Create a mail folder",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWithSession(cmd, rootOpts, func(ctx context.Context, s *Session, out *OutputFormatter) error {
				parentID, err := resolveFolder(ctx, s, out, parent)
				if err != nil {
					return err
				}

				id, err := s.Engine.CreateFolder(ctx, parentID, args[0])
				if err != nil {
					return err
				}
				return out.Success(CreatedResult{Kind: "folder", ID: id})
			})
		},
	}

	cmd.Flags().StringVar(&parent, "parent", "msgfolderroot", "parent folder (id, well-known or display name)")
	return cmd
}

func newFolderRenameCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:           "rename <folder> <name>",
		Short:         "Rename a folder",
		Args:          cobra.ExactArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWithSession(cmd, rootOpts, func(ctx context.Context, s *Session, out *OutputFormatter) error {
				folderID, err := resolveFolder(ctx, s, out, args[0])
				if err != nil {
					return err
				}

				if err = s.Engine.UpdateFolder(ctx, folderID, args[1]); err != nil {
					return err
				}
				return out.Success(DoneResult{Action: "renamed", Count: 1})
			})
		},
	}
}

func newFolderDeleteCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:           "delete <folder>...",
		Short:         "Permanently delete folders",
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWithSession(cmd, rootOpts, func(ctx context.Context, s *Session, out *OutputFormatter) error {
				folderIDs, err := resolveFolders(ctx, s, out, args)
				if err != nil {
					return err
				}

				if err = s.Engine.DeleteFolders(ctx, folderIDs); err != nil {
					return err
				}
				return out.Success(DoneResult{Action: "deleted", Count: len(folderIDs)})
			})
		},
	}
}
