// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package cli implements the ewsclient command line.
//
// Every command opens a [Session] for one mailbox through an [Opener], runs
// one engine or service call and prints the result as styled text or as a
// JSON envelope (see [CLIResponse]).
package cli

import (
	"fmt"
	"slices"

	"github.com/MKhiriev/go-ews-sync/internal/config"
	"github.com/MKhiriev/go-ews-sync/models"
	"github.com/spf13/cobra"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Verbose bool
	Format  string // "json" | "text"

	BuildInfo models.AppBuildInfo
	// Open builds the session a command runs against. Nil means OpenSession.
	Open Opener
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json"}

// NewRootCommand creates the root command. A nil open uses OpenSession.
func NewRootCommand(info models.AppBuildInfo, open Opener) *cobra.Command {
	opts := &RootOptions{BuildInfo: info, Open: open}

	cmd := &cobra.Command{
		Use:   "ewsclient",
		Short: "Exchange Web Services mail client",
		Long: `Synchronizes an Exchange mailbox over EWS into a local database and
runs mail operations (fetch, send, move, flag) against the server.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !isValidFormat(opts.Format) {
				return newFormatter(cmd, opts).Fail(NewExitError(ExitCommandError,
					fmt.Sprintf("invalid format %q: must be one of %v", opts.Format, ValidFormats)))
			}
			return nil
		},
	}

	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (json|text)")
	config.RegisterFlags(cmd.PersistentFlags())

	cmd.AddCommand(NewCheckCommand(opts))
	cmd.AddCommand(NewSyncCommand(opts))
	cmd.AddCommand(NewWatchCommand(opts))
	cmd.AddCommand(NewMessageCommand(opts))
	cmd.AddCommand(NewFolderCommand(opts))
	cmd.AddCommand(NewVersionCommand(opts))

	return cmd
}

func isValidFormat(format string) bool {
	return slices.Contains(ValidFormats, format)
}
