// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cli

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

// NewWatchCommand creates the watch command.
func NewWatchCommand(rootOpts *RootOptions) *cobra.Command {
	var live bool

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Keep the local database in sync until interrupted",
		Long: `Run a full mailbox sync immediately and then every --sync-interval,
until SIGINT or SIGTERM is received.

With --live and text output a status screen shows the outcome of every
sync; press q to stop.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWithSession(cmd, rootOpts, func(ctx context.Context, s *Session, out *OutputFormatter) error {
				ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
				defer stop()

				out.VerboseLog("watching %s", s.Engine.Endpoint())
				if live && out.Format != "json" {
					return runLiveWatch(ctx, cmd, s)
				}
				return s.App.Run(ctx)
			})
		},
	}

	cmd.Flags().BoolVar(&live, "live", false, "Show a live status screen")
	return cmd
}
