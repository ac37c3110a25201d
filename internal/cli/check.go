// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cli

import (
	"context"

	"github.com/spf13/cobra"
)

// CheckResult is the outcome of a connectivity probe.
type CheckResult struct {
	Endpoint      string `json:"endpoint"`
	ServerVersion string `json:"server_version"`
	Office365     bool   `json:"office365"`
}

func (r CheckResult) renderText(p *printer) {
	p.heading(p.good.Render("✓") + " connected")
	p.field("Endpoint:", r.Endpoint)
	p.field("Server version:", r.ServerVersion)
	p.field("Office 365:", r.Office365)
}

// NewCheckCommand creates the check command.
func NewCheckCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Verify that the endpoint is reachable and accepts the credentials",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWithSession(cmd, rootOpts, func(ctx context.Context, s *Session, out *OutputFormatter) error {
				if err := s.Engine.CheckConnectivity(ctx); err != nil {
					return err
				}
				return out.Success(CheckResult{
					Endpoint:      s.Engine.Endpoint(),
					ServerVersion: s.Engine.ServerVersion().String(),
					Office365:     s.Engine.IsOffice365(),
				})
			})
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}
}
