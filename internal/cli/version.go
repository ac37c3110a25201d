// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cli

import (
	"github.com/spf13/cobra"
)

// VersionResult is the build metadata of the binary.
type VersionResult struct {
	Version string `json:"version"`
	Date    string `json:"date"`
	Commit  string `json:"commit"`
}

func (r VersionResult) renderText(p *printer) {
	p.field("Build version:", r.Version)
	p.field("Build date:", r.Date)
	p.field("Build commit:", r.Commit)
}

// NewVersionCommand creates the version command. It needs no configuration.
func NewVersionCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:           "version",
		Short:         "Print build information",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			info := rootOpts.BuildInfo
			return newFormatter(cmd, rootOpts).Success(VersionResult{
				Version: orNA(info.BuildVersion()),
				Date:    orNA(info.BuildDate()),
				Commit:  orNA(info.BuildCommit()),
			})
		},
	}
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}
