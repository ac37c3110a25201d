// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cli

import (
	"bytes"
	"context"
	"io"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-ews-sync/internal/config"
	"github.com/MKhiriev/go-ews-sync/internal/ewstest"
)

func newConfiguredCommand(t *testing.T, values map[string]string) *cobra.Command {
	t.Helper()

	cmd := &cobra.Command{Use: "test"}
	config.RegisterFlags(cmd.Flags())
	for name, value := range values {
		require.NoError(t, cmd.Flags().Set(name, value))
	}
	cmd.SetContext(context.Background())
	cmd.SetErr(io.Discard)
	return cmd
}

// ── OpenSession ──

func TestOpenSession_InvalidConfiguration(t *testing.T) {
	cmd := newConfiguredCommand(t, map[string]string{
		config.FlagDSN: filepath.Join(t.TempDir(), "sync.db"),
	})

	s, err := OpenSession(cmd, &RootOptions{BuildInfo: testBuildInfo()})
	require.Error(t, err)
	assert.Nil(t, s)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.ErrorIs(t, err, config.ErrInvalidEWSConfigs)
}

func TestOpenSession_InvalidEndpointIsUsageError(t *testing.T) {
	cmd := newConfiguredCommand(t, map[string]string{
		config.FlagEndpoint: "ftp://mail.example.com/EWS/Exchange.asmx",
		config.FlagUsername: "alice",
		config.FlagDSN:      filepath.Join(t.TempDir(), "sync.db"),
	})

	_, err := OpenSession(cmd, &RootOptions{BuildInfo: testBuildInfo()})
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}

func TestOpenSession_OpensMailbox(t *testing.T) {
	srv := ewstest.NewServer(t)
	srv.On("GetFolder", ewstest.Reply(ewstest.Envelope("GetFolder", "Exchange2013",
		ewstest.Success("GetFolder", ewstest.Folders(ewstest.FolderRef("root"))))))

	cmd := newConfiguredCommand(t, map[string]string{
		config.FlagEndpoint: srv.URL(),
		config.FlagUsername: "alice",
		config.FlagPassword: "secret",
		config.FlagDSN:      filepath.Join(t.TempDir(), "sync.db"),
	})

	s, err := OpenSession(cmd, &RootOptions{BuildInfo: testBuildInfo()})
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.App.Close(context.Background()) })

	require.NoError(t, s.Engine.CheckConnectivity(context.Background()))
	assert.Equal(t, "Exchange2013", s.Engine.ServerVersion().String())
	assert.Equal(t, 1, srv.Count("GetFolder"))
}

// ── newCommandLogger ──

func TestNewCommandLogger_WritesToStderr(t *testing.T) {
	buf := &bytes.Buffer{}
	log := newCommandLogger(config.ClientLog{Level: "info"}, false, buf)

	log.Debug().Msg("hidden")
	log.Info().Msg("shown")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
	assert.Contains(t, buf.String(), `"role":"ewsclient"`)
}

func TestNewCommandLogger_VerboseEnablesDebug(t *testing.T) {
	buf := &bytes.Buffer{}
	log := newCommandLogger(config.ClientLog{Level: "error"}, true, buf)

	log.Debug().Msg("debug entry")
	assert.Contains(t, buf.String(), "debug entry")
}

func TestNewCommandLogger_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "client.log")
	stderr := &bytes.Buffer{}

	log := newCommandLogger(config.ClientLog{Level: "info", File: path}, false, stderr)
	log.Info().Msg("to file")

	assert.Empty(t, stderr.String())
	assert.FileExists(t, path)
}
