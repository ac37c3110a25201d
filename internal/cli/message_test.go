// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cli

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-ews-sync/internal/ews"
	"github.com/MKhiriev/go-ews-sync/models"
)

const testMIME = "Subject: hello\r\n\r\nbody\r\n"

func writeMIME(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "message.eml")
	require.NoError(t, os.WriteFile(path, []byte(testMIME), 0o600))
	return path
}

// ── get ──

func TestMessageGet_PrintsMIME(t *testing.T) {
	s := newTestSession(t)
	s.engine.mime = []byte(testMIME)

	out, err := execute(t, s, nil, "message", "get", "item-1")
	require.NoError(t, err)

	assert.Equal(t, testMIME, out)
	assert.Equal(t, []string{"item-1"}, s.engine.ids)
}

func TestMessageGet_WritesFile(t *testing.T) {
	s := newTestSession(t)
	s.engine.mime = []byte(testMIME)
	path := filepath.Join(t.TempDir(), "out.eml")

	out, err := execute(t, s, nil, "message", "get", "item-1", "-o", path)
	require.NoError(t, err)
	assert.Contains(t, out, path)

	written, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, testMIME, string(written))
}

func TestMessageGet_ResponseError(t *testing.T) {
	s := newTestSession(t)
	s.engine.err = &ews.ResponseError{Operation: "GetItem", Code: "ErrorItemNotFound", Message: "gone", Index: 0}

	out, err := execute(t, s, nil, "--format", "json", "message", "get", "item-1")
	require.Error(t, err)

	resp := decodeResponse(t, out)
	require.NotNil(t, resp.Error)
	assert.Equal(t, ErrCodeResponse, resp.Error.Code)
	assert.Contains(t, resp.Error.Message, "ErrorItemNotFound")
}

// ── create ──

func TestMessageCreate_FromStdin(t *testing.T) {
	s := newTestSession(t)
	s.resolves("inbox", "f-inbox")

	out, err := execute(t, s, strings.NewReader(testMIME), "message", "create", "--folder", "inbox", "--read", "-")
	require.NoError(t, err)

	assert.Contains(t, out, "new-item")
	assert.Equal(t, "f-inbox", s.engine.folderID)
	assert.Equal(t, testMIME, string(s.engine.sentMIME))
	assert.True(t, s.engine.isRead)
	assert.False(t, s.engine.isDraft)
}

func TestMessageCreate_DefaultsToDrafts(t *testing.T) {
	s := newTestSession(t)
	s.notSynced("drafts")

	_, err := execute(t, s, nil, "message", "create", "--draft", writeMIME(t))
	require.NoError(t, err)

	assert.Equal(t, "drafts", s.engine.folderID)
	assert.True(t, s.engine.isDraft)
}

func TestMessageCreate_EmptyInput(t *testing.T) {
	_, err := execute(t, nil, strings.NewReader(""), "message", "create", "-")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}

func TestMessageCreate_MissingFile(t *testing.T) {
	_, err := execute(t, nil, nil, "message", "create", filepath.Join(t.TempDir(), "absent.eml"))
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}

// ── send ──

func TestMessageSend_Options(t *testing.T) {
	s := newTestSession(t)

	_, err := execute(t, s, nil, "message", "send",
		"--bcc", "Bob <bob@example.com>", "--bcc", "carol@example.com",
		"--message-id", "<id@example.com>", "--dsn", writeMIME(t))
	require.NoError(t, err)

	assert.Equal(t, ews.SendOptions{
		InternetMessageID: "<id@example.com>",
		RequestDSN:        true,
		Bcc: []models.Mailbox{
			{Name: "Bob", Address: "bob@example.com"},
			{Address: "carol@example.com"},
		},
	}, s.engine.send)
	assert.Equal(t, testMIME, string(s.engine.sentMIME))
}

func TestMessageSend_InvalidBcc(t *testing.T) {
	_, err := execute(t, nil, nil, "message", "send", "--bcc", "not an address", writeMIME(t))
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}

// ── delete / update ──

func TestMessageDelete(t *testing.T) {
	s := newTestSession(t)

	out, err := execute(t, s, nil, "message", "delete", "a", "b")
	require.NoError(t, err)

	assert.Equal(t, []string{"a", "b"}, s.engine.ids)
	assert.Contains(t, out, "deleted 2")
}

func TestMessageUpdate_RequiresAProperty(t *testing.T) {
	_, err := execute(t, nil, nil, "message", "update", "a")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}

func TestMessageUpdate_Subject(t *testing.T) {
	s := newTestSession(t)

	_, err := execute(t, s, nil, "message", "update", "--subject", "re: plans", "a", "b")
	require.NoError(t, err)

	require.Len(t, s.engine.updates, 2)
	for i, id := range []string{"a", "b"} {
		u := s.engine.updates[i]
		assert.Equal(t, id, u.ID)
		require.NotNil(t, u.Subject)
		assert.Equal(t, "re: plans", *u.Subject)
		assert.Nil(t, u.IsRead)
	}
}

func TestMessageUpdate_ReadFalse(t *testing.T) {
	s := newTestSession(t)

	_, err := execute(t, s, nil, "message", "update", "--read=false", "a")
	require.NoError(t, err)

	require.Len(t, s.engine.updates, 1)
	require.NotNil(t, s.engine.updates[0].IsRead)
	assert.False(t, *s.engine.updates[0].IsRead)
}

// ── read flags ──

func TestMessageMarkRead_Unread(t *testing.T) {
	s := newTestSession(t)

	out, err := execute(t, s, nil, "message", "mark-read", "--unread", "a")
	require.NoError(t, err)

	assert.False(t, s.engine.isRead)
	assert.Contains(t, out, "marked as unread 1 of 1")
}

func TestMessageMarkRead_PartialResult(t *testing.T) {
	s := newTestSession(t)
	s.engine.returnIDs = []string{"a"}

	out, err := execute(t, s, nil, "--format", "json", "message", "mark-read", "a", "b")
	require.NoError(t, err)

	data := dataMap(t, decodeResponse(t, out))
	assert.EqualValues(t, 2, data["requested"])
	assert.Equal(t, []any{"a"}, data["ids"])
}

func TestMessageMarkAllRead_ResolvesFolders(t *testing.T) {
	s := newTestSession(t)
	s.resolves("inbox", "f-inbox")
	s.notSynced("raw-id")

	_, err := execute(t, s, nil, "message", "mark-all-read", "--suppress-receipts", "inbox", "raw-id")
	require.NoError(t, err)

	assert.Equal(t, []string{"f-inbox", "raw-id"}, s.engine.ids)
	assert.True(t, s.engine.isRead)
	assert.True(t, s.engine.suppress)
}

// ── junk ──

func TestMessageJunk_DefaultLegacyFolder(t *testing.T) {
	s := newTestSession(t)
	s.resolves("junkemail", "f-junk")

	_, err := execute(t, s, nil, "message", "junk", "a")
	require.NoError(t, err)

	assert.True(t, s.engine.isJunk)
	assert.Equal(t, "f-junk", s.engine.destination)
}

func TestMessageJunk_NotJunkUsesInbox(t *testing.T) {
	s := newTestSession(t)
	s.resolves("inbox", "f-inbox")

	_, err := execute(t, s, nil, "message", "junk", "--not-junk", "a")
	require.NoError(t, err)

	assert.False(t, s.engine.isJunk)
	assert.Equal(t, "f-inbox", s.engine.destination)
}

// ── copy / move ──

func TestMessageMove(t *testing.T) {
	s := newTestSession(t)
	s.resolves("Archive", "f-archive")
	s.engine.returnIDs = []string{"a2", "b2"}

	out, err := execute(t, s, nil, "message", "move", "--to", "Archive", "a", "b")
	require.NoError(t, err)

	assert.Equal(t, []string{"MoveItems"}, s.engine.calls)
	assert.Equal(t, "f-archive", s.engine.destination)
	assert.Contains(t, out, "moved 2 of 2")
	assert.Contains(t, out, "a2")
}

func TestMessageCopy(t *testing.T) {
	s := newTestSession(t)
	s.resolves("Archive", "f-archive")

	_, err := execute(t, s, nil, "message", "copy", "--to", "Archive", "a")
	require.NoError(t, err)
	assert.Equal(t, []string{"CopyItems"}, s.engine.calls)
}

func TestMessageMove_RequiresDestination(t *testing.T) {
	_, err := execute(t, nil, nil, "message", "move", "a")
	require.Error(t, err)
}
