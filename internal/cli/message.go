// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cli

import (
	"context"
	"fmt"
	"io"
	"net/mail"
	"os"
	"strings"

	"github.com/MKhiriev/go-ews-sync/internal/ews"
	"github.com/MKhiriev/go-ews-sync/models"
	"github.com/spf13/cobra"
)

// MessageResult carries the MIME content of one message.
type MessageResult struct {
	ID   string `json:"id"`
	MIME string `json:"mime,omitempty"`
	// Path is set when the content was written to a file.
	Path string `json:"path,omitempty"`
}

func (r MessageResult) renderText(p *printer) {
	if r.Path != "" {
		p.field("Saved to:", r.Path)
		return
	}
	fmt.Fprint(p.w, r.MIME)
}

// CreatedResult identifies an entity the server created.
type CreatedResult struct {
	Kind string `json:"kind"`
	ID   string `json:"id"`
}

func (r CreatedResult) renderText(p *printer) {
	p.heading(p.good.Render("✓") + " " + r.Kind + " created")
	p.field("Id:", r.ID)
}

// IDsResult lists the ids an operation returned.
type IDsResult struct {
	Action    string   `json:"action"`
	Requested int      `json:"requested"`
	IDs       []string `json:"ids"`
}

func (r IDsResult) renderText(p *printer) {
	status := p.good.Render("✓")
	if len(r.IDs) < r.Requested {
		status = p.bad.Render("!")
	}
	p.heading(fmt.Sprintf("%s %s %d of %d", status, r.Action, len(r.IDs), r.Requested))
	for _, id := range r.IDs {
		p.item(id)
	}
}

// DoneResult reports an operation without a payload.
type DoneResult struct {
	Action string `json:"action"`
	Count  int    `json:"count"`
}

func (r DoneResult) renderText(p *printer) {
	p.heading(fmt.Sprintf("%s %s %d", p.good.Render("✓"), r.Action, r.Count))
}

// NewMessageCommand creates the message command and its subcommands.
func NewMessageCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "message",
		Aliases: []string{"msg"},
		Short:   "Fetch, store, send and modify messages",
	}

	cmd.AddCommand(newMessageGetCommand(rootOpts))
	cmd.AddCommand(newMessageCreateCommand(rootOpts))
	cmd.AddCommand(newMessageSendCommand(rootOpts))
	cmd.AddCommand(newMessageDeleteCommand(rootOpts))
	cmd.AddCommand(newMessageUpdateCommand(rootOpts))
	cmd.AddCommand(newMessageMarkReadCommand(rootOpts))
	cmd.AddCommand(newMessageMarkAllReadCommand(rootOpts))
	cmd.AddCommand(newMessageJunkCommand(rootOpts))
	cmd.AddCommand(newMessageTransferCommand(rootOpts, "copy", "copied", Engine.CopyItems))
	cmd.AddCommand(newMessageTransferCommand(rootOpts, "move", "moved", Engine.MoveItems))

	return cmd
}

func newMessageGetCommand(rootOpts *RootOptions) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:           "get <id>",
		Short:         "Print the MIME content of a message",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWithSession(cmd, rootOpts, func(ctx context.Context, s *Session, out *OutputFormatter) error {
				mime, err := s.Engine.GetMessage(ctx, args[0])
				if err != nil {
					return err
				}

				if output == "" {
					return out.Success(MessageResult{ID: args[0], MIME: string(mime)})
				}
				if err = os.WriteFile(output, mime, 0o600); err != nil {
					return fmt.Errorf("write message: %w", err)
				}
				return out.Success(MessageResult{ID: args[0], Path: output})
			})
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "write the MIME content to this file")
	return cmd
}

func newMessageCreateCommand(rootOpts *RootOptions) *cobra.Command {
	var (
		folder  string
		isDraft bool
		isRead  bool
	)

	cmd := &cobra.Command{
		Use:   "create <file|->",
		Short: "Store a MIME message in a folder without sending it",
		Args:  cobra.ExactArgs(1),
		Example: `  ewsclient message create --folder drafts --draft reply.eml
  cat note.eml | ewsclient message create --folder inbox --read -`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			mime, err := readMIME(cmd, args[0])
			if err != nil {
				return newFormatter(cmd, rootOpts).Fail(err)
			}

			return runWithSession(cmd, rootOpts, func(ctx context.Context, s *Session, out *OutputFormatter) error {
				folderID, err := resolveFolder(ctx, s, out, folder)
				if err != nil {
					return err
				}

				res, err := s.Engine.CreateMessage(ctx, folderID, mime, isDraft, isRead)
				if err != nil {
					return err
				}
				return out.Success(CreatedResult{Kind: "message", ID: res.ItemID})
			})
		},
	}

	cmd.Flags().StringVar(&folder, "folder", "drafts", "destination folder (id, well-known or display name)")
	cmd.Flags().BoolVar(&isDraft, "draft", false, "flag the message as an unsent draft")
	cmd.Flags().BoolVar(&isRead, "read", false, "flag the message as read")
	return cmd
}

func newMessageSendCommand(rootOpts *RootOptions) *cobra.Command {
	var (
		bcc       []string
		messageID string
		dsn       bool
	)

	cmd := &cobra.Command{
		Use:           "send <file|->",
		Short:         "Send a MIME message",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			formatter := newFormatter(cmd, rootOpts)

			mime, err := readMIME(cmd, args[0])
			if err != nil {
				return formatter.Fail(err)
			}
			recipients, err := parseMailboxes(bcc)
			if err != nil {
				return formatter.Fail(err)
			}

			return runWithSession(cmd, rootOpts, func(ctx context.Context, s *Session, out *OutputFormatter) error {
				err := s.Engine.SendMessage(ctx, mime, ews.SendOptions{
					InternetMessageID: messageID,
					RequestDSN:        dsn,
					Bcc:               recipients,
				})
				if err != nil {
					return err
				}
				return out.Success(DoneResult{Action: "sent", Count: 1})
			})
		},
	}

	cmd.Flags().StringSliceVar(&bcc, "bcc", nil, "blind carbon copy recipients")
	cmd.Flags().StringVar(&messageID, "message-id", "", "Internet message id to stamp on the message")
	cmd.Flags().BoolVar(&dsn, "dsn", false, "request a delivery status notification")
	return cmd
}

func newMessageDeleteCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:           "delete <id>...",
		Short:         "Permanently delete messages",
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWithSession(cmd, rootOpts, func(ctx context.Context, s *Session, out *OutputFormatter) error {
				if err := s.Engine.DeleteMessages(ctx, args); err != nil {
					return err
				}
				return out.Success(DoneResult{Action: "deleted", Count: len(args)})
			})
		},
	}
}

func newMessageUpdateCommand(rootOpts *RootOptions) *cobra.Command {
	var (
		subject string
		isRead  bool
	)

	cmd := &cobra.Command{
		Use:           "update <id>...",
		Short:         "Overwrite the subject or the read flag of messages",
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			var template models.ItemUpdate
			if cmd.Flags().Changed("subject") {
				template.Subject = &subject
			}
			if cmd.Flags().Changed("read") {
				template.IsRead = &isRead
			}
			if template.Subject == nil && template.IsRead == nil {
				return newFormatter(cmd, rootOpts).Fail(NewExitError(ExitCommandError, "nothing to update: set --subject or --read"))
			}

			updates := make([]models.ItemUpdate, 0, len(args))
			for _, id := range args {
				u := template
				u.ID = id
				updates = append(updates, u)
			}

			return runWithSession(cmd, rootOpts, func(ctx context.Context, s *Session, out *OutputFormatter) error {
				ids, err := s.Engine.UpdateItems(ctx, updates)
				if err != nil {
					return err
				}
				return out.Success(IDsResult{Action: "updated", Requested: len(args), IDs: ids})
			})
		},
	}

	cmd.Flags().StringVar(&subject, "subject", "", "new subject")
	cmd.Flags().BoolVar(&isRead, "read", false, "new read flag")
	return cmd
}

func newMessageMarkReadCommand(rootOpts *RootOptions) *cobra.Command {
	var unread bool

	cmd := &cobra.Command{
		Use:           "mark-read <id>...",
		Short:         "Mark messages as read",
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWithSession(cmd, rootOpts, func(ctx context.Context, s *Session, out *OutputFormatter) error {
				ids, err := s.Engine.MarkAsRead(ctx, args, !unread)
				if err != nil {
					return err
				}
				return out.Success(IDsResult{Action: readAction(!unread), Requested: len(args), IDs: ids})
			})
		},
	}

	cmd.Flags().BoolVar(&unread, "unread", false, "mark as unread instead")
	return cmd
}

func newMessageMarkAllReadCommand(rootOpts *RootOptions) *cobra.Command {
	var (
		unread   bool
		suppress bool
	)

	cmd := &cobra.Command{
		Use:           "mark-all-read <folder>...",
		Short:         "Mark every message of the folders as read",
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWithSession(cmd, rootOpts, func(ctx context.Context, s *Session, out *OutputFormatter) error {
				folderIDs, err := resolveFolders(ctx, s, out, args)
				if err != nil {
					return err
				}

				ids, err := s.Engine.MarkAllAsRead(ctx, folderIDs, !unread, suppress)
				if err != nil {
					return err
				}
				return out.Success(IDsResult{Action: readAction(!unread) + " folders", Requested: len(args), IDs: ids})
			})
		},
	}

	cmd.Flags().BoolVar(&unread, "unread", false, "mark as unread instead")
	cmd.Flags().BoolVar(&suppress, "suppress-receipts", false, "do not send read receipts")
	return cmd
}

func newMessageJunkCommand(rootOpts *RootOptions) *cobra.Command {
	var (
		notJunk      bool
		legacyFolder string
	)

	cmd := &cobra.Command{
		Use:   "junk <id>...",
		Short: "Mark messages as junk and move them to the junk folder",
		Long: `Mark messages as junk, or as not junk with --not-junk.

Servers older than Exchange 2013 cannot classify messages; the messages are
moved to --legacy-folder instead, which defaults to junkemail (or inbox with
--not-junk).`,
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWithSession(cmd, rootOpts, func(ctx context.Context, s *Session, out *OutputFormatter) error {
				ref := legacyFolder
				if ref == "" {
					ref = "junkemail"
					if notJunk {
						ref = "inbox"
					}
				}
				folderID, err := resolveFolder(ctx, s, out, ref)
				if err != nil {
					return err
				}

				ids, err := s.Engine.MarkAsJunk(ctx, args, !notJunk, folderID)
				if err != nil {
					return err
				}
				action := "marked as junk"
				if notJunk {
					action = "marked as not junk"
				}
				return out.Success(IDsResult{Action: action, Requested: len(args), IDs: ids})
			})
		},
	}

	cmd.Flags().BoolVar(&notJunk, "not-junk", false, "mark as not junk instead")
	cmd.Flags().StringVar(&legacyFolder, "legacy-folder", "", "destination folder on servers without junk classification")
	return cmd
}

// transferFunc is a copy or move of items or folders.
type transferFunc func(e Engine, ctx context.Context, destination string, ids []string) ([]string, error)

func newMessageTransferCommand(rootOpts *RootOptions, verb, past string, transfer transferFunc) *cobra.Command {
	return newTransferCommand(rootOpts, verb, past, "message", transfer)
}

// newTransferCommand builds a copy or move command for messages or folders.
func newTransferCommand(rootOpts *RootOptions, verb, past, noun string, transfer transferFunc) *cobra.Command {
	var destination string

	cmd := &cobra.Command{
		Use:           verb + " --to <folder> <id>...",
		Short:         fmt.Sprintf("%s %ss to another folder", capitalize(verb), noun),
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWithSession(cmd, rootOpts, func(ctx context.Context, s *Session, out *OutputFormatter) error {
				destID, err := resolveFolder(ctx, s, out, destination)
				if err != nil {
					return err
				}

				ids, err := transfer(s.Engine, ctx, destID, args)
				if err != nil {
					return err
				}
				return out.Success(IDsResult{Action: past, Requested: len(args), IDs: ids})
			})
		},
	}

	cmd.Flags().StringVar(&destination, "to", "", "destination folder (id, well-known or display name)")
	_ = cmd.MarkFlagRequired("to")
	return cmd
}

func readAction(isRead bool) string {
	if isRead {
		return "marked as read"
	}
	return "marked as unread"
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// readMIME reads the message from path, or from stdin when path is "-".
func readMIME(cmd *cobra.Command, path string) ([]byte, error) {
	var (
		mime []byte
		err  error
	)
	if path == "-" {
		mime, err = io.ReadAll(cmd.InOrStdin())
	} else {
		mime, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, WrapExitError(ExitCommandError, "read message", err)
	}
	if len(mime) == 0 {
		return nil, NewExitError(ExitCommandError, "message is empty")
	}
	return mime, nil
}

func parseMailboxes(addresses []string) ([]models.Mailbox, error) {
	out := make([]models.Mailbox, 0, len(addresses))
	for _, raw := range addresses {
		addr, err := mail.ParseAddress(raw)
		if err != nil {
			return nil, WrapExitError(ExitCommandError, fmt.Sprintf("invalid address %q", raw), err)
		}
		out = append(out, models.Mailbox{Name: addr.Name, Address: addr.Address})
	}
	return out, nil
}
