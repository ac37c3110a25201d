// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/MKhiriev/go-ews-sync/internal/ews"
	"github.com/MKhiriev/go-ews-sync/internal/service"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

// Exit codes for CLI commands.
const (
	ExitSuccess      = 0 // Successful execution
	ExitFailure      = 1 // The server or the local store reported a failure
	ExitCommandError = 2 // Invalid arguments or configuration
	ExitAuthFailure  = 3 // The server rejected the credentials
)

// Error codes reported in CLIError.Code.
const (
	ErrCodeGeneric    = "error"
	ErrCodeUsage      = "usage"
	ErrCodeAuth       = "auth"
	ErrCodeThrottle   = "throttle"
	ErrCodeResponse   = "response"
	ErrCodeProtocol   = "protocol"
	ErrCodeHTTP       = "http"
	ErrCodeMissingID  = "missing_id"
	ErrCodeProcessing = "processing"
	ErrCodeNotSynced  = "not_synced"
	ErrCodeStalled    = "stalled"
	ErrCodeCanceled   = "canceled"
)

// ExitError represents an error with a specific exit code.
type ExitError struct {
	Code    int    // Exit code
	Message string // Error message
	Err     error  // Underlying error (optional)
}

func (e *ExitError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

// NewExitError creates a new ExitError with the given code and message.
func NewExitError(code int, message string) *ExitError {
	return &ExitError{Code: code, Message: message}
}

// WrapExitError wraps an existing error with an exit code.
func WrapExitError(code int, message string, err error) *ExitError {
	return &ExitError{Code: code, Message: message, Err: err}
}

// GetExitCode extracts the exit code from an error. Nil maps to ExitSuccess,
// any error that is not an ExitError to ExitFailure.
func GetExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return ExitFailure
}

// CLIResponse is the JSON envelope of every command output.
type CLIResponse struct {
	Status string    `json:"status"` // "ok" or "error"
	Data   any       `json:"data,omitempty"`
	Error  *CLIError `json:"error,omitempty"`
}

// CLIError is the error structure for CLI responses.
type CLIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}

// textRenderer is implemented by results with a human-readable layout.
type textRenderer interface {
	renderText(p *printer)
}

// OutputFormatter handles JSON vs text output for CLI commands.
type OutputFormatter struct {
	Format    string
	Writer    io.Writer
	ErrWriter io.Writer // verbose output, kept apart so JSON stays parseable
	Verbose   bool
}

func newFormatter(cmd *cobra.Command, opts *RootOptions) *OutputFormatter {
	return &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}
}

// Success outputs a successful result in the configured format.
func (f *OutputFormatter) Success(data any) error {
	if f.Format == "json" {
		return json.NewEncoder(f.Writer).Encode(CLIResponse{Status: "ok", Data: data})
	}

	if r, ok := data.(textRenderer); ok {
		r.renderText(newPrinter(f.Writer))
		return nil
	}
	_, err := fmt.Fprintln(f.Writer, data)
	return err
}

// Error outputs an error in the configured format.
func (f *OutputFormatter) Error(code, message string, details any) error {
	if f.Format == "json" {
		return json.NewEncoder(f.Writer).Encode(CLIResponse{
			Status: "error",
			Error:  &CLIError{Code: code, Message: message, Details: details},
		})
	}

	p := newPrinter(f.Writer)
	fmt.Fprintf(f.Writer, "%s %s\n", p.bad.Render("Error ["+code+"]:"), message)
	if f.Verbose && details != nil {
		fmt.Fprintf(f.Writer, "Details: %v\n", details)
	}
	return nil
}

// Fail prints err and returns it as an *ExitError carrying the exit code
// that matches its class.
func (f *OutputFormatter) Fail(err error) error {
	var reported *reportedError
	if errors.As(err, &reported) {
		return reported.ExitError
	}

	code, exit := classifyError(err)
	_ = f.Error(code, err.Error(), nil)

	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr
	}
	return WrapExitError(exit, code, err)
}

// reportedError is an outcome the command already printed as its result.
type reportedError struct {
	*ExitError
}

func (e *reportedError) Unwrap() error { return e.ExitError }

// VerboseLog outputs a message only if verbose mode is enabled.
func (f *OutputFormatter) VerboseLog(format string, args ...any) {
	if !f.Verbose {
		return
	}
	w := f.ErrWriter
	if w == nil {
		w = f.Writer
	}
	fmt.Fprintf(w, format+"\n", args...)
}

// classifyError maps err to a CLI error code and exit code. Order matters: a
// StatusError matches both ErrHTTP and ErrProcessing and must report http.
func classifyError(err error) (string, int) {
	var exitErr *ExitError
	if errors.As(err, &exitErr) && exitErr.Code == ExitCommandError {
		return ErrCodeUsage, ExitCommandError
	}

	switch {
	case errors.Is(err, ews.ErrAuthentication):
		return ErrCodeAuth, ExitAuthFailure
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return ErrCodeCanceled, ExitFailure
	case errors.Is(err, ews.ErrThrottleLimit):
		return ErrCodeThrottle, ExitFailure
	case errors.Is(err, ews.ErrResponse):
		return ErrCodeResponse, ExitFailure
	case errors.Is(err, ews.ErrProtocol):
		return ErrCodeProtocol, ExitFailure
	case errors.Is(err, ews.ErrHTTP):
		return ErrCodeHTTP, ExitFailure
	case errors.Is(err, ews.ErrMissingID):
		return ErrCodeMissingID, ExitFailure
	case errors.Is(err, ews.ErrProcessing):
		return ErrCodeProcessing, ExitFailure
	case errors.Is(err, service.ErrFolderNotSynced):
		return ErrCodeNotSynced, ExitCommandError
	case errors.Is(err, service.ErrSyncStalled):
		return ErrCodeStalled, ExitFailure
	default:
		return ErrCodeGeneric, ExitFailure
	}
}

// printer renders text output with lipgloss styles. The renderer follows the
// writer, so styling is dropped when output is not a terminal.
type printer struct {
	w     io.Writer
	title lipgloss.Style
	label lipgloss.Style
	good  lipgloss.Style
	bad   lipgloss.Style
	dim   lipgloss.Style
}

func newPrinter(w io.Writer) *printer {
	return newStyledPrinter(lipgloss.NewRenderer(w), w)
}

// newStyledPrinter writes to w with styles of r, for output rendered into a
// buffer before it reaches the terminal r describes.
func newStyledPrinter(r *lipgloss.Renderer, w io.Writer) *printer {
	return &printer{
		w:     w,
		title: r.NewStyle().Bold(true).Foreground(lipgloss.Color("#7D56F4")),
		label: r.NewStyle().Width(20).Foreground(lipgloss.Color("245")),
		good:  r.NewStyle().Foreground(lipgloss.Color("42")),
		bad:   r.NewStyle().Bold(true).Foreground(lipgloss.Color("196")),
		dim:   r.NewStyle().Faint(true),
	}
}

func (p *printer) heading(s string) {
	fmt.Fprintln(p.w, p.title.Render(s))
}

func (p *printer) field(label string, value any) {
	fmt.Fprintf(p.w, "%s %v\n", p.label.Render(label), value)
}

func (p *printer) item(s string) {
	fmt.Fprintf(p.w, "  %s %s\n", p.dim.Render("-"), s)
}
