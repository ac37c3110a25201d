// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cli

import (
	"context"
	"strings"
	"time"

	"github.com/MKhiriev/go-ews-sync/models"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

var watchQuit = key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit"))

// syncDoneMsg carries the outcome of one background sync into the view.
type syncDoneMsg struct {
	report *models.SyncReport
	err    error
	at     time.Time
}

// watchModel is the live status screen of watch --live.
type watchModel struct {
	endpoint string
	renderer *lipgloss.Renderer
	spinner  spinner.Model

	runs     int
	failures int
	last     *syncDoneMsg
	quitting bool
}

func newWatchModel(endpoint string, r *lipgloss.Renderer) watchModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot
	return watchModel{endpoint: endpoint, renderer: r, spinner: s}
}

func (m watchModel) Init() tea.Cmd {
	return m.spinner.Tick
}

func (m watchModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, watchQuit) {
			m.quitting = true
			return m, tea.Quit
		}
	case syncDoneMsg:
		m.runs++
		if msg.err != nil {
			m.failures++
		}
		m.last = &msg
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m watchModel) View() string {
	if m.quitting {
		return ""
	}

	var sb strings.Builder
	p := newStyledPrinter(m.renderer, &sb)

	p.heading("Watching " + m.endpoint)
	p.field("Syncs:", m.runs)
	p.field("Failed syncs:", m.failures)

	if m.last == nil {
		sb.WriteString(m.spinner.View() + " waiting for the first sync\n")
	} else {
		p.field("Last sync:", m.last.at.Format(time.TimeOnly))
		if m.last.err != nil {
			p.field("Status:", p.bad.Render(m.last.err.Error()))
		} else {
			p.field("Status:", p.good.Render("ok"))
		}
		if r := m.last.report; r != nil {
			total := r.Folders
			for _, s := range r.Messages {
				total.Add(s)
			}
			p.field("Folders synced:", len(r.Messages))
			p.field("Changes:", total.Created+total.Updated+total.Deleted+total.ReadFlagChanges)
		}
		sb.WriteString(m.spinner.View() + " idle until the next sync\n")
	}

	help := watchQuit.Help()
	sb.WriteString(p.dim.Render(help.Key+" "+help.Desc) + "\n")
	return sb.String()
}

// runLiveWatch runs the background sync under a live status screen until
// ctx is done or the user quits.
func runLiveWatch(ctx context.Context, cmd *cobra.Command, s *Session) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	program := tea.NewProgram(newWatchModel(s.Engine.Endpoint(), lipgloss.NewRenderer(cmd.OutOrStdout())),
		tea.WithContext(ctx),
		tea.WithInput(cmd.InOrStdin()),
		tea.WithOutput(cmd.OutOrStdout()),
	)

	s.App.ObserveSync(func(report *models.SyncReport, err error) {
		program.Send(syncDoneMsg{report: report, err: err, at: time.Now()})
	})
	defer s.App.ObserveSync(nil)

	appDone := make(chan error, 1)
	go func() { appDone <- s.App.Run(ctx) }()

	_, err := program.Run()
	interrupted := ctx.Err() != nil
	cancel()

	if appErr := <-appDone; appErr != nil {
		return appErr
	}
	// a signal ends the program through ctx; that is a normal stop
	if err != nil && !interrupted {
		return err
	}
	return nil
}
