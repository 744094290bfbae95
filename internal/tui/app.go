package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-pos-client/internal/service"
	"github.com/MKhiriev/go-pos-client/models"
)

type overlay int

const (
	overlayNone overlay = iota
	overlayBuildInfo
	overlaySummary
)

// RootModel is a TUI router:
// 1) keeps the tabs and the active one
// 2) handles global keys (quit, tab switching, overlays)
// 3) routes async results to the tab that issued them
// 4) delegates all other messages to the active tab
type RootModel struct {
	ctx     context.Context
	tabs    []tab
	active  int
	reports service.ReportService
	version string
	build   models.AppBuildInfo
	help    help.Model

	overlay        overlay
	summary        models.Summary
	summaryLoading bool
	summaryErr     string

	quitByUser bool
}

// NewRootModel opens the first tab.
func NewRootModel(ctx context.Context, tabs []tab, reports service.ReportService, version string, build models.AppBuildInfo) RootModel {
	return RootModel{
		ctx:     ctx,
		tabs:    tabs,
		reports: reports,
		version: version,
		build:   build,
		help:    help.New(),
	}
}

func (r RootModel) Init() tea.Cmd {
	cmds := make([]tea.Cmd, 0, len(r.tabs))
	for _, t := range r.tabs {
		cmds = append(cmds, t.init())
	}
	return tea.Batch(cmds...)
}

func (r RootModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		r.help.Width = msg.Width
		for _, t := range r.tabs {
			t.setSize(msg.Width, msg.Height)
		}
		return r, nil
	case viewUpdatedMsg:
		return r, r.route(msg.tab, msg)
	case mutationDoneMsg:
		return r, r.route(msg.tab, msg)
	case refreshDoneMsg:
		return r, r.route(msg.tab, msg)
	case copiedMsg:
		return r, r.route(msg.tab, msg)
	case clearStatusMsg:
		return r, r.route(msg.tab, msg)
	case spinner.TickMsg:
		cmds := make([]tea.Cmd, 0, len(r.tabs))
		for _, t := range r.tabs {
			cmds = append(cmds, t.update(msg))
		}
		return r, tea.Batch(cmds...)
	case summaryMsg:
		r.summaryLoading = false
		r.summary = msg.summary
		r.summaryErr = service.UserMessage(msg.err)
		return r, nil
	case tea.KeyMsg:
		return r.handleKey(msg)
	}

	if t := r.current(); t != nil {
		return r, t.update(msg)
	}
	return r, nil
}

func (r RootModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Global hotkey for every screen.
	if msg.String() == "ctrl+c" {
		r.quitByUser = true
		return r, tea.Quit
	}

	if r.overlay != overlayNone {
		if key.Matches(msg, keys.esc) || key.Matches(msg, keys.enter) || key.Matches(msg, keys.quit) {
			r.overlay = overlayNone
		}
		return r, nil
	}

	t := r.current()
	if t == nil {
		return r, nil
	}
	if t.capturing() {
		return r, t.update(msg)
	}

	switch {
	case key.Matches(msg, keys.quit):
		r.quitByUser = true
		return r, tea.Quit
	case key.Matches(msg, keys.nextTab):
		r.active = (r.active + 1) % len(r.tabs)
		return r, nil
	case key.Matches(msg, keys.prevTab):
		r.active = (r.active - 1 + len(r.tabs)) % len(r.tabs)
		return r, nil
	case key.Matches(msg, keys.info):
		r.overlay = overlayBuildInfo
		return r, nil
	case key.Matches(msg, keys.report):
		r.overlay = overlaySummary
		r.summaryLoading = true
		r.summaryErr = ""
		return r, r.summaryCmd()
	case key.Matches(msg, keys.help):
		r.help.ShowAll = !r.help.ShowAll
		return r, nil
	}

	return r, t.update(msg)
}

func (r RootModel) route(idx int, msg tea.Msg) tea.Cmd {
	if idx < 0 || idx >= len(r.tabs) {
		return nil
	}
	return r.tabs[idx].update(msg)
}

func (r RootModel) current() tab {
	if len(r.tabs) == 0 {
		return nil
	}
	return r.tabs[r.active]
}

func (r RootModel) summaryCmd() tea.Cmd {
	ctx, reports := r.ctx, r.reports
	return func() tea.Msg {
		s, err := reports.Summary(ctx)
		return summaryMsg{summary: s, err: err}
	}
}

func (r RootModel) View() string {
	switch r.overlay {
	case overlayBuildInfo:
		return renderBuildInfoWindow(r.version, r.build)
	case overlaySummary:
		if r.summaryErr != "" {
			return errorOverlayModel{message: r.summaryErr}.View()
		}
		return renderSummaryWindow(r.summary, r.summaryLoading)
	}

	t := r.current()
	if t == nil {
		return renderPage("POS", "", "")
	}

	var b strings.Builder
	b.WriteString(r.tabBar())
	b.WriteString("\n\n")
	b.WriteString(t.view())
	b.WriteString("\n\n")
	b.WriteString(r.help.View(keys))
	return appStyle.Render(b.String())
}

func (r RootModel) tabBar() string {
	parts := make([]string, 0, len(r.tabs))
	for i, t := range r.tabs {
		if i == r.active {
			parts = append(parts, activeTabStyle.Render(t.title()))
		} else {
			parts = append(parts, inactiveTabStyle.Render(t.title()))
		}
	}
	return strings.Join(parts, " ")
}
