package controller

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	m "pluginscout.dev/pkg/pluginscout/internal/model"
)

var (
	colorPrimary = lipgloss.Color("#7C3AED")
	colorMuted   = lipgloss.Color("#6B7280")
	colorSuccess = lipgloss.Color("#10B981")
	colorWarning = lipgloss.Color("#F59E0B")

	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(colorPrimary)
	mutedStyle   = lipgloss.NewStyle().Foreground(colorMuted)
	successStyle = lipgloss.NewStyle().Foreground(colorSuccess)
	warningStyle = lipgloss.NewStyle().Foreground(colorWarning)
)

// TUI implements UI using Bubble Tea for interactive display.
type TUI struct {
	output io.Writer
	input  io.Reader
	cfg    config
}

// NewTUI creates a new TUI.
func NewTUI(output io.Writer, input io.Reader, opts ...Option) *TUI {
	return &TUI{output: output, input: input, cfg: newConfig(opts)}
}

// DisplayEntries prints a styled table of the cache contents.
func (p *TUI) DisplayEntries(ctx context.Context, entries []m.CacheEntry) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	_, err := fmt.Fprintf(p.output, "%s\n\n%s", titleStyle.Render("Plugin capabilities"), renderEntriesTable(entries))

	return err
}

// DisplayResolution prints the module providing key.
func (p *TUI) DisplayResolution(ctx context.Context, key string, path string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	_, err := fmt.Fprintf(p.output, "%s %s %s\n", successStyle.Render("✓"), titleStyle.Render(key), path)

	return err
}

// DisplayStatus prints the scan worker state.
func (p *TUI) DisplayStatus(ctx context.Context, status m.WorkerStatus) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	_, err := fmt.Fprintln(p.output, styleStatus(status, formatStatus(status)))

	return err
}

// Watch runs a live view of the cache until ctx is done or the user quits.
func (p *TUI) Watch(ctx context.Context, source func() Snapshot) error {
	model := newWatchModel(source, p.cfg.refresh)

	program := tea.NewProgram(model,
		tea.WithContext(ctx),
		tea.WithOutput(p.output),
		tea.WithInput(p.input),
		tea.WithAltScreen(),
	)

	if _, err := program.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return fmt.Errorf("run watch view: %w", err)
	}

	return nil
}

type refreshMsg time.Time

// watchModel is the Bubble Tea model behind TUI.Watch.
type watchModel struct {
	source   func() Snapshot
	refresh  time.Duration
	spinner  spinner.Model
	snapshot Snapshot
	quitting bool
}

func newWatchModel(source func() Snapshot, refresh time.Duration) watchModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot
	s.Style = lipgloss.NewStyle().Foreground(colorPrimary)

	return watchModel{
		source:   source,
		refresh:  refresh,
		spinner:  s,
		snapshot: source(),
	}
}

func (wm watchModel) Init() tea.Cmd {
	return tea.Batch(wm.spinner.Tick, wm.tick())
}

func (wm watchModel) tick() tea.Cmd {
	return tea.Tick(wm.refresh, func(t time.Time) tea.Msg {
		return refreshMsg(t)
	})
}

func (wm watchModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return wm.handleKeyPress(msg)

	case refreshMsg:
		wm.snapshot = wm.source()
		return wm, wm.tick()

	case spinner.TickMsg:
		var cmd tea.Cmd

		wm.spinner, cmd = wm.spinner.Update(msg)

		return wm, cmd
	}

	return wm, nil
}

//nolint:exhaustive // only quit keys are handled
func (wm watchModel) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC, tea.KeyEsc:
		wm.quitting = true
		return wm, tea.Quit
	default:
	}

	if msg.String() == "q" {
		wm.quitting = true
		return wm, tea.Quit
	}

	return wm, nil
}

func (wm watchModel) View() string {
	if wm.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString(titleStyle.Render("pluginscout watch"))
	b.WriteString("\n\n")

	status := wm.snapshot.Status
	if status.State == m.Running {
		b.WriteString(wm.spinner.View())
		b.WriteString(" ")
	}

	b.WriteString(styleStatus(status, formatStatus(status)))
	b.WriteString("\n")

	if len(wm.snapshot.Watched) > 0 {
		b.WriteString(mutedStyle.Render("watching " + strings.Join(wm.snapshot.Watched, ", ")))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(renderEntriesTable(wm.snapshot.Entries))
	b.WriteString("\n")
	b.WriteString(mutedStyle.Render("q quit"))
	b.WriteString("\n")

	return b.String()
}

func styleStatus(status m.WorkerStatus, line string) string {
	switch status.State {
	case m.ForceStopped:
		return warningStyle.Render(line)
	case m.Running:
		return line
	default:
		return successStyle.Render(line)
	}
}
