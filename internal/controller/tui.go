package controller

import (
	"errors"
	"fmt"
	"io"
	"sync"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	m "github.com/mouse-blink/alertmigrate/internal/model"
	"golang.org/x/sync/errgroup"
)

// TUI implements UI using Bubble Tea for interactive display.
type TUI struct {
	output  io.Writer
	options []tea.ProgramOption

	mu      sync.Mutex
	program *tea.Program
	group   *errgroup.Group
}

// NewTUI creates a new TUI writing to output.
func NewTUI(output io.Writer, options ...tea.ProgramOption) *TUI {
	return &TUI{
		output:  output,
		options: append([]tea.ProgramOption{tea.WithOutput(output)}, options...),
	}
}

// Start launches the Bubble Tea program in the background.
func (t *TUI) Start(options ...StartOption) error {
	cfg := newStartConfig(options...)

	return t.startWithModel(newMigrateModel(cfg.mode))
}

func (t *TUI) startWithModel(model tea.Model) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.program != nil {
		return errors.New("tui already started")
	}

	t.program = tea.NewProgram(model, t.options...)
	t.group = &errgroup.Group{}

	program := t.program
	t.group.Go(func() error {
		if _, err := program.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
			return fmt.Errorf("tui: %w", err)
		}

		return nil
	})

	return nil
}

// Close asks the program to quit. The final frame stays on screen.
func (t *TUI) Close() {
	t.mu.Lock()
	program := t.program
	t.mu.Unlock()

	if program != nil {
		program.Quit()
	}
}

// Wait blocks until the program has exited.
func (t *TUI) Wait() error {
	t.mu.Lock()
	group := t.group
	t.mu.Unlock()

	if group == nil {
		return nil
	}

	return group.Wait()
}

// DisplayFileReport adds a file to the progress list.
func (t *TUI) DisplayFileReport(report m.FileReport) {
	t.send(fileReportMsg{report: report})
}

// DisplaySummary shows the totals; the program quits afterwards.
func (t *TUI) DisplaySummary(summary m.Summary) {
	t.send(summaryMsg{summary: summary})
}

// DisplaySteps prints the steps as a styled table. It does not need a
// running program.
func (t *TUI) DisplaySteps(steps []m.StepInfo) {
	_, _ = fmt.Fprintln(t.output, renderSteps(steps))
}

func (t *TUI) send(msg tea.Msg) {
	t.mu.Lock()
	program := t.program
	t.mu.Unlock()

	if program != nil {
		program.Send(msg)
	}
}

func renderSteps(steps []m.StepInfo) string {
	titleStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("205")).
		Bold(true)
	indexStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("11")).
		Bold(true).
		Width(3).
		Align(lipgloss.Right)
	nameStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("14")).
		Width(10)
	markerStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("8"))

	rows := make([]string, 0, len(steps)+1)
	rows = append(rows, titleStyle.Render("Transformation steps"))

	for i, step := range steps {
		rows = append(rows, fmt.Sprintf("%s  %s %s",
			indexStyle.Render(fmt.Sprintf("%d", i+1)),
			nameStyle.Render(step.Name),
			markerStyle.Render("skipped when: "+step.Marker),
		))
	}

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("6")).
		Padding(0, 1)

	return box.Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}
