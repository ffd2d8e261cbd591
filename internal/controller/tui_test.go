package controller

import (
	"bytes"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	m "github.com/mouse-blink/alertmigrate/internal/model"
)

type quitModel struct{}

func (q quitModel) Init() tea.Cmd { return tea.Quit }
func (q quitModel) Update(_ tea.Msg) (tea.Model, tea.Cmd) {
	return q, tea.Quit
}
func (q quitModel) View() string { return "" }

func newTestTUI(buf *bytes.Buffer) *TUI {
	return NewTUI(buf, tea.WithInput(nil), tea.WithoutSignalHandler())
}

func waitWithTimeout(t *testing.T, tui *TUI) {
	t.Helper()

	done := make(chan error, 1)
	go func() {
		done <- tui.Wait()
	}()

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Wait() error = %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Wait() timed out")
	}
}

func TestTUI_StartWithModel_WaitAndClose(t *testing.T) {
	var buf bytes.Buffer
	tui := newTestTUI(&buf)

	if err := tui.startWithModel(quitModel{}); err != nil {
		t.Fatalf("startWithModel error = %v", err)
	}

	waitWithTimeout(t, tui)

	closeDone := make(chan struct{})
	go func() {
		tui.Close()
		close(closeDone)
	}()

	select {
	case <-closeDone:
	case <-time.After(2 * time.Second):
		t.Fatal("Close() timed out")
	}
}

func TestTUI_StartTwice(t *testing.T) {
	var buf bytes.Buffer
	tui := newTestTUI(&buf)

	if err := tui.startWithModel(quitModel{}); err != nil {
		t.Fatalf("startWithModel error = %v", err)
	}

	if err := tui.Start(); err == nil {
		t.Fatal("second Start() error = nil, want error")
	}

	waitWithTimeout(t, tui)
}

func TestTUI_NotStarted(t *testing.T) {
	var buf bytes.Buffer
	tui := newTestTUI(&buf)

	tui.DisplayFileReport(m.FileReport{Path: "a.tsx", Outcome: m.OutcomeUpdated})
	tui.Close()

	if err := tui.Wait(); err != nil {
		t.Fatalf("Wait() error = %v", err)
	}
}

func TestTUI_RunQuitsAfterSummary(t *testing.T) {
	var buf bytes.Buffer
	tui := newTestTUI(&buf)

	if err := tui.Start(WithMigrateMode()); err != nil {
		t.Fatalf("Start() error = %v", err)
	}

	tui.DisplayFileReport(m.FileReport{Path: "src/settings/page.tsx", Outcome: m.OutcomeUpdated})

	summary := m.NewSummary()
	summary.Add(m.FileReport{Outcome: m.OutcomeUpdated})
	tui.DisplaySummary(summary)
	tui.Close()

	waitWithTimeout(t, tui)

	if !strings.Contains(buf.String(), "Migrating alerts") {
		t.Errorf("output missing title\n%s", buf.String())
	}
}

func TestTUI_DisplaySteps(t *testing.T) {
	var buf bytes.Buffer
	tui := newTestTUI(&buf)

	tui.DisplaySteps([]m.StepInfo{
		{Name: "import", Marker: "useCustomAlert"},
		{Name: "render", Marker: "{AlertComponent}"},
	})

	output := buf.String()
	for _, want := range []string{"Transformation steps", "import", "skipped when: useCustomAlert", "render"} {
		if !strings.Contains(output, want) {
			t.Errorf("output missing %q\n%s", want, output)
		}
	}
}
