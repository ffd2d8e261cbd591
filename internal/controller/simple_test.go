package controller

import (
	"bytes"
	"strings"
	"testing"

	m "github.com/mouse-blink/alertmigrate/internal/model"
	"github.com/spf13/cobra"
)

func newTestSimpleUI(t *testing.T, options ...StartOption) (*SimpleUI, *bytes.Buffer) {
	t.Helper()

	var buf bytes.Buffer

	cmd := &cobra.Command{}
	cmd.SetOut(&buf)

	ui := NewSimpleUI(cmd)
	if err := ui.Start(options...); err != nil {
		t.Fatalf("Start() error = %v", err)
	}

	return ui, &buf
}

func TestSimpleUI_DisplayFileReport(t *testing.T) {
	tests := []struct {
		outcome m.Outcome
		want    string
	}{
		{m.OutcomeUpdated, "updated src/page.tsx\n"},
		{m.OutcomePending, "would update src/page.tsx\n"},
		{m.OutcomeUnchanged, "skipped src/page.tsx (no changes needed)\n"},
		{m.OutcomeMissing, "skipped src/page.tsx (path not found)\n"},
		{m.OutcomeExcluded, "skipped src/page.tsx (excluded)\n"},
		{m.OutcomeDirty, "skipped src/page.tsx (uncommitted changes)\n"},
	}

	for _, tt := range tests {
		t.Run(string(tt.outcome), func(t *testing.T) {
			ui, buf := newTestSimpleUI(t)

			ui.DisplayFileReport(m.FileReport{Path: "src/page.tsx", Outcome: tt.outcome})

			if got := buf.String(); got != tt.want {
				t.Fatalf("output = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSimpleUI_DisplayFileReport_PrintsDiff(t *testing.T) {
	ui, buf := newTestSimpleUI(t, WithCheckMode())

	ui.DisplayFileReport(m.FileReport{
		Path:    "a.tsx",
		Outcome: m.OutcomePending,
		Diff:    "--- a/a.tsx\n+++ b/a.tsx\n@@ -1 +1 @@\n-alert(1)\n+showAlert(1)",
	})

	want := "would update a.tsx\n--- a/a.tsx\n+++ b/a.tsx\n@@ -1 +1 @@\n-alert(1)\n+showAlert(1)\n"
	if got := buf.String(); got != want {
		t.Fatalf("output = %q, want %q", got, want)
	}
}

func summaryOf(outcomes ...m.Outcome) m.Summary {
	summary := m.NewSummary()
	for _, outcome := range outcomes {
		summary.Add(m.FileReport{Outcome: outcome})
	}

	return summary
}

func TestSimpleUI_DisplaySummary_AfterUpdates(t *testing.T) {
	ui, buf := newTestSimpleUI(t, WithMigrateMode())

	ui.DisplaySummary(summaryOf(m.OutcomeUpdated, m.OutcomeUpdated, m.OutcomeMissing))

	output := buf.String()
	for _, want := range []string{
		"OUTCOME",
		"FILES",
		"updated",
		"missing",
		"TOTAL",
		"3",
		"Migration complete: updated 2 file(s).",
		"Next steps:",
		"1. Review the updated files for syntax errors",
		"3. Trigger every alert and confirm the dialog renders",
	} {
		if !strings.Contains(output, want) {
			t.Errorf("output missing %q\n%s", want, output)
		}
	}

	if strings.Contains(output, "unchanged") {
		t.Errorf("output lists an outcome with zero files\n%s", output)
	}
}

func TestSimpleUI_DisplaySummary_NothingToDo(t *testing.T) {
	ui, buf := newTestSimpleUI(t)

	ui.DisplaySummary(summaryOf(m.OutcomeUnchanged))

	output := buf.String()
	if !strings.Contains(output, "Nothing to migrate.") {
		t.Errorf("output missing idle message\n%s", output)
	}

	if strings.Contains(output, "Next steps:") {
		t.Errorf("follow-up advice printed without updates\n%s", output)
	}
}

func TestSimpleUI_DisplaySummary_CheckMode(t *testing.T) {
	ui, buf := newTestSimpleUI(t, WithCheckMode())
	ui.DisplaySummary(summaryOf(m.OutcomePending, m.OutcomeUnchanged))

	if output := buf.String(); !strings.Contains(output, "1 file(s) need migration.") {
		t.Errorf("output missing pending message\n%s", output)
	}

	ui, buf = newTestSimpleUI(t, WithCheckMode())
	ui.DisplaySummary(summaryOf(m.OutcomeUnchanged))

	if output := buf.String(); !strings.Contains(output, "All files are up to date.") {
		t.Errorf("output missing up-to-date message\n%s", output)
	}
}

func TestSimpleUI_DisplaySteps(t *testing.T) {
	ui, buf := newTestSimpleUI(t)

	ui.DisplaySteps([]m.StepInfo{
		{Name: "import", Marker: "useCustomAlert"},
		{Name: "call-site", Marker: "no bare alert("},
	})

	output := buf.String()
	for _, want := range []string{"STEP", "MARKER", "import", "useCustomAlert", "call-site", "no bare alert("} {
		if !strings.Contains(output, want) {
			t.Errorf("output missing %q\n%s", want, output)
		}
	}

	if strings.Index(output, "import") > strings.Index(output, "call-site") {
		t.Errorf("steps printed out of order\n%s", output)
	}
}

func TestSimpleUI_WaitAndClose(t *testing.T) {
	ui, _ := newTestSimpleUI(t)

	ui.Close()

	if err := ui.Wait(); err != nil {
		t.Fatalf("Wait() error = %v", err)
	}
}
