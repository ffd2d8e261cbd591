package controller

import (
	"bytes"
	"fmt"
	"strings"

	m "github.com/mouse-blink/alertmigrate/internal/model"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

// SimpleUI implements UI using cobra Command's output.
type SimpleUI struct {
	cmd    *cobra.Command
	config StartConfig
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// Start records the run mode.
func (s *SimpleUI) Start(options ...StartOption) error {
	s.config = newStartConfig(options...)

	return nil
}

// Close finalizes the UI.
func (s *SimpleUI) Close() {

}

// Wait returns immediately; plain output needs no user interaction.
func (s *SimpleUI) Wait() error {
	return nil
}

// DisplayFileReport prints one line per file and its diff, if any.
func (s *SimpleUI) DisplayFileReport(report m.FileReport) {
	verb, note := outcomeLabel(report.Outcome)
	if note != "" {
		s.printf("%s %s (%s)\n", verb, report.Path, note)
	} else {
		s.printf("%s %s\n", verb, report.Path)
	}

	if report.Diff != "" {
		s.printf("%s", report.Diff)

		if !strings.HasSuffix(report.Diff, "\n") {
			s.printf("\n")
		}
	}
}

// DisplaySummary prints the outcome table and what to do next.
func (s *SimpleUI) DisplaySummary(summary m.Summary) {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Outcome", "Files"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_RIGHT})

	for _, outcome := range m.Outcomes() {
		count := summary.Counts[outcome]
		if count == 0 {
			continue
		}

		table.Append([]string{string(outcome), fmt.Sprintf("%d", count)})
	}

	table.SetFooter([]string{"Total", fmt.Sprintf("%d", summary.Total)})
	table.Render()
	s.printf("\n%s", tableBuffer.String())

	switch {
	case s.config.mode == ModeCheck && summary.Pending() > 0:
		s.printf("\n%d file(s) need migration. Run without --dry-run to apply.\n", summary.Pending())
	case s.config.mode == ModeCheck:
		s.printf("\nAll files are up to date.\n")
	case summary.Updated() > 0:
		s.printf("\nMigration complete: updated %d file(s).\n\nNext steps:\n", summary.Updated())

		for i, step := range followUpSteps {
			s.printf("  %d. %s\n", i+1, step)
		}
	default:
		s.printf("\nNothing to migrate.\n")
	}
}

// DisplaySteps prints the transformation steps in the order they run.
func (s *SimpleUI) DisplaySteps(steps []m.StepInfo) {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"#", "Step", "Marker"})
	table.SetBorder(false)
	table.SetCenterSeparator("")

	for i, step := range steps {
		table.Append([]string{fmt.Sprintf("%d", i+1), step.Name, step.Marker})
	}

	table.Render()
	s.printf("%s", tableBuffer.String())
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}
