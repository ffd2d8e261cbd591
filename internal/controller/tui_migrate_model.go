package controller

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	m "github.com/mouse-blink/alertmigrate/internal/model"
)

const maxDiffLines = 40

// reportDelegate renders one file per line.
type reportDelegate struct{}

func (d reportDelegate) Height() int  { return 1 }
func (d reportDelegate) Spacing() int { return 0 }
func (d reportDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd {
	return nil
}

func (d reportDelegate) Render(w io.Writer, lm list.Model, _ int, item list.Item) {
	ri, ok := item.(reportItem)
	if !ok {
		return
	}

	verb, note := outcomeLabel(ri.report.Outcome)
	badge := outcomeStyle(ri.report.Outcome).Width(13).Render(verb)

	text := string(ri.report.Path)
	if note != "" {
		text = fmt.Sprintf("%s (%s)", text, note)
	}

	width := lm.Width() - 15
	pathStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("252"))

	_, _ = fmt.Fprintf(w, "%s  %s", badge, pathStyle.Render(truncateToWidth(text, width)))
}

func outcomeStyle(outcome m.Outcome) lipgloss.Style {
	style := lipgloss.NewStyle().Bold(true)

	switch outcome {
	case m.OutcomeUpdated:
		return style.Foreground(lipgloss.Color("10"))
	case m.OutcomePending:
		return style.Foreground(lipgloss.Color("11"))
	case m.OutcomeMissing, m.OutcomeDirty:
		return style.Foreground(lipgloss.Color("9"))
	default:
		return style.Foreground(lipgloss.Color("8"))
	}
}

func truncateToWidth(text string, width int) string {
	if width <= 0 {
		return ""
	}

	if lipgloss.Width(text) <= width {
		return text
	}

	const ellipsis = "…"

	if width <= 1 {
		return ellipsis
	}

	maxWidth := width - lipgloss.Width(ellipsis)
	currentWidth := 0

	result := make([]rune, 0, len(text))
	for _, r := range text {
		rWidth := lipgloss.Width(string(r))
		if currentWidth+rWidth > maxWidth {
			break
		}

		result = append(result, r)
		currentWidth += rWidth
	}

	return string(result) + ellipsis
}

// migrateModel shows files as they are processed and the totals at the end.
type migrateModel struct {
	mode     StartMode
	width    int
	height   int
	spinner  spinner.Model
	fileList list.Model
	reports  []m.FileReport
	summary  *m.Summary
}

func newMigrateModel(mode StartMode) migrateModel {
	fileList := list.New([]list.Item{}, reportDelegate{}, 80, 10)
	fileList.SetShowPagination(false)
	fileList.SetShowFilter(false)
	fileList.SetFilteringEnabled(false)
	fileList.SetShowHelp(false)
	fileList.SetShowTitle(false)
	fileList.SetShowStatusBar(false)

	spin := spinner.New()
	spin.Spinner = spinner.Dot
	spin.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))

	return migrateModel{
		mode:     mode,
		width:    80,
		spinner:  spin,
		fileList: fileList,
	}
}

func (mm migrateModel) Init() tea.Cmd {
	return mm.spinner.Tick
}

func (mm migrateModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		mm.width = msg.Width
		mm.height = msg.Height
		mm.fileList.SetWidth(msg.Width - 4)

		return mm, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return mm, tea.Quit
		}

		var cmd tea.Cmd
		mm.fileList, cmd = mm.fileList.Update(msg)

		return mm, cmd

	case spinner.TickMsg:
		if mm.summary != nil {
			return mm, nil
		}

		var cmd tea.Cmd
		mm.spinner, cmd = mm.spinner.Update(msg)

		return mm, cmd

	case fileReportMsg:
		return mm.handleFileReport(msg), nil

	case summaryMsg:
		summary := msg.summary
		mm.summary = &summary

		return mm, tea.Quit
	}

	return mm, nil
}

func (mm migrateModel) handleFileReport(msg fileReportMsg) migrateModel {
	mm.reports = append(mm.reports, msg.report)
	mm.fileList.InsertItem(len(mm.reports)-1, reportItem{report: msg.report})
	mm.fileList.Select(len(mm.reports) - 1)

	listHeight := len(mm.reports)
	if mm.height > 0 && listHeight > mm.height-8 {
		listHeight = max(mm.height-8, 3)
	}

	mm.fileList.SetHeight(listHeight)

	return mm
}

func (mm migrateModel) title() string {
	if mm.mode == ModeCheck {
		return "Checking alert migration"
	}

	return "Migrating alerts"
}

func (mm migrateModel) View() string {
	titleStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("205")).
		Bold(true).
		Padding(1, 0, 0, 1)

	header := titleStyle.Render(mm.title())
	if mm.summary == nil {
		header = fmt.Sprintf("%s %s", header, mm.spinner.View())
	}

	sections := []string{header}

	if len(mm.reports) > 0 {
		box := lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("6")).
			Padding(0, 1)
		sections = append(sections, box.Render(mm.fileList.View()))
	}

	if mm.summary != nil {
		sections = append(sections, mm.renderDiffs()...)
		sections = append(sections, mm.renderSummary())
	}

	return lipgloss.JoinVertical(lipgloss.Left, sections...) + "\n"
}

func (mm migrateModel) renderSummary() string {
	accentStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("6")).Bold(true)
	summaryStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("252")).
		Padding(0, 0, 0, 1)

	parts := make([]string, 0, len(m.Outcomes()))
	for _, outcome := range m.Outcomes() {
		if count := mm.summary.Counts[outcome]; count > 0 {
			parts = append(parts, fmt.Sprintf("%s %s", string(outcome), accentStyle.Render(fmt.Sprintf("%d", count))))
		}
	}

	lines := []string{fmt.Sprintf("Files: %s   %s",
		accentStyle.Render(fmt.Sprintf("%d", mm.summary.Total)),
		strings.Join(parts, " • "),
	)}

	if mm.mode == ModeMigrate && mm.summary.Updated() > 0 {
		lines = append(lines, "", "Next steps:")
		for i, step := range followUpSteps {
			lines = append(lines, fmt.Sprintf("  %d. %s", i+1, step))
		}
	}

	return summaryStyle.Render(strings.Join(lines, "\n"))
}

func (mm migrateModel) renderDiffs() []string {
	width := max(mm.width-6, 20)

	boxes := make([]string, 0)

	for _, report := range mm.reports {
		diff := strings.TrimSpace(report.Diff)
		if diff == "" {
			continue
		}

		lines := strings.Split(diff, "\n")
		truncated := len(lines) > maxDiffLines

		if truncated {
			lines = lines[:maxDiffLines]
		}

		body := make([]string, 0, len(lines)+1)
		for _, line := range lines {
			body = append(body, renderDiffLine(line, width))
		}

		if truncated {
			body = append(body, lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Render("…"))
		}

		box := lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("8")).
			Padding(0, 1)
		boxes = append(boxes, box.Render(lipgloss.JoinVertical(lipgloss.Left, body...)))
	}

	return boxes
}

func renderDiffLine(line string, width int) string {
	style := lipgloss.NewStyle().Foreground(lipgloss.Color("252"))

	switch {
	case strings.HasPrefix(line, "+++"):
		style = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true)
	case strings.HasPrefix(line, "---"):
		style = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	case strings.HasPrefix(line, "@@"):
		style = lipgloss.NewStyle().Foreground(lipgloss.Color("6")).Bold(true)
	case strings.HasPrefix(line, "+"):
		style = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	case strings.HasPrefix(line, "-"):
		style = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	}

	return style.Render(truncateToWidth(line, width))
}
