package controller

import (
	m "github.com/mouse-blink/alertmigrate/internal/model"
)

// Message types.
type fileReportMsg struct {
	report m.FileReport
}

type summaryMsg struct {
	summary m.Summary
}

// List item types.
type reportItem struct {
	report m.FileReport
}

func (r reportItem) FilterValue() string {
	return string(r.report.Path)
}
