// Package controller provides output adapters for displaying migration results.
package controller

import (
	m "github.com/mouse-blink/alertmigrate/internal/model"
)

// StartMode defines the mode of operation for the UI.
type StartMode int

// Available StartMode values.
const (
	ModeMigrate StartMode = iota
	ModeCheck
)

// StartOption is a functional option for Start method.
type StartOption func(*StartConfig)

// StartConfig holds configuration for starting the UI.
type StartConfig struct {
	mode StartMode
}

// WithMigrateMode sets the UI to report files rewritten in place.
func WithMigrateMode() StartOption {
	return func(c *StartConfig) {
		c.mode = ModeMigrate
	}
}

// WithCheckMode sets the UI to report files a dry run would rewrite.
func WithCheckMode() StartOption {
	return func(c *StartConfig) {
		c.mode = ModeCheck
	}
}

func newStartConfig(options ...StartOption) StartConfig {
	cfg := StartConfig{mode: ModeMigrate}
	for _, option := range options {
		option(&cfg)
	}

	return cfg
}

// UI defines the interface for displaying migration progress.
// Implementations can use different output methods (simple text, TUI, etc).
type UI interface {
	Start(options ...StartOption) error
	Close()
	Wait() error // Wait for UI to finish (user closes it)
	DisplayFileReport(report m.FileReport)
	DisplaySummary(summary m.Summary)
	DisplaySteps(steps []m.StepInfo)
}

func outcomeLabel(outcome m.Outcome) (verb string, note string) {
	switch outcome {
	case m.OutcomeUpdated:
		return "updated", ""
	case m.OutcomePending:
		return "would update", ""
	case m.OutcomeUnchanged:
		return "skipped", "no changes needed"
	case m.OutcomeMissing:
		return "skipped", "path not found"
	case m.OutcomeExcluded:
		return "skipped", "excluded"
	case m.OutcomeDirty:
		return "skipped", "uncommitted changes"
	default:
		return string(outcome), ""
	}
}

var followUpSteps = []string{
	"Review the updated files for syntax errors",
	"Start the dev server and open each updated page",
	"Trigger every alert and confirm the dialog renders",
}
