// Package domain drives a migration over a batch of target files.
package domain

import (
	"context"
	"errors"
	"fmt"

	"github.com/mouse-blink/alertmigrate/internal/adapter"
	"github.com/mouse-blink/alertmigrate/internal/controller"
	"github.com/mouse-blink/alertmigrate/internal/ctxlog"
	"github.com/mouse-blink/alertmigrate/internal/domain/rewrite"
	m "github.com/mouse-blink/alertmigrate/internal/model"
)

// ErrPendingChanges is returned by callers that fail a check run when at
// least one file would change.
var ErrPendingChanges = errors.New("files need migration")

// MigrateArgs holds the arguments of one batch run.
type MigrateArgs struct {
	Targets      []m.Path
	DryRun       bool
	Diff         bool
	RequireClean bool
}

// Workflow defines the batch migration operation.
type Workflow interface {
	Migrate(ctx context.Context, args MigrateArgs) (m.Summary, error)
	Steps() []m.StepInfo
}

type workflow struct {
	fsAdapter adapter.SourceFSAdapter
	guard     adapter.WorktreeGuard
	filter    adapter.PathFilter
	differ    adapter.Differ
	ui        controller.UI
	engine    *rewrite.Engine
}

// NewWorkflow creates a new Workflow instance with the provided adapters.
// guard may be nil when no run sets RequireClean.
func NewWorkflow(
	fsAdapter adapter.SourceFSAdapter,
	guard adapter.WorktreeGuard,
	filter adapter.PathFilter,
	differ adapter.Differ,
	ui controller.UI,
	engine *rewrite.Engine,
) Workflow {
	return &workflow{
		fsAdapter: fsAdapter,
		guard:     guard,
		filter:    filter,
		differ:    differ,
		ui:        ui,
		engine:    engine,
	}
}

// Steps lists the transformations the engine applies, in order.
func (w *workflow) Steps() []m.StepInfo {
	return w.engine.Steps()
}

// Migrate processes targets one by one in list order. A missing file is
// reported and skipped; a read or write failure aborts the batch and leaves
// files written so far in place.
func (w *workflow) Migrate(ctx context.Context, args MigrateArgs) (m.Summary, error) {
	summary := m.NewSummary()

	if args.RequireClean && w.guard == nil {
		return summary, fmt.Errorf("require clean: no worktree guard configured")
	}

	mode := controller.WithMigrateMode()
	if args.DryRun {
		mode = controller.WithCheckMode()
	}

	if err := w.ui.Start(mode); err != nil {
		return summary, fmt.Errorf("failed to start UI: %w", err)
	}

	defer w.ui.Close()

	for _, path := range args.Targets {
		if err := ctx.Err(); err != nil {
			return summary, err
		}

		report, err := w.migrateFile(ctx, path, args)
		if err != nil {
			return summary, err
		}

		summary.Add(report)
		w.ui.DisplayFileReport(report)
	}

	w.ui.DisplaySummary(summary)

	return summary, nil
}

func (w *workflow) migrateFile(ctx context.Context, path m.Path, args MigrateArgs) (m.FileReport, error) {
	logger := ctxlog.FromContext(ctx).With("path", string(path))
	report := m.FileReport{Path: path}

	if w.filter != nil && w.filter.Excluded(path) {
		report.Outcome = m.OutcomeExcluded
		logger.Debug("file skipped", "outcome", report.Outcome)

		return report, nil
	}

	exists, err := w.fsAdapter.Exists(ctx, path)
	if err != nil {
		return report, fmt.Errorf("failed to stat %s: %w", path, err)
	}

	if !exists {
		report.Outcome = m.OutcomeMissing
		logger.Debug("file skipped", "outcome", report.Outcome)

		return report, nil
	}

	if args.RequireClean {
		modified, err := w.guard.Modified(ctx, path)
		if err != nil {
			return report, fmt.Errorf("failed to check worktree status of %s: %w", path, err)
		}

		if modified {
			report.Outcome = m.OutcomeDirty
			logger.Debug("file skipped", "outcome", report.Outcome)

			return report, nil
		}
	}

	original, err := w.fsAdapter.ReadFile(ctx, path)
	if err != nil {
		return report, fmt.Errorf("failed to read %s: %w", path, err)
	}

	result := w.engine.Rewrite(original)
	if !result.Changed {
		report.Outcome = m.OutcomeUnchanged
		logger.Debug("file processed", "outcome", report.Outcome, "changed", false)

		return report, nil
	}

	if args.Diff && w.differ != nil {
		report.Diff = w.differ.Diff(path, original, result.Text)
	}

	if args.DryRun {
		report.Outcome = m.OutcomePending
		logger.Debug("file processed", "outcome", report.Outcome, "changed", true)

		return report, nil
	}

	if err := w.fsAdapter.WriteFile(ctx, path, result.Text); err != nil {
		return report, fmt.Errorf("failed to write %s: %w", path, err)
	}

	report.Outcome = m.OutcomeUpdated
	logger.Debug("file processed", "outcome", report.Outcome, "changed", true)

	return report, nil
}
