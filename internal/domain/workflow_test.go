package domain

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mouse-blink/alertmigrate/internal/adapter"
	adaptermocks "github.com/mouse-blink/alertmigrate/internal/adapter/mocks"
	controllermocks "github.com/mouse-blink/alertmigrate/internal/controller/mocks"
	"github.com/mouse-blink/alertmigrate/internal/ctxlog"
	"github.com/mouse-blink/alertmigrate/internal/domain/rewrite"
	m "github.com/mouse-blink/alertmigrate/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const unmigratedPage = `import React from "react";

export default function Page() {
  const save = () => alert("Saved");
  return (
    <div onClick={save}>Save</div>
  );
}
`

const migratedPage = `import React from "react";
import { useCustomAlert } from "@/components/CustomAlert";

export default function Page() {
  const { showAlert, AlertComponent } = useCustomAlert();
  return (
    <>
    {AlertComponent}
    <div>Saved</div>
    </>
  );
}
`

type workflowFixture struct {
	fs     *adaptermocks.MockSourceFSAdapter
	guard  *adaptermocks.MockWorktreeGuard
	filter *adaptermocks.MockPathFilter
	differ *adaptermocks.MockDiffer
	ui     *controllermocks.MockUI
	wf     Workflow
}

func newWorkflowFixture(t *testing.T) workflowFixture {
	t.Helper()

	engine, err := rewrite.NewEngine(m.DefaultMigration())
	require.NoError(t, err)

	f := workflowFixture{
		fs:     adaptermocks.NewMockSourceFSAdapter(t),
		guard:  adaptermocks.NewMockWorktreeGuard(t),
		filter: adaptermocks.NewMockPathFilter(t),
		differ: adaptermocks.NewMockDiffer(t),
		ui:     controllermocks.NewMockUI(t),
	}
	f.wf = NewWorkflow(f.fs, f.guard, f.filter, f.differ, f.ui, engine)

	return f
}

func (f workflowFixture) expectRun() {
	f.ui.EXPECT().Start(mock.Anything).Return(nil).Once()
	f.ui.EXPECT().Close().Return().Once()
}

func (f workflowFixture) expectSummary(total int) {
	f.ui.EXPECT().DisplaySummary(mock.MatchedBy(func(s m.Summary) bool {
		return s.Total == total
	})).Return().Once()
}

func (f workflowFixture) expectReport(path m.Path, outcome m.Outcome) {
	f.ui.EXPECT().DisplayFileReport(m.FileReport{Path: path, Outcome: outcome}).Return().Once()
}

func TestWorkflow_Migrate_UpdatesChangedFiles(t *testing.T) {
	f := newWorkflowFixture(t)
	ctx := context.Background()

	f.expectRun()
	f.filter.EXPECT().Excluded(m.Path("page.tsx")).Return(false)
	f.fs.EXPECT().Exists(mock.Anything, m.Path("page.tsx")).Return(true, nil)
	f.fs.EXPECT().ReadFile(mock.Anything, m.Path("page.tsx")).Return(m.SourceText(unmigratedPage), nil)
	f.fs.EXPECT().WriteFile(mock.Anything, m.Path("page.tsx"), mock.MatchedBy(func(text m.SourceText) bool {
		return strings.Contains(string(text), `showAlert("Saved")`) &&
			strings.Contains(string(text), "{AlertComponent}")
	})).Return(nil).Once()
	f.expectReport("page.tsx", m.OutcomeUpdated)
	f.expectSummary(1)

	summary, err := f.wf.Migrate(ctx, MigrateArgs{Targets: []m.Path{"page.tsx"}})

	require.NoError(t, err)
	assert.Equal(t, 1, summary.Updated())
	assert.Equal(t, 1, summary.Total)
}

func TestWorkflow_Migrate_SkipsUnchangedFiles(t *testing.T) {
	f := newWorkflowFixture(t)

	f.expectRun()
	f.filter.EXPECT().Excluded(mock.Anything).Return(false)
	f.fs.EXPECT().Exists(mock.Anything, m.Path("done.tsx")).Return(true, nil)
	f.fs.EXPECT().ReadFile(mock.Anything, m.Path("done.tsx")).Return(m.SourceText(migratedPage), nil)
	f.expectReport("done.tsx", m.OutcomeUnchanged)
	f.expectSummary(1)

	summary, err := f.wf.Migrate(context.Background(), MigrateArgs{Targets: []m.Path{"done.tsx"}})

	require.NoError(t, err)
	assert.Equal(t, 1, summary.Counts[m.OutcomeUnchanged])
	f.fs.AssertNotCalled(t, "WriteFile", mock.Anything, mock.Anything, mock.Anything)
}

func TestWorkflow_Migrate_MissingFileDoesNotAbort(t *testing.T) {
	f := newWorkflowFixture(t)

	f.expectRun()
	f.filter.EXPECT().Excluded(mock.Anything).Return(false)
	f.fs.EXPECT().Exists(mock.Anything, m.Path("gone.tsx")).Return(false, nil)
	f.fs.EXPECT().Exists(mock.Anything, m.Path("page.tsx")).Return(true, nil)
	f.fs.EXPECT().ReadFile(mock.Anything, m.Path("page.tsx")).Return(m.SourceText(unmigratedPage), nil)
	f.fs.EXPECT().WriteFile(mock.Anything, m.Path("page.tsx"), mock.Anything).Return(nil)
	f.expectReport("gone.tsx", m.OutcomeMissing)
	f.expectReport("page.tsx", m.OutcomeUpdated)
	f.expectSummary(2)

	summary, err := f.wf.Migrate(context.Background(), MigrateArgs{Targets: []m.Path{"gone.tsx", "page.tsx"}})

	require.NoError(t, err)
	assert.Equal(t, 1, summary.Counts[m.OutcomeMissing])
	assert.Equal(t, 1, summary.Updated())
}

func TestWorkflow_Migrate_ExcludedFileIsNotRead(t *testing.T) {
	f := newWorkflowFixture(t)

	f.expectRun()
	f.filter.EXPECT().Excluded(m.Path("legacy/page.tsx")).Return(true)
	f.expectReport("legacy/page.tsx", m.OutcomeExcluded)
	f.expectSummary(1)

	summary, err := f.wf.Migrate(context.Background(), MigrateArgs{Targets: []m.Path{"legacy/page.tsx"}})

	require.NoError(t, err)
	assert.Equal(t, 1, summary.Counts[m.OutcomeExcluded])
	f.fs.AssertNotCalled(t, "Exists", mock.Anything, mock.Anything)
}

func TestWorkflow_Migrate_DryRunWithDiff(t *testing.T) {
	f := newWorkflowFixture(t)

	f.expectRun()
	f.filter.EXPECT().Excluded(mock.Anything).Return(false)
	f.fs.EXPECT().Exists(mock.Anything, m.Path("page.tsx")).Return(true, nil)
	f.fs.EXPECT().ReadFile(mock.Anything, m.Path("page.tsx")).Return(m.SourceText(unmigratedPage), nil)
	f.differ.EXPECT().Diff(m.Path("page.tsx"), m.SourceText(unmigratedPage), mock.Anything).Return("patch")
	f.ui.EXPECT().DisplayFileReport(m.FileReport{Path: "page.tsx", Outcome: m.OutcomePending, Diff: "patch"}).Return().Once()
	f.expectSummary(1)

	summary, err := f.wf.Migrate(context.Background(), MigrateArgs{
		Targets: []m.Path{"page.tsx"},
		DryRun:  true,
		Diff:    true,
	})

	require.NoError(t, err)
	assert.Equal(t, 1, summary.Pending())
	assert.Equal(t, 0, summary.Updated())
	f.fs.AssertNotCalled(t, "WriteFile", mock.Anything, mock.Anything, mock.Anything)
}

func TestWorkflow_Migrate_RequireClean(t *testing.T) {
	f := newWorkflowFixture(t)

	f.expectRun()
	f.filter.EXPECT().Excluded(mock.Anything).Return(false)
	f.fs.EXPECT().Exists(mock.Anything, mock.Anything).Return(true, nil)
	f.guard.EXPECT().Modified(mock.Anything, m.Path("dirty.tsx")).Return(true, nil)
	f.guard.EXPECT().Modified(mock.Anything, m.Path("clean.tsx")).Return(false, nil)
	f.fs.EXPECT().ReadFile(mock.Anything, m.Path("clean.tsx")).Return(m.SourceText(migratedPage), nil)
	f.expectReport("dirty.tsx", m.OutcomeDirty)
	f.expectReport("clean.tsx", m.OutcomeUnchanged)
	f.expectSummary(2)

	summary, err := f.wf.Migrate(context.Background(), MigrateArgs{
		Targets:      []m.Path{"dirty.tsx", "clean.tsx"},
		RequireClean: true,
	})

	require.NoError(t, err)
	assert.Equal(t, 1, summary.Counts[m.OutcomeDirty])
}

func TestWorkflow_Migrate_RequireCleanWithoutGuard(t *testing.T) {
	engine, err := rewrite.NewEngine(m.DefaultMigration())
	require.NoError(t, err)

	ui := controllermocks.NewMockUI(t)
	wf := NewWorkflow(adaptermocks.NewMockSourceFSAdapter(t), nil, nil, nil, ui, engine)

	_, err = wf.Migrate(context.Background(), MigrateArgs{Targets: []m.Path{"a.tsx"}, RequireClean: true})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "no worktree guard")
}

func TestWorkflow_Migrate_ReadErrorAborts(t *testing.T) {
	f := newWorkflowFixture(t)
	readErr := errors.New("permission denied")

	f.expectRun()
	f.filter.EXPECT().Excluded(mock.Anything).Return(false)
	f.fs.EXPECT().Exists(mock.Anything, m.Path("a.tsx")).Return(true, nil)
	f.fs.EXPECT().ReadFile(mock.Anything, m.Path("a.tsx")).Return("", readErr)

	_, err := f.wf.Migrate(context.Background(), MigrateArgs{Targets: []m.Path{"a.tsx", "b.tsx"}})

	require.Error(t, err)
	require.ErrorIs(t, err, readErr)
	assert.Contains(t, err.Error(), "failed to read a.tsx")
	f.ui.AssertNotCalled(t, "DisplaySummary", mock.Anything)
	f.fs.AssertNotCalled(t, "Exists", mock.Anything, m.Path("b.tsx"))
}

func TestWorkflow_Migrate_WriteErrorAbortsAfterEarlierWrites(t *testing.T) {
	f := newWorkflowFixture(t)
	writeErr := errors.New("disk full")

	f.expectRun()
	f.filter.EXPECT().Excluded(mock.Anything).Return(false)
	f.fs.EXPECT().Exists(mock.Anything, mock.Anything).Return(true, nil)
	f.fs.EXPECT().ReadFile(mock.Anything, mock.Anything).Return(m.SourceText(unmigratedPage), nil)
	f.fs.EXPECT().WriteFile(mock.Anything, m.Path("a.tsx"), mock.Anything).Return(nil).Once()
	f.fs.EXPECT().WriteFile(mock.Anything, m.Path("b.tsx"), mock.Anything).Return(writeErr).Once()
	f.expectReport("a.tsx", m.OutcomeUpdated)

	summary, err := f.wf.Migrate(context.Background(), MigrateArgs{Targets: []m.Path{"a.tsx", "b.tsx", "c.tsx"}})

	require.ErrorIs(t, err, writeErr)
	assert.Equal(t, 1, summary.Updated())
}

func TestWorkflow_Migrate_StartError(t *testing.T) {
	f := newWorkflowFixture(t)
	f.ui.EXPECT().Start(mock.Anything).Return(errors.New("no terminal"))

	_, err := f.wf.Migrate(context.Background(), MigrateArgs{Targets: []m.Path{"a.tsx"}})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to start UI")
}

func TestWorkflow_Migrate_CanceledContext(t *testing.T) {
	f := newWorkflowFixture(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	f.expectRun()

	_, err := f.wf.Migrate(ctx, MigrateArgs{Targets: []m.Path{"a.tsx"}})

	require.ErrorIs(t, err, context.Canceled)
}

func TestWorkflow_Steps(t *testing.T) {
	f := newWorkflowFixture(t)

	steps := f.wf.Steps()

	require.Len(t, steps, 4)
	assert.Equal(t, "import", steps[0].Name)
	assert.Equal(t, "render", steps[3].Name)
}

func TestWorkflow_Migrate_LocalFiles(t *testing.T) {
	dir := t.TempDir()
	pagePath := filepath.Join(dir, "page.tsx")
	donePath := filepath.Join(dir, "done.tsx")
	require.NoError(t, os.WriteFile(pagePath, []byte(unmigratedPage), 0o600))
	require.NoError(t, os.WriteFile(donePath, []byte(migratedPage), 0o600))

	engine, err := rewrite.NewEngine(m.DefaultMigration())
	require.NoError(t, err)

	filter, err := adapter.NewRulesPathFilter(nil)
	require.NoError(t, err)

	ui := controllermocks.NewMockUI(t)
	ui.EXPECT().Start(mock.Anything).Return(nil)
	ui.EXPECT().Close().Return()
	ui.EXPECT().DisplayFileReport(mock.Anything).Return()
	ui.EXPECT().DisplaySummary(mock.Anything).Return()

	var logs bytes.Buffer

	ctx := ctxlog.WithLogger(context.Background(), ctxlog.New(&logs, true))
	wf := NewWorkflow(adapter.NewLocalSourceFSAdapter(), nil, filter, adapter.NewPatchDiffer(), ui, engine)

	targets := []m.Path{m.Path(pagePath), m.Path(donePath), m.Path(filepath.Join(dir, "missing.tsx"))}

	summary, err := wf.Migrate(ctx, MigrateArgs{Targets: targets})
	require.NoError(t, err)
	assert.Equal(t, 1, summary.Updated())
	assert.Equal(t, 1, summary.Counts[m.OutcomeUnchanged])
	assert.Equal(t, 1, summary.Counts[m.OutcomeMissing])

	written, err := os.ReadFile(pagePath)
	require.NoError(t, err)
	assert.Contains(t, string(written), `import { useCustomAlert } from "@/components/CustomAlert";`)
	assert.Contains(t, string(written), "const { showAlert, AlertComponent } = useCustomAlert();")

	untouched, err := os.ReadFile(donePath)
	require.NoError(t, err)
	assert.Equal(t, migratedPage, string(untouched))

	// A second run finds nothing left to do.
	summary, err = wf.Migrate(ctx, MigrateArgs{Targets: targets[:2]})
	require.NoError(t, err)
	assert.Equal(t, 2, summary.Counts[m.OutcomeUnchanged])

	assert.Contains(t, logs.String(), "outcome=updated")
	assert.Contains(t, logs.String(), "outcome=missing")
}
