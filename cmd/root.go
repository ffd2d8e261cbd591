// Package cmd provides the root command and CLI setup for alertmigrate.
package cmd

import (
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/mouse-blink/alertmigrate/internal/adapter"
	"github.com/mouse-blink/alertmigrate/internal/config"
	"github.com/mouse-blink/alertmigrate/internal/controller"
	"github.com/mouse-blink/alertmigrate/internal/ctxlog"
	"github.com/mouse-blink/alertmigrate/internal/domain"
	"github.com/mouse-blink/alertmigrate/internal/domain/rewrite"
	m "github.com/mouse-blink/alertmigrate/internal/model"
	"github.com/spf13/cobra"
)

var configFlag string
var verboseFlag bool
var excludeFlags []string
var requireCleanFlag bool
var dryRunFlag bool
var diffFlag bool
var reportFlag string

var reportStore adapter.ReportStore = adapter.NewLocalReportStore()

// buildWorkflow wires the adapters for one invocation. Tests replace it.
var buildWorkflow = newWorkflow

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "alertmigrate [paths...]",
		Short: "Migrate inline alert() calls to the custom alert component",
		Long: `alertmigrate rewrites TSX pages that call alert(...) directly so they use
the custom alert hook instead. For every file it:

  1. imports useCustomAlert from @/components/CustomAlert
  2. rewrites alert( call sites to showAlert(
  3. calls the hook at the top of the default-exported component
  4. renders {AlertComponent} inside the returned JSX

Every step is skipped when its result is already present, so running the
tool twice is safe. Paths default to the config file's targets, then to the
built-in list of settings pages.`,
		Args:         cobra.ArbitraryArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := runMigrate(cmd, args, dryRunFlag, diffFlag)

			return err
		},
	}
	cmd.PersistentFlags().StringVarP(&configFlag, "config", "c", "", "config file (default ./"+config.DefaultFileName+" when present)")
	cmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "log every file decision to stderr")
	cmd.PersistentFlags().StringArrayVarP(&excludeFlags, "exclude", "x", nil, "skip paths matching a gitignore-style pattern (can be repeated)")
	cmd.PersistentFlags().BoolVar(&requireCleanFlag, "require-clean", false, "skip files with uncommitted git changes")
	cmd.PersistentFlags().StringVarP(&reportFlag, "report", "r", "", "write a YAML report of every file outcome to this path")
	cmd.Flags().BoolVarP(&dryRunFlag, "dry-run", "n", false, "report what would change without writing files")
	cmd.Flags().BoolVarP(&diffFlag, "diff", "d", false, "print a unified diff for every changed file")

	cmd.AddCommand(newCheckCmd(), newStepsCmd())

	return cmd
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func runMigrate(cmd *cobra.Command, args []string, dryRun, diff bool) (m.Summary, error) {
	cfg, err := loadConfig()
	if err != nil {
		return m.Summary{}, err
	}

	runID := uuid.NewString()
	logger := ctxlog.New(cmd.ErrOrStderr(), verboseFlag).With("run", runID)
	ctx := ctxlog.WithLogger(cmd.Context(), logger)

	requireClean := requireCleanFlag || cfg.RequireClean
	logger.Debug("config loaded", "source", cfg.Source, "require_clean", requireClean)

	wf, ui, err := buildWorkflow(cmd, cfg, requireClean)
	if err != nil {
		return m.Summary{}, err
	}

	summary, err := wf.Migrate(ctx, domain.MigrateArgs{
		Targets:      cfg.TargetPaths(args),
		DryRun:       dryRun,
		Diff:         diff,
		RequireClean: requireClean,
	})

	if waitErr := ui.Wait(); waitErr != nil && err == nil {
		err = waitErr
	}

	if err != nil {
		return summary, err
	}

	if reportFlag != "" {
		report := m.RunReport{RunID: runID, DryRun: dryRun, Summary: summary}
		if err := reportStore.SaveReport(ctx, m.Path(reportFlag), report); err != nil {
			return summary, err
		}

		logger.Debug("report written", "path", reportFlag)
	}

	logger.Info("run finished", "files", summary.Total, "updated", summary.Updated(), "pending", summary.Pending())

	return summary, nil
}

func loadConfig() (*config.Config, error) {
	opts, err := config.OptionsFromEnvironment()
	if err != nil {
		return nil, err
	}

	return config.Discover(configFlag, opts)
}

func newWorkflow(cmd *cobra.Command, cfg *config.Config, requireClean bool) (domain.Workflow, controller.UI, error) {
	engine, err := rewrite.NewEngine(cfg.Migration)
	if err != nil {
		return nil, nil, err
	}

	patterns := append(append([]string{}, cfg.Exclude...), excludeFlags...)

	filter, err := adapter.NewRulesPathFilter(patterns, cfg.IgnoreFiles...)
	if err != nil {
		return nil, nil, err
	}

	var guard adapter.WorktreeGuard

	if requireClean {
		gitGuard, err := adapter.NewGitWorktreeGuard(".")
		if err != nil {
			return nil, nil, fmt.Errorf("require clean: %w", err)
		}

		guard = gitGuard
	}

	ui := controller.NewUI(cmd, controller.IsTTY(cmd.OutOrStdout()))

	return domain.NewWorkflow(
		adapter.NewLocalSourceFSAdapter(),
		guard,
		filter,
		adapter.NewPatchDiffer(),
		ui,
		engine,
	), ui, nil
}
