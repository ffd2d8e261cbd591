package cmd

import (
	"github.com/mouse-blink/alertmigrate/internal/domain"
	"github.com/spf13/cobra"
)

var failOnChangeFlag bool

func newCheckCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check [paths...]",
		Short: "Show what a migration would change without writing files",
		Long: `check runs the migration as a dry run and prints a diff for every file
that would change. With --fail-on-change it exits non-zero when any file
still needs migration, which is useful in CI.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			summary, err := runMigrate(cmd, args, true, true)
			if err != nil {
				return err
			}

			if failOnChangeFlag && summary.Pending() > 0 {
				return domain.ErrPendingChanges
			}

			return nil
		},
	}
	cmd.Flags().BoolVar(&failOnChangeFlag, "fail-on-change", false, "exit with an error when any file would change")

	return cmd
}
