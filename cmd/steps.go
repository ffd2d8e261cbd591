package cmd

import (
	"github.com/spf13/cobra"
)

func newStepsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "steps",
		Short: "List the transformation steps in the order they run",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			wf, ui, err := buildWorkflow(cmd, cfg, false)
			if err != nil {
				return err
			}

			ui.DisplaySteps(wf.Steps())

			return nil
		},
	}
}
