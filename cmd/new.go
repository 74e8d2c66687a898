package cmd

import (
	"github.com/jumppad-labs/rdsecho/pkg/clients/logger"
	"github.com/jumppad-labs/rdsecho/pkg/echo/actions"
	"github.com/spf13/cobra"
)

func newNewCmd(setup setupFunc, l logger.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "new",
		Short: "Restore the latest snapshot as a new managed instance",
		Long: `Restores the latest available snapshot of the configured source as a new instance
named <name>-<yyyy-MM-dd> and tags it as managed in stage new. Nothing is created when
the newest managed instance is less than 24 hours old.`,
		Example: `
  rds-echo new --config ./rdsecho.properties
	`,
		Args:         cobra.NoArgs,
		RunE:         newNewCmdFunc(setup, l),
		SilenceUsage: true,
	}
}

func newNewCmdFunc(setup setupFunc, l logger.Logger) func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, args []string) error {
		e, err := setup(cmd.Context())
		if err != nil {
			return err
		}

		c := actions.NewCreate(e.config, e.kind, e.locator, e.clients.Prompt, l)

		o, err := c.Run(cmd.Context())
		if err != nil {
			return err
		}

		logOutcome(l, "new", o)

		return nil
	}
}
