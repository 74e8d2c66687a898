package cmd

import (
	"github.com/jumppad-labs/rdsecho/pkg/clients/logger"
	"github.com/jumppad-labs/rdsecho/pkg/echo"
	"github.com/jumppad-labs/rdsecho/pkg/echo/actions"
	"github.com/spf13/cobra"
)

func newModifyCmd(setup setupFunc, l logger.Logger) *cobra.Command {
	return newStageCmd(
		"modify",
		"Apply the configured settings to the new instance",
		`Applies the parameter group, security groups and backup retention to the newest
managed instance. The instance must be in stage new.`,
		setup,
		func(e *environment) echo.Action {
			return actions.NewModify(e.kind, e.clients.Prompt, l)
		},
		l,
	)
}

func newRebootCmd(setup setupFunc, l logger.Logger) *cobra.Command {
	return newStageCmd(
		"reboot",
		"Reboot the modified instance",
		`Reboots the newest managed instance so pending modifications take effect. The
instance must be in stage modified.`,
		setup,
		func(e *environment) echo.Action {
			return actions.NewReboot(e.clients.RDS, e.clients.Prompt, l)
		},
		l,
	)
}

func newPromoteCmd(setup setupFunc, l logger.Logger) *cobra.Command {
	return newStageCmd(
		"promote",
		"Point the CNAME at the rebooted instance",
		`Updates the configured CNAME to the endpoint of the newest managed instance and
demotes the previously promoted instance to stage forgotten. The instance must be in
stage rebooted.`,
		setup,
		func(e *environment) echo.Action {
			return actions.NewPromote(e.config, e.clients.Route53, e.locator, e.clients.Tags, e.clients.Prompt, l)
		},
		l,
	)
}

func newRetireCmd(setup setupFunc, l logger.Logger) *cobra.Command {
	return newStageCmd(
		"retire",
		"Delete the instance that was demoted",
		`Deletes the newest instance in stage forgotten, the final snapshot settings are
taken from the configuration. Cluster members are deleted along with their cluster.`,
		setup,
		func(e *environment) echo.Action {
			return actions.NewRetire(e.kind, e.clients.Prompt, l)
		},
		l,
	)
}

func newStageCmd(use, short, long string, setup setupFunc, action func(e *environment) echo.Action, l logger.Logger) *cobra.Command {
	return &cobra.Command{
		Use:          use,
		Short:        short,
		Long:         long,
		Args:         cobra.NoArgs,
		RunE:         newStageCmdFunc(setup, action, l),
		SilenceUsage: true,
	}
}

func newStageCmdFunc(setup setupFunc, action func(e *environment) echo.Action, l logger.Logger) func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, args []string) error {
		e, err := setup(cmd.Context())
		if err != nil {
			return err
		}

		a := action(e)

		o, err := e.engine.Run(cmd.Context(), a)
		if err != nil {
			return err
		}

		logOutcome(l, a.Command(), o)

		return nil
	}
}

func logOutcome(l logger.Logger, command string, o echo.Outcome) {
	switch o {
	case echo.OutcomeAdvanced:
		l.Info(successLabel.Render("Done"), "command", command)
	default:
		l.Info(grayText.Render("Nothing changed"), "command", command, "outcome", o)
	}
}
