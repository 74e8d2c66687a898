package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/jumppad-labs/rdsecho/pkg/clients/logger"
	"github.com/jumppad-labs/rdsecho/pkg/config"
	"github.com/spf13/cobra"
)

var configFile = config.DefaultFile
var logLevel = ""

var rootCmd = &cobra.Command{
	Use:   "rds-echo",
	Short: "Blue/green replacement of RDS databases restored from snapshots",
	Long: `rds-echo restores the latest snapshot of a database as a new instance, prepares it
and promotes it behind a CNAME, retiring the instance it replaces. Progress is tracked
only in tags on the instances, every command can be run again safely.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if logLevel != "" {
			l.SetLevel(logLevel)
		}
	},
}

var l logger.Logger

var version string // set by build process
var date string    // set by build process
var commit string  // set by build process

func init() {
	l = createLogger()

	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", config.DefaultFile, "Path to the properties file")
	rootCmd.PersistentFlags().StringVarP(&logLevel, "log-level", "", "", "Log level: trace, debug, info, warn or error, overrides LOG_LEVEL")

	setup := newSetup(l)

	rootCmd.AddCommand(newNewCmd(setup, l))
	rootCmd.AddCommand(newModifyCmd(setup, l))
	rootCmd.AddCommand(newRebootCmd(setup, l))
	rootCmd.AddCommand(newPromoteCmd(setup, l))
	rootCmd.AddCommand(newRetireCmd(setup, l))
	rootCmd.AddCommand(newStatusCmd(setup, os.Stdout, l))
	rootCmd.AddCommand(newSamplePropsCmd(l))
	rootCmd.AddCommand(newSampleOptsCmd(os.Stdout))
	rootCmd.AddCommand(newVersionCmd(os.Stdout))
}

func createLogger() logger.Logger {
	// set the log level
	if lev := os.Getenv("LOG_LEVEL"); lev != "" {
		return logger.NewLogger(os.Stdout, lev)
	}

	return logger.NewLogger(os.Stdout, logger.LogLevelInfo)
}

// Execute the root command
func Execute(v, c, d string) error {
	version = v
	commit = c
	date = d

	rootCmd.SilenceErrors = true

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	err := rootCmd.ExecuteContext(ctx)

	if err != nil {
		fmt.Println("")
		fmt.Println(errorLabel.Render("ERROR"), err)
	}

	return err
}
