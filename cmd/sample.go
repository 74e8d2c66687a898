package cmd

import (
	"errors"
	"io"
	"path/filepath"

	"github.com/jumppad-labs/rdsecho/pkg/clients/logger"
	"github.com/jumppad-labs/rdsecho/pkg/config"
	"github.com/spf13/cobra"
)

func newSamplePropsCmd(l logger.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "sample-props",
		Short: "Write a sample rdsecho.properties",
		Long: `Writes a documented sample properties file to the path given by --config. An
existing file is never overwritten.`,
		Args:         cobra.NoArgs,
		RunE:         newSamplePropsCmdFunc(l),
		SilenceUsage: true,
	}
}

func newSamplePropsCmdFunc(l logger.Logger) func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, args []string) error {
		p, err := filepath.Abs(configFile)
		if err != nil {
			return err
		}

		err = config.WriteSample(p)
		if errors.Is(err, config.ErrFileExists) {
			l.Info("Properties file already exists, will not overwrite", "path", p)
			return nil
		}

		if err != nil {
			return err
		}

		l.Info("Sample configuration written, while some values are optional it is recommended that all are populated", "path", p)

		return nil
	}
}

func newSampleOptsCmd(out io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "sample-opts",
		Short: "Print the configuration as environment variables",
		Long: `Prints an export statement for every property. Values are taken from the
environment or the properties file given by --config when set, otherwise from the sample.`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return config.WriteSampleOpts(out, configFile)
		},
	}
}
