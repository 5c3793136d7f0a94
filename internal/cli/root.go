// Package cli implements the laborplan command line.
package cli

import (
	"fmt"

	"labor-planner/internal/config"

	"github.com/spf13/cobra"
)

const defaultConfigPath = "laborplan.yaml"

type rootOptions struct {
	configPath string
}

func (o *rootOptions) loadConfig() (config.Config, error) {
	return config.Load(o.configPath)
}

// NewRootCmd builds the laborplan command tree.
func NewRootCmd(version string) *cobra.Command {
	if version == "" {
		version = "dev"
	}
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:     "laborplan",
		Version: version,
		Short:   "Warehouse labor headcount planning",
		Long: `laborplan turns inbound and outbound volumes into a recommended headcount
per warehouse process, using the productivity profiles of the process catalog.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
	}
	root.SetVersionTemplate("{{.Version}}\n")
	root.PersistentFlags().StringVarP(&opts.configPath, "config", "c", defaultConfigPath, "Path to the YAML configuration file")

	root.AddCommand(
		newServeCmd(opts),
		newCalcCmd(opts),
		&cobra.Command{
			Use:   "version",
			Short: "Print the laborplan version",
			Args:  cobra.NoArgs,
			Run: func(cmd *cobra.Command, args []string) {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), version)
			},
		},
	)
	return root
}

// Execute runs the command line with os.Args.
func Execute(version string) error {
	return NewRootCmd(version).Execute()
}
