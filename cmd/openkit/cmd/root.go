// Package cmd provides the command-line interface for openkit.
package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/sarchlab/openkit/config"
)

var envFiles []string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "openkit",
	Short: "Openkit tracks hierarchical actions and records their lifecycle.",
	Long: `Openkit tracks hierarchical actions and records their lifecycle. ` +
		`It can run a demo workload against the configured sink and dump ` +
		`the records stored in a SQLite file.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringSliceVar(&envFiles, "env-file", nil,
		"Load settings from these .env files. Defaults to .env if present.")
}

func loadConfig() (config.Config, error) {
	return config.Load(envFiles...)
}

// Execute adds all child commands to the root command and sets flags
// appropriately.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}
