// Package cli wires the hyperinvoice commands.
package cli

import (
	"github.com/angelofallars/hyperinvoice/internal/config"
	"github.com/spf13/cobra"
)

var (
	Version = "dev"

	envFile string
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:     "hyperinvoice",
	Version: Version,
	Short:   "Create one-page hourly invoices",
	Long: `hyperinvoice turns an hourly rate, the hours worked and an optional
date range into a one-page PDF invoice, either through a browser form
(serve) or straight from the command line (render).`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return RootCmd.Execute()
}

func init() {
	RootCmd.PersistentFlags().StringVar(&envFile, "env-file", ".env", "optional dotenv file to load before reading the environment")
}

func loadConfig() (*config.Config, error) {
	return config.Load(envFile)
}
