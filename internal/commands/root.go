package commands

import (
	"github.com/spf13/cobra"
)

var (
	cfgPath string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "goldconv",
	Short: "Gold price conversion service",
	Long: `Prices gold by weight and purity in USD, AZN and TRY using the historical
spot price for a chosen date.

Upstream credentials are read from the environment or a .env file:
  GOLD_API_ACCESS_TOKEN, FOREX_API_KEY`,
	Version:       "1.0.0",
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().StringVarP(&cfgPath, "config", "c", "", "config file (default config.yaml, optional)")
}
