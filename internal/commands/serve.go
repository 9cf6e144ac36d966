package commands

import (
	"goldconv/internal/app"

	"github.com/spf13/cobra"
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API",
	Long: `Start the HTTP API with conversion sessions and one-shot price lookups.
The server shuts down gracefully on SIGINT or SIGTERM.

Examples:
  goldconv serve
  goldconv serve --config /etc/goldconv/config.yaml`,
	RunE: func(_ *cobra.Command, _ []string) error {
		return app.Run(cfgPath)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
