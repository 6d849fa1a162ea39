package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "srsadmin",
	Short: "Experiment administration console for the SQL-REST server",
	Long: `srsadmin administers experiments on a SQL-REST server.

It lists registered experiments and mints experiment tokens through the
server's admin API, from the command line, a browser console or a terminal
console. It can also run the experiment registry backend itself.`,
	SilenceUsage: true,
}

var (
	adminURL string
	logLevel string
)

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&adminURL, "admin-url", "", "Admin API base URL (overrides SRS_ADMIN_URL)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level: debug, info, warn, error (overrides SRS_LOG_LEVEL)")

	rootCmd.AddCommand(experimentCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(consoleCmd)
	rootCmd.AddCommand(registryCmd)
}
