package cli

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/emiliopalmerini/srsadmin/internal/web"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the browser console",
	Long: `Start the browser console. Every browser session gets its own
experiment list and notifications.

Examples:
  srsadmin serve              # Start on SRS_CONSOLE_PORT (default 8090)
  srsadmin serve --port 3000  # Start on port 3000`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

var servePort int

func init() {
	serveCmd.Flags().IntVarP(&servePort, "port", "p", 0, "Port to listen on (overrides SRS_CONSOLE_PORT)")
}

func runServe(cmd *cobra.Command, args []string) error {
	ctx, cancel := signalContext(cmd.Context())
	defer cancel()

	app, err := NewAppContext(ctx)
	if err != nil {
		return err
	}
	defer app.Close(context.Background())

	port := app.Config.Port
	if servePort != 0 {
		port = servePort
	}

	server := web.NewServer(app.API, port, app.Logger, app.Metrics)
	return server.Start(ctx)
}

// signalContext returns a context cancelled on SIGINT or SIGTERM.
func signalContext(parent context.Context) (context.Context, context.CancelFunc) {
	if parent == nil {
		parent = context.Background()
	}
	return signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
}
