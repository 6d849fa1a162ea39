package cli

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/emiliopalmerini/srsadmin/internal/adapters/logging"
	"github.com/emiliopalmerini/srsadmin/internal/adapters/notify"
	"github.com/emiliopalmerini/srsadmin/internal/app/tui"
	"github.com/emiliopalmerini/srsadmin/internal/experiments"
)

var consoleCmd = &cobra.Command{
	Use:   "console",
	Short: "Start the terminal console",
	Args:  cobra.NoArgs,
	RunE:  runConsole,
}

func runConsole(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	app, err := NewAppContext(ctx)
	if err != nil {
		return err
	}
	defer app.Close(context.Background())

	// The terminal belongs to bubbletea; toasts are shown on screen instead.
	queue := notify.NewQueue()
	sink := notify.NewMetered(notify.NewLogged(queue, logging.Nop()), app.Metrics)
	ctrl := experiments.NewController(app.API, sink)

	p := tea.NewProgram(tui.NewApp(ctx, ctrl, queue), tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("console failed: %w", err)
	}
	return nil
}
