package tui

import (
	"context"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/emiliopalmerini/srsadmin/internal/adapters/notify"
	"github.com/emiliopalmerini/srsadmin/internal/domain"
	"github.com/emiliopalmerini/srsadmin/internal/experiments"
	"github.com/emiliopalmerini/srsadmin/internal/pkg/tui/components"
	"github.com/emiliopalmerini/srsadmin/internal/pkg/tui/theme"
)

// DefaultToastTTL is how long a toast stays on screen.
const DefaultToastTTL = 5 * time.Second

type listLoadedMsg struct{}

type createdMsg struct{}

type toastExpiredMsg struct{ id int }

type toast struct {
	id int
	n  domain.Notification
}

// App is the terminal experiment console. It owns one Controller session.
type App struct {
	ctx      context.Context
	ctrl     *experiments.Controller
	queue    *notify.Queue
	input    textinput.Model
	help     components.HelpBar
	styles   *theme.Styles
	toastTTL time.Duration

	toasts  []toast
	nextID  int
	loading bool
	width   int
	height  int
}

// NewApp creates a console around ctrl. Toasts the controller emits must be
// delivered to queue.
func NewApp(ctx context.Context, ctrl *experiments.Controller, queue *notify.Queue) *App {
	input := textinput.New()
	input.Placeholder = "experiment name"
	input.Prompt = "› "
	input.Width = 40
	input.Focus()

	return &App{
		ctx:      ctx,
		ctrl:     ctrl,
		queue:    queue,
		input:    input,
		styles:   theme.Default(),
		toastTTL: DefaultToastTTL,
		help: components.NewHelpBar(
			components.KeyBinding{Key: "enter", Desc: "create token"},
			components.KeyBinding{Key: "ctrl+r", Desc: "refresh"},
			components.KeyBinding{Key: "esc", Desc: "quit"},
		),
	}
}

// Init implements tea.Model
func (a *App) Init() tea.Cmd {
	a.loading = true
	return tea.Batch(textinput.Blink, a.loadCmd())
}

// Update implements tea.Model
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "esc", "ctrl+c":
			return a, tea.Quit
		case "enter":
			a.ctrl.SetExperimentName(a.input.Value())
			return a, a.createCmd()
		case "ctrl+r":
			a.loading = true
			return a, a.loadCmd()
		}

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.help.Width = msg.Width
		return a, nil

	case listLoadedMsg:
		a.loading = false
		return a, a.collectToasts()

	case createdMsg:
		return a, a.collectToasts()

	case toastExpiredMsg:
		for i, t := range a.toasts {
			if t.id == msg.id {
				a.toasts = append(a.toasts[:i], a.toasts[i+1:]...)
				break
			}
		}
		return a, nil
	}

	var cmd tea.Cmd
	a.input, cmd = a.input.Update(msg)
	return a, cmd
}

func (a *App) loadCmd() tea.Cmd {
	return func() tea.Msg {
		a.ctrl.LoadExperimentList(a.ctx)
		return listLoadedMsg{}
	}
}

func (a *App) createCmd() tea.Cmd {
	return func() tea.Msg {
		a.ctrl.CreatePendingExperimentToken(a.ctx)
		return createdMsg{}
	}
}

// collectToasts moves queued notifications on screen and schedules their expiry.
func (a *App) collectToasts() tea.Cmd {
	var cmds []tea.Cmd
	for _, n := range a.queue.Drain() {
		a.nextID++
		id := a.nextID
		a.toasts = append(a.toasts, toast{id: id, n: n})
		cmds = append(cmds, tea.Tick(a.toastTTL, func(time.Time) tea.Msg {
			return toastExpiredMsg{id: id}
		}))
	}
	return tea.Batch(cmds...)
}

// View implements tea.Model
func (a *App) View() string {
	sep := lipgloss.NewStyle().
		Foreground(theme.DarkGray).
		Render(strings.Repeat("─", a.contentWidth()))

	sections := []string{a.renderHeader(), sep, a.input.View(), ""}
	for _, t := range a.toasts {
		sections = append(sections, a.styles.RenderToast(t.n, a.contentWidth()))
	}
	sections = append(sections, a.renderList(), "", a.help.View())

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (a *App) contentWidth() int {
	if a.width > 0 && a.width < 80 {
		return a.width - 2
	}
	return 78
}

func (a *App) renderHeader() string {
	title := lipgloss.NewStyle().
		Bold(true).
		Foreground(theme.White).
		Render("SQL-REST EXPERIMENTS")

	tagline := lipgloss.NewStyle().
		Foreground(theme.DimGray).
		Render("Token administration")

	return lipgloss.JoinHorizontal(lipgloss.Bottom, title, "  ", tagline)
}

func (a *App) renderList() string {
	list := a.ctrl.GetExperimentList()
	if len(list) == 0 {
		if a.loading {
			return a.styles.Muted.Render("Loading experiments…")
		}
		return a.styles.Muted.Render("No experiments yet.")
	}

	var b strings.Builder
	for _, e := range list {
		b.WriteString(a.styles.Bold.Render(displayName(e)))
		if tok := e.Token(); tok != "" {
			b.WriteString("  " + a.styles.Muted.Render(tok))
		}
		for _, k := range e.Keys() {
			switch k {
			case "name", "experiment_name", "token", "experiment_token":
				continue
			}
			b.WriteString("\n    " + a.styles.Muted.Render(k+": ") + a.styles.Body.Render(e.String(k)))
		}
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

func displayName(e domain.Experiment) string {
	if n := e.Name(); n != "" {
		return n
	}
	return "(unnamed)"
}
