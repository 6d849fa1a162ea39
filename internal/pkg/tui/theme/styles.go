package theme

import (
	"sync"

	"github.com/charmbracelet/lipgloss"

	"github.com/emiliopalmerini/srsadmin/internal/domain"
)

// Styles contains all shared TUI styles
type Styles struct {
	// Text styles
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Body     lipgloss.Style
	Muted    lipgloss.Style
	Bold     lipgloss.Style

	// Help and hints
	Help    lipgloss.Style
	HelpKey lipgloss.Style

	// Layout
	Card   lipgloss.Style
	Border lipgloss.Style

	// Status indicators
	Success lipgloss.Style
	Warning lipgloss.Style
	Error   lipgloss.Style
	Info    lipgloss.Style

	// Toast is the frame around a notification; the border color is set per severity.
	Toast lipgloss.Style
}

var (
	defaultStyles *Styles
	once          sync.Once
)

// Default returns the singleton default Styles instance
func Default() *Styles {
	once.Do(func() {
		defaultStyles = newStyles()
	})
	return defaultStyles
}

func newStyles() *Styles {
	return &Styles{
		// Text styles
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(White).
			MarginBottom(1),

		Subtitle: lipgloss.NewStyle().
			Foreground(Purple).
			Bold(true).
			MarginBottom(1),

		Body: lipgloss.NewStyle().
			Foreground(LightGray),

		Muted: lipgloss.NewStyle().
			Foreground(DimGray),

		Bold: lipgloss.NewStyle().
			Bold(true).
			Foreground(White),

		// Help and hints
		Help: lipgloss.NewStyle().
			Foreground(DimGray),

		HelpKey: lipgloss.NewStyle().
			Foreground(BrightPurple).
			Bold(true),

		// Layout
		Card: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(DarkGray).
			Padding(0, 1),

		Border: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(DimGray),

		// Status indicators
		Success: lipgloss.NewStyle().
			Foreground(Success),

		Warning: lipgloss.NewStyle().
			Foreground(Warning),

		Error: lipgloss.NewStyle().
			Foreground(Error),

		Info: lipgloss.NewStyle().
			Foreground(Info),

		Toast: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(0, 1),
	}
}

// ForSeverity returns the status style matching a notification severity.
func (s *Styles) ForSeverity(sev domain.Severity) lipgloss.Style {
	switch sev {
	case domain.SeveritySuccess:
		return s.Success
	case domain.SeverityInfo:
		return s.Info
	case domain.SeverityWarning:
		return s.Warning
	case domain.SeverityError:
		return s.Error
	}
	return s.Body
}

// Icon returns the glyph shown in front of a notification title.
func Icon(sev domain.Severity) string {
	switch sev {
	case domain.SeveritySuccess:
		return "✔"
	case domain.SeverityInfo:
		return "ℹ"
	case domain.SeverityWarning:
		return "⚠"
	case domain.SeverityError:
		return "✖"
	}
	return "•"
}

// RenderToast renders a notification as a bordered box colored by severity.
func (s *Styles) RenderToast(n domain.Notification, width int) string {
	status := s.ForSeverity(n.Severity)
	title := status.Bold(true).Render(Icon(n.Severity) + " " + n.Title)
	body := s.Body.Render(n.Body)

	box := s.Toast.BorderForeground(status.GetForeground())
	if width > 0 {
		box = box.Width(width)
	}
	return box.Render(title + "\n" + body)
}
