package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/emiliopalmerini/srsadmin/internal/pkg/tui/theme"
)

// KeyBinding represents a key binding for the help bar
type KeyBinding struct {
	Key  string
	Desc string
}

// HelpBar renders key bindings on one line. Bindings that do not fit in
// Width are dropped from the end; a Width of 0 shows them all.
type HelpBar struct {
	Bindings []KeyBinding
	Width    int
	styles   *theme.Styles
}

func NewHelpBar(bindings ...KeyBinding) HelpBar {
	return HelpBar{
		Bindings: bindings,
		styles:   theme.Default(),
	}
}

func (h HelpBar) View() string {
	sep := h.styles.Muted.Render(" • ")

	var b strings.Builder
	for i, kb := range h.Bindings {
		part := h.styles.HelpKey.Render(kb.Key) + " " + h.styles.Muted.Render(kb.Desc)
		if i > 0 {
			part = sep + part
		}
		if h.Width > 0 && lipgloss.Width(b.String()+part) > h.Width {
			break
		}
		b.WriteString(part)
	}
	return b.String()
}
