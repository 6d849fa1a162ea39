package components

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func TestHelpBar_ShowsAllBindings(t *testing.T) {
	h := NewHelpBar(
		KeyBinding{Key: "enter", Desc: "create token"},
		KeyBinding{Key: "esc", Desc: "quit"},
	)

	view := h.View()
	for _, want := range []string{"enter", "create token", "esc", "quit"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q: %q", want, view)
		}
	}
}

func TestHelpBar_DropsBindingsThatDoNotFit(t *testing.T) {
	h := NewHelpBar(
		KeyBinding{Key: "enter", Desc: "create token"},
		KeyBinding{Key: "ctrl+r", Desc: "refresh"},
	)
	h.Width = 20

	view := h.View()
	if lipgloss.Width(view) > 20 {
		t.Errorf("view is %d cells wide, limit 20", lipgloss.Width(view))
	}
	if !strings.Contains(view, "enter") || strings.Contains(view, "refresh") {
		t.Errorf("unexpected view %q", view)
	}
}

func TestHelpBar_Empty(t *testing.T) {
	if got := NewHelpBar().View(); got != "" {
		t.Errorf("View() = %q, want empty", got)
	}
}
