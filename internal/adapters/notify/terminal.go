package notify

import (
	"fmt"
	"io"
	"sync"

	"github.com/emiliopalmerini/srsadmin/internal/domain"
	"github.com/emiliopalmerini/srsadmin/internal/pkg/tui/theme"
)

// Terminal prints each toast as a styled box to w.
type Terminal struct {
	mu     sync.Mutex
	w      io.Writer
	width  int
	styles *theme.Styles
}

// NewTerminal returns a sink writing to w. A width of 0 lets boxes size to content.
func NewTerminal(w io.Writer, width int) *Terminal {
	return &Terminal{
		w:      w,
		width:  width,
		styles: theme.Default(),
	}
}

func (t *Terminal) Pop(n domain.Notification) {
	t.mu.Lock()
	defer t.mu.Unlock()
	fmt.Fprintln(t.w, t.styles.RenderToast(n, t.width))
}
