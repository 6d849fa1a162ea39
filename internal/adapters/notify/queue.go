package notify

import (
	"sync"

	"github.com/emiliopalmerini/srsadmin/internal/domain"
)

// Queue buffers toasts until a UI drains them.
type Queue struct {
	mu      sync.Mutex
	pending []domain.Notification
}

func NewQueue() *Queue {
	return &Queue{}
}

func (q *Queue) Pop(n domain.Notification) {
	q.mu.Lock()
	q.pending = append(q.pending, n)
	q.mu.Unlock()
}

// Drain returns the buffered toasts in arrival order and empties the queue.
func (q *Queue) Drain() []domain.Notification {
	q.mu.Lock()
	defer q.mu.Unlock()
	out := q.pending
	q.pending = nil
	return out
}

// Len reports how many toasts are waiting.
func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.pending)
}
