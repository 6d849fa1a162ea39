package web

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/emiliopalmerini/srsadmin/internal/adapters/notify"
	"github.com/emiliopalmerini/srsadmin/internal/experiments"
	"github.com/emiliopalmerini/srsadmin/internal/ports"
	"github.com/emiliopalmerini/srsadmin/internal/web/templates"
)

const (
	sessionCookie = "srsadmin_session"
	sessionIdle   = 12 * time.Hour
	maxSessions   = 1024
)

// consoleSession is one visitor's console: its own list, pending name and toasts.
type consoleSession struct {
	ctrl     *experiments.Controller
	queue    *notify.Queue
	lastSeen time.Time
}

// page drains the pending toasts into a renderable view.
func (cs *consoleSession) page() templates.ConsolePage {
	pending := cs.queue.Drain()
	toasts := make([]templates.Toast, 0, len(pending))
	for _, n := range pending {
		toasts = append(toasts, templates.NewToast(n))
	}
	return templates.ConsolePage{
		Table:  templates.NewExperimentTable(cs.ctrl.GetExperimentList()),
		Name:   cs.ctrl.ExperimentName(),
		Toasts: toasts,
	}
}

type sessionStore struct {
	api     ports.ExperimentAPI
	logger  ports.Logger
	metrics ports.MetricsExporter
	now     func() time.Time
	limit   int

	mu       sync.Mutex
	sessions map[string]*consoleSession
}

func newSessionStore(api ports.ExperimentAPI, logger ports.Logger, metrics ports.MetricsExporter) *sessionStore {
	return &sessionStore{
		api:      api,
		logger:   logger,
		metrics:  metrics,
		now:      time.Now,
		limit:    maxSessions,
		sessions: make(map[string]*consoleSession),
	}
}

// get returns the caller's session, opening a new one (and setting the
// cookie) when the request carries none or an unknown id.
func (s *sessionStore) get(w http.ResponseWriter, r *http.Request) *consoleSession {
	if c, err := r.Cookie(sessionCookie); err == nil {
		if cs := s.lookup(c.Value); cs != nil {
			return cs
		}
	}

	id := uuid.New().String()
	cs := s.open(r.Context(), id)
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookie,
		Value:    id,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return cs
}

// peek returns the caller's session without opening one.
func (s *sessionStore) peek(r *http.Request) *consoleSession {
	c, err := r.Cookie(sessionCookie)
	if err != nil {
		return nil
	}
	return s.lookup(c.Value)
}

// transient builds a loaded console that is never stored.
func (s *sessionStore) transient(ctx context.Context) *consoleSession {
	queue := notify.NewQueue()
	cs := &consoleSession{
		ctrl:  experiments.NewController(s.api, notify.NewLogged(queue, s.logger)),
		queue: queue,
	}
	cs.ctrl.LoadExperimentList(ctx)
	return cs
}

func (s *sessionStore) lookup(id string) *consoleSession {
	s.mu.Lock()
	defer s.mu.Unlock()
	cs, ok := s.sessions[id]
	if !ok {
		return nil
	}
	cs.lastSeen = s.now()
	return cs
}

func (s *sessionStore) open(ctx context.Context, id string) *consoleSession {
	queue := notify.NewQueue()
	sink := notify.NewMetered(notify.NewLogged(queue, s.logger), s.metrics)
	cs := &consoleSession{
		ctrl:  experiments.NewController(s.api, sink),
		queue: queue,
	}
	cs.ctrl.LoadExperimentList(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.evictIdle()
	for s.limit > 0 && len(s.sessions) >= s.limit {
		s.evictOldest()
	}
	cs.lastSeen = s.now()
	s.sessions[id] = cs
	s.logger.Debug("console session opened", "session", id, "open", len(s.sessions))
	return cs
}

// evictIdle drops sessions unused for longer than sessionIdle. Callers hold mu.
func (s *sessionStore) evictIdle() {
	cutoff := s.now().Add(-sessionIdle)
	for id, cs := range s.sessions {
		if cs.lastSeen.Before(cutoff) {
			delete(s.sessions, id)
		}
	}
}

// evictOldest drops the least recently seen session. Callers hold mu.
func (s *sessionStore) evictOldest() {
	var oldestID string
	var oldest time.Time
	for id, cs := range s.sessions {
		if oldestID == "" || cs.lastSeen.Before(oldest) {
			oldestID, oldest = id, cs.lastSeen
		}
	}
	delete(s.sessions, oldestID)
}

func (s *sessionStore) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}
