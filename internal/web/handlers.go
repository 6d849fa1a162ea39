package web

import (
	"net/http"

	sharedmw "github.com/emiliopalmerini/srsadmin/internal/shared/middleware"
	"github.com/emiliopalmerini/srsadmin/internal/web/templates"
)

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	cs := s.sessions.get(w, r)
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	templates.Page(cs.page()).Render(r.Context(), w)
}

func (s *Server) handleTable(w http.ResponseWriter, r *http.Request) {
	cs := s.sessions.peek(r)
	if cs == nil {
		cs = s.sessions.transient(r.Context())
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	templates.Table(templates.NewExperimentTable(cs.ctrl.GetExperimentList())).Render(r.Context(), w)
}

func (s *Server) handleCreate(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form data", http.StatusBadRequest)
		return
	}

	cs := s.sessions.get(w, r)
	cs.ctrl.SetExperimentName(r.FormValue("name"))
	cs.ctrl.CreatePendingExperimentToken(r.Context())

	s.respond(w, r, cs)
}

func (s *Server) handleRefresh(w http.ResponseWriter, r *http.Request) {
	cs := s.sessions.get(w, r)
	if err := r.ParseForm(); err == nil && r.Form.Has("name") {
		cs.ctrl.SetExperimentName(r.FormValue("name"))
	}
	cs.ctrl.LoadExperimentList(r.Context())

	s.respond(w, r, cs)
}

// respond swaps the console fragment for HTMX callers and redirects plain
// form posts back to the page, which shows the queued toasts.
func (s *Server) respond(w http.ResponseWriter, r *http.Request, cs *consoleSession) {
	if sharedmw.IsHTMX(r) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		templates.Console(cs.page()).Render(r.Context(), w)
		return
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}
