package registry

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/emiliopalmerini/srsadmin/internal/ports"
)

// Handler serves the registry over HTTP.
type Handler struct {
	service *Service
	logger  ports.Logger
	metrics ports.MetricsExporter
}

func NewHandler(service *Service, logger ports.Logger, metrics ports.MetricsExporter) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
		metrics: metrics,
	}
}

// RegisterRoutes mounts the admin endpoints on mux.
func (h *Handler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /v1/admin/experiment", h.handleCreate)
	mux.HandleFunc("GET /v1/admin/experiment/list", h.handleList)
}

func (h *Handler) handleCreate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	start := time.Now()

	name := r.URL.Query().Get("name")
	created, err := h.service.Create(ctx, name)
	h.metrics.RecordRequest(ctx, "registry.create", time.Since(start), err)
	if err != nil {
		if errors.Is(err, ErrEmptyName) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		h.logger.Error("experiment registration failed", "name", name, "error", err)
		writeError(w, http.StatusInternalServerError, "failed to register experiment")
		return
	}

	h.logger.Info("experiment registered", "name", created.Name)
	writeJSON(w, http.StatusOK, created)
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	start := time.Now()

	experiments, err := h.service.List(ctx)
	h.metrics.RecordRequest(ctx, "registry.list", time.Since(start), err)
	if err != nil {
		h.logger.Error("listing experiments failed", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to list experiments")
		return
	}

	writeJSON(w, http.StatusOK, experiments)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
