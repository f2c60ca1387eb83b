package web

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"TechDashboard/internal/domain"
	"TechDashboard/internal/ports"
	"TechDashboard/internal/usecase"
)

const maxToggleBody = 64 << 10

// Dashboard is the use case behind both endpoints.
type Dashboard interface {
	BuildPage(ctx context.Context) domain.Page
	Toggle(url, action string) (int, error)
}

// Handler serves the index page and the like-toggle endpoint.
type Handler struct {
	dashboard Dashboard
	renderer  ports.Renderer
	logger    *slog.Logger
}

type toggleRequest struct {
	URL    string `json:"url"`
	Action string `json:"action"`
}

type toggleResponse struct {
	Success bool `json:"success"`
	Likes   *int `json:"likes,omitempty"`
}

// NewHandler builds the routed HTTP handler, including request logging.
func NewHandler(dashboard Dashboard, renderer ports.Renderer, logger *slog.Logger) http.Handler {
	if logger == nil {
		logger = slog.Default()
	}
	h := &Handler{dashboard: dashboard, renderer: renderer, logger: logger}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", h.index)
	mux.HandleFunc("POST /like-toggle", h.likeToggle)

	return withRequestLog(mux, logger)
}

func (h *Handler) index(w http.ResponseWriter, r *http.Request) {
	page := h.dashboard.BuildPage(r.Context())

	var buf bytes.Buffer
	if err := h.renderer.Render(&buf, page); err != nil {
		h.logger.Error("render index failed", "error", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = buf.WriteTo(w)
}

func (h *Handler) likeToggle(w http.ResponseWriter, r *http.Request) {
	var req toggleRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxToggleBody)).Decode(&req); err != nil {
		h.logger.Debug("bad toggle body", "error", err)
		writeJSON(w, http.StatusBadRequest, toggleResponse{Success: false})
		return
	}

	likes, err := h.dashboard.Toggle(req.URL, req.Action)
	if errors.Is(err, usecase.ErrInvalidToggle) {
		h.logger.Debug("rejected toggle", "error", err)
		writeJSON(w, http.StatusBadRequest, toggleResponse{Success: false})
		return
	}
	if err != nil {
		h.logger.Error("toggle failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, toggleResponse{Success: false})
		return
	}

	writeJSON(w, http.StatusOK, toggleResponse{Success: true, Likes: &likes})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
