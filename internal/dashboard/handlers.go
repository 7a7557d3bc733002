package dashboard

import (
	"bytes"
	"context"
	"log/slog"
	"net/http"
	"strings"
	"sync/atomic"
	"time"

	"australia-analytics/internal/chart"
	"australia-analytics/internal/reporting"
)

// BreakerState reports the warehouse circuit breaker state for /status.
type BreakerState interface {
	State() string
}

// Info describes the running process for /status.
type Info struct {
	Version   string
	Warehouse string
	Breaker   BreakerState // nil when the warehouse is not guarded
}

// Handler serves pages, chart JSON and operational endpoints.
type Handler struct {
	svc       *Service
	pages     pages
	info      Info
	logger    *slog.Logger
	startedAt time.Time
	now       func() time.Time // Injectable clock for /status
	requests  atomic.Int64
}

// NewHandler parses the embedded page templates.
func NewHandler(svc *Service, info Info, logger *slog.Logger) (*Handler, error) {
	if logger == nil {
		logger = slog.Default()
	}
	p, err := loadPages(templatesFS)
	if err != nil {
		return nil, err
	}
	return &Handler{
		svc:       svc,
		pages:     p,
		info:      info,
		logger:    logger.With("component", "http"),
		startedAt: time.Now(),
		now:       time.Now,
	}, nil
}

// WithClock sets a custom clock function for deterministic uptime.
func (h *Handler) WithClock(now func() time.Time) *Handler {
	h.now = now
	h.startedAt = now()
	return h
}

func (h *Handler) figure(build func(ctx context.Context) (chart.Figure, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h.requests.Add(1)
		fig, err := build(r.Context())
		if err != nil {
			h.fail(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, fig)
	}
}

func (h *Handler) fail(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFor(err)
	if status >= http.StatusInternalServerError {
		h.logger.Error("request failed", "path", r.URL.Path, "status", status, "error", err)
	} else {
		h.logger.Warn("request rejected", "path", r.URL.Path, "status", status, "error", err)
	}
	writeError(w, status, err.Error())
}

func (h *Handler) handleForecast(w http.ResponseWriter, r *http.Request) {
	h.figure(h.svc.Forecast)(w, r)
}

func (h *Handler) handlePolicy(w http.ResponseWriter, r *http.Request) {
	h.figure(h.svc.Policy)(w, r)
}

func (h *Handler) handleNetMigration(w http.ResponseWriter, r *http.Request) {
	h.figure(h.svc.NetMigration)(w, r)
}

func (h *Handler) handlePopulation(w http.ResponseWriter, r *http.Request) {
	h.figure(h.svc.Population)(w, r)
}

func (h *Handler) handleFirstPreferences(w http.ResponseWriter, r *http.Request) {
	h.figure(h.svc.FirstPreferences)(w, r)
}

func (h *Handler) handleSeats(w http.ResponseWriter, r *http.Request) {
	h.figure(h.svc.Seats)(w, r)
}

func (h *Handler) handleStates(w http.ResponseWriter, r *http.Request) {
	h.requests.Add(1)
	states, err := h.svc.States(r.Context())
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"states": states})
}

func (h *Handler) handleMap(w http.ResponseWriter, r *http.Request) {
	h.requests.Add(1)
	state := strings.ToUpper(strings.TrimSpace(r.URL.Query().Get("state")))
	if state == "" {
		writeError(w, http.StatusBadRequest, "missing 'state' query parameter")
		return
	}
	fig, err := h.svc.ElectionMap(r.Context(), state)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, fig)
}

func (h *Handler) handleReport(w http.ResponseWriter, r *http.Request) {
	h.report(w, r, "text/markdown; charset=utf-8", reporting.RenderMarkdown)
}

func (h *Handler) handleForecastCSV(w http.ResponseWriter, r *http.Request) {
	h.report(w, r, "text/csv; charset=utf-8", func(rep *reporting.Report) string {
		return reporting.RenderForecastCSV(rep.Forecast)
	})
}

func (h *Handler) report(w http.ResponseWriter, r *http.Request, contentType string, render func(*reporting.Report) string) {
	h.requests.Add(1)
	rep, err := h.svc.Report(r.Context())
	if err != nil {
		h.fail(w, r, err)
		return
	}
	w.Header().Set("Content-Type", contentType)
	_, _ = w.Write([]byte(render(rep)))
}

func (h *Handler) handleProfile(w http.ResponseWriter, r *http.Request) {
	h.page(w, r, pageProfile, pageData{Title: "Profile", Active: "/"})
}

func (h *Handler) handleServices(w http.ResponseWriter, r *http.Request) {
	h.page(w, r, pageServices, pageData{Title: "Services", Active: "/services"})
}

func (h *Handler) handleImmigration(w http.ResponseWriter, r *http.Request) {
	summary, err := h.svc.Summary(r.Context())
	if err != nil {
		h.failPage(w, r, err)
		return
	}
	h.page(w, r, pageImmigration, pageData{Title: "Immigration Analysis", Active: "/immigration", Data: summary})
}

func (h *Handler) handleElection(w http.ResponseWriter, r *http.Request) {
	overview, err := h.svc.ElectionOverview(r.Context())
	if err != nil {
		h.failPage(w, r, err)
		return
	}
	h.page(w, r, pageElection, pageData{Title: "Election Analysis", Active: "/election", Data: overview})
}

// page renders into a buffer so a template error never leaves a half-written body.
func (h *Handler) page(w http.ResponseWriter, r *http.Request, name string, data pageData) {
	var buf bytes.Buffer
	if err := h.pages.render(&buf, name, data); err != nil {
		h.failPage(w, r, err)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = buf.WriteTo(w)
}

func (h *Handler) failPage(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFor(err)
	h.logger.Error("page failed", "path", r.URL.Path, "status", status, "error", err)
	http.Error(w, http.StatusText(status), status)
}

func (h *Handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

// StatusResponse is the JSON response for /status endpoint.
type StatusResponse struct {
	Status       string    `json:"status"`
	Version      string    `json:"version"`
	Warehouse    string    `json:"warehouse"`
	BreakerState string    `json:"breaker_state,omitempty"`
	StartedAt    time.Time `json:"started_at"`
	Uptime       string    `json:"uptime"`
	APIRequests  int64     `json:"api_requests"`
}

func (h *Handler) handleStatus(w http.ResponseWriter, r *http.Request) {
	resp := StatusResponse{
		Status:      "running",
		Version:     h.info.Version,
		Warehouse:   h.info.Warehouse,
		StartedAt:   h.startedAt,
		Uptime:      h.now().Sub(h.startedAt).Round(time.Second).String(),
		APIRequests: h.requests.Load(),
	}
	if h.info.Breaker != nil {
		resp.BreakerState = h.info.Breaker.State()
		if resp.BreakerState == "open" {
			resp.Status = "degraded"
		}
	}
	writeJSON(w, http.StatusOK, resp)
}
