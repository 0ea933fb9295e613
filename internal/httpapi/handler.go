package httpapi

import (
	"bytes"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"

	"github.com/focusnest/crafternoon/internal/catalog"
	"github.com/focusnest/crafternoon/internal/hunt"
	sharederrors "github.com/focusnest/crafternoon/internal/shared/errors"
	"github.com/focusnest/crafternoon/internal/shared/logging"
	"github.com/focusnest/crafternoon/internal/view"
)

// Options tunes the HTTP surface.
type Options struct {
	AllowedOrigins []string
	SecureCookies  bool
	Logger         *slog.Logger
}

type handler struct {
	sessions *hunt.Sessions
	renderer *view.Renderer
	logger   *slog.Logger
}

type locationProgress struct {
	Completed int     `json:"completed"`
	Total     int     `json:"total"`
	Percent   float64 `json:"percent"`
	Complete  bool    `json:"complete"`
}

type progressResponse struct {
	Active    catalog.Location                      `json:"active"`
	Completed []string                              `json:"completed"`
	Locations map[catalog.Location]locationProgress `json:"locations"`
}

type resetResponse struct {
	Reset    bool             `json:"reset"`
	Progress progressResponse `json:"progress"`
}

// RegisterRoutes registers the page, form and JSON routes.
func RegisterRoutes(r chi.Router, sessions *hunt.Sessions, renderer *view.Renderer, opts Options) {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	h := &handler{sessions: sessions, renderer: renderer, logger: logger}

	r.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.FS(view.Static()))))

	r.Group(func(r chi.Router) {
		r.Use(BrowserContext(opts.SecureCookies))

		r.Get("/", h.page)
		r.Post("/tabs/{location}", h.selectTab)
		r.Post("/challenges/{id}/toggle", h.toggleForm)
		r.Post("/locations/{location}/reset", h.resetForm)

		r.Route("/api", func(r chi.Router) {
			r.Use(cors.New(cors.Options{
				AllowedOrigins:   opts.AllowedOrigins,
				AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodOptions},
				AllowedHeaders:   []string{"Content-Type", "Accept"},
				ExposedHeaders:   []string{HapticHeader},
				AllowCredentials: true,
			}).Handler)

			r.NotFound(func(w http.ResponseWriter, r *http.Request) {
				writeError(w, r, sharederrors.CodeNotFound, "no such endpoint: "+r.URL.Path)
			})
			r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
				writeError(w, r, sharederrors.CodeMethodNotAllowed, r.Method+" not allowed on "+r.URL.Path)
			})

			r.Get("/catalog", h.getCatalog)
			r.Get("/progress", h.getProgress)
			r.Post("/challenges/{id}/toggle", h.toggleAPI)
			r.Post("/locations/{location}/reset", h.resetAPI)
		})
	})
}

func (h *handler) session(r *http.Request) *hunt.Session {
	id, _ := BrowserContextID(r.Context())
	return h.sessions.Get(r.Context(), id)
}

func (h *handler) requestLogger(r *http.Request) *slog.Logger {
	logger := logging.WithRequestID(r.Context(), h.logger, middleware.GetReqID(r.Context()))
	if id, ok := BrowserContextID(r.Context()); ok {
		logger = logger.With("contextId", id)
	}
	return logger
}

func (h *handler) page(w http.ResponseWriter, r *http.Request) {
	state := h.session(r).State()

	var buf bytes.Buffer
	if err := h.renderer.Render(&buf, state); err != nil {
		h.requestLogger(r).Error("render page", "error", err)
		http.Error(w, "failed to render page", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	_, _ = buf.WriteTo(w)
}

func (h *handler) selectTab(w http.ResponseWriter, r *http.Request) {
	loc, err := catalog.ParseLocation(chi.URLParam(r, "location"))
	if err != nil {
		http.NotFound(w, r)
		return
	}
	h.session(r).SelectTab(r.Context(), loc)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (h *handler) toggleForm(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if !catalog.Known(id) {
		http.NotFound(w, r)
		return
	}
	// Browsers vibrate client-side; nothing to forward here.
	h.session(r).Toggle(r.Context(), id, nil)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (h *handler) resetForm(w http.ResponseWriter, r *http.Request) {
	loc, err := catalog.ParseLocation(chi.URLParam(r, "location"))
	if err != nil {
		http.NotFound(w, r)
		return
	}
	confirmed := hunt.Confirmed(r.PostFormValue("confirmed") == "true")
	if _, applied := h.session(r).ResetLocation(r.Context(), loc, confirmed); applied {
		h.requestLogger(r).Info("hunt reset", "location", loc)
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (h *handler) getCatalog(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"hunts": catalog.Hunts()})
}

func (h *handler) getProgress(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, toProgressResponse(h.session(r).State()))
}

func (h *handler) toggleAPI(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if !catalog.Known(id) {
		writeError(w, r, sharederrors.CodeNotFound, "unknown challenge: "+id)
		return
	}
	state := h.session(r).Toggle(r.Context(), id, headerHaptics{w: w})
	writeJSON(w, http.StatusOK, toProgressResponse(state))
}

func (h *handler) resetAPI(w http.ResponseWriter, r *http.Request) {
	loc, err := catalog.ParseLocation(chi.URLParam(r, "location"))
	if err != nil {
		writeError(w, r, sharederrors.CodeNotFound, "unknown location: "+chi.URLParam(r, "location"))
		return
	}
	confirmed := hunt.Confirmed(r.URL.Query().Get("confirm") == "true")
	state, applied := h.session(r).ResetLocation(r.Context(), loc, confirmed)
	writeJSON(w, http.StatusOK, resetResponse{Reset: applied, Progress: toProgressResponse(state)})
}

func toProgressResponse(s hunt.State) progressResponse {
	resp := progressResponse{
		Active:    s.Active,
		Completed: s.Progress.IDs(),
		Locations: make(map[catalog.Location]locationProgress),
	}
	for _, loc := range catalog.Locations() {
		done := s.CompletedCount(loc)
		resp.Locations[loc] = locationProgress{
			Completed: done,
			Total:     catalog.ChallengesPerLocation,
			Percent:   view.Percent(done, catalog.ChallengesPerLocation),
			Complete:  s.Complete(loc),
		}
	}
	return resp
}
