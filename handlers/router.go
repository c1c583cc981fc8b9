package handlers

import (
	"io/fs"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// RouterOptions carries the wiring that is not part of the Handler itself
type RouterOptions struct {
	AllowedOrigins []string
	Static         fs.FS  // embedded assets served under /static/
	StaticDir      string // optional directory served for everything else
	Health         HealthInfo
}

// NewRouter builds the HTTP routes of the service
func NewRouter(h *Handler, opts RouterOptions) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(RequestLogger(h.logger))
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   opts.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	}))

	// Health checks
	r.Get("/health", h.Health(opts.Health))
	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	r.Get("/api/cities", h.GetCities)

	r.Group(func(r chi.Router) {
		r.Use(h.withSession)

		// Page and form actions
		r.Get("/", h.Index)
		r.Post("/selector/{field}/{action}", h.SelectorAction)
		r.Post("/swap", h.SwapForm)
		r.Post("/find", h.FindForm)
		r.Post("/dismiss", h.DismissForm)
		r.Post("/map/toggle", h.ToggleMapForm)

		// JSON API
		r.Get("/api/session", h.GetSession)
		r.Put("/api/session/{field}", h.SelectCity)
		r.Post("/api/session/swap", h.Swap)
		r.Post("/api/session/dismiss", h.Dismiss)
		r.Post("/api/session/find", h.Find)
		r.Get("/api/session/map.geojson", h.GetMapGeoJSON)
	})

	if opts.Static != nil {
		r.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.FS(opts.Static))))
	}

	if opts.StaticDir != "" {
		r.Handle("/*", http.FileServer(http.Dir(opts.StaticDir)))
	}

	return r
}
