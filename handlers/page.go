package handlers

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/you/pathfinder/finder"
	"github.com/you/pathfinder/session"
)

// Index handles GET /
func (h *Handler) Index(w http.ResponseWriter, r *http.Request) {
	view := h.state(sessionFrom(r))

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	if err := h.tmpl.ExecuteTemplate(w, "index.html", view); err != nil {
		h.logger.Error("failed to render page", "error", err)
	}
}

// SelectorAction handles POST /selector/{field}/{action}
// where action is toggle, search (form value q), select (form value city) or close
func (h *Handler) SelectorAction(w http.ResponseWriter, r *http.Request) {
	field, err := session.ParseField(chi.URLParam(r, "field"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}

	sess := sessionFrom(r)
	switch chi.URLParam(r, "action") {
	case "toggle":
		sess.ToggleSelector(field)
	case "search":
		sess.SearchSelector(field, r.PostForm.Get("q"))
	case "select":
		city := r.PostForm.Get("city")
		if err := h.catalog.Lookup(city); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		sess.SelectCity(field, city)
	case "close":
		sess.CloseSelectors()
	default:
		http.NotFound(w, r)
		return
	}

	redirectHome(w, r)
}

// SwapForm handles POST /swap
func (h *Handler) SwapForm(w http.ResponseWriter, r *http.Request) {
	sessionFrom(r).Finder.SwapCities()
	redirectHome(w, r)
}

// DismissForm handles POST /dismiss
func (h *Handler) DismissForm(w http.ResponseWriter, r *http.Request) {
	sessionFrom(r).Finder.DismissError()
	redirectHome(w, r)
}

// ToggleMapForm handles POST /map/toggle
func (h *Handler) ToggleMapForm(w http.ResponseWriter, r *http.Request) {
	sessionFrom(r).ToggleMap()
	redirectHome(w, r)
}

// FindForm handles POST /find. It waits for the request to resolve so the
// redirected page shows the outcome.
func (h *Handler) FindForm(w http.ResponseWriter, r *http.Request) {
	sess := sessionFrom(r)
	sess.CloseSelectors()

	done, err := sess.Finder.FindShortestPath(r.Context())
	if err != nil {
		var vErr *finder.ValidationError
		if !errors.Is(err, finder.ErrRequestInFlight) && !errors.As(err, &vErr) {
			h.logger.Error("failed to start path request", "error", err)
		}
		redirectHome(w, r)
		return
	}

	select {
	case <-done:
	case <-r.Context().Done():
		return
	}
	redirectHome(w, r)
}

func redirectHome(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, "/", http.StatusSeeOther)
}
