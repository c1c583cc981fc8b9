package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/you/pathfinder/finder"
	"github.com/you/pathfinder/mapview"
	"github.com/you/pathfinder/selector"
	"github.com/you/pathfinder/session"
)

// CitiesResponse is the JSON response structure for GET /api/cities
type CitiesResponse struct {
	Cities  []string `json:"cities"`
	Count   int      `json:"count"`
	Query   string   `json:"query,omitempty"`
	NoMatch string   `json:"noMatch,omitempty"`
}

// selectCityRequest is the body of PUT /api/session/{field}
type selectCityRequest struct {
	City string `json:"city"`
}

// GetCities handles GET /api/cities
// Returns catalog names filtered by the optional q query parameter
func (h *Handler) GetCities(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")
	cities := selector.Filter(h.catalog.Names(), query)

	resp := CitiesResponse{
		Cities: cities,
		Count:  len(cities),
		Query:  query,
	}
	if len(cities) == 0 {
		resp.NoMatch = selector.NoMatchMessage(query)
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "public, max-age=300")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(resp)
}

// GetSession handles GET /api/session
func (h *Handler) GetSession(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.state(sessionFrom(r)))
}

// SelectCity handles PUT /api/session/{field} with {"city": "..."}
func (h *Handler) SelectCity(w http.ResponseWriter, r *http.Request) {
	field, err := session.ParseField(chi.URLParam(r, "field"))
	if err != nil {
		writeError(w, http.StatusNotFound, "Unknown selector", map[string]interface{}{
			"field": chi.URLParam(r, "field"),
		})
		return
	}

	var body selectCityRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", map[string]interface{}{
			"internal": err.Error(),
		})
		return
	}

	if err := h.catalog.Lookup(body.City); err != nil {
		writeError(w, http.StatusBadRequest, "Unknown city", map[string]interface{}{
			"city": body.City,
		})
		return
	}

	sess := sessionFrom(r)
	sess.SelectCity(field, body.City)
	writeJSON(w, http.StatusOK, h.state(sess))
}

// Swap handles POST /api/session/swap
func (h *Handler) Swap(w http.ResponseWriter, r *http.Request) {
	sess := sessionFrom(r)
	sess.Finder.SwapCities()
	writeJSON(w, http.StatusOK, h.state(sess))
}

// Dismiss handles POST /api/session/dismiss
func (h *Handler) Dismiss(w http.ResponseWriter, r *http.Request) {
	sess := sessionFrom(r)
	sess.Finder.DismissError()
	writeJSON(w, http.StatusOK, h.state(sess))
}

// Find handles POST /api/session/find
// Responds 202 with the loading state, or with ?wait=true once the request
// has resolved. Rejected selections answer 422, a request already in flight 409.
func (h *Handler) Find(w http.ResponseWriter, r *http.Request) {
	sess := sessionFrom(r)

	done, err := sess.Finder.FindShortestPath(r.Context())
	if err != nil {
		var vErr *finder.ValidationError
		switch {
		case errors.Is(err, finder.ErrRequestInFlight):
			writeJSON(w, http.StatusConflict, h.state(sess))
		case errors.As(err, &vErr):
			writeJSON(w, http.StatusUnprocessableEntity, h.state(sess))
		default:
			writeError(w, http.StatusInternalServerError, "Failed to start path request", map[string]interface{}{
				"internal": err.Error(),
			})
		}
		return
	}

	wait, _ := strconv.ParseBool(r.URL.Query().Get("wait"))
	if !wait {
		writeJSON(w, http.StatusAccepted, h.state(sess))
		return
	}

	select {
	case <-done:
		writeJSON(w, http.StatusOK, h.state(sess))
	case <-r.Context().Done():
		// Client went away; the request still resolves into the session.
	}
}

// GetMapGeoJSON handles GET /api/session/map.geojson
func (h *Handler) GetMapGeoJSON(w http.ResponseWriter, r *http.Request) {
	snap := sessionFrom(r).Finder.Snapshot()

	var path []string
	if snap.Result != nil {
		path = snap.Result.Path
	}
	fc := mapview.Build(h.catalog, snap.Source, snap.Destination, path).FeatureCollection()

	data, err := fc.MarshalJSON()
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to encode map", map[string]interface{}{
			"internal": err.Error(),
		})
		return
	}

	w.Header().Set("Content-Type", "application/geo+json")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}
