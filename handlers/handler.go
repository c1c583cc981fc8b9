package handlers

import (
	"encoding/json"
	"html/template"
	"log/slog"
	"net/http"

	"github.com/you/pathfinder/catalog"
	"github.com/you/pathfinder/finder"
	"github.com/you/pathfinder/mapview"
	"github.com/you/pathfinder/render"
	"github.com/you/pathfinder/selector"
	"github.com/you/pathfinder/session"
)

// ErrorResponse is the JSON error response structure
type ErrorResponse struct {
	Error   string                 `json:"error"`
	Details map[string]interface{} `json:"details,omitempty"`
}

// StateResponse is the JSON view of one session: the orchestrator snapshot
// plus everything derived from it
type StateResponse struct {
	Session     finder.Snapshot    `json:"session"`
	Source      selector.View      `json:"sourceSelector"`
	Destination selector.View      `json:"destinationSelector"`
	Result      *render.ResultView `json:"result,omitempty"`
	Map         *mapview.View      `json:"map,omitempty"`
	ShowMap     bool               `json:"showMap"`
	CanFind     bool               `json:"canFind"`
}

// Handler serves the page, the form actions and the JSON API for all sessions
type Handler struct {
	catalog  *catalog.Catalog
	sessions *session.Store
	tmpl     *template.Template
	logger   *slog.Logger
}

// New creates a Handler. tmpl must define "index.html".
func New(cat *catalog.Catalog, sessions *session.Store, tmpl *template.Template, logger *slog.Logger) *Handler {
	return &Handler{
		catalog:  cat,
		sessions: sessions,
		tmpl:     tmpl,
		logger:   logger,
	}
}

// state derives the full view of sess from one consistent snapshot
func (h *Handler) state(sess *session.Session) StateResponse {
	snap := sess.Finder.Snapshot()
	src, dst := sess.SelectorViews(h.catalog.Names(), snap)

	resp := StateResponse{
		Session:     snap,
		Source:      src,
		Destination: dst,
		ShowMap:     sess.ShowMap(),
		CanFind:     snap.CanFind(),
	}

	var path []string
	if snap.Result != nil {
		resp.Result = render.NewResultView(snap.Result, snap.Source, snap.Destination)
		path = snap.Result.Path
	}
	if resp.ShowMap {
		m := mapview.Build(h.catalog, snap.Source, snap.Destination, path)
		resp.Map = &m
	}

	return resp
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string, details map[string]interface{}) {
	writeJSON(w, status, ErrorResponse{Error: msg, Details: details})
}
