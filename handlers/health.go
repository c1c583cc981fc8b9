package handlers

import (
	"net/http"
	"time"
)

// HealthResponse is the JSON response for GET /health
type HealthResponse struct {
	Status        string    `json:"status"`
	CatalogSource string    `json:"catalogSource"`
	Cities        int       `json:"cities"`
	Sessions      int       `json:"sessions"`
	PathService   string    `json:"pathService"`
	Timestamp     time.Time `json:"timestamp"`
}

// HealthInfo describes the wiring reported by the health endpoint
type HealthInfo struct {
	CatalogSource string
	PathService   string
}

// Health handles GET /health
// The service is healthy once the catalog is loaded; the path service is
// reported but not probed.
func (h *Handler) Health(info HealthInfo) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		resp := HealthResponse{
			Status:        "ok",
			CatalogSource: info.CatalogSource,
			Cities:        h.catalog.Len(),
			Sessions:      h.sessions.Count(),
			PathService:   info.PathService,
			Timestamp:     time.Now().UTC(),
		}

		status := http.StatusOK
		if resp.Cities == 0 {
			resp.Status = "error"
			status = http.StatusServiceUnavailable
		}

		writeJSON(w, status, resp)
	}
}
