package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/power-mac-book/travelkit-web/internal/infra/integration/travelapi"
)

type HealthHandler struct {
	API       *travelapi.Client
	StartTime time.Time
	Version   string
}

type HealthResponse struct {
	Status       string            `json:"status"`
	Version      string            `json:"version"`
	Uptime       string            `json:"uptime"`
	Dependencies map[string]string `json:"dependencies"`
}

func NewHealthHandler(api *travelapi.Client, version string) *HealthHandler {
	return &HealthHandler{
		API:       api,
		StartTime: time.Now(),
		Version:   version,
	}
}

func (h *HealthHandler) Handle(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
	defer cancel()

	deps := map[string]string{"travelkit_api": "ok"}
	status := http.StatusOK
	overall := "ok"

	if err := h.API.Ping(ctx); err != nil {
		deps["travelkit_api"] = "unreachable"
		overall = "degraded"
		status = http.StatusServiceUnavailable
	}

	writeJSON(w, status, HealthResponse{
		Status:       overall,
		Version:      h.Version,
		Uptime:       time.Since(h.StartTime).Round(time.Second).String(),
		Dependencies: deps,
	})
}
