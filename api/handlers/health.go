// ABOUTME: Health check handler for the Huma API
// ABOUTME: Reports service status and, when available, session cache statistics

package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
)

// StatsProvider exposes backend statistics, e.g. the SQLite cache
type StatsProvider interface {
	Stats() (map[string]interface{}, error)
}

// HealthHandler reports liveness
type HealthHandler struct {
	version string
	started time.Time
	stats   StatsProvider
}

// NewHealthHandler creates a health handler; stats may be nil
func NewHealthHandler(version string, stats StatsProvider) *HealthHandler {
	return &HealthHandler{
		version: version,
		started: time.Now(),
		stats:   stats,
	}
}

// RegisterRoutes registers the health route
func (h *HealthHandler) RegisterRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "health",
		Method:      http.MethodGet,
		Path:        "/health",
		Summary:     "Health check",
		Tags:        []string{"System"},
	}, h.Health)
}

// HealthOutput defines the health response
type HealthOutput struct {
	Body struct {
		Status  string                 `json:"status"`
		Version string                 `json:"version"`
		Uptime  string                 `json:"uptime"`
		Cache   map[string]interface{} `json:"cache,omitempty"`
	}
}

// Health handles GET /health
func (h *HealthHandler) Health(ctx context.Context, input *struct{}) (*HealthOutput, error) {
	out := &HealthOutput{}
	out.Body.Status = "ok"
	out.Body.Version = h.version
	out.Body.Uptime = time.Since(h.started).Round(time.Second).String()

	if h.stats != nil {
		stats, err := h.stats.Stats()
		if err != nil {
			out.Body.Status = "degraded"
		} else {
			out.Body.Cache = stats
		}
	}
	return out, nil
}
