package controller

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

const healthCheckTimeout = 2 * time.Second

// HealthCheck reports whether a dependency is reachable.
type HealthCheck func(ctx context.Context) error

// HealthController handles health check endpoints.
type HealthController struct {
	database HealthCheck
	cache    HealthCheck
}

// HealthResponse represents the health check response.
type HealthResponse struct {
	Status    string `json:"status"`
	Database  string `json:"database"`
	Cache     string `json:"cache"`
	Timestamp string `json:"timestamp"`
}

// NewHealthController creates a new health controller instance. cache may be
// nil when report caching is disabled.
func NewHealthController(database, cache HealthCheck) *HealthController {
	return &HealthController{
		database: database,
		cache:    cache,
	}
}

// Check handles GET /health requests. The API is "degraded" when the
// database is unreachable; a cache outage only shows in the cache field.
func (h *HealthController) Check(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), healthCheckTimeout)
	defer cancel()

	response := HealthResponse{
		Status:    "ok",
		Database:  probe(ctx, h.database),
		Cache:     probe(ctx, h.cache),
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}
	if response.Database != "connected" {
		response.Status = "degraded"
	}

	c.JSON(http.StatusOK, response)
}

func probe(ctx context.Context, check HealthCheck) string {
	if check == nil {
		return "disabled"
	}
	if err := check(ctx); err != nil {
		return "disconnected"
	}
	return "connected"
}
