package controller

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

const probeTimeout = 2 * time.Second

// Probe checks one backing service and returns nil when it answers.
type Probe func(ctx context.Context) error

// HealthController reports the state of the API and its backing services.
type HealthController struct {
	database Probe
	cache    Probe
}

type HealthResponse struct {
	Status    string `json:"status"`
	Database  string `json:"database"`
	Cache     string `json:"cache"`
	Timestamp string `json:"timestamp"`
}

// NewHealthController creates a new health controller. A nil cache probe reports the cache as disabled.
func NewHealthController(database, cache Probe) *HealthController {
	return &HealthController{database: database, cache: cache}
}

func probeStatus(ctx context.Context, p Probe) string {
	if p == nil {
		return "disabled"
	}
	ctx, cancel := context.WithTimeout(ctx, probeTimeout)
	defer cancel()
	if p(ctx) != nil {
		return "disconnected"
	}
	return "connected"
}

// Check handles GET /health. It always answers 200; a broken database only degrades the status
// since the cache is optional.
func (h *HealthController) Check(c *gin.Context) {
	resp := HealthResponse{
		Status:    "ok",
		Database:  probeStatus(c.Request.Context(), h.database),
		Cache:     probeStatus(c.Request.Context(), h.cache),
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}
	if resp.Database != "connected" {
		resp.Status = "degraded"
	}
	c.JSON(http.StatusOK, resp)
}
