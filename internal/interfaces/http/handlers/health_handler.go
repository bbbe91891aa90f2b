package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/turtacn/hsn-advisor/internal/application/advisor"
)

// HealthHandler serves the liveness and readiness probes.
type HealthHandler struct {
	svc     *advisor.Service
	version string
	startAt time.Time
}

// NewHealthHandler creates a new HealthHandler.
func NewHealthHandler(svc *advisor.Service, version string) *HealthHandler {
	return &HealthHandler{svc: svc, version: version, startAt: time.Now()}
}

// RegisterRoutes registers the probe routes on the engine root.
func (h *HealthHandler) RegisterRoutes(r gin.IRoutes) {
	r.GET("/healthz", h.Liveness)
	r.GET("/readyz", h.Readiness)
}

// Liveness handles GET /healthz.  Always 200 while the process runs.
func (h *HealthHandler) Liveness(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "alive",
		"version": h.version,
		"uptime":  time.Since(h.startAt).Truncate(time.Second).String(),
	})
}

// Readiness handles GET /readyz.  The service is ready once a non-empty
// reference table is loaded; before that every validation would report
// "code not found", so traffic must wait.
func (h *HealthHandler) Readiness(c *gin.Context) {
	entries := h.svc.TableSize()
	if entries == 0 {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status": "not_ready",
			"reason": "reference table is empty",
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"status":  "ready",
		"entries": entries,
	})
}
