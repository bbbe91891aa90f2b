package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/turtacn/hsn-advisor/internal/application/advisor"
)

// AdminHandler exposes the invalid-attempt counters.
type AdminHandler struct {
	svc *advisor.Service
}

// NewAdminHandler creates a new AdminHandler.
func NewAdminHandler(svc *advisor.Service) *AdminHandler {
	return &AdminHandler{svc: svc}
}

// RegisterRoutes registers the admin routes on the given group.
func (h *AdminHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/admin/invalids", h.InvalidSummary)
	rg.DELETE("/admin/invalids", h.ResetInvalids)
}

// InvalidSummary handles GET /api/v1/admin/invalids.  Entries are ordered by
// count descending, ties by first occurrence.
func (h *AdminHandler) InvalidSummary(c *gin.Context) {
	summary := h.svc.InvalidSummary()
	c.JSON(http.StatusOK, gin.H{
		"invalid_attempts": summary,
		"total":            len(summary),
	})
}

// ResetInvalids handles DELETE /api/v1/admin/invalids.
func (h *AdminHandler) ResetInvalids(c *gin.Context) {
	h.svc.ResetTracker()
	c.JSON(http.StatusOK, gin.H{"status": "reset"})
}
