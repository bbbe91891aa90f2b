package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/turtacn/hsn-advisor/internal/application/advisor"
)

// AdvisorHandler exposes validation, classification, and chat endpoints.
type AdvisorHandler struct {
	svc *advisor.Service
}

// NewAdvisorHandler creates a new AdvisorHandler.
func NewAdvisorHandler(svc *advisor.Service) *AdvisorHandler {
	return &AdvisorHandler{svc: svc}
}

// RegisterRoutes registers the advisor routes on the given group.
func (h *AdvisorHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/validate", h.Validate)
	rg.POST("/validate/batch", h.ValidateBatch)
	rg.POST("/classify", h.Classify)
	rg.POST("/chat", h.Chat)
}

type validateRequest struct {
	HSNCode string `json:"hsn_code" binding:"required"`
}

// Validate handles POST /api/v1/validate.
func (h *AdvisorHandler) Validate(c *gin.Context) {
	var req validateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeInvalidParam(c, `request body must be JSON with a non-empty "hsn_code" field`)
		return
	}

	result := h.svc.Validate(req.HSNCode)
	c.JSON(http.StatusOK, gin.H{
		"hsn_code": req.HSNCode,
		"result":   result,
	})
}

type validateBatchRequest struct {
	HSNCodes []string `json:"hsn_codes" binding:"required"`
}

// ValidateBatch handles POST /api/v1/validate/batch.  Results come back in
// request order, duplicates included.
func (h *AdvisorHandler) ValidateBatch(c *gin.Context) {
	var req validateBatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeInvalidParam(c, `request body must be JSON with an "hsn_codes" array`)
		return
	}
	if len(req.HSNCodes) == 0 {
		writeInvalidParam(c, `"hsn_codes" must not be empty`)
		return
	}

	c.JSON(http.StatusOK, gin.H{"results": h.svc.ValidateAll(req.HSNCodes)})
}

type messageRequest struct {
	Message string `json:"message" binding:"required"`
}

// Classify handles POST /api/v1/classify.  It partitions the message into
// candidate codes and rejected tokens without validating the candidates.
func (h *AdvisorHandler) Classify(c *gin.Context) {
	var req messageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeInvalidParam(c, `request body must be JSON with a non-empty "message" field`)
		return
	}

	c.JSON(http.StatusOK, h.svc.Classify(req.Message))
}

// Chat handles POST /api/v1/chat and returns the composed reply text.
func (h *AdvisorHandler) Chat(c *gin.Context) {
	var req messageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeInvalidParam(c, `request body must be JSON with a non-empty "message" field`)
		return
	}

	c.JSON(http.StatusOK, gin.H{"reply": h.svc.Respond(req.Message)})
}
