package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/legal-assistant/legal-assistant-backend/internal/legal_analysis/domain"
)

const DefaultHealthMessage = "AI Legal Assistant is running"

// HealthHandler is a liveness probe. It never checks the pipeline.
type HealthHandler struct {
	message string
}

func NewHealthHandler(message string) *HealthHandler {
	if message == "" {
		message = DefaultHealthMessage
	}
	return &HealthHandler{message: message}
}

func (h *HealthHandler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, domain.HealthResponse{
		Status:  "healthy",
		Message: h.message,
	})
}

func (h *HealthHandler) RegisterRoutes(r gin.IRouter) {
	r.GET("/health", h.HealthCheck)
}
