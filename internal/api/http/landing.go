package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const LandingTemplate = "index.html"

type LandingHandler struct {
	version string
}

func NewLandingHandler(version string) *LandingHandler {
	return &LandingHandler{version: version}
}

func (h *LandingHandler) Index(c *gin.Context) {
	c.HTML(http.StatusOK, LandingTemplate, gin.H{"Version": h.version})
}

func (h *LandingHandler) RegisterRoutes(r gin.IRouter) {
	r.GET("/", h.Index)
}
