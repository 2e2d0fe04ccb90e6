package http

import "github.com/gin-gonic/gin"

// Register registers the analysis routes. Middleware in mw runs only for
// the analyze endpoint.
func (h *Handler) Register(rg gin.IRouter, mw ...gin.HandlerFunc) {
	rg.POST("/analyze", append(mw, h.Analyze)...)
}
