package http

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/legal-assistant/legal-assistant-backend/internal/legal_analysis/domain"
	"github.com/legal-assistant/legal-assistant-backend/internal/reqctx"
)

// RenderError writes the failure envelope for err and aborts the chain.
func RenderError(c *gin.Context, err error) {
	c.AbortWithStatusJSON(domain.KindOf(err).StatusCode(), domain.Failed(domain.ClientMessage(err)))
}

// NotFound answers every unmatched route.
func NotFound(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusNotFound, domain.Failed(domain.MsgNotFound))
}

// Recovery turns a panic escaping any handler into the generic 500
// envelope.
func Recovery(c *gin.Context, recovered any) {
	log.Printf("[error] request_id=%s operation=recover path=%s panic=%v", reqctx.FromGin(c), c.Request.URL.Path, recovered)
	c.AbortWithStatusJSON(http.StatusInternalServerError, domain.Failed(domain.MsgInternal))
}
