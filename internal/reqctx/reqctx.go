package reqctx

import (
	"context"
	"strings"

	"github.com/gin-gonic/gin"
)

const CtxRequestID = "request_id"

// requestIDKey is the key used to store request ID in context
type requestIDKey struct{}

// WithRequestID returns a copy of ctx carrying rid.
func WithRequestID(ctx context.Context, rid string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, rid)
}

// RequestID extracts the request ID from a standard context
func RequestID(ctx context.Context) string {
	if rid, ok := ctx.Value(requestIDKey{}).(string); ok {
		return rid
	}
	return ""
}

// FromGin extracts the request ID set by the request ID middleware.
func FromGin(c *gin.Context) string {
	return strings.TrimSpace(c.GetString(CtxRequestID))
}
