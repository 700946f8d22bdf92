package middleware

import (
	"io"

	"github.com/gin-gonic/gin"

	"civic-ai-orchestrator/pkg/response"
)

// Recovery turns a handler panic into a 500 detail response.
func (m Middleware) Recovery() gin.HandlerFunc {
	return gin.CustomRecoveryWithWriter(io.Discard, func(c *gin.Context, recovered any) {
		m.l.Errorf(c.Request.Context(), "middleware.Recovery: panic %s %s: %v", c.Request.Method, c.Request.URL.Path, recovered)
		response.InternalError(c)
	})
}
