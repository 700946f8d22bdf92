package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes maps the classification endpoints under rg. mw runs before
// every route, typically the rate limiter.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw ...gin.HandlerFunc) {
	ai := rg.Group("/ai", mw...)
	{
		ai.POST("/categorize", h.Categorize)
		ai.POST("/assess-priority", h.AssessPriority)
		ai.POST("/classify-labels", h.ClassifyLabels)
	}
}
