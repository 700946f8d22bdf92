package http

import (
	"github.com/gin-gonic/gin"

	"civic-ai-orchestrator/internal/issue"
	"civic-ai-orchestrator/pkg/log"
)

// Handler is the public interface for the issue HTTP delivery layer.
type Handler interface {
	Categorize(c *gin.Context)
	AssessPriority(c *gin.Context)
	ClassifyLabels(c *gin.Context)
}

type handler struct {
	l              log.Logger
	uc             issue.UseCase
	maxUploadBytes int64
}

// New creates a new HTTP handler for the issue domain.
func New(l log.Logger, uc issue.UseCase, maxUploadBytes int64) *handler {
	return &handler{
		l:              l,
		uc:             uc,
		maxUploadBytes: maxUploadBytes,
	}
}
