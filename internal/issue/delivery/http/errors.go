package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"civic-ai-orchestrator/internal/issue"
	"civic-ai-orchestrator/pkg/response"
)

// mapError translates domain errors into a status code and detail message.
// Unknown errors become a 500 with a generic message.
func (h *handler) mapError(err error) (int, string) {
	switch {
	case errors.Is(err, issue.ErrEmptyImage),
		errors.Is(err, issue.ErrInvalidLabel),
		errors.Is(err, issue.ErrBlankLabel),
		errors.Is(err, errMissingFile),
		errors.Is(err, errInvalidBody):
		return http.StatusBadRequest, err.Error()
	case errors.Is(err, issue.ErrImageTooLarge):
		return http.StatusRequestEntityTooLarge, err.Error()
	case errors.Is(err, issue.ErrUnsupportedMediaType):
		return http.StatusUnsupportedMediaType, err.Error()
	default:
		return http.StatusInternalServerError, response.DefaultErrorMessage
	}
}

func (h *handler) abortWithError(c *gin.Context, err error) {
	status, msg := h.mapError(err)
	if status == http.StatusInternalServerError {
		response.InternalError(c)
		return
	}
	response.Detail(c, status, msg)
}
