package http

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"civic-ai-orchestrator/internal/issue"
)

// multipartOverhead leaves room for boundaries and part headers around the file.
const multipartOverhead = 64 << 10

var (
	errMissingFile = errors.New("file is required")
	errInvalidBody = errors.New("invalid request body")
)

// processCategorizeReq reads the multipart "file" part, bounded by maxUploadBytes.
func (h *handler) processCategorizeReq(c *gin.Context) (categorizeReq, error) {
	var req categorizeReq

	if h.maxUploadBytes > 0 {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.maxUploadBytes+multipartOverhead)
	}

	fh, err := c.FormFile("file")
	if err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			return req, issue.ErrImageTooLarge
		}
		return req, errMissingFile
	}
	if h.maxUploadBytes > 0 && fh.Size > h.maxUploadBytes {
		return req, issue.ErrImageTooLarge
	}

	f, err := fh.Open()
	if err != nil {
		return req, err
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return req, err
	}

	req.Image = data
	req.ContentType = fh.Header.Get("Content-Type")
	req.Filename = fh.Filename
	return req, nil
}

// processAssessPriorityReq binds the JSON description body.
func (h *handler) processAssessPriorityReq(c *gin.Context) (assessPriorityReq, error) {
	var req assessPriorityReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, errInvalidBody
	}
	return req, nil
}

// processClassifyLabelsReq binds the JSON label list body.
func (h *handler) processClassifyLabelsReq(c *gin.Context) (classifyLabelsReq, error) {
	var req classifyLabelsReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, errInvalidBody
	}
	return req, nil
}
