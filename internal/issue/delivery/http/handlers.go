package http

import (
	"github.com/gin-gonic/gin"

	"civic-ai-orchestrator/pkg/response"
)

// Categorize godoc
// @Summary     Categorize an issue photo
// @Description Sends the uploaded image to the label recognizer and maps the labels to a category.
// @Description Recognizer failures yield category "Uncategorized" with confidence 0.
// @Tags        Classification
// @Accept      multipart/form-data
// @Produce     json
// @Param       file formData file true "Issue photo"
// @Success     200  {object} categorizeResp
// @Failure     400  {object} response.DetailResp "Bad Request"
// @Failure     413  {object} response.DetailResp "File too large"
// @Failure     415  {object} response.DetailResp "Not an image"
// @Failure     429  {object} response.DetailResp "Too many requests"
// @Failure     500  {object} response.DetailResp "Internal Server Error"
// @Router      /internal/ai/categorize [POST]
func (h *handler) Categorize(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processCategorizeReq(c)
	if err != nil {
		h.l.Warnf(ctx, "issue.delivery.Categorize: %v", err)
		h.abortWithError(c, err)
		return
	}

	output, err := h.uc.Categorize(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Categorize: %v", err)
		h.abortWithError(c, err)
		return
	}

	response.JSON(c, h.newCategorizeResp(output))
}

// AssessPriority godoc
// @Summary     Assess issue priority
// @Description Maps the free-text description to high, medium or low priority with a rationale.
// @Tags        Classification
// @Accept      json
// @Produce     json
// @Param       body body assessPriorityReq true "Issue description"
// @Success     200  {object} assessPriorityResp
// @Failure     400  {object} response.DetailResp "Bad Request"
// @Failure     429  {object} response.DetailResp "Too many requests"
// @Router      /internal/ai/assess-priority [POST]
func (h *handler) AssessPriority(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processAssessPriorityReq(c)
	if err != nil {
		h.abortWithError(c, err)
		return
	}

	output, err := h.uc.AssessPriority(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.AssessPriority: %v", err)
		h.abortWithError(c, err)
		return
	}

	response.JSON(c, h.newAssessPriorityResp(output))
}

// ClassifyLabels godoc
// @Summary     Classify recognizer labels
// @Description Maps caller supplied labels to a category without calling the recognizer.
// @Tags        Classification
// @Accept      json
// @Produce     json
// @Param       body body classifyLabelsReq true "Labels with scores in [0,1]"
// @Success     200  {object} categorizeResp
// @Failure     400  {object} response.DetailResp "Bad Request"
// @Failure     429  {object} response.DetailResp "Too many requests"
// @Router      /internal/ai/classify-labels [POST]
func (h *handler) ClassifyLabels(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processClassifyLabelsReq(c)
	if err != nil {
		h.abortWithError(c, err)
		return
	}

	output, err := h.uc.ClassifyLabels(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.ClassifyLabels: %v", err)
		h.abortWithError(c, err)
		return
	}

	response.JSON(c, h.newCategorizeResp(output))
}
