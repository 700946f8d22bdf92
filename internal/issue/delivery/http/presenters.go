package http

import (
	"civic-ai-orchestrator/internal/classifier"
	"civic-ai-orchestrator/internal/issue"
)

// --- Request DTOs ---

type categorizeReq struct {
	Image       []byte
	ContentType string
	Filename    string
}

func (r categorizeReq) toInput() issue.CategorizeInput {
	return issue.CategorizeInput{
		Image:       r.Image,
		ContentType: r.ContentType,
		Filename:    r.Filename,
	}
}

// ---

type assessPriorityReq struct {
	// Pointer so that an empty description is accepted but a missing field is not.
	Description *string `json:"description" binding:"required" example:"Broken glass near the school entrance"`
}

func (r assessPriorityReq) toInput() issue.AssessPriorityInput {
	return issue.AssessPriorityInput{Description: *r.Description}
}

// ---

type labelReq struct {
	Description string  `json:"description" binding:"required" example:"Pothole"`
	Score       float64 `json:"score" example:"0.97"`
}

type classifyLabelsReq struct {
	Labels []labelReq `json:"labels" binding:"required,dive"`
}

func (r classifyLabelsReq) toInput() issue.ClassifyLabelsInput {
	labels := make([]classifier.Label, len(r.Labels))
	for i, l := range r.Labels {
		labels[i] = classifier.Label{Description: l.Description, Score: l.Score}
	}
	return issue.ClassifyLabelsInput{Labels: labels}
}

// --- Response DTOs ---

type categorizeResp struct {
	Category   string  `json:"category" example:"Pothole"`
	Confidence float64 `json:"confidence" example:"0.97"`
}

func (h *handler) newCategorizeResp(o issue.CategorizeOutput) categorizeResp {
	return categorizeResp{
		Category:   o.Result.Category,
		Confidence: o.Result.Confidence,
	}
}

type assessPriorityResp struct {
	Priority  string `json:"priority" example:"high"`
	Reasoning string `json:"reasoning" example:"Detected urgent keywords indicating a safety risk."`
}

func (h *handler) newAssessPriorityResp(o issue.AssessPriorityOutput) assessPriorityResp {
	return assessPriorityResp{
		Priority:  o.Result.Priority.String(),
		Reasoning: o.Result.Reasoning,
	}
}
