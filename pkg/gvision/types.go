package gvision

import (
	"net/http"
	"time"
)

// Config configures the Cloud Vision client. Either CredentialsJSON,
// CredentialsPath or APIKey must be set unless HTTPClient already carries auth.
type Config struct {
	CredentialsPath string
	CredentialsJSON []byte
	APIKey          string
	Endpoint        string
	MaxResults      int64
	Timeout         time.Duration
	HTTPClient      *http.Client
}

// Label is a single label annotation.
type Label struct {
	Description string
	Score       float64
}

// APIError is a per-image error reported inside a successful annotate call.
type APIError struct {
	Code    int64
	Message string
}

func (e *APIError) Error() string {
	return "Google Vision API Error: " + e.Message
}
