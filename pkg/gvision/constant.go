package gvision

import "time"

const (
	DefaultMaxResults = 10
	DefaultTimeout    = 15 * time.Second

	featureLabelDetection = "LABEL_DETECTION"
)
