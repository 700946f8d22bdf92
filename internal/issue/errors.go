package issue

import "errors"

var (
	ErrEmptyImage           = errors.New("uploaded file is empty")
	ErrImageTooLarge        = errors.New("uploaded file is too large")
	ErrUnsupportedMediaType = errors.New("uploaded file is not an image")
	ErrInvalidLabel         = errors.New("label score must be between 0 and 1")
	ErrBlankLabel           = errors.New("label description must not be blank")
)
