package errors

import "errors"

// Common errors
var (
	ErrInvalidInput  = errors.New("invalid input")
	ErrNotFound      = errors.New("resource not found")
	ErrAlreadyExists = errors.New("resource already exists")
	ErrInternalError = errors.New("internal server error")
)

// Analysis errors
var (
	ErrEmptyInterview   = errors.New("interview text is empty")
	ErrFactNotFound     = errors.New("interview fact not found")
	ErrAnalysisDegraded = errors.New("analysis degraded to placeholder result")
)

// Content errors
var (
	ErrContentNotFound = errors.New("generated content not found")
	ErrDraftFailed     = errors.New("article draft generation failed")
	ErrImageFailed     = errors.New("image generation failed")
)

// Publishing errors
var (
	ErrPublisherUnavailable = errors.New("wordpress publisher is not configured")
	ErrTrackerUnavailable   = errors.New("tracking sheet client is not configured")
	ErrAlreadyPublished     = errors.New("content already published")
	ErrPublishFailed        = errors.New("wordpress publish failed")
)
