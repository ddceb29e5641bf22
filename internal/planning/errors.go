package planning

import "errors"

// Domain-specific errors for the planning package.
var (
	ErrNoMessages             = errors.New("request contains no messages")
	ErrEmptyMessage           = errors.New("latest message has no text content")
	ErrSessionNotFound        = errors.New("session not found")
	ErrDocumentNotFound       = errors.New("document not generated yet")
	ErrInvalidDocumentType    = errors.New("invalid document type")
	ErrInvalidPhaseTransition = errors.New("phase transition is not allowed")
	ErrTasksNotGenerated      = errors.New("tasks document not generated yet")
	ErrCalendarNotConfigured  = errors.New("google calendar is not configured")
)
