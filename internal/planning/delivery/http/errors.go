package http

import (
	"errors"

	"planning-assistant/internal/planning"
	pkgErrors "planning-assistant/pkg/errors"
)

// mapError translates domain errors into HTTP errors from pkg/errors.
// Unknown errors become an opaque 500 so internals never leak.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, planning.ErrNoMessages):
		return pkgErrors.NewHTTPError(400, "request contains no messages")
	case errors.Is(err, planning.ErrEmptyMessage):
		return pkgErrors.NewHTTPError(400, "latest message has no text content")
	case errors.Is(err, planning.ErrInvalidDocumentType):
		return pkgErrors.NewHTTPError(400, "invalid document type")
	case errors.Is(err, planning.ErrSessionNotFound):
		return pkgErrors.NewHTTPError(404, "session not found")
	case errors.Is(err, planning.ErrDocumentNotFound):
		return pkgErrors.NewHTTPError(404, "document not generated yet")
	case errors.Is(err, planning.ErrTasksNotGenerated):
		return pkgErrors.NewHTTPError(409, "tasks document not generated yet")
	case errors.Is(err, planning.ErrCalendarNotConfigured):
		return pkgErrors.NewHTTPError(503, "calendar export is not configured")
	case errors.Is(err, planning.ErrInvalidPhaseTransition):
		return pkgErrors.NewHTTPError(409, "phase transition is not allowed")
	default:
		return pkgErrors.NewHTTPError(500, "internal server error")
	}
}
