package planning

import (
	"context"
	"time"

	"planning-assistant/internal/model"
)

// UseCase defines the business logic interface for the planning domain.
type UseCase interface {
	// Chat runs one request/response cycle: records the user message,
	// produces the assistant reply, and generates the phase document
	// when the active phase is ready for it.
	Chat(ctx context.Context, sc model.Scope, input ChatInput) (ChatOutput, error)

	// SessionDetail returns the project snapshot and a conversation
	// digest for an existing session.
	SessionDetail(ctx context.Context, sessionID string) (SessionDetailOutput, error)

	// ListSessions returns a snapshot of active session keys.
	ListSessions(ctx context.Context) ([]string, error)

	// RemoveSession deletes a session; no-op when absent.
	RemoveSession(ctx context.Context, sessionID string) error

	// EvictSessions removes sessions idle longer than maxAge and
	// returns the number removed. Called by an external scheduler.
	EvictSessions(ctx context.Context, maxAge time.Duration) (int, error)

	// Document returns the latest stored payload of the given type.
	Document(ctx context.Context, sessionID string, docType model.DocumentType) (DocumentOutput, error)

	// ExportTasksToCalendar pushes the generated task list to Google
	// Calendar as one event per task.
	ExportTasksToCalendar(ctx context.Context, sessionID string) (ExportTasksOutput, error)
}
