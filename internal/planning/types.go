package planning

import (
	"time"

	"planning-assistant/internal/model"
)

// ChatMessage is one inbound chat turn.
type ChatMessage struct {
	Role    string
	Content string
}

// ChatInput is the input for UseCase.Chat. SessionID may be empty, in
// which case a fresh session key is minted.
type ChatInput struct {
	SessionID string
	Messages  []ChatMessage
}

// GeneratedDocument is present on ChatOutput only when a document was
// generated this turn.
type GeneratedDocument struct {
	Type     model.DocumentType
	Markdown string
	Version  int
}

// ProjectSnapshot is a read-only view of the project session state.
type ProjectSnapshot struct {
	ProjectName     string
	Phase           model.Phase
	HasRequirements bool
	HasDesign       bool
	HasTasks        bool
	CreatedAt       time.Time
	UpdatedAt       time.Time
	LastPhaseChange time.Time
}

// ChatOutput is the result of one chat turn. Document and Project are
// nil unless a document was generated this turn.
type ChatOutput struct {
	SessionID string
	Reply     string
	Document  *GeneratedDocument
	Project   *ProjectSnapshot
}

// SessionDetailOutput is the result of UseCase.SessionDetail.
type SessionDetailOutput struct {
	SessionID    string
	MessageCount int
	Summary      string
	Project      *ProjectSnapshot
}

// DocumentOutput is the result of UseCase.Document.
type DocumentOutput struct {
	ProjectName string
	Type        model.DocumentType
	Markdown    string
	Version     int
	Filename    string
}

// ExportedEvent is one calendar event created from a task.
type ExportedEvent struct {
	TaskID    string
	Title     string
	EventLink string
}

// ExportTasksOutput is the result of UseCase.ExportTasksToCalendar.
type ExportTasksOutput struct {
	ProjectName string
	Events      []ExportedEvent
}
