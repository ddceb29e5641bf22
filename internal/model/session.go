package model

import "time"

// Role identifies the author of a conversation entry.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
	RoleSystem    Role = "system"
)

// ConversationEntry is a single message in a session transcript.
// Phase records which planning phase was active when the message arrived.
type ConversationEntry struct {
	Role      Role
	Content   string
	Phase     Phase
	Timestamp time.Time
}

// Session is the server-side record for one opaque session key.
// It owns exactly one conversation log and at most one ProjectSession.
type Session struct {
	ID        string
	Log       []ConversationEntry
	Project   *ProjectSession
	CreatedAt time.Time
	UpdatedAt time.Time
}

// ProjectSession tracks planning progress for one project.
// ProjectName is immutable after creation. Phase only moves forward
// through the order defined by the phase transition table.
type ProjectSession struct {
	ProjectName string
	Phase       Phase

	Requirements *RequirementsDocument
	Design       *DesignDocument
	Tasks        *TasksDocument

	QuestionsAsked []string
	Answers        map[string]string

	CreatedAt       time.Time
	UpdatedAt       time.Time
	LastPhaseChange time.Time
}

// HasDocument reports whether the payload gating the given phase exists.
// PhaseComplete requires all three documents.
func (ps *ProjectSession) HasDocument(phase Phase) bool {
	if ps == nil {
		return false
	}
	switch phase {
	case PhaseRequirements:
		return ps.Requirements != nil
	case PhaseDesign:
		return ps.Design != nil
	case PhaseTasks:
		return ps.Tasks != nil
	case PhaseComplete:
		return ps.Requirements != nil && ps.Design != nil && ps.Tasks != nil
	}
	return false
}
