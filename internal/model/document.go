package model

import "time"

// DocumentType identifies which planning phase a document belongs to.
type DocumentType string

const (
	DocumentRequirements DocumentType = "requirements"
	DocumentDesign       DocumentType = "design"
	DocumentTasks        DocumentType = "tasks"
)

// ParseDocumentType converts a raw string into a DocumentType.
func ParseDocumentType(s string) (DocumentType, bool) {
	switch DocumentType(s) {
	case DocumentRequirements, DocumentDesign, DocumentTasks:
		return DocumentType(s), true
	}
	return "", false
}

// DocumentMeta carries versioning and provenance shared by all three
// document payloads. Version starts at 1 and bumps on regeneration;
// DerivedFromVersion links to the upstream document version the payload
// was built from (Design ← Requirements, Tasks ← Design).
type DocumentMeta struct {
	Version            int
	DerivedFromVersion int
	GeneratedAt        time.Time
}

// RequirementsDocument is the output of the requirements phase.
type RequirementsDocument struct {
	DocumentMeta
	Features    []string
	UserStories []string
	Markdown    string

	// Prior versions, most recent last. Regeneration appends the
	// displaced payload here instead of discarding it.
	History []*RequirementsDocument
}

// DesignDocument is the output of the design phase.
type DesignDocument struct {
	DocumentMeta
	TechStack  []string
	Components []string
	Markdown   string

	History []*DesignDocument
}

// TaskItem is a single entry in the generated task list.
type TaskItem struct {
	ID           string
	Title        string
	Description  string
	Dependencies []string
	EstimateDays int
}

// TasksDocument is the output of the tasks phase.
type TasksDocument struct {
	DocumentMeta
	Items    []TaskItem
	Markdown string

	History []*TasksDocument
}
