package usecase

import (
	"time"

	"planning-assistant/internal/model"
)

// Document setters own versioning and provenance: the stored payload is
// never silently overwritten. Regeneration bumps the version and moves
// the displaced payload into a bounded history.

func (uc *implUseCase) setRequirements(ps *model.ProjectSession, doc *model.RequirementsDocument) {
	doc.Version = 1
	if prev := ps.Requirements; prev != nil {
		doc.Version = prev.Version + 1
		history := prev.History
		prev.History = nil
		doc.History = appendBounded(history, prev)
	}
	ps.Requirements = doc
	ps.UpdatedAt = time.Now()
}

func (uc *implUseCase) setDesign(ps *model.ProjectSession, doc *model.DesignDocument) {
	doc.Version = 1
	if ps.Requirements != nil {
		doc.DerivedFromVersion = ps.Requirements.Version
	}
	if prev := ps.Design; prev != nil {
		doc.Version = prev.Version + 1
		history := prev.History
		prev.History = nil
		doc.History = appendBounded(history, prev)
	}
	ps.Design = doc
	ps.UpdatedAt = time.Now()
}

func (uc *implUseCase) setTasks(ps *model.ProjectSession, doc *model.TasksDocument) {
	doc.Version = 1
	if ps.Design != nil {
		doc.DerivedFromVersion = ps.Design.Version
	}
	if prev := ps.Tasks; prev != nil {
		doc.Version = prev.Version + 1
		history := prev.History
		prev.History = nil
		doc.History = appendBounded(history, prev)
	}
	ps.Tasks = doc
	ps.UpdatedAt = time.Now()
}

func appendBounded[T any](history []T, item T) []T {
	history = append(history, item)
	if len(history) > maxDocumentHistory {
		history = history[len(history)-maxDocumentHistory:]
	}
	return history
}

// nextDocumentVersion is the version the next generation of the type
// will be stored under; the setters above assign the same number.
func nextDocumentVersion(ps *model.ProjectSession, docType model.DocumentType) int {
	if _, version, ok := documentMarkdown(ps, docType); ok {
		return version + 1
	}
	return 1
}

// documentMarkdown returns the latest markdown and version for a type.
func documentMarkdown(ps *model.ProjectSession, docType model.DocumentType) (string, int, bool) {
	switch docType {
	case model.DocumentRequirements:
		if ps.Requirements != nil {
			return ps.Requirements.Markdown, ps.Requirements.Version, true
		}
	case model.DocumentDesign:
		if ps.Design != nil {
			return ps.Design.Markdown, ps.Design.Version, true
		}
	case model.DocumentTasks:
		if ps.Tasks != nil {
			return ps.Tasks.Markdown, ps.Tasks.Version, true
		}
	}
	return "", 0, false
}
