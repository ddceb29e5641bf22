package usecase

import (
	"strings"

	"planning-assistant/internal/model"
	"planning-assistant/internal/planning"
)

// deriveProjectName builds the immutable project name from the first
// user message: whitespace collapsed, truncated on a word boundary.
// Truncation counts runes, not bytes, so a multi-byte message never
// yields a name ending in a mangled character.
func deriveProjectName(firstMessage string) string {
	name := strings.Join(strings.Fields(firstMessage), " ")
	if name == "" {
		return "untitled project"
	}

	runes := []rune(name)
	if len(runes) <= maxProjectNameLen {
		return name
	}

	cut := string(runes[:maxProjectNameLen])
	if idx := strings.LastIndex(cut, " "); idx > 0 {
		cut = cut[:idx]
	}
	return cut
}

func newProjectSnapshot(ps *model.ProjectSession) planning.ProjectSnapshot {
	return planning.ProjectSnapshot{
		ProjectName:     ps.ProjectName,
		Phase:           ps.Phase,
		HasRequirements: ps.Requirements != nil,
		HasDesign:       ps.Design != nil,
		HasTasks:        ps.Tasks != nil,
		CreatedAt:       ps.CreatedAt,
		UpdatedAt:       ps.UpdatedAt,
		LastPhaseChange: ps.LastPhaseChange,
	}
}
