package docgen

import "planning-assistant/internal/model"

// Input carries everything a phase document is generated from.
// UpstreamMarkdown is the full text of the upstream document (the
// requirements document when generating design, the design document
// when generating tasks), never a placeholder. SessionID and Version
// key the render cache; a zero SessionID disables caching for the call.
type Input struct {
	SessionID        string
	Version          int
	ProjectName      string
	History          []model.ConversationEntry
	Answers          map[string]string
	UpstreamMarkdown string
}
