package docgen

import "time"

// Prompt templates rendered with promptData before the generation call.
const (
	PromptRequirements = `You are a software planning assistant. Based on the conversation below,
write a complete requirements document in markdown for the project "{{.ProjectName}}".

Structure it with these sections:
# {{.ProjectName}} — Requirements
## Overview
## Features
(one "- " bullet per feature)
## User Stories
(one "- " bullet per story)

Conversation:
{{.History}}
{{- if .Answers}}

Clarified answers:
{{.Answers}}
{{- end}}`

	PromptDesign = `You are a software planning assistant. Based on the requirements document
below, write a complete technical design document in markdown for the project "{{.ProjectName}}".

Structure it with these sections:
# {{.ProjectName}} — Design
## Tech Stack
(one "- " bullet per technology)
## Architecture Components
(one "- " bullet per component)
## Data Model

Requirements document:
{{.Upstream}}

Recent conversation:
{{.History}}`

	PromptTasks = `You are a software planning assistant. Based on the design document below,
write an implementation task list in markdown for the project "{{.ProjectName}}".

Structure it as:
# {{.ProjectName}} — Tasks
## Task List
(numbered tasks, one per line, format: "1. <title> — <short description>")

Design document:
{{.Upstream}}

Recent conversation:
{{.History}}`
)

const (
	// GenerationTemperature keeps document output stable across retries.
	GenerationTemperature = 0.3

	// MaxHistoryLines bounds how much transcript is embedded in a prompt.
	MaxHistoryLines = 30

	// RenderCacheSize bounds the number of rendered documents kept.
	RenderCacheSize = 256

	// RenderCacheTTL expires cached renders; a session is long gone
	// before this elapses.
	RenderCacheTTL = time.Hour
)
