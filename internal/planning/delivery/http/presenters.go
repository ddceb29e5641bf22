package http

import (
	"time"

	"planning-assistant/internal/planning"
)

// --- Request DTOs ---

type chatMessageReq struct {
	Role    string `json:"role"    binding:"omitempty,oneof=user assistant system"`
	Content string `json:"content" binding:"required"`
}

type chatReq struct {
	SessionID string           `json:"session_id" binding:"omitempty,max=128"`
	Messages  []chatMessageReq `json:"messages"   binding:"required,min=1,dive"`
}

func (r chatReq) validate() error { return nil }

func (r chatReq) toInput() planning.ChatInput {
	messages := make([]planning.ChatMessage, len(r.Messages))
	for i, m := range r.Messages {
		role := m.Role
		if role == "" {
			role = "user"
		}
		messages[i] = planning.ChatMessage{Role: role, Content: m.Content}
	}
	return planning.ChatInput{
		SessionID: r.SessionID,
		Messages:  messages,
	}
}

// ---

type evictReq struct {
	MaxAgeHours int `json:"max_age_hours" binding:"omitempty,min=1,max=720"`
}

func (r evictReq) validate() error { return nil }

func (r evictReq) maxAge() time.Duration {
	hours := r.MaxAgeHours
	if hours <= 0 {
		hours = 24
	}
	return time.Duration(hours) * time.Hour
}

// --- Response DTOs ---

type projectResp struct {
	ProjectName     string    `json:"project_name"`
	Phase           string    `json:"phase"`
	HasRequirements bool      `json:"has_requirements"`
	HasDesign       bool      `json:"has_design"`
	HasTasks        bool      `json:"has_tasks"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
	LastPhaseChange time.Time `json:"last_phase_change"`
}

func newProjectResp(p *planning.ProjectSnapshot) *projectResp {
	if p == nil {
		return nil
	}
	return &projectResp{
		ProjectName:     p.ProjectName,
		Phase:           string(p.Phase),
		HasRequirements: p.HasRequirements,
		HasDesign:       p.HasDesign,
		HasTasks:        p.HasTasks,
		CreatedAt:       p.CreatedAt,
		UpdatedAt:       p.UpdatedAt,
		LastPhaseChange: p.LastPhaseChange,
	}
}

type documentBriefResp struct {
	Type     string `json:"type"`
	Markdown string `json:"markdown"`
	Version  int    `json:"version"`
}

type chatResp struct {
	SessionID string             `json:"session_id"`
	Reply     string             `json:"reply"`
	Document  *documentBriefResp `json:"document,omitempty"`
	Project   *projectResp       `json:"project,omitempty"`
}

func (h *handler) newChatResp(out planning.ChatOutput) chatResp {
	resp := chatResp{
		SessionID: out.SessionID,
		Reply:     out.Reply,
		Project:   newProjectResp(out.Project),
	}
	if out.Document != nil {
		resp.Document = &documentBriefResp{
			Type:     string(out.Document.Type),
			Markdown: out.Document.Markdown,
			Version:  out.Document.Version,
		}
	}
	return resp
}

type sessionDetailResp struct {
	SessionID    string       `json:"session_id"`
	MessageCount int          `json:"message_count"`
	Summary      string       `json:"summary"`
	Project      *projectResp `json:"project,omitempty"`
}

func (h *handler) newSessionDetailResp(out planning.SessionDetailOutput) sessionDetailResp {
	return sessionDetailResp{
		SessionID:    out.SessionID,
		MessageCount: out.MessageCount,
		Summary:      out.Summary,
		Project:      newProjectResp(out.Project),
	}
}

type listSessionsResp struct {
	Sessions []string `json:"sessions"`
	Total    int      `json:"total"`
}

type evictResp struct {
	Evicted int `json:"evicted"`
}

type documentResp struct {
	ProjectName string `json:"project_name"`
	Type        string `json:"type"`
	Markdown    string `json:"markdown"`
	Version     int    `json:"version"`
	Filename    string `json:"filename"`
}

func (h *handler) newDocumentResp(out planning.DocumentOutput) documentResp {
	return documentResp{
		ProjectName: out.ProjectName,
		Type:        string(out.Type),
		Markdown:    out.Markdown,
		Version:     out.Version,
		Filename:    out.Filename,
	}
}

type exportedEventResp struct {
	TaskID    string `json:"task_id"`
	Title     string `json:"title"`
	EventLink string `json:"event_link"`
}

type exportCalendarResp struct {
	ProjectName string              `json:"project_name"`
	Events      []exportedEventResp `json:"events"`
}

func (h *handler) newExportCalendarResp(out planning.ExportTasksOutput) exportCalendarResp {
	events := make([]exportedEventResp, len(out.Events))
	for i, ev := range out.Events {
		events[i] = exportedEventResp{
			TaskID:    ev.TaskID,
			Title:     ev.Title,
			EventLink: ev.EventLink,
		}
	}
	return exportCalendarResp{
		ProjectName: out.ProjectName,
		Events:      events,
	}
}
