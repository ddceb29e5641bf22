package usecase

import (
	"context"
	"fmt"
	"time"

	"planning-assistant/internal/docgen"
	"planning-assistant/internal/model"
	"planning-assistant/internal/planning"
	"planning-assistant/pkg/gcalendar"
)

// SessionDetail returns the project snapshot and conversation digest.
// The read runs under the session's per-key lock so a concurrent chat
// turn cannot be observed mid-mutation.
func (uc *implUseCase) SessionDetail(ctx context.Context, sessionID string) (planning.SessionDetailOutput, error) {
	var out planning.SessionDetailOutput

	found, err := uc.repo.ViewSession(sessionID, func(sess *model.Session) error {
		out = planning.SessionDetailOutput{
			SessionID:    sessionID,
			MessageCount: len(sess.Log),
			Summary:      uc.summarize(sess),
		}
		if sess.Project != nil {
			snapshot := newProjectSnapshot(sess.Project)
			out.Project = &snapshot
		}
		return nil
	})
	if err != nil {
		return planning.SessionDetailOutput{}, err
	}
	if !found {
		return planning.SessionDetailOutput{}, planning.ErrSessionNotFound
	}
	return out, nil
}

// ListSessions returns a snapshot of active session keys.
func (uc *implUseCase) ListSessions(ctx context.Context) ([]string, error) {
	return uc.repo.ListActiveKeys(), nil
}

// RemoveSession deletes a session; no-op when absent.
func (uc *implUseCase) RemoveSession(ctx context.Context, sessionID string) error {
	uc.repo.Remove(sessionID)
	return nil
}

// EvictSessions removes sessions idle longer than maxAge.
func (uc *implUseCase) EvictSessions(ctx context.Context, maxAge time.Duration) (int, error) {
	evicted := uc.repo.EvictOlderThan(maxAge)
	uc.l.Infof(ctx, "evicted %d session(s) older than %s", evicted, maxAge)
	return evicted, nil
}

// Document returns the latest stored payload of the given type.
func (uc *implUseCase) Document(ctx context.Context, sessionID string, docType model.DocumentType) (planning.DocumentOutput, error) {
	var out planning.DocumentOutput

	found, err := uc.repo.ViewSession(sessionID, func(sess *model.Session) error {
		if sess.Project == nil {
			return planning.ErrDocumentNotFound
		}
		markdown, version, ok := documentMarkdown(sess.Project, docType)
		if !ok {
			return planning.ErrDocumentNotFound
		}
		out = planning.DocumentOutput{
			ProjectName: sess.Project.ProjectName,
			Type:        docType,
			Markdown:    markdown,
			Version:     version,
			Filename:    docgen.Filename(sess.Project.ProjectName, docType),
		}
		return nil
	})
	if err != nil {
		return planning.DocumentOutput{}, err
	}
	if !found {
		return planning.DocumentOutput{}, planning.ErrSessionNotFound
	}
	return out, nil
}

// ExportTasksToCalendar creates one calendar event per generated task,
// scheduled on consecutive days starting tomorrow. The task list is
// snapshotted under the session lock; the calendar calls run outside it
// so slow network traffic never blocks chat turns.
func (uc *implUseCase) ExportTasksToCalendar(ctx context.Context, sessionID string) (planning.ExportTasksOutput, error) {
	if uc.calendar == nil {
		return planning.ExportTasksOutput{}, planning.ErrCalendarNotConfigured
	}

	var (
		projectName string
		items       []model.TaskItem
	)
	found, err := uc.repo.ViewSession(sessionID, func(sess *model.Session) error {
		ps := sess.Project
		if ps == nil || ps.Tasks == nil {
			return planning.ErrTasksNotGenerated
		}
		projectName = ps.ProjectName
		items = append(items, ps.Tasks.Items...)
		return nil
	})
	if err != nil {
		return planning.ExportTasksOutput{}, err
	}
	if !found {
		return planning.ExportTasksOutput{}, planning.ErrSessionNotFound
	}

	out := planning.ExportTasksOutput{ProjectName: projectName}
	start := time.Now().AddDate(0, 0, 1)

	for i, item := range items {
		day := start.AddDate(0, 0, i)
		event, err := uc.calendar.CreateEvent(ctx, gcalendar.CreateEventRequest{
			CalendarID:  uc.cfg.CalendarID,
			Summary:     fmt.Sprintf("[%s] %s", projectName, item.Title),
			Description: item.Description,
			StartTime:   time.Date(day.Year(), day.Month(), day.Day(), 9, 0, 0, 0, day.Location()),
			EndTime:     time.Date(day.Year(), day.Month(), day.Day(), 10, 0, 0, 0, day.Location()),
			Timezone:    uc.cfg.Timezone,
		})
		if err != nil {
			uc.l.Warnf(ctx, "session %s: calendar export failed for %s: %v", sessionID, item.ID, err)
			continue
		}
		out.Events = append(out.Events, planning.ExportedEvent{
			TaskID:    item.ID,
			Title:     item.Title,
			EventLink: event.HtmlLink,
		})
	}

	return out, nil
}
