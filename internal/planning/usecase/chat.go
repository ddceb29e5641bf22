package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"planning-assistant/internal/docgen"
	"planning-assistant/internal/model"
	"planning-assistant/internal/planning"
	"planning-assistant/pkg/llmprovider"
)

// Chat runs one request/response cycle. The whole cycle executes under
// the session's per-key lock, so concurrent requests for one session
// cannot race on phase or document state.
func (uc *implUseCase) Chat(ctx context.Context, sc model.Scope, input planning.ChatInput) (planning.ChatOutput, error) {
	if len(input.Messages) == 0 {
		return planning.ChatOutput{}, planning.ErrNoMessages
	}

	userText := strings.TrimSpace(input.Messages[len(input.Messages)-1].Content)
	if userText == "" {
		return planning.ChatOutput{}, planning.ErrEmptyMessage
	}

	sessionID := input.SessionID
	if sessionID == "" {
		sessionID = uuid.NewString()
	}

	out := planning.ChatOutput{SessionID: sessionID}

	err := uc.repo.WithSession(sessionID, func(sess *model.Session) error {
		firstMessage := len(sess.Log) == 0 && sess.Project == nil

		uc.appendEntry(sess, model.RoleUser, userText)

		// Only the very first inbound message of a session initializes
		// the project; later messages must never reset it.
		if firstMessage {
			uc.initializeProject(sess, deriveProjectName(userText))
		}
		uc.recordAnswer(sess.Project, userText)

		reply, err := uc.generateReply(ctx, sess)
		if err != nil {
			// Fatal for this request. The user entry stays in the log:
			// the turn happened even though the assistant never replied.
			return fmt.Errorf("generate reply: %w", err)
		}

		if uc.phaseReady(sess) {
			doc, note, genErr := uc.generatePhaseDocument(ctx, sess)
			if genErr != nil {
				// Recovered locally: the plain reply is still returned
				// and the phase stays put, so generation is re-attempted
				// on the next qualifying message.
				uc.l.Errorf(ctx, "session %s: %s document generation failed: %v",
					sess.ID, sess.Project.Phase, genErr)
			} else {
				reply += note
				out.Document = doc

				next, _ := sess.Project.Phase.Next()
				if advErr := uc.advancePhase(sess.Project, next); advErr != nil {
					uc.l.Errorf(ctx, "session %s: %v", sess.ID, advErr)
				}
				snapshot := newProjectSnapshot(sess.Project)
				out.Project = &snapshot
			}
		}

		uc.recordQuestion(sess.Project, reply)
		uc.appendEntry(sess, model.RoleAssistant, reply)
		out.Reply = reply
		return nil
	})
	if err != nil {
		return planning.ChatOutput{}, err
	}

	return out, nil
}

// generateReply calls the LLM with the accumulated history and a
// context line describing where the project stands.
func (uc *implUseCase) generateReply(ctx context.Context, sess *model.Session) (string, error) {
	system := SystemPromptPlanner
	if ps := sess.Project; ps != nil {
		system += fmt.Sprintf("\n\nCurrent project: %q. Current phase: %s.", ps.ProjectName, ps.Phase)
	}

	messages := make([]llmprovider.Message, 0, len(sess.Log))
	for _, entry := range sess.Log {
		messages = append(messages, llmprovider.Message{
			Role: string(entry.Role),
			Text: entry.Content,
		})
	}

	resp, err := uc.llm.GenerateContent(ctx, &llmprovider.Request{
		SystemInstruction: system,
		Messages:          messages,
	})
	if err != nil {
		return "", err
	}
	return resp.Text, nil
}

// generatePhaseDocument generates the document for the active phase,
// stores it, and returns it with the reply note for the transition.
// The upstream document's full markdown is always passed to the
// generation call, never a placeholder.
func (uc *implUseCase) generatePhaseDocument(ctx context.Context, sess *model.Session) (*planning.GeneratedDocument, string, error) {
	ps := sess.Project
	genInput := docgen.Input{
		SessionID:   sess.ID,
		ProjectName: ps.ProjectName,
		History:     sess.Log,
		Answers:     ps.Answers,
	}

	switch ps.Phase {
	case model.PhaseRequirements:
		genInput.Version = nextDocumentVersion(ps, model.DocumentRequirements)
		doc, err := uc.generator.GenerateRequirements(ctx, genInput)
		if err != nil {
			return nil, "", err
		}
		uc.setRequirements(ps, doc)
		return &planning.GeneratedDocument{
			Type:     model.DocumentRequirements,
			Markdown: doc.Markdown,
			Version:  doc.Version,
		}, NoteRequirementsGenerated, nil

	case model.PhaseDesign:
		if !uc.isPhaseComplete(ps, model.PhaseRequirements) {
			return nil, "", fmt.Errorf("design generation requires a requirements document")
		}
		genInput.Version = nextDocumentVersion(ps, model.DocumentDesign)
		genInput.UpstreamMarkdown = ps.Requirements.Markdown
		doc, err := uc.generator.GenerateDesign(ctx, genInput)
		if err != nil {
			return nil, "", err
		}
		uc.setDesign(ps, doc)
		return &planning.GeneratedDocument{
			Type:     model.DocumentDesign,
			Markdown: doc.Markdown,
			Version:  doc.Version,
		}, NoteDesignGenerated, nil

	case model.PhaseTasks:
		if !uc.isPhaseComplete(ps, model.PhaseDesign) {
			return nil, "", fmt.Errorf("task generation requires a design document")
		}
		genInput.Version = nextDocumentVersion(ps, model.DocumentTasks)
		genInput.UpstreamMarkdown = ps.Design.Markdown
		doc, err := uc.generator.GenerateTasks(ctx, genInput)
		if err != nil {
			return nil, "", err
		}
		uc.setTasks(ps, doc)
		return &planning.GeneratedDocument{
			Type:     model.DocumentTasks,
			Markdown: doc.Markdown,
			Version:  doc.Version,
		}, NoteTasksGenerated, nil
	}

	return nil, "", fmt.Errorf("no document to generate for phase %s", ps.Phase)
}
