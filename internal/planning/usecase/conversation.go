package usecase

import (
	"fmt"
	"strings"
	"time"

	"planning-assistant/internal/model"
)

// appendEntry adds a message to the session transcript, recording the
// phase active at the time. When the log exceeds the cap the oldest
// entries are dropped (sliding window, no summarization).
func (uc *implUseCase) appendEntry(sess *model.Session, role model.Role, content string) {
	var phase model.Phase
	if sess.Project != nil {
		phase = sess.Project.Phase
	}

	sess.Log = append(sess.Log, model.ConversationEntry{
		Role:      role,
		Content:   content,
		Phase:     phase,
		Timestamp: time.Now(),
	})

	if excess := len(sess.Log) - uc.cfg.ConversationCap; excess > 0 {
		sess.Log = sess.Log[excess:]
	}
}

// summarize produces a short human-readable digest of a session. Used
// for diagnostics only, never as model context.
func (uc *implUseCase) summarize(sess *model.Session) string {
	var b strings.Builder
	fmt.Fprintf(&b, "session %s: %d message(s)", sess.ID, len(sess.Log))

	ps := sess.Project
	if ps == nil {
		b.WriteString(", no project")
		return b.String()
	}

	fmt.Fprintf(&b, ", project %q in phase %s", ps.ProjectName, ps.Phase)

	var docs []string
	if ps.Requirements != nil {
		docs = append(docs, fmt.Sprintf("requirements v%d", ps.Requirements.Version))
	}
	if ps.Design != nil {
		docs = append(docs, fmt.Sprintf("design v%d", ps.Design.Version))
	}
	if ps.Tasks != nil {
		docs = append(docs, fmt.Sprintf("tasks v%d", ps.Tasks.Version))
	}
	if len(docs) == 0 {
		b.WriteString(", no documents")
	} else {
		fmt.Fprintf(&b, ", documents: %s", strings.Join(docs, ", "))
	}
	return b.String()
}

// recordQuestion tracks questions the assistant asked so the next user
// turn can be stored as an answer.
func (uc *implUseCase) recordQuestion(ps *model.ProjectSession, reply string) {
	if ps == nil {
		return
	}
	question := lastQuestion(reply)
	if question == "" {
		return
	}
	ps.QuestionsAsked = append(ps.QuestionsAsked, question)
}

// recordAnswer maps the most recent unanswered question to the user's text.
func (uc *implUseCase) recordAnswer(ps *model.ProjectSession, userText string) {
	if ps == nil || len(ps.QuestionsAsked) == 0 {
		return
	}
	last := ps.QuestionsAsked[len(ps.QuestionsAsked)-1]
	if _, answered := ps.Answers[last]; answered {
		return
	}
	ps.Answers[last] = userText
}

// lastQuestion extracts the final question sentence from a reply.
func lastQuestion(reply string) string {
	idx := strings.LastIndex(reply, "?")
	if idx < 0 {
		return ""
	}
	start := strings.LastIndexAny(reply[:idx], ".!?\n")
	return strings.TrimSpace(reply[start+1 : idx+1])
}
