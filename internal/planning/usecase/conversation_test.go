package usecase

import (
	"fmt"
	"strings"
	"testing"

	"planning-assistant/internal/model"
)

func TestAppendEntry(t *testing.T) {
	t.Run("records the active phase", func(t *testing.T) {
		env := newTestEnv(Config{})
		sess := &model.Session{ID: "sess-1"}

		env.uc.appendEntry(sess, model.RoleUser, "hello")
		if sess.Log[0].Phase != "" {
			t.Errorf("phase = %q before project init, want empty", sess.Log[0].Phase)
		}

		sess.Project = &model.ProjectSession{Phase: model.PhaseDesign}
		env.uc.appendEntry(sess, model.RoleAssistant, "hi")
		if sess.Log[1].Phase != model.PhaseDesign {
			t.Errorf("phase = %q, want %s", sess.Log[1].Phase, model.PhaseDesign)
		}
	})

	t.Run("oldest entries dropped at the cap", func(t *testing.T) {
		env := newTestEnv(Config{ConversationCap: 4})
		sess := &model.Session{ID: "sess-1"}

		for i := 0; i < 6; i++ {
			env.uc.appendEntry(sess, model.RoleUser, fmt.Sprintf("msg-%d", i))
		}
		if len(sess.Log) != 4 {
			t.Fatalf("log length = %d, want 4", len(sess.Log))
		}
		if sess.Log[0].Content != "msg-2" || sess.Log[3].Content != "msg-5" {
			t.Errorf("window = [%s .. %s], want [msg-2 .. msg-5]",
				sess.Log[0].Content, sess.Log[3].Content)
		}
	})
}

func TestSummarize(t *testing.T) {
	env := newTestEnv(Config{})

	sess := &model.Session{ID: "sess-1"}
	if got := env.uc.summarize(sess); !strings.Contains(got, "no project") {
		t.Errorf("summary = %q", got)
	}

	sess.Project = &model.ProjectSession{
		ProjectName:  "demo",
		Phase:        model.PhaseDesign,
		Requirements: &model.RequirementsDocument{DocumentMeta: model.DocumentMeta{Version: 2}},
	}
	got := env.uc.summarize(sess)
	for _, want := range []string{`"demo"`, "phase design", "requirements v2"} {
		if !strings.Contains(got, want) {
			t.Errorf("summary %q missing %q", got, want)
		}
	}
}

func TestQuestionAnswerTracking(t *testing.T) {
	env := newTestEnv(Config{})
	ps := &model.ProjectSession{Answers: make(map[string]string)}

	env.uc.recordQuestion(ps, "Sounds good. What platforms do you target?")
	if len(ps.QuestionsAsked) != 1 {
		t.Fatalf("questions = %v", ps.QuestionsAsked)
	}
	if ps.QuestionsAsked[0] != "What platforms do you target?" {
		t.Errorf("extracted question = %q", ps.QuestionsAsked[0])
	}

	env.uc.recordAnswer(ps, "iOS and Android")
	if ps.Answers["What platforms do you target?"] != "iOS and Android" {
		t.Errorf("answers = %v", ps.Answers)
	}

	t.Run("answer not overwritten", func(t *testing.T) {
		env.uc.recordAnswer(ps, "changed my mind")
		if ps.Answers["What platforms do you target?"] != "iOS and Android" {
			t.Errorf("answer overwritten: %v", ps.Answers)
		}
	})

	t.Run("reply without a question records nothing", func(t *testing.T) {
		env.uc.recordQuestion(ps, "Great, noted.")
		if len(ps.QuestionsAsked) != 1 {
			t.Errorf("questions = %v", ps.QuestionsAsked)
		}
	})
}

func TestLastQuestion(t *testing.T) {
	cases := []struct {
		reply string
		want  string
	}{
		{"What is the scope?", "What is the scope?"},
		{"Noted. Who are the users? And the admins?", "And the admins?"},
		{"All clear, thanks.", ""},
		{"Line one.\nWhat about auth?", "What about auth?"},
	}
	for _, tc := range cases {
		if got := lastQuestion(tc.reply); got != tc.want {
			t.Errorf("lastQuestion(%q) = %q, want %q", tc.reply, got, tc.want)
		}
	}
}
