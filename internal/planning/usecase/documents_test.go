package usecase

import (
	"fmt"
	"testing"

	"planning-assistant/internal/model"
)

func TestSetRequirements(t *testing.T) {
	env := newTestEnv(Config{})
	ps := &model.ProjectSession{Phase: model.PhaseRequirements}

	env.uc.setRequirements(ps, &model.RequirementsDocument{Markdown: "v1"})
	if ps.Requirements.Version != 1 {
		t.Fatalf("version = %d, want 1", ps.Requirements.Version)
	}

	t.Run("regeneration bumps version and keeps history", func(t *testing.T) {
		env.uc.setRequirements(ps, &model.RequirementsDocument{Markdown: "v2"})
		if ps.Requirements.Version != 2 {
			t.Fatalf("version = %d, want 2", ps.Requirements.Version)
		}
		if len(ps.Requirements.History) != 1 || ps.Requirements.History[0].Markdown != "v1" {
			t.Errorf("history = %+v, want the displaced v1", ps.Requirements.History)
		}
	})

	t.Run("history is bounded", func(t *testing.T) {
		for i := 3; i <= maxDocumentHistory+4; i++ {
			env.uc.setRequirements(ps, &model.RequirementsDocument{Markdown: fmt.Sprintf("v%d", i)})
		}
		if len(ps.Requirements.History) != maxDocumentHistory {
			t.Errorf("history length = %d, want %d", len(ps.Requirements.History), maxDocumentHistory)
		}
		oldest := ps.Requirements.History[0]
		if oldest.Version != ps.Requirements.Version-maxDocumentHistory {
			t.Errorf("oldest retained version = %d", oldest.Version)
		}
	})
}

func TestProvenanceChain(t *testing.T) {
	env := newTestEnv(Config{})
	ps := &model.ProjectSession{Phase: model.PhaseRequirements}

	env.uc.setRequirements(ps, &model.RequirementsDocument{Markdown: "req"})
	env.uc.setRequirements(ps, &model.RequirementsDocument{Markdown: "req2"})
	env.uc.setDesign(ps, &model.DesignDocument{Markdown: "des"})
	env.uc.setTasks(ps, &model.TasksDocument{Markdown: "tasks"})

	if ps.Design.DerivedFromVersion != 2 {
		t.Errorf("design derived from requirements v%d, want v2", ps.Design.DerivedFromVersion)
	}
	if ps.Tasks.DerivedFromVersion != 1 {
		t.Errorf("tasks derived from design v%d, want v1", ps.Tasks.DerivedFromVersion)
	}
}

func TestDocumentMarkdown(t *testing.T) {
	ps := &model.ProjectSession{
		Design: &model.DesignDocument{
			DocumentMeta: model.DocumentMeta{Version: 3},
			Markdown:     "# Design",
		},
	}

	markdown, version, ok := documentMarkdown(ps, model.DocumentDesign)
	if !ok || markdown != "# Design" || version != 3 {
		t.Errorf("got (%q, %d, %v)", markdown, version, ok)
	}

	if _, _, ok := documentMarkdown(ps, model.DocumentTasks); ok {
		t.Error("tasks reported present")
	}
}
