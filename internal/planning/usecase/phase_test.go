package usecase

import (
	"errors"
	"testing"
	"time"

	"planning-assistant/internal/model"
	"planning-assistant/internal/planning"
)

func TestInitializeProject(t *testing.T) {
	env := newTestEnv(Config{})
	sess := &model.Session{ID: "sess-1"}

	env.uc.initializeProject(sess, "my project")
	if sess.Project == nil {
		t.Fatal("project not created")
	}
	if sess.Project.Phase != model.PhaseRequirements {
		t.Errorf("phase = %s, want %s", sess.Project.Phase, model.PhaseRequirements)
	}

	t.Run("reinitialization is a no-op", func(t *testing.T) {
		before := sess.Project
		before.Phase = model.PhaseDesign
		env.uc.initializeProject(sess, "another name")
		if sess.Project != before {
			t.Fatal("project was replaced")
		}
		if sess.Project.Phase != model.PhaseDesign {
			t.Errorf("phase reset to %s", sess.Project.Phase)
		}
	})
}

func TestAdvancePhase(t *testing.T) {
	env := newTestEnv(Config{})

	t.Run("forward transitions", func(t *testing.T) {
		ps := &model.ProjectSession{Phase: model.PhaseRequirements}
		steps := []model.Phase{model.PhaseDesign, model.PhaseTasks, model.PhaseComplete}
		for _, next := range steps {
			if err := env.uc.advancePhase(ps, next); err != nil {
				t.Fatalf("advance to %s: %v", next, err)
			}
			if ps.Phase != next {
				t.Fatalf("phase = %s, want %s", ps.Phase, next)
			}
			if ps.LastPhaseChange.IsZero() {
				t.Error("LastPhaseChange not stamped")
			}
		}
	})

	t.Run("skipping a phase fails", func(t *testing.T) {
		ps := &model.ProjectSession{Phase: model.PhaseRequirements}
		err := env.uc.advancePhase(ps, model.PhaseTasks)
		if !errors.Is(err, planning.ErrInvalidPhaseTransition) {
			t.Fatalf("err = %v, want ErrInvalidPhaseTransition", err)
		}
		if ps.Phase != model.PhaseRequirements {
			t.Errorf("phase mutated to %s on failed transition", ps.Phase)
		}
	})

	t.Run("regression fails", func(t *testing.T) {
		ps := &model.ProjectSession{Phase: model.PhaseDesign}
		if err := env.uc.advancePhase(ps, model.PhaseRequirements); !errors.Is(err, planning.ErrInvalidPhaseTransition) {
			t.Fatalf("err = %v, want ErrInvalidPhaseTransition", err)
		}
	})

	t.Run("complete is terminal", func(t *testing.T) {
		ps := &model.ProjectSession{Phase: model.PhaseComplete}
		if err := env.uc.advancePhase(ps, model.PhaseRequirements); !errors.Is(err, planning.ErrInvalidPhaseTransition) {
			t.Fatalf("err = %v, want ErrInvalidPhaseTransition", err)
		}
	})
}

func TestIsPhaseComplete(t *testing.T) {
	env := newTestEnv(Config{})
	ps := &model.ProjectSession{Phase: model.PhaseRequirements}

	if env.uc.isPhaseComplete(ps, model.PhaseRequirements) {
		t.Error("requirements complete without a payload")
	}

	ps.Requirements = &model.RequirementsDocument{Markdown: "# doc"}
	if !env.uc.isPhaseComplete(ps, model.PhaseRequirements) {
		t.Error("requirements payload exists but phase reported incomplete")
	}
	if env.uc.isPhaseComplete(ps, model.PhaseDesign) {
		t.Error("design complete without a payload")
	}
}

func TestPhaseReady(t *testing.T) {
	env := newTestEnv(Config{ReadyAfterTurns: 2})

	entry := func(role model.Role, phase model.Phase) model.ConversationEntry {
		return model.ConversationEntry{Role: role, Content: "x", Phase: phase, Timestamp: time.Now()}
	}

	t.Run("no project", func(t *testing.T) {
		sess := &model.Session{Log: []model.ConversationEntry{entry(model.RoleUser, model.PhaseRequirements)}}
		if env.uc.phaseReady(sess) {
			t.Error("ready without a project")
		}
	})

	t.Run("counts only user turns in the active phase", func(t *testing.T) {
		sess := &model.Session{
			Project: &model.ProjectSession{Phase: model.PhaseDesign},
			Log: []model.ConversationEntry{
				entry(model.RoleUser, model.PhaseRequirements),
				entry(model.RoleUser, model.PhaseRequirements),
				entry(model.RoleAssistant, model.PhaseDesign),
				entry(model.RoleUser, model.PhaseDesign),
			},
		}
		if env.uc.phaseReady(sess) {
			t.Error("one design turn should not be ready at threshold 2")
		}
		sess.Log = append(sess.Log, entry(model.RoleUser, model.PhaseDesign))
		if !env.uc.phaseReady(sess) {
			t.Error("two design turns should be ready")
		}
	})

	t.Run("complete phase never ready", func(t *testing.T) {
		sess := &model.Session{
			Project: &model.ProjectSession{Phase: model.PhaseComplete},
			Log: []model.ConversationEntry{
				entry(model.RoleUser, model.PhaseComplete),
				entry(model.RoleUser, model.PhaseComplete),
			},
		}
		if env.uc.phaseReady(sess) {
			t.Error("complete phase reported ready")
		}
	})
}
