package usecase

import (
	"fmt"
	"time"

	"planning-assistant/internal/model"
	"planning-assistant/internal/planning"
)

// initializeProject attaches a fresh ProjectSession at the requirements
// phase. No-op when one already exists: reinitialization must never
// reset in-progress state.
func (uc *implUseCase) initializeProject(sess *model.Session, projectName string) {
	if sess.Project != nil {
		return
	}
	now := time.Now()
	sess.Project = &model.ProjectSession{
		ProjectName:     projectName,
		Phase:           model.PhaseRequirements,
		Answers:         make(map[string]string),
		CreatedAt:       now,
		UpdatedAt:       now,
		LastPhaseChange: now,
	}
}

// advancePhase moves the project to next, validating against the
// transition table. Out-of-order transitions are a programming error.
func (uc *implUseCase) advancePhase(ps *model.ProjectSession, next model.Phase) error {
	if !ps.Phase.CanTransition(next) {
		return fmt.Errorf("%w: %s → %s", planning.ErrInvalidPhaseTransition, ps.Phase, next)
	}
	now := time.Now()
	ps.Phase = next
	ps.LastPhaseChange = now
	ps.UpdatedAt = now
	return nil
}

// isPhaseComplete reports whether the payload gating the phase exists.
func (uc *implUseCase) isPhaseComplete(ps *model.ProjectSession, phase model.Phase) bool {
	return ps.HasDocument(phase)
}

// phaseReady reports whether the active phase has gathered enough user
// turns for its document to be generated.
func (uc *implUseCase) phaseReady(sess *model.Session) bool {
	ps := sess.Project
	if ps == nil || ps.Phase == model.PhaseComplete {
		return false
	}

	userTurns := 0
	for _, entry := range sess.Log {
		if entry.Role == model.RoleUser && entry.Phase == ps.Phase {
			userTurns++
		}
	}
	return userTurns >= uc.cfg.ReadyAfterTurns
}
