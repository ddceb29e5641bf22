package model

import "fmt"

// Phase is one of the four ordered stages of project planning.
type Phase string

const (
	PhaseRequirements Phase = "requirements"
	PhaseDesign       Phase = "design"
	PhaseTasks        Phase = "tasks"
	PhaseComplete     Phase = "complete"
)

// phaseTransitions is the only legal forward order. A phase never regresses.
var phaseTransitions = map[Phase]Phase{
	PhaseRequirements: PhaseDesign,
	PhaseDesign:       PhaseTasks,
	PhaseTasks:        PhaseComplete,
}

// Valid reports whether p is one of the four defined phases.
func (p Phase) Valid() bool {
	switch p {
	case PhaseRequirements, PhaseDesign, PhaseTasks, PhaseComplete:
		return true
	}
	return false
}

// Next returns the phase that follows p in the fixed order.
// PhaseComplete is terminal and has no successor.
func (p Phase) Next() (Phase, bool) {
	next, ok := phaseTransitions[p]
	return next, ok
}

// CanTransition reports whether p→next is the single legal forward step.
func (p Phase) CanTransition(next Phase) bool {
	legal, ok := phaseTransitions[p]
	return ok && legal == next
}

// ParsePhase converts a raw string into a Phase.
func ParsePhase(s string) (Phase, error) {
	p := Phase(s)
	if !p.Valid() {
		return "", fmt.Errorf("unknown phase %q", s)
	}
	return p, nil
}
