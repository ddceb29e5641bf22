package usecase

import (
	"planning-assistant/internal/docgen"
	"planning-assistant/internal/planning"
	"planning-assistant/internal/planning/repository"
	"planning-assistant/pkg/gcalendar"
	pkgLog "planning-assistant/pkg/log"
	"planning-assistant/pkg/llmprovider"
)

// Config tunes the planning use case.
type Config struct {
	// ConversationCap bounds the per-session transcript; oldest
	// entries are dropped first.
	ConversationCap int

	// ReadyAfterTurns is how many user turns a phase needs before its
	// document is generated.
	ReadyAfterTurns int

	// Calendar export settings.
	CalendarID string
	Timezone   string
}

const (
	defaultConversationCap = 50
	defaultReadyAfterTurns = 3
)

type implUseCase struct {
	l         pkgLog.Logger
	llm       *llmprovider.Manager
	generator docgen.Generator
	repo      repository.SessionRepository
	calendar  *gcalendar.Client
	cfg       Config
}

var _ planning.UseCase = (*implUseCase)(nil)

// New creates a new planning UseCase instance. calendar may be nil when
// Google Calendar export is not configured.
func New(
	l pkgLog.Logger,
	llm *llmprovider.Manager,
	generator docgen.Generator,
	repo repository.SessionRepository,
	calendar *gcalendar.Client,
	cfg Config,
) *implUseCase {
	if cfg.ConversationCap <= 0 {
		cfg.ConversationCap = defaultConversationCap
	}
	if cfg.ReadyAfterTurns <= 0 {
		cfg.ReadyAfterTurns = defaultReadyAfterTurns
	}

	return &implUseCase{
		l:         l,
		llm:       llm,
		generator: generator,
		repo:      repo,
		calendar:  calendar,
		cfg:       cfg,
	}
}
