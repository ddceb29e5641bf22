package usecase

import (
	"context"
	"time"

	"planning-assistant/internal/docgen"
	"planning-assistant/internal/model"
	"planning-assistant/internal/planning/repository/memory"
	"planning-assistant/pkg/llmprovider"
)

// Mock logger for testing
type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, args ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, args ...any)  {}
func (m *mockLogger) Info(ctx context.Context, args ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, args ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, args ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, args ...any)   {}
func (m *mockLogger) Error(ctx context.Context, args ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, args ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, args ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, args ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, args ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, args ...any) {}
func (m *mockLogger) Panic(ctx context.Context, args ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, args ...any)  {}

// mockProvider scripts the assistant reply call.
type mockProvider struct {
	reply string
	err   error
	calls int
}

func (m *mockProvider) GenerateContent(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error) {
	m.calls++
	if m.err != nil {
		return nil, m.err
	}
	return &llmprovider.Response{Text: m.reply, Usage: &llmprovider.Usage{}}, nil
}

func (m *mockProvider) Name() string  { return "mock" }
func (m *mockProvider) Model() string { return "mock-model" }

// mockGenerator scripts the document generation capability.
type mockGenerator struct {
	requirementsErr error
	designErr       error
	tasksErr        error
	calls           int
}

func (m *mockGenerator) GenerateRequirements(ctx context.Context, input docgen.Input) (*model.RequirementsDocument, error) {
	m.calls++
	if m.requirementsErr != nil {
		return nil, m.requirementsErr
	}
	return &model.RequirementsDocument{
		DocumentMeta: model.DocumentMeta{GeneratedAt: time.Now()},
		Features:     []string{"feature"},
		Markdown:     "# " + input.ProjectName + " — Requirements",
	}, nil
}

func (m *mockGenerator) GenerateDesign(ctx context.Context, input docgen.Input) (*model.DesignDocument, error) {
	m.calls++
	if m.designErr != nil {
		return nil, m.designErr
	}
	return &model.DesignDocument{
		DocumentMeta: model.DocumentMeta{GeneratedAt: time.Now()},
		TechStack:    []string{"go"},
		Markdown:     "# " + input.ProjectName + " — Design",
	}, nil
}

func (m *mockGenerator) GenerateTasks(ctx context.Context, input docgen.Input) (*model.TasksDocument, error) {
	m.calls++
	if m.tasksErr != nil {
		return nil, m.tasksErr
	}
	return &model.TasksDocument{
		DocumentMeta: model.DocumentMeta{GeneratedAt: time.Now()},
		Items:        []model.TaskItem{{ID: "task-1", Title: "do it"}},
		Markdown:     "# " + input.ProjectName + " — Tasks",
	}, nil
}

type testEnv struct {
	uc        *implUseCase
	store     *memory.Store
	provider  *mockProvider
	generator *mockGenerator
}

// newTestEnv wires a use case over the in-memory store with scriptable
// LLM and generator mocks. ReadyAfterTurns defaults to 1 so the second
// user message of a session triggers generation.
func newTestEnv(cfg Config) *testEnv {
	if cfg.ReadyAfterTurns == 0 {
		cfg.ReadyAfterTurns = 1
	}

	provider := &mockProvider{reply: "Tell me more?"}
	generator := &mockGenerator{}
	store := memory.New()

	manager := llmprovider.NewManager(
		[]llmprovider.Provider{provider},
		&llmprovider.Config{RetryAttempts: 1},
		&mockLogger{},
	)

	return &testEnv{
		uc:        New(&mockLogger{}, manager, generator, store, nil, cfg),
		store:     store,
		provider:  provider,
		generator: generator,
	}
}
