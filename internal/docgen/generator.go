package docgen

import (
	"context"
	"fmt"
	"strings"
	"text/template"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"planning-assistant/internal/model"
	pkgLog "planning-assistant/pkg/log"
	"planning-assistant/pkg/llmprovider"
)

type implGenerator struct {
	l   pkgLog.Logger
	llm *llmprovider.Manager

	// cache holds rendered markdown keyed by session/type/version so a
	// repeated generation of the same document version never pays for a
	// second LLM round trip.
	cache *expirable.LRU[string, string]
}

var _ Generator = (*implGenerator)(nil)

// New creates a new document generator backed by the LLM provider manager.
func New(l pkgLog.Logger, llm *llmprovider.Manager) *implGenerator {
	return &implGenerator{
		l:     l,
		llm:   llm,
		cache: expirable.NewLRU[string, string](RenderCacheSize, nil, RenderCacheTTL),
	}
}

// GenerateRequirements produces the requirements document for a project.
func (g *implGenerator) GenerateRequirements(ctx context.Context, input Input) (*model.RequirementsDocument, error) {
	markdown, err := g.generate(ctx, model.DocumentRequirements, PromptRequirements, input)
	if err != nil {
		return nil, fmt.Errorf("generate requirements: %w", err)
	}

	return &model.RequirementsDocument{
		DocumentMeta: model.DocumentMeta{GeneratedAt: time.Now()},
		Features:     bulletsUnderHeading(markdown, "Features"),
		UserStories:  bulletsUnderHeading(markdown, "User Stories"),
		Markdown:     markdown,
	}, nil
}

// GenerateDesign produces the design document from the requirements document.
func (g *implGenerator) GenerateDesign(ctx context.Context, input Input) (*model.DesignDocument, error) {
	markdown, err := g.generate(ctx, model.DocumentDesign, PromptDesign, input)
	if err != nil {
		return nil, fmt.Errorf("generate design: %w", err)
	}

	return &model.DesignDocument{
		DocumentMeta: model.DocumentMeta{GeneratedAt: time.Now()},
		TechStack:    bulletsUnderHeading(markdown, "Tech Stack"),
		Components:   bulletsUnderHeading(markdown, "Architecture Components"),
		Markdown:     markdown,
	}, nil
}

// GenerateTasks produces the task list from the design document.
func (g *implGenerator) GenerateTasks(ctx context.Context, input Input) (*model.TasksDocument, error) {
	markdown, err := g.generate(ctx, model.DocumentTasks, PromptTasks, input)
	if err != nil {
		return nil, fmt.Errorf("generate tasks: %w", err)
	}

	return &model.TasksDocument{
		DocumentMeta: model.DocumentMeta{GeneratedAt: time.Now()},
		Items:        parseTaskItems(markdown),
		Markdown:     markdown,
	}, nil
}

type promptData struct {
	ProjectName string
	History     string
	Answers     string
	Upstream    string
}

// generate renders the prompt template and runs the generation call.
// The returned markdown is the model output verbatim. Cached renders
// are served without hitting the provider.
func (g *implGenerator) generate(ctx context.Context, docType model.DocumentType, promptTemplate string, input Input) (string, error) {
	key := renderCacheKey(input.SessionID, docType, input.Version)
	if input.SessionID != "" {
		if cached, ok := g.cache.Get(key); ok {
			g.l.Debugf(ctx, "docgen: render cache hit for %s", key)
			return cached, nil
		}
	}

	tmpl, err := template.New("prompt").Parse(promptTemplate)
	if err != nil {
		return "", fmt.Errorf("parse prompt template: %w", err)
	}

	var prompt strings.Builder
	err = tmpl.Execute(&prompt, promptData{
		ProjectName: input.ProjectName,
		History:     formatHistory(input.History),
		Answers:     formatAnswers(input.Answers),
		Upstream:    input.UpstreamMarkdown,
	})
	if err != nil {
		return "", fmt.Errorf("render prompt template: %w", err)
	}

	resp, err := g.llm.GenerateContent(ctx, &llmprovider.Request{
		Messages:    []llmprovider.Message{{Role: "user", Text: prompt.String()}},
		Temperature: GenerationTemperature,
	})
	if err != nil {
		return "", err
	}

	markdown := strings.TrimSpace(stripCodeFence(resp.Text))
	if markdown == "" {
		return "", fmt.Errorf("generation returned empty document")
	}
	if input.SessionID != "" {
		g.cache.Add(key, markdown)
	}
	return markdown, nil
}

func renderCacheKey(sessionID string, docType model.DocumentType, version int) string {
	return fmt.Sprintf("%s/%s/%d", sessionID, docType, version)
}

func formatHistory(entries []model.ConversationEntry) string {
	start := 0
	if len(entries) > MaxHistoryLines {
		start = len(entries) - MaxHistoryLines
	}

	var b strings.Builder
	for _, entry := range entries[start:] {
		b.WriteString(string(entry.Role))
		b.WriteString(": ")
		b.WriteString(entry.Content)
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

func formatAnswers(answers map[string]string) string {
	if len(answers) == 0 {
		return ""
	}
	var b strings.Builder
	for question, answer := range answers {
		b.WriteString("- ")
		b.WriteString(question)
		b.WriteString(" → ")
		b.WriteString(answer)
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

// stripCodeFence unwraps responses the model wrapped in ```markdown fences.
func stripCodeFence(text string) string {
	trimmed := strings.TrimSpace(text)
	if !strings.HasPrefix(trimmed, "```") {
		return text
	}
	trimmed = strings.TrimPrefix(trimmed, "```markdown")
	trimmed = strings.TrimPrefix(trimmed, "```md")
	trimmed = strings.TrimPrefix(trimmed, "```")
	trimmed = strings.TrimSuffix(strings.TrimSpace(trimmed), "```")
	return strings.TrimSpace(trimmed)
}
