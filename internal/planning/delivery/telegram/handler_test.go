package telegram_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"planning-assistant/internal/model"
	"planning-assistant/internal/planning"
	"planning-assistant/internal/planning/delivery/telegram"
	pkgTelegram "planning-assistant/pkg/telegram"
)

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

type mockUseCase struct {
	chatCalled chan planning.ChatInput
	chatOutput planning.ChatOutput
	chatErr    error
}

func (m *mockUseCase) Chat(ctx context.Context, sc model.Scope, input planning.ChatInput) (planning.ChatOutput, error) {
	if m.chatCalled != nil {
		m.chatCalled <- input
	}
	return m.chatOutput, m.chatErr
}

func (m *mockUseCase) SessionDetail(ctx context.Context, sessionID string) (planning.SessionDetailOutput, error) {
	return planning.SessionDetailOutput{}, nil
}

func (m *mockUseCase) ListSessions(ctx context.Context) ([]string, error) { return nil, nil }

func (m *mockUseCase) RemoveSession(ctx context.Context, sessionID string) error { return nil }

func (m *mockUseCase) EvictSessions(ctx context.Context, maxAge time.Duration) (int, error) {
	return 0, nil
}

func (m *mockUseCase) Document(ctx context.Context, sessionID string, docType model.DocumentType) (planning.DocumentOutput, error) {
	return planning.DocumentOutput{
		Type:     docType,
		Markdown: "# doc",
		Version:  1,
		Filename: "doc.md",
	}, nil
}

func (m *mockUseCase) ExportTasksToCalendar(ctx context.Context, sessionID string) (planning.ExportTasksOutput, error) {
	return planning.ExportTasksOutput{}, nil
}

func newWebhookRouter(uc planning.UseCase, botAPI string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	bot := pkgTelegram.NewBot("test-token")
	bot.SetAPIURL(botAPI)

	h := telegram.New(&mockLogger{}, uc, bot)

	r := gin.New()
	r.POST("/webhook/telegram", h.HandleWebhook)
	return r
}

func postUpdate(t *testing.T, r *gin.Engine, update pkgTelegram.Update) *httptest.ResponseRecorder {
	t.Helper()
	body, err := json.Marshal(update)
	if err != nil {
		t.Fatalf("marshal update: %v", err)
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/webhook/telegram", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func TestHandleWebhook(t *testing.T) {
	botSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"ok":true}`))
	}))
	defer botSrv.Close()

	t.Run("message is acknowledged and processed", func(t *testing.T) {
		uc := &mockUseCase{
			chatCalled: make(chan planning.ChatInput, 1),
			chatOutput: planning.ChatOutput{Reply: "Tell me more?"},
		}
		r := newWebhookRouter(uc, botSrv.URL)

		w := postUpdate(t, r, pkgTelegram.Update{
			Message: &pkgTelegram.Message{
				From: &pkgTelegram.User{ID: 7, Username: "alice"},
				Chat: &pkgTelegram.Chat{ID: 42},
				Text: "I want to build a todo app",
			},
		})
		if w.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200", w.Code)
		}

		select {
		case input := <-uc.chatCalled:
			if input.SessionID != "telegram:42" {
				t.Errorf("session key = %q, want telegram:42", input.SessionID)
			}
			if len(input.Messages) != 1 || input.Messages[0].Content != "I want to build a todo app" {
				t.Errorf("messages = %+v", input.Messages)
			}
		case <-time.After(2 * time.Second):
			t.Fatal("Chat was never called")
		}
	})

	t.Run("non-message update ignored", func(t *testing.T) {
		uc := &mockUseCase{chatCalled: make(chan planning.ChatInput, 1)}
		r := newWebhookRouter(uc, botSrv.URL)

		w := postUpdate(t, r, pkgTelegram.Update{UpdateID: 1})
		if w.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200", w.Code)
		}

		select {
		case <-uc.chatCalled:
			t.Fatal("Chat called for a non-message update")
		case <-time.After(100 * time.Millisecond):
		}
	})

	t.Run("command bypasses the use case", func(t *testing.T) {
		uc := &mockUseCase{chatCalled: make(chan planning.ChatInput, 1)}
		r := newWebhookRouter(uc, botSrv.URL)

		w := postUpdate(t, r, pkgTelegram.Update{
			Message: &pkgTelegram.Message{
				From: &pkgTelegram.User{ID: 7},
				Chat: &pkgTelegram.Chat{ID: 42},
				Text: "/start",
			},
		})
		if w.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200", w.Code)
		}

		select {
		case <-uc.chatCalled:
			t.Fatal("Chat called for /start")
		case <-time.After(100 * time.Millisecond):
		}
	})
}
