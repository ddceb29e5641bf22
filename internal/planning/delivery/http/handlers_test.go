package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"planning-assistant/internal/middleware"
	"planning-assistant/internal/model"
	"planning-assistant/internal/planning"
	planningHTTP "planning-assistant/internal/planning/delivery/http"
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
	chatOutput     planning.ChatOutput
	chatErr        error
	detailOutput   planning.SessionDetailOutput
	detailErr      error
	listOutput     []string
	evicted        int
	documentOutput planning.DocumentOutput
	documentErr    error
	exportOutput   planning.ExportTasksOutput
	exportErr      error
	removedID      string
}

func (m *mockUseCase) Chat(ctx context.Context, sc model.Scope, input planning.ChatInput) (planning.ChatOutput, error) {
	return m.chatOutput, m.chatErr
}

func (m *mockUseCase) SessionDetail(ctx context.Context, sessionID string) (planning.SessionDetailOutput, error) {
	return m.detailOutput, m.detailErr
}

func (m *mockUseCase) ListSessions(ctx context.Context) ([]string, error) {
	return m.listOutput, nil
}

func (m *mockUseCase) RemoveSession(ctx context.Context, sessionID string) error {
	m.removedID = sessionID
	return nil
}

func (m *mockUseCase) EvictSessions(ctx context.Context, maxAge time.Duration) (int, error) {
	return m.evicted, nil
}

func (m *mockUseCase) Document(ctx context.Context, sessionID string, docType model.DocumentType) (planning.DocumentOutput, error) {
	return m.documentOutput, m.documentErr
}

func (m *mockUseCase) ExportTasksToCalendar(ctx context.Context, sessionID string) (planning.ExportTasksOutput, error) {
	return m.exportOutput, m.exportErr
}

func newTestRouter(uc planning.UseCase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := planningHTTP.New(&mockLogger{}, uc)
	mw := middleware.New(&mockLogger{}, middleware.RateLimitConfig{RequestsPerMin: 6000})

	r := gin.New()
	planningHTTP.RegisterRoutes(r.Group("/api/v1/planning"), h, mw)
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func TestChatEndpoint(t *testing.T) {
	t.Run("success with generated document", func(t *testing.T) {
		uc := &mockUseCase{
			chatOutput: planning.ChatOutput{
				SessionID: "sess-1",
				Reply:     "done",
				Document: &planning.GeneratedDocument{
					Type:     model.DocumentRequirements,
					Markdown: "# Req",
					Version:  1,
				},
			},
		}
		r := newTestRouter(uc)

		w := doJSON(t, r, http.MethodPost, "/api/v1/planning/chat", map[string]any{
			"messages": []map[string]string{{"role": "user", "content": "hello"}},
		})
		if w.Code != http.StatusOK {
			t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
		}
		if !strings.Contains(w.Body.String(), `"type":"requirements"`) {
			t.Errorf("body lacks document payload: %s", w.Body.String())
		}
	})

	t.Run("missing messages rejected", func(t *testing.T) {
		r := newTestRouter(&mockUseCase{})

		w := doJSON(t, r, http.MethodPost, "/api/v1/planning/chat", map[string]any{})
		if w.Code != http.StatusBadRequest {
			t.Fatalf("status = %d, want 400", w.Code)
		}
	})

	t.Run("domain validation error maps to 400", func(t *testing.T) {
		uc := &mockUseCase{chatErr: planning.ErrEmptyMessage}
		r := newTestRouter(uc)

		w := doJSON(t, r, http.MethodPost, "/api/v1/planning/chat", map[string]any{
			"messages": []map[string]string{{"content": "  "}},
		})
		if w.Code != http.StatusBadRequest {
			t.Fatalf("status = %d, want 400", w.Code)
		}
	})
}

func TestSessionEndpoints(t *testing.T) {
	t.Run("detail found", func(t *testing.T) {
		uc := &mockUseCase{
			detailOutput: planning.SessionDetailOutput{
				SessionID:    "sess-1",
				MessageCount: 4,
				Summary:      "session sess-1: 4 message(s)",
			},
		}
		r := newTestRouter(uc)

		w := doJSON(t, r, http.MethodGet, "/api/v1/planning/sessions/sess-1", nil)
		if w.Code != http.StatusOK {
			t.Fatalf("status = %d", w.Code)
		}
		if !strings.Contains(w.Body.String(), `"message_count":4`) {
			t.Errorf("body = %s", w.Body.String())
		}
	})

	t.Run("detail not found maps to 404", func(t *testing.T) {
		uc := &mockUseCase{detailErr: planning.ErrSessionNotFound}
		r := newTestRouter(uc)

		w := doJSON(t, r, http.MethodGet, "/api/v1/planning/sessions/nope", nil)
		if w.Code != http.StatusNotFound {
			t.Fatalf("status = %d, want 404", w.Code)
		}
	})

	t.Run("list", func(t *testing.T) {
		uc := &mockUseCase{listOutput: []string{"a", "b"}}
		r := newTestRouter(uc)

		w := doJSON(t, r, http.MethodGet, "/api/v1/planning/sessions", nil)
		if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), `"total":2`) {
			t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
		}
	})

	t.Run("remove", func(t *testing.T) {
		uc := &mockUseCase{}
		r := newTestRouter(uc)

		w := doJSON(t, r, http.MethodDelete, "/api/v1/planning/sessions/sess-9", nil)
		if w.Code != http.StatusOK {
			t.Fatalf("status = %d", w.Code)
		}
		if uc.removedID != "sess-9" {
			t.Errorf("removed ID = %q", uc.removedID)
		}
	})

	t.Run("evict with empty body", func(t *testing.T) {
		uc := &mockUseCase{evicted: 3}
		r := newTestRouter(uc)

		w := doJSON(t, r, http.MethodPost, "/api/v1/planning/sessions/evict", nil)
		if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), `"evicted":3`) {
			t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
		}
	})
}

func TestDocumentEndpoints(t *testing.T) {
	t.Run("invalid type maps to 400", func(t *testing.T) {
		r := newTestRouter(&mockUseCase{})

		w := doJSON(t, r, http.MethodGet, "/api/v1/planning/sessions/sess-1/documents/blueprint", nil)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("status = %d, want 400", w.Code)
		}
	})

	t.Run("not generated maps to 404", func(t *testing.T) {
		uc := &mockUseCase{documentErr: planning.ErrDocumentNotFound}
		r := newTestRouter(uc)

		w := doJSON(t, r, http.MethodGet, "/api/v1/planning/sessions/sess-1/documents/design", nil)
		if w.Code != http.StatusNotFound {
			t.Fatalf("status = %d, want 404", w.Code)
		}
	})

	t.Run("download sets attachment headers", func(t *testing.T) {
		uc := &mockUseCase{
			documentOutput: planning.DocumentOutput{
				ProjectName: "demo",
				Type:        model.DocumentTasks,
				Markdown:    "# Tasks",
				Version:     2,
				Filename:    "demo-tasks.md",
			},
		}
		r := newTestRouter(uc)

		w := doJSON(t, r, http.MethodGet, "/api/v1/planning/sessions/sess-1/documents/tasks/download", nil)
		if w.Code != http.StatusOK {
			t.Fatalf("status = %d", w.Code)
		}
		if got := w.Header().Get("Content-Disposition"); !strings.Contains(got, "demo-tasks.md") {
			t.Errorf("Content-Disposition = %q", got)
		}
		if w.Body.String() != "# Tasks" {
			t.Errorf("body = %q", w.Body.String())
		}
	})
}

func TestExportCalendarEndpoint(t *testing.T) {
	t.Run("tasks missing maps to 409", func(t *testing.T) {
		uc := &mockUseCase{exportErr: planning.ErrTasksNotGenerated}
		r := newTestRouter(uc)

		w := doJSON(t, r, http.MethodPost, "/api/v1/planning/sessions/sess-1/export/calendar", nil)
		if w.Code != http.StatusConflict {
			t.Fatalf("status = %d, want 409", w.Code)
		}
	})

	t.Run("not configured maps to 503", func(t *testing.T) {
		uc := &mockUseCase{exportErr: planning.ErrCalendarNotConfigured}
		r := newTestRouter(uc)

		w := doJSON(t, r, http.MethodPost, "/api/v1/planning/sessions/sess-1/export/calendar", nil)
		if w.Code != http.StatusServiceUnavailable {
			t.Fatalf("status = %d, want 503", w.Code)
		}
	})
}
