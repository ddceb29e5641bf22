package telegram

import (
	"context"
	"fmt"

	"github.com/gin-gonic/gin"

	"planning-assistant/internal/model"
	"planning-assistant/internal/planning"
	pkgResponse "planning-assistant/pkg/response"
	pkgTelegram "planning-assistant/pkg/telegram"
)

// HandleWebhook is the Gin handler for incoming Telegram webhook updates.
// It responds with HTTP 200 immediately and processes the message in a
// background goroutine: Telegram expects an answer within a few seconds
// while a full planning turn with document generation can take longer.
func (h *handler) HandleWebhook(c *gin.Context) {
	ctx := c.Request.Context()

	var update pkgTelegram.Update
	if err := c.ShouldBindJSON(&update); err != nil {
		h.l.Errorf(ctx, "telegram handler: failed to parse update: %v", err)
		pkgResponse.Error(c, err)
		return
	}

	// Ignore non-message updates (polls, channel_post, etc.)
	if update.Message == nil || update.Message.Chat == nil {
		pkgResponse.OK(c, map[string]string{"status": "ignored"})
		return
	}

	// Snapshot the message before spawning the goroutine to avoid data
	// races on the gin context.
	msg := update.Message

	go func() {
		// Detach from the HTTP request context, which is cancelled as
		// soon as the 200 goes out.
		bgCtx := context.Background()
		if err := h.processMessage(bgCtx, msg); err != nil {
			h.l.Errorf(bgCtx, "telegram handler: background processMessage failed: %v", err)
			_ = h.bot.SendMessage(msg.Chat.ID, "Something went wrong while processing your message. Please try again.")
		}
	}()

	pkgResponse.OK(c, map[string]string{"status": "accepted"})
}

// processMessage handles a single Telegram message: built-in commands
// first, then one planning chat turn. One Telegram chat maps to one
// planning session.
func (h *handler) processMessage(ctx context.Context, msg *pkgTelegram.Message) error {
	if msg.Text == "" || msg.From == nil {
		return nil
	}

	switch msg.Text {
	case "/start":
		return h.bot.SendMessageWithMode(msg.Chat.ID,
			"👋 Welcome to the *Planning Assistant*!\n\nTell me about the project you want to build and I'll walk you through three phases:\n• 📋 Requirements\n• 🏗 Design\n• ✅ Tasks\n\nEach phase produces a markdown document you can download right here.",
			"Markdown",
		)
	case "/help":
		return h.bot.SendMessageWithMode(msg.Chat.ID,
			"*How it works:*\n\nDescribe your project idea in plain language. I'll ask focused questions, and once a phase has enough detail its document is generated and sent to you as a file.\n\n`/reset` starts a fresh project.",
			"Markdown",
		)
	case "/reset":
		if err := h.uc.RemoveSession(ctx, sessionKey(msg.Chat.ID)); err != nil {
			return err
		}
		return h.bot.SendMessage(msg.Chat.ID, "Session cleared. Tell me about your next project!")
	}

	sc := model.Scope{
		UserID:   fmt.Sprintf("telegram_%d", msg.From.ID),
		Username: msg.From.Username,
	}

	input := planning.ChatInput{
		SessionID: sessionKey(msg.Chat.ID),
		Messages:  []planning.ChatMessage{{Role: "user", Content: msg.Text}},
	}

	output, err := h.uc.Chat(ctx, sc, input)
	if err != nil {
		h.l.Errorf(ctx, "telegram handler: Chat failed: %v", err)
		return h.bot.SendMessage(msg.Chat.ID, "I couldn't process that message. Please try again.")
	}

	if err := h.bot.SendMessage(msg.Chat.ID, output.Reply); err != nil {
		return err
	}

	// A freshly generated document goes out as a file attachment.
	if output.Document != nil {
		doc, err := h.uc.Document(ctx, input.SessionID, output.Document.Type)
		if err != nil {
			h.l.Errorf(ctx, "telegram handler: Document failed: %v", err)
			return nil
		}
		return h.bot.SendDocument(pkgTelegram.SendDocumentRequest{
			ChatID:   msg.Chat.ID,
			Caption:  fmt.Sprintf("%s — %s (v%d)", doc.ProjectName, doc.Type, doc.Version),
			Filename: doc.Filename,
			Content:  doc.Markdown,
		})
	}

	return nil
}

func sessionKey(chatID int64) string {
	return fmt.Sprintf("telegram:%d", chatID)
}
