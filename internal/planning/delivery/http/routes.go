package http

import (
	"github.com/gin-gonic/gin"

	"planning-assistant/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to handler methods. The chat
// route carries the rate limiter; management routes are left open.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	rg.POST("/chat", mw.RateLimit(), h.Chat)

	sessions := rg.Group("/sessions")
	{
		sessions.GET("", h.ListSessions)
		sessions.POST("/evict", h.EvictSessions)
		sessions.GET("/:id", h.SessionDetail)
		sessions.DELETE("/:id", h.RemoveSession)
		sessions.GET("/:id/documents/:type", h.Document)
		sessions.GET("/:id/documents/:type/download", h.DownloadDocument)
		sessions.POST("/:id/export/calendar", h.ExportCalendar)
	}
}
