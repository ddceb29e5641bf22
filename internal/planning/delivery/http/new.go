package http

import (
	"github.com/gin-gonic/gin"

	"planning-assistant/internal/planning"
	"planning-assistant/pkg/log"
)

// Handler is the public interface for the planning HTTP delivery layer.
type Handler interface {
	Chat(c *gin.Context)
	ListSessions(c *gin.Context)
	SessionDetail(c *gin.Context)
	RemoveSession(c *gin.Context)
	EvictSessions(c *gin.Context)
	Document(c *gin.Context)
	DownloadDocument(c *gin.Context)
	ExportCalendar(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc planning.UseCase
}

// New creates a new HTTP handler for the planning domain.
func New(l log.Logger, uc planning.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
