package http

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"planning-assistant/pkg/response"
)

// Chat godoc
// @Summary     Send a chat message
// @Description Runs one planning conversation turn. Generates and returns the phase document when the active phase is ready.
// @Tags        Planning
// @Accept      json
// @Produce     json
// @Param       body body chatReq true "Chat turn"
// @Success     200 {object} chatResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     502 {object} response.Resp "Upstream LLM failure"
// @Router      /api/v1/planning/chat [POST]
func (h *handler) Chat(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processChatReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Chat(ctx, h.processScope(c), req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Chat: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newChatResp(output))
}

// ListSessions godoc
// @Summary     List active sessions
// @Description Returns the keys of all currently tracked sessions.
// @Tags        Planning
// @Produce     json
// @Success     200 {object} listSessionsResp
// @Router      /api/v1/planning/sessions [GET]
func (h *handler) ListSessions(c *gin.Context) {
	ctx := c.Request.Context()

	keys, err := h.uc.ListSessions(ctx)
	if err != nil {
		h.l.Errorf(ctx, "uc.ListSessions: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, listSessionsResp{Sessions: keys, Total: len(keys)})
}

// SessionDetail godoc
// @Summary     Get session detail
// @Description Returns the project snapshot and a conversation digest.
// @Tags        Planning
// @Produce     json
// @Param       id path string true "Session key"
// @Success     200 {object} sessionDetailResp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/planning/sessions/{id} [GET]
func (h *handler) SessionDetail(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.SessionDetail(ctx, c.Param("id"))
	if err != nil {
		h.l.Errorf(ctx, "uc.SessionDetail: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newSessionDetailResp(output))
}

// RemoveSession godoc
// @Summary     Delete a session
// @Description Removes a session and all of its state. No-op when absent.
// @Tags        Planning
// @Produce     json
// @Param       id path string true "Session key"
// @Success     200 {object} response.Resp "OK"
// @Router      /api/v1/planning/sessions/{id} [DELETE]
func (h *handler) RemoveSession(c *gin.Context) {
	ctx := c.Request.Context()

	if err := h.uc.RemoveSession(ctx, c.Param("id")); err != nil {
		h.l.Errorf(ctx, "uc.RemoveSession: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, nil)
}

// EvictSessions godoc
// @Summary     Evict idle sessions
// @Description Removes sessions idle longer than max_age_hours (default 24).
// @Tags        Planning
// @Accept      json
// @Produce     json
// @Param       body body evictReq false "Eviction settings"
// @Success     200 {object} evictResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/planning/sessions/evict [POST]
func (h *handler) EvictSessions(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processEvictReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	evicted, err := h.uc.EvictSessions(ctx, req.maxAge())
	if err != nil {
		h.l.Errorf(ctx, "uc.EvictSessions: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, evictResp{Evicted: evicted})
}

// Document godoc
// @Summary     Get a generated document
// @Description Returns the latest version of the requested document type.
// @Tags        Planning
// @Produce     json
// @Param       id   path string true "Session key"
// @Param       type path string true "Document type (requirements/design/tasks)"
// @Success     200 {object} documentResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/planning/sessions/{id}/documents/{type} [GET]
func (h *handler) Document(c *gin.Context) {
	ctx := c.Request.Context()

	docType, err := h.processDocumentType(c)
	if err != nil {
		response.Error(c, h.mapError(err))
		return
	}

	output, err := h.uc.Document(ctx, c.Param("id"), docType)
	if err != nil {
		h.l.Errorf(ctx, "uc.Document: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newDocumentResp(output))
}

// DownloadDocument godoc
// @Summary     Download a generated document
// @Description Streams the document markdown as a file attachment.
// @Tags        Planning
// @Produce     text/markdown
// @Param       id   path string true "Session key"
// @Param       type path string true "Document type (requirements/design/tasks)"
// @Success     200 {string} string "Markdown content"
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/planning/sessions/{id}/documents/{type}/download [GET]
func (h *handler) DownloadDocument(c *gin.Context) {
	ctx := c.Request.Context()

	docType, err := h.processDocumentType(c)
	if err != nil {
		response.Error(c, h.mapError(err))
		return
	}

	output, err := h.uc.Document(ctx, c.Param("id"), docType)
	if err != nil {
		h.l.Errorf(ctx, "uc.Document: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", output.Filename))
	c.Data(http.StatusOK, "text/markdown; charset=utf-8", []byte(output.Markdown))
}

// ExportCalendar godoc
// @Summary     Export tasks to Google Calendar
// @Description Creates one calendar event per generated task.
// @Tags        Planning
// @Produce     json
// @Param       id path string true "Session key"
// @Success     200 {object} exportCalendarResp
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     409 {object} response.Resp "Tasks not generated yet"
// @Failure     503 {object} response.Resp "Calendar not configured"
// @Router      /api/v1/planning/sessions/{id}/export/calendar [POST]
func (h *handler) ExportCalendar(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.ExportTasksToCalendar(ctx, c.Param("id"))
	if err != nil {
		h.l.Errorf(ctx, "uc.ExportTasksToCalendar: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newExportCalendarResp(output))
}
