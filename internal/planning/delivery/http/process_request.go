package http

import (
	"github.com/gin-gonic/gin"

	"planning-assistant/internal/model"
	"planning-assistant/internal/planning"
)

// processChatReq binds and validates the chat request body.
func (h *handler) processChatReq(c *gin.Context) (chatReq, error) {
	var req chatReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}

// processEvictReq binds and validates the evict request body. An empty
// body is accepted and falls back to the default max age.
func (h *handler) processEvictReq(c *gin.Context) (evictReq, error) {
	var req evictReq
	if c.Request.ContentLength == 0 {
		return req, nil
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}

// processScope builds the request scope from forwarded identity headers.
func (h *handler) processScope(c *gin.Context) model.Scope {
	return model.Scope{
		UserID:   c.GetHeader("X-User-ID"),
		Username: c.GetHeader("X-Username"),
	}
}

// processDocumentType parses and validates the :type path parameter.
func (h *handler) processDocumentType(c *gin.Context) (model.DocumentType, error) {
	docType, ok := model.ParseDocumentType(c.Param("type"))
	if !ok {
		return "", planning.ErrInvalidDocumentType
	}
	return docType, nil
}
