package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"ai-planning-studio/internal/document"
)

// processParseReq binds and validates the parse-document request body.
func (h *handler) processParseReq(c *gin.Context) (parseReq, error) {
	var req parseReq
	if err := c.ShouldBindJSON(&req); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return req, document.ErrFileTooLarge
		}
		return req, err
	}
	return req, req.validate()
}
