package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"ai-planning-studio/internal/plan"
)

// processGenerateReq binds and validates the generate-plan request body.
func (h *handler) processGenerateReq(c *gin.Context) (generateReq, error) {
	var req generateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return req, plan.ErrContentTooLarge
		}
		return req, err
	}
	return req, req.validate()
}
