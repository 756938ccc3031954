package http

import (
	"github.com/gin-gonic/gin"

	"ai-planning-studio/internal/middleware"
)

// RegisterRoutes mounts the calendar routes under rg (/api/v1/calendar).
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	rg.POST("/export", mw.RateLimit(), h.Export)
}
