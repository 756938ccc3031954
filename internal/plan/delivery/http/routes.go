package http

import (
	"github.com/gin-gonic/gin"

	"ai-planning-studio/internal/middleware"
)

// RegisterRoutes mounts the plan routes under rg (/api/v1/plans).
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	rg.POST("/generate", mw.RateLimit(), mw.BodyLimit(), h.Generate)
}

// RegisterLegacyRoutes mounts the unversioned root-level endpoint.
func RegisterLegacyRoutes(r gin.IRoutes, h *handler, mw middleware.Middleware) {
	r.POST("/generate-plan", mw.RateLimit(), mw.BodyLimit(), h.Generate)
}
