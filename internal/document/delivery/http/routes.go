package http

import (
	"github.com/gin-gonic/gin"

	"ai-planning-studio/internal/middleware"
)

// RegisterRoutes mounts the document routes under rg (/api/v1/documents).
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	rg.POST("/parse", mw.RateLimit(), mw.BodyLimit(), h.Parse)
}

// RegisterLegacyRoutes mounts the unversioned root-level endpoint.
func RegisterLegacyRoutes(r gin.IRoutes, h *handler, mw middleware.Middleware) {
	r.POST("/parse-document", mw.RateLimit(), mw.BodyLimit(), h.Parse)
}
