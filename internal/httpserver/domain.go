package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	calendarHTTP "ai-planning-studio/internal/calendar/delivery/http"
	documentHTTP "ai-planning-studio/internal/document/delivery/http"
	planHTTP "ai-planning-studio/internal/plan/delivery/http"
)

// setupDocumentDomain registers POST /parse-document and /api/v1/documents/parse.
func (srv HTTPServer) setupDocumentDomain(ctx context.Context, api *gin.RouterGroup) {
	h := documentHTTP.New(srv.l, srv.documentUC)
	documentHTTP.RegisterLegacyRoutes(srv.gin, h, srv.mw)
	documentHTTP.RegisterRoutes(api.Group("/documents"), h, srv.mw)

	srv.l.Infof(ctx, "Document domain registered")
}

// setupPlanDomain registers POST /generate-plan and /api/v1/plans/generate.
func (srv HTTPServer) setupPlanDomain(ctx context.Context, api *gin.RouterGroup) {
	h := planHTTP.New(srv.l, srv.planUC)
	planHTTP.RegisterLegacyRoutes(srv.gin, h, srv.mw)
	planHTTP.RegisterRoutes(api.Group("/plans"), h, srv.mw)

	srv.l.Infof(ctx, "Plan domain registered")
}

func (srv HTTPServer) setupCalendarDomain(ctx context.Context, api *gin.RouterGroup) {
	if srv.calendarUC == nil {
		srv.l.Infof(ctx, "Calendar use case not configured, skipping export route")
		return
	}

	h := calendarHTTP.New(srv.l, srv.calendarUC)
	calendarHTTP.RegisterRoutes(api.Group("/calendar"), h, srv.mw)

	srv.l.Infof(ctx, "Calendar domain registered at POST /api/v1/calendar/export")
}
