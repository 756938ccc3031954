package httpserver

import (
	"errors"

	"github.com/gin-gonic/gin"

	"ai-planning-studio/internal/calendar"
	"ai-planning-studio/internal/document"
	"ai-planning-studio/internal/middleware"
	"ai-planning-studio/internal/plan"
	"ai-planning-studio/pkg/log"
	"ai-planning-studio/pkg/metrics"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string
	metrics     *metrics.Metrics
	mw          middleware.Middleware

	// Domains
	documentUC document.UseCase
	planUC     plan.UseCase
	calendarUC calendar.UseCase
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string
	Metrics     *metrics.Metrics
	Middleware  middleware.Middleware

	DocumentUseCase document.UseCase
	PlanUseCase     plan.UseCase
	CalendarUseCase calendar.UseCase // optional
}

// New creates a new HTTPServer instance with every route mounted.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:           logger,
		gin:         gin.New(),
		port:        cfg.Port,
		mode:        cfg.Mode,
		environment: cfg.Environment,
		metrics:     cfg.Metrics,
		mw:          cfg.Middleware,
		documentUC:  cfg.DocumentUseCase,
		planUC:      cfg.PlanUseCase,
		calendarUC:  cfg.CalendarUseCase,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	if err := srv.mapHandlers(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.metrics == nil {
		return errors.New("metrics is required")
	}
	if srv.documentUC == nil {
		return errors.New("document usecase is required")
	}
	if srv.planUC == nil {
		return errors.New("plan usecase is required")
	}
	return nil
}
