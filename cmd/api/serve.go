package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"ai-planning-studio/config"
	"ai-planning-studio/internal/calendar"
	calendarUC "ai-planning-studio/internal/calendar/usecase"
	documentUC "ai-planning-studio/internal/document/usecase"
	"ai-planning-studio/internal/httpserver"
	"ai-planning-studio/internal/middleware"
	planUC "ai-planning-studio/internal/plan/usecase"
	"ai-planning-studio/pkg/datemath"
	"ai-planning-studio/pkg/gcalendar"
	"ai-planning-studio/pkg/llmprovider"
	"ai-planning-studio/pkg/log"
	"ai-planning-studio/pkg/metrics"
)

// runServer is replaced in tests.
var runServer = serve

func serveCMD() *cobra.Command {
	var port int
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			// 1. Configuration
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			if err := cfg.Validate(); err != nil {
				return fmt.Errorf("invalid config: %w", err)
			}
			if port > 0 {
				cfg.HTTPServer.Port = port
			}
			return runServer(cfg)
		},
	}
	cmd.Flags().IntVar(&port, "port", 0, "listen port (overrides http_server.port)")
	return cmd
}

func serve(cfg *config.Config) error {
	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting AI Planning Studio...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	m := metrics.New()

	// 3. Calendar arithmetic
	cal, err := datemath.New(cfg.Plan.Timezone)
	if err != nil {
		logger.Warnf(ctx, "Invalid timezone %q, falling back to UTC: %v", cfg.Plan.Timezone, err)
		cal, _ = datemath.New("UTC")
	}

	// 4. LLM providers
	providers, err := llmprovider.InitializeProviders(ctx, &cfg.LLM, logger)
	if err != nil {
		return fmt.Errorf("initialize LLM providers: %w", err)
	}
	managerCfg, err := managerConfig(&cfg.LLM)
	if err != nil {
		return err
	}
	manager := llmprovider.NewManager(providers, managerCfg, logger)
	manager.SetObserver(m)

	// 5. Use cases
	documents := documentUC.New(logger, cfg.Document.MaxChars, cfg.Document.MaxFileBytes)
	documents.SetObserver(m)

	plans := planUC.New(logger, manager, cal, cfg.Plan)
	plans.SetObserver(m)

	// Google Calendar export (optional)
	var export calendar.UseCase
	if cfg.GoogleCalendar.Enabled() {
		client, gcErr := gcalendar.NewClientFromCredentialsFile(ctx, cfg.GoogleCalendar.CredentialsPath, cfg.GoogleCalendar.TokenPath)
		if gcErr != nil {
			logger.Warnf(ctx, "Google Calendar not available (optional): %v", gcErr)
			logger.Warn(ctx, "→ Run `ai-planning-studio calendar-auth` to generate the token file")
		} else {
			export = calendarUC.New(logger, client, cfg.GoogleCalendar.CalendarID)
			logger.Info(ctx, "✅ Google Calendar initialized")
		}
	}

	// 6. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:          logger,
		Port:            cfg.HTTPServer.Port,
		Mode:            cfg.HTTPServer.Mode,
		Environment:     cfg.Environment.Name,
		Metrics:         m,
		Middleware:      middleware.New(logger, cfg, m),
		DocumentUseCase: documents,
		PlanUseCase:     plans,
		CalendarUseCase: export,
	})
	if err != nil {
		return fmt.Errorf("initialize HTTP server: %w", err)
	}

	// 7. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return err
	}

	logger.Info(ctx, "Server stopped gracefully")
	return nil
}

func managerConfig(cfg *config.LLMConfig) (*llmprovider.Config, error) {
	out := &llmprovider.Config{
		FallbackEnabled: cfg.FallbackEnabled,
		RetryAttempts:   cfg.RetryAttempts,
	}
	var err error
	if cfg.RetryDelay != "" {
		if out.RetryDelay, err = time.ParseDuration(cfg.RetryDelay); err != nil {
			return nil, fmt.Errorf("llm.retry_delay: %w", err)
		}
	}
	if cfg.MaxTotalTimeout != "" {
		if out.MaxTotalTimeout, err = time.ParseDuration(cfg.MaxTotalTimeout); err != nil {
			return nil, fmt.Errorf("llm.max_total_timeout: %w", err)
		}
	}
	return out, nil
}
