package main

import (
	"context"
	"fmt"
	"time"

	"planning-assistant/config"
	_ "planning-assistant/docs" // Swagger docs
	"planning-assistant/internal/docgen"
	"planning-assistant/internal/httpserver"
	"planning-assistant/internal/middleware"
	planningHTTP "planning-assistant/internal/planning/delivery/http"
	tgDelivery "planning-assistant/internal/planning/delivery/telegram"
	"planning-assistant/internal/planning/repository/memory"
	planningUC "planning-assistant/internal/planning/usecase"
	"planning-assistant/pkg/gcalendar"
	"planning-assistant/pkg/llmprovider"
	"planning-assistant/pkg/log"
	"planning-assistant/pkg/telegram"
)

// @title       Planning Assistant API
// @description Conversational project planning: requirements, design, and task documents generated phase by phase.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx := context.Background()
	logger.Info(ctx, "Starting Planning Assistant...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. LLM providers
	specs := make([]llmprovider.ProviderSpec, 0, len(cfg.LLM.Providers))
	for _, p := range cfg.LLM.Providers {
		specs = append(specs, llmprovider.ProviderSpec{
			Name:     p.Name,
			Enabled:  p.Enabled,
			Priority: p.Priority,
			APIKey:   p.APIKey,
			BaseURL:  p.BaseURL,
			Model:    p.Model,
		})
	}
	providers, err := llmprovider.NewProvidersFromSpecs(specs)
	if err != nil {
		logger.Error(ctx, "Failed to build LLM providers: ", err)
		return
	}
	llmManager := llmprovider.NewManager(providers, &llmprovider.Config{
		FallbackEnabled: cfg.LLM.FallbackEnabled,
		RetryAttempts:   cfg.LLM.RetryAttempts,
		RetryDelay:      cfg.LLM.RetryDelayDuration(),
		MaxTotalTimeout: cfg.LLM.MaxTotalTimeoutDuration(),
	}, logger)
	logger.Infof(ctx, "LLM manager initialized with %d provider(s)", len(providers))

	// 4. Google Calendar client (optional)
	var calendarClient *gcalendar.Client
	if cfg.GoogleCalendar.CredentialsPath != "" {
		calendarClient, err = gcalendar.NewClientFromCredentialsFile(ctx, cfg.GoogleCalendar.CredentialsPath)
		if err != nil {
			logger.Warnf(ctx, "Google Calendar not available (optional): %v", err)
		} else {
			logger.Info(ctx, "Google Calendar initialized")
		}
	}

	// 5. Planning domain
	store := memory.New()
	generator := docgen.New(logger, llmManager)
	uc := planningUC.New(logger, llmManager, generator, store, calendarClient, planningUC.Config{
		ConversationCap: cfg.Planning.ConversationCap,
		ReadyAfterTurns: cfg.Planning.ReadyAfterTurns,
		CalendarID:      cfg.GoogleCalendar.CalendarID,
		Timezone:        cfg.GoogleCalendar.Timezone,
	})

	planningHandler := planningHTTP.New(logger, uc)

	// 6. Telegram delivery (optional)
	var telegramHandler tgDelivery.Handler
	if cfg.Telegram.BotToken != "" {
		telegramBot := telegram.NewBot(cfg.Telegram.BotToken)
		telegramHandler = tgDelivery.New(logger, uc, telegramBot)

		if cfg.Telegram.WebhookURL != "" {
			if whErr := telegramBot.SetWebhook(cfg.Telegram.WebhookURL); whErr != nil {
				logger.Warnf(ctx, "Failed to set Telegram webhook: %v", whErr)
			} else {
				logger.Infof(ctx, "Telegram webhook registered at %s", cfg.Telegram.WebhookURL)
			}
		}
	} else {
		logger.Warn(ctx, "TELEGRAM_BOT_TOKEN missing, Telegram delivery disabled")
	}

	// 7. Background session eviction
	if cfg.Planning.SessionTTLHours > 0 {
		ttl := time.Duration(cfg.Planning.SessionTTLHours) * time.Hour
		go func() {
			ticker := time.NewTicker(time.Hour)
			defer ticker.Stop()
			for range ticker.C {
				if _, evErr := uc.EvictSessions(context.Background(), ttl); evErr != nil {
					logger.Errorf(context.Background(), "session eviction: %v", evErr)
				}
			}
		}()
	}

	// 8. HTTP Server
	mw := middleware.New(logger, middleware.RateLimitConfig{
		RequestsPerMin: cfg.Planning.RateLimitPerMin,
		MaxClients:     cfg.Planning.RateLimitClients,
	})

	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:          logger,
		Port:            cfg.HTTPServer.Port,
		Mode:            cfg.HTTPServer.Mode,
		Environment:     cfg.Environment.Name,
		PlanningHandler: planningHandler,
		TelegramHandler: telegramHandler,
		Middleware:      mw,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 9. Run
	if err := httpServer.Run(); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
