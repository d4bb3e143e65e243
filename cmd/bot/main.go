package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"relaybot/internal/config"
	"relaybot/internal/handler"
	"relaybot/internal/health"
	"relaybot/internal/i18n"
	"relaybot/internal/middleware"
	"relaybot/internal/repository/memory"
	"relaybot/internal/service"
	"relaybot/internal/translator"

	"github.com/getsentry/sentry-go"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	tele "gopkg.in/telebot.v3"
)

const shutdownTimeout = 5 * time.Second

func main() {
	// Initialize logger; the level is adjusted once config is loaded
	level := zap.NewAtomicLevelAt(zap.InfoLevel)
	logCfg := zap.NewProductionConfig()
	logCfg.Level = level
	logger, err := logCfg.Build()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("Starting translation bot")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load config", zap.Error(err))
	}

	if lvl, err := zapcore.ParseLevel(cfg.LogLevel); err != nil {
		logger.Warn("Unknown log level, keeping info", zap.String("level", cfg.LogLevel))
	} else {
		level.SetLevel(lvl)
	}

	logger.Info("Configuration loaded successfully",
		zap.String("channel", cfg.ChannelUsername),
		zap.String("addr", cfg.Addr()),
	)

	// Initialize Sentry (if DSN is provided)
	if cfg.SentryDSN != "" {
		if err := sentry.Init(sentry.ClientOptions{Dsn: cfg.SentryDSN}); err != nil {
			logger.Fatal("Failed to initialize Sentry", zap.Error(err))
		}
		defer sentry.Flush(2 * time.Second)
		logger.Info("Sentry error reporting enabled")
	}

	// Load prompts
	catalog, err := i18n.NewCatalog(logger)
	if err != nil {
		logger.Fatal("Failed to load prompt catalog", zap.Error(err))
	}

	// Initialize Telegram bot
	var h *handler.Handler
	bot, err := tele.NewBot(tele.Settings{
		Token:   cfg.BotToken,
		Poller:  &tele.LongPoller{Timeout: cfg.PollTimeout},
		OnError: func(err error, c tele.Context) { h.OnError(err, c) },
	})
	if err != nil {
		logger.Fatal("Failed to create bot", zap.Error(err))
	}

	logger.Info("Telegram bot initialized", zap.String("username", bot.Me.Username))

	// Initialize repositories
	sessions := memory.NewSessionRepo()

	// Initialize services
	subscriptions := service.NewSubscriptionService(
		handler.NewBotMembership(bot),
		cfg.ChannelUsername,
		cfg.Membership.Timeout,
		logger,
	)
	translations := service.NewTranslationService(
		translator.NewGoogle(cfg.Translate.URL, &http.Client{Timeout: cfg.Translate.Timeout}),
		cfg.Translate.RetryBackoff,
		cfg.Translate.Timeout,
		logger,
	)
	dialog := service.NewDialog(sessions, catalog, subscriptions, translations, logger)

	// Initialize handler
	h = handler.NewHandler(bot, dialog, sessions, catalog, logger)
	bot.Use(
		middleware.Logging(logger),
		middleware.NewUserLock().Middleware,
		middleware.Recover(logger),
	)
	h.RegisterHandlers()

	logger.Info("Handlers registered")

	// Start health endpoint
	healthServer := health.NewServer(cfg.Addr(), logger)
	if err := healthServer.Start(); err != nil {
		logger.Fatal("Failed to start health endpoint", zap.Error(err))
	}

	// Start bot in background
	go func() {
		logger.Info("Bot started successfully")
		bot.Start()
	}()

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	<-sigChan

	logger.Info("Shutdown signal received, stopping bot...")

	// Graceful shutdown
	bot.Stop()

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := healthServer.Shutdown(ctx); err != nil {
		logger.Warn("Failed to stop health endpoint", zap.Error(err))
	}

	logger.Info("Bot stopped gracefully")
}
