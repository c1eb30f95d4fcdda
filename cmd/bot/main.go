package main

import (
	"context"
	"os/signal"
	"syscall"
	"time"

	"exam_results_bot/internal/domain/session"
	"exam_results_bot/internal/infra/bootstrap"
	"exam_results_bot/internal/infra/config"
	"exam_results_bot/internal/infra/httpapi"
	"exam_results_bot/internal/infra/logger"
	"exam_results_bot/internal/infra/metrics"
	"exam_results_bot/internal/infra/presenter"
	"exam_results_bot/internal/infra/scheduler"
	isession "exam_results_bot/internal/infra/session"
	"exam_results_bot/internal/infra/telegram"

	"github.com/sirupsen/logrus"
	"gopkg.in/telebot.v3"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.Log.Fatalf("FATAL: Could not load application configuration: %v", err)
	}
	if err := cfg.RequireTelegram(); err != nil {
		logger.Log.Fatalf("FATAL: %v", err)
	}
	logger.Init(cfg)
	mainLogger := logger.Component("main")
	mainLogger.WithFields(logrus.Fields{
		"log_level":   cfg.LogLevel,
		"environment": cfg.Environment,
		"catalog":     cfg.CatalogPath,
	}).Info("Exam results bot starting...")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	promMetrics := metrics.NewPrometheus()

	stack, err := bootstrap.NewLookupStack(ctx, cfg, promMetrics, logger.Component("lookup"))
	if err != nil {
		mainLogger.Fatalf("FATAL: Could not initialize lookup service: %v", err)
	}
	defer stack.Close()

	// Stream session store
	var sessions session.Store
	if cfg.RedisURL != "" {
		redisStore, err := isession.NewRedisStore(ctx, cfg.RedisURL, cfg.SessionTTL)
		if err != nil {
			mainLogger.Fatalf("FATAL: Could not connect to Redis: %v", err)
		}
		defer redisStore.Close()
		sessions = redisStore
		mainLogger.Info("Stream sessions stored in Redis.")
	} else {
		sessions = isession.NewMemoryStore(cfg.SessionTTL)
		mainLogger.Info("Stream sessions stored in memory.")
	}

	maintenance := scheduler.NewMaintenanceScheduler(
		stack.Service,
		sessions,
		logger.Component("scheduler"),
		cfg.CronSpecSourceProbe,
		cfg.CronSpecSessionSweep,
	)
	if err := maintenance.Start(); err != nil {
		mainLogger.Fatalf("FATAL: Could not start scheduler: %v", err)
	}

	var apiServer *httpapi.Server
	if cfg.HTTPAddr != "" {
		router := httpapi.NewRouter(stack.Service, promMetrics.Handler(), logger.Component("http"))
		apiServer = httpapi.NewServer(cfg.HTTPAddr, router, logger.Component("http"))
		apiServer.Start()
	}

	// Initialize Telegram Bot
	messages := presenter.ForLocale(cfg.Locale)
	botLogger := logger.Component("telegram")
	pref := telebot.Settings{
		Token:  cfg.TelegramToken,
		Poller: &telebot.LongPoller{Timeout: 10 * time.Second},
		OnError: func(err error, c telebot.Context) { // Global error handler
			logCtx := botLogger.WithError(err)
			if c != nil && c.Chat() != nil {
				logCtx = logCtx.WithField("chat_id", c.Chat().ID)
			}
			logCtx.Error("Telegram handler error")
			if c != nil && c.Chat() != nil {
				_ = c.Send(messages.UnexpectedError)
			}
		},
	}
	bot, err := telebot.NewBot(pref)
	if err != nil {
		mainLogger.Fatalf("FATAL: Could not create Telegram bot: %v", err)
	}

	client := telegram.NewTelebotAdapter(bot)
	janitor := telegram.NewMessageJanitor(client, botLogger)
	deps := telegram.Deps{
		Lookups:       stack.Service,
		Sessions:      sessions,
		Presenter:     presenter.New(messages),
		Client:        client,
		Janitor:       janitor,
		LookupTimeout: cfg.LookupTimeout,
		ProcessingTTL: cfg.ProcessingMessageTTL,
		NotFoundTTL:   cfg.NotFoundMessageTTL,
		Logger:        botLogger,
	}

	// Register Handlers
	telegram.RegisterBotCommands(ctx, bot, deps)
	telegram.RegisterStreamHandlers(ctx, bot, deps)
	telegram.RegisterLookupHandlers(ctx, bot, deps)
	mainLogger.Info("Bot handlers registered. Bot is running...")

	// Start bot in a goroutine so it doesn't block graceful shutdown handling
	go bot.Start()

	<-ctx.Done() // Block until a signal is received

	mainLogger.Info("Shutting down application...")
	bot.Stop()
	janitor.Stop()
	maintenance.Stop()
	if apiServer != nil {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		if err := apiServer.Shutdown(shutdownCtx); err != nil {
			mainLogger.WithError(err).Warn("HTTP API did not shut down cleanly")
		}
		cancel()
	}
	mainLogger.Info("Application shut down gracefully.")
}
