package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"cycle_companion_bot/internal/app"
	"cycle_companion_bot/internal/infra/config"
	idb "cycle_companion_bot/internal/infra/database"
	"cycle_companion_bot/internal/infra/logger"
	"cycle_companion_bot/internal/infra/scheduler"
	"cycle_companion_bot/internal/infra/telegram"

	"gopkg.in/telebot.v3"
)

func main() {
	fmt.Println("Cycle Companion Bot starting...")

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("FATAL: Could not load application configuration: %v", err)
	}

	logger.Init(cfg)
	mainLogger := logger.Get().WithField("component", "main")
	mainLogger.Infof("Configuration loaded. LogLevel: %s, Environment: %s", cfg.LogLevel, cfg.Environment)

	// Initialize Database Connection
	db, err := idb.NewPostgresConnection(cfg.DatabaseURL)
	if err != nil {
		mainLogger.Fatalf("Could not connect to database: %v", err)
	}
	defer db.Close()
	mainLogger.Info("Database connection established successfully.")

	// Initialize Repositories
	periodRepo := idb.NewPostgresPeriodRepository(db)
	symptomRepo := idb.NewPostgresSymptomRepository(db)
	moodRepo := idb.NewPostgresMoodRepository(db)
	activityRepo := idb.NewPostgresActivityRepository(db)
	ovulationRepo := idb.NewPostgresOvulationRepository(db)
	settingsRepo := idb.NewPostgresReminderRepository(db)
	mainLogger.Info("Repositories initialized.")

	// Initialize TrackingService
	trackingService := app.NewTrackingService(periodRepo, symptomRepo, moodRepo, activityRepo, ovulationRepo)
	mainLogger.Info("Tracking service initialized.")

	// Initialize Telegram Bot
	pref := telebot.Settings{
		Token:  cfg.TelegramToken,
		Poller: &telebot.LongPoller{Timeout: 10 * time.Second},
		OnError: func(err error, c telebot.Context) { // Global error handler
			entry := logger.Get().WithField("component", "telebot").WithError(err)
			if c != nil && c.Sender() != nil {
				entry = entry.WithField("sender_id", c.Sender().ID)
			}
			entry.Error("Telegram handler error")
		},
	}
	bot, err := telebot.NewBot(pref)
	if err != nil {
		mainLogger.Fatalf("Could not create Telegram bot: %v", err)
	}

	// Initialize ReminderService
	telegramClient := telegram.NewTelebotAdapter(bot)
	reminderService := app.NewReminderServiceImpl(
		periodRepo,
		settingsRepo,
		telegramClient,
		logger.Get().WithField("component", "reminder_service"),
		cfg.DefaultLeadDays,
	)
	mainLogger.Info("Reminder service initialized.")

	// Initialize ReminderScheduler
	reminderScheduler := scheduler.NewReminderScheduler(
		reminderService,
		logger.Get().WithField("component", "scheduler"),
		cfg.CronSpecDailyCheckIn,
		cfg.CronSpecPredictionCheck,
	)
	reminderScheduler.Start()

	// Register Handlers
	ctx := context.Background()
	handlerLogger := logger.Get().WithField("component", "telegram")
	telegram.RegisterTrackingHandlers(ctx, bot, trackingService, handlerLogger)
	telegram.RegisterReminderHandlers(ctx, bot, reminderService, handlerLogger)
	telegram.RegisterEducationHandlers(bot)
	telegram.RegisterCallbackHandlers(ctx, bot, trackingService)
	mainLogger.Info("Command handlers registered.")

	mainLogger.Info("Application setup complete. Bot and Scheduler are starting...")

	// Start bot in a goroutine so it doesn't block graceful shutdown handling
	go bot.Start()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit // Block until a signal is received

	mainLogger.Info("Shutting down application...")
	reminderScheduler.Stop()
	bot.Stop()
	mainLogger.Info("Application shut down gracefully.")
}
