package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"studyhub/backend/config"
	"studyhub/backend/notify"
	"studyhub/backend/repository"
	"studyhub/backend/routes"
	"studyhub/backend/session"
	"studyhub/backend/utils"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Error loading config: %v", err)
	}

	// Initialize logger
	logger := utils.InitLogger(utils.LoggerConfig{
		Format:       cfg.LogFormat,
		EnableColors: cfg.LogFormat != "json",
	})

	// Initialize database
	db, err := utils.InitDB(cfg)
	if err != nil {
		logger.Fatalf("Error initializing database: %v", err)
	}

	var denylist session.Denylist = session.NopDenylist{}
	if cfg.RedisAddr != "" {
		redisDenylist, err := session.NewRedisDenylist(cfg.RedisAddr)
		if err != nil {
			logger.Fatalf("Error connecting to redis: %v", err)
		}
		defer redisDenylist.Close()
		denylist = redisDenylist
	} else {
		logger.Println("REDIS_ADDR not set, logout will not revoke tokens")
	}

	var mailer notify.Mailer = notify.LogMailer{Logger: logger}
	if cfg.SendGridAPIKey != "" {
		mailer = notify.NewSendGridMailer(cfg.SendGridAPIKey, cfg.FromName, cfg.FromAddress, logger)
	}

	app, err := routes.NewApp(db, cfg, denylist, logger)
	if err != nil {
		logger.Fatalf("Error setting up routes: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	worker := notify.NewReminderWorker(repository.New(db), mailer, logger, cfg.ReminderInterval)
	go worker.Start(ctx)

	go func() {
		<-ctx.Done()
		logger.Println("Shutting down server...")
		if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
			logger.Printf("Server shutdown error: %v", err)
		}
	}()

	// Start server
	if err := app.Listen(":" + cfg.ServerPort); err != nil {
		logger.Printf("Server stopped: %v", err)
	}
}
