package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rajeev8964/thepersonalbuddy/config"
	"github.com/rajeev8964/thepersonalbuddy/internal/database"
	"github.com/rajeev8964/thepersonalbuddy/internal/logger"
	"github.com/rajeev8964/thepersonalbuddy/internal/router"
	"github.com/rajeev8964/thepersonalbuddy/pkg/cloudinary"
	"github.com/rajeev8964/thepersonalbuddy/pkg/mailer"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.Setup("production").Error("config", logger.Err(err))
		os.Exit(1)
	}
	log := logger.Setup(cfg.Server.Env)

	db, err := database.NewDB(&cfg.Database)
	if err != nil {
		log.Error("database", logger.Err(err))
		os.Exit(1)
	}
	if err := database.AutoMigrate(db); err != nil {
		log.Error("migrate", logger.Err(err))
		os.Exit(1)
	}
	if err := database.SeedAdmin(db, &cfg.AdminSeed, log); err != nil {
		log.Error("seed admin", logger.Err(err))
		os.Exit(1)
	}

	var mail mailer.Mailer
	if cfg.Mail.ResendAPIKey != "" {
		mail = mailer.NewResendMailer(cfg.Mail.ResendAPIKey)
	} else {
		log.Warn("RESEND_API_KEY not set, outbound mail will only be logged")
		mail = &mailer.LogMailer{Log: log}
	}

	var cloud cloudinary.Client
	if cfg.Cloudinary.CloudName != "" {
		cloud, err = cloudinary.NewClientFromParams(cfg.Cloudinary.CloudName, cfg.Cloudinary.APIKey, cfg.Cloudinary.APISecret)
		if err != nil {
			log.Error("cloudinary", logger.Err(err))
			os.Exit(1)
		}
	} else {
		log.Warn("cloudinary not configured, picture uploads disabled")
	}

	engine, notifier := router.Setup(cfg, db, mail, cloud, log)
	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      engine,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}
	go func() {
		log.Info("server listening", "port", cfg.Server.Port, "env", cfg.Server.Env)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("listen", logger.Err(err))
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("server shutdown", logger.Err(err))
	}
	// Let queued notification mail finish before the process exits.
	notifier.Flush()
	log.Info("server stopped")
}
