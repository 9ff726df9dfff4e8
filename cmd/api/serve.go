package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/shaimaHamila/Tracking-system-sub000/internal/api/handlers"
	"github.com/shaimaHamila/Tracking-system-sub000/internal/api/middleware"
	"github.com/shaimaHamila/Tracking-system-sub000/internal/api/routes"
	"github.com/shaimaHamila/Tracking-system-sub000/internal/application"
	"github.com/shaimaHamila/Tracking-system-sub000/internal/authz"
	"github.com/shaimaHamila/Tracking-system-sub000/internal/config"
	"github.com/shaimaHamila/Tracking-system-sub000/internal/config/db"
	"github.com/shaimaHamila/Tracking-system-sub000/internal/cron"
	"github.com/shaimaHamila/Tracking-system-sub000/internal/logger"
	"github.com/shaimaHamila/Tracking-system-sub000/internal/realtime"
	"github.com/shaimaHamila/Tracking-system-sub000/internal/repository"
	"github.com/shaimaHamila/Tracking-system-sub000/pkg/mailer"
	"github.com/shaimaHamila/Tracking-system-sub000/pkg/markdown"
	"github.com/shaimaHamila/Tracking-system-sub000/pkg/storage"
	"github.com/spf13/cobra"
)

func newServeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		RunE:  runServe,
	}
}

func runServe(cmd *cobra.Command, args []string) error {
	config.LoadConfig()
	log := logger.Init(config.LogLevel, config.LogFormat)
	middleware.Init()
	gin.SetMode(config.GinMode)

	if err := db.Init(config.DSN()); err != nil {
		return err
	}
	if err := migrate(db.DB); err != nil {
		return err
	}

	enforcer, err := authz.New()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	hub := realtime.NewHub()
	var emitter realtime.Emitter = hub
	if config.RedisAddr != "" {
		rdb := redis.NewClient(&redis.Options{
			Addr:     config.RedisAddr,
			Password: config.RedisPassword,
			DB:       config.RedisDB,
		})
		defer rdb.Close()

		broker := realtime.NewRedisBroker(hub, rdb)
		go func() {
			if err := broker.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
				slog.Error("realtime broker stopped", "error", err)
			}
		}()
		emitter = broker
		slog.Info("realtime relay enabled", "redis", config.RedisAddr)
	}

	store, err := storage.New(ctx, storage.Config{
		Endpoint:  config.MinioEndpoint,
		AccessKey: config.MinioAccessKey,
		SecretKey: config.MinioSecretKey,
		Bucket:    config.MinioBucket,
		UseSSL:    config.MinioUseSSL,
	})
	if err != nil {
		return fmt.Errorf("init object storage: %w", err)
	}

	m := mailer.New(mailer.SMTPConfig{
		Host:     config.SMTPHost,
		Port:     config.SMTPPort,
		Username: config.SMTPUsername,
		Password: config.SMTPPassword,
		From:     config.SMTPFrom,
	})

	repos := repository.NewRepositories(db.DB)
	services := application.New(repos, emitter, m, markdown.NewRenderer(), store)

	cron.StartCleanupTask(ctx, []cron.Task{
		{Name: "audit_logs", Days: config.AuditRetentionDays, Run: services.Audit.CleanupOldLogs},
		{Name: "read_notifications", Days: config.NotificationRetentionDays, Run: services.Notification.CleanupRead},
	})

	router := routes.NewRouter(log, config.CORSOrigins, handlers.New(services, hub), middleware.NewAuth(enforcer, repos.User))

	srv := &http.Server{
		Addr:              ":" + config.ServerPort,
		Handler:           router,
		ReadHeaderTimeout: 15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("starting API server", "addr", srv.Addr, "mode", config.GinMode)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("start server: %w", err)
	case <-ctx.Done():
	}

	slog.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
