package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	apiHttp "github.com/job-finder/backend/internal/api/http"
	"github.com/job-finder/backend/internal/cache"
	"github.com/job-finder/backend/internal/config"
	"github.com/job-finder/backend/internal/db"
	"github.com/job-finder/backend/internal/queue/asynqserver"
	queueClient "github.com/job-finder/backend/internal/queue/client"
	"github.com/job-finder/backend/internal/repository"
	"github.com/job-finder/backend/internal/server"
	"github.com/job-finder/backend/internal/service"
	"github.com/job-finder/backend/internal/worker"
	"github.com/job-finder/backend/pkg/auth"
	"github.com/job-finder/backend/pkg/email/smtp"
	"github.com/job-finder/backend/pkg/hash"
	"github.com/job-finder/backend/pkg/logger"
	"github.com/job-finder/backend/pkg/otp"
)

func main() {
	// Init cfg from environment variables
	cfg := config.MustLoad()

	appLogger, err := logger.Setup(cfg.Env)
	if err != nil {
		panic(err)
	}
	defer appLogger.Sync() //nolint:errcheck

	appLogger.Info("starting job finder api", zap.String("env", cfg.Env))
	appLogger.Debug("debug messages are enabled")

	// Init database
	dbMySQL, err := db.New(cfg.Database)
	if err != nil {
		appLogger.Error("mysql connect problem", zap.Error(err))
		os.Exit(1)
	}
	defer func() {
		if err := dbMySQL.Close(); err != nil {
			appLogger.Error("error when closing mysql", zap.Error(err))
		}
	}()
	appLogger.Info("mysql connection done")

	// Init redis (job cache + task queue backend)
	redisClient, err := cache.NewRedis(cfg.Cache)
	if err != nil {
		appLogger.Error("redis connect problem", zap.Error(err))
		os.Exit(1)
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			appLogger.Error("error when closing redis", zap.Error(err))
		}
	}()
	appLogger.Info("redis connection done")

	hasher := hash.NewBcryptHasher(cfg.Auth.PasswordCost)

	emailSender, err := smtp.NewSMTPSender(cfg.SMTP.From, cfg.SMTP.Pass, cfg.SMTP.Host, cfg.SMTP.Port)
	if err != nil {
		appLogger.Error("smtp sender creation failed", zap.Error(err))
		return
	}

	tokenManager, err := auth.NewManager(cfg.Auth.JWT)
	if err != nil {
		appLogger.Error("auth manager creation err", zap.Error(err))
		return
	}

	otpGenerator := otp.NewGOTPGenerator()

	// Services, Repos & API Handlers
	repos := repository.NewRepositories(dbMySQL)
	services := service.NewServices(service.Deps{
		Config:       cfg,
		Hasher:       hasher,
		TokenManager: tokenManager,
		OtpGenerator: otpGenerator,
		Repos:        repos,
		JobCache:     redisClient,
	})
	handlers := apiHttp.NewHandlers(services, tokenManager, cfg)

	// Background workers over asynq
	workers := worker.NewWorkers(worker.Deps{
		EmailSender: emailSender,
		Config:      cfg,
	})
	queueSrv, queueMux := asynqserver.New(cfg.Cache, workers)
	go func() {
		if err := queueSrv.Run(queueMux); err != nil {
			appLogger.Error("error occurred while running queue server", zap.Error(err))
		}
	}()

	restoreClient := queueClient.SetClient(queueClient.New(cfg.Cache))
	defer restoreClient()

	// HTTP Server
	srv := server.NewServer(cfg, handlers.Init(cfg))
	go func() {
		if err := srv.Run(); !errors.Is(err, http.ErrServerClosed) {
			appLogger.Error("error occurred while running http server", zap.Error(err))
		}
	}()
	appLogger.Info("server started")

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM, syscall.SIGINT)

	<-quit

	const timeout = 5 * time.Second

	ctx, shutdown := context.WithTimeout(context.Background(), timeout)
	defer shutdown()

	if err := srv.Stop(ctx); err != nil {
		appLogger.Error("failed to stop server", zap.Error(err))
	}

	queueSrv.Shutdown()

	appLogger.Info("app stopped")
}
