package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	_ "github.com/orderdesk/order-service/docs"
	"github.com/orderdesk/order-service/internal/api"
	"github.com/orderdesk/order-service/internal/core/domain"
	"github.com/orderdesk/order-service/internal/core/service"
	"github.com/orderdesk/order-service/internal/infrastructure/config"
	mongodb "github.com/orderdesk/order-service/internal/infrastructure/db/mongo"
	redisdb "github.com/orderdesk/order-service/internal/infrastructure/db/redis"
	"github.com/orderdesk/order-service/internal/infrastructure/mail"
	"github.com/orderdesk/order-service/internal/infrastructure/queue"
	"github.com/orderdesk/order-service/internal/pkg/actionlog"
	"github.com/orderdesk/order-service/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

// @title           Order Management Service API
// @version         1.0
// @description     User registration, authentication, and order submission with asynchronous outcome notifications.
// @BasePath        /
// @securityDefinitions.apikey BearerAuth
// @in              header
// @name            Authorization
func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		bootLog := logger.New(logger.Options{})
		bootLog.Fatal().Err(err).Msg("configuration failed")
	}

	log := logger.New(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	// --- Durable store and notification guard ---
	client, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongodb connection failed")
	}
	defer func() {
		disconnectCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		_ = client.Disconnect(disconnectCtx)
	}()

	rdb, err := redisdb.Connect(ctx, redisdb.Config{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}
	defer rdb.Close()

	userRepo := mongodb.NewUserRepository(db)
	if err := userRepo.EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("user index creation failed")
	}
	orderRepo := mongodb.NewOrderRepository(db)

	// --- Core services ---
	actions := actionlog.NewRecorder(log)
	hasher := service.NewHasher(cfg.PasswordHasher)
	tokens := service.NewTokenService(cfg.JWTSecret, time.Duration(cfg.TokenTTLMin)*time.Minute)
	authSvc := service.NewAuthService(userRepo, hasher, tokens, actions)

	sender := mail.NewSMTPSender(mail.Config{
		Host:     cfg.SMTP.Host,
		Port:     cfg.SMTP.Port,
		Username: cfg.SMTP.Username,
		Password: cfg.SMTP.Password,
		From:     cfg.SMTP.From,
	}, log)
	dispatcher := queue.NewDispatcher(cfg.NotifyWorkers, cfg.NotifyQueueSize, sender, redisdb.NewNotifyGuard(rdb), log)
	dispatcher.Start(ctx)

	orderSvc := service.NewOrderService(orderRepo, dispatcher, actions, log)

	if cfg.Admin.Password != "" {
		seedAdmin(ctx, userRepo, hasher, cfg.Admin, log)
	}

	// --- HTTP server ---
	e := api.NewRouter(authSvc, orderSvc, db, rdb, log)

	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("starting server")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("shutdown failed")
	}
}

// seedAdmin ensures the configured admin account exists. The password goes
// through the hasher but deliberately not through the complexity policy,
// matching the provisioning path registrations never take.
func seedAdmin(ctx context.Context, users *mongodb.UserRepository, hasher service.PasswordHasher, cfg config.AdminConfig, log zerolog.Logger) {
	if _, err := users.FindByUsername(ctx, cfg.Username); err == nil {
		return
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		log.Error().Err(err).Msg("admin bootstrap lookup failed")
		return
	}

	hash, err := hasher.Hash(cfg.Password)
	if err != nil {
		log.Error().Err(err).Msg("admin bootstrap hash failed")
		return
	}

	_, err = users.Create(ctx, &domain.User{
		Username:     cfg.Username,
		Email:        cfg.Email,
		PasswordHash: hash,
		Role:         domain.RoleAdmin,
		CreatedAt:    time.Now().UTC(),
	})
	if err != nil && !errors.Is(err, domain.ErrUserExists) {
		log.Error().Err(err).Msg("admin bootstrap failed")
		return
	}
	log.Info().Str("username", cfg.Username).Msg("admin account ready")
}
