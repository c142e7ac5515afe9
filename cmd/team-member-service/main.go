// Package main запускает сервис команд и участников со страницей MemberList.
package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"team-member-service/internal/auth"
	"team-member-service/internal/cache"
	"team-member-service/internal/config"
	httpapi "team-member-service/internal/http"
	"team-member-service/internal/logger"
	"team-member-service/internal/repository"
	"team-member-service/internal/service"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	appLogger := logger.New(cfg.Logging.Level)

	db, err := repository.NewPostgres(ctx, cfg.Postgres)
	if err != nil {
		log.Fatalf("failed to init postgres: %v", err)
	}
	defer db.Close()

	migrateCtx, cancelMigrate := context.WithTimeout(ctx, cfg.Postgres.MigrateTimeout)
	err = db.Migrate(migrateCtx)
	cancelMigrate()
	if err != nil {
		log.Fatalf("failed to apply migrations: %v", err)
	}

	// Без redis.addr проверки членства идут прямо в БД.
	var membership cache.Membership = cache.Nop{}
	if cfg.Redis.Addr != "" {
		redisCache, err := cache.NewRedisMembership(ctx, cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB, cfg.Redis.MemberTTL, appLogger)
		if err != nil {
			log.Fatalf("failed to init redis: %v", err)
		}
		defer redisCache.Close()
		membership = redisCache
	}

	teamRepo := repository.NewTeamRepo(db)
	userRepo := repository.NewUserRepo(db)
	inviteRepo := repository.NewInviteRepo(db)
	txManager := repository.NewTransactionManager(db)

	tokens := auth.NewTokens(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)

	teamService := service.NewTeamService(teamRepo, membership, appLogger)
	inviteService := service.NewInviteService(inviteRepo, teamRepo, teamService, txManager, appLogger)
	userService := service.NewUserService(userRepo, tokens)

	handler, err := httpapi.NewHandler(teamService, inviteService, userService, appLogger, httpapi.Options{
		RequestTimeout: cfg.HTTP.RequestTimeout,
		CORSOrigins:    cfg.HTTP.CORSOrigins,
		FetchWait:      cfg.View.FetchWait,
	})
	if err != nil {
		log.Fatalf("failed to init http handler: %v", err)
	}

	server := &http.Server{
		Addr:              cfg.ServerAddr(),
		Handler:           handler.Router(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		appLogger.Info("starting http server", slog.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			appLogger.Error("server error", slog.Any("err", err))
			cancel()
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case <-stop:
	case <-ctx.Done():
	}
	appLogger.Info("shutting down server")

	ctxShutdown, cancelShutdown := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancelShutdown()

	if err := server.Shutdown(ctxShutdown); err != nil {
		appLogger.Error("server shutdown error", slog.Any("err", err))
	}

	appLogger.Info("server stopped")
}
