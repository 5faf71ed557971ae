// Package iptvconsole собирает приложение консоли IPTV-реселлера:
// хранилище, миграции, кеш, сервисы и HTTP-сервер.
package iptvconsole

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi"

	"github.com/magabrotheeeer/iptv-console/internal/cache"
	"github.com/magabrotheeeer/iptv-console/internal/config"
	"github.com/magabrotheeeer/iptv-console/internal/lib/jwt"
	"github.com/magabrotheeeer/iptv-console/internal/migrations"
	sessionservice "github.com/magabrotheeeer/iptv-console/internal/services/session"
	subservice "github.com/magabrotheeeer/iptv-console/internal/services/subscription"
	"github.com/magabrotheeeer/iptv-console/internal/storage/repository"
)

// App держит HTTP-сервер и подключения, которые нужно закрыть при остановке.
type App struct {
	server *http.Server
	logger *slog.Logger
	db     *repository.Storage
}

// New создает приложение: подключается к базе, накатывает миграции,
// поднимает кеш и собирает маршрутизатор.
func New(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	db, err := repository.New(cfg.DatabaseURL)
	if err != nil {
		return nil, err
	}
	if err = migrations.Run(db.DB, "./migrations"); err != nil {
		return nil, err
	}

	cacheRedis, err := cache.InitServer(ctx, cfg.RedisConnection)
	if err != nil {
		return nil, err
	}

	subscriptionService := subservice.NewSubscriptionService(db, cacheRedis, logger)
	sessionService := sessionservice.New(cfg.AdminUser, cfg.AdminPassword,
		jwt.NewMaker(cfg.SecretKey, cfg.SessionTTL))

	router := chi.NewRouter()
	RegisterRoutes(router, logger, subscriptionService, sessionService)

	srv := &http.Server{
		Addr:         cfg.AddressHTTP,
		Handler:      router,
		ReadTimeout:  cfg.TimeoutHTTP,
		WriteTimeout: cfg.TimeoutHTTP,
		IdleTimeout:  cfg.IdleTimeout,
	}

	return &App{
		server: srv,
		logger: logger,
		db:     db,
	}, nil
}

// Run запускает HTTP-сервер и останавливает его корректно при отмене ctx.
func (a *App) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		a.logger.Info("HTTP server starting on", slog.String("address", a.server.Addr))
		err := a.server.ListenAndServe()
		if errors.Is(err, http.ErrServerClosed) {
			errCh <- nil
		} else {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		timeoutCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		a.logger.Info("shutting down HTTP server gracefully")
		err := a.server.Shutdown(timeoutCtx)
		_ = a.db.DB.Close()
		return err
	}
}
