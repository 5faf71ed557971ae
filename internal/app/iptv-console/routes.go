// Package iptvconsole предоставляет маршруты для основного приложения.
package iptvconsole

import (
	"log/slog"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/magabrotheeeer/iptv-console/internal/http/handlers/auth/login"
	"github.com/magabrotheeeer/iptv-console/internal/http/handlers/customer/create"
	"github.com/magabrotheeeer/iptv-console/internal/http/handlers/customer/list"
	"github.com/magabrotheeeer/iptv-console/internal/http/handlers/customer/remove"
	"github.com/magabrotheeeer/iptv-console/internal/http/handlers/customer/renew"
	"github.com/magabrotheeeer/iptv-console/internal/http/handlers/customer/update"
	"github.com/magabrotheeeer/iptv-console/internal/http/handlers/customer/whatsapplink"
	"github.com/magabrotheeeer/iptv-console/internal/http/handlers/ledger/expense"
	"github.com/magabrotheeeer/iptv-console/internal/http/handlers/ledger/export"
	ledgerlist "github.com/magabrotheeeer/iptv-console/internal/http/handlers/ledger/list"
	"github.com/magabrotheeeer/iptv-console/internal/http/middlewarectx"
	sessionservice "github.com/magabrotheeeer/iptv-console/internal/services/session"
	subservice "github.com/magabrotheeeer/iptv-console/internal/services/subscription"
)

// RegisterRoutes регистрирует все маршруты приложения.
func RegisterRoutes(r chi.Router, logger *slog.Logger, subscriptionService *subservice.SubscriptionService, sessionService *sessionservice.Service) {
	// Глобальные middleware
	r.Use(
		middleware.RequestID,
		middleware.Logger,
		middleware.Recoverer,
		middleware.URLFormat,
	)

	r.Route("/api/v1", func(r chi.Router) {
		// Открытая конечная точка входа
		r.Post("/login", login.New(logger, sessionService).ServeHTTP)

		// Группа под административной сессией
		r.Group(func(r chi.Router) {
			r.Use(middlewarectx.SessionMiddleware(sessionService, logger))
			r.Use(middlewarectx.RateLimitMiddleware(logger))
			r.Get("/customers", list.New(logger, subscriptionService).ServeHTTP)
			r.Post("/customers", create.New(logger, subscriptionService).ServeHTTP)
			r.Post("/customers/{username}/renew", renew.New(logger, subscriptionService).ServeHTTP)
			r.Put("/customers/{username}", update.New(logger, subscriptionService).ServeHTTP)
			r.Delete("/customers/{username}", remove.New(logger, subscriptionService).ServeHTTP)
			r.Get("/customers/{username}/whatsapp", whatsapplink.New(logger, subscriptionService).ServeHTTP)
			r.Get("/ledger", ledgerlist.New(logger, subscriptionService).ServeHTTP)
			r.Post("/ledger/expense", expense.New(logger, subscriptionService).ServeHTTP)
			r.Get("/ledger/export", export.New(logger, subscriptionService).ServeHTTP)
		})
	})

	r.Handle("/metrics", promhttp.Handler())
	// Swagger docs endpoint
	r.Get("/docs/*", httpSwagger.WrapHandler)
}
