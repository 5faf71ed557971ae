// Package middlewarectx содержит HTTP middleware консоли: проверку токена
// административной сессии и ограничение частоты запросов.
//
// SessionMiddleware проверяет наличие и валидность токена в заголовке
// Authorization и в случае успеха добавляет имя администратора в контекст
// запроса. При ошибке возвращает HTTP 401 Unauthorized.
package middlewarectx

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/iptv-console/internal/http/response"
	"github.com/magabrotheeeer/iptv-console/internal/lib/sl"
)

// Key тип для ключей контекста HTTP-запроса.
type Key string

// Admin — ключ для имени администратора в контексте.
const Admin Key = "admin"

// SessionValidator описывает интерфейс сервиса для валидации токена сессии.
type SessionValidator interface {
	Validate(token string) (string, error)
}

// SessionMiddleware возвращает HTTP middleware, который проверяет токен
// сессии в заголовке Authorization.
//
// Если токен валиден, добавляет имя администратора в контекст запроса,
// иначе возвращает ошибку с HTTP статусом 401 Unauthorized.
func SessionMiddleware(sessions SessionValidator, log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			const op = "middlewarectx.SessionMiddleware"
			authHeader := r.Header.Get("Authorization")

			log := log.With(
				slog.String("op", op),
				slog.String("request_id", middleware.GetReqID(r.Context())),
			)

			if !strings.HasPrefix(authHeader, "Bearer ") {
				log.Error("missing or invalid authorization header")
				w.WriteHeader(http.StatusUnauthorized)
				render.JSON(w, r, response.Error("missing or invalid authorization header"))
				return
			}
			tokenStr := strings.TrimPrefix(authHeader, "Bearer ")

			username, err := sessions.Validate(tokenStr)
			if err != nil {
				log.Error("invalid or expired session token", sl.Err(err))
				w.WriteHeader(http.StatusUnauthorized)
				render.JSON(w, r, response.Error("invalid or expired session token"))
				return
			}
			ctx := context.WithValue(r.Context(), Admin, username)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
