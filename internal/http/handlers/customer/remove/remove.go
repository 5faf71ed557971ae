// Package remove реализует HTTP-обработчик удаления клиента.
// Записи журнала, упоминающие клиента, при удалении сохраняются.
package remove

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/iptv-console/internal/http/response"
	"github.com/magabrotheeeer/iptv-console/internal/lib/sl"
	"github.com/magabrotheeeer/iptv-console/internal/storage/repository"
)

// Service описывает интерфейс бизнес-логики удаления клиента.
type Service interface {
	Delete(ctx context.Context, username string) error
}

// Handler управляет HTTP-запросами на удаление клиента.
type Handler struct {
	log     *slog.Logger
	service Service
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Удалить клиента
// @Description Удаляет клиента; история журнала, упоминающая его, остаётся.
// @Tags Customers
// @Produce  json
// @Param username path string true "Имя клиента"
// @Success 200 {object} response.Response "Успешное удаление"
// @Failure 404 {object} response.ErrorResponse "Клиент не найден"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера"
// @Security BearerAuth
// @Router /customers/{username} [delete]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.customer.remove"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	username := chi.URLParam(r, "username")

	if err := h.service.Delete(r.Context(), username); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			log.Warn("customer not found", slog.String("username", username))
			w.WriteHeader(http.StatusNotFound)
			render.JSON(w, r, response.Error("customer not found"))
			return
		}
		log.Error("failed to delete customer", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not delete customer"))
		return
	}

	log.Info("customer deleted", slog.String("username", username))
	render.JSON(w, r, response.OK())
}
