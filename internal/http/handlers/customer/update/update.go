// Package update реализует HTTP-обработчик правки контакта и заметок клиента.
// Тариф и дата окончания этим путём не изменяются.
package update

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/iptv-console/internal/http/response"
	"github.com/magabrotheeeer/iptv-console/internal/lib/sl"
	"github.com/magabrotheeeer/iptv-console/internal/models"
	"github.com/magabrotheeeer/iptv-console/internal/storage/repository"
)

// Service описывает интерфейс бизнес-логики правки контактов.
type Service interface {
	UpdateContactNotes(ctx context.Context, username string, req models.DummyContactUpdate) error
}

// Handler управляет HTTP-запросами на правку контакта и заметок.
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
// @Summary Обновить контакт и заметки клиента
// @Description Меняет только номер WhatsApp и заметки, тариф и дату окончания не трогает.
// @Tags Customers
// @Accept  json
// @Produce  json
// @Param username path string true "Имя клиента"
// @Param request body models.DummyContactUpdate true "Новые контакт и заметки"
// @Success 200 {object} response.Response "Успешное обновление"
// @Failure 400 {object} response.ErrorResponse "Некорректный JSON"
// @Failure 404 {object} response.ErrorResponse "Клиент не найден"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера"
// @Security BearerAuth
// @Router /customers/{username} [put]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.customer.update"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	username := chi.URLParam(r, "username")

	var req models.DummyContactUpdate
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Error("failed to decode request", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid request body"))
		return
	}

	if err := h.service.UpdateContactNotes(r.Context(), username, req); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			log.Warn("customer not found", slog.String("username", username))
			w.WriteHeader(http.StatusNotFound)
			render.JSON(w, r, response.Error("customer not found"))
			return
		}
		log.Error("failed to update customer contact", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not update customer"))
		return
	}

	log.Info("customer contact updated", slog.String("username", username))
	render.JSON(w, r, response.OK())
}
