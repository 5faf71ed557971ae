// Package renew реализует HTTP-обработчик продления подписки клиента.
//
// Handler принимает имя клиента из URL и JSON с тарифом, сроком и суммой,
// вызывает бизнес-логику продления. Новая дата окончания считается от
// сегодняшнего дня, запись журнала добавляется всегда, даже при нулевой сумме.
package renew

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/magabrotheeeer/iptv-console/internal/http/response"
	"github.com/magabrotheeeer/iptv-console/internal/lib/sl"
	"github.com/magabrotheeeer/iptv-console/internal/models"
	services "github.com/magabrotheeeer/iptv-console/internal/services/subscription"
	"github.com/magabrotheeeer/iptv-console/internal/storage/repository"
)

// Service описывает интерфейс бизнес-логики продления подписки.
type Service interface {
	Renew(ctx context.Context, username string, req models.DummyRenewEntry) error
}

// Handler управляет HTTP-запросами на продление подписки.
type Handler struct {
	log      *slog.Logger
	service  Service
	validate *validator.Validate
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:      log,
		service:  service,
		validate: validator.New(),
	}
}

// ServeHTTP godoc
// @Summary Продлить подписку клиента
// @Description Обновляет тариф и дату окончания и атомарно добавляет запись о поступлении.
// @Tags Customers
// @Accept  json
// @Produce  json
// @Param username path string true "Имя клиента"
// @Param request body models.DummyRenewEntry true "Параметры продления"
// @Success 200 {object} response.Response "Успешное продление"
// @Failure 400 {object} response.ErrorResponse "Некорректный JSON"
// @Failure 404 {object} response.ErrorResponse "Клиент не найден"
// @Failure 422 {object} response.ErrorResponse "Ошибка валидации"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера"
// @Security BearerAuth
// @Router /customers/{username}/renew [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.customer.renew"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	username := chi.URLParam(r, "username")

	var req models.DummyRenewEntry
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Error("failed to decode request", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid request body"))
		return
	}

	if err := h.validate.Struct(req); err != nil {
		log.Error("validation failed", sl.Err(err))
		w.WriteHeader(http.StatusUnprocessableEntity)
		render.JSON(w, r, response.ValidationError(err.(validator.ValidationErrors)))
		return
	}

	if err := h.service.Renew(r.Context(), username, req); err != nil {
		switch {
		case errors.Is(err, services.ErrValidation):
			log.Warn("invalid renewal input", sl.Err(err))
			w.WriteHeader(http.StatusUnprocessableEntity)
			render.JSON(w, r, response.Error(err.Error()))
		case errors.Is(err, repository.ErrNotFound):
			log.Warn("customer not found", slog.String("username", username))
			w.WriteHeader(http.StatusNotFound)
			render.JSON(w, r, response.Error("customer not found"))
		default:
			log.Error("failed to renew subscription", sl.Err(err))
			w.WriteHeader(http.StatusInternalServerError)
			render.JSON(w, r, response.Error("could not renew subscription"))
		}
		return
	}

	log.Info("subscription renewed", slog.String("username", username))
	render.JSON(w, r, response.OK())
}
