// Package create реализует HTTP-обработчик регистрации нового клиента.
//
// Handler принимает JSON с данными клиента, валидирует их, вызывает
// бизнес-логику регистрации и возвращает ID созданной записи.
// Регистрация с ценой больше нуля атомарно пишет запись журнала.
package create

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/magabrotheeeer/iptv-console/internal/http/response"
	"github.com/magabrotheeeer/iptv-console/internal/lib/sl"
	"github.com/magabrotheeeer/iptv-console/internal/models"
	services "github.com/magabrotheeeer/iptv-console/internal/services/subscription"
	"github.com/magabrotheeeer/iptv-console/internal/storage/repository"
)

// Service описывает интерфейс бизнес-логики регистрации клиента.
type Service interface {
	Register(ctx context.Context, req models.DummyRegisterEntry) (int, error)
}

// Handler управляет HTTP-запросами на регистрацию клиентов.
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
// @Summary Зарегистрировать нового клиента
// @Description Создает клиента и, при цене больше нуля, запись о поступлении — атомарно.
// @Tags Customers
// @Accept  json
// @Produce  json
// @Param request body models.DummyRegisterEntry true "Данные нового клиента"
// @Success 200 {object} map[string]any "Успешная регистрация"
// @Failure 400 {object} response.ErrorResponse "Некорректный JSON"
// @Failure 409 {object} response.ErrorResponse "Имя клиента уже занято"
// @Failure 422 {object} response.ErrorResponse "Ошибка валидации"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера"
// @Security BearerAuth
// @Router /customers [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.customer.create"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var req models.DummyRegisterEntry
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Error("failed to decode request", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid request body"))
		return
	}
	log.Info("request body decoded", slog.Any("request", req))

	if err := h.validate.Struct(req); err != nil {
		log.Error("validation failed", sl.Err(err))
		w.WriteHeader(http.StatusUnprocessableEntity)
		render.JSON(w, r, response.ValidationError(err.(validator.ValidationErrors)))
		return
	}

	id, err := h.service.Register(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrValidation):
			log.Warn("invalid registration input", sl.Err(err))
			w.WriteHeader(http.StatusUnprocessableEntity)
			render.JSON(w, r, response.Error(err.Error()))
		case errors.Is(err, repository.ErrCustomerExists):
			log.Warn("duplicate username", slog.String("username", req.Username))
			w.WriteHeader(http.StatusConflict)
			render.JSON(w, r, response.Error("customer already exists"))
		default:
			log.Error("failed to register customer", sl.Err(err))
			w.WriteHeader(http.StatusInternalServerError)
			render.JSON(w, r, response.Error("could not register customer"))
		}
		return
	}

	log.Info("customer registered", slog.Int("id", id))
	render.JSON(w, r, response.OKWithData(map[string]any{
		"last_added_id": id,
	}))
}
