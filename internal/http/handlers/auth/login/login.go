// Package login реализует HTTP-обработчик входа администратора.
//
// Handler принимает JSON с парой логин/пароль, сверяет её с учётными
// данными из конфигурации и возвращает токен административной сессии.
package login

import (
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
	"github.com/magabrotheeeer/iptv-console/internal/services/session"
)

// Service описывает интерфейс сервиса административной сессии.
type Service interface {
	Login(username, password string) (string, error)
}

// Handler управляет HTTP-запросами на вход администратора.
type Handler struct {
	log      *slog.Logger
	sessions Service
	validate *validator.Validate
}

// New создает новый Handler с переданными логгером и сервисом сессий.
func New(log *slog.Logger, sessions Service) *Handler {
	return &Handler{
		log:      log,
		sessions: sessions,
		validate: validator.New(),
	}
}

// ServeHTTP godoc
// @Summary Вход администратора
// @Description Проверяет учётные данные и возвращает токен сессии.
// @Tags Auth
// @Accept  json
// @Produce  json
// @Param request body models.DummyLogin true "Учётные данные администратора"
// @Success 200 {object} map[string]any "Токен сессии"
// @Failure 400 {object} response.ErrorResponse "Некорректный JSON"
// @Failure 401 {object} response.ErrorResponse "Неверные учётные данные"
// @Failure 422 {object} response.ErrorResponse "Ошибка валидации"
// @Router /login [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.auth.login"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var req models.DummyLogin
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

	token, err := h.sessions.Login(req.Username, req.Password)
	if err != nil {
		if errors.Is(err, session.ErrInvalidCredentials) {
			log.Warn("invalid credentials", slog.String("username", req.Username))
			w.WriteHeader(http.StatusUnauthorized)
			render.JSON(w, r, response.Error("invalid credentials"))
			return
		}
		log.Error("failed to create session", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not create session"))
		return
	}

	log.Info("admin logged in")
	render.JSON(w, r, response.OKWithData(map[string]any{
		"token": token,
	}))
}
