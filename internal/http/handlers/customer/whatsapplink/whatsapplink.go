// Package whatsapplink реализует HTTP-обработчик выдачи ссылки wa.me
// для напоминания клиенту о продлении. Ссылка строится локально,
// никакие сообщения не отправляются.
package whatsapplink

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
	"github.com/magabrotheeeer/iptv-console/internal/lib/whatsapp"
	"github.com/magabrotheeeer/iptv-console/internal/models"
	"github.com/magabrotheeeer/iptv-console/internal/storage/repository"
)

// Service описывает интерфейс получения клиента.
type Service interface {
	GetCustomer(ctx context.Context, username string) (*models.Customer, error)
}

// Handler управляет HTTP-запросами на построение ссылки напоминания.
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
// @Summary Ссылка WhatsApp для напоминания
// @Description Строит deep-ссылку wa.me с текстом напоминания о продлении.
// @Tags Customers
// @Produce  json
// @Param username path string true "Имя клиента"
// @Success 200 {object} map[string]any "Ссылка wa.me"
// @Failure 404 {object} response.ErrorResponse "Клиент не найден"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера"
// @Security BearerAuth
// @Router /customers/{username}/whatsapp [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.customer.whatsapplink"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	username := chi.URLParam(r, "username")

	customer, err := h.service.GetCustomer(r.Context(), username)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			log.Warn("customer not found", slog.String("username", username))
			w.WriteHeader(http.StatusNotFound)
			render.JSON(w, r, response.Error("customer not found"))
			return
		}
		log.Error("failed to get customer", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not get customer"))
		return
	}

	link := whatsapp.Link(customer.ContactNumber, customer.Username, customer.ExpirationToken)

	render.JSON(w, r, response.OKWithData(map[string]any{
		"link": link,
	}))
}
