// Package list реализует HTTP-обработчик вывода и поиска клиентов.
//
// Handler принимает необязательный параметр q (подстрока имени без учёта
// регистра), получает клиентов через сервис и аннотирует каждую строку
// уровнем срочности продления для подсветки в интерфейсе.
package list

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/iptv-console/internal/http/response"
	"github.com/magabrotheeeer/iptv-console/internal/lib/expiry"
	"github.com/magabrotheeeer/iptv-console/internal/lib/sl"
	"github.com/magabrotheeeer/iptv-console/internal/models"
)

// Service описывает интерфейс бизнес-логики поиска клиентов.
type Service interface {
	Search(ctx context.Context, query string) ([]*models.Customer, error)
}

// Row — строка списка клиентов с уровнем срочности для подсветки.
type Row struct {
	Username        string      `json:"username"`
	ServicePlan     string      `json:"service_plan"`
	ExpirationToken string      `json:"expiration_token"`
	Tier            expiry.Tier `json:"tier"`
	ContactNumber   string      `json:"contact_number"`
	Notes           string      `json:"notes"`
}

// Handler управляет HTTP-запросами на вывод списка клиентов.
type Handler struct {
	log     *slog.Logger
	service Service
	now     func() time.Time
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
		now:     time.Now,
	}
}

// ServeHTTP godoc
// @Summary Список клиентов
// @Description Возвращает клиентов, отфильтрованных по подстроке имени, с уровнем срочности продления.
// @Tags Customers
// @Produce  json
// @Param q query string false "Подстрока имени клиента"
// @Success 200 {object} map[string]any "Список клиентов"
// @Failure 401 {object} response.ErrorResponse "Нет сессии"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера"
// @Security BearerAuth
// @Router /customers [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.customer.list"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	query := r.URL.Query().Get("q")

	customers, err := h.service.Search(r.Context(), query)
	if err != nil {
		log.Error("failed to list customers", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not list customers"))
		return
	}

	today := h.now()
	rows := make([]Row, 0, len(customers))
	for _, c := range customers {
		rows = append(rows, Row{
			Username:        c.Username,
			ServicePlan:     c.ServicePlan,
			ExpirationToken: c.ExpirationToken,
			Tier:            expiry.Classify(c.ExpirationToken, today),
			ContactNumber:   c.ContactNumber,
			Notes:           c.Notes,
		})
	}

	log.Info("customers listed", slog.Int("count", len(rows)))
	render.JSON(w, r, response.OKWithData(map[string]any{
		"customers": rows,
	}))
}
