// Package list реализует HTTP-обработчик финансового отчёта:
// записи журнала по убыванию даты, итоги поступлений и расходов,
// чистый баланс.
package list

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/iptv-console/internal/http/response"
	"github.com/magabrotheeeer/iptv-console/internal/lib/sl"
	"github.com/magabrotheeeer/iptv-console/internal/models"
	"github.com/magabrotheeeer/iptv-console/internal/services/ledger"
)

// Service описывает интерфейс получения записей журнала.
type Service interface {
	ListLedger(ctx context.Context) ([]*models.LedgerEntry, error)
}

// Handler управляет HTTP-запросами на финансовый отчёт.
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
// @Summary Финансовый отчёт
// @Description Возвращает журнал по убыванию даты с итогами и чистым балансом.
// @Tags Ledger
// @Produce  json
// @Success 200 {object} map[string]any "Журнал и итоги"
// @Failure 401 {object} response.ErrorResponse "Нет сессии"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера"
// @Security BearerAuth
// @Router /ledger [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.ledger.list"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	entries, err := h.service.ListLedger(r.Context())
	if err != nil {
		log.Error("failed to list ledger", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not list ledger"))
		return
	}

	income, expense := ledger.Totals(entries)

	log.Info("ledger listed", slog.Int("count", len(entries)))
	render.JSON(w, r, response.OKWithData(map[string]any{
		"entries":       ledger.SortedByDateDesc(entries),
		"income_total":  income,
		"expense_total": expense,
		"net_balance":   income - expense,
	}))
}
