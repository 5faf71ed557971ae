// Package export реализует HTTP-обработчик выгрузки финансового
// журнала в CSV-файл.
package export

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

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

// Handler управляет HTTP-запросами на выгрузку журнала.
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
// @Summary Выгрузить журнал в CSV
// @Description Отдает все записи журнала файлом report_<дата>.csv.
// @Tags Ledger
// @Produce  text/csv
// @Success 200 {string} string "CSV с записями журнала"
// @Failure 401 {object} response.ErrorResponse "Нет сессии"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера"
// @Security BearerAuth
// @Router /ledger/export [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.ledger.export"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	entries, err := h.service.ListLedger(r.Context())
	if err != nil {
		log.Error("failed to list ledger", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not export ledger"))
		return
	}

	data, err := ledger.ExportCSV(entries)
	if err != nil {
		log.Error("failed to encode csv", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not export ledger"))
		return
	}

	filename := ledger.ExportFileName(h.now().Format("2006-01-02"))

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(data); err != nil {
		log.Error("failed to write csv response", sl.Err(err))
		return
	}

	log.Info("ledger exported", slog.Int("count", len(entries)), slog.String("filename", filename))
}
