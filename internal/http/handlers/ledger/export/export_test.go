package export

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/magabrotheeeer/iptv-console/internal/models"
)

// MockService реализует интерфейс export.Service
type MockService struct {
	mock.Mock
}

func (m *MockService) ListLedger(ctx context.Context) ([]*models.LedgerEntry, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.LedgerEntry), args.Error(1)
}

func TestExportHandler(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	today := time.Date(2025, time.June, 1, 10, 0, 0, 0, time.UTC)

	t.Run("выгрузка CSV с заголовками файла", func(t *testing.T) {
		mockSvc := new(MockService)
		mockSvc.On("ListLedger", mock.Anything).Return([]*models.LedgerEntry{
			{ID: 1, Date: "2025-05-01", Kind: models.KindIncome, Description: "alta 1m basico: carlos", Amount: 10},
			{ID: 2, Date: "2025-05-10", Kind: models.KindExpense, Description: "panel, mensual", Amount: 40},
		}, nil)

		handler := New(logger, mockSvc)
		handler.now = func() time.Time { return today }

		req := httptest.NewRequest(http.MethodGet, "/api/v1/ledger/export", nil)
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "text/csv", w.Header().Get("Content-Type"))
		assert.Equal(t, "attachment; filename=report_2025-06-01.csv",
			w.Header().Get("Content-Disposition"))

		expected := "date,kind,description,amount\n" +
			"2025-05-01,ingreso,alta 1m basico: carlos,10\n" +
			"2025-05-10,egreso,\"panel, mensual\",40\n"
		assert.Equal(t, expected, w.Body.String())
		mockSvc.AssertExpectations(t)
	})

	t.Run("пустой журнал даёт только заголовок", func(t *testing.T) {
		mockSvc := new(MockService)
		mockSvc.On("ListLedger", mock.Anything).Return([]*models.LedgerEntry{}, nil)

		handler := New(logger, mockSvc)
		handler.now = func() time.Time { return today }

		req := httptest.NewRequest(http.MethodGet, "/api/v1/ledger/export", nil)
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "date,kind,description,amount\n", w.Body.String())
	})

	t.Run("ошибка хранилища", func(t *testing.T) {
		mockSvc := new(MockService)
		mockSvc.On("ListLedger", mock.Anything).Return(nil, errors.New("db down"))

		handler := New(logger, mockSvc)

		req := httptest.NewRequest(http.MethodGet, "/api/v1/ledger/export", nil)
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.JSONEq(t, `{"status":"Error","error":"could not export ledger"}`, w.Body.String())
	})
}
