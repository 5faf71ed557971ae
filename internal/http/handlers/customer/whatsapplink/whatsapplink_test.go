package whatsapplink

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/go-chi/chi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/magabrotheeeer/iptv-console/internal/models"
	"github.com/magabrotheeeer/iptv-console/internal/storage/repository"
)

// MockService реализует интерфейс whatsapplink.Service
type MockService struct {
	mock.Mock
}

func (m *MockService) GetCustomer(ctx context.Context, username string) (*models.Customer, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Customer), args.Error(1)
}

func TestWhatsappLinkHandler(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))

	t.Run("успешное построение ссылки", func(t *testing.T) {
		mockSvc := new(MockService)
		mockSvc.On("GetCustomer", mock.Anything, "carlos").Return(&models.Customer{
			ID:              1,
			Username:        "carlos",
			ServicePlan:     models.PlanBasico,
			ExpirationToken: "05-jun",
			ContactNumber:   "+34 600 111 222",
		}, nil)

		handler := New(logger, mockSvc)
		router := chi.NewRouter()
		router.Get("/api/v1/customers/{username}/whatsapp", handler.ServeHTTP)

		req := httptest.NewRequest(http.MethodGet, "/api/v1/customers/carlos/whatsapp", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var resp struct {
			Status string `json:"status"`
			Data   struct {
				Link string `json:"link"`
			} `json:"data"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "OK", resp.Status)
		assert.True(t, strings.HasPrefix(resp.Data.Link, "https://wa.me/34600111222?text="))
		assert.Contains(t, resp.Data.Link, "carlos")
		assert.Contains(t, resp.Data.Link, "05-jun")
		mockSvc.AssertExpectations(t)
	})

	t.Run("клиент не найден", func(t *testing.T) {
		mockSvc := new(MockService)
		mockSvc.On("GetCustomer", mock.Anything, "ghost").Return(nil, repository.ErrNotFound)

		handler := New(logger, mockSvc)
		router := chi.NewRouter()
		router.Get("/api/v1/customers/{username}/whatsapp", handler.ServeHTTP)

		req := httptest.NewRequest(http.MethodGet, "/api/v1/customers/ghost/whatsapp", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.JSONEq(t, `{"status":"Error","error":"customer not found"}`, w.Body.String())
		mockSvc.AssertExpectations(t)
	})
}
