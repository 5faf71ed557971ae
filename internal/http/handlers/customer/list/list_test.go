package list

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

// MockService реализует интерфейс list.Service
type MockService struct {
	mock.Mock
}

func (m *MockService) Search(ctx context.Context, query string) ([]*models.Customer, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Customer), args.Error(1)
}

func TestListHandler(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	// 1 июня 2025: "02-jun" — критично, "05-jun" — предупреждение, "20-jun" — ок.
	today := time.Date(2025, time.June, 1, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name           string
		target         string
		setupMock      func(*MockService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:   "список с уровнями срочности",
			target: "/api/v1/customers",
			setupMock: func(m *MockService) {
				m.On("Search", mock.Anything, "").Return([]*models.Customer{
					{ID: 1, Username: "alice", ServicePlan: models.PlanBasico, ExpirationToken: "02-jun"},
					{ID: 2, Username: "bob", ServicePlan: models.PlanPremium, ExpirationToken: "05-jun", ContactNumber: "+34 600 111 222"},
					{ID: 3, Username: "carla", ServicePlan: models.PlanEstandar, ExpirationToken: "20-jun", Notes: "paga tarde"},
				}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody: `{"status":"OK","data":{"customers":[
				{"username":"alice","service_plan":"basico","expiration_token":"02-jun","tier":"critical","contact_number":"","notes":""},
				{"username":"bob","service_plan":"premium","expiration_token":"05-jun","tier":"warning","contact_number":"+34 600 111 222","notes":""},
				{"username":"carla","service_plan":"estandar","expiration_token":"20-jun","tier":"ok","contact_number":"","notes":"paga tarde"}
			]}}`,
		},
		{
			name:   "поиск по подстроке",
			target: "/api/v1/customers?q=ali",
			setupMock: func(m *MockService) {
				m.On("Search", mock.Anything, "ali").Return([]*models.Customer{
					{ID: 1, Username: "alice", ServicePlan: models.PlanBasico, ExpirationToken: "20-jun"},
				}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody: `{"status":"OK","data":{"customers":[
				{"username":"alice","service_plan":"basico","expiration_token":"20-jun","tier":"ok","contact_number":"","notes":""}
			]}}`,
		},
		{
			name:   "пустой результат",
			target: "/api/v1/customers?q=zzz",
			setupMock: func(m *MockService) {
				m.On("Search", mock.Anything, "zzz").Return([]*models.Customer{}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"status":"OK","data":{"customers":[]}}`,
		},
		{
			name:   "ошибка сервиса",
			target: "/api/v1/customers",
			setupMock: func(m *MockService) {
				m.On("Search", mock.Anything, "").Return(nil, errors.New("db down"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"status":"Error","error":"could not list customers"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := new(MockService)
			tt.setupMock(mockSvc)

			handler := New(logger, mockSvc)
			handler.now = func() time.Time { return today }

			req := httptest.NewRequest(http.MethodGet, tt.target, nil)
			w := httptest.NewRecorder()

			handler.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.JSONEq(t, tt.expectedBody, w.Body.String())
			mockSvc.AssertExpectations(t)
		})
	}
}
