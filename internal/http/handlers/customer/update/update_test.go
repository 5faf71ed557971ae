package update

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/go-chi/chi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/magabrotheeeer/iptv-console/internal/models"
	"github.com/magabrotheeeer/iptv-console/internal/storage/repository"
)

// MockService реализует интерфейс update.Service
type MockService struct {
	mock.Mock
}

func (m *MockService) UpdateContactNotes(ctx context.Context, username string, req models.DummyContactUpdate) error {
	args := m.Called(ctx, username, req)
	return args.Error(0)
}

func TestUpdateHandler(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))

	tests := []struct {
		name           string
		username       string
		requestBody    interface{}
		setupMock      func(*MockService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:     "успешное обновление",
			username: "carlos",
			requestBody: models.DummyContactUpdate{
				ContactNumber: "+34 600 111 222",
				Notes:         "prefiere pagar en efectivo",
			},
			setupMock: func(m *MockService) {
				m.On("UpdateContactNotes", mock.Anything, "carlos",
					models.DummyContactUpdate{
						ContactNumber: "+34 600 111 222",
						Notes:         "prefiere pagar en efectivo",
					}).Return(nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"status":"OK"}`,
		},
		{
			name:        "очистка полей пустыми значениями",
			username:    "carlos",
			requestBody: models.DummyContactUpdate{},
			setupMock: func(m *MockService) {
				m.On("UpdateContactNotes", mock.Anything, "carlos",
					models.DummyContactUpdate{}).Return(nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"status":"OK"}`,
		},
		{
			name:        "клиент не найден",
			username:    "ghost",
			requestBody: models.DummyContactUpdate{Notes: "x"},
			setupMock: func(m *MockService) {
				m.On("UpdateContactNotes", mock.Anything, "ghost", mock.Anything).
					Return(repository.ErrNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `{"status":"Error","error":"customer not found"}`,
		},
		{
			name:           "некорректный JSON",
			username:       "carlos",
			requestBody:    "not a json",
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"invalid request body"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := new(MockService)
			tt.setupMock(mockSvc)

			handler := New(logger, mockSvc)

			router := chi.NewRouter()
			router.Put("/api/v1/customers/{username}", handler.ServeHTTP)

			var body []byte
			var err error
			if str, ok := tt.requestBody.(string); ok {
				body = []byte(str)
			} else {
				body, err = json.Marshal(tt.requestBody)
				require.NoError(t, err)
			}

			req := httptest.NewRequest(http.MethodPut,
				"/api/v1/customers/"+tt.username, bytes.NewReader(body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.JSONEq(t, tt.expectedBody, w.Body.String())
			mockSvc.AssertExpectations(t)
		})
	}
}
