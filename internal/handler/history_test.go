package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"placefinder-api/internal/models"
	"placefinder-api/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockHistoryService is a mock implementation of the HistoryService interface
type MockHistoryService struct {
	mock.Mock
}

func (m *MockHistoryService) Recent(ctx context.Context, limit int) ([]models.SearchLog, error) {
	args := m.Called(ctx, limit)
	return args.Get(0).([]models.SearchLog), args.Error(1)
}

func TestHistoryHandler_Recent(t *testing.T) {
	gin.SetMode(gin.TestMode)

	entries := []models.SearchLog{
		{ID: "s2", Categories: []string{"bar"}, QueryCount: 9},
		{ID: "s1", Categories: []string{"cafe"}, QueryCount: 1},
	}

	tests := []struct {
		name           string
		rawQuery       string
		expectedLimit  *int
		mockEntries    []models.SearchLog
		mockError      error
		expectedStatus int
	}{
		{name: "default limit", rawQuery: "", expectedLimit: intPtr(0), mockEntries: entries, expectedStatus: http.StatusOK},
		{name: "explicit limit", rawQuery: "limit=1", expectedLimit: intPtr(1), mockEntries: entries[:1], expectedStatus: http.StatusOK},
		{name: "invalid limit", rawQuery: "limit=abc", expectedStatus: http.StatusBadRequest},
		{name: "negative limit", rawQuery: "limit=-3", expectedStatus: http.StatusBadRequest},
		{name: "no database", rawQuery: "", expectedLimit: intPtr(0), mockError: service.ErrHistoryUnavailable, expectedStatus: http.StatusServiceUnavailable},
		{name: "service error", rawQuery: "", expectedLimit: intPtr(0), mockError: assert.AnError, expectedStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := new(MockHistoryService)
			handler := NewHistoryHandler(mockSvc)

			if tt.expectedLimit != nil {
				mockSvc.On("Recent", mock.Anything, *tt.expectedLimit).Return(tt.mockEntries, tt.mockError)
			}

			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest(http.MethodGet, "/searches?"+tt.rawQuery, nil)

			handler.Recent(c)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedStatus == http.StatusOK {
				var body []models.SearchLog
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
				assert.Equal(t, tt.mockEntries, body)
			}

			mockSvc.AssertExpectations(t)
		})
	}
}

func intPtr(i int) *int {
	return &i
}
