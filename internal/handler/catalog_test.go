package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"spomap-api/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockCatalogService is a mock implementation of the CatalogService interface
type MockCatalogService struct {
	mock.Mock
}

func (m *MockCatalogService) Sports(ctx context.Context) ([]models.SportCategory, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.SportCategory), args.Error(1)
}

func (m *MockCatalogService) Regions(ctx context.Context) ([]models.Region, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.Region), args.Error(1)
}

func assertJSONBody(t *testing.T, expected interface{}, w *httptest.ResponseRecorder) {
	t.Helper()
	want, err := json.Marshal(expected)
	require.NoError(t, err)
	assert.JSONEq(t, string(want), w.Body.String())
}

func TestCatalogHandler_Sports(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name           string
		mockSports     []models.SportCategory
		mockError      error
		expectedStatus int
		expectedBody   interface{}
	}{
		{
			name:           "lists sports",
			mockSports:     models.SportCatalogue(),
			expectedStatus: http.StatusOK,
			expectedBody: []gin.H{
				{"code": "ball_sports", "label": "구기/필드종목"},
				{"code": "fitness", "label": "헬스/체력단련"},
				{"code": "swimming", "label": "수영"},
				{"code": "pilates_yoga", "label": "필라테스/요가"},
			},
		},
		{
			name:           "service error",
			mockSports:     nil,
			mockError:      assert.AnError,
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   gin.H{"error": "internal server error"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Setup
			mockSvc := new(MockCatalogService)
			handler := NewCatalogHandler(mockSvc)
			mockSvc.On("Sports", mock.Anything).Return(tt.mockSports, tt.mockError)

			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest(http.MethodGet, "/api/sports", nil)

			// Execute
			handler.Sports(c)

			// Assert
			assert.Equal(t, tt.expectedStatus, w.Code)
			assertJSONBody(t, tt.expectedBody, w)
			mockSvc.AssertExpectations(t)
		})
	}
}

func TestCatalogHandler_Regions(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name           string
		mockRegions    []models.Region
		mockError      error
		expectedStatus int
		expectedBody   interface{}
	}{
		{
			name:           "lists regions",
			mockRegions:    []models.Region{{ID: "28140", Name: "인천광역시 동구", Lat: 37.48, Lng: 126.64}},
			expectedStatus: http.StatusOK,
			expectedBody:   []gin.H{{"id": "28140", "name": "인천광역시 동구", "lat": 37.48, "lng": 126.64}},
		},
		{
			name:           "no regions",
			mockRegions:    []models.Region{},
			expectedStatus: http.StatusOK,
			expectedBody:   []gin.H{},
		},
		{
			name:           "service error",
			mockRegions:    nil,
			mockError:      assert.AnError,
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   gin.H{"error": "internal server error"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Setup
			mockSvc := new(MockCatalogService)
			handler := NewCatalogHandler(mockSvc)
			mockSvc.On("Regions", mock.Anything).Return(tt.mockRegions, tt.mockError)

			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest(http.MethodGet, "/api/regions", nil)

			// Execute
			handler.Regions(c)

			// Assert
			assert.Equal(t, tt.expectedStatus, w.Code)
			assertJSONBody(t, tt.expectedBody, w)
			mockSvc.AssertExpectations(t)
		})
	}
}
