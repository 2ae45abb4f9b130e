package service

import (
	"context"
	"testing"

	"spomap-api/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestCatalogService_Sports(t *testing.T) {
	tests := []struct {
		name        string
		mockSports  []models.SportCategory
		mockError   error
		expected    []models.SportCategory
		expectError bool
	}{
		{
			name:       "lists catalogue",
			mockSports: models.SportCatalogue(),
			expected:   models.SportCatalogue(),
		},
		{
			name:        "repository error",
			mockSports:  nil,
			mockError:   assert.AnError,
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Setup
			mockRepo := new(MockMetricRepository)
			service := NewCatalogService(mockRepo)
			mockRepo.On("ListSports", mock.Anything).Return(tt.mockSports, tt.mockError)

			// Execute
			result, err := service.Sports(context.Background())

			// Assert
			if tt.expectError {
				assert.ErrorIs(t, err, assert.AnError)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expected, result)
			}
			mockRepo.AssertExpectations(t)
		})
	}
}

func TestCatalogService_Regions(t *testing.T) {
	tests := []struct {
		name        string
		mockRegions []models.Region
		mockError   error
		expected    []models.Region
		expectError bool
	}{
		{
			name:        "lists regions",
			mockRegions: []models.Region{{ID: "28140", Name: "인천광역시 동구", Lat: 37.48, Lng: 126.64}},
			expected:    []models.Region{{ID: "28140", Name: "인천광역시 동구", Lat: 37.48, Lng: 126.64}},
		},
		{
			name:        "no mapped regions",
			mockRegions: []models.Region{},
			expected:    []models.Region{},
		},
		{
			name:        "repository error",
			mockRegions: nil,
			mockError:   assert.AnError,
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Setup
			mockRepo := new(MockMetricRepository)
			service := NewCatalogService(mockRepo)
			mockRepo.On("ListRegions", mock.Anything).Return(tt.mockRegions, tt.mockError)

			// Execute
			result, err := service.Regions(context.Background())

			// Assert
			if tt.expectError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expected, result)
			}
			mockRepo.AssertExpectations(t)
		})
	}
}
