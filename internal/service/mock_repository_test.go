package service

import (
	"context"

	"spomap-api/internal/models"

	"github.com/stretchr/testify/mock"
)

// MockMetricRepository is a mock implementation of the MetricRepository interface
type MockMetricRepository struct {
	mock.Mock
}

func (m *MockMetricRepository) ListSports(ctx context.Context) ([]models.SportCategory, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.SportCategory), args.Error(1)
}

func (m *MockMetricRepository) ListRegions(ctx context.Context) ([]models.Region, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.Region), args.Error(1)
}

func (m *MockMetricRepository) FindMetric(ctx context.Context, regionID, sport string) (*models.Metric, error) {
	args := m.Called(ctx, regionID, sport)
	return args.Get(0).(*models.Metric), args.Error(1)
}

func (m *MockMetricRepository) ListMetricsBySport(ctx context.Context, sport string) ([]models.Metric, error) {
	args := m.Called(ctx, sport)
	return args.Get(0).([]models.Metric), args.Error(1)
}
