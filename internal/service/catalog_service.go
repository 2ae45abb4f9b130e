package service

import (
	"context"
	"fmt"

	"spomap-api/internal/models"
)

// CatalogService exposes the sport and region catalogues
type CatalogService struct {
	repo CatalogRepository
}

// CatalogRepository interface for dependency injection
type CatalogRepository interface {
	ListSports(ctx context.Context) ([]models.SportCategory, error)
	ListRegions(ctx context.Context) ([]models.Region, error)
}

// NewCatalogService creates a new catalog service
func NewCatalogService(repo CatalogRepository) *CatalogService {
	return &CatalogService{repo: repo}
}

// Sports lists the available sport categories
func (s *CatalogService) Sports(ctx context.Context) ([]models.SportCategory, error) {
	sports, err := s.repo.ListSports(ctx)
	if err != nil {
		return nil, fmt.Errorf("service: failed to list sports: %w", err)
	}
	return sports, nil
}

// Regions lists the regions shown on the map
func (s *CatalogService) Regions(ctx context.Context) ([]models.Region, error) {
	regions, err := s.repo.ListRegions(ctx)
	if err != nil {
		return nil, fmt.Errorf("service: failed to list regions: %w", err)
	}
	return regions, nil
}
