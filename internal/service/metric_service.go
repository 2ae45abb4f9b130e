package service

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"spomap-api/internal/models"
)

var (
	ErrUnsupportedSport = errors.New("unsupported sport")
	ErrMetricNotFound   = errors.New("metric not found")
	ErrNoMetrics        = errors.New("no metrics for this sport")
	ErrInvalidTopN      = errors.New("top_n must be a positive integer")
)

// MetricService answers demand, supply and EDI queries
type MetricService struct {
	repo MetricRepository
}

// MetricRepository interface for dependency injection
type MetricRepository interface {
	ListSports(ctx context.Context) ([]models.SportCategory, error)
	ListRegions(ctx context.Context) ([]models.Region, error)
	FindMetric(ctx context.Context, regionID, sport string) (*models.Metric, error)
	ListMetricsBySport(ctx context.Context, sport string) ([]models.Metric, error)
}

// NewMetricService creates a new metric service
func NewMetricService(repo MetricRepository) *MetricService {
	return &MetricService{repo: repo}
}

// Metric returns the metric of one region and sport
func (s *MetricService) Metric(ctx context.Context, regionID, sport string) (*models.Metric, error) {
	if err := s.ensureSport(ctx, sport); err != nil {
		return nil, err
	}

	metric, err := s.repo.FindMetric(ctx, regionID, sport)
	if err != nil {
		return nil, fmt.Errorf("service: failed to find metric: %w", err)
	}
	if metric == nil {
		return nil, ErrMetricNotFound
	}
	return metric, nil
}

// Metrics returns the metrics of every region for a sport
func (s *MetricService) Metrics(ctx context.Context, sport string) ([]models.Metric, error) {
	if err := s.ensureSport(ctx, sport); err != nil {
		return nil, err
	}

	metrics, err := s.repo.ListMetricsBySport(ctx, sport)
	if err != nil {
		return nil, fmt.Errorf("service: failed to list metrics: %w", err)
	}
	if len(metrics) == 0 {
		return nil, ErrNoMetrics
	}
	return metrics, nil
}

// Rank orders the mapped regions by descending EDI for a sport and keeps at most topN of them
func (s *MetricService) Rank(ctx context.Context, sport string, topN int) ([]models.RankedRegion, error) {
	if topN < 1 {
		return nil, ErrInvalidTopN
	}
	if err := s.ensureSport(ctx, sport); err != nil {
		return nil, err
	}

	regions, err := s.repo.ListRegions(ctx)
	if err != nil {
		return nil, fmt.Errorf("service: failed to list regions: %w", err)
	}
	names := make(map[string]string, len(regions))
	for _, r := range regions {
		names[r.ID] = r.Name
	}

	metrics, err := s.repo.ListMetricsBySport(ctx, sport)
	if err != nil {
		return nil, fmt.Errorf("service: failed to list metrics: %w", err)
	}

	ranked := make([]models.RankedRegion, 0, len(metrics))
	for _, m := range metrics {
		name, mapped := names[m.RegionID]
		if !mapped {
			continue
		}
		ranked = append(ranked, models.RankedRegion{
			RegionID:    m.RegionID,
			RegionName:  name,
			EDI:         m.EDI,
			DemandScore: m.DemandScore,
			SupplyScore: m.SupplyScore,
		})
	}

	sort.SliceStable(ranked, func(i, j int) bool { return ranked[i].EDI > ranked[j].EDI })
	if topN < len(ranked) {
		ranked = ranked[:topN]
	}
	return ranked, nil
}

func (s *MetricService) ensureSport(ctx context.Context, sport string) error {
	sports, err := s.repo.ListSports(ctx)
	if err != nil {
		return fmt.Errorf("service: failed to list sports: %w", err)
	}
	for _, sp := range sports {
		if sp.Code == sport {
			return nil
		}
	}
	return ErrUnsupportedSport
}
