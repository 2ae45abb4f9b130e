package repository

import (
	"context"
	"fmt"

	"spomap-api/internal/models"
	"spomap-api/internal/pipeline"
)

// SnapshotRepository serves the artifacts of a pipeline run. The snapshot is
// immutable, so no locking is needed.
type SnapshotRepository struct {
	snapshot *pipeline.Snapshot
}

// NewSnapshotRepository creates a repository over a built snapshot
func NewSnapshotRepository(snapshot *pipeline.Snapshot) *SnapshotRepository {
	return &SnapshotRepository{snapshot: snapshot}
}

// ListSports returns the sport catalogue
func (r *SnapshotRepository) ListSports(ctx context.Context) ([]models.SportCategory, error) {
	if err := r.ready(ctx); err != nil {
		return nil, err
	}
	return r.snapshot.Sports(), nil
}

// ListRegions returns the regions that have map coordinates
func (r *SnapshotRepository) ListRegions(ctx context.Context) ([]models.Region, error) {
	if err := r.ready(ctx); err != nil {
		return nil, err
	}
	return r.snapshot.Regions(), nil
}

// FindMetric returns the metric for a region and sport, or nil if the pair is unknown
func (r *SnapshotRepository) FindMetric(ctx context.Context, regionID, sport string) (*models.Metric, error) {
	if err := r.ready(ctx); err != nil {
		return nil, err
	}
	m, ok := r.snapshot.Metric(regionID, sport)
	if !ok {
		return nil, nil
	}
	return &m, nil
}

// ListMetricsBySport returns every metric of a sport
func (r *SnapshotRepository) ListMetricsBySport(ctx context.Context, sport string) ([]models.Metric, error) {
	if err := r.ready(ctx); err != nil {
		return nil, err
	}
	return r.snapshot.MetricsBySport(sport), nil
}

func (r *SnapshotRepository) ready(ctx context.Context) error {
	if r.snapshot == nil {
		return fmt.Errorf("repository: snapshot not loaded")
	}
	return ctx.Err()
}
