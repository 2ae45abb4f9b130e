package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"spomap-api/internal/models"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const schema = `
	CREATE TABLE IF NOT EXISTS regions (
		id VARCHAR(5) PRIMARY KEY,
		name VARCHAR(255) NOT NULL,
		lat DOUBLE PRECISION NOT NULL,
		lng DOUBLE PRECISION NOT NULL
	);
	CREATE TABLE IF NOT EXISTS metrics (
		region_id VARCHAR(5) NOT NULL,
		sport VARCHAR(32) NOT NULL,
		demand_score DOUBLE PRECISION NOT NULL,
		supply_score DOUBLE PRECISION NOT NULL,
		edi DOUBLE PRECISION NOT NULL,
		PRIMARY KEY (region_id, sport)
	);
	CREATE INDEX IF NOT EXISTS metrics_sport_edi_idx ON metrics (sport, edi DESC);
	CREATE TABLE IF NOT EXISTS snapshot_runs (
		id UUID PRIMARY KEY,
		exported_at TIMESTAMPTZ NOT NULL,
		region_count INTEGER NOT NULL,
		metric_count INTEGER NOT NULL
	);
`

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// SnapshotRun records one publication of a metric snapshot
type SnapshotRun struct {
	ID          uuid.UUID
	ExportedAt  time.Time
	RegionCount int
	MetricCount int
}

// PostgresRepository publishes computed snapshots to PostgreSQL
type PostgresRepository struct {
	db *pgxpool.Pool
}

// NewPostgresRepository creates a new PostgreSQL repository
func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// EnsureSchema creates the regions and metrics tables if they do not exist
func (r *PostgresRepository) EnsureSchema(ctx context.Context) error {
	if _, err := r.db.Exec(ctx, schema); err != nil {
		return fmt.Errorf("repository: failed to create schema: %w", err)
	}
	return nil
}

// ReplaceSnapshot swaps the stored catalogue and metric table for new ones in a single transaction
// and records the publication as a snapshot run
func (r *PostgresRepository) ReplaceSnapshot(ctx context.Context, regions []models.Region, metrics []models.Metric) (SnapshotRun, error) {
	run := SnapshotRun{
		ID:          uuid.New(),
		ExportedAt:  time.Now().UTC(),
		RegionCount: len(regions),
		MetricCount: len(metrics),
	}

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return run, fmt.Errorf("repository: failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, "TRUNCATE regions, metrics"); err != nil {
		return run, fmt.Errorf("repository: failed to truncate tables: %w", err)
	}

	_, err = tx.CopyFrom(
		ctx,
		pgx.Identifier{"regions"},
		[]string{"id", "name", "lat", "lng"},
		pgx.CopyFromSlice(len(regions), func(i int) ([]interface{}, error) {
			reg := regions[i]
			return []interface{}{reg.ID, reg.Name, reg.Lat, reg.Lng}, nil
		}),
	)
	if err != nil {
		return run, fmt.Errorf("repository: failed to copy regions: %w", err)
	}

	_, err = tx.CopyFrom(
		ctx,
		pgx.Identifier{"metrics"},
		[]string{"region_id", "sport", "demand_score", "supply_score", "edi"},
		pgx.CopyFromSlice(len(metrics), func(i int) ([]interface{}, error) {
			m := metrics[i]
			return []interface{}{m.RegionID, m.Sport, m.DemandScore, m.SupplyScore, m.EDI}, nil
		}),
	)
	if err != nil {
		return run, fmt.Errorf("repository: failed to copy metrics: %w", err)
	}

	insert, args, err := psql.Insert("snapshot_runs").
		Columns("id", "exported_at", "region_count", "metric_count").
		Values(run.ID, run.ExportedAt, run.RegionCount, run.MetricCount).
		ToSql()
	if err != nil {
		return run, fmt.Errorf("repository: failed to build run insert: %w", err)
	}
	if _, err := tx.Exec(ctx, insert, args...); err != nil {
		return run, fmt.Errorf("repository: failed to record snapshot run: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return run, fmt.Errorf("repository: failed to commit snapshot: %w", err)
	}
	return run, nil
}

// CountRows returns the number of stored regions and metrics
func (r *PostgresRepository) CountRows(ctx context.Context) (regions, metrics int, err error) {
	err = r.db.QueryRow(ctx, "SELECT (SELECT COUNT(*) FROM regions), (SELECT COUNT(*) FROM metrics)").Scan(&regions, &metrics)
	if err != nil {
		return 0, 0, fmt.Errorf("repository: failed to count rows: %w", err)
	}
	return regions, metrics, nil
}

// FindMetric reads one stored metric, or nil if the pair is absent
func (r *PostgresRepository) FindMetric(ctx context.Context, regionID, sport string) (*models.Metric, error) {
	sql, args, err := psql.
		Select("region_id", "sport", "demand_score", "supply_score", "edi").
		From("metrics").
		Where(sq.Eq{"region_id": regionID, "sport": sport}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("repository: failed to build metric query: %w", err)
	}

	var m models.Metric
	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&m.RegionID,
		&m.Sport,
		&m.DemandScore,
		&m.SupplyScore,
		&m.EDI,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("repository: failed to query metric: %w", err)
	}
	return &m, nil
}

// TopRegionsByEDI returns up to limit stored metrics of a sport for mapped regions, highest EDI first
func (r *PostgresRepository) TopRegionsByEDI(ctx context.Context, sport string, limit int) ([]models.RankedRegion, error) {
	if limit < 1 {
		return nil, fmt.Errorf("repository: limit must be positive, got %d", limit)
	}

	sql, args, err := psql.
		Select("m.region_id", "r.name", "m.edi", "m.demand_score", "m.supply_score").
		From("metrics m").
		Join("regions r ON r.id = m.region_id").
		Where(sq.Eq{"m.sport": sport}).
		OrderBy("m.edi DESC", "m.region_id").
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("repository: failed to build ranking query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("repository: failed to execute ranking query: %w", err)
	}
	defer rows.Close()

	var ranked []models.RankedRegion
	for rows.Next() {
		var rr models.RankedRegion
		if err := rows.Scan(&rr.RegionID, &rr.RegionName, &rr.EDI, &rr.DemandScore, &rr.SupplyScore); err != nil {
			return nil, fmt.Errorf("repository: failed to scan ranked region: %w", err)
		}
		ranked = append(ranked, rr)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repository: error iterating rows: %w", err)
	}
	return ranked, nil
}

// LatestRun returns the most recent snapshot run, or nil if nothing was exported yet
func (r *PostgresRepository) LatestRun(ctx context.Context) (*SnapshotRun, error) {
	sql, args, err := psql.
		Select("id", "exported_at", "region_count", "metric_count").
		From("snapshot_runs").
		OrderBy("exported_at DESC").
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("repository: failed to build run query: %w", err)
	}

	var run SnapshotRun
	err = r.db.QueryRow(ctx, sql, args...).Scan(&run.ID, &run.ExportedAt, &run.RegionCount, &run.MetricCount)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("repository: failed to query snapshot run: %w", err)
	}
	return &run, nil
}
