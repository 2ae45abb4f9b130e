package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"spomap-api/internal/config"
	"spomap-api/internal/logging"
	"spomap-api/internal/models"
	"spomap-api/internal/pipeline"
	"spomap-api/internal/repository"
	"spomap-api/internal/source"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog/log"
)

func main() {
	configPath := flag.String("config", "configs", "directory containing app.env")
	topN := flag.Int("top", 5, "number of top EDI regions to log per sport after export")
	flag.Parse()

	if err := run(*configPath, *topN); err != nil {
		log.Error().Err(err).Msg("export failed")
		os.Exit(1)
	}
}

func run(configPath string, topN int) error {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	logger := logging.Setup(cfg.LogLevel, cfg.LogFormat)
	if cfg.DBSource == "" {
		return fmt.Errorf("DB_SOURCE is required")
	}

	dataset, err := source.NewLoader(cfg.SourceEncoding).Load(source.Paths{
		Population:     cfg.PopulationFile,
		Voucher:        cfg.VoucherFile,
		PublicFacility: cfg.PublicFacilityFile,
		Fitness:        cfg.FitnessFile,
	})
	if err != nil {
		return fmt.Errorf("failed to load source data: %w", err)
	}
	snapshot, err := pipeline.Build(dataset, logger)
	if err != nil {
		return fmt.Errorf("failed to build metrics: %w", err)
	}

	ctx := context.Background()

	// Connect to DB
	pool, err := pgxpool.New(ctx, cfg.DBSource)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer pool.Close()

	repo := repository.NewPostgresRepository(pool)
	if err := repo.EnsureSchema(ctx); err != nil {
		return err
	}

	regions, metrics := snapshot.Regions(), snapshot.Metrics()
	run, err := repo.ReplaceSnapshot(ctx, regions, metrics)
	if err != nil {
		return err
	}

	// Verify data
	regionRows, metricRows, err := repo.CountRows(ctx)
	if err != nil {
		return err
	}
	if regionRows != len(regions) || metricRows != len(metrics) {
		return fmt.Errorf("row count mismatch: expected %d regions and %d metrics, got %d and %d",
			len(regions), len(metrics), regionRows, metricRows)
	}
	log.Info().
		Str("run_id", run.ID.String()).
		Int("regions", regionRows).
		Int("metrics", metricRows).
		Msg("exported metric snapshot")

	for _, sport := range snapshot.Sports() {
		top, err := repo.TopRegionsByEDI(ctx, sport.Code, topN)
		if err != nil {
			return err
		}
		logTop(sport, top)
	}
	return nil
}

func logTop(sport models.SportCategory, top []models.RankedRegion) {
	for i, r := range top {
		log.Info().
			Str("sport", sport.Code).
			Int("rank", i+1).
			Str("region_id", r.RegionID).
			Str("region", r.RegionName).
			Float64("edi", r.EDI).
			Msg("top EDI region")
	}
}
