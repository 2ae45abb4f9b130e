package main

import (
	"flag"
	"net/http"

	_ "spomap-api/docs"
	"spomap-api/internal/config"
	"spomap-api/internal/handler"
	"spomap-api/internal/logging"
	"spomap-api/internal/middleware"
	"spomap-api/internal/pipeline"
	"spomap-api/internal/repository"
	"spomap-api/internal/service"
	"spomap-api/internal/source"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

//	@title			Spomap API
//	@version		1.0
//	@description	Regional sports facility demand, supply and equity deficit index.
//	@BasePath		/
func main() {
	configPath := flag.String("config", "./configs", "directory containing app.env")
	flag.Parse()

	config, err := config.LoadConfig(*configPath)
	if err != nil {
		log.Fatal().Err(err).Msg("cannot load config")
	}
	logger := logging.Setup(config.LogLevel, config.LogFormat)
	gin.SetMode(config.GinMode)

	// Build the in-memory metric snapshot
	dataset, err := source.NewLoader(config.SourceEncoding).Load(source.Paths{
		Population:     config.PopulationFile,
		Voucher:        config.VoucherFile,
		PublicFacility: config.PublicFacilityFile,
		Fitness:        config.FitnessFile,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("cannot load source data")
	}
	snapshot, err := pipeline.Build(dataset, logger)
	if err != nil {
		log.Fatal().Err(err).Msg("cannot build metrics")
	}

	// Initialize layers
	repo := repository.NewSnapshotRepository(snapshot)

	catalogService := service.NewCatalogService(repo)
	metricService := service.NewMetricService(repo)

	catalogHandler := handler.NewCatalogHandler(catalogService)
	metricHandler := handler.NewMetricHandler(metricService)

	r := gin.New()
	r.Use(gin.Recovery(), middleware.Logger(logger), middleware.CORS(config.AllowedOrigins()))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
		})
	})

	api := r.Group("/api")
	api.GET("/sports", catalogHandler.Sports)
	api.GET("/regions", catalogHandler.Regions)
	api.GET("/metric", metricHandler.Metric)
	api.GET("/metrics", metricHandler.Metrics)
	api.GET("/rank", metricHandler.Rank)

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	log.Info().Str("address", config.ServerAddress).Msg("starting server")
	if err := r.Run(config.ServerAddress); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
