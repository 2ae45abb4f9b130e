package handler

import (
	"context"
	"net/http"
	"strconv"

	"spomap-api/internal/models"

	"github.com/gin-gonic/gin"
)

const defaultTopN = 10

// MetricHandler handles demand, supply and EDI requests
type MetricHandler struct {
	service MetricService
}

// MetricService interface for dependency injection
type MetricService interface {
	Metric(ctx context.Context, regionID, sport string) (*models.Metric, error)
	Metrics(ctx context.Context, sport string) ([]models.Metric, error)
	Rank(ctx context.Context, sport string, topN int) ([]models.RankedRegion, error)
}

// NewMetricHandler creates a new metric handler
func NewMetricHandler(svc MetricService) *MetricHandler {
	return &MetricHandler{service: svc}
}

// Metric handles GET /api/metric requests
//
//	@Summary	Demand, supply and EDI of one region for one sport
//	@Tags		metrics
//	@Produce	json
//	@Param		region_id	query		string	true	"5-digit region code"
//	@Param		sport		query		string	true	"sport code"
//	@Success	200			{object}	models.Metric
//	@Failure	400			{object}	ErrorResponse
//	@Failure	404			{object}	ErrorResponse
//	@Router		/api/metric [get]
func (h *MetricHandler) Metric(c *gin.Context) {
	regionID := c.Query("region_id")
	sport := c.Query("sport")
	if regionID == "" || sport == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing required query parameters 'region_id' and 'sport'"})
		return
	}

	metric, err := h.service.Metric(c.Request.Context(), regionID, sport)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, metric)
}

// Metrics handles GET /api/metrics requests
//
//	@Summary	Metrics of every region for one sport
//	@Tags		metrics
//	@Produce	json
//	@Param		sport	query		string	true	"sport code"
//	@Success	200		{array}		models.Metric
//	@Failure	400		{object}	ErrorResponse
//	@Failure	404		{object}	ErrorResponse
//	@Router		/api/metrics [get]
func (h *MetricHandler) Metrics(c *gin.Context) {
	sport := c.Query("sport")
	if sport == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing required query parameter 'sport'"})
		return
	}

	metrics, err := h.service.Metrics(c.Request.Context(), sport)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, metrics)
}

// Rank handles GET /api/rank requests
//
//	@Summary	Regions ranked by descending EDI for one sport
//	@Tags		metrics
//	@Produce	json
//	@Param		sport	query		string	true	"sport code"
//	@Param		top_n	query		int		false	"maximum number of regions"	default(10)
//	@Success	200		{array}		models.RankedRegion
//	@Failure	400		{object}	ErrorResponse
//	@Failure	404		{object}	ErrorResponse
//	@Router		/api/rank [get]
func (h *MetricHandler) Rank(c *gin.Context) {
	sport := c.Query("sport")
	if sport == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing required query parameter 'sport'"})
		return
	}

	topN := defaultTopN
	if raw := c.Query("top_n"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid top_n format"})
			return
		}
		topN = n
	}

	ranked, err := h.service.Rank(c.Request.Context(), sport, topN)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, ranked)
}
