package handler

import (
	"errors"
	"net/http"

	"spomap-api/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// ErrorResponse is the body of every non-2xx response
type ErrorResponse struct {
	Error string `json:"error"`
}

func writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrUnsupportedSport):
		c.JSON(http.StatusNotFound, gin.H{"error": "Unsupported sport"})
	case errors.Is(err, service.ErrMetricNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Metric not found"})
	case errors.Is(err, service.ErrNoMetrics):
		c.JSON(http.StatusNotFound, gin.H{"error": "No metrics for this sport"})
	case errors.Is(err, service.ErrInvalidTopN):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		log.Error().Err(err).Str("path", c.Request.URL.Path).Msg("request failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
