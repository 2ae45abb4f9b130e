package handler

import (
	"context"
	"net/http"

	"spomap-api/internal/models"

	"github.com/gin-gonic/gin"
)

// CatalogHandler handles sport and region catalogue requests
type CatalogHandler struct {
	service CatalogService
}

// CatalogService interface for dependency injection
type CatalogService interface {
	Sports(context.Context) ([]models.SportCategory, error)
	Regions(context.Context) ([]models.Region, error)
}

// NewCatalogHandler creates a new catalog handler
func NewCatalogHandler(svc CatalogService) *CatalogHandler {
	return &CatalogHandler{service: svc}
}

// Sports handles GET /api/sports requests
//
//	@Summary	List sport categories
//	@Tags		catalogue
//	@Produce	json
//	@Success	200	{array}		models.SportCategory
//	@Failure	500	{object}	ErrorResponse
//	@Router		/api/sports [get]
func (h *CatalogHandler) Sports(c *gin.Context) {
	sports, err := h.service.Sports(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, sports)
}

// Regions handles GET /api/regions requests
//
//	@Summary	List regions with map coordinates
//	@Tags		catalogue
//	@Produce	json
//	@Success	200	{array}		models.Region
//	@Failure	500	{object}	ErrorResponse
//	@Router		/api/regions [get]
func (h *CatalogHandler) Regions(c *gin.Context) {
	regions, err := h.service.Regions(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, regions)
}
