package api

import (
	"errors"
	"net/http"

	"hall-booking/internal/handler/dto/request"
	"hall-booking/internal/handler/dto/response"
	"hall-booking/internal/handler/httperr"
	"hall-booking/internal/usecase/commands"
	"hall-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type CatalogHandler struct {
	catalog commands.CatalogCommands
	views   queries.CatalogQueries
}

func NewCatalogHandler(catalog commands.CatalogCommands, views queries.CatalogQueries) *CatalogHandler {
	return &CatalogHandler{catalog: catalog, views: views}
}

// POST /api/halls
func (h *CatalogHandler) CreateHall(c *gin.Context) {
	var req request.CreateHall
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request body", nil)
		return
	}

	id, err := h.catalog.CreateHall(c.Request.Context(), commands.CreateHallParams{
		Name:            req.Name,
		SportType:       req.SportType,
		HourlyRateCents: req.HourlyRateCents,
		Capacity:        req.Capacity,
	})
	if err != nil {
		if errors.Is(err, commands.ErrInvalidHall) {
			httperr.AbortWithError(c, http.StatusBadRequest, err, err.Error(), nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to create hall", nil)
		return
	}

	c.JSON(http.StatusCreated, response.Created{ID: id})
}

// POST /api/services
func (h *CatalogHandler) CreateService(c *gin.Context) {
	var req request.CreateService
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request body", nil)
		return
	}

	id, err := h.catalog.CreateService(c.Request.Context(), commands.CreateServiceParams{
		Name:            req.Name,
		HourlyRateCents: req.HourlyRateCents,
		Optional:        req.Optional,
	})
	if err != nil {
		if errors.Is(err, commands.ErrInvalidService) {
			httperr.AbortWithError(c, http.StatusBadRequest, err, err.Error(), nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to create service", nil)
		return
	}

	c.JSON(http.StatusCreated, response.Created{ID: id})
}

// GET /api/halls
func (h *CatalogHandler) ListHalls(c *gin.Context) {
	views, err := h.views.ListHalls(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to list halls", nil)
		return
	}
	c.JSON(http.StatusOK, views)
}

// GET /api/services
func (h *CatalogHandler) ListServices(c *gin.Context) {
	views, err := h.views.ListServices(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to list services", nil)
		return
	}
	c.JSON(http.StatusOK, views)
}
