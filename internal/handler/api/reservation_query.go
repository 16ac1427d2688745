package api

import (
	"errors"
	"net/http"
	"time"

	"hall-booking/internal/handler/httperr"
	"hall-booking/internal/infra"
	"hall-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ReservationQueryHandler struct {
	reservations queries.ReservationQueries
	availability queries.AvailabilityQueries
}

func NewReservationQueryHandler(
	reservations queries.ReservationQueries,
	availability queries.AvailabilityQueries,
) *ReservationQueryHandler {
	return &ReservationQueryHandler{
		reservations: reservations,
		availability: availability,
	}
}

// GET /api/reservations/:id
func (h *ReservationQueryHandler) GetByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid reservation id", nil)
		return
	}

	view, err := h.reservations.GetByID(c.Request.Context(), id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Reservation not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to fetch reservation", nil)
		return
	}
	c.JSON(http.StatusOK, view)
}

// GET /api/reservations
func (h *ReservationQueryHandler) List(c *gin.Context) {
	views, err := h.reservations.ListDetails(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to list reservations", nil)
		return
	}
	c.JSON(http.StatusOK, views)
}

// GET /api/reservations/unpaid
func (h *ReservationQueryHandler) ListUnpaid(c *gin.Context) {
	views, err := h.reservations.ListUnpaid(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to list unpaid reservations", nil)
		return
	}
	c.JSON(http.StatusOK, views)
}

// GET /api/halls/free?start=...&end=...
//
// Without query parameters it reports halls free right now.
func (h *ReservationQueryHandler) FreeHalls(c *gin.Context) {
	startParam := c.Query("start")
	endParam := c.Query("end")

	if startParam == "" && endParam == "" {
		views, err := h.availability.FreeHallsNow(c.Request.Context())
		if err != nil {
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to list free halls", nil)
			return
		}
		c.JSON(http.StatusOK, views)
		return
	}

	start, err := time.Parse(time.RFC3339, startParam)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid start time, expected RFC3339", nil)
		return
	}
	end, err := time.Parse(time.RFC3339, endParam)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid end time, expected RFC3339", nil)
		return
	}

	views, err := h.availability.FreeHalls(c.Request.Context(), start, end)
	if err != nil {
		if errors.Is(err, queries.ErrInvalidQueryWindow) {
			httperr.AbortWithError(c, http.StatusBadRequest, err, err.Error(), nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to list free halls", nil)
		return
	}
	c.JSON(http.StatusOK, views)
}
