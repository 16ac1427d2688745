package api

import (
	"errors"
	"net/http"

	"hall-booking/internal/handler/dto/request"
	"hall-booking/internal/handler/dto/response"
	"hall-booking/internal/handler/httperr"
	"hall-booking/internal/infra"
	"hall-booking/internal/usecase/commands"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type BookingHandler struct {
	bookings commands.BookingCommands
}

func NewBookingHandler(bookings commands.BookingCommands) *BookingHandler {
	return &BookingHandler{bookings: bookings}
}

// POST /api/reservations
func (h *BookingHandler) Create(c *gin.Context) {
	var req request.CreateReservation
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request body", nil)
		return
	}

	params, err := req.ToParams()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid reservation window", nil)
		return
	}

	id, err := h.bookings.CreateReservation(c.Request.Context(), params)
	if err != nil {
		h.abortCreateError(c, err)
		return
	}

	c.JSON(http.StatusCreated, response.Created{ID: id})
}

func (h *BookingHandler) abortCreateError(c *gin.Context, err error) {
	var conflict *commands.ConflictError
	switch {
	case errors.As(err, &conflict):
		httperr.AbortWithError(c, http.StatusConflict, err, "Hall is not available for the requested window",
			gin.H{"hall_id": conflict.HallID})
	case errors.Is(err, commands.ErrInvalidWindow),
		errors.Is(err, commands.ErrNoHallsRequested),
		errors.Is(err, commands.ErrPriceNotPositive):
		httperr.AbortWithError(c, http.StatusBadRequest, err, err.Error(), nil)
	case errors.Is(err, commands.ErrHallNotFound),
		errors.Is(err, commands.ErrServiceNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, err.Error(), nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to create reservation", nil)
	}
}

// DELETE /api/reservations/:id
func (h *BookingHandler) Cancel(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid reservation id", nil)
		return
	}

	if err := h.bookings.CancelReservation(c.Request.Context(), id); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Reservation not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to cancel reservation", nil)
		return
	}

	c.JSON(http.StatusOK, response.Message{Message: "reservation cancelled"})
}
