package api

import (
	"errors"
	"net/http"

	"hall-booking/internal/domain/booking"
	"hall-booking/internal/handler/dto/request"
	"hall-booking/internal/handler/dto/response"
	"hall-booking/internal/handler/httperr"
	"hall-booking/internal/usecase/commands"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type SettlementHandler struct {
	settlements commands.SettlementCommands
}

func NewSettlementHandler(settlements commands.SettlementCommands) *SettlementHandler {
	return &SettlementHandler{settlements: settlements}
}

// POST /api/reservations/:id/settle
func (h *SettlementHandler) Settle(c *gin.Context) {
	reservationID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid reservation id", nil)
		return
	}

	var req request.SettleReservation
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request body", nil)
		return
	}

	err = h.settlements.Settle(c.Request.Context(), reservationID, req.AccountID, booking.NewMoneyFromCents(req.AmountCents))
	if err != nil {
		h.abortSettleError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Message{Message: "reservation settled"})
}

func (h *SettlementHandler) abortSettleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, commands.ErrInvalidAmount):
		httperr.AbortWithError(c, http.StatusBadRequest, err, err.Error(), nil)
	case errors.Is(err, commands.ErrAccountNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, err.Error(), nil)
	case errors.Is(err, commands.ErrAlreadySettled):
		httperr.AbortWithError(c, http.StatusConflict, err, err.Error(), nil)
	case errors.Is(err, commands.ErrInsufficientFunds):
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, err.Error(), nil)
	case errors.Is(err, commands.ErrSettlementInconsistent):
		// Money moved but the reservation state is stale; operators must
		// reconcile by hand, so this is flagged loudly.
		httperr.AbortWithError(c, http.StatusInternalServerError, err,
			"Settlement left in an inconsistent state; contact support", nil)
	case errors.Is(err, commands.ErrPaymentFailed), errors.Is(err, commands.ErrTransferFailed):
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Settlement failed", nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Settlement failed", nil)
	}
}
