package api

import (
	"errors"
	"net/http"

	"hall-booking/internal/domain/booking"
	"hall-booking/internal/handler/dto/request"
	"hall-booking/internal/handler/dto/response"
	"hall-booking/internal/handler/httperr"
	"hall-booking/internal/infra"
	"hall-booking/internal/usecase/commands"
	"hall-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type CustomerHandler struct {
	customers commands.CustomerCommands
	views     queries.CustomerQueries
}

func NewCustomerHandler(customers commands.CustomerCommands, views queries.CustomerQueries) *CustomerHandler {
	return &CustomerHandler{customers: customers, views: views}
}

// POST /api/customers
func (h *CustomerHandler) Create(c *gin.Context) {
	var req request.CreateCustomer
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request body", nil)
		return
	}

	id, err := h.customers.CreateCustomer(c.Request.Context(), commands.CreateCustomerParams{
		Name:  req.Name,
		Email: req.Email,
		Phone: req.Phone,
	})
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrInvalidCustomer):
			httperr.AbortWithError(c, http.StatusBadRequest, err, err.Error(), nil)
		case infra.IsKind(err, infra.KindDuplicateKey):
			httperr.AbortWithError(c, http.StatusConflict, err, "Customer already exists", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to create customer", nil)
		}
		return
	}

	c.JSON(http.StatusCreated, response.Created{ID: id})
}

// POST /api/accounts/:id/topup
func (h *CustomerHandler) TopUp(c *gin.Context) {
	accountID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid account id", nil)
		return
	}

	var req request.TopUpBalance
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request body", nil)
		return
	}

	err = h.customers.TopUpBalance(c.Request.Context(), accountID, booking.NewMoneyFromCents(req.AmountCents))
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrInvalidTopUp):
			httperr.AbortWithError(c, http.StatusBadRequest, err, err.Error(), nil)
		case infra.IsKind(err, infra.KindNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Account not found", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to top up balance", nil)
		}
		return
	}

	c.JSON(http.StatusOK, response.Message{Message: "balance topped up"})
}

// GET /api/customers
func (h *CustomerHandler) List(c *gin.Context) {
	views, err := h.views.ListWithBalances(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to list customers", nil)
		return
	}
	c.JSON(http.StatusOK, views)
}
