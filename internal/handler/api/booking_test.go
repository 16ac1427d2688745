//go:build unit

package api_test

import (
	"net/http"
	"testing"
	"time"

	"hall-booking/internal/handler/api"
	"hall-booking/internal/handler/dto/request"
	"hall-booking/internal/handler/dto/response"
	"hall-booking/internal/handler/middleware"
	"hall-booking/internal/infra"
	"hall-booking/internal/usecase/commands"
	"hall-booking/tests/common/httptest"
	commandsmock "hall-booking/tests/mock/commands"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type BookingHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockBookings *commandsmock.MockBookingCommands
	handler      *api.BookingHandler
}

func (s *BookingHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()
	s.router.Use(middleware.ErrorHandler())

	s.mockCtrl = gomock.NewController(s.T())
	s.mockBookings = commandsmock.NewMockBookingCommands(s.mockCtrl)
	s.handler = api.NewBookingHandler(s.mockBookings)

	s.router.POST("/reservations", s.handler.Create)
	s.router.DELETE("/reservations/:id", s.handler.Cancel)
}

func (s *BookingHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestBookingHandlerSuite(t *testing.T) {
	suite.Run(t, new(BookingHandlerTestSuite))
}

func validCreateBody() request.CreateReservation {
	start := time.Now().Add(24 * time.Hour).Truncate(time.Hour)
	return request.CreateReservation{
		CustomerID: uuid.New(),
		Start:      start,
		End:        start.Add(2 * time.Hour),
		HallIDs:    []uuid.UUID{uuid.New()},
	}
}

func (s *BookingHandlerTestSuite) TestCreate() {
	url := "/reservations"

	s.Run("success: 201 with the new reservation id", func() {
		body := validCreateBody()
		resID := uuid.New()

		s.mockBookings.EXPECT().CreateReservation(gomock.Any(), gomock.Any()).Return(resID, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "")
		s.Equal(http.StatusCreated, rec.Code)

		var resp response.Created
		httptest.DecodeResponseBody(s.T(), rec.Body, &resp)
		s.Equal(resID, resp.ID)
	})

	s.Run("error: 409 with the conflicting hall id", func() {
		body := validCreateBody()
		takenHall := body.HallIDs[0]

		s.mockBookings.EXPECT().CreateReservation(gomock.Any(), gomock.Any()).
			Return(uuid.Nil, &commands.ConflictError{HallID: takenHall})

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "")
		s.Equal(http.StatusConflict, rec.Code)
		s.Contains(rec.Body.String(), takenHall.String())
	})

	s.Run("error: 404 for unknown hall", func() {
		body := validCreateBody()

		s.mockBookings.EXPECT().CreateReservation(gomock.Any(), gomock.Any()).
			Return(uuid.Nil, commands.ErrHallNotFound)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "")
		s.Equal(http.StatusNotFound, rec.Code)
	})

	s.Run("error: 400 for inverted window", func() {
		body := validCreateBody()
		body.Start, body.End = body.End, body.Start

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "")
		s.Equal(http.StatusBadRequest, rec.Code)
	})

	s.Run("error: 400 for missing halls", func() {
		body := validCreateBody()
		body.HallIDs = nil

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "")
		s.Equal(http.StatusBadRequest, rec.Code)
	})
}

func (s *BookingHandlerTestSuite) TestCancel() {
	s.Run("success: 200 on cancellation", func() {
		resID := uuid.New()
		s.mockBookings.EXPECT().CancelReservation(gomock.Any(), resID).Return(nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/reservations/"+resID.String(), nil, "")
		s.Equal(http.StatusOK, rec.Code)
	})

	s.Run("error: 404 for unknown reservation", func() {
		resID := uuid.New()
		s.mockBookings.EXPECT().CancelReservation(gomock.Any(), resID).
			Return(infra.NewRepoErr(infra.KindNotFound, "reservation not found"))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/reservations/"+resID.String(), nil, "")
		s.Equal(http.StatusNotFound, rec.Code)
	})

	s.Run("error: 400 for malformed id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/reservations/not-a-uuid", nil, "")
		s.Equal(http.StatusBadRequest, rec.Code)
	})
}
