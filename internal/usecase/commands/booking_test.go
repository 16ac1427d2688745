//go:build unit

package commands_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"hall-booking/internal/domain/booking"
	"hall-booking/internal/domain/catalog"
	"hall-booking/internal/pkg/clock"
	"hall-booking/internal/pkg/keylock"
	"hall-booking/internal/usecase/commands"
	"hall-booking/tests/common/builder"
	commandsmock "hall-booking/tests/mock/commands"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type BookingCommandsTestSuite struct {
	suite.Suite
	mockCtrl         *gomock.Controller
	mockReservations *commandsmock.MockReservationRepository
	mockCatalog      *commandsmock.MockCatalogRepository
	mockAvailability *commandsmock.MockAvailabilityReader
	mockPublisher    *commandsmock.MockEventPublisher
	clock            *clock.MockClock
	bookings         commands.BookingCommands
}

func (s *BookingCommandsTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockReservations = commandsmock.NewMockReservationRepository(s.mockCtrl)
	s.mockCatalog = commandsmock.NewMockCatalogRepository(s.mockCtrl)
	s.mockAvailability = commandsmock.NewMockAvailabilityReader(s.mockCtrl)
	s.mockPublisher = commandsmock.NewMockEventPublisher(s.mockCtrl)
	s.clock = clock.NewMockClock(builder.BaseTime)

	s.bookings = commands.NewBookingCommands(
		passthroughTx{},
		s.mockReservations,
		s.mockCatalog,
		commands.NewConflictDetector(s.mockAvailability),
		keylock.New(),
		s.mockPublisher,
		s.clock,
		commands.BookingPolicy{RejectPastStart: true},
	)
}

func (s *BookingCommandsTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestBookingCommandsSuite(t *testing.T) {
	suite.Run(t, new(BookingCommandsTestSuite))
}

func (s *BookingCommandsTestSuite) expectCatalogLoad(params commands.CreateReservationParams, rateCents int64) {
	halls := make([]*catalog.Hall, 0, len(params.HallIDs))
	for _, id := range params.HallIDs {
		halls = append(halls, catalog.ReconstructHall(id, "hall", "basketball", booking.NewMoneyFromCents(rateCents), 30))
	}
	s.mockCatalog.EXPECT().HallsByIDs(gomock.Any(), gomock.Any(), params.HallIDs).Return(halls, nil)
	s.mockCatalog.EXPECT().NotOptionalServices(gomock.Any(), gomock.Any()).Return(nil, nil)
	s.mockCatalog.EXPECT().ServicesByIDs(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)
}

func (s *BookingCommandsTestSuite) TestCreateReservation() {
	s.Run("success: writes reservation, assignment and publishes event", func() {
		params := builder.NewReservationParamsBuilder().Build()
		hallID := params.HallIDs[0]
		resID := uuid.New()

		s.expectCatalogLoad(params, 1500)
		s.mockAvailability.EXPECT().FreeHalls(gomock.Any(), gomock.Any(), params.Window).
			Return(map[uuid.UUID]struct{}{hallID: {}}, nil)
		s.mockReservations.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ any, res *booking.Reservation) (uuid.UUID, error) {
				s.Equal(int64(3000), res.TotalPrice().Cents()) // 1500 cents/h x 2h
				s.Equal(booking.StatusCreated, res.Status())
				return resID, nil
			})
		s.mockReservations.EXPECT().AddHallAssignment(gomock.Any(), gomock.Any(),
			booking.HallAssignment{ReservationID: resID, HallID: hallID}).Return(nil)
		s.mockPublisher.EXPECT().ReservationCreated(gomock.Any(), gomock.Any())

		id, err := s.bookings.CreateReservation(context.Background(), params)
		s.NoError(err)
		s.Equal(resID, id)
	})

	s.Run("error: conflict names the taken hall and writes nothing", func() {
		params := builder.NewReservationParamsBuilder().Build()

		s.expectCatalogLoad(params, 1500)
		s.mockAvailability.EXPECT().FreeHalls(gomock.Any(), gomock.Any(), params.Window).
			Return(map[uuid.UUID]struct{}{}, nil)

		_, err := s.bookings.CreateReservation(context.Background(), params)
		s.ErrorIs(err, commands.ErrHallUnavailable)

		var conflict *commands.ConflictError
		s.True(errors.As(err, &conflict))
		s.Equal(params.HallIDs[0], conflict.HallID)
	})

	s.Run("error: first missing hall is reported when several requested", func() {
		firstHall := uuid.New()
		secondHall := uuid.New()
		params := builder.NewReservationParamsBuilder().WithHallIDs(firstHall, secondHall).Build()

		s.expectCatalogLoad(params, 1500)
		// Only the second hall is free.
		s.mockAvailability.EXPECT().FreeHalls(gomock.Any(), gomock.Any(), params.Window).
			Return(map[uuid.UUID]struct{}{secondHall: {}}, nil)

		_, err := s.bookings.CreateReservation(context.Background(), params)

		var conflict *commands.ConflictError
		s.True(errors.As(err, &conflict))
		s.Equal(firstHall, conflict.HallID)
	})

	s.Run("error: no halls requested", func() {
		params := builder.NewReservationParamsBuilder().Build()
		params.HallIDs = nil

		_, err := s.bookings.CreateReservation(context.Background(), params)
		s.ErrorIs(err, commands.ErrNoHallsRequested)
	})

	s.Run("error: window starting in the past is rejected", func() {
		params := builder.NewReservationParamsBuilder().
			WithWindow(builder.BaseTime.Add(-2*time.Hour), builder.BaseTime.Add(-time.Hour)).
			Build()

		_, err := s.bookings.CreateReservation(context.Background(), params)
		s.ErrorIs(err, commands.ErrInvalidWindow)
	})

	s.Run("error: unknown hall id", func() {
		params := builder.NewReservationParamsBuilder().Build()

		s.mockCatalog.EXPECT().HallsByIDs(gomock.Any(), gomock.Any(), params.HallIDs).Return(nil, nil)

		_, err := s.bookings.CreateReservation(context.Background(), params)
		s.ErrorIs(err, commands.ErrHallNotFound)
	})

	s.Run("error: unknown optional service id", func() {
		serviceID := uuid.New()
		b := builder.NewReservationParamsBuilder().WithOptionalService(serviceID, 800)
		params := b.Build()
		hallID := params.HallIDs[0]

		halls := []*catalog.Hall{catalog.ReconstructHall(hallID, "hall", "tennis", booking.NewMoneyFromCents(1500), 10)}
		s.mockCatalog.EXPECT().HallsByIDs(gomock.Any(), gomock.Any(), params.HallIDs).Return(halls, nil)
		s.mockCatalog.EXPECT().NotOptionalServices(gomock.Any(), gomock.Any()).Return(nil, nil)
		s.mockCatalog.EXPECT().ServicesByIDs(gomock.Any(), gomock.Any(), []uuid.UUID{serviceID}).Return(nil, nil)

		_, err := s.bookings.CreateReservation(context.Background(), params)
		s.ErrorIs(err, commands.ErrServiceNotFound)
	})

	s.Run("error: zero-rate catalog yields non-positive price", func() {
		params := builder.NewReservationParamsBuilder().Build()

		s.expectCatalogLoad(params, 0)

		_, err := s.bookings.CreateReservation(context.Background(), params)
		s.ErrorIs(err, commands.ErrPriceNotPositive)
	})

	s.Run("success: non-optional services are billed as integer hours", func() {
		params := builder.NewReservationParamsBuilder().Build()
		hallID := params.HallIDs[0]
		serviceID := uuid.New()
		resID := uuid.New()

		halls := []*catalog.Hall{catalog.ReconstructHall(hallID, "hall", "volleyball", booking.NewMoneyFromCents(1000), 20)}
		services := []*catalog.Service{catalog.ReconstructService(serviceID, "lighting", booking.NewMoneyFromCents(500), false)}
		s.mockCatalog.EXPECT().HallsByIDs(gomock.Any(), gomock.Any(), params.HallIDs).Return(halls, nil)
		s.mockCatalog.EXPECT().NotOptionalServices(gomock.Any(), gomock.Any()).Return(services, nil)
		s.mockCatalog.EXPECT().ServicesByIDs(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)

		s.mockAvailability.EXPECT().FreeHalls(gomock.Any(), gomock.Any(), params.Window).
			Return(map[uuid.UUID]struct{}{hallID: {}}, nil)
		s.mockReservations.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ any, res *booking.Reservation) (uuid.UUID, error) {
				s.Equal(int64(3000), res.TotalPrice().Cents()) // hall 2000 + service 1000
				return resID, nil
			})
		s.mockReservations.EXPECT().AddServiceLine(gomock.Any(), gomock.Any(),
			booking.ServiceLine{ReservationID: resID, ServiceID: serviceID, Hours: 2}).Return(nil)
		s.mockReservations.EXPECT().AddHallAssignment(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		s.mockPublisher.EXPECT().ReservationCreated(gomock.Any(), gomock.Any())

		id, err := s.bookings.CreateReservation(context.Background(), params)
		s.NoError(err)
		s.Equal(resID, id)
	})
}

func (s *BookingCommandsTestSuite) TestCancelReservation() {
	s.Run("success: cancellation releases the halls via status", func() {
		resID := uuid.New()
		s.mockReservations.EXPECT().SetStatus(gomock.Any(), gomock.Any(), resID, booking.StatusCancelled).Return(nil)

		s.NoError(s.bookings.CancelReservation(context.Background(), resID))
	})
}
