//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"hall-booking/internal/domain/account"
	"hall-booking/internal/domain/booking"
	"hall-booking/internal/infra"
	"hall-booking/internal/pkg/clock"
	"hall-booking/internal/pkg/keylock"
	"hall-booking/internal/usecase/commands"
	"hall-booking/tests/common/builder"
	commandsmock "hall-booking/tests/mock/commands"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type SettlementCommandsTestSuite struct {
	suite.Suite
	mockCtrl         *gomock.Controller
	mockReservations *commandsmock.MockReservationRepository
	mockAccounts     *commandsmock.MockAccountRepository
	mockPayments     *commandsmock.MockPaymentRepository
	mockPublisher    *commandsmock.MockEventPublisher
	settlements      commands.SettlementCommands

	reservationID uuid.UUID
	accountID     uuid.UUID
}

func (s *SettlementCommandsTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockReservations = commandsmock.NewMockReservationRepository(s.mockCtrl)
	s.mockAccounts = commandsmock.NewMockAccountRepository(s.mockCtrl)
	s.mockPayments = commandsmock.NewMockPaymentRepository(s.mockCtrl)
	s.mockPublisher = commandsmock.NewMockEventPublisher(s.mockCtrl)

	s.settlements = commands.NewSettlementCommands(
		passthroughTx{},
		s.mockReservations,
		s.mockAccounts,
		s.mockPayments,
		keylock.New(),
		s.mockPublisher,
		clock.NewMockClock(builder.BaseTime),
	)

	s.reservationID = uuid.New()
	s.accountID = uuid.New()
}

func (s *SettlementCommandsTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestSettlementCommandsSuite(t *testing.T) {
	suite.Run(t, new(SettlementCommandsTestSuite))
}

func (s *SettlementCommandsTestSuite) customerAccount(balanceCents int64) *account.CashAccount {
	return account.ReconstructCashAccount(
		s.accountID, booking.NewMoneyFromCents(balanceCents), account.TypeCustomer, time.Now())
}

func (s *SettlementCommandsTestSuite) TestSettle() {
	amount := booking.NewMoneyFromCents(3000)

	s.Run("success: payment, transfer and confirmation", func() {
		paymentID := uuid.New()

		s.mockPayments.EXPECT().ExistsForReservation(gomock.Any(), gomock.Any(), s.reservationID).Return(false, nil)
		s.mockAccounts.EXPECT().FindByID(gomock.Any(), gomock.Any(), s.accountID).Return(s.customerAccount(5000), nil)
		s.mockPayments.EXPECT().Create(gomock.Any(), gomock.Any(), s.reservationID, amount).Return(paymentID, nil)
		s.mockAccounts.EXPECT().Debit(gomock.Any(), gomock.Any(), s.accountID, amount).Return(nil)
		s.mockAccounts.EXPECT().CreditSystem(gomock.Any(), gomock.Any(), amount).Return(nil)
		s.mockReservations.EXPECT().SetStatus(gomock.Any(), gomock.Any(), s.reservationID, booking.StatusConfirmed).Return(nil)
		s.mockPublisher.EXPECT().ReservationConfirmed(gomock.Any(), gomock.Any())

		s.NoError(s.settlements.Settle(context.Background(), s.reservationID, s.accountID, amount))
	})

	s.Run("error: non-positive amount", func() {
		err := s.settlements.Settle(context.Background(), s.reservationID, s.accountID, booking.NewMoneyFromCents(0))
		s.ErrorIs(err, commands.ErrInvalidAmount)
	})

	s.Run("error: already settled reservation", func() {
		s.mockPayments.EXPECT().ExistsForReservation(gomock.Any(), gomock.Any(), s.reservationID).Return(true, nil)

		err := s.settlements.Settle(context.Background(), s.reservationID, s.accountID, amount)
		s.ErrorIs(err, commands.ErrAlreadySettled)
	})

	s.Run("error: unknown account", func() {
		s.mockPayments.EXPECT().ExistsForReservation(gomock.Any(), gomock.Any(), s.reservationID).Return(false, nil)
		s.mockAccounts.EXPECT().FindByID(gomock.Any(), gomock.Any(), s.accountID).
			Return(nil, infra.NewRepoErr(infra.KindNotFound, "account not found"))

		err := s.settlements.Settle(context.Background(), s.reservationID, s.accountID, amount)
		s.ErrorIs(err, commands.ErrAccountNotFound)
	})

	s.Run("error: insufficient funds leave no payment behind", func() {
		s.mockPayments.EXPECT().ExistsForReservation(gomock.Any(), gomock.Any(), s.reservationID).Return(false, nil)
		s.mockAccounts.EXPECT().FindByID(gomock.Any(), gomock.Any(), s.accountID).Return(s.customerAccount(100), nil)

		err := s.settlements.Settle(context.Background(), s.reservationID, s.accountID, amount)
		s.ErrorIs(err, commands.ErrInsufficientFunds)
	})

	s.Run("error: failed transfer compensates the payment", func() {
		paymentID := uuid.New()

		s.mockPayments.EXPECT().ExistsForReservation(gomock.Any(), gomock.Any(), s.reservationID).Return(false, nil)
		s.mockAccounts.EXPECT().FindByID(gomock.Any(), gomock.Any(), s.accountID).Return(s.customerAccount(5000), nil)
		s.mockPayments.EXPECT().Create(gomock.Any(), gomock.Any(), s.reservationID, amount).Return(paymentID, nil)
		s.mockAccounts.EXPECT().Debit(gomock.Any(), gomock.Any(), s.accountID, amount).
			Return(infra.NewRepoErr(infra.KindCheckViolated, "balance does not cover debit"))
		s.mockPayments.EXPECT().Delete(gomock.Any(), gomock.Any(), paymentID).Return(nil)

		err := s.settlements.Settle(context.Background(), s.reservationID, s.accountID, amount)
		s.ErrorIs(err, commands.ErrTransferFailed)
	})

	s.Run("error: confirmation failure after transfer is fatal", func() {
		paymentID := uuid.New()

		s.mockPayments.EXPECT().ExistsForReservation(gomock.Any(), gomock.Any(), s.reservationID).Return(false, nil)
		s.mockAccounts.EXPECT().FindByID(gomock.Any(), gomock.Any(), s.accountID).Return(s.customerAccount(5000), nil)
		s.mockPayments.EXPECT().Create(gomock.Any(), gomock.Any(), s.reservationID, amount).Return(paymentID, nil)
		s.mockAccounts.EXPECT().Debit(gomock.Any(), gomock.Any(), s.accountID, amount).Return(nil)
		s.mockAccounts.EXPECT().CreditSystem(gomock.Any(), gomock.Any(), amount).Return(nil)
		s.mockReservations.EXPECT().SetStatus(gomock.Any(), gomock.Any(), s.reservationID, booking.StatusConfirmed).
			Return(infra.NewRepoErr(infra.KindDBFailure, "update failed"))

		// Funds already moved; the payment must NOT be deleted.
		err := s.settlements.Settle(context.Background(), s.reservationID, s.accountID, amount)
		s.ErrorIs(err, commands.ErrSettlementInconsistent)
	})
}
