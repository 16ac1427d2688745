package commands

import (
	"context"
	"log/slog"

	"hall-booking/internal/domain/booking"
	"hall-booking/internal/events"
	"hall-booking/internal/infra/db"
	"hall-booking/internal/pkg/clock"
	"hall-booking/internal/pkg/errs"
	"hall-booking/internal/pkg/keylock"

	"github.com/google/uuid"
)

var (
	ErrInvalidAmount           = errs.New("payment amount must be positive")
	ErrAccountNotFound         = errs.New("account not found")
	ErrInsufficientFunds       = errs.New("insufficient funds on customer's account")
	ErrAlreadySettled          = errs.New("reservation already has a payment")
	ErrPaymentFailed           = errs.New("payment not created")
	ErrTransferFailed          = errs.New("fund transfer failed")
	ErrSettlementInconsistent  = errs.New("payment and transfer succeeded but reservation was not confirmed; manual reconciliation required")
)

type SettlementCommands interface {
	Settle(ctx context.Context, reservationID, accountID uuid.UUID, amount booking.Money) error
}

// settlementCommandsImpl converts a CREATED reservation into CONFIRMED by
// recording the payment and moving funds to the system account. The
// account lock is held across the balance check and the debit so
// concurrent settlements cannot over-withdraw. The payment insert commits
// on its own; if the transfer then fails the payment is compensated away.
type settlementCommandsImpl struct {
	tx           TxManager
	reservations ReservationRepository
	accounts     AccountRepository
	payments     PaymentRepository
	accountLocks *keylock.KeyLock
	publisher    EventPublisher
	clock        clock.Clock
}

func NewSettlementCommands(
	tx TxManager,
	reservations ReservationRepository,
	accounts AccountRepository,
	payments PaymentRepository,
	accountLocks *keylock.KeyLock,
	publisher EventPublisher,
	clk clock.Clock,
) SettlementCommands {
	return &settlementCommandsImpl{
		tx:           tx,
		reservations: reservations,
		accounts:     accounts,
		payments:     payments,
		accountLocks: accountLocks,
		publisher:    publisher,
		clock:        clk,
	}
}

func (s *settlementCommandsImpl) Settle(ctx context.Context, reservationID, accountID uuid.UUID, amount booking.Money) error {
	if !amount.IsPositive() {
		return ErrInvalidAmount
	}

	unlock := s.accountLocks.Lock(accountID)
	defer unlock()

	if err := s.guardAndCheckBalance(ctx, reservationID, accountID, amount); err != nil {
		return err
	}

	var paymentID uuid.UUID
	err := s.tx.WithDB(ctx, func(ctx context.Context, dbtx db.DBTX) error {
		id, createErr := s.payments.Create(ctx, dbtx, reservationID, amount)
		if createErr != nil {
			return errs.Mark(createErr, ErrPaymentFailed)
		}
		paymentID = id
		return nil
	})
	if err != nil {
		return err
	}

	if err := s.transfer(ctx, accountID, amount); err != nil {
		s.compensatePayment(ctx, paymentID)
		return errs.Mark(err, ErrTransferFailed)
	}

	// Funds have moved; a failure past this point cannot be compensated
	// and is surfaced as a fatal inconsistency instead.
	err = s.tx.WithDB(ctx, func(ctx context.Context, dbtx db.DBTX) error {
		return s.reservations.SetStatus(ctx, dbtx, reservationID, booking.StatusConfirmed)
	})
	if err != nil {
		slog.Error("reservation not confirmed after successful transfer",
			"reservation_id", reservationID,
			"payment_id", paymentID,
			"error", err.Error())
		return errs.Mark(err, ErrSettlementInconsistent)
	}

	s.publisher.ReservationConfirmed(ctx, events.ReservationConfirmed{
		ReservationID: reservationID,
		PaymentID:     paymentID,
		AccountID:     accountID,
		AmountCents:   amount.Cents(),
		PaidAt:        s.clock.Now(),
	})

	return nil
}

// guardAndCheckBalance enforces at-most-once settlement and the advisory
// balance pre-check, before anything is written.
func (s *settlementCommandsImpl) guardAndCheckBalance(ctx context.Context, reservationID, accountID uuid.UUID, amount booking.Money) error {
	return s.tx.WithDB(ctx, func(ctx context.Context, dbtx db.DBTX) error {
		settled, err := s.payments.ExistsForReservation(ctx, dbtx, reservationID)
		if err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		if settled {
			return ErrAlreadySettled
		}

		acc, err := s.accounts.FindByID(ctx, dbtx, accountID)
		if err != nil {
			return errs.Mark(err, ErrAccountNotFound)
		}
		if !acc.CanCover(amount) {
			return ErrInsufficientFunds
		}
		return nil
	})
}

// transfer debits the customer account and credits the single SYSTEM
// account in one transaction, so the paired movement is atomic.
func (s *settlementCommandsImpl) transfer(ctx context.Context, accountID uuid.UUID, amount booking.Money) error {
	return s.tx.Within(ctx, func(ctx context.Context, dbtx db.DBTX) error {
		if err := s.accounts.Debit(ctx, dbtx, accountID, amount); err != nil {
			return err
		}
		return s.accounts.CreditSystem(ctx, dbtx, amount)
	})
}

func (s *settlementCommandsImpl) compensatePayment(ctx context.Context, paymentID uuid.UUID) {
	err := s.tx.WithDB(ctx, func(ctx context.Context, dbtx db.DBTX) error {
		return s.payments.Delete(ctx, dbtx, paymentID)
	})
	if err != nil {
		slog.Error("failed to delete payment while compensating a failed transfer",
			"payment_id", paymentID,
			"error", err.Error())
	}
}
