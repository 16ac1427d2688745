package repository

import (
	"context"
	"time"

	"hall-booking/internal/domain/account"
	"hall-booking/internal/domain/booking"
	"hall-booking/internal/infra"
	"hall-booking/internal/infra/db"

	"github.com/google/uuid"
)

// AccountRepository implements the ledger. Balances change only through
// Credit/Debit/CreditSystem; the debit statement re-verifies coverage so
// the advisory pre-check can never push a balance below zero.
type AccountRepository struct{}

func NewAccountRepository() *AccountRepository {
	return &AccountRepository{}
}

// Create enforces the at-most-one-SYSTEM-account predicate at creation
// time (backed by a partial unique index on account_type = 'SYSTEM').
func (r *AccountRepository) Create(ctx context.Context, dbtx db.DBTX, acc *account.CashAccount) (uuid.UUID, error) {
	if acc.IsSystem() {
		var exists bool
		const check = `SELECT EXISTS (SELECT 1 FROM cash_accounts WHERE account_type = 'SYSTEM')`
		if err := dbtx.QueryRow(ctx, check).Scan(&exists); err != nil {
			return uuid.Nil, infra.WrapRepoErr("failed to check for system account", err)
		}
		if exists {
			return uuid.Nil, infra.NewRepoErr(infra.KindDuplicateKey, "system account already exists")
		}
	}

	const q = `
		INSERT INTO cash_accounts (id, balance_cents, account_type)
		VALUES ($1, $2, $3)
		RETURNING id`

	var id uuid.UUID
	err := dbtx.QueryRow(ctx, q, acc.ID(), acc.Balance().Cents(), string(acc.Type())).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create cash account", err)
	}
	return id, nil
}

func (r *AccountRepository) FindByID(ctx context.Context, dbtx db.DBTX, id uuid.UUID) (*account.CashAccount, error) {
	const q = `
		SELECT id, balance_cents, account_type, created_at
		FROM cash_accounts
		WHERE id = $1`

	var (
		accID       uuid.UUID
		balance     int64
		accountType string
		createdAt   time.Time
	)
	err := dbtx.QueryRow(ctx, q, id).Scan(&accID, &balance, &accountType, &createdAt)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find cash account", err)
	}

	return account.ReconstructCashAccount(
		accID,
		booking.NewMoneyFromCents(balance),
		account.Type(accountType),
		createdAt,
	), nil
}

func (r *AccountRepository) Credit(ctx context.Context, dbtx db.DBTX, id uuid.UUID, amount booking.Money) error {
	const q = `UPDATE cash_accounts SET balance_cents = balance_cents + $1 WHERE id = $2`

	tag, err := dbtx.Exec(ctx, q, amount.Cents(), id)
	if err != nil {
		return infra.WrapRepoErr("failed to credit account", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.NewRepoErr(infra.KindNotFound, "cash account not found")
	}
	return nil
}

func (r *AccountRepository) Debit(ctx context.Context, dbtx db.DBTX, id uuid.UUID, amount booking.Money) error {
	const q = `
		UPDATE cash_accounts
		SET balance_cents = balance_cents - $1
		WHERE id = $2 AND balance_cents >= $1`

	tag, err := dbtx.Exec(ctx, q, amount.Cents(), id)
	if err != nil {
		return infra.WrapRepoErr("failed to debit account", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.NewRepoErr(infra.KindCheckViolated, "balance does not cover debit")
	}
	return nil
}

// CreditSystem credits the single SYSTEM account, the sole counterparty
// for payments.
func (r *AccountRepository) CreditSystem(ctx context.Context, dbtx db.DBTX, amount booking.Money) error {
	const q = `UPDATE cash_accounts SET balance_cents = balance_cents + $1 WHERE account_type = 'SYSTEM'`

	tag, err := dbtx.Exec(ctx, q, amount.Cents())
	if err != nil {
		return infra.WrapRepoErr("failed to credit system account", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.NewRepoErr(infra.KindNotFound, "system account does not exist")
	}
	return nil
}
