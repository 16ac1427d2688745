package queries

import (
	"context"

	"github.com/google/uuid"
)

type CustomerBalanceView struct {
	CustomerID   uuid.UUID `json:"customer_id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	AccountID    uuid.UUID `json:"account_id"`
	BalanceCents int64     `json:"balance_cents"`
}

type CustomerQueries interface {
	ListWithBalances(ctx context.Context) ([]*CustomerBalanceView, error)
}

type CustomerViewRepo interface {
	FindAllWithBalances(ctx context.Context) ([]*CustomerBalanceView, error)
}

type customerQueriesImpl struct {
	repo CustomerViewRepo
}

func NewCustomerQueries(repo CustomerViewRepo) CustomerQueries {
	return &customerQueriesImpl{repo: repo}
}

func (q *customerQueriesImpl) ListWithBalances(ctx context.Context) ([]*CustomerBalanceView, error) {
	return q.repo.FindAllWithBalances(ctx)
}
