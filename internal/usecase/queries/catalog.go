package queries

import (
	"context"

	"github.com/google/uuid"
)

type HallView struct {
	ID              uuid.UUID `json:"id"`
	Name            string    `json:"name"`
	SportType       string    `json:"sport_type"`
	HourlyRateCents int64     `json:"hourly_rate_cents"`
	Capacity        int       `json:"capacity"`
}

type ServiceView struct {
	ID              uuid.UUID `json:"id"`
	Name            string    `json:"name"`
	HourlyRateCents int64     `json:"hourly_rate_cents"`
	Optional        bool      `json:"optional"`
}

type CatalogQueries interface {
	ListHalls(ctx context.Context) ([]*HallView, error)
	ListServices(ctx context.Context) ([]*ServiceView, error)
}

type CatalogViewRepo interface {
	FindAllHalls(ctx context.Context) ([]*HallView, error)
	FindAllServices(ctx context.Context) ([]*ServiceView, error)
}

type catalogQueriesImpl struct {
	repo CatalogViewRepo
}

func NewCatalogQueries(repo CatalogViewRepo) CatalogQueries {
	return &catalogQueriesImpl{repo: repo}
}

func (q *catalogQueriesImpl) ListHalls(ctx context.Context) ([]*HallView, error) {
	return q.repo.FindAllHalls(ctx)
}

func (q *catalogQueriesImpl) ListServices(ctx context.Context) ([]*ServiceView, error) {
	return q.repo.FindAllServices(ctx)
}
