// Package catalog holds the hall and service definitions. Both are
// read-only from the booking core's perspective.
package catalog

import (
	"errors"

	"hall-booking/internal/domain/booking"

	"github.com/google/uuid"
)

var (
	ErrInvalidHall    = errors.New("hall needs a name and a positive hourly rate")
	ErrInvalidService = errors.New("service needs a name and a positive hourly rate")
)

type Hall struct {
	id         uuid.UUID
	name       string
	sportType  string
	hourlyRate booking.Money
	capacity   int
}

func NewHall(name, sportType string, hourlyRate booking.Money, capacity int) (*Hall, error) {
	if name == "" || !hourlyRate.IsPositive() {
		return nil, ErrInvalidHall
	}
	return &Hall{
		id:         uuid.New(),
		name:       name,
		sportType:  sportType,
		hourlyRate: hourlyRate,
		capacity:   capacity,
	}, nil
}

func ReconstructHall(id uuid.UUID, name, sportType string, hourlyRate booking.Money, capacity int) *Hall {
	return &Hall{
		id:         id,
		name:       name,
		sportType:  sportType,
		hourlyRate: hourlyRate,
		capacity:   capacity,
	}
}

func (h *Hall) ID() uuid.UUID             { return h.id }
func (h *Hall) Name() string              { return h.name }
func (h *Hall) SportType() string         { return h.sportType }
func (h *Hall) HourlyRate() booking.Money { return h.hourlyRate }
func (h *Hall) Capacity() int             { return h.capacity }

type Service struct {
	id         uuid.UUID
	name       string
	hourlyRate booking.Money
	optional   bool
}

func NewService(name string, hourlyRate booking.Money, optional bool) (*Service, error) {
	if name == "" || !hourlyRate.IsPositive() {
		return nil, ErrInvalidService
	}
	return &Service{
		id:         uuid.New(),
		name:       name,
		hourlyRate: hourlyRate,
		optional:   optional,
	}, nil
}

func ReconstructService(id uuid.UUID, name string, hourlyRate booking.Money, optional bool) *Service {
	return &Service{
		id:         id,
		name:       name,
		hourlyRate: hourlyRate,
		optional:   optional,
	}
}

func (s *Service) ID() uuid.UUID             { return s.id }
func (s *Service) Name() string              { return s.name }
func (s *Service) HourlyRate() booking.Money { return s.hourlyRate }
func (s *Service) IsOptional() bool          { return s.optional }
