package commands

import (
	"context"

	"hall-booking/internal/domain/booking"
	"hall-booking/internal/infra/db"
	"hall-booking/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrHallUnavailable = errs.New("hall unavailable in selected time")

// ConflictError names the first requested hall already taken for the
// window. errors.Is(err, ErrHallUnavailable) matches it.
type ConflictError struct {
	HallID uuid.UUID
}

func (e *ConflictError) Error() string {
	return "hall " + e.HallID.String() + " is unavailable in selected time"
}

func (e *ConflictError) Is(target error) bool {
	return target == ErrHallUnavailable
}

// ConflictDetector is a pure query over hall assignments: no side
// effects, serialization against concurrent writers is the caller's job.
type ConflictDetector struct {
	availability AvailabilityReader
}

func NewConflictDetector(availability AvailabilityReader) *ConflictDetector {
	return &ConflictDetector{availability: availability}
}

// Check walks the requested halls in caller order and reports the first
// one missing from the free set. First-found policy, not most-conflicted.
func (d *ConflictDetector) Check(ctx context.Context, dbtx db.DBTX, requested []uuid.UUID, window booking.TimeWindow) error {
	free, err := d.availability.FreeHalls(ctx, dbtx, window)
	if err != nil {
		return err
	}

	for _, hallID := range requested {
		if _, ok := free[hallID]; !ok {
			return &ConflictError{HallID: hallID}
		}
	}
	return nil
}
