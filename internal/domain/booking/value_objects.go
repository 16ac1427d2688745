package booking

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrInvalidWindow = errors.New("invalid time window")
	ErrPastStart     = errors.New("start time is in the past")
)

// TimeWindow is the half-open interval [start, end) a reservation
// occupies its halls for.
type TimeWindow struct {
	start time.Time
	end   time.Time
}

func NewTimeWindow(start, end time.Time) (TimeWindow, error) {
	if !start.Before(end) {
		return TimeWindow{}, ErrInvalidWindow
	}
	return TimeWindow{start: start, end: end}, nil
}

func (w TimeWindow) Start() time.Time {
	return w.start
}

func (w TimeWindow) End() time.Time {
	return w.end
}

func (w TimeWindow) Duration() time.Duration {
	return w.end.Sub(w.start)
}

// Hours returns the fractional duration used for pricing. No rounding
// happens here; rounding belongs to the currency-formatting boundary.
func (w TimeWindow) Hours() float64 {
	return w.Duration().Hours()
}

// BillableHours is the integer hour count written to service lines.
func (w TimeWindow) BillableHours() int {
	return int(w.Duration() / time.Hour)
}

// Overlaps implements the half-open interval test:
// existing.start < other.end AND existing.end > other.start.
func (w TimeWindow) Overlaps(other TimeWindow) bool {
	return w.start.Before(other.end) && w.end.After(other.start)
}

// ValidateStartAt rejects windows starting before now when the
// reject-past-start policy is enabled.
func (w TimeWindow) ValidateStartAt(now time.Time, rejectPastStart bool) error {
	if rejectPastStart && w.start.Before(now) {
		return ErrPastStart
	}
	return nil
}

func (w TimeWindow) String() string {
	return fmt.Sprintf("[%s,%s)", w.start.Format(time.RFC3339), w.end.Format(time.RFC3339))
}

// Money is an amount in cents.
type Money int64

func NewMoneyFromCents(cents int64) Money {
	return Money(cents)
}

func (m Money) Cents() int64 {
	return int64(m)
}

func (m Money) Add(other Money) Money {
	return m + other
}

func (m Money) IsPositive() bool {
	return m > 0
}

func (m Money) IsNegative() bool {
	return m < 0
}
