//go:build unit

package booking_test

import (
	"testing"
	"time"

	"hall-booking/internal/domain/booking"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func window(t *testing.T, start string, hours float64) booking.TimeWindow {
	t.Helper()
	s, err := time.Parse(time.RFC3339, start)
	require.NoError(t, err)
	w, err := booking.NewTimeWindow(s, s.Add(time.Duration(hours*float64(time.Hour))))
	require.NoError(t, err)
	return w
}

func TestQuote(t *testing.T) {
	// Hall at 10/hr for 2h, one non-optional service at 5/hr, one
	// optional service chosen at a flat 8: 10*2 + 5*2 + 8 = 38.
	w := window(t, "2030-05-01T10:00:00Z", 2)

	halls := []booking.PricedItem{{HourlyRateCents: 1000}}
	notOptional := []booking.PricedItem{{HourlyRateCents: 500}}
	chosen := []booking.OptionalSelection{{ChosenPriceCents: 800, HourlyRateCents: 600}}

	total := booking.Quote(booking.PricingPolicy{}, halls, w, notOptional, chosen)
	assert.Equal(t, int64(3800), total.Cents())
}

func TestQuote_UniformServiceRates(t *testing.T) {
	w := window(t, "2030-05-01T10:00:00Z", 2)

	halls := []booking.PricedItem{{HourlyRateCents: 1000}}
	notOptional := []booking.PricedItem{{HourlyRateCents: 500}}
	chosen := []booking.OptionalSelection{{ChosenPriceCents: 800, HourlyRateCents: 600}}

	total := booking.Quote(booking.PricingPolicy{UniformServiceRates: true}, halls, w, notOptional, chosen)
	// Optional service billed 600 * 2 instead of the flat 800.
	assert.Equal(t, int64(4200), total.Cents())
}

func TestQuote_FractionalHours(t *testing.T) {
	w := window(t, "2030-05-01T10:00:00Z", 1.5)

	halls := []booking.PricedItem{{HourlyRateCents: 1000}}
	total := booking.Quote(booking.PricingPolicy{}, halls, w, nil, nil)
	assert.Equal(t, int64(1500), total.Cents())
}

func TestQuote_IsPure(t *testing.T) {
	w := window(t, "2030-05-01T10:00:00Z", 3)
	halls := []booking.PricedItem{{HourlyRateCents: 2500}, {HourlyRateCents: 750}}
	notOptional := []booking.PricedItem{{HourlyRateCents: 300}}
	chosen := []booking.OptionalSelection{{ChosenPriceCents: 1200}}

	first := booking.Quote(booking.PricingPolicy{}, halls, w, notOptional, chosen)
	second := booking.Quote(booking.PricingPolicy{}, halls, w, notOptional, chosen)
	assert.Equal(t, first, second)
}

func TestQuote_EmptyRequestIsZero(t *testing.T) {
	w := window(t, "2030-05-01T10:00:00Z", 2)
	total := booking.Quote(booking.PricingPolicy{}, nil, w, nil, nil)
	assert.False(t, total.IsPositive())
}
