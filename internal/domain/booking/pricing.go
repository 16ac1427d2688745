package booking

// PricedItem is a hall or service billed by the hour.
type PricedItem struct {
	HourlyRateCents int64
}

// OptionalSelection is an optional service the customer picked. The
// chosen price is the full line amount for that service, not a rate.
type OptionalSelection struct {
	ServiceID        string
	ChosenPriceCents int64
	HourlyRateCents  int64
}

// PricingPolicy resolves the observed asymmetry between optional and
// non-optional service billing. The historical behavior bills optional
// services at the flat chosen amount while non-optional ones are billed
// rate x hours; UniformServiceRates switches optional services to
// rate x hours as well.
type PricingPolicy struct {
	UniformServiceRates bool
}

// Quote is the deterministic total for a reservation request:
// every hall at rate x hours, every non-optional service at rate x hours,
// and every chosen optional service per the policy. Hours are fractional
// and no rounding is applied.
func Quote(
	policy PricingPolicy,
	halls []PricedItem,
	window TimeWindow,
	notOptionalServices []PricedItem,
	chosenOptional []OptionalSelection,
) Money {
	hours := window.Hours()

	var total float64
	for _, hall := range halls {
		total += float64(hall.HourlyRateCents) * hours
	}
	for _, svc := range notOptionalServices {
		total += float64(svc.HourlyRateCents) * hours
	}
	for _, sel := range chosenOptional {
		if policy.UniformServiceRates {
			total += float64(sel.HourlyRateCents) * hours
		} else {
			total += float64(sel.ChosenPriceCents)
		}
	}

	return NewMoneyFromCents(int64(total))
}
