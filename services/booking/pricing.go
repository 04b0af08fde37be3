package booking

import (
	"stayhub/models"
)

// TaxPolicy computes the tax amount for a stay. The rate schedule is
// injected from configuration so jurisdictions can change without engine
// changes.
type TaxPolicy interface {
	// TaxAmount returns the tax in minor units for the given subtotal and
	// fees (cleaning + service), also in minor units.
	TaxAmount(subtotal, fees int64) int64
}

// FlatTaxPolicy taxes the pre-tax amount at a single basis-point rate.
type FlatTaxPolicy struct {
	RateBps int64
}

func (p FlatTaxPolicy) TaxAmount(subtotal, fees int64) int64 {
	return (subtotal + fees) * p.RateBps / 10000
}

// Quote computes the deterministic price breakdown for a candidate stay.
// All arithmetic is on int64 minor units; identical inputs over unchanged
// state always yield an identical breakdown.
func (e *DefaultBookingEngine) Quote(propertyID, checkIn, checkOut string) (*models.PriceBreakdown, error) {
	prop, err := e.getProperty(propertyID)
	if err != nil {
		return nil, err
	}

	start, end, err := parseRange(checkIn, checkOut)
	if err != nil {
		return nil, err
	}
	nights := nightsBetween(start, end)

	days, err := e.ResolveCalendar(propertyID, checkIn, checkOut)
	if err != nil {
		return nil, err
	}

	var subtotal int64
	for _, day := range days {
		if !day.IsAvailable {
			return nil, newEngineError(CodeUnavailable, "property %s is not available on %s", propertyID, day.Date)
		}
		subtotal += day.Price
	}

	feeBps := prop.ServiceFeeBps
	if feeBps == 0 {
		feeBps = e.DefaultServiceFeeBps
	}
	serviceFee := subtotal * feeBps / 10000

	var taxes int64
	if e.Tax != nil {
		taxes = e.Tax.TaxAmount(subtotal, prop.CleaningFee+serviceFee)
	}

	return &models.PriceBreakdown{
		NumNights:   nights,
		Subtotal:    subtotal,
		CleaningFee: prop.CleaningFee,
		ServiceFee:  serviceFee,
		Taxes:       taxes,
		Total:       subtotal + prop.CleaningFee + serviceFee + taxes,
		Currency:    prop.Currency,
	}, nil
}
