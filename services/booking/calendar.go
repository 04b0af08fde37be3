package booking

import (
	"stayhub/models"
)

// ResolveCalendar produces one entry per day of [startDate, endDate), in
// ascending date order, merging explicit host overrides with the property
// defaults. An override always wins on availability; its custom price
// applies only when set. The result is a pure function of stored state at
// call time.
func (e *DefaultBookingEngine) ResolveCalendar(propertyID, startDate, endDate string) ([]models.DayAvailability, error) {
	start, end, err := parseRange(startDate, endDate)
	if err != nil {
		return nil, err
	}
	if nightsBetween(start, end) > maxCalendarDays {
		return nil, newEngineError(CodeInvalidRange, "date range exceeds %d days", maxCalendarDays)
	}

	prop, err := e.getProperty(propertyID)
	if err != nil {
		return nil, err
	}

	overrides, err := e.Availability.GetRange(propertyID, startDate, endDate)
	if err != nil {
		return nil, err
	}

	days := make([]models.DayAvailability, 0, nightsBetween(start, end))
	for d := start; d.Before(end); d = d.AddDate(0, 0, 1) {
		day := models.DayAvailability{
			Date:        formatDate(d),
			IsAvailable: true,
			Price:       prop.PricePerNight,
		}
		if ov, ok := overrides[day.Date]; ok {
			day.IsAvailable = ov.IsAvailable
			if ov.CustomPrice != nil {
				day.Price = *ov.CustomPrice
			}
		}
		days = append(days, day)
	}
	return days, nil
}
