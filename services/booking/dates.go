package booking

import (
	"time"
)

const dateLayout = "2006-01-02"

// maxCalendarDays bounds a single resolve so a malformed range cannot walk
// years of calendar.
const maxCalendarDays = 366

// parseDate parses a "YYYY-MM-DD" date as UTC midnight. Keeping every date
// at UTC midnight makes day arithmetic exact and comparisons safe.
func parseDate(s string) (time.Time, error) {
	return time.ParseInLocation(dateLayout, s, time.UTC)
}

func formatDate(t time.Time) string {
	return t.Format(dateLayout)
}

// parseRange parses a half-open [start, end) date range and validates
// start < end.
func parseRange(startDate, endDate string) (time.Time, time.Time, error) {
	start, err := parseDate(startDate)
	if err != nil {
		return time.Time{}, time.Time{}, newEngineError(CodeInvalidRange, "invalid start date %q", startDate)
	}
	end, err := parseDate(endDate)
	if err != nil {
		return time.Time{}, time.Time{}, newEngineError(CodeInvalidRange, "invalid end date %q", endDate)
	}
	if !start.Before(end) {
		return time.Time{}, time.Time{}, newEngineError(CodeInvalidRange, "start date %s must be before end date %s", startDate, endDate)
	}
	return start, end, nil
}

// nightsBetween counts the nights in [checkIn, checkOut). Both are UTC
// midnights, so the division is exact.
func nightsBetween(checkIn, checkOut time.Time) int {
	return int(checkOut.Sub(checkIn) / (24 * time.Hour))
}

// datesOverlap is the half-open interval overlap test. ISO dates are
// zero-padded, so lexicographic comparison matches date order.
func datesOverlap(aStart, aEnd, bStart, bEnd string) bool {
	return aStart < bEnd && bStart < aEnd
}
