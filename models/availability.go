package models

import "time"

// AvailabilityDay is a host-set override for a single calendar day.
// Days with no record fall back to the property defaults (available,
// default nightly price).
type AvailabilityDay struct {
	ID          string    `bson:"id" json:"id"`
	PropertyID  string    `bson:"property_id" json:"propertyId"`
	Date        string    `bson:"date" json:"date"` // "YYYY-MM-DD"
	IsAvailable bool      `bson:"is_available" json:"isAvailable"`
	CustomPrice *int64    `bson:"custom_price,omitempty" json:"customPrice,omitempty"` // minor units; nil = default price
	Note        string    `bson:"note,omitempty" json:"note,omitempty"`
	UpdatedAt   time.Time `bson:"updated_at" json:"updatedAt"`
}

// DayAvailability is one resolved calendar entry: the effective
// availability and nightly price after overrides are applied.
type DayAvailability struct {
	Date        string `json:"date"`
	IsAvailable bool   `json:"isAvailable"`
	Price       int64  `json:"price"`
}

// AvailabilityDayInput is one entry of a bulk set-availability request.
type AvailabilityDayInput struct {
	Date        string `json:"date" binding:"required"`
	IsAvailable bool   `json:"isAvailable"`
	CustomPrice *int64 `json:"customPrice,omitempty"`
	Note        string `json:"note,omitempty" binding:"max=255"`
}

// SetAvailabilityInput is the payload accepted by the set-availability
// endpoint (host only).
type SetAvailabilityInput struct {
	Dates []AvailabilityDayInput `json:"dates" binding:"required,min=1,max=365"`
}

// GetAvailabilityQuery are the query parameters of the get-availability
// endpoint. EndDate is exclusive.
type GetAvailabilityQuery struct {
	StartDate string `form:"startDate" binding:"required"`
	EndDate   string `form:"endDate" binding:"required"`
}
