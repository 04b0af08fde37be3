package models

import "time"

// Property types and room types accepted by the listing endpoints.
var (
	PropertyTypes = []string{"house", "apartment", "guesthouse", "hotel", "cabin", "villa", "cottage", "condo"}
	RoomTypes     = []string{"entire_place", "private_room", "shared_room"}
)

// Property represents a rental listing. All monetary fields are integer
// minor units (cents) of the listing currency.
type Property struct {
	ID          string `bson:"id" json:"id"`
	HostID      string `bson:"host_id" json:"hostId"`
	Title       string `bson:"title" json:"title"`
	Description string `bson:"description" json:"description"`

	PropertyType string `bson:"property_type" json:"propertyType"` // e.g. "house", "apartment"
	RoomType     string `bson:"room_type" json:"roomType"`         // e.g. "entire_place"

	// Location.
	Address    string  `bson:"address" json:"address"`
	City       string  `bson:"city" json:"city"`
	State      string  `bson:"state,omitempty" json:"state,omitempty"`
	Country    string  `bson:"country" json:"country"`
	PostalCode string  `bson:"postal_code,omitempty" json:"postalCode,omitempty"`
	Latitude   float64 `bson:"latitude,omitempty" json:"latitude,omitempty"`
	Longitude  float64 `bson:"longitude,omitempty" json:"longitude,omitempty"`

	// Capacity.
	MaxGuests int `bson:"max_guests" json:"maxGuests"`
	Bedrooms  int `bson:"bedrooms" json:"bedrooms"`
	Beds      int `bson:"beds" json:"beds"`
	Bathrooms int `bson:"bathrooms" json:"bathrooms"`

	// Pricing (minor units).
	PricePerNight int64  `bson:"price_per_night" json:"pricePerNight"`
	CleaningFee   int64  `bson:"cleaning_fee" json:"cleaningFee"`
	ServiceFeeBps int64  `bson:"service_fee_bps" json:"serviceFeeBps"` // basis points of subtotal
	Currency      string `bson:"currency" json:"currency"`

	// Booking rules.
	MinNights    int    `bson:"min_nights" json:"minNights"`
	MaxNights    int    `bson:"max_nights" json:"maxNights"`
	CheckInTime  string `bson:"check_in_time" json:"checkInTime"`   // "15:00"
	CheckOutTime string `bson:"check_out_time" json:"checkOutTime"` // "11:00"

	// Status.
	IsPublished   bool `bson:"is_published" json:"isPublished"`
	IsInstantBook bool `bson:"is_instant_book" json:"isInstantBook"`

	CreatedAt time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt time.Time `bson:"updated_at" json:"updatedAt"`
}

// CreatePropertyInput is the payload accepted when a host creates a listing.
type CreatePropertyInput struct {
	Title        string `json:"title" binding:"required,max=255"`
	Description  string `json:"description" binding:"required,max=5000"`
	PropertyType string `json:"propertyType" binding:"required"`
	RoomType     string `json:"roomType" binding:"required"`

	Address    string  `json:"address" binding:"required,max=255"`
	City       string  `json:"city" binding:"required,max=100"`
	State      string  `json:"state,omitempty" binding:"max=100"`
	Country    string  `json:"country" binding:"required,max=100"`
	PostalCode string  `json:"postalCode,omitempty" binding:"max=20"`
	Latitude   float64 `json:"latitude,omitempty"`
	Longitude  float64 `json:"longitude,omitempty"`

	MaxGuests int `json:"maxGuests" binding:"required,min=1,max=50"`
	Bedrooms  int `json:"bedrooms" binding:"min=0,max=50"`
	Beds      int `json:"beds" binding:"min=0,max=50"`
	Bathrooms int `json:"bathrooms" binding:"min=0,max=50"`

	PricePerNight int64  `json:"pricePerNight" binding:"required,min=1"`
	CleaningFee   int64  `json:"cleaningFee" binding:"min=0"`
	Currency      string `json:"currency,omitempty"`

	MinNights     int    `json:"minNights,omitempty" binding:"min=0,max=365"`
	MaxNights     int    `json:"maxNights,omitempty" binding:"min=0,max=365"`
	CheckInTime   string `json:"checkInTime,omitempty"`
	CheckOutTime  string `json:"checkOutTime,omitempty"`
	IsInstantBook bool   `json:"isInstantBook,omitempty"`
}

// UpdatePropertyInput carries partial listing updates; nil fields are left
// untouched.
type UpdatePropertyInput struct {
	Title         *string `json:"title,omitempty"`
	Description   *string `json:"description,omitempty"`
	PricePerNight *int64  `json:"pricePerNight,omitempty"`
	CleaningFee   *int64  `json:"cleaningFee,omitempty"`
	MinNights     *int    `json:"minNights,omitempty"`
	MaxNights     *int    `json:"maxNights,omitempty"`
	MaxGuests     *int    `json:"maxGuests,omitempty"`
	CheckInTime   *string `json:"checkInTime,omitempty"`
	CheckOutTime  *string `json:"checkOutTime,omitempty"`
	IsPublished   *bool   `json:"isPublished,omitempty"`
	IsInstantBook *bool   `json:"isInstantBook,omitempty"`
}

// PropertySearchParams are the supported listing search filters.
type PropertySearchParams struct {
	City     string `form:"city"`
	Country  string `form:"country"`
	Guests   int    `form:"guests"`
	MinPrice int64  `form:"minPrice"`
	MaxPrice int64  `form:"maxPrice"`
	Type     string `form:"propertyType"`
	RoomType string `form:"roomType"`
	Page     int    `form:"page,default=1"`
	Limit    int    `form:"limit,default=20"`
}
