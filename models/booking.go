package models

import "time"

// Booking lifecycle states. Bookings are never deleted, only transitioned.
const (
	BookingStatusPending   = "pending"
	BookingStatusConfirmed = "confirmed"
	BookingStatusCancelled = "cancelled"
	BookingStatusCompleted = "completed"
)

// Payment states carried on the booking record.
const (
	PaymentStatusPending  = "pending"
	PaymentStatusPaid     = "paid"
	PaymentStatusRefunded = "refunded"
	PaymentStatusFailed   = "failed"
)

// ActiveBookingStatuses are the states that occupy calendar dates.
var ActiveBookingStatuses = []string{BookingStatusPending, BookingStatusConfirmed}

// Booking represents a reservation of a property for a half-open date
// interval [CheckInDate, CheckOutDate). Monetary fields are integer minor
// units of Currency.
type Booking struct {
	ID         string `bson:"id" json:"id"`
	PropertyID string `bson:"property_id" json:"propertyId"`
	GuestID    string `bson:"guest_id" json:"guestId"`
	HostID     string `bson:"host_id" json:"hostId"` // denormalized from the property for permission checks

	// Dates in "YYYY-MM-DD"; check-out day itself is not occupied.
	CheckInDate  string `bson:"check_in_date" json:"checkInDate"`
	CheckOutDate string `bson:"check_out_date" json:"checkOutDate"`

	// Guests.
	Adults   int `bson:"adults" json:"adults"`
	Children int `bson:"children" json:"children"`
	Infants  int `bson:"infants" json:"infants"`
	Pets     int `bson:"pets" json:"pets"`

	// Pricing breakdown computed at reservation time.
	NumNights   int    `bson:"num_nights" json:"numNights"`
	Subtotal    int64  `bson:"subtotal" json:"subtotal"`
	CleaningFee int64  `bson:"cleaning_fee" json:"cleaningFee"`
	ServiceFee  int64  `bson:"service_fee" json:"serviceFee"`
	Taxes       int64  `bson:"taxes" json:"taxes"`
	TotalPrice  int64  `bson:"total_price" json:"totalPrice"`
	Currency    string `bson:"currency" json:"currency"`

	// Status.
	Status        string `bson:"status" json:"status"`
	PaymentStatus string `bson:"payment_status" json:"paymentStatus"`

	GuestMessage string `bson:"guest_message,omitempty" json:"guestMessage,omitempty"`

	CreatedAt   time.Time  `bson:"created_at" json:"createdAt"`
	UpdatedAt   time.Time  `bson:"updated_at" json:"updatedAt"`
	CancelledAt *time.Time `bson:"cancelled_at,omitempty" json:"cancelledAt,omitempty"`
}

// IsActive reports whether the booking occupies its date range.
func (b *Booking) IsActive() bool {
	return b.Status == BookingStatusPending || b.Status == BookingStatusConfirmed
}

// CreateBookingInput is the payload accepted by the reserve endpoint.
// Dates must be "YYYY-MM-DD".
type CreateBookingInput struct {
	PropertyID   string `json:"propertyId" binding:"required"`
	CheckInDate  string `json:"checkInDate" binding:"required"`
	CheckOutDate string `json:"checkOutDate" binding:"required"`
	Adults       int    `json:"adults" binding:"required,min=1,max=50"`
	Children     int    `json:"children" binding:"min=0,max=50"`
	Infants      int    `json:"infants" binding:"min=0,max=10"`
	Pets         int    `json:"pets" binding:"min=0,max=10"`
	GuestMessage string `json:"guestMessage,omitempty" binding:"max=1000"`
}

// GuestCount is the number of guests that count against the property's
// capacity (infants and pets are exempt).
func (in *CreateBookingInput) GuestCount() int {
	return in.Adults + in.Children
}

// PriceBreakdown is the deterministic quote for a candidate stay.
type PriceBreakdown struct {
	NumNights   int    `json:"numNights"`
	Subtotal    int64  `json:"subtotal"`
	CleaningFee int64  `json:"cleaningFee"`
	ServiceFee  int64  `json:"serviceFee"`
	Taxes       int64  `json:"taxes"`
	Total       int64  `json:"total"`
	Currency    string `json:"currency"`
}
