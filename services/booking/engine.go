package booking

import (
	"time"

	bookingRepo "stayhub/database/repository/booking"
	"stayhub/models"
	"stayhub/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Reserve validates and commits a booking request. Validation, conflict
// check, pricing and persistence run under the property's lock so two
// concurrent reserves for overlapping dates cannot both succeed; the
// storage-level overlap re-check in InsertActive backstops multi-node
// deployments. No partial state is ever visible: the call either returns
// a committed booking or changes nothing.
func (e *DefaultBookingEngine) Reserve(guestID string, in models.CreateBookingInput) (*models.Booking, error) {
	logger := utils.GetLogger()

	prop, err := e.getProperty(in.PropertyID)
	if err != nil {
		return nil, err
	}
	if !prop.IsPublished {
		return nil, newEngineError(CodeNotFound, "property %s not found", in.PropertyID)
	}
	if in.GuestCount() > prop.MaxGuests {
		return nil, newEngineError(CodeInvalidRange, "%d guests exceed the property maximum of %d", in.GuestCount(), prop.MaxGuests)
	}

	lock := e.locks.get(prop.ID)
	lock.Lock()
	defer lock.Unlock()

	days, err := e.checkStay(prop, in.CheckInDate, in.CheckOutDate)
	if err != nil {
		return nil, err
	}

	conflict, err := e.HasConflict(prop.ID, in.CheckInDate, in.CheckOutDate, "")
	if err != nil {
		return nil, err
	}
	if conflict {
		return nil, newEngineError(CodeConflict, "dates %s to %s are already booked", in.CheckInDate, in.CheckOutDate)
	}

	quote, err := e.Quote(prop.ID, in.CheckInDate, in.CheckOutDate)
	if err != nil {
		return nil, err
	}

	status := models.BookingStatusPending
	if prop.IsInstantBook {
		status = models.BookingStatusConfirmed
	}
	booking := &models.Booking{
		ID:            uuid.New().String(),
		PropertyID:    prop.ID,
		GuestID:       guestID,
		HostID:        prop.HostID,
		CheckInDate:   in.CheckInDate,
		CheckOutDate:  in.CheckOutDate,
		Adults:        in.Adults,
		Children:      in.Children,
		Infants:       in.Infants,
		Pets:          in.Pets,
		NumNights:     len(days),
		Subtotal:      quote.Subtotal,
		CleaningFee:   quote.CleaningFee,
		ServiceFee:    quote.ServiceFee,
		Taxes:         quote.Taxes,
		TotalPrice:    quote.Total,
		Currency:      quote.Currency,
		Status:        status,
		PaymentStatus: models.PaymentStatusPending,
		GuestMessage:  in.GuestMessage,
	}

	if err := e.Bookings.InsertActive(booking); err != nil {
		if err == bookingRepo.ErrDateConflict {
			return nil, newEngineError(CodeConflict, "dates %s to %s are already booked", in.CheckInDate, in.CheckOutDate)
		}
		return nil, err
	}

	if e.Scheduler != nil {
		var schedErr error
		if booking.Status == models.BookingStatusPending {
			schedErr = e.Scheduler.ScheduleExpiry(booking)
		} else {
			schedErr = e.Scheduler.ScheduleCompletion(booking)
		}
		if schedErr != nil {
			logger.Error("failed to schedule booking lifecycle task",
				zap.String("bookingID", booking.ID), zap.Error(schedErr))
		}
	}

	logger.Info("booking reserved",
		zap.String("bookingID", booking.ID),
		zap.String("propertyID", booking.PropertyID),
		zap.String("status", booking.Status))
	return booking, nil
}

// Cancel transitions a booking to cancelled. Only the guest or the
// property host may cancel, and only from an active state.
func (e *DefaultBookingEngine) Cancel(bookingID, actorID string) (*models.Booking, error) {
	booking, err := e.mustGetBooking(bookingID)
	if err != nil {
		return nil, err
	}
	if actorID != booking.GuestID && actorID != booking.HostID {
		return nil, newEngineError(CodeForbidden, "actor %s may not cancel booking %s", actorID, bookingID)
	}
	if !booking.IsActive() {
		return nil, newEngineError(CodeInvalidState, "booking %s is %s and cannot be cancelled", bookingID, booking.Status)
	}
	return e.Bookings.UpdateStatus(bookingID, models.BookingStatusCancelled, time.Now())
}

// Confirm transitions a pending booking to confirmed. Host only.
func (e *DefaultBookingEngine) Confirm(bookingID, actorID string) (*models.Booking, error) {
	booking, err := e.mustGetBooking(bookingID)
	if err != nil {
		return nil, err
	}
	if actorID != booking.HostID {
		return nil, newEngineError(CodeForbidden, "actor %s may not confirm booking %s", actorID, bookingID)
	}
	if booking.Status != models.BookingStatusPending {
		return nil, newEngineError(CodeInvalidState, "booking %s is %s and cannot be confirmed", bookingID, booking.Status)
	}

	updated, err := e.Bookings.UpdateStatus(bookingID, models.BookingStatusConfirmed, time.Now())
	if err != nil {
		return nil, err
	}
	if e.Scheduler != nil {
		if schedErr := e.Scheduler.ScheduleCompletion(updated); schedErr != nil {
			utils.GetLogger().Error("failed to schedule booking completion",
				zap.String("bookingID", updated.ID), zap.Error(schedErr))
		}
	}
	return updated, nil
}

// Complete transitions a confirmed booking to completed. Invoked by the
// lifecycle worker after the checkout date has passed.
func (e *DefaultBookingEngine) Complete(bookingID string) (*models.Booking, error) {
	booking, err := e.mustGetBooking(bookingID)
	if err != nil {
		return nil, err
	}
	if booking.Status != models.BookingStatusConfirmed {
		return nil, newEngineError(CodeInvalidState, "booking %s is %s and cannot be completed", bookingID, booking.Status)
	}
	return e.Bookings.UpdateStatus(bookingID, models.BookingStatusCompleted, time.Now())
}

// ExpirePending cancels a booking that is still pending past its
// confirmation window. Any other state is left untouched, so the worker
// task is idempotent.
func (e *DefaultBookingEngine) ExpirePending(bookingID string) error {
	booking, err := e.Bookings.GetByID(bookingID)
	if err != nil {
		return err
	}
	if booking == nil || booking.Status != models.BookingStatusPending {
		return nil
	}

	if _, err := e.Bookings.UpdateStatus(bookingID, models.BookingStatusCancelled, time.Now()); err != nil {
		return err
	}
	utils.GetLogger().Info("expired pending booking", zap.String("bookingID", bookingID))
	return nil
}

// GetBooking returns a booking visible to the given actor (its guest or
// the property host).
func (e *DefaultBookingEngine) GetBooking(bookingID, actorID string) (*models.Booking, error) {
	booking, err := e.mustGetBooking(bookingID)
	if err != nil {
		return nil, err
	}
	if actorID != booking.GuestID && actorID != booking.HostID {
		return nil, newEngineError(CodeForbidden, "actor %s may not view booking %s", actorID, bookingID)
	}
	return booking, nil
}

// mustGetBooking fetches a booking or fails with a notFound engine error.
func (e *DefaultBookingEngine) mustGetBooking(id string) (*models.Booking, error) {
	booking, err := e.Bookings.GetByID(id)
	if err != nil {
		return nil, err
	}
	if booking == nil {
		return nil, newEngineError(CodeNotFound, "booking %s not found", id)
	}
	return booking, nil
}
