package booking

import (
	"sync"
	"testing"

	"stayhub/models"
)

func TestReserveSuccess(t *testing.T) {
	engine, _, _, sched := newTestEngine(testProperty())

	booking, err := engine.Reserve("guest-1", stayInput("prop-1", "2026-03-01", "2026-03-03"))
	if err != nil {
		t.Fatalf("Reserve failed: %v", err)
	}

	if booking.Status != models.BookingStatusPending {
		t.Fatalf("expected pending status, got %s", booking.Status)
	}
	if booking.HostID != "host-1" {
		t.Fatalf("expected host id denormalized onto booking, got %s", booking.HostID)
	}
	if booking.NumNights != 2 {
		t.Fatalf("expected 2 nights, got %d", booking.NumNights)
	}
	if booking.TotalPrice != 25920 {
		t.Fatalf("expected total 25920, got %d", booking.TotalPrice)
	}
	if len(sched.expiries) != 1 || sched.expiries[0] != booking.ID {
		t.Fatalf("expected an expiry task for the pending booking, got %v", sched.expiries)
	}
}

func TestReserveInstantBookConfirms(t *testing.T) {
	prop := testProperty()
	prop.IsInstantBook = true
	engine, _, _, sched := newTestEngine(prop)

	booking, err := engine.Reserve("guest-1", stayInput("prop-1", "2026-03-01", "2026-03-03"))
	if err != nil {
		t.Fatalf("Reserve failed: %v", err)
	}
	if booking.Status != models.BookingStatusConfirmed {
		t.Fatalf("expected instant book to confirm, got %s", booking.Status)
	}
	if len(sched.completions) != 1 {
		t.Fatalf("expected a completion task for the confirmed booking, got %v", sched.completions)
	}
}

func TestReserveConflict(t *testing.T) {
	engine, _, _, _ := newTestEngine(testProperty())

	if _, err := engine.Reserve("guest-1", stayInput("prop-1", "2026-03-01", "2026-03-05")); err != nil {
		t.Fatalf("first Reserve failed: %v", err)
	}
	_, err := engine.Reserve("guest-2", stayInput("prop-1", "2026-03-03", "2026-03-07"))
	if ErrCode(err) != CodeConflict {
		t.Fatalf("expected conflict, got %v", err)
	}
}

func TestReserveBackToBackStays(t *testing.T) {
	engine, _, _, _ := newTestEngine(testProperty())

	if _, err := engine.Reserve("guest-1", stayInput("prop-1", "2026-03-01", "2026-03-05")); err != nil {
		t.Fatalf("first Reserve failed: %v", err)
	}
	// Check-in on the previous guest's checkout day is allowed.
	if _, err := engine.Reserve("guest-2", stayInput("prop-1", "2026-03-05", "2026-03-08")); err != nil {
		t.Fatalf("back-to-back Reserve failed: %v", err)
	}
}

func TestReserveBlockedDay(t *testing.T) {
	engine, _, avail, _ := newTestEngine(testProperty())
	avail.overrides["2026-03-02"] = models.AvailabilityDay{
		PropertyID: "prop-1",
		Date:       "2026-03-02",
	}

	_, err := engine.Reserve("guest-1", stayInput("prop-1", "2026-03-01", "2026-03-03"))
	if ErrCode(err) != CodeUnavailable {
		t.Fatalf("expected unavailable, got %v", err)
	}
}

func TestReserveNightBounds(t *testing.T) {
	engine, _, _, _ := newTestEngine(testProperty())

	_, err := engine.Reserve("guest-1", stayInput("prop-1", "2026-03-01", "2026-03-02"))
	if ErrCode(err) != CodeInvalidRange {
		t.Fatalf("expected invalidRange below minimum nights, got %v", err)
	}

	_, err = engine.Reserve("guest-1", stayInput("prop-1", "2026-03-01", "2026-05-01"))
	if ErrCode(err) != CodeInvalidRange {
		t.Fatalf("expected invalidRange above maximum nights, got %v", err)
	}
}

func TestReserveGuestCapacity(t *testing.T) {
	engine, _, _, _ := newTestEngine(testProperty())

	in := stayInput("prop-1", "2026-03-01", "2026-03-03")
	in.Adults = 3
	in.Children = 2
	_, err := engine.Reserve("guest-1", in)
	if ErrCode(err) != CodeInvalidRange {
		t.Fatalf("expected invalidRange for too many guests, got %v", err)
	}

	// Infants and pets do not count against capacity.
	in = stayInput("prop-1", "2026-03-01", "2026-03-03")
	in.Adults = 4
	in.Infants = 3
	in.Pets = 2
	if _, err := engine.Reserve("guest-1", in); err != nil {
		t.Fatalf("Reserve with infants and pets failed: %v", err)
	}
}

func TestReserveUnpublishedProperty(t *testing.T) {
	prop := testProperty()
	prop.IsPublished = false
	engine, _, _, _ := newTestEngine(prop)

	_, err := engine.Reserve("guest-1", stayInput("prop-1", "2026-03-01", "2026-03-03"))
	if ErrCode(err) != CodeNotFound {
		t.Fatalf("expected notFound for unpublished property, got %v", err)
	}
}

func TestConcurrentOverlappingReserves(t *testing.T) {
	engine, _, _, _ := newTestEngine(testProperty())

	const attempts = 8
	var wg sync.WaitGroup
	errs := make([]error, attempts)
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = engine.Reserve("guest-1", stayInput("prop-1", "2026-03-01", "2026-03-05"))
		}(i)
	}
	wg.Wait()

	var won, conflicts int
	for _, err := range errs {
		switch {
		case err == nil:
			won++
		case ErrCode(err) == CodeConflict:
			conflicts++
		default:
			t.Fatalf("unexpected error from concurrent reserve: %v", err)
		}
	}
	if won != 1 {
		t.Fatalf("expected exactly one winning reserve, got %d", won)
	}
	if conflicts != attempts-1 {
		t.Fatalf("expected %d conflicts, got %d", attempts-1, conflicts)
	}
}

func TestConcurrentDisjointReserves(t *testing.T) {
	engine, _, _, _ := newTestEngine(testProperty())

	ranges := [][2]string{
		{"2026-03-01", "2026-03-04"},
		{"2026-03-04", "2026-03-07"},
		{"2026-03-07", "2026-03-10"},
	}
	var wg sync.WaitGroup
	errs := make([]error, len(ranges))
	for i, r := range ranges {
		wg.Add(1)
		go func(i int, in, out string) {
			defer wg.Done()
			_, errs[i] = engine.Reserve("guest-1", stayInput("prop-1", in, out))
		}(i, r[0], r[1])
	}
	wg.Wait()

	for i, err := range errs {
		if err != nil {
			t.Fatalf("disjoint reserve %d failed: %v", i, err)
		}
	}
}

func TestCancelByGuestAndHost(t *testing.T) {
	engine, _, _, _ := newTestEngine(testProperty())

	first, err := engine.Reserve("guest-1", stayInput("prop-1", "2026-03-01", "2026-03-03"))
	if err != nil {
		t.Fatalf("Reserve failed: %v", err)
	}
	cancelled, err := engine.Cancel(first.ID, "guest-1")
	if err != nil {
		t.Fatalf("Cancel by guest failed: %v", err)
	}
	if cancelled.Status != models.BookingStatusCancelled {
		t.Fatalf("expected cancelled status, got %s", cancelled.Status)
	}
	if cancelled.CancelledAt == nil {
		t.Fatalf("expected cancelled_at to be stamped")
	}

	second, err := engine.Reserve("guest-2", stayInput("prop-1", "2026-03-01", "2026-03-03"))
	if err != nil {
		t.Fatalf("Reserve over cancelled dates failed: %v", err)
	}
	if _, err := engine.Cancel(second.ID, "host-1"); err != nil {
		t.Fatalf("Cancel by host failed: %v", err)
	}
}

func TestCancelForbidden(t *testing.T) {
	engine, _, _, _ := newTestEngine(testProperty())

	booking, err := engine.Reserve("guest-1", stayInput("prop-1", "2026-03-01", "2026-03-03"))
	if err != nil {
		t.Fatalf("Reserve failed: %v", err)
	}
	_, err = engine.Cancel(booking.ID, "stranger")
	if ErrCode(err) != CodeForbidden {
		t.Fatalf("expected forbidden, got %v", err)
	}
}

func TestCancelTerminalState(t *testing.T) {
	engine, _, _, _ := newTestEngine(testProperty())

	booking, err := engine.Reserve("guest-1", stayInput("prop-1", "2026-03-01", "2026-03-03"))
	if err != nil {
		t.Fatalf("Reserve failed: %v", err)
	}
	if _, err := engine.Cancel(booking.ID, "guest-1"); err != nil {
		t.Fatalf("Cancel failed: %v", err)
	}
	_, err = engine.Cancel(booking.ID, "guest-1")
	if ErrCode(err) != CodeInvalidState {
		t.Fatalf("expected invalidState cancelling twice, got %v", err)
	}
}

func TestConfirmLifecycle(t *testing.T) {
	engine, _, _, sched := newTestEngine(testProperty())

	booking, err := engine.Reserve("guest-1", stayInput("prop-1", "2026-03-01", "2026-03-03"))
	if err != nil {
		t.Fatalf("Reserve failed: %v", err)
	}

	_, err = engine.Confirm(booking.ID, "guest-1")
	if ErrCode(err) != CodeForbidden {
		t.Fatalf("expected forbidden confirming as guest, got %v", err)
	}

	confirmed, err := engine.Confirm(booking.ID, "host-1")
	if err != nil {
		t.Fatalf("Confirm failed: %v", err)
	}
	if confirmed.Status != models.BookingStatusConfirmed {
		t.Fatalf("expected confirmed status, got %s", confirmed.Status)
	}
	if len(sched.completions) != 1 || sched.completions[0] != booking.ID {
		t.Fatalf("expected a completion task after confirm, got %v", sched.completions)
	}

	_, err = engine.Confirm(booking.ID, "host-1")
	if ErrCode(err) != CodeInvalidState {
		t.Fatalf("expected invalidState confirming twice, got %v", err)
	}

	completed, err := engine.Complete(booking.ID)
	if err != nil {
		t.Fatalf("Complete failed: %v", err)
	}
	if completed.Status != models.BookingStatusCompleted {
		t.Fatalf("expected completed status, got %s", completed.Status)
	}

	_, err = engine.Cancel(booking.ID, "guest-1")
	if ErrCode(err) != CodeInvalidState {
		t.Fatalf("expected invalidState cancelling a completed booking, got %v", err)
	}
}

func TestCompleteRequiresConfirmed(t *testing.T) {
	engine, _, _, _ := newTestEngine(testProperty())

	booking, err := engine.Reserve("guest-1", stayInput("prop-1", "2026-03-01", "2026-03-03"))
	if err != nil {
		t.Fatalf("Reserve failed: %v", err)
	}
	_, err = engine.Complete(booking.ID)
	if ErrCode(err) != CodeInvalidState {
		t.Fatalf("expected invalidState completing a pending booking, got %v", err)
	}
}

func TestExpirePending(t *testing.T) {
	engine, bookings, _, _ := newTestEngine(testProperty())

	booking, err := engine.Reserve("guest-1", stayInput("prop-1", "2026-03-01", "2026-03-03"))
	if err != nil {
		t.Fatalf("Reserve failed: %v", err)
	}
	if err := engine.ExpirePending(booking.ID); err != nil {
		t.Fatalf("ExpirePending failed: %v", err)
	}
	got, _ := bookings.GetByID(booking.ID)
	if got.Status != models.BookingStatusCancelled {
		t.Fatalf("expected expired booking cancelled, got %s", got.Status)
	}

	// Idempotent: a second run and a run against a missing id are no-ops.
	if err := engine.ExpirePending(booking.ID); err != nil {
		t.Fatalf("second ExpirePending failed: %v", err)
	}
	if err := engine.ExpirePending("missing"); err != nil {
		t.Fatalf("ExpirePending on missing booking failed: %v", err)
	}
}

func TestExpirePendingLeavesConfirmed(t *testing.T) {
	engine, bookings, _, _ := newTestEngine(testProperty())

	booking, err := engine.Reserve("guest-1", stayInput("prop-1", "2026-03-01", "2026-03-03"))
	if err != nil {
		t.Fatalf("Reserve failed: %v", err)
	}
	if _, err := engine.Confirm(booking.ID, "host-1"); err != nil {
		t.Fatalf("Confirm failed: %v", err)
	}
	if err := engine.ExpirePending(booking.ID); err != nil {
		t.Fatalf("ExpirePending failed: %v", err)
	}
	got, _ := bookings.GetByID(booking.ID)
	if got.Status != models.BookingStatusConfirmed {
		t.Fatalf("expiry must not touch a confirmed booking, got %s", got.Status)
	}
}

func TestGetBookingVisibility(t *testing.T) {
	engine, _, _, _ := newTestEngine(testProperty())

	booking, err := engine.Reserve("guest-1", stayInput("prop-1", "2026-03-01", "2026-03-03"))
	if err != nil {
		t.Fatalf("Reserve failed: %v", err)
	}

	if _, err := engine.GetBooking(booking.ID, "guest-1"); err != nil {
		t.Fatalf("guest should see own booking: %v", err)
	}
	if _, err := engine.GetBooking(booking.ID, "host-1"); err != nil {
		t.Fatalf("host should see property booking: %v", err)
	}
	_, err = engine.GetBooking(booking.ID, "stranger")
	if ErrCode(err) != CodeForbidden {
		t.Fatalf("expected forbidden for unrelated actor, got %v", err)
	}
	_, err = engine.GetBooking("missing", "guest-1")
	if ErrCode(err) != CodeNotFound {
		t.Fatalf("expected notFound, got %v", err)
	}
}
