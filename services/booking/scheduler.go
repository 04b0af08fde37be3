package booking

import (
	"encoding/json"
	"fmt"
	"time"

	"stayhub/models"

	"github.com/hibiken/asynq"
)

// Lifecycle task types handled by the worker.
const (
	TaskTypeBookingComplete = "booking:complete"
	TaskTypeBookingExpire   = "booking:expire"
)

// LifecyclePayload identifies the booking a lifecycle task acts on.
type LifecyclePayload struct {
	BookingID string `json:"bookingId"`
}

// LifecycleScheduler schedules deferred booking transitions: completion
// after checkout and expiry of bookings left pending too long.
type LifecycleScheduler interface {
	ScheduleCompletion(b *models.Booking) error
	ScheduleExpiry(b *models.Booking) error
}

// AsynqLifecycleScheduler enqueues lifecycle tasks on the asynq queue.
type AsynqLifecycleScheduler struct {
	Client *asynq.Client
	// PendingTTL is how long a pending booking may wait for host
	// confirmation before it is auto-cancelled.
	PendingTTL time.Duration
}

// ScheduleCompletion enqueues a completion task that fires at noon UTC on
// the booking's checkout date.
func (s *AsynqLifecycleScheduler) ScheduleCompletion(b *models.Booking) error {
	checkout, err := parseDate(b.CheckOutDate)
	if err != nil {
		return fmt.Errorf("invalid checkout date on booking %s: %w", b.ID, err)
	}
	fireAt := checkout.Add(12 * time.Hour)

	task, err := newLifecycleTask(TaskTypeBookingComplete, b.ID)
	if err != nil {
		return err
	}
	if _, err := s.Client.Enqueue(task, asynq.ProcessAt(fireAt)); err != nil {
		return fmt.Errorf("failed to enqueue completion task for booking %s: %w", b.ID, err)
	}
	return nil
}

// ScheduleExpiry enqueues an expiry task that fires once the confirmation
// window has elapsed.
func (s *AsynqLifecycleScheduler) ScheduleExpiry(b *models.Booking) error {
	task, err := newLifecycleTask(TaskTypeBookingExpire, b.ID)
	if err != nil {
		return err
	}
	if _, err := s.Client.Enqueue(task, asynq.ProcessIn(s.PendingTTL)); err != nil {
		return fmt.Errorf("failed to enqueue expiry task for booking %s: %w", b.ID, err)
	}
	return nil
}

func newLifecycleTask(taskType, bookingID string) (*asynq.Task, error) {
	payload, err := json.Marshal(LifecyclePayload{BookingID: bookingID})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal lifecycle payload: %w", err)
	}
	return asynq.NewTask(taskType, payload), nil
}
