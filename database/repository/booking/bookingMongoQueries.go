package bookingRepo

import (
	"fmt"
	"time"

	"stayhub/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ListByGuest returns a guest's bookings, newest first, paginated.
func (r *MongoBookingRepo) ListByGuest(guestID string, page, limit int) ([]models.Booking, int64, error) {
	return r.list(bson.M{"guest_id": guestID}, page, limit)
}

// ListByHost returns the bookings across a host's properties, newest first, paginated.
func (r *MongoBookingRepo) ListByHost(hostID string, page, limit int) ([]models.Booking, int64, error) {
	return r.list(bson.M{"host_id": hostID}, page, limit)
}

func (r *MongoBookingRepo) list(filter bson.M, page, limit int) ([]models.Booking, int64, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	total, err := r.coll.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count bookings: %w", err)
	}

	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}
	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetSkip(int64((page - 1) * limit)).
		SetLimit(int64(limit))

	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list bookings: %w", err)
	}
	defer cursor.Close(ctx)

	var bookings []models.Booking
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, 0, fmt.Errorf("failed to decode bookings: %w", err)
	}
	return bookings, total, nil
}
