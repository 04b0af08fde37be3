package bookingRepo

import (
	"context"
	"fmt"
	"time"

	"stayhub/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// InsertActive inserts a new booking after re-checking, inside a mongo
// transaction, that no active booking overlaps the half-open interval
// [check_in_date, check_out_date). The engine already serializes reserves
// per property; this is the storage-level backstop for multi-node
// deployments.
func (r *MongoBookingRepo) InsertActive(booking *models.Booking) error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	client := r.coll.Database().Client()
	sess, err := client.StartSession()
	if err != nil {
		return fmt.Errorf("could not start mongo session: %w", err)
	}
	defer sess.EndSession(ctx)

	txnFn := func(sc mongo.SessionContext) error {
		filter := bson.M{
			"property_id":    booking.PropertyID,
			"status":         bson.M{"$in": models.ActiveBookingStatuses},
			"check_in_date":  bson.M{"$lt": booking.CheckOutDate},
			"check_out_date": bson.M{"$gt": booking.CheckInDate},
		}
		count, err := r.coll.CountDocuments(sc, filter)
		if err != nil {
			return fmt.Errorf("overlap re-check failed: %w", err)
		}
		if count > 0 {
			return ErrDateConflict
		}

		now := time.Now()
		booking.CreatedAt = now
		booking.UpdatedAt = now
		if _, err := r.coll.InsertOne(sc, booking); err != nil {
			return fmt.Errorf("insert booking failed: %w", err)
		}
		return nil
	}

	if err := mongo.WithSession(ctx, sess, func(sc mongo.SessionContext) error {
		if err := sc.StartTransaction(); err != nil {
			return err
		}
		if err := txnFn(sc); err != nil {
			_ = sc.AbortTransaction(context.Background())
			return err
		}
		return sc.CommitTransaction(sc)
	}); err != nil {
		if err == ErrDateConflict {
			return err
		}
		return fmt.Errorf("booking transaction failed: %w", err)
	}

	return nil
}
