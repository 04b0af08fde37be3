package availabilityRepo

import (
	"context"
	"fmt"
	"time"

	"stayhub/database"
	"stayhub/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoAvailabilityRepo implements AvailabilityRepository using MongoDB.
type MongoAvailabilityRepo struct {
	coll *mongo.Collection
}

// NewMongoAvailabilityRepo creates a new instance of AvailabilityRepository using MongoDB.
func NewMongoAvailabilityRepo() AvailabilityRepository {
	coll := database.DB().Collection("availability")
	repo := &MongoAvailabilityRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

// newContext creates a context with the given timeout.
func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

// ensureIndexes creates the unique (property_id, date) index so an upsert
// can never produce two override documents for the same day.
func (r *MongoAvailabilityRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "property_id", Value: 1}, {Key: "date", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// GetRange returns the overrides for [start, end) keyed by date.
func (r *MongoAvailabilityRepo) GetRange(propertyID, start, end string) (map[string]models.AvailabilityDay, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{
		"property_id": propertyID,
		"date":        bson.M{"$gte": start, "$lt": end},
	}
	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch availability for property %s: %w", propertyID, err)
	}
	defer cursor.Close(ctx)

	overrides := make(map[string]models.AvailabilityDay)
	for cursor.Next(ctx) {
		var day models.AvailabilityDay
		if err := cursor.Decode(&day); err != nil {
			return nil, fmt.Errorf("failed to decode availability day: %w", err)
		}
		overrides[day.Date] = day
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("availability cursor error: %w", err)
	}
	return overrides, nil
}

// BulkSet upserts one override document per entry.
func (r *MongoAvailabilityRepo) BulkSet(propertyID string, days []models.AvailabilityDay) error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	writes := make([]mongo.WriteModel, 0, len(days))
	now := time.Now()
	for _, day := range days {
		day.PropertyID = propertyID
		day.UpdatedAt = now
		filter := bson.M{"property_id": propertyID, "date": day.Date}
		update := bson.M{"$set": bson.M{
			"id":           day.ID,
			"property_id":  day.PropertyID,
			"date":         day.Date,
			"is_available": day.IsAvailable,
			"custom_price": day.CustomPrice,
			"note":         day.Note,
			"updated_at":   day.UpdatedAt,
		}}
		writes = append(writes, mongo.NewUpdateOneModel().
			SetFilter(filter).
			SetUpdate(update).
			SetUpsert(true))
	}

	if _, err := r.coll.BulkWrite(ctx, writes); err != nil {
		return fmt.Errorf("failed to bulk set availability for property %s: %w", propertyID, err)
	}
	return nil
}

// DeleteForProperty removes all overrides of a property.
func (r *MongoAvailabilityRepo) DeleteForProperty(propertyID string) error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	if _, err := r.coll.DeleteMany(ctx, bson.M{"property_id": propertyID}); err != nil {
		return fmt.Errorf("failed to delete availability for property %s: %w", propertyID, err)
	}
	return nil
}
