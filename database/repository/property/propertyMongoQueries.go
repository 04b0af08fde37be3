package propertyRepo

import (
	"fmt"
	"time"

	"stayhub/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Search returns published properties matching the filters, paginated.
func (r *MongoPropertyRepo) Search(params models.PropertySearchParams) ([]models.Property, int64, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	filter := bson.M{"is_published": true}
	if params.City != "" {
		filter["city"] = params.City
	}
	if params.Country != "" {
		filter["country"] = params.Country
	}
	if params.Guests > 0 {
		filter["max_guests"] = bson.M{"$gte": params.Guests}
	}
	if params.Type != "" {
		filter["property_type"] = params.Type
	}
	if params.RoomType != "" {
		filter["room_type"] = params.RoomType
	}
	if params.MinPrice > 0 || params.MaxPrice > 0 {
		price := bson.M{}
		if params.MinPrice > 0 {
			price["$gte"] = params.MinPrice
		}
		if params.MaxPrice > 0 {
			price["$lte"] = params.MaxPrice
		}
		filter["price_per_night"] = price
	}

	total, err := r.coll.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count properties: %w", err)
	}

	page := params.Page
	if page < 1 {
		page = 1
	}
	limit := params.Limit
	if limit < 1 || limit > 100 {
		limit = 20
	}
	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetSkip(int64((page - 1) * limit)).
		SetLimit(int64(limit))

	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to search properties: %w", err)
	}
	defer cursor.Close(ctx)

	var properties []models.Property
	if err := cursor.All(ctx, &properties); err != nil {
		return nil, 0, fmt.Errorf("failed to decode properties: %w", err)
	}
	return properties, total, nil
}
