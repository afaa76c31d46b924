package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"travelplan-service/internal/domain/entity"
	"travelplan-service/internal/domain/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoItineraryRepository implements ItineraryRepository
type MongoItineraryRepository struct {
	collection *mongo.Collection
}

// NewMongoItineraryRepository creates a new itinerary repository
func NewMongoItineraryRepository(db *mongo.Database) repository.ItineraryRepository {
	collection := db.Collection("itineraries")

	// One itinerary per agent response
	ctx := context.Background()
	indexModel := mongo.IndexModel{
		Keys:    bson.M{"responseId": 1},
		Options: options.Index().SetUnique(true),
	}
	collection.Indexes().CreateOne(ctx, indexModel)

	sessionIndex := mongo.IndexModel{
		Keys: bson.M{"sessionId": 1},
	}
	collection.Indexes().CreateOne(ctx, sessionIndex)

	return &MongoItineraryRepository{
		collection: collection,
	}
}

// FindByResponseID finds the itinerary built from a response
func (r *MongoItineraryRepository) FindByResponseID(ctx context.Context, responseID string) (*entity.Itinerary, error) {
	var itinerary entity.Itinerary
	err := r.collection.FindOne(ctx, bson.M{"responseId": responseID}).Decode(&itinerary)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, entity.ErrNotFound
		}
		return nil, err
	}
	return &itinerary, nil
}

// Upsert creates or replaces the itinerary of a response
func (r *MongoItineraryRepository) Upsert(ctx context.Context, itinerary *entity.Itinerary) error {
	now := time.Now()
	itinerary.UpdatedAt = now
	if itinerary.CreatedAt.IsZero() {
		itinerary.CreatedAt = now
	}

	updateDoc := bson.M{
		"responseId": itinerary.ResponseID,
		"sessionId":  itinerary.SessionID,
		"query":      itinerary.Query,
		"flights":    itinerary.Flights,
		"hotels":     itinerary.Hotels,
		"activities": itinerary.Activities,
		"sectioned":  itinerary.Sectioned,
		"updatedAt":  itinerary.UpdatedAt,
	}

	opts := options.Update().SetUpsert(true)
	filter := bson.M{"responseId": itinerary.ResponseID}

	result, err := r.collection.UpdateOne(
		ctx,
		filter,
		bson.M{
			"$set":         updateDoc,
			"$setOnInsert": bson.M{"createdAt": itinerary.CreatedAt},
		},
		opts,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert itinerary: %w", err)
	}

	if result.UpsertedCount > 0 {
		if id, ok := result.UpsertedID.(primitive.ObjectID); ok {
			itinerary.ID = id.Hex()
		}
	}

	return nil
}
