// internal/interface/repository/agent_response_repo.go
package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"travelplan-service/internal/domain/entity"
	"travelplan-service/internal/domain/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// staleProcessingAfter is how long a response may stay PROCESSING before it is retried
const staleProcessingAfter = 5 * time.Minute

// MongoAgentResponseRepository implements the AgentResponseRepository interface
type MongoAgentResponseRepository struct {
	collection *mongo.Collection
}

// NewMongoAgentResponseRepository creates a new MongoDB agent response repository
func NewMongoAgentResponseRepository(db *mongo.Database) repository.AgentResponseRepository {
	collection := db.Collection("agentResponses")

	ctx := context.Background()

	responseIDIndex := mongo.IndexModel{
		Keys:    bson.M{"responseId": 1},
		Options: options.Index().SetUnique(true),
	}

	sessionIndex := mongo.IndexModel{
		Keys: bson.M{"sessionId": 1},
	}

	// Compound index for finding unprocessed responses efficiently
	unprocessedIndex := mongo.IndexModel{
		Keys: bson.D{
			{Key: "processStatus", Value: 1},
			{Key: "receivedAt", Value: 1},
		},
	}

	collection.Indexes().CreateMany(ctx, []mongo.IndexModel{
		responseIDIndex,
		sessionIndex,
		unprocessedIndex,
	})

	return &MongoAgentResponseRepository{
		collection: collection,
	}
}

// Save stores a new agent response as PENDING
func (r *MongoAgentResponseRepository) Save(ctx context.Context, response *entity.AgentResponse) error {
	if response.ProcessStatus == "" {
		response.ProcessStatus = entity.StatusPending
	}
	if response.ReceivedAt.IsZero() {
		response.ReceivedAt = time.Now()
	}

	if _, err := r.collection.InsertOne(ctx, response); err != nil {
		return fmt.Errorf("failed to save agent response: %w", err)
	}
	return nil
}

// FindByResponseID finds a response by its public id
func (r *MongoAgentResponseRepository) FindByResponseID(ctx context.Context, responseID string) (*entity.AgentResponse, error) {
	var response entity.AgentResponse
	err := r.collection.FindOne(ctx, bson.M{"responseId": responseID}).Decode(&response)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, entity.ErrNotFound
		}
		return nil, err
	}
	return &response, nil
}

// FindUnprocessed finds unprocessed responses (PENDING status or empty), oldest first
func (r *MongoAgentResponseRepository) FindUnprocessed(ctx context.Context, limit int) ([]*entity.AgentResponse, error) {
	filter := bson.M{
		"$or": []bson.M{
			{"processStatus": ""},
			{"processStatus": entity.StatusPending},
			{"processStatus": bson.M{"$exists": false}},
		},
	}

	opts := options.Find().
		SetLimit(int64(limit)).
		SetSort(bson.D{{Key: "receivedAt", Value: 1}})

	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var responses []*entity.AgentResponse
	if err := cursor.All(ctx, &responses); err != nil {
		return nil, err
	}

	return responses, nil
}

// UpdateStatusByResponseID updates the status and, when moving to PROCESSING, the start time
func (r *MongoAgentResponseRepository) UpdateStatusByResponseID(ctx context.Context, responseID string, status string, startedAt time.Time) error {
	set := bson.M{
		"processStatus": status,
	}

	if status == entity.StatusProcessing && !startedAt.IsZero() {
		set["processStartedAt"] = startedAt
	}

	result, err := r.collection.UpdateOne(
		ctx,
		bson.M{"responseId": responseID},
		bson.M{"$set": set},
	)
	if err != nil {
		return fmt.Errorf("failed to update status: %w", err)
	}

	if result.MatchedCount == 0 {
		return fmt.Errorf("response %s: %w", responseID, entity.ErrNotFound)
	}

	return nil
}

// MarkAsProcessedByResponseID records the final status of a response
func (r *MongoAgentResponseRepository) MarkAsProcessedByResponseID(ctx context.Context, responseID, status, processorType, errorDetail string, extractedData map[string]interface{}) error {
	set := bson.M{
		"processedAt":   time.Now(),
		"processStatus": status,
		"processorType": processorType,
	}

	if len(extractedData) > 0 {
		set["extractedData"] = extractedData
	}

	if errorDetail != "" {
		set["errorDetail"] = errorDetail
	}

	result, err := r.collection.UpdateOne(
		ctx,
		bson.M{"responseId": responseID},
		bson.M{"$set": set},
	)
	if err != nil {
		return fmt.Errorf("failed to mark as processed: %w", err)
	}

	if result.MatchedCount == 0 {
		return fmt.Errorf("response %s: %w", responseID, entity.ErrNotFound)
	}

	return nil
}

// ResetProcessingResponses puts responses stuck in PROCESSING back to PENDING
func (r *MongoAgentResponseRepository) ResetProcessingResponses(ctx context.Context) error {
	staleTime := time.Now().Add(-staleProcessingAfter)

	filter := bson.M{
		"processStatus": entity.StatusProcessing,
		"$or": []bson.M{
			{"processStartedAt": bson.M{"$lt": staleTime}},
			{"processStartedAt": bson.M{"$exists": false}},
		},
	}

	update := bson.M{
		"$set": bson.M{
			"processStatus": entity.StatusPending,
			"errorDetail":   "Reset from stale PROCESSING state",
		},
	}

	if _, err := r.collection.UpdateMany(ctx, filter, update); err != nil {
		return fmt.Errorf("failed to reset stale responses: %w", err)
	}

	return nil
}
