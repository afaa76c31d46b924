package repository

import (
	"context"
	"time"

	"travelplan-service/internal/domain/entity"
)

// AgentResponseRepository defines the interface for agent response storage operations
type AgentResponseRepository interface {
	Save(ctx context.Context, response *entity.AgentResponse) error
	FindByResponseID(ctx context.Context, responseID string) (*entity.AgentResponse, error)
	FindUnprocessed(ctx context.Context, limit int) ([]*entity.AgentResponse, error)
	UpdateStatusByResponseID(ctx context.Context, responseID string, status string, startedAt time.Time) error
	MarkAsProcessedByResponseID(ctx context.Context, responseID, status, processorType, errorDetail string, extractedData map[string]interface{}) error
	ResetProcessingResponses(ctx context.Context) error
}
