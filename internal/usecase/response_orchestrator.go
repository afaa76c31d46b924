package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"travelplan-service/internal/domain/entity"
	"travelplan-service/internal/domain/repository"
	"travelplan-service/pkg/logger"
)

// DefaultBatchSize is the number of pending responses handled per run
const DefaultBatchSize = 100

// ResponseProcessor processes a single stored agent response
type ResponseProcessor interface {
	ProcessResponse(ctx context.Context, response *entity.AgentResponse) error
}

// ResponseOrchestrator drives pending agent responses through a processor
type ResponseOrchestrator struct {
	responseRepo repository.AgentResponseRepository
	processor    ResponseProcessor
	batchSize    int
	logger       logger.Logger
}

// NewResponseOrchestrator creates a new response orchestrator
func NewResponseOrchestrator(
	responseRepo repository.AgentResponseRepository,
	processor ResponseProcessor,
	batchSize int,
	logger logger.Logger,
) *ResponseOrchestrator {
	if batchSize <= 0 {
		batchSize = DefaultBatchSize
	}
	return &ResponseOrchestrator{
		responseRepo: responseRepo,
		processor:    processor,
		batchSize:    batchSize,
		logger:       logger,
	}
}

// ProcessResponse processes a single response, recording failures on the
// response instead of returning them.
func (o *ResponseOrchestrator) ProcessResponse(ctx context.Context, response *entity.AgentResponse) error {
	if strings.TrimSpace(response.Text) == "" {
		o.logger.Debug("Empty agent response", "responseID", response.ResponseID)

		return o.responseRepo.MarkAsProcessedByResponseID(
			ctx,
			response.ResponseID,
			entity.StatusSkipped,
			"none",
			"Empty response text",
			map[string]interface{}{
				"agent":  response.Agent,
				"reason": "empty_text",
			},
		)
	}

	if err := o.responseRepo.UpdateStatusByResponseID(ctx, response.ResponseID, entity.StatusProcessing, time.Now()); err != nil {
		return fmt.Errorf("failed to update status: %w", err)
	}

	if err := o.processor.ProcessResponse(ctx, response); err != nil {
		o.logger.Error("Failed to process agent response",
			"responseID", response.ResponseID,
			"error", err)

		// Mark as failed but don't return error, the batch goes on
		if markErr := o.responseRepo.MarkAsProcessedByResponseID(
			ctx,
			response.ResponseID,
			entity.StatusFailed,
			ProcessorType,
			err.Error(),
			nil,
		); markErr != nil {
			o.logger.Error("Failed to mark response as failed",
				"responseID", response.ResponseID,
				"error", markErr)
		}
		return nil
	}

	return nil
}

// ProcessPendingResponses processes responses that are waiting or were left
// behind by a crashed run.
func (o *ResponseOrchestrator) ProcessPendingResponses(ctx context.Context) error {
	if err := o.responseRepo.ResetProcessingResponses(ctx); err != nil {
		o.logger.Error("Failed to reset stale responses", "error", err)
	}

	responses, err := o.responseRepo.FindUnprocessed(ctx, o.batchSize)
	if err != nil {
		return fmt.Errorf("failed to find unprocessed responses: %w", err)
	}

	if len(responses) == 0 {
		return nil
	}

	o.logger.Info("Processing pending agent responses", "count", len(responses))

	for _, response := range responses {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if err := o.ProcessResponse(ctx, response); err != nil {
			o.logger.Error("Failed to process pending response",
				"responseID", response.ResponseID,
				"error", err)
		}
	}

	return nil
}
