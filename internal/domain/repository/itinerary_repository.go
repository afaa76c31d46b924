package repository

import (
	"context"

	"travelplan-service/internal/domain/entity"
)

// ItineraryRepository defines the interface for itinerary operations
type ItineraryRepository interface {
	FindByResponseID(ctx context.Context, responseID string) (*entity.Itinerary, error)
	Upsert(ctx context.Context, itinerary *entity.Itinerary) error
}
