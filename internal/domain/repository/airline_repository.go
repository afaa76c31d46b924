package repository

import (
	"context"

	"travelplan-service/internal/domain/entity"
)

// AirlineRepository resolves airline names from IATA codes
type AirlineRepository interface {
	GetByCode(ctx context.Context, code string) (*entity.Airline, error)
}
