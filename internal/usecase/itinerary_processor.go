package usecase

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"time"

	"travelplan-service/internal/domain/entity"
	"travelplan-service/internal/domain/repository"
	"travelplan-service/pkg/logger"
	"travelplan-service/pkg/metrics"
	"travelplan-service/pkg/parser"
)

// ProcessorType is stored on every response handled by the itinerary processor
const ProcessorType = "itinerary"

// bareFlightCodeRe matches an airline field holding only a flight code, "(AF123)" or "IB3401"
var bareFlightCodeRe = regexp.MustCompile(`^\(?\s*([A-Z0-9]{2})\s?(\d{1,4})\s*\)?$`)

// ItineraryProcessor turns agent responses into stored itineraries
type ItineraryProcessor struct {
	parser        *parser.ResponseParser
	airlineRepo   repository.AirlineRepository
	responseRepo  repository.AgentResponseRepository
	itineraryRepo repository.ItineraryRepository
	metrics       *metrics.Metrics
	logger        logger.Logger
}

// NewItineraryProcessor creates a new itinerary processor
func NewItineraryProcessor(
	responseParser *parser.ResponseParser,
	airlineRepo repository.AirlineRepository,
	responseRepo repository.AgentResponseRepository,
	itineraryRepo repository.ItineraryRepository,
	metrics *metrics.Metrics,
	logger logger.Logger,
) *ItineraryProcessor {
	return &ItineraryProcessor{
		parser:        responseParser,
		airlineRepo:   airlineRepo,
		responseRepo:  responseRepo,
		itineraryRepo: itineraryRepo,
		metrics:       metrics,
		logger:        logger,
	}
}

// ProcessResponse parses one agent response, stores its itinerary and
// records the outcome on the response.
func (p *ItineraryProcessor) ProcessResponse(ctx context.Context, response *entity.AgentResponse) error {
	start := time.Now()
	log := p.logger.With("responseID", response.ResponseID)

	result := p.parser.Parse(response.Text)
	p.metrics.ObserveResult(result)

	p.resolveAirlines(ctx, result.Flights)

	itinerary := &entity.Itinerary{
		ResponseID: response.ResponseID,
		SessionID:  response.SessionID,
		Query:      response.Query.Normalize(),
		Flights:    result.Flights,
		Hotels:     result.Hotels,
		Activities: result.Activities,
		Sectioned:  result.Sectioned,
	}

	if err := p.itineraryRepo.Upsert(ctx, itinerary); err != nil {
		p.metrics.ErrorsCount.WithLabelValues("upsert_itinerary").Inc()
		return fmt.Errorf("failed to save itinerary: %w", err)
	}

	extractedData := map[string]interface{}{
		"flights":        len(result.Flights),
		"hotels":         len(result.Hotels),
		"activities":     len(result.Activities),
		"sectioned":      result.Sectioned,
		"flightsTier":    string(result.Tiers.Flights),
		"hotelsTier":     string(result.Tiers.Hotels),
		"activitiesTier": string(result.Tiers.Activities),
	}

	status := entity.StatusCompleted
	errorDetail := ""
	if result.Empty() {
		status = entity.StatusSkipped
		errorDetail = "No travel records recognized"
	}

	if err := p.responseRepo.MarkAsProcessedByResponseID(ctx, response.ResponseID, status, ProcessorType, errorDetail, extractedData); err != nil {
		p.metrics.ErrorsCount.WithLabelValues("mark_processed").Inc()
		return fmt.Errorf("failed to mark response as processed: %w", err)
	}

	p.metrics.ResponsesProcessed.WithLabelValues(status).Inc()
	p.metrics.ProcessingTime.Observe(time.Since(start).Seconds())

	log.Info("Agent response processed",
		"status", status,
		"flights", len(result.Flights),
		"hotels", len(result.Hotels),
		"activities", len(result.Activities))

	return nil
}

// resolveAirlines replaces airline fields holding only a flight code with
// "Name (CODE)" from the airline table. Unknown codes are left untouched.
func (p *ItineraryProcessor) resolveAirlines(ctx context.Context, flights []parser.FlightRecord) {
	for i := range flights {
		match := bareFlightCodeRe.FindStringSubmatch(flights[i].Airline)
		if match == nil {
			continue
		}

		airline, err := p.airlineRepo.GetByCode(ctx, match[1])
		if err != nil {
			if !errors.Is(err, entity.ErrNotFound) {
				p.metrics.ErrorsCount.WithLabelValues("airline_lookup").Inc()
				p.logger.Error("Failed to get airline", "code", match[1], "error", err)
			}
			continue
		}

		flights[i].Airline = airline.Label(match[1] + match[2])
	}
}
