package usecase

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"travelplan-service/internal/domain/entity"
)

type memoryResponseRepo struct {
	mu        sync.Mutex
	responses map[string]*entity.AgentResponse
	resets    int
	findErr   error
}

func newMemoryResponseRepo(responses ...*entity.AgentResponse) *memoryResponseRepo {
	repo := &memoryResponseRepo{responses: make(map[string]*entity.AgentResponse)}
	for _, r := range responses {
		repo.responses[r.ResponseID] = r
	}
	return repo
}

func (r *memoryResponseRepo) Save(_ context.Context, response *entity.AgentResponse) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if response.ProcessStatus == "" {
		response.ProcessStatus = entity.StatusPending
	}
	r.responses[response.ResponseID] = response
	return nil
}

func (r *memoryResponseRepo) FindByResponseID(_ context.Context, responseID string) (*entity.AgentResponse, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	response, ok := r.responses[responseID]
	if !ok {
		return nil, entity.ErrNotFound
	}
	return response, nil
}

func (r *memoryResponseRepo) FindUnprocessed(_ context.Context, limit int) ([]*entity.AgentResponse, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.findErr != nil {
		return nil, r.findErr
	}

	var pending []*entity.AgentResponse
	for _, response := range r.responses {
		if response.ProcessStatus == "" || response.ProcessStatus == entity.StatusPending {
			pending = append(pending, response)
		}
	}
	sort.Slice(pending, func(i, j int) bool {
		return pending[i].ReceivedAt.Before(pending[j].ReceivedAt)
	})
	if len(pending) > limit {
		pending = pending[:limit]
	}
	return pending, nil
}

func (r *memoryResponseRepo) UpdateStatusByResponseID(_ context.Context, responseID string, status string, startedAt time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	response, ok := r.responses[responseID]
	if !ok {
		return entity.ErrNotFound
	}
	response.ProcessStatus = status
	response.ProcessStartedAt = startedAt
	return nil
}

func (r *memoryResponseRepo) MarkAsProcessedByResponseID(_ context.Context, responseID, status, processorType, errorDetail string, extractedData map[string]interface{}) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	response, ok := r.responses[responseID]
	if !ok {
		return entity.ErrNotFound
	}
	response.ProcessStatus = status
	response.ProcessorType = processorType
	response.ErrorDetail = errorDetail
	response.ExtractedData = extractedData
	response.ProcessedAt = time.Now()
	return nil
}

func (r *memoryResponseRepo) ResetProcessingResponses(_ context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.resets++
	for _, response := range r.responses {
		if response.ProcessStatus == entity.StatusProcessing {
			response.ProcessStatus = entity.StatusPending
		}
	}
	return nil
}

func (r *memoryResponseRepo) status(responseID string) string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.responses[responseID].ProcessStatus
}

type memoryItineraryRepo struct {
	mu          sync.Mutex
	itineraries map[string]*entity.Itinerary
	upsertErr   error
}

func newMemoryItineraryRepo() *memoryItineraryRepo {
	return &memoryItineraryRepo{itineraries: make(map[string]*entity.Itinerary)}
}

func (r *memoryItineraryRepo) FindByResponseID(_ context.Context, responseID string) (*entity.Itinerary, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	itinerary, ok := r.itineraries[responseID]
	if !ok {
		return nil, entity.ErrNotFound
	}
	return itinerary, nil
}

func (r *memoryItineraryRepo) Upsert(_ context.Context, itinerary *entity.Itinerary) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.upsertErr != nil {
		return r.upsertErr
	}
	r.itineraries[itinerary.ResponseID] = itinerary
	return nil
}

type memoryAirlineRepo struct {
	airlines map[string]*entity.Airline
	err      error
}

func (r *memoryAirlineRepo) GetByCode(_ context.Context, code string) (*entity.Airline, error) {
	if r.err != nil {
		return nil, r.err
	}
	airline, ok := r.airlines[code]
	if !ok {
		return nil, entity.ErrNotFound
	}
	return airline, nil
}

type failingProcessor struct {
	fail map[string]bool
	seen []string
}

func (p *failingProcessor) ProcessResponse(_ context.Context, response *entity.AgentResponse) error {
	p.seen = append(p.seen, response.ResponseID)
	if p.fail[response.ResponseID] {
		return errors.New("boom")
	}
	return nil
}
