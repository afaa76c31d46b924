// internal/domain/entity/itinerary.go
package entity

import (
	"time"

	"travelplan-service/pkg/parser"
)

// Itinerary holds the structured records recovered from one agent response
type Itinerary struct {
	ID         string                  `bson:"_id,omitempty" json:"id"`
	ResponseID string                  `bson:"responseId" json:"responseId"` // unique index
	SessionID  string                  `bson:"sessionId" json:"sessionId"`
	Query      TripQuery               `bson:"query" json:"query"`
	Flights    []parser.FlightRecord   `bson:"flights" json:"flights"`
	Hotels     []parser.HotelRecord    `bson:"hotels" json:"hotels"`
	Activities []parser.ActivityRecord `bson:"activities" json:"activities"`
	Sectioned  bool                    `bson:"sectioned" json:"sectioned"`
	CreatedAt  time.Time               `bson:"createdAt" json:"createdAt"`
	UpdatedAt  time.Time               `bson:"updatedAt" json:"updatedAt"`
}

// CheapestFlight returns the lowest priced flight with a readable price
func (i *Itinerary) CheapestFlight() (parser.FlightRecord, bool) {
	var (
		best  parser.FlightRecord
		price float64
		found bool
	)
	for _, flight := range i.Flights {
		amount, ok := flight.Amount()
		if !ok {
			continue
		}
		if !found || amount < price {
			best, price, found = flight, amount, true
		}
	}
	return best, found
}

// Restaurants returns the activities typed as restaurants
func (i *Itinerary) Restaurants() []parser.ActivityRecord {
	var restaurants []parser.ActivityRecord
	for _, activity := range i.Activities {
		if activity.Type == parser.ActivityTypeRestaurant {
			restaurants = append(restaurants, activity)
		}
	}
	return restaurants
}
