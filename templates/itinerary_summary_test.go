package templates

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"travelplan-service/internal/domain/entity"
	"travelplan-service/pkg/parser"
)

func TestItinerarySummary(t *testing.T) {
	itinerary := &entity.Itinerary{
		Query: entity.TripQuery{Origin: "Paris"},
		Flights: []parser.FlightRecord{
			{Airline: "Air France (AF123)", Origin: "Paris", Destination: "Tokyo", Departure: "2026-03-01 10:00", Price: "850.5"},
			{Airline: "Iberia (IB3401)", Origin: "Paris", Destination: "Tokyo", Departure: "2026-03-01 12:00", Price: "700"},
		},
		Hotels: []parser.HotelRecord{
			{Name: "Park Hyatt", City: "Tokyo", Price: "420"},
		},
		Activities: []parser.ActivityRecord{
			{Type: parser.ActivityTypeRestaurant, Name: "Sushi Dojo", Price: "45"},
		},
	}

	expected := "Voyage Paris -> Tokyo\n" +
		"Vol le moins cher : Iberia (IB3401), départ 2026-03-01 12:00, 700€\n" +
		"\n" +
		"Hôtels (1) :\n" +
		"- Park Hyatt à Tokyo, 420€/nuit\n" +
		"\n" +
		"Activités et restaurants (1) :\n" +
		"- [Restaurant] Sushi Dojo, 45€"

	assert.Equal(t, expected, ItinerarySummary(itinerary))
}

func TestItinerarySummary_NoFlights(t *testing.T) {
	itinerary := &entity.Itinerary{}

	assert.Equal(t, "Voyage ? -> ?\nAucun vol trouvé", ItinerarySummary(itinerary))
}
