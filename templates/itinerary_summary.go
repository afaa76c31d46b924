package templates

import (
	"fmt"
	"strings"

	"travelplan-service/internal/domain/entity"
	"travelplan-service/pkg/parser"
)

const (
	SUMMARY_HEADER      = "Voyage %s -> %s"
	SUMMARY_CHEAPEST    = "Vol le moins cher : %s, départ %s, %s€"
	SUMMARY_NO_FLIGHT   = "Aucun vol trouvé"
	SUMMARY_HOTELS      = "Hôtels (%d) :"
	SUMMARY_HOTEL_LINE  = "- %s à %s, %s€/nuit"
	SUMMARY_ACTIVITIES  = "Activités et restaurants (%d) :"
	SUMMARY_ACTIVITY    = "- [%s] %s, %s€"
	SUMMARY_UNKNOWN_LEG = "?"
)

// ItinerarySummary renders a short plain-text summary of an itinerary:
// the cheapest flight first, then hotels, then activities.
func ItinerarySummary(itinerary *entity.Itinerary) string {
	var b strings.Builder

	origin := orUnknown(itinerary.Query.Origin)
	destination := orUnknown(itinerary.Query.Destination)
	if flight, ok := itinerary.CheapestFlight(); ok {
		if itinerary.Query.Origin == "" {
			origin = orUnknown(flight.Origin)
		}
		if itinerary.Query.Destination == "" {
			destination = orUnknown(flight.Destination)
		}
		fmt.Fprintf(&b, SUMMARY_HEADER+"\n", origin, destination)
		fmt.Fprintf(&b, SUMMARY_CHEAPEST+"\n", flight.Airline, flight.Departure, flight.Price)
	} else {
		fmt.Fprintf(&b, SUMMARY_HEADER+"\n", origin, destination)
		b.WriteString(SUMMARY_NO_FLIGHT + "\n")
	}

	if len(itinerary.Hotels) > 0 {
		fmt.Fprintf(&b, "\n"+SUMMARY_HOTELS+"\n", len(itinerary.Hotels))
		for _, hotel := range itinerary.Hotels {
			fmt.Fprintf(&b, SUMMARY_HOTEL_LINE+"\n", hotel.Name, hotel.City, hotel.Price)
		}
	}

	if len(itinerary.Activities) > 0 {
		fmt.Fprintf(&b, "\n"+SUMMARY_ACTIVITIES+"\n", len(itinerary.Activities))
		for _, activity := range itinerary.Activities {
			fmt.Fprintf(&b, SUMMARY_ACTIVITY+"\n", activity.Type, activity.Name, activity.Price)
		}
	}

	return strings.TrimRight(b.String(), "\n")
}

func orUnknown(s string) string {
	if s == "" || s == parser.NotAvailable {
		return SUMMARY_UNKNOWN_LEG
	}
	return s
}
