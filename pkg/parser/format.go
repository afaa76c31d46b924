package parser

import (
	"fmt"
	"strings"
)

// FormatFlight renders a flight in the line format the flight tool emits
func FormatFlight(f FlightRecord) string {
	return fmt.Sprintf("- %s : %s -> %s | départ %s arrivée %s pour %s€",
		f.Airline, f.Origin, f.Destination, f.Departure, f.Arrival, f.Price)
}

// FormatHotel renders a hotel in the line format the hotel tool emits
func FormatHotel(h HotelRecord) string {
	return fmt.Sprintf("- %s à %s pour %s€/nuit (Dispo: %s au %s, Services: %s)",
		h.Name, h.City, h.Price, h.AvailableStart, h.AvailableEnd, h.Amenities)
}

// FormatActivity renders an activity or restaurant line
func FormatActivity(a ActivityRecord) string {
	return fmt.Sprintf("%s, %s, %s€, %s", a.Type, a.Name, a.Price, a.Description)
}

// FormatResult renders a result back into a sectioned response
func FormatResult(r Result) string {
	var builder strings.Builder

	writeSection := func(start, end string, lines []string) {
		if len(lines) == 0 {
			return
		}
		builder.WriteString(start + "\n")
		for _, line := range lines {
			builder.WriteString(line + "\n")
		}
		builder.WriteString(end + "\n")
	}

	flights := make([]string, 0, len(r.Flights))
	for _, f := range r.Flights {
		flights = append(flights, FormatFlight(f))
	}
	activities := make([]string, 0, len(r.Activities))
	for _, a := range r.Activities {
		activities = append(activities, FormatActivity(a))
	}
	hotels := make([]string, 0, len(r.Hotels))
	for _, h := range r.Hotels {
		hotels = append(hotels, FormatHotel(h))
	}

	writeSection(FlightsStart, FlightsEnd, flights)
	writeSection(ActivitiesStart, ActivitiesEnd, activities)
	writeSection(HotelsStart, HotelsEnd, hotels)

	return builder.String()
}
