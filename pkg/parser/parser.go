package parser

import (
	"strings"

	"travelplan-service/pkg/logger"
)

// Result holds the three record lists recovered from one agent response
type Result struct {
	Flights    []FlightRecord   `json:"flights"`
	Hotels     []HotelRecord    `json:"hotels"`
	Activities []ActivityRecord `json:"activities"`

	// Sectioned is false when no marker was found and the full text was parsed
	Sectioned bool  `json:"-"`
	Tiers     Tiers `json:"-"`
}

// Tiers records which pass produced each list
type Tiers struct {
	Flights    Tier
	Hotels     Tier
	Activities Tier
}

// Empty reports whether nothing at all was recovered
func (r Result) Empty() bool {
	return len(r.Flights) == 0 && len(r.Hotels) == 0 && len(r.Activities) == 0
}

// ResponseParser normalizes raw agent responses into structured records
type ResponseParser struct {
	logger logger.Logger
}

// NewResponseParser creates a new response parser
func NewResponseParser(logger logger.Logger) *ResponseParser {
	return &ResponseParser{
		logger: logger,
	}
}

// Parse splits the response on section markers and runs each category
// parser. Without any marker the full text is handed to all three parsers,
// which sniff for their own lines. Parse never fails; the worst case is
// three empty lists.
func (p *ResponseParser) Parse(raw string) Result {
	text := normalizeText(raw)

	var result Result
	if HasSectionMarkers(text) {
		result = parseSections(text)
	} else {
		p.logger.Debug("No section markers found, parsing full response", "length", len(text))
		result = parseFullText(text)
	}

	p.logger.Info("Parsed agent response",
		"sectioned", result.Sectioned,
		"flights", len(result.Flights),
		"flightsTier", result.Tiers.Flights,
		"hotels", len(result.Hotels),
		"hotelsTier", result.Tiers.Hotels,
		"activities", len(result.Activities),
		"activitiesTier", result.Tiers.Activities)

	return result
}

func parseSections(text string) Result {
	activityBlocks := []string{
		ExtractSection(text, ActivitiesStart, ActivitiesEnd),
		ExtractSection(text, RestaurantsStart, RestaurantsEnd),
	}

	result := Result{Sectioned: true}
	result.Flights, result.Tiers.Flights = parseFlights(ExtractSection(text, FlightsStart, FlightsEnd))
	result.Hotels, result.Tiers.Hotels = parseHotels(ExtractSection(text, HotelsStart, HotelsEnd))
	result.Activities, result.Tiers.Activities = parseActivities(strings.Join(activityBlocks, "\n"))
	return result
}

func parseFullText(text string) Result {
	var result Result
	result.Flights, result.Tiers.Flights = parseFlights(text)
	result.Hotels, result.Tiers.Hotels = parseHotels(text)
	result.Activities, result.Tiers.Activities = parseActivities(text)
	return result
}
