package parser

import (
	"regexp"
	"strings"
)

var (
	// - Air France (AF123) : Paris -> Tokyo | départ 2026-03-01 10:00 arrivée 2026-03-02 06:00 pour 850.5€
	strictFlightRe = regexp.MustCompile(`(?im)^[ \t]*-[ \t]*([^:\n]+?)[ \t]*:[ \t]*([^\n]+?)[ \t]*->[ \t]*([^|\n]+?)[ \t]*\|[ \t]*d\S{0,3}part(?:[ \t]+à)?[ \t]+([^\n]+?)[ \t]+arriv\S*[ \t]+([^\n]+?)[ \t]+pour[ \t]+(\d+(?:[.,]\d+)?)[ \t]*€`)

	flightCodeRe  = regexp.MustCompile(`\(([^()]+)\)`)
	flightRouteRe = regexp.MustCompile(`:[ \t]*([^|:\n]+?)[ \t]*->[ \t]*([^|,\n]+?)[ \t]*(?:[|,]|$)`)

	timestampPattern  = `(\d{4}-\d{2}-\d{2}(?:[ T]\d{2}:\d{2})?|\S+)`
	looseDepartureRe  = regexp.MustCompile(`(?i)\bd\S{0,3}part(?:ure)?\b(?:[ \t]+à)?[ \t]*:?[ \t]*` + timestampPattern)
	looseArrivalRe    = regexp.MustCompile(`(?i)\barriv\S*(?:[ \t]+à)?[ \t]*:?[ \t]*` + timestampPattern)
	looseAirlineEndRe = regexp.MustCompile(`(?i)[(:]|\bd\S{0,3}part|[ \t]pour[ \t]`)
)

type strictFlightKey struct{ airline, departure, arrival string }

type looseFlightKey struct{ airline, departure, price string }

// ParseFlights converts a text block into flight records. The loose pass runs
// only when the strict pattern matched nothing.
func ParseFlights(block string) []FlightRecord {
	flights, _ := parseFlights(block)
	return flights
}

func parseFlights(block string) ([]FlightRecord, Tier) {
	if flights := TryStrictFlights(block); len(flights) > 0 {
		return flights, TierStrict
	}
	if flights := TryLooseFlights(block); len(flights) > 0 {
		return flights, TierLoose
	}
	return []FlightRecord{}, TierNone
}

// TryStrictFlights matches the exact flight line format requested from the agent
func TryStrictFlights(block string) []FlightRecord {
	matches := strictFlightRe.FindAllStringSubmatch(normalizeText(block), -1)

	flights := make([]FlightRecord, 0, len(matches))
	for _, match := range matches {
		flights = append(flights, FlightRecord{
			Airline:     strings.TrimSpace(match[1]),
			Origin:      strings.TrimSpace(match[2]),
			Destination: strings.TrimSpace(match[3]),
			Departure:   strings.TrimSpace(match[4]),
			Arrival:     strings.TrimSpace(match[5]),
			Price:       normalizePrice(match[6]),
		})
	}

	return dedupe(flights, func(f FlightRecord) strictFlightKey {
		return strictFlightKey{f.Airline, f.Departure, f.Arrival}
	})
}

// TryLooseFlights accepts any "- ..." line carrying a price and recovers what
// it can. Lines that look like hotels or activities are left to their parsers.
func TryLooseFlights(block string) []FlightRecord {
	var flights []FlightRecord

	for _, line := range nonEmptyLines(block) {
		if !strings.HasPrefix(line, "-") {
			continue
		}
		priceMatch := priceTokenRe.FindStringSubmatch(line)
		if priceMatch == nil {
			continue
		}
		if hasHotelMarker(line) {
			continue
		}
		if hasActivityVocabulary(line) && !hasFlightCue(line) {
			continue
		}

		body := trimBullet(line)
		flight := FlightRecord{
			Airline:   looseAirline(body),
			Departure: NotAvailable,
			Arrival:   NotAvailable,
			Price:     normalizePrice(priceMatch[1]),
		}
		if route := flightRouteRe.FindStringSubmatch(body); route != nil {
			flight.Origin = strings.TrimSpace(route[1])
			flight.Destination = strings.TrimSpace(route[2])
		}
		if departure := looseDepartureRe.FindStringSubmatch(body); departure != nil {
			flight.Departure = strings.TrimSpace(departure[1])
		}
		if arrival := looseArrivalRe.FindStringSubmatch(body); arrival != nil {
			flight.Arrival = strings.TrimSpace(arrival[1])
		}
		flights = append(flights, flight)
	}

	return dedupe(flights, func(f FlightRecord) looseFlightKey {
		return looseFlightKey{f.Airline, f.Departure, f.Price}
	})
}

// looseAirline keeps the text before the first "(" or ":" and appends the
// flight code found in parentheses.
func looseAirline(body string) string {
	name := body
	if loc := looseAirlineEndRe.FindStringIndex(body); loc != nil {
		name = body[:loc[0]]
	}
	name = strings.TrimSpace(name)

	if match := flightCodeRe.FindStringSubmatch(body); match != nil {
		code := strings.TrimSpace(match[1])
		if name == "" {
			return code
		}
		return name + " (" + code + ")"
	}
	return name
}
