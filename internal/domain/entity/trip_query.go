package entity

import (
	"strings"
)

// anywhereDestinations are answers meaning "no destination filter"
var anywhereDestinations = []string{"partout", "n'importe où", "anywhere", "none"}

// TripQuery is what the traveller asked the agents for
type TripQuery struct {
	Origin      string  `bson:"origin" json:"origin"`
	Destination string  `bson:"destination" json:"destination"`
	Preferences string  `bson:"preferences" json:"preferences,omitempty"`
	Budget      float64 `bson:"budget" json:"budget,omitempty"`
	DateStart   string  `bson:"dateStart" json:"dateStart,omitempty"`
	DateEnd     string  `bson:"dateEnd" json:"dateEnd,omitempty"`
}

// Normalize trims every field and clears destinations meaning "anywhere"
func (q TripQuery) Normalize() TripQuery {
	q.Origin = strings.TrimSpace(q.Origin)
	q.Destination = strings.TrimSpace(q.Destination)
	q.Preferences = strings.TrimSpace(q.Preferences)
	q.DateStart = strings.TrimSpace(q.DateStart)
	q.DateEnd = strings.TrimSpace(q.DateEnd)
	if q.Budget < 0 {
		q.Budget = 0
	}

	for _, anywhere := range anywhereDestinations {
		if strings.EqualFold(q.Destination, anywhere) {
			q.Destination = ""
			break
		}
	}
	return q
}

// City returns the city the stay happens in
func (q TripQuery) City() string {
	if q.Destination != "" {
		return q.Destination
	}
	return q.Origin
}
