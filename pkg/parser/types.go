package parser

import "strconv"

// Section markers written by the supervisor agent around each category.
const (
	FlightsStart     = "### DEBUT_VOLS ###"
	FlightsEnd       = "### FIN_VOLS ###"
	ActivitiesStart  = "### DEBUT_ACTIVITES ###"
	ActivitiesEnd    = "### FIN_ACTIVITES ###"
	RestaurantsStart = "### DEBUT_RESTAURANTS ###"
	RestaurantsEnd   = "### FIN_RESTAURANTS ###"
	HotelsStart      = "### DEBUT_HOTELS ###"
	HotelsEnd        = "### FIN_HOTELS ###"
)

// NotAvailable fills flight times the loose parser could not recover.
const NotAvailable = "N/A"

// ActivityType is the canonical category of an ActivityRecord
type ActivityType string

const (
	ActivityTypeActivity   ActivityType = "Activité"
	ActivityTypeRestaurant ActivityType = "Restaurant"
)

// Tier tells which parsing pass produced a record list
type Tier string

const (
	TierNone   Tier = "none"
	TierStrict Tier = "strict"
	TierLoose  Tier = "loose"
)

// FlightRecord represents one flight offer recovered from agent text
type FlightRecord struct {
	Airline     string `json:"airline" bson:"airline"`
	Origin      string `json:"origin" bson:"origin"`
	Destination string `json:"destination" bson:"destination"`
	Departure   string `json:"departure" bson:"departure"`
	Arrival     string `json:"arrival" bson:"arrival"`
	Price       string `json:"price" bson:"price"`
}

// Amount returns the price as a number when it parses
func (f FlightRecord) Amount() (float64, bool) {
	return parseAmount(f.Price)
}

// HotelRecord represents one hotel offer, Price is per night
type HotelRecord struct {
	Name           string `json:"name" bson:"name"`
	City           string `json:"city" bson:"city"`
	Price          string `json:"price" bson:"price"`
	AvailableStart string `json:"available_start" bson:"availableStart"`
	AvailableEnd   string `json:"available_end" bson:"availableEnd"`
	Amenities      string `json:"amenities" bson:"amenities"`
}

// Amount returns the nightly price as a number when it parses
func (h HotelRecord) Amount() (float64, bool) {
	return parseAmount(h.Price)
}

// ActivityRecord represents an activity or a restaurant
type ActivityRecord struct {
	Type        ActivityType `json:"type" bson:"type"`
	Name        string       `json:"name" bson:"name"`
	Price       string       `json:"price" bson:"price"`
	Description string       `json:"description" bson:"description"`
}

// Amount returns the price as a number when it parses
func (a ActivityRecord) Amount() (float64, bool) {
	return parseAmount(a.Price)
}

func parseAmount(price string) (float64, bool) {
	value, err := strconv.ParseFloat(price, 64)
	if err != nil {
		return 0, false
	}
	return value, true
}
