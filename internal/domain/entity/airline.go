package entity

import (
	"time"

	"gorm.io/gorm"
)

// Airline represents an airline entity
type Airline struct {
	ID        uint
	Code      string
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt
}

// Label renders the airline the way agents quote it, "Air France (AF123)"
func (a *Airline) Label(flightCode string) string {
	if flightCode == "" {
		return a.Name
	}
	return a.Name + " (" + flightCode + ")"
}
