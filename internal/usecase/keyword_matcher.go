package usecase

import (
	"strings"
	"unicode"

	"github.com/samber/lo"
)

// KeywordMatcher accepts messages containing one of its keywords as a whole word
type KeywordMatcher struct {
	category string
	keywords []string
}

// NewKeywordMatcher creates a new keyword matcher
func NewKeywordMatcher(category string, keywords []string) *KeywordMatcher {
	return &KeywordMatcher{
		category: category,
		keywords: lo.Map(keywords, func(k string, _ int) string { return strings.ToLower(k) }),
	}
}

// Category returns the category this matcher routes to
func (m *KeywordMatcher) Category() string {
	return m.category
}

// CanHandle checks whether any word of the message is a keyword or its plural
func (m *KeywordMatcher) CanHandle(message string) bool {
	words := strings.FieldsFunc(strings.ToLower(message), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})

	for _, word := range words {
		for _, keyword := range m.keywords {
			if word == keyword || word == keyword+"s" || word == keyword+"x" {
				return true
			}
		}
	}
	return false
}

// DefaultMatchers returns the refinement matchers in routing priority:
// food and sightseeing first, then lodging, then flights.
func DefaultMatchers() []CategoryMatcher {
	return []CategoryMatcher{
		NewKeywordMatcher(CategoryActivities, []string{
			"restaurant", "resto", "manger", "nourriture", "cuisine", "gastronomie",
			"tapas", "vegan", "végétarien", "italien", "food",
			"activité", "activite", "musée", "musee", "visite", "tourisme",
			"excursion", "monument", "balade", "activity", "museum",
		}),
		NewKeywordMatcher(CategoryHotels, []string{
			"hôtel", "hotel", "logement", "hébergement", "chambre", "nuit",
			"spa", "piscine", "wifi", "lodging",
		}),
		NewKeywordMatcher(CategoryFlights, []string{
			"vol", "avion", "aérien", "aerien", "compagnie", "escale",
			"flight", "airline",
		}),
	}
}
