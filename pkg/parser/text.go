package parser

import (
	"regexp"
	"strings"

	"github.com/samber/lo"
	"golang.org/x/text/unicode/norm"
)

var (
	// <number>€ with either decimal separator
	priceTokenRe = regexp.MustCompile(`(\d+(?:[.,]\d+)?)[ \t]*€`)

	// départ, depart and mis-decoded variants such as dÃ©part
	departKeywordRe = regexp.MustCompile(`(?i)\bd\S{0,3}part\b`)
)

var (
	foodVocabulary = []string{"restaurant", "cuisine", "menu", "plat", "gastronomie"}

	activityVocabulary = []string{
		"activité", "activite", "musée", "musee", "visite", "excursion",
		"restaurant", "cuisine", "menu", "gastronomie",
	}

	hotelMarkers = []string{"€/nuit", "dispo:", "services:"}
)

// normalizeText composes accents and unifies line endings so that
// decomposed "départ" and CRLF input match the same patterns.
func normalizeText(text string) string {
	text = norm.NFC.String(text)
	text = strings.ReplaceAll(text, "\r\n", "\n")
	return strings.ReplaceAll(text, "\r", "\n")
}

// normalizePrice turns "850,5" into "850.5"
func normalizePrice(price string) string {
	return strings.ReplaceAll(strings.TrimSpace(price), ",", ".")
}

func nonEmptyLines(block string) []string {
	lines := strings.Split(normalizeText(block), "\n")
	return lo.FilterMap(lines, func(line string, _ int) (string, bool) {
		line = strings.TrimSpace(line)
		return line, line != ""
	})
}

// compactMarkers removes spaces so "€ / nuit" and "Dispo :" are detected too
func compactMarkers(line string) string {
	return strings.ToLower(strings.Join(strings.Fields(line), ""))
}

func containsAny(text string, words []string) bool {
	return lo.SomeBy(words, func(word string) bool {
		return strings.Contains(text, word)
	})
}

func hasHotelMarker(line string) bool {
	return containsAny(compactMarkers(line), hotelMarkers)
}

func hasNightlyPrice(line string) bool {
	return strings.Contains(compactMarkers(line), "€/nuit")
}

func hasActivityVocabulary(line string) bool {
	return containsAny(strings.ToLower(line), activityVocabulary)
}

func hasFoodVocabulary(line string) bool {
	return containsAny(strings.ToLower(line), foodVocabulary)
}

// hasFlightCue reports lines shaped like a flight: a route arrow or a
// departure keyword.
func hasFlightCue(line string) bool {
	return strings.Contains(line, "->") || departKeywordRe.MatchString(line)
}

// trimBullet strips the leading list marker of a line
func trimBullet(line string) string {
	return strings.TrimSpace(strings.TrimLeft(strings.TrimSpace(line), "-*•"))
}

// balanceParens drops trailing ")" that have no opening counterpart
func balanceParens(text string) string {
	text = strings.TrimSpace(text)
	for strings.HasSuffix(text, ")") && strings.Count(text, ")") > strings.Count(text, "(") {
		text = strings.TrimSpace(strings.TrimSuffix(text, ")"))
	}
	return text
}

// dedupe keeps the first record seen for every key, preserving input order
func dedupe[T any, K comparable](records []T, key func(T) K) []T {
	return lo.UniqBy(records, key)
}
