package parser

import (
	"regexp"
	"strings"
)

var (
	// - Tokyo Grand Hotel à Tokyo pour 120€/nuit (Dispo: 2026-03-01 au 2026-03-10, Services: WiFi, Spa)
	strictHotelRe = regexp.MustCompile(`(?im)^[ \t]*-[ \t]*([^\n]+?)[ \t]+(?:à|a)[ \t]+([^\n]+?)[ \t]+pour[ \t]+(\d+(?:[.,]\d+)?)[ \t]*€[ \t]*/[ \t]*nuit[ \t]*\([ \t]*Dispo[ \t]*:[ \t]*([^\n]+?)[ \t]+au[ \t]+([^\n]+?)[ \t]*,[ \t]*Services[ \t]*:[ \t]*([^\n]*)$`)

	looseHotelNameEndRe = regexp.MustCompile(`(?i)[ \t]à[ \t]|[ \t]pour[ \t]|\(|\d+(?:[.,]\d+)?[ \t]*€`)
	looseHotelCityRe    = regexp.MustCompile(`(?i)[ \t]à[ \t]+([^\n]+?)[ \t]+pour[ \t]`)
	looseHotelDatesRe   = regexp.MustCompile(`(?i)Dispo[ \t]*:[ \t]*([^\n]+?)[ \t]+au[ \t]+([^,)\n]+)`)
	looseAmenitiesRe    = regexp.MustCompile(`(?i)Services[ \t]*:[ \t]*([^)\n]*)`)
)

type hotelKey struct{ name, city string }

// ParseHotels converts a text block into hotel records. The loose pass runs
// only when the strict pattern matched nothing.
func ParseHotels(block string) []HotelRecord {
	hotels, _ := parseHotels(block)
	return hotels
}

func parseHotels(block string) ([]HotelRecord, Tier) {
	if hotels := TryStrictHotels(block); len(hotels) > 0 {
		return hotels, TierStrict
	}
	if hotels := TryLooseHotels(block); len(hotels) > 0 {
		return hotels, TierLoose
	}
	return []HotelRecord{}, TierNone
}

// TryStrictHotels matches the exact hotel line format requested from the agent
func TryStrictHotels(block string) []HotelRecord {
	matches := strictHotelRe.FindAllStringSubmatch(normalizeText(block), -1)

	hotels := make([]HotelRecord, 0, len(matches))
	for _, match := range matches {
		name, city := splitHotelName(strings.TrimSpace(match[1]), strings.TrimSpace(match[2]))
		hotels = append(hotels, HotelRecord{
			Name:           name,
			City:           city,
			Price:          normalizePrice(match[3]),
			AvailableStart: strings.TrimSpace(match[4]),
			AvailableEnd:   strings.TrimSpace(match[5]),
			Amenities:      balanceParens(match[6]),
		})
	}

	return dedupe(hotels, hotelKeyOf)
}

// TryLooseHotels scans "- ..." lines carrying a euro price. Activity,
// restaurant and flight lines are skipped unless they quote a nightly rate.
func TryLooseHotels(block string) []HotelRecord {
	var hotels []HotelRecord

	for _, line := range nonEmptyLines(block) {
		if !strings.HasPrefix(line, "-") || !strings.Contains(line, "€") {
			continue
		}
		if (hasActivityVocabulary(line) || hasFlightCue(line)) && !hasNightlyPrice(line) {
			continue
		}

		body := trimBullet(line)
		hotel := HotelRecord{Name: body}
		if loc := looseHotelNameEndRe.FindStringIndex(body); loc != nil {
			hotel.Name = strings.Trim(body[:loc[0]], " \t,:-")
		}
		if city := looseHotelCityRe.FindStringSubmatch(body); city != nil {
			hotel.City = strings.TrimSpace(city[1])
		}
		if price := priceTokenRe.FindStringSubmatch(body); price != nil {
			hotel.Price = normalizePrice(price[1])
		}
		if dates := looseHotelDatesRe.FindStringSubmatch(body); dates != nil {
			hotel.AvailableStart = strings.TrimSpace(dates[1])
			hotel.AvailableEnd = strings.TrimSpace(dates[2])
		}
		if amenities := looseAmenitiesRe.FindStringSubmatch(body); amenities != nil {
			hotel.Amenities = balanceParens(amenities[1])
		}
		hotels = append(hotels, hotel)
	}

	return dedupe(hotels, hotelKeyOf)
}

func hotelKeyOf(h HotelRecord) hotelKey {
	return hotelKey{h.Name, h.City}
}

// splitHotelName moves a lazily split " a " back into the name when the city
// capture still holds the real " à " separator.
func splitHotelName(name, city string) (string, string) {
	if idx := strings.LastIndex(city, " à "); idx != -1 {
		return name + " a " + strings.TrimSpace(city[:idx]), strings.TrimSpace(city[idx+len(" à "):])
	}
	return name, city
}
