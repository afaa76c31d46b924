package parser

import (
	"regexp"
	"strings"
)

var (
	// Restaurant, Sushi Dojo, 45€, Sushi japonais traditionnel
	strictActivityRe = regexp.MustCompile(`(?im)^[ \t]*(?:-[ \t]*)?(activit[ée]|restaurant)[ \t]*,[ \t]*([^,\n]+?)[ \t]*,[ \t]*(\d+(?:[.,]\d+)?)[ \t]*€[ \t]*(?:,[ \t]*([^\n]*?))?[ \t]*$`)

	activityTypeFieldRe = regexp.MustCompile(`(?i)^(activit[ée]|restaurant)$`)
)

type activityKey struct{ name, price string }

// ParseActivities converts a text block into activity and restaurant records.
// The loose pass runs only when the strict pattern matched nothing.
func ParseActivities(block string) []ActivityRecord {
	activities, _ := parseActivities(block)
	return activities
}

func parseActivities(block string) ([]ActivityRecord, Tier) {
	if activities := TryStrictActivities(block); len(activities) > 0 {
		return activities, TierStrict
	}
	if activities := TryLooseActivities(block); len(activities) > 0 {
		return activities, TierLoose
	}
	return []ActivityRecord{}, TierNone
}

// TryStrictActivities matches "<Type>, <name>, <price>€, <description>" lines
func TryStrictActivities(block string) []ActivityRecord {
	matches := strictActivityRe.FindAllStringSubmatch(normalizeText(block), -1)

	activities := make([]ActivityRecord, 0, len(matches))
	for _, match := range matches {
		activities = append(activities, ActivityRecord{
			Type:        canonicalActivityType(match[1]),
			Name:        strings.TrimSpace(match[2]),
			Price:       normalizePrice(match[3]),
			Description: strings.TrimSpace(match[4]),
		})
	}

	return dedupe(activities, activityKeyOf)
}

// TryLooseActivities keeps any priced line that is neither a hotel nor a
// flight and guesses its type from food vocabulary.
func TryLooseActivities(block string) []ActivityRecord {
	var activities []ActivityRecord

	for _, line := range nonEmptyLines(block) {
		if hasHotelMarker(line) {
			continue
		}
		if hasFlightCue(line) && !hasActivityVocabulary(line) {
			continue
		}
		priceMatch := priceTokenRe.FindStringSubmatchIndex(line)
		if priceMatch == nil {
			continue
		}

		activityType := ActivityTypeActivity
		if hasFoodVocabulary(line) {
			activityType = ActivityTypeRestaurant
		}

		rest := trimBullet(line[:priceMatch[0]] + line[priceMatch[1]:])
		fields := strings.SplitN(rest, ",", 2)
		if activityTypeFieldRe.MatchString(strings.TrimSpace(fields[0])) && len(fields) == 2 {
			activityType = canonicalActivityType(fields[0])
			fields = strings.SplitN(strings.TrimSpace(fields[1]), ",", 2)
		}

		activity := ActivityRecord{
			Type:  activityType,
			Name:  strings.Trim(fields[0], " \t,;:-"),
			Price: normalizePrice(line[priceMatch[2]:priceMatch[3]]),
		}
		if len(fields) == 2 {
			activity.Description = strings.Trim(fields[1], " \t,;:-")
		}
		if activity.Name == "" {
			continue
		}
		activities = append(activities, activity)
	}

	return dedupe(activities, activityKeyOf)
}

func activityKeyOf(a ActivityRecord) activityKey {
	return activityKey{a.Name, a.Price}
}

func canonicalActivityType(raw string) ActivityType {
	if strings.EqualFold(strings.TrimSpace(raw), string(ActivityTypeRestaurant)) {
		return ActivityTypeRestaurant
	}
	return ActivityTypeActivity
}
