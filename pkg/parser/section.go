package parser

import (
	"regexp"
	"strings"
)

var (
	codeFenceRe = regexp.MustCompile("```[A-Za-z]*")

	// {..."result":"<escaped text>"...} with at most one nested object level
	resultFragmentRe = regexp.MustCompile(`\{(?:[^{}]|\{[^{}]*\})*?"result"\s*:\s*"((?:[^"\\]|\\.)*)"(?:[^{}]|\{[^{}]*\})*\}`)

	resultUnescaper = strings.NewReplacer(`\n`, "\n", `\'`, "'", `\"`, `"`)
)

// ExtractSection returns the text strictly between the first start marker and
// the next end marker. Missing or unmatched markers yield "".
func ExtractSection(text, start, end string) string {
	startIdx := strings.Index(text, start)
	if startIdx == -1 {
		return ""
	}
	rest := text[startIdx+len(start):]

	endIdx := strings.Index(rest, end)
	if endIdx == -1 {
		return ""
	}

	return cleanSection(strings.TrimSpace(rest[:endIdx]))
}

// HasSectionMarkers reports whether any category start marker is present
func HasSectionMarkers(text string) bool {
	return containsAny(text, []string{FlightsStart, ActivitiesStart, RestaurantsStart, HotelsStart})
}

// cleanSection recovers plain text from a block the generator wrapped in a
// code fence or in JSON tool results.
func cleanSection(block string) string {
	if !strings.Contains(block, "```") && !strings.Contains(block, `{"`) {
		return block
	}

	stripped := stripCodeFences(block)

	matches := resultFragmentRe.FindAllStringSubmatch(stripped, -1)
	if len(matches) == 0 {
		return stripped
	}

	seen := make(map[string]struct{}, len(matches))
	recovered := make([]string, 0, len(matches))
	for _, match := range matches {
		if _, ok := seen[match[0]]; ok {
			continue
		}
		seen[match[0]] = struct{}{}
		recovered = append(recovered, resultUnescaper.Replace(match[1]))
	}

	return strings.Join(recovered, "\n")
}

func stripCodeFences(text string) string {
	return strings.TrimSpace(codeFenceRe.ReplaceAllString(text, ""))
}
