package parser

import (
	"encoding/json"
	"strings"

	"github.com/kaptinlin/jsonrepair"
)

// IntentAction is one tool call suggested by the refine agent
type IntentAction struct {
	Tool   string                 `json:"tool"`
	Params map[string]interface{} `json:"params"`
}

// Intent is the refinement plan returned by the refine agent
type Intent struct {
	Intent          string         `json:"intent"`
	ResponseMessage string         `json:"response_message"`
	Actions         []IntentAction `json:"actions"`
}

// DefaultIntent is used when the agent answer cannot be decoded: search
// restaurants in the given city.
func DefaultIntent(city string) Intent {
	return Intent{
		Intent:          "activities",
		ResponseMessage: "Recherche en cours...",
		Actions: []IntentAction{{
			Tool:   "search_restaurants",
			Params: map[string]interface{}{"city": city},
		}},
	}
}

// ParseIntent decodes the intent JSON of the refine agent. Code fences are
// removed, broken JSON is repaired, and anything still unreadable falls back
// to DefaultIntent(defaultCity).
func ParseIntent(text, defaultCity string) Intent {
	cleaned := stripCodeFences(strings.TrimSpace(text))
	if cleaned == "" {
		return DefaultIntent(defaultCity)
	}

	if intent, ok := decodeIntent(cleaned); ok {
		return intent
	}

	repaired, err := jsonrepair.JSONRepair(cleaned)
	if err == nil {
		if intent, ok := decodeIntent(repaired); ok {
			return intent
		}
	}

	return DefaultIntent(defaultCity)
}

func decodeIntent(data string) (Intent, bool) {
	var intent Intent
	if err := json.Unmarshal([]byte(data), &intent); err != nil {
		return Intent{}, false
	}
	if intent.Intent == "" {
		return Intent{}, false
	}
	return intent, true
}
