package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseIntent_FencedJSON(t *testing.T) {
	text := "```json\n{\"intent\": \"hotels\", \"response_message\": \"Je cherche des hôtels\", \"actions\": [{\"tool\": \"search_hotels\", \"params\": {\"city\": \"Rome\", \"budget\": 120}}]}\n```"

	intent := ParseIntent(text, "Paris")

	assert.Equal(t, "hotels", intent.Intent)
	assert.Equal(t, "Je cherche des hôtels", intent.ResponseMessage)
	require.Len(t, intent.Actions, 1)
	assert.Equal(t, "search_hotels", intent.Actions[0].Tool)
	assert.Equal(t, "Rome", intent.Actions[0].Params["city"])
	assert.EqualValues(t, 120, intent.Actions[0].Params["budget"])
}

func TestParseIntent_RepairsBrokenJSON(t *testing.T) {
	text := `{"intent": "flights", "response_message": "ok", "actions": [{"tool": "search_flights", "params": {"origin": "Paris",}}]`

	intent := ParseIntent(text, "Paris")

	assert.Equal(t, "flights", intent.Intent)
	require.Len(t, intent.Actions, 1)
	assert.Equal(t, "Paris", intent.Actions[0].Params["origin"])
}

func TestParseIntent_FallsBackToDefault(t *testing.T) {
	for _, text := range []string{"", "je ne sais pas", `{"foo": "bar"}`} {
		assert.Equal(t, DefaultIntent("Madrid"), ParseIntent(text, "Madrid"), text)
	}
}
