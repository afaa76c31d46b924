package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"travelplan-service/pkg/parser"
)

const hotelLine = "- Park Hyatt à Tokyo pour 420€/nuit (Dispo: 2026-03-02 au 2026-03-09, Services: Spa, Piscine)"

func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestParseCommand_Stdin(t *testing.T) {
	out, err := execute(t, hotelLine, "parse")
	require.NoError(t, err)

	var result parser.Result
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	require.Len(t, result.Hotels, 1)
	assert.Equal(t, "Park Hyatt", result.Hotels[0].Name)
	assert.Equal(t, "Spa, Piscine", result.Hotels[0].Amenities)
	assert.Empty(t, result.Flights)
}

func TestParseCommand_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "response.txt")
	require.NoError(t, os.WriteFile(path, []byte(hotelLine), 0o600))

	out, err := execute(t, "", "parse", "--format", "text", path)
	require.NoError(t, err)

	assert.Contains(t, out, parser.HotelsStart)
	assert.Contains(t, out, "Park Hyatt à Tokyo pour 420€/nuit")
}

func TestParseCommand_Errors(t *testing.T) {
	_, err := execute(t, "", "parse", filepath.Join(t.TempDir(), "missing.txt"))
	assert.Error(t, err)

	_, err = execute(t, hotelLine, "parse", "--format", "yaml")
	assert.Error(t, err)
}

func TestRouteCommand(t *testing.T) {
	out, err := execute(t, "", "route", "un", "hôtel", "avec", "piscine")
	require.NoError(t, err)
	assert.Equal(t, "hotels\n", out)

	out, err = execute(t, "", "route", "bonjour")
	require.NoError(t, err)
	assert.Equal(t, "none\n", out)
}
