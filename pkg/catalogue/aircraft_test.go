package catalogue

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadAircraftRegistry(t *testing.T) {
	registryCsv := `equipment_code,identifier,name
789,BOEING_787_9,Boeing 787-9
359,AIRBUS_A350_900,Airbus A350-900
`

	aircraftRegistry, err := LoadAircraftRegistry(strings.NewReader(registryCsv))
	require.NoError(t, err)

	aircraft, found := aircraftRegistry.LookupAircraft("789")
	require.True(t, found)
	assert.Equal(t, "BOEING_787_9", aircraft.Identifier)
	assert.Equal(t, "Boeing 787-9", aircraft.Name)

	_, found = aircraftRegistry.LookupAircraft("747")
	assert.False(t, found)
}

func TestLoadAircraftRegistryFile(t *testing.T) {
	aircraftRegistry, err := LoadAircraftRegistryFile("../../data/catalogues/aircraft.csv")
	require.NoError(t, err)

	aircraft, found := aircraftRegistry.LookupAircraft("77W")
	require.True(t, found)
	assert.Equal(t, "BOEING_777_300ER", aircraft.Identifier)
}

func TestDefaultAircraftRegistry(t *testing.T) {
	aircraft, found := DefaultAircraftRegistry().LookupAircraft("388")
	require.True(t, found)

	assert.Equal(t, "Airbus A380-800", aircraft.Name)
}
