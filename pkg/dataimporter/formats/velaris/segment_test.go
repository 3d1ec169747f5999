package velaris

import (
	"testing"
	"time"

	"github.com/farescout/farescout/pkg/catalogue"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildSegment(t *testing.T) {
	locations := LocationDictionary{"L1": "SFO", "L2": "NRT"}

	leg := RawLeg{
		Flight: RawLegFlight{Carrier: "VL", Number: "342"},

		Origin:      "L1",
		Destination: "L2",

		OriginDateTime:      "2026-09-14T11:05:00",
		DestinationDateTime: "2026-09-15T14:25:00",

		Equipment: "789",
		Stops:     0,
	}

	segment, err := buildSegment(leg, locations, catalogue.DefaultAircraftRegistry())
	require.NoError(t, err)

	assert.Equal(t, "VL", segment.Carrier)
	assert.Equal(t, "342", segment.FlightNumber)
	assert.Equal(t, "SFO", segment.Origin)
	assert.Equal(t, "NRT", segment.Destination)
	assert.Equal(t, "BOEING_787_9", segment.AircraftType)

	assert.Equal(t, time.Date(2026, 9, 14, 11, 5, 0, 0, time.UTC), segment.DepartureTime)
	assert.Equal(t, time.Date(2026, 9, 15, 14, 25, 0, 0, time.UTC), segment.ArrivalTime)
	assert.Equal(t, 1, segment.LagDays)
}

func TestBuildSegmentUnknownEquipmentPassesThrough(t *testing.T) {
	locations := LocationDictionary{"L1": "SFO", "L2": "NRT"}

	leg := RawLeg{
		Origin:              "L1",
		Destination:         "L2",
		OriginDateTime:      "2026-09-14T11:05:00",
		DestinationDateTime: "2026-09-14T14:25:00",
		Equipment:           "Z99",
	}

	segment, err := buildSegment(leg, locations, catalogue.DefaultAircraftRegistry())
	require.NoError(t, err)

	assert.Equal(t, "Z99", segment.AircraftType)
	assert.Equal(t, 0, segment.LagDays)
}

func TestBuildSegmentUnknownLocation(t *testing.T) {
	locations := LocationDictionary{"L1": "SFO"}

	leg := RawLeg{
		Origin:              "L1",
		Destination:         "L9",
		OriginDateTime:      "2026-09-14T11:05:00",
		DestinationDateTime: "2026-09-14T14:25:00",
	}

	_, err := buildSegment(leg, locations, catalogue.DefaultAircraftRegistry())
	require.Error(t, err)
}

func TestBuildSegmentUnparseableDateTime(t *testing.T) {
	locations := LocationDictionary{"L1": "SFO", "L2": "NRT"}

	leg := RawLeg{
		Origin:              "L1",
		Destination:         "L2",
		OriginDateTime:      "14/09/2026 11:05",
		DestinationDateTime: "2026-09-14T14:25:00",
	}

	_, err := buildSegment(leg, locations, catalogue.DefaultAircraftRegistry())
	require.Error(t, err)
}

func TestLagDays(t *testing.T) {
	assert.Equal(t, 0, lagDays(
		time.Date(2026, 9, 14, 22, 0, 0, 0, time.UTC),
		time.Date(2026, 9, 14, 23, 59, 0, 0, time.UTC),
	))

	assert.Equal(t, 1, lagDays(
		time.Date(2026, 9, 14, 23, 30, 0, 0, time.UTC),
		time.Date(2026, 9, 15, 0, 10, 0, 0, time.UTC),
	))

	assert.Equal(t, 2, lagDays(
		time.Date(2026, 9, 14, 23, 30, 0, 0, time.UTC),
		time.Date(2026, 9, 16, 5, 0, 0, 0, time.UTC),
	))

	// Westbound over the date line can land before it left
	assert.Equal(t, -1, lagDays(
		time.Date(2026, 9, 15, 0, 10, 0, 0, time.UTC),
		time.Date(2026, 9, 14, 20, 0, 0, 0, time.UTC),
	))
}
