package velaris

import (
	"encoding/json"
	"os"
	"strings"
	"testing"

	"github.com/farescout/farescout/pkg/cadf"
	"github.com/farescout/farescout/pkg/catalogue"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testAssemblerOptions() AssemblerOptions {
	return AssemblerOptions{
		FareCatalogue:    catalogue.DefaultFareCatalogue(),
		AircraftRegistry: catalogue.DefaultAircraftRegistry(),
		PartnerCarriers:  []string{"MX", "KP", "AJ"},
		DefaultQuantity:  1,
	}
}

func loadFixtureResponse(t *testing.T) *Response {
	t.Helper()

	file, err := os.Open("../../../../data/fixtures/award-search-response.json")
	require.NoError(t, err)
	defer file.Close()

	awardSearch := AwardSearch{}
	require.NoError(t, awardSearch.ParseFile(file))

	return awardSearch.response
}

func TestAssembleItinerariesFixture(t *testing.T) {
	response := loadFixtureResponse(t)
	datasource := &cadf.DataSourceReference{Provider: "Velaris Airways", DatasetID: "velaris-award-search"}

	itineraries, err := AssembleItineraries(response, datasource, testAssemblerOptions())
	require.NoError(t, err)

	// Flight VL:0998 has every cabin closed and is discarded without error
	require.Len(t, itineraries, 2)

	business := itineraries[0]
	assert.Equal(t, "farescout-velaris-VL:0342:20260914:STD:BUS", business.PrimaryIdentifier)
	assert.Same(t, datasource, business.DataSource)
	assert.True(t, business.CreationDateTime.IsZero(), "timestamps are only applied at import time")

	require.Len(t, business.Segments, 2)
	assert.Equal(t, "SFO", business.Segments[0].Origin)
	assert.Equal(t, "NRT", business.Segments[0].Destination, "terminal keys resolve to their parent airport")
	assert.Equal(t, "BOEING_787_9", business.Segments[0].AircraftType)
	assert.Equal(t, 1, business.Segments[0].LagDays)
	assert.Equal(t, "MX", business.Segments[1].Carrier)
	assert.Equal(t, "SIN", business.Segments[1].Destination)

	require.Len(t, business.Awards, 1)
	award := business.Awards[0]
	assert.Equal(t, "JS", award.Fare.Code)
	assert.True(t, award.PartnerCarrier, "the MX operated leg marks this as a partner redemption")
	assert.Equal(t, []cadf.CabinClass{cadf.CabinClassBusiness, cadf.CabinClassBusiness}, award.CabinsUsed)
	assert.Equal(t, 2, award.Quantity)
	assert.True(t, award.ExactQuantity)
	assert.False(t, award.Waitlisted)
	assert.Equal(t, int64(88000), award.MileageCost)

	economy := itineraries[1]
	assert.Equal(t, "farescout-velaris-VL:0610:20260914:PRM:ECO", economy.PrimaryIdentifier)

	require.Len(t, economy.Awards, 1)
	award = economy.Awards[0]
	assert.Equal(t, "YP", award.Fare.Code)
	assert.False(t, award.PartnerCarrier)
	assert.True(t, award.Waitlisted)
	assert.False(t, award.ExactQuantity)
	assert.Equal(t, 1, award.Quantity)
	assert.Equal(t, int64(27500), award.MileageCost)
}

func TestAssembleItinerariesWaitlistEchoesDefaultQuantity(t *testing.T) {
	response := loadFixtureResponse(t)

	assemblerOptions := testAssemblerOptions()
	assemblerOptions.DefaultQuantity = 4

	itineraries, err := AssembleItineraries(response, nil, assemblerOptions)
	require.NoError(t, err)
	require.Len(t, itineraries, 2)

	assert.Equal(t, 4, itineraries[1].Awards[0].Quantity)
	assert.False(t, itineraries[1].Awards[0].ExactQuantity)
}

func TestAssembleItinerariesIsDeterministic(t *testing.T) {
	response := loadFixtureResponse(t)

	first, err := AssembleItineraries(response, nil, testAssemblerOptions())
	require.NoError(t, err)

	second, err := AssembleItineraries(response, nil, testAssemblerOptions())
	require.NoError(t, err)

	firstJson, err := json.Marshal(first)
	require.NoError(t, err)

	secondJson, err := json.Marshal(second)
	require.NoError(t, err)

	assert.Equal(t, firstJson, secondJson)
}

func TestAssembleItinerariesSkipsUnknownFare(t *testing.T) {
	response := loadFixtureResponse(t)
	response.Data.Flights[0].ID = "VL:0342:20260914:STD:SUP"

	itineraries, err := AssembleItineraries(response, nil, testAssemblerOptions())
	require.NoError(t, err)

	require.Len(t, itineraries, 1, "a flight with an unknown fare tag is skipped, not fatal")
	assert.Equal(t, "farescout-velaris-VL:0610:20260914:PRM:ECO", itineraries[0].PrimaryIdentifier)
}

func TestAssembleItinerariesSkipsUnresolvableLeg(t *testing.T) {
	response := loadFixtureResponse(t)
	response.Data.Flights[0].Legs[0].Origin = "L99"

	itineraries, err := AssembleItineraries(response, nil, testAssemblerOptions())
	require.NoError(t, err)

	require.Len(t, itineraries, 1)
	assert.Equal(t, "farescout-velaris-VL:0610:20260914:PRM:ECO", itineraries[0].PrimaryIdentifier)
}

func TestAssembleItinerariesStructuralFailureIsFatal(t *testing.T) {
	response := loadFixtureResponse(t)
	response.Data.Flights[1].Legs[0].Availability = map[string]string{"Y": "4", "T": "4"}

	_, err := AssembleItineraries(response, nil, testAssemblerOptions())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "VL:0610")
}

func TestAssembleItinerariesBrokenDictionaryIsFatal(t *testing.T) {
	response := loadFixtureResponse(t)
	response.Data.Dictionaries.ClassNames = []string{"com.velaris.resbus.FlightEntry"}

	_, err := AssembleItineraries(response, nil, testAssemblerOptions())
	require.ErrorIs(t, err, ErrStructuralParse)
}

func TestAssembleItinerariesDropsZeroQuantity(t *testing.T) {
	response := loadFixtureResponse(t)
	for index := range response.Data.Flights[0].Legs {
		response.Data.Flights[0].Legs[index].Availability["J"] = "0"
	}

	itineraries, err := AssembleItineraries(response, nil, testAssemblerOptions())
	require.NoError(t, err)

	require.Len(t, itineraries, 1)
	assert.Equal(t, "farescout-velaris-VL:0610:20260914:PRM:ECO", itineraries[0].PrimaryIdentifier)
}

func TestParseFileRejectsMalformedJson(t *testing.T) {
	awardSearch := AwardSearch{}

	err := awardSearch.ParseFile(strings.NewReader("{not json"))
	require.ErrorIs(t, err, ErrStructuralParse)
}
