package velaris

import (
	"testing"

	"github.com/farescout/farescout/pkg/cadf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildCabinStatusMatrix(t *testing.T) {
	legs := []RawLeg{
		{Availability: map[string]string{"F": "2", "J": "5", "Q": "9"}},
		{Availability: map[string]string{"T": "7"}},
	}

	matrix, err := buildCabinStatusMatrix(legs)
	require.NoError(t, err)
	require.Len(t, matrix, 2)

	assert.Equal(t, map[cadf.CabinClass]string{
		cadf.CabinClassFirst:    "2",
		cadf.CabinClassBusiness: "5",
	}, matrix[0], "unrecognised booking codes are dropped")

	assert.Equal(t, map[cadf.CabinClass]string{
		cadf.CabinClassEconomy: "7",
	}, matrix[1], "discount economy normalises onto economy")
}

func TestBuildCabinStatusMatrixNoLegs(t *testing.T) {
	_, err := buildCabinStatusMatrix(nil)

	require.ErrorIs(t, err, ErrStructuralParse)
}

func TestBuildCabinStatusMatrixConflictingEconomyCodes(t *testing.T) {
	legs := []RawLeg{
		{Availability: map[string]string{"Y": "4", "T": "4"}},
	}

	_, err := buildCabinStatusMatrix(legs)

	require.ErrorIs(t, err, ErrStructuralParse)
}

func TestResolveCabinFallsBackAcrossLegs(t *testing.T) {
	matrix := CabinStatusMatrix{
		{cadf.CabinClassFirst: "2", cadf.CabinClassBusiness: "5"},
		{cadf.CabinClassBusiness: "3", cadf.CabinClassEconomy: "9"},
	}

	result := resolveCabin(matrix, cadf.CabinClassFirst, 1)
	require.NotNil(t, result)

	assert.Equal(t, []cadf.CabinClass{cadf.CabinClassFirst, cadf.CabinClassBusiness}, result.CabinsUsed)
	assert.Equal(t, 2, result.Quantity, "quantity is bounded by the most constrained leg")
	assert.True(t, result.Exact)
	assert.False(t, result.Waitlisted)
}

func TestResolveCabinRequiresRequestedCabinSomewhere(t *testing.T) {
	matrix := CabinStatusMatrix{
		{cadf.CabinClassBusiness: "5"},
		{cadf.CabinClassBusiness: "3"},
	}

	assert.Nil(t, resolveCabin(matrix, cadf.CabinClassFirst, 1),
		"a first request satisfied only by business codes is not a first award")
	assert.NotNil(t, resolveCabin(matrix, cadf.CabinClassBusiness, 1))
}

func TestResolveCabinNoFallbackBelowBusiness(t *testing.T) {
	matrix := CabinStatusMatrix{
		{cadf.CabinClassEconomy: "9"},
	}

	assert.Nil(t, resolveCabin(matrix, cadf.CabinClassPremiumEconomy, 1))

	result := resolveCabin(matrix, cadf.CabinClassEconomy, 1)
	require.NotNil(t, result)
	assert.Equal(t, 9, result.Quantity)
}

func TestResolveCabinMissingLegData(t *testing.T) {
	matrix := CabinStatusMatrix{
		{cadf.CabinClassEconomy: "9"},
		{cadf.CabinClassBusiness: "2"},
	}

	assert.Nil(t, resolveCabin(matrix, cadf.CabinClassEconomy, 1),
		"a leg without data for any chain cabin makes the itinerary unevaluable")
}

func TestResolveCabinWaitlistEchoesRequestedQuantity(t *testing.T) {
	matrix := CabinStatusMatrix{
		{cadf.CabinClassBusiness: "L"},
		{cadf.CabinClassBusiness: "4"},
	}

	result := resolveCabin(matrix, cadf.CabinClassBusiness, 3)
	require.NotNil(t, result)

	assert.True(t, result.Waitlisted)
	assert.False(t, result.Exact)
	assert.Equal(t, 3, result.Quantity)
}

func TestResolveCabinBlockedStatuses(t *testing.T) {
	assert.Nil(t, resolveCabin(CabinStatusMatrix{
		{cadf.CabinClassBusiness: "N"},
	}, cadf.CabinClassBusiness, 1))

	assert.Nil(t, resolveCabin(CabinStatusMatrix{
		{cadf.CabinClassBusiness: "X"},
	}, cadf.CabinClassBusiness, 1))

	assert.Nil(t, resolveCabin(CabinStatusMatrix{
		{cadf.CabinClassBusiness: "5"},
		{cadf.CabinClassBusiness: "N"},
	}, cadf.CabinClassBusiness, 1), "a single blocked leg blocks the whole itinerary")
}

func TestResolveCabinGarbledCount(t *testing.T) {
	matrix := CabinStatusMatrix{
		{cadf.CabinClassEconomy: "??"},
	}

	assert.Nil(t, resolveCabin(matrix, cadf.CabinClassEconomy, 1))
}

func TestResolveCabinAvailability(t *testing.T) {
	matrix := CabinStatusMatrix{
		{cadf.CabinClassFirst: "1", cadf.CabinClassBusiness: "4", cadf.CabinClassEconomy: "9"},
		{cadf.CabinClassBusiness: "2", cadf.CabinClassPremiumEconomy: "5", cadf.CabinClassEconomy: "9"},
	}

	results := resolveCabinAvailability(matrix, 1)

	require.Len(t, results, 3, "premium economy has no result and is absent from the map")
	assert.Equal(t, 1, results[cadf.CabinClassFirst].Quantity)
	assert.Equal(t, 2, results[cadf.CabinClassBusiness].Quantity)
	assert.Equal(t, 9, results[cadf.CabinClassEconomy].Quantity)
	assert.NotContains(t, results, cadf.CabinClassPremiumEconomy)
}

func TestFallbackChain(t *testing.T) {
	assert.Equal(t, cadf.CabinHierarchy, fallbackChain(cadf.CabinClassFirst))
	assert.Equal(t, cadf.CabinHierarchy[1:], fallbackChain(cadf.CabinClassBusiness))
	assert.Equal(t, []cadf.CabinClass{cadf.CabinClassPremiumEconomy}, fallbackChain(cadf.CabinClassPremiumEconomy))
	assert.Equal(t, []cadf.CabinClass{cadf.CabinClassEconomy}, fallbackChain(cadf.CabinClassEconomy))
}
