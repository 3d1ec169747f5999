package velaris

import (
	"testing"

	"github.com/farescout/farescout/pkg/cadf"
	"github.com/farescout/farescout/pkg/catalogue"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveFare(t *testing.T) {
	fareCatalogue := catalogue.DefaultFareCatalogue()

	fare, err := resolveFare("VL:0342:20260914:STD:BUS", fareCatalogue)
	require.NoError(t, err)
	assert.Equal(t, "JS", fare.Code)
	assert.Equal(t, cadf.CabinClassBusiness, fare.Cabin)

	fare, err = resolveFare("MX:0807:20260915:PRM:ECO", fareCatalogue)
	require.NoError(t, err)
	assert.Equal(t, "YP", fare.Code)
	assert.Equal(t, cadf.CabinClassEconomy, fare.Cabin)

	fare, err = resolveFare("VL:0998:20260914:SPL:BUS", fareCatalogue)
	require.NoError(t, err)
	assert.Equal(t, "JL", fare.Code)
}

func TestResolveFareUnknownTags(t *testing.T) {
	fareCatalogue := catalogue.DefaultFareCatalogue()

	_, err := resolveFare("VL:0342:20260914:VIP:BUS", fareCatalogue)
	require.ErrorIs(t, err, ErrFareNotFound)

	_, err = resolveFare("VL:0342:20260914:STD:SUP", fareCatalogue)
	require.ErrorIs(t, err, ErrFareNotFound)

	_, err = resolveFare("VL0342", fareCatalogue)
	require.ErrorIs(t, err, ErrFareNotFound)
}

func TestResolveFareMissingCatalogueEntry(t *testing.T) {
	fareCatalogue := catalogue.NewStaticFareCatalogue([]cadf.FareDefinition{
		{Code: "YS", Name: "Economy Standard Award", Cabin: cadf.CabinClassEconomy},
	})

	_, err := resolveFare("VL:0342:20260914:STD:BUS", fareCatalogue)
	require.ErrorIs(t, err, ErrFareNotFound)

	fare, err := resolveFare("VL:0342:20260914:STD:ECO", fareCatalogue)
	require.NoError(t, err)
	assert.Equal(t, "YS", fare.Code)
}
