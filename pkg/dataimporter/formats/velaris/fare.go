package velaris

import (
	"fmt"
	"strings"

	"github.com/farescout/farescout/pkg/cadf"
	"github.com/farescout/farescout/pkg/catalogue"
)

const flightIdentifierSeparator = ":"

// The fare tier and cabin tags are always the last two fields of a flight
// identifier, eg. VL:0342:20260914:STD:BUS
var tierTagCodes = map[string]string{
	"STD": "S",
	"PRM": "P",
	"SPL": "L",
}

var cabinTagCodes = map[string]string{
	"FIR": "F",
	"BUS": "J",
	"PRE": "W",
	"ECO": "Y",
}

func resolveFare(flightIdentifier string, fareCatalogue catalogue.FareCatalogue) (cadf.FareDefinition, error) {
	fields := strings.Split(flightIdentifier, flightIdentifierSeparator)
	if len(fields) < 2 {
		return cadf.FareDefinition{}, fmt.Errorf("%w: identifier %s carries no fare tags", ErrFareNotFound, flightIdentifier)
	}

	tierTag := fields[len(fields)-2]
	cabinTag := fields[len(fields)-1]

	tierCode, found := tierTagCodes[tierTag]
	if !found {
		return cadf.FareDefinition{}, fmt.Errorf("%w: unknown tier tag %s", ErrFareNotFound, tierTag)
	}

	cabinCode, found := cabinTagCodes[cabinTag]
	if !found {
		return cadf.FareDefinition{}, fmt.Errorf("%w: unknown cabin tag %s", ErrFareNotFound, cabinTag)
	}

	fareCode := cabinCode + tierCode

	fare, found := fareCatalogue.LookupFare(fareCode)
	if !found {
		return cadf.FareDefinition{}, fmt.Errorf("%w: no catalogue entry for %s", ErrFareNotFound, fareCode)
	}

	return fare, nil
}
