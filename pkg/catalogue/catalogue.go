package catalogue

import (
	"github.com/farescout/farescout/pkg/cadf"
)

// FareCatalogue resolves a two character fare code into its catalogued definition
type FareCatalogue interface {
	LookupFare(code string) (cadf.FareDefinition, bool)
}

// AircraftRegistry resolves a vendor IATA equipment code into a canonical aircraft type
type AircraftRegistry interface {
	LookupAircraft(equipmentCode string) (cadf.AircraftType, bool)
}
