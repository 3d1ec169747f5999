package catalogue

import (
	"github.com/farescout/farescout/pkg/cadf"
	"github.com/farescout/farescout/pkg/util"
	"github.com/rs/zerolog/log"
)

// Just a static list for now
func DefaultFareCatalogue() *StaticFareCatalogue {
	return NewStaticFareCatalogue([]cadf.FareDefinition{
		{Code: "FS", Name: "First Standard Award", Cabin: cadf.CabinClassFirst},
		{Code: "FP", Name: "First Promo Award", Cabin: cadf.CabinClassFirst},
		{Code: "JS", Name: "Business Standard Award", Cabin: cadf.CabinClassBusiness},
		{Code: "JP", Name: "Business Promo Award", Cabin: cadf.CabinClassBusiness},
		{Code: "JL", Name: "Business Special Award", Cabin: cadf.CabinClassBusiness},
		{Code: "WS", Name: "Premium Economy Standard Award", Cabin: cadf.CabinClassPremiumEconomy},
		{Code: "WP", Name: "Premium Economy Promo Award", Cabin: cadf.CabinClassPremiumEconomy},
		{Code: "YS", Name: "Economy Standard Award", Cabin: cadf.CabinClassEconomy},
		{Code: "YP", Name: "Economy Promo Award", Cabin: cadf.CabinClassEconomy},
		{Code: "YL", Name: "Economy Special Award", Cabin: cadf.CabinClassEconomy},
	})
}

func DefaultAircraftRegistry() *StaticAircraftRegistry {
	return NewStaticAircraftRegistry([]cadf.AircraftType{
		{EquipmentCode: "223", Identifier: "AIRBUS_A220_300", Name: "Airbus A220-300"},
		{EquipmentCode: "320", Identifier: "AIRBUS_A320", Name: "Airbus A320"},
		{EquipmentCode: "321", Identifier: "AIRBUS_A321", Name: "Airbus A321"},
		{EquipmentCode: "359", Identifier: "AIRBUS_A350_900", Name: "Airbus A350-900"},
		{EquipmentCode: "388", Identifier: "AIRBUS_A380_800", Name: "Airbus A380-800"},
		{EquipmentCode: "738", Identifier: "BOEING_737_800", Name: "Boeing 737-800"},
		{EquipmentCode: "77W", Identifier: "BOEING_777_300ER", Name: "Boeing 777-300ER"},
		{EquipmentCode: "789", Identifier: "BOEING_787_9", Name: "Boeing 787-9"},
	})
}

// GetFareCatalogue returns the file backed catalogue when one is configured,
// otherwise the built in defaults
func GetFareCatalogue() FareCatalogue {
	env := util.GetEnvironmentVariables()

	if env["FARESCOUT_FARE_CATALOGUE"] != "" {
		fareCatalogue, err := LoadFareCatalogueFile(env["FARESCOUT_FARE_CATALOGUE"])
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to load fare catalogue")
		}

		return fareCatalogue
	}

	return DefaultFareCatalogue()
}

func GetAircraftRegistry() AircraftRegistry {
	env := util.GetEnvironmentVariables()

	if env["FARESCOUT_AIRCRAFT_REGISTRY"] != "" {
		aircraftRegistry, err := LoadAircraftRegistryFile(env["FARESCOUT_AIRCRAFT_REGISTRY"])
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to load aircraft registry")
		}

		return aircraftRegistry
	}

	return DefaultAircraftRegistry()
}
