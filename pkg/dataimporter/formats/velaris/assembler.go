package velaris

import (
	"errors"
	"fmt"

	"github.com/farescout/farescout/pkg/cadf"
	"github.com/farescout/farescout/pkg/catalogue"
	"github.com/farescout/farescout/pkg/util"
	"github.com/rs/zerolog/log"
	"github.com/sourcegraph/conc/iter"
)

type AssemblerOptions struct {
	FareCatalogue    catalogue.FareCatalogue
	AircraftRegistry catalogue.AircraftRegistry

	// Carriers whose operated segments mark an award as a partner redemption
	PartnerCarriers []string

	// Requested seat count, echoed back as the quantity of waitlisted results
	DefaultQuantity int
}

// AssembleItineraries converts a parsed response into bookable itineraries in
// the response's flight order. Flights are independent of each other so they
// run through an order preserving parallel map
func AssembleItineraries(response *Response, datasource *cadf.DataSourceReference, assemblerOptions AssemblerOptions) ([]*cadf.Itinerary, error) {
	locations, err := resolveLocationDictionary(response.Data.Dictionaries)
	if err != nil {
		return nil, err
	}

	itineraries, err := iter.MapErr(response.Data.Flights, func(flight *RawFlight) (*cadf.Itinerary, error) {
		return assembleItinerary(*flight, response.Data.MileageCosts, locations, datasource, assemblerOptions)
	})
	if err != nil {
		return nil, err
	}

	// Unbookable flights come back nil, drop them
	util.InPlaceFilter(&itineraries, func(itinerary *cadf.Itinerary) bool {
		return itinerary != nil
	})

	return itineraries, nil
}

func assembleItinerary(flight RawFlight, mileageCosts map[string]int64, locations LocationDictionary, datasource *cadf.DataSourceReference, assemblerOptions AssemblerOptions) (*cadf.Itinerary, error) {
	matrix, err := buildCabinStatusMatrix(flight.Legs)
	if err != nil {
		return nil, fmt.Errorf("flight %s: %w", flight.ID, err)
	}

	availability := resolveCabinAvailability(matrix, assemblerOptions.DefaultQuantity)
	if len(availability) == 0 {
		// Nothing bookable in any cabin. Expected, not an error
		return nil, nil
	}

	var segments []cadf.Segment
	partner := false

	for _, leg := range flight.Legs {
		segment, err := buildSegment(leg, locations, assemblerOptions.AircraftRegistry)
		if err != nil {
			log.Debug().Err(err).Str("flight", flight.ID).Msg("Skipping flight with unresolvable leg")
			return nil, nil
		}

		if util.ContainsString(assemblerOptions.PartnerCarriers, segment.Carrier) {
			partner = true
		}

		segments = append(segments, segment)
	}

	fare, err := resolveFare(flight.ID, assemblerOptions.FareCatalogue)
	if err != nil {
		if errors.Is(err, ErrFareNotFound) {
			log.Debug().Err(err).Str("flight", flight.ID).Msg("Skipping flight with unknown fare")
			return nil, nil
		}

		return nil, err
	}

	result, found := availability[fare.Cabin]
	if !found || result.Quantity <= 0 {
		return nil, nil
	}

	award := cadf.Award{
		Fare:           fare,
		PartnerCarrier: partner,
		CabinsUsed:     result.CabinsUsed,
		Quantity:       result.Quantity,
		ExactQuantity:  result.Exact,
		Waitlisted:     result.Waitlisted,
	}

	if mileageCost, found := mileageCosts[flight.ID]; found && mileageCost > 0 {
		award.MileageCost = mileageCost
	}

	return &cadf.Itinerary{
		PrimaryIdentifier: fmt.Sprintf("farescout-velaris-%s", flight.ID),
		DataSource:        datasource,

		Segments: segments,
		Awards:   []cadf.Award{award},
	}, nil
}
