package velaris

import (
	"fmt"
	"time"

	"github.com/farescout/farescout/pkg/cadf"
	"github.com/farescout/farescout/pkg/catalogue"
)

// Leg datetimes carry no zone information and are defined by the vendor as UTC
const legDateTimeFormat = "2006-01-02T15:04:05"

func buildSegment(leg RawLeg, locations LocationDictionary, aircraftRegistry catalogue.AircraftRegistry) (cadf.Segment, error) {
	origin, found := locations[leg.Origin]
	if !found {
		return cadf.Segment{}, fmt.Errorf("leg references unknown origin location %s", leg.Origin)
	}

	destination, found := locations[leg.Destination]
	if !found {
		return cadf.Segment{}, fmt.Errorf("leg references unknown destination location %s", leg.Destination)
	}

	departureTime, err := time.ParseInLocation(legDateTimeFormat, leg.OriginDateTime, time.UTC)
	if err != nil {
		return cadf.Segment{}, fmt.Errorf("leg has unparseable origin datetime %s", leg.OriginDateTime)
	}

	arrivalTime, err := time.ParseInLocation(legDateTimeFormat, leg.DestinationDateTime, time.UTC)
	if err != nil {
		return cadf.Segment{}, fmt.Errorf("leg has unparseable destination datetime %s", leg.DestinationDateTime)
	}

	// Unknown equipment is passed through raw rather than failing the leg
	aircraftType := leg.Equipment
	if aircraft, found := aircraftRegistry.LookupAircraft(leg.Equipment); found {
		aircraftType = aircraft.Identifier
	}

	return cadf.Segment{
		Carrier:      leg.Flight.Carrier,
		FlightNumber: leg.Flight.Number,
		AircraftType: aircraftType,

		Origin:      origin,
		Destination: destination,

		DepartureTime: departureTime,
		ArrivalTime:   arrivalTime,

		StopCount: leg.Stops,
		LagDays:   lagDays(departureTime, arrivalTime),
	}, nil
}

// lagDays is the whole day difference between the departure and arrival
// dates, capturing overnight and multi day flights
func lagDays(departure time.Time, arrival time.Time) int {
	departureDate := time.Date(departure.Year(), departure.Month(), departure.Day(), 0, 0, 0, 0, time.UTC)
	arrivalDate := time.Date(arrival.Year(), arrival.Month(), arrival.Day(), 0, 0, 0, 0, time.UTC)

	return int(arrivalDate.Sub(departureDate).Hours() / 24)
}
