package cadf

import "time"

// Segment is a single resolved flight leg within an Itinerary. Immutable once built.
type Segment struct {
	Carrier      string `groups:"basic" bson:",omitempty"`
	CarrierName  string `groups:"basic" json:",omitempty" bson:"-"`
	FlightNumber string `groups:"basic" bson:",omitempty"`

	// Canonical aircraft type identifier, or the raw vendor equipment code
	// when the registry has no entry for it
	AircraftType string `groups:"detailed" bson:",omitempty"`

	Origin      string `groups:"basic" bson:",omitempty"`
	Destination string `groups:"basic" bson:",omitempty"`

	DepartureTime time.Time `groups:"basic" bson:",omitempty"`
	ArrivalTime   time.Time `groups:"basic" bson:",omitempty"`

	StopCount int `groups:"detailed"`
	LagDays   int `groups:"detailed"`
}
