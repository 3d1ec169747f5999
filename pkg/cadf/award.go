package cadf

// Award is a single redeemable offer on an Itinerary
type Award struct {
	Fare FareDefinition `groups:"basic"`

	PartnerCarrier bool `groups:"basic"`

	// Actual cabin booked on each leg, in leg order. Can differ from the
	// fare's cabin on legs satisfied through cabin fallback
	CabinsUsed []CabinClass `groups:"basic" bson:",omitempty"`

	Quantity      int  `groups:"basic"`
	ExactQuantity bool `groups:"basic"`
	Waitlisted    bool `groups:"basic"`

	MileageCost int64 `groups:"basic" json:",omitempty" bson:",omitempty"`
}
