package stats

import "github.com/farescout/farescout/pkg/cadf"

// ArchivedItinerary is the denormalised form written into the history index.
// The award and route fields are lifted to the top level so they can be
// aggregated on directly
type ArchivedItinerary struct {
	cadf.Itinerary

	BundleSourceFile string

	DatasetID string

	Origin      string
	Destination string

	FareCode       string
	Cabin          cadf.CabinClass
	PartnerCarrier bool
	Waitlisted     bool
	MileageCost    int64
}
