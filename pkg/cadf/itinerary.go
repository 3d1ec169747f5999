package cadf

import (
	"encoding/json"
	"time"
)

type Itinerary struct {
	PrimaryIdentifier string `groups:"basic" bson:",omitempty"`

	CreationDateTime     time.Time `groups:"detailed" bson:",omitempty"`
	ModificationDateTime time.Time `groups:"detailed" bson:",omitempty"`

	DataSource *DataSourceReference `groups:"internal" bson:",omitempty"`

	Segments []Segment `groups:"basic" bson:",omitempty"`
	Awards   []Award   `groups:"basic" bson:",omitempty"`
}

func (i Itinerary) MarshalBinary() ([]byte, error) {
	return json.Marshal(i)
}
