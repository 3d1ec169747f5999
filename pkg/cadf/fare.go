package cadf

// FareDefinition is a catalogued award fare product, keyed by a two character
// code of cabin letter followed by tier letter (eg. "JS")
type FareDefinition struct {
	Code  string     `groups:"basic" bson:",omitempty"`
	Name  string     `groups:"basic" bson:",omitempty"`
	Cabin CabinClass `groups:"basic" bson:",omitempty"`
}
