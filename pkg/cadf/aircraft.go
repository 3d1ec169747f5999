package cadf

// AircraftType maps a vendor IATA equipment code onto a canonical type
type AircraftType struct {
	EquipmentCode string `groups:"detailed" bson:",omitempty"`
	Identifier    string `groups:"detailed" bson:",omitempty"`
	Name          string `groups:"detailed" bson:",omitempty"`
}
