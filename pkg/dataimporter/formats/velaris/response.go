package velaris

// Response is the top level award search document returned by the Velaris
// reservation system. Only the sections the importer consumes are declared
type Response struct {
	Data ResponseData `json:"data"`
}

type ResponseData struct {
	Dictionaries Dictionaries     `json:"dictionaries"`
	Flights      []RawFlight      `json:"flights"`
	MileageCosts map[string]int64 `json:"mileageCosts"`
}

// Dictionaries is the response's shared reference section. Values are typed
// by an index into the class name table
type Dictionaries struct {
	ClassNames []string          `json:"classNames"`
	Values     []DictionaryValue `json:"values"`
}

type DictionaryValue struct {
	ClassIndex int    `json:"classIndex"`
	Key        string `json:"key"`
	Kind       string `json:"kind"`
	Code       string `json:"code"`
	Parent     string `json:"parent"`
}

// RawFlight is one bookable flight option. The identifier encodes carrier,
// flight number, departure date and the fare tier & cabin tags,
// eg. VL:0342:20260914:STD:BUS
type RawFlight struct {
	ID   string   `json:"id"`
	Legs []RawLeg `json:"legs"`
}

type RawLeg struct {
	Flight RawLegFlight `json:"flight"`

	Origin      string `json:"origin"`
	Destination string `json:"destination"`

	OriginDateTime      string `json:"originDateTime"`
	DestinationDateTime string `json:"destinationDateTime"`

	Equipment string `json:"equipment"`
	Stops     int    `json:"stops"`

	// Raw booking class code -> status code
	Availability map[string]string `json:"availability"`
}

type RawLegFlight struct {
	Carrier string `json:"carrier"`
	Number  string `json:"number"`
}
