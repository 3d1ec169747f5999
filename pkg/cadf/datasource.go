package cadf

type DataSourceReference struct {
	OriginalFormat string `groups:"internal"` // or enum (eg. velaris-awardjson)
	Provider       string `groups:"internal"`
	DatasetID      string `groups:"internal"`
	Timestamp      string `groups:"internal"`
}
