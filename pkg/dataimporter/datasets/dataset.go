package datasets

type DataSet struct {
	Identifier    string
	DataSourceRef string `json:"-"`
	Format        DataSetFormat

	Provider Provider

	Source string

	SupportedObjects SupportedObjects

	// Parsing configuration for award search sources
	PrimaryCarrier  string
	PartnerCarriers []string
	DefaultQuantity int
}

type DataSetFormat string

const (
	DataSetFormatVelarisAward DataSetFormat = "velaris-awardjson"
)

type Provider struct {
	Name    string
	Website string
}
