package cadf

type CabinClass string

const (
	CabinClassFirst          CabinClass = "First"
	CabinClassBusiness       CabinClass = "Business"
	CabinClassPremiumEconomy CabinClass = "PremiumEconomy"
	CabinClassEconomy        CabinClass = "Economy"
	CabinClassUnknown        CabinClass = "UNKNOWN"
)

// CabinHierarchy is the fixed best to worst ordering of the cabins of service
var CabinHierarchy = []CabinClass{
	CabinClassFirst,
	CabinClassBusiness,
	CabinClassPremiumEconomy,
	CabinClassEconomy,
}
