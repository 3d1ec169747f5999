package datasets

type SupportedObjects struct {
	Itineraries bool
}
