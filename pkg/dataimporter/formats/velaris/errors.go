package velaris

import "errors"

// ErrStructuralParse marks a response that cannot be safely interpreted.
// Nothing is emitted for the whole response when one of these surfaces
var ErrStructuralParse = errors.New("structural parse failure")

// ErrFareNotFound marks a single flight whose encoded fare tags have no
// catalogue entry. That flight is skipped, the rest of the response keeps
// processing
var ErrFareNotFound = errors.New("fare not found")
