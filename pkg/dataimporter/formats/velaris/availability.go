package velaris

import (
	"fmt"
	"strconv"

	"github.com/farescout/farescout/pkg/cadf"
	"golang.org/x/exp/slices"
)

// Raw booking class codes found in leg availability entries
const (
	cabinCodeFirst           = "F"
	cabinCodeBusiness        = "J"
	cabinCodePremiumEconomy  = "W"
	cabinCodeEconomy         = "Y"
	cabinCodeDiscountEconomy = "T"
)

// Status code sentinels. Any other value is a confirmed seat count
const (
	statusWaitlist     = "L"
	statusNotAvailable = "N"
	statusNotOffered   = "X"
)

var cabinCodeTable = map[string]cadf.CabinClass{
	cabinCodeFirst:           cadf.CabinClassFirst,
	cabinCodeBusiness:        cadf.CabinClassBusiness,
	cabinCodePremiumEconomy:  cadf.CabinClassPremiumEconomy,
	cabinCodeEconomy:         cadf.CabinClassEconomy,
	cabinCodeDiscountEconomy: cadf.CabinClassEconomy,
}

// CabinStatusMatrix holds one normalized cabin to status mapping per leg, in
// itinerary order
type CabinStatusMatrix []map[cadf.CabinClass]string

// AvailabilityResult is the judgement for one requested cabin across the
// whole itinerary. Consumed straight away during assembly, never stored
type AvailabilityResult struct {
	CabinsUsed []cadf.CabinClass
	Quantity   int
	Exact      bool
	Waitlisted bool
}

func buildCabinStatusMatrix(legs []RawLeg) (CabinStatusMatrix, error) {
	if len(legs) == 0 {
		return nil, fmt.Errorf("%w: flight record has no legs", ErrStructuralParse)
	}

	matrix := CabinStatusMatrix{}

	for index, leg := range legs {
		// A leg claiming both discount and standard economy contradicts
		// itself and cannot be trusted
		_, hasEconomy := leg.Availability[cabinCodeEconomy]
		_, hasDiscountEconomy := leg.Availability[cabinCodeDiscountEconomy]
		if hasEconomy && hasDiscountEconomy {
			return nil, fmt.Errorf("%w: leg %d reports mutually exclusive economy codes", ErrStructuralParse, index)
		}

		legStatuses := map[cadf.CabinClass]string{}
		for rawCode, status := range leg.Availability {
			cabin, known := cabinCodeTable[rawCode]
			if !known {
				continue
			}

			legStatuses[cabin] = status
		}

		matrix = append(matrix, legStatuses)
	}

	return matrix, nil
}

// fallbackChain lists the cabins allowed to satisfy a request for the given
// cabin, best to worst. First and business requests may be satisfied by any
// lower cabin's booking code, premium economy and economy must match exactly
func fallbackChain(cabin cadf.CabinClass) []cadf.CabinClass {
	if cabin == cadf.CabinClassPremiumEconomy || cabin == cadf.CabinClassEconomy {
		return []cadf.CabinClass{cabin}
	}

	index := slices.Index(cadf.CabinHierarchy, cabin)

	return cadf.CabinHierarchy[index:]
}

// resolveCabinAvailability computes, for every cabin in the hierarchy, whether
// the full itinerary is bookable in it. Cabins with no result are absent from
// the returned map
func resolveCabinAvailability(matrix CabinStatusMatrix, requestedQuantity int) map[cadf.CabinClass]AvailabilityResult {
	results := map[cadf.CabinClass]AvailabilityResult{}

	for _, cabin := range cadf.CabinHierarchy {
		if result := resolveCabin(matrix, cabin, requestedQuantity); result != nil {
			results[cabin] = *result
		}
	}

	return results
}

func resolveCabin(matrix CabinStatusMatrix, cabin cadf.CabinClass, requestedQuantity int) *AvailabilityResult {
	chain := fallbackChain(cabin)

	var cabinsUsed []cadf.CabinClass
	var statuses []string

	for _, legStatuses := range matrix {
		legCabin := cadf.CabinClassUnknown
		legStatus := ""

		for _, candidate := range chain {
			if status, found := legStatuses[candidate]; found {
				legCabin = candidate
				legStatus = status
				break
			}
		}

		// A leg without data for any cabin in the chain makes the itinerary
		// unevaluable for this cabin
		if legCabin == cadf.CabinClassUnknown {
			return nil
		}

		cabinsUsed = append(cabinsUsed, legCabin)
		statuses = append(statuses, legStatus)
	}

	// Unsatisfiable unless at least one leg books into the requested cabin itself
	if !slices.Contains(cabinsUsed, cabin) {
		return nil
	}

	waitlisted := false
	for _, status := range statuses {
		if status == statusNotAvailable || status == statusNotOffered {
			return nil
		}

		if status == statusWaitlist {
			waitlisted = true
		}
	}

	if waitlisted {
		return &AvailabilityResult{
			CabinsUsed: cabinsUsed,
			Quantity:   requestedQuantity,
			Exact:      false,
			Waitlisted: true,
		}
	}

	// Bookable quantity is bounded by the most constrained leg
	quantity := 0
	for index, status := range statuses {
		count, err := strconv.Atoi(status)
		if err != nil {
			return nil
		}

		if index == 0 || count < quantity {
			quantity = count
		}
	}

	return &AvailabilityResult{
		CabinsUsed: cabinsUsed,
		Quantity:   quantity,
		Exact:      true,
		Waitlisted: false,
	}
}
