package velaris

import (
	"fmt"
	"strings"
)

const locationClassName = "LocationEntry"

const (
	dictionaryKindAirport  = "AIRPORT"
	dictionaryKindTerminal = "TERMINAL"
)

// LocationDictionary maps an opaque dictionary key onto an IATA airport code.
// Built once per response, read only afterwards
type LocationDictionary map[string]string

func resolveLocationDictionary(dictionaries Dictionaries) (LocationDictionary, error) {
	locationClassIndex := -1
	for index, className := range dictionaries.ClassNames {
		if strings.HasSuffix(className, locationClassName) {
			locationClassIndex = index
			break
		}
	}

	if locationClassIndex == -1 {
		return nil, fmt.Errorf("%w: dictionaries declare no location class", ErrStructuralParse)
	}

	airports := map[string]string{}
	var terminals []DictionaryValue

	for _, value := range dictionaries.Values {
		if value.ClassIndex != locationClassIndex {
			continue
		}

		switch value.Kind {
		case dictionaryKindAirport:
			airports[value.Key] = value.Code
		case dictionaryKindTerminal:
			terminals = append(terminals, value)
		}
	}

	dictionary := LocationDictionary{}
	for key, code := range airports {
		dictionary[key] = code
	}

	// Terminals carry no code of their own and inherit their parent airport's
	for _, terminal := range terminals {
		parentCode, found := airports[terminal.Parent]
		if !found {
			return nil, fmt.Errorf("%w: terminal %s references unknown parent %s", ErrStructuralParse, terminal.Key, terminal.Parent)
		}

		dictionary[terminal.Key] = parentCode
	}

	return dictionary, nil
}
