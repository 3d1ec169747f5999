package velaris

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveLocationDictionary(t *testing.T) {
	dictionaries := Dictionaries{
		ClassNames: []string{
			"com.velaris.resbus.FlightEntry",
			"com.velaris.resbus.LocationEntry",
		},
		Values: []DictionaryValue{
			{ClassIndex: 1, Key: "L1", Kind: "AIRPORT", Code: "SFO"},
			{ClassIndex: 1, Key: "L2", Kind: "AIRPORT", Code: "NRT"},
			{ClassIndex: 1, Key: "L3", Kind: "TERMINAL", Parent: "L2"},
			{ClassIndex: 0, Key: "L1", Kind: "AIRPORT", Code: "ZZZ"},
		},
	}

	locations, err := resolveLocationDictionary(dictionaries)
	require.NoError(t, err)

	assert.Equal(t, "SFO", locations["L1"], "values of other classes never shadow location entries")
	assert.Equal(t, "NRT", locations["L2"])
	assert.Equal(t, "NRT", locations["L3"], "terminals inherit their parent airport's code")
}

func TestResolveLocationDictionaryNoLocationClass(t *testing.T) {
	dictionaries := Dictionaries{
		ClassNames: []string{"com.velaris.resbus.FlightEntry"},
	}

	_, err := resolveLocationDictionary(dictionaries)

	require.ErrorIs(t, err, ErrStructuralParse)
}

func TestResolveLocationDictionaryOrphanedTerminal(t *testing.T) {
	dictionaries := Dictionaries{
		ClassNames: []string{"com.velaris.resbus.LocationEntry"},
		Values: []DictionaryValue{
			{ClassIndex: 0, Key: "L1", Kind: "TERMINAL", Parent: "L9"},
		},
	}

	_, err := resolveLocationDictionary(dictionaries)

	require.ErrorIs(t, err, ErrStructuralParse)
}
