package catalogue

import (
	"fmt"
	"io"
	"os"

	"github.com/farescout/farescout/pkg/cadf"
	"golang.org/x/exp/slices"
	"gopkg.in/yaml.v3"
)

type StaticFareCatalogue struct {
	fares map[string]cadf.FareDefinition
}

func NewStaticFareCatalogue(fares []cadf.FareDefinition) *StaticFareCatalogue {
	catalogue := &StaticFareCatalogue{
		fares: map[string]cadf.FareDefinition{},
	}

	for _, fare := range fares {
		catalogue.fares[fare.Code] = fare
	}

	return catalogue
}

func (s *StaticFareCatalogue) LookupFare(code string) (cadf.FareDefinition, bool) {
	fare, found := s.fares[code]

	return fare, found
}

type fareCatalogueFile struct {
	Fares []struct {
		Code  string `yaml:"code"`
		Name  string `yaml:"name"`
		Cabin string `yaml:"cabin"`
	} `yaml:"fares"`
}

func LoadFareCatalogue(reader io.Reader) (*StaticFareCatalogue, error) {
	catalogueYaml, err := io.ReadAll(reader)
	if err != nil {
		return nil, err
	}

	var file fareCatalogueFile
	if err := yaml.Unmarshal(catalogueYaml, &file); err != nil {
		return nil, err
	}

	var fares []cadf.FareDefinition
	for _, entry := range file.Fares {
		cabin := cadf.CabinClass(entry.Cabin)

		if !slices.Contains(cadf.CabinHierarchy, cabin) {
			return nil, fmt.Errorf("fare %s has unknown cabin %s", entry.Code, entry.Cabin)
		}

		fares = append(fares, cadf.FareDefinition{
			Code:  entry.Code,
			Name:  entry.Name,
			Cabin: cabin,
		})
	}

	return NewStaticFareCatalogue(fares), nil
}

func LoadFareCatalogueFile(path string) (*StaticFareCatalogue, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	return LoadFareCatalogue(file)
}
