package catalogue

import (
	"io"
	"os"

	"github.com/farescout/farescout/pkg/cadf"
	"github.com/gocarina/gocsv"
)

type StaticAircraftRegistry struct {
	aircraft map[string]cadf.AircraftType
}

func NewStaticAircraftRegistry(aircraft []cadf.AircraftType) *StaticAircraftRegistry {
	registry := &StaticAircraftRegistry{
		aircraft: map[string]cadf.AircraftType{},
	}

	for _, aircraftType := range aircraft {
		registry.aircraft[aircraftType.EquipmentCode] = aircraftType
	}

	return registry
}

func (s *StaticAircraftRegistry) LookupAircraft(equipmentCode string) (cadf.AircraftType, bool) {
	aircraftType, found := s.aircraft[equipmentCode]

	return aircraftType, found
}

type aircraftRecord struct {
	EquipmentCode string `csv:"equipment_code"`
	Identifier    string `csv:"identifier"`
	Name          string `csv:"name"`
}

func LoadAircraftRegistry(reader io.Reader) (*StaticAircraftRegistry, error) {
	var records []*aircraftRecord
	if err := gocsv.Unmarshal(reader, &records); err != nil {
		return nil, err
	}

	var aircraft []cadf.AircraftType
	for _, record := range records {
		aircraft = append(aircraft, cadf.AircraftType{
			EquipmentCode: record.EquipmentCode,
			Identifier:    record.Identifier,
			Name:          record.Name,
		})
	}

	return NewStaticAircraftRegistry(aircraft), nil
}

func LoadAircraftRegistryFile(path string) (*StaticAircraftRegistry, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	return LoadAircraftRegistry(file)
}
