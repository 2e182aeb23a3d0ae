// Package seed holds the starter trips a fresh store is populated with.
package seed

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/pkordes/itinerary-planner/internal/domain"
)

//go:embed trips.yaml
var bundled []byte

// Trips returns the bundled starter trips.
func Trips() ([]domain.Trip, error) {
	return parse(bundled)
}

// Load reads starter trips from a YAML file instead of the bundled set.
func Load(path string) ([]domain.Trip, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("seed: read %s: %w", path, err)
	}
	return parse(data)
}

func parse(data []byte) ([]domain.Trip, error) {
	var trips []domain.Trip
	if err := yaml.Unmarshal(data, &trips); err != nil {
		return nil, fmt.Errorf("seed: parse: %w", err)
	}
	for i := range trips {
		t := &trips[i]
		if t.Flights == nil {
			t.Flights = []domain.Flight{}
		}
		if t.Accommodations == nil {
			t.Accommodations = []domain.Accommodation{}
		}
		if t.Activities == nil {
			t.Activities = []domain.Activity{}
		}
	}
	return trips, nil
}
