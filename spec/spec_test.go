package spec_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/pkordes/itinerary-planner/spec"
)

func TestOpenAPI_Parses(t *testing.T) {
	var doc struct {
		OpenAPI string         `yaml:"openapi"`
		Paths   map[string]any `yaml:"paths"`
	}
	require.NoError(t, yaml.Unmarshal(spec.OpenAPI, &doc))

	assert.Equal(t, "3.0.3", doc.OpenAPI)
	for _, p := range []string{
		"/trips", "/trips/{tripID}", "/trips/{tripID}/flights/{itemID}",
		"/trips/{tripID}/activities/conflicts", "/history/undo", "/export", "/stats",
	} {
		assert.Contains(t, doc.Paths, p)
	}
}
