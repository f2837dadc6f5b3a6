package hullprune

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// Smoke test. The internals are already tested.
func TestPruneInterior(t *testing.T) {
	boundary := SearchPointVector{
		{Location: GeoPoint{Longitude: 0, Latitude: 0}},
		{Location: GeoPoint{Longitude: 0, Latitude: 10}},
		{Location: GeoPoint{Longitude: 10, Latitude: 10}},
		{Location: GeoPoint{Longitude: 10, Latitude: 0}},
		{Location: GeoPoint{Longitude: 5, Latitude: 5}},
	}

	changed, err := PruneInterior(&boundary, 0)
	assert.NoError(t, err)
	assert.True(t, changed)
	assert.Len(t, boundary, 4)
}

func TestPruneInterior_Degenerate(t *testing.T) {
	boundary := SearchPointVector{
		{Location: GeoPoint{Longitude: 0, Latitude: 0}},
		{Location: GeoPoint{Longitude: 1, Latitude: 1}},
	}

	changed, err := PruneInterior(&boundary, AutoTolerance)
	assert.NoError(t, err)
	assert.False(t, changed)
	assert.Len(t, boundary, 2)
}
