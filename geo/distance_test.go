package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/data4life/data4life-api/schema"
)

func TestDistanceSamePoint(t *testing.T) {
	p := schema.Location{Latitude: 12.9716, Longitude: 77.5946}
	assert.Equal(t, 0.0, Distance(p, p), "distance to itself must be zero")
}

func TestDistanceNearbyPoints(t *testing.T) {
	citizen := schema.Location{Latitude: 12.9716, Longitude: 77.5946}
	hotspot := schema.Location{Latitude: 12.9720, Longitude: 77.5950}

	d := Distance(citizen, hotspot)

	// two points roughly 60 meters apart in Bangalore
	assert.InDelta(t, 62, d, 5, "unexpected haversine distance")
	assert.True(t, d > 50, "distance must exceed a 50m threshold")
	assert.True(t, d < 100, "distance must stay under a 100m threshold")
}

func TestDistanceCommutative(t *testing.T) {
	a := schema.Location{Latitude: 12.9716, Longitude: 77.5946}
	b := schema.Location{Latitude: 13.0827, Longitude: 80.2707}

	assert.Equal(t, Distance(a, b), Distance(b, a), "haversine must be symmetric")
}

func TestDistanceKnownCities(t *testing.T) {
	bangalore := schema.Location{Latitude: 12.9716, Longitude: 77.5946}
	chennai := schema.Location{Latitude: 13.0827, Longitude: 80.2707}

	// Bangalore to Chennai is about 290 km great-circle
	d := Distance(bangalore, chennai)
	assert.InDelta(t, 290000, d, 5000, "unexpected city-to-city distance")
}
