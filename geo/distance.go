package geo

import (
	"math"

	"github.com/data4life/data4life-api/schema"
)

// earthRadiusMeters is the spherical-earth mean radius
const earthRadiusMeters = 6371000.0

// Distance returns the great-circle (haversine) distance between two
// coordinates in meters. Distance(a, b) == Distance(b, a).
func Distance(a, b schema.Location) float64 {
	lat1 := a.Latitude * math.Pi / 180
	lat2 := b.Latitude * math.Pi / 180
	dLat := (b.Latitude - a.Latitude) * math.Pi / 180
	dLong := (b.Longitude - a.Longitude) * math.Pi / 180

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLong/2)*math.Sin(dLong/2)

	return 2 * earthRadiusMeters * math.Asin(math.Sqrt(h))
}
