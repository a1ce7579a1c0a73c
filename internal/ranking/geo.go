package ranking

import (
	"lowkey/internal/domain/entity"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"
)

const metersPerKm = 1000.0

// Distance returns the great-circle distance between a and b in kilometers
// using the haversine formula on a spherical earth (orb.EarthRadius).
// Coordinates outside the globe yield ErrInvalidCoordinate.
//
// Both inputs are normalized first: any longitude at a pole becomes 0 and
// longitude -180 becomes 180. The distance is exactly zero when the
// normalized coordinates are equal, so (90, 0) and (90, 120) are the same point.
func Distance(a, b entity.Coordinate) (float64, error) {
	if err := a.Validate(); err != nil {
		return 0, err
	}
	if err := b.Validate(); err != nil {
		return 0, err
	}

	a, b = normalize(a), normalize(b)
	if a == b {
		return 0, nil
	}

	return geo.DistanceHaversine(toPoint(a), toPoint(b)) / metersPerKm, nil
}

// normalize maps the several spellings of one point onto a single coordinate.
func normalize(c entity.Coordinate) entity.Coordinate {
	if c.Lat == 90 || c.Lat == -90 {
		c.Lng = 0
	}
	if c.Lng == -180 {
		c.Lng = 180
	}

	return c
}

// orb points are (lng, lat).
func toPoint(c entity.Coordinate) orb.Point {
	return orb.Point{c.Lng, c.Lat}
}
