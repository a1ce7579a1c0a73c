// Package entity contains the core business objects of the project.
package entity

import (
	"fmt"
	"math"

	domainerrors "lowkey/internal/domain/errors"
)

// Coordinate is a latitude/longitude pair in decimal degrees.
type Coordinate struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// NewCoordinate builds a Coordinate, rejecting values outside the globe.
func NewCoordinate(lat, lng float64) (Coordinate, error) {
	c := Coordinate{Lat: lat, Lng: lng}
	if err := c.Validate(); err != nil {
		return Coordinate{}, err
	}

	return c, nil
}

// Validate returns ErrInvalidCoordinate for NaN, infinities, latitudes
// outside [-90, 90] and longitudes outside [-180, 180].
func (c Coordinate) Validate() error {
	if math.IsNaN(c.Lat) || math.IsNaN(c.Lng) ||
		math.IsInf(c.Lat, 0) || math.IsInf(c.Lng, 0) ||
		c.Lat < -90 || c.Lat > 90 ||
		c.Lng < -180 || c.Lng > 180 {
		return domainerrors.ErrInvalidCoordinate.WithDetails(c.String())
	}

	return nil
}

// String formats the coordinate as "lat,lng".
func (c Coordinate) String() string {
	return fmt.Sprintf("%g,%g", c.Lat, c.Lng)
}
