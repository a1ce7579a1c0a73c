package ranking

import (
	"math"
	"testing"

	"lowkey/internal/domain/entity"
	domainerrors "lowkey/internal/domain/errors"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDistance_Symmetric(t *testing.T) {
	t.Parallel()

	pairs := []struct {
		name string
		a, b entity.Coordinate
	}{
		{name: "bengaluru to mysuru", a: entity.Coordinate{Lat: 12.9716, Lng: 77.5946}, b: entity.Coordinate{Lat: 12.2958, Lng: 76.6394}},
		{name: "across antimeridian", a: entity.Coordinate{Lat: -16.5, Lng: 179.9}, b: entity.Coordinate{Lat: -16.6, Lng: -179.9}},
		{name: "pole to equator", a: entity.Coordinate{Lat: 90, Lng: 0}, b: entity.Coordinate{Lat: 0, Lng: 45}},
	}

	for _, tt := range pairs {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ab, err := Distance(tt.a, tt.b)
			require.NoError(t, err)
			ba, err := Distance(tt.b, tt.a)
			require.NoError(t, err)

			assert.Equal(t, ab, ba)
			assert.Greater(t, ab, 0.0)
		})
	}
}

func TestDistance_SamePointIsZero(t *testing.T) {
	t.Parallel()

	for _, c := range []entity.Coordinate{
		{Lat: 0, Lng: 0},
		{Lat: 12.9716, Lng: 77.5946},
		{Lat: -90, Lng: 180},
	} {
		d, err := Distance(c, c)
		require.NoError(t, err)
		assert.Zero(t, d)
	}
}

func TestDistance_EquivalentSpellingsAreZero(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		a, b entity.Coordinate
	}{
		{name: "north pole", a: entity.Coordinate{Lat: 90, Lng: 0}, b: entity.Coordinate{Lat: 90, Lng: 120}},
		{name: "south pole", a: entity.Coordinate{Lat: -90, Lng: -45}, b: entity.Coordinate{Lat: -90, Lng: 180}},
		{name: "antimeridian", a: entity.Coordinate{Lat: 10, Lng: 180}, b: entity.Coordinate{Lat: 10, Lng: -180}},
		{name: "signed zero", a: entity.Coordinate{Lat: math.Copysign(0, -1), Lng: 5}, b: entity.Coordinate{Lat: 0, Lng: 5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			d, err := Distance(tt.a, tt.b)
			require.NoError(t, err)
			assert.Zero(t, d)

			d, err = Distance(tt.b, tt.a)
			require.NoError(t, err)
			assert.Zero(t, d)
		})
	}

	d, err := Distance(entity.Coordinate{Lat: 89.999, Lng: 0}, entity.Coordinate{Lat: 89.999, Lng: 120})
	require.NoError(t, err)
	assert.Greater(t, d, 0.0)
}

func TestDistance_OneDegreeOfLatitude(t *testing.T) {
	t.Parallel()

	d, err := Distance(entity.Coordinate{Lat: 10, Lng: 20}, entity.Coordinate{Lat: 11, Lng: 20})
	require.NoError(t, err)

	want := orb.EarthRadius / metersPerKm * math.Pi / 180
	assert.InDelta(t, want, d, 1e-6)
}

func TestDistance_InvalidCoordinate(t *testing.T) {
	t.Parallel()

	valid := entity.Coordinate{Lat: 1, Lng: 1}
	for _, bad := range []entity.Coordinate{
		{Lat: 90.5, Lng: 0},
		{Lat: 0, Lng: 180.5},
		{Lat: math.NaN(), Lng: 0},
	} {
		_, err := Distance(valid, bad)
		assert.ErrorIs(t, err, domainerrors.ErrInvalidCoordinate)

		_, err = Distance(bad, valid)
		assert.ErrorIs(t, err, domainerrors.ErrInvalidCoordinate)
	}
}
