package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPoint_Bounds(t *testing.T) {
	tests := []struct {
		name    string
		lat     float64
		lng     float64
		wantErr bool
	}{
		{"valid", 17.6868, 83.2185, false},
		{"lat too high", 91, 0, true},
		{"lat too low", -90.1, 0, true},
		{"lng too high", 0, 180.5, true},
		{"lng too low", 0, -181, true},
		{"poles and antimeridian", -90, 180, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewPoint(tt.lat, tt.lng)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestHaversine_KnownDistance(t *testing.T) {
	visakhapatnam := Point{Lat: 17.6868, Lng: 83.2185}
	vijayawada := Point{Lat: 16.5062, Lng: 80.6480}

	d := Haversine(visakhapatnam, vijayawada)
	assert.InDelta(t, 303.09, d, 0.05, "great-circle Visakhapatnam to Vijayawada")
}

func TestHaversine_Symmetric(t *testing.T) {
	a := Point{Lat: 17.6868, Lng: 83.2185}
	b := Point{Lat: 13.0827, Lng: 80.2707}

	assert.Equal(t, Haversine(a, b), Haversine(b, a))
}

func TestHaversine_ZeroForSamePoint(t *testing.T) {
	p := Point{Lat: 16.5062, Lng: 80.6480}
	assert.Zero(t, Haversine(p, p))
}

func TestLerp(t *testing.T) {
	assert.Equal(t, 1.0, Lerp(1, 3, 0))
	assert.Equal(t, 3.0, Lerp(1, 3, 1))
	assert.Equal(t, 2.0, Lerp(1, 3, 0.5))
}

func TestBBox(t *testing.T) {
	a := Point{Lat: 17.6868, Lng: 83.2185}
	b := Point{Lat: 16.5062, Lng: 80.6480}

	box := NewBBox(a, b)
	assert.Equal(t, 16.5062, box.Min.Lat)
	assert.Equal(t, 80.6480, box.Min.Lng)
	assert.Equal(t, 17.6868, box.Max.Lat)
	assert.Equal(t, 83.2185, box.Max.Lng)

	assert.True(t, box.Contains(box.Center()))
	assert.True(t, box.Contains(a))
	assert.False(t, box.Contains(Point{Lat: 20, Lng: 82}))
}

func TestBoundingBox_ExtendsOverAllPoints(t *testing.T) {
	points := []Point{
		{Lat: 10, Lng: 70},
		{Lat: 12, Lng: 85},
		{Lat: 8, Lng: 78},
	}

	box := BoundingBox(points)
	require.Equal(t, 8.0, box.Min.Lat)
	require.Equal(t, 70.0, box.Min.Lng)
	require.Equal(t, 12.0, box.Max.Lat)
	require.Equal(t, 85.0, box.Max.Lng)

	for _, p := range points {
		assert.True(t, box.Contains(p))
	}
}
