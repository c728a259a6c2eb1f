package geo

import (
	"fmt"
	"math"
)

const earthRadiusKm = 6371.0

// Point is a latitude/longitude pair in degrees (WGS84).
type Point struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// NewPoint validates coordinate bounds and returns a Point.
func NewPoint(lat, lng float64) (Point, error) {
	if lat < -90 || lat > 90 {
		return Point{}, fmt.Errorf("latitude %f out of range [-90, 90]", lat)
	}
	if lng < -180 || lng > 180 {
		return Point{}, fmt.Errorf("longitude %f out of range [-180, 180]", lng)
	}
	return Point{Lat: lat, Lng: lng}, nil
}

// String returns the point formatted as "(lat, lng)".
func (p Point) String() string {
	return fmt.Sprintf("(%.4f, %.4f)", p.Lat, p.Lng)
}

// Haversine returns the great-circle distance between two points in kilometers.
func Haversine(a, b Point) float64 {
	dLat := degreesToRadians(b.Lat - a.Lat)
	dLng := degreesToRadians(b.Lng - a.Lng)

	aLat := degreesToRadians(a.Lat)
	bLat := degreesToRadians(b.Lat)

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Sin(dLng/2)*math.Sin(dLng/2)*math.Cos(aLat)*math.Cos(bLat)
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return earthRadiusKm * c
}

// Lerp linearly interpolates between a and b at parameter t in [0, 1].
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

func degreesToRadians(deg float64) float64 {
	return deg * math.Pi / 180.0
}
