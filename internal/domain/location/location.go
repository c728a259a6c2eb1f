package location

import (
	"github.com/routesketch/service-planner/internal/domain"
	"github.com/routesketch/service-planner/internal/domain/geo"
)

// Location is an immutable named geographic point from the registry.
type Location struct {
	Name string  `json:"name"`
	Lat  float64 `json:"lat"`
	Lng  float64 `json:"lng"`
}

// NewLocation validates the coordinates and returns a Location.
func NewLocation(name string, lat, lng float64) (Location, error) {
	if name == "" {
		return Location{}, domain.NewValidationError("location name is required")
	}
	if _, err := geo.NewPoint(lat, lng); err != nil {
		return Location{}, domain.NewValidationError(err.Error())
	}
	return Location{Name: name, Lat: lat, Lng: lng}, nil
}

// Point returns the location's coordinates.
func (l Location) Point() geo.Point {
	return geo.Point{Lat: l.Lat, Lng: l.Lng}
}
