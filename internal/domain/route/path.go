package route

import (
	"math"

	"github.com/routesketch/service-planner/internal/domain/geo"
)

const (
	// Steps is the number of interpolation segments; a path always has
	// Steps+1 points.
	Steps = 20

	// curveAmplitude is the latitude offset, in degrees, applied along a
	// half-sine so the drawn path bows away from the straight line. The
	// offset is zero at both endpoints and peaks at the midpoint. It is
	// cosmetic and carries no geospatial meaning.
	curveAmplitude = 0.2
)

// Path is an ordered sequence of interpolated points between two endpoints,
// with the summary derived from them.
type Path struct {
	Points  []geo.Point `json:"points"`
	Summary Summary     `json:"summary"`
}

// Generate produces the synthetic path between source and destination:
// Steps+1 points whose latitudes follow a lerp plus a sinusoidal bulge and
// whose longitudes are a plain lerp. Deterministic; the first point equals
// source and the last equals destination.
func Generate(source, destination geo.Point) Path {
	// Coincident endpoints degenerate to a stack of equal points; bowing
	// a zero-length line would draw a stray arc.
	bulge := curveAmplitude
	if source == destination {
		bulge = 0
	}

	points := make([]geo.Point, 0, Steps+1)
	for i := 0; i <= Steps; i++ {
		t := float64(i) / float64(Steps)
		points = append(points, geo.Point{
			Lat: geo.Lerp(source.Lat, destination.Lat, t) + math.Sin(t*math.Pi)*bulge,
			Lng: geo.Lerp(source.Lng, destination.Lng, t),
		})
	}

	return Path{
		Points:  points,
		Summary: Summarize(source, destination),
	}
}
