package route

import (
	"fmt"
	"math"

	"github.com/routesketch/service-planner/internal/domain/geo"
)

// averageSpeedKmh is the assumed travel speed used for the naive duration
// estimate.
const averageSpeedKmh = 60.0

// Summary holds the derived route metrics. Recomputed on every request,
// never stored.
type Summary struct {
	DistanceKm    float64 `json:"distance_km"`
	DurationLabel string  `json:"duration_label"`
}

// Summarize computes the great-circle distance between the endpoints and a
// duration label assuming a constant 60 km/h.
func Summarize(source, destination geo.Point) Summary {
	distanceKm := geo.Haversine(source, destination)
	return Summary{
		DistanceKm:    distanceKm,
		DurationLabel: FormatDuration(distanceKm / averageSpeedKmh),
	}
}

// FormatDuration renders a duration in hours as "Hh Mm" when at least one
// hour, otherwise "M min". Minutes are rounded to the nearest integer.
func FormatDuration(hours float64) string {
	totalMinutes := int(math.Round(hours * 60))
	if totalMinutes < 60 {
		return fmt.Sprintf("%d min", totalMinutes)
	}
	return fmt.Sprintf("%dh %dm", totalMinutes/60, totalMinutes%60)
}
