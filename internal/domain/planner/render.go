package planner

import (
	"github.com/routesketch/service-planner/internal/domain/geo"
	"github.com/routesketch/service-planner/internal/domain/route"
)

// MarkerKind distinguishes the markers a render plan places on the map.
type MarkerKind string

const (
	MarkerSource      MarkerKind = "source"
	MarkerDestination MarkerKind = "destination"
	MarkerSelected    MarkerKind = "selected"
)

// Marker is one pin on the map.
type Marker struct {
	Kind     MarkerKind `json:"kind"`
	Name     string     `json:"name,omitempty"`
	Position geo.Point  `json:"position"`
}

// RouteLayer is the drawable representation of a computed route.
type RouteLayer struct {
	Points   []geo.Point   `json:"points"`
	Polyline string        `json:"polyline"`
	Summary  route.Summary `json:"summary"`
}

// RenderPlan is the full drawable state derived from a session: the view
// discards whatever it drew before and renders exactly this. Bounds are the
// viewport to fit; nil means leave the viewport alone.
type RenderPlan struct {
	Markers []Marker    `json:"markers"`
	Route   *RouteLayer `json:"route,omitempty"`
	Bounds  *geo.BBox   `json:"bounds,omitempty"`
}

// BuildRenderPlan derives the drawable state from the session. Viewport
// precedence: fit the full route when present, else the set endpoints,
// else center on the selected point.
func BuildRenderPlan(s *Session) RenderPlan {
	plan := RenderPlan{Markers: make([]Marker, 0, 3)}

	if src := s.Source(); src != nil {
		plan.Markers = append(plan.Markers, Marker{Kind: MarkerSource, Name: src.Name, Position: src.Point()})
	}
	if dst := s.Destination(); dst != nil {
		plan.Markers = append(plan.Markers, Marker{Kind: MarkerDestination, Name: dst.Name, Position: dst.Point()})
	}
	if sel := s.Selected(); sel != nil {
		plan.Markers = append(plan.Markers, Marker{Kind: MarkerSelected, Position: *sel})
	}

	if path := s.Path(); path != nil {
		plan.Route = &RouteLayer{
			Points:   path.Points,
			Polyline: route.EncodePolyline(path.Points),
			Summary:  path.Summary,
		}
	}

	if bounds := viewportBounds(s); bounds != nil {
		plan.Bounds = bounds
	}
	return plan
}

func viewportBounds(s *Session) *geo.BBox {
	if path := s.Path(); path != nil && len(path.Points) > 0 {
		box := geo.BoundingBox(path.Points)
		return &box
	}

	anchors := make([]geo.Point, 0, 2)
	if src := s.Source(); src != nil {
		anchors = append(anchors, src.Point())
	}
	if dst := s.Destination(); dst != nil {
		anchors = append(anchors, dst.Point())
	}
	if len(anchors) == 0 && s.Selected() != nil {
		anchors = append(anchors, *s.Selected())
	}
	if len(anchors) == 0 {
		return nil
	}

	box := geo.BoundingBox(anchors)
	return &box
}
