package geo

import "math"

// BBox is an axis-aligned bounding box over lat/lng coordinates, used to
// fit a map viewport around markers and routes.
type BBox struct {
	Min Point `json:"min"`
	Max Point `json:"max"`
}

// NewBBox returns the bounding box of two points in any order.
func NewBBox(a, b Point) BBox {
	return BBox{
		Min: Point{Lat: math.Min(a.Lat, b.Lat), Lng: math.Min(a.Lng, b.Lng)},
		Max: Point{Lat: math.Max(a.Lat, b.Lat), Lng: math.Max(a.Lng, b.Lng)},
	}
}

// NewBBoxPoint returns a degenerate box containing a single point.
func NewBBoxPoint(p Point) BBox {
	return BBox{Min: p, Max: p}
}

// BoundingBox returns the bounding box of all given points.
// Callers must pass at least one point.
func BoundingBox(points []Point) BBox {
	box := NewBBoxPoint(points[0])
	for _, p := range points[1:] {
		box = box.Extend(p)
	}
	return box
}

// Extend grows the box to include p.
func (b BBox) Extend(p Point) BBox {
	return b.Union(NewBBoxPoint(p))
}

// Union returns the smallest box containing both boxes.
func (b BBox) Union(o BBox) BBox {
	return BBox{
		Min: Point{Lat: math.Min(b.Min.Lat, o.Min.Lat), Lng: math.Min(b.Min.Lng, o.Min.Lng)},
		Max: Point{Lat: math.Max(b.Max.Lat, o.Max.Lat), Lng: math.Max(b.Max.Lng, o.Max.Lng)},
	}
}

// Center returns the midpoint of the box.
func (b BBox) Center() Point {
	return Point{
		Lat: (b.Min.Lat + b.Max.Lat) / 2.0,
		Lng: (b.Min.Lng + b.Max.Lng) / 2.0,
	}
}

// Contains reports whether p lies within the box (inclusive).
func (b BBox) Contains(p Point) bool {
	return b.Min.Lat <= p.Lat && p.Lat <= b.Max.Lat &&
		b.Min.Lng <= p.Lng && p.Lng <= b.Max.Lng
}
