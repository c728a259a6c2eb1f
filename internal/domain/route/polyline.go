package route

import (
	"math"
	"strings"

	"github.com/routesketch/service-planner/internal/domain/geo"
)

// polylinePrecision is the coordinate scaling used by the encoded polyline
// format (5 decimal places).
const polylinePrecision = 1e5

// EncodePolyline renders points in the encoded polyline format used by map
// widgets: coordinates scaled to 1e5, delta-encoded, then packed in base64
// variant chunks of 5 bits offset by 63.
func EncodePolyline(points []geo.Point) string {
	var b strings.Builder
	var prevLat, prevLng int64

	for _, p := range points {
		lat := int64(math.Round(p.Lat * polylinePrecision))
		lng := int64(math.Round(p.Lng * polylinePrecision))
		encodeSigned(&b, lat-prevLat)
		encodeSigned(&b, lng-prevLng)
		prevLat, prevLng = lat, lng
	}
	return b.String()
}

// DecodePolyline is the inverse of EncodePolyline.
func DecodePolyline(encoded string) []geo.Point {
	points := make([]geo.Point, 0, Steps+1)
	var lat, lng int64
	i := 0

	for i < len(encoded) {
		dLat, n := decodeSigned(encoded[i:])
		i += n
		dLng, n := decodeSigned(encoded[i:])
		i += n

		lat += dLat
		lng += dLng
		points = append(points, geo.Point{
			Lat: float64(lat) / polylinePrecision,
			Lng: float64(lng) / polylinePrecision,
		})
	}
	return points
}

func encodeSigned(b *strings.Builder, v int64) {
	u := v << 1
	if v < 0 {
		u = ^u
	}
	for u >= 0x20 {
		b.WriteByte(byte(0x20|(u&0x1f)) + 63)
		u >>= 5
	}
	b.WriteByte(byte(u) + 63)
}

func decodeSigned(s string) (int64, int) {
	var u int64
	var shift uint
	n := 0
	for {
		c := int64(s[n]) - 63
		n++
		u |= (c & 0x1f) << shift
		if c < 0x20 {
			break
		}
		shift += 5
	}
	if u&1 != 0 {
		return ^(u >> 1), n
	}
	return u >> 1, n
}
