// Package montecarlo estimates the area common to a set of circles by
// uniform sampling inside a bounding rectangle.
//
// The estimate is box.Area() * hits / n, where a hit is a sample point lying
// inside every circle. All randomness comes from the Source passed in, so a
// caller that shares one Source across calls gets a reproducible sequence of
// estimates for a fixed call order.
package montecarlo

import "github.com/gopheracademy/mcarea/geom"

// Area estimates the area of the intersection of circles restricted to box
// using n sample points drawn from src.
// An empty box or a non-positive n yields 0 without consuming src.
func Area(circles []geom.Circle, n int64, box geom.Rect, src Source) float64 {
	if box.Empty() || n <= 0 {
		return 0
	}

	hits := Hits(circles, n, box, src)
	return box.Area() * float64(hits) / float64(n)
}

// Hits draws n points in box and counts those inside every circle.
// Each point consumes the x coordinate first, then y.
func Hits(circles []geom.Circle, n int64, box geom.Rect, src Source) int64 {
	var hits int64
	for i := int64(0); i < n; i++ {
		x := Uniform(src, box.MinX, box.MaxX)
		y := Uniform(src, box.MinY, box.MaxY)
		if geom.ContainsAll(circles, x, y) {
			hits++
		}
	}
	return hits
}
