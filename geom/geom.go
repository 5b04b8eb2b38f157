// Package geom holds the plane geometry the estimator samples over: circles,
// axis-aligned rectangles and the two bounding boxes derived from a set of
// circles.
package geom

import "math"

// Circle is a disc in the plane
type Circle struct {
	X, Y float64 // center
	R    float64 // radius
	RSq  float64 // R*R
}

// NewCircle returns a circle centered at (x, y) with radius r
func NewCircle(x, y, r float64) Circle {
	return Circle{X: x, Y: y, R: r, RSq: r * r}
}

// Contains reports whether (x, y) lies inside or on the circle
func (c Circle) Contains(x, y float64) bool {
	dx := x - c.X
	dy := y - c.Y
	return float64(dx*dx)+float64(dy*dy) <= c.RSq // no FMA
}

// Rect is an axis-aligned rectangle
type Rect struct {
	MinX, MaxX float64
	MinY, MaxY float64
}

// Empty reports whether the rectangle has no interior
func (r Rect) Empty() bool {
	return r.MinX >= r.MaxX || r.MinY >= r.MaxY
}

// Area returns the rectangle area, 0 for an empty one
func (r Rect) Area() float64 {
	if r.Empty() {
		return 0
	}
	return (r.MaxX - r.MinX) * (r.MaxY - r.MinY)
}

// ContainsAll reports whether (x, y) is inside every circle.
// It stops at the first circle that rejects the point.
func ContainsAll(circles []Circle, x, y float64) bool {
	for _, c := range circles {
		if !c.Contains(x, y) {
			return false
		}
	}
	return true
}

// NarrowBox returns the intersection of the circles' bounding boxes.
// It is empty when the circles cannot share a common region.
func NarrowBox(circles []Circle) Rect {
	r := Rect{
		MinX: math.Inf(-1), MaxX: math.Inf(1),
		MinY: math.Inf(-1), MaxY: math.Inf(1),
	}
	for _, c := range circles {
		r.MinX = math.Max(r.MinX, c.X-c.R)
		r.MaxX = math.Min(r.MaxX, c.X+c.R)
		r.MinY = math.Max(r.MinY, c.Y-c.R)
		r.MaxY = math.Min(r.MaxY, c.Y+c.R)
	}
	return r
}

// WideBox returns the bounding box of the union of the circles
func WideBox(circles []Circle) Rect {
	r := Rect{
		MinX: math.Inf(1), MaxX: math.Inf(-1),
		MinY: math.Inf(1), MaxY: math.Inf(-1),
	}
	for _, c := range circles {
		r.MinX = math.Min(r.MinX, c.X-c.R)
		r.MaxX = math.Max(r.MaxX, c.X+c.R)
		r.MinY = math.Min(r.MinY, c.Y-c.R)
		r.MaxY = math.Max(r.MaxY, c.Y+c.R)
	}
	return r
}
