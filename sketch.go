package geom

import (
	"fmt"
	"math"
)

// Segment is a straight stretch between two points in a sketch plane.
type Segment struct {
	start Point2
	end   Point2
}

// NewSegment returns the segment from start to end. It fails with
// [ErrDegenerateInput] if the endpoints coincide.
func NewSegment(start, end Point2) (Segment, error) {
	if start.Distance(end) <= LengthAccuracy {
		return Segment{}, fmt.Errorf("%w: segment endpoints coincide at %v", ErrDegenerateInput, start)
	}
	return Segment{start: start, end: end}, nil
}

// Start returns the segment's start point.
func (s Segment) Start() Point2 { return s.start }

// End returns the segment's end point.
func (s Segment) End() Point2 { return s.end }

// Length returns the distance between the endpoints.
func (s Segment) Length() float64 {
	return s.start.Distance(s.end)
}

// Midpoint returns the point halfway between the endpoints.
func (s Segment) Midpoint() Point2 {
	return s.start.Midpoint(s.end)
}

// Direction returns the unit vector from start to end.
func (s Segment) Direction() Vec2 {
	return s.end.Sub(s.start).Div(s.Length())
}

// Curve3D lifts the segment onto a plane in model space, returning the
// line it runs along and the parameter range of the segment on it. The
// line's parameter measures distance from the lifted start point.
func (s Segment) Curve3D(pl Plane) (Line, Interval, error) {
	start := pl.LiftPoint(s.start)
	line, err := LineThrough(start, pl.LiftPoint(s.end))
	if err != nil {
		return Line{}, Interval{}, err
	}
	return line, Interval{Start: 0, End: s.Length()}, nil
}

// Polygon is a regular polygon in a sketch plane, described by its center
// and the radius of its inscribed circle. The first vertex lies along the
// positive x direction from the center.
type Polygon struct {
	center      Point2
	innerRadius float64
	sides       int
}

// NewPolygon returns the regular polygon with the given inscribed-circle
// radius and number of sides. It fails with [ErrConstruction] if the
// radius is not positive or there are fewer than three sides.
func NewPolygon(center Point2, innerRadius float64, sides int) (Polygon, error) {
	if sides < 3 {
		return Polygon{}, fmt.Errorf("%w: polygon needs at least 3 sides, got %d", ErrConstruction, sides)
	}
	if innerRadius <= 0 {
		return Polygon{}, fmt.Errorf("%w: polygon inner radius must be positive, got %g", ErrConstruction, innerRadius)
	}
	return Polygon{center: center, innerRadius: innerRadius, sides: sides}, nil
}

// Center returns the polygon's center.
func (p Polygon) Center() Point2 { return p.center }

// InnerRadius returns the radius of the inscribed circle, the distance
// from the center to the middle of each side.
func (p Polygon) InnerRadius() float64 { return p.innerRadius }

// Sides returns the number of sides.
func (p Polygon) Sides() int { return p.sides }

// OuterRadius returns the radius of the circumscribed circle, the distance
// from the center to each vertex.
func (p Polygon) OuterRadius() float64 {
	return p.innerRadius / math.Cos(math.Pi/float64(p.sides))
}

// SideLength returns the length of each side.
func (p Polygon) SideLength() float64 {
	return 2 * p.innerRadius * math.Tan(math.Pi/float64(p.sides))
}

// Perimeter returns the total length of the sides.
func (p Polygon) Perimeter() float64 {
	return float64(p.sides) * p.SideLength()
}

// Area returns the enclosed area, half the perimeter times the inscribed
// radius.
func (p Polygon) Area() float64 {
	return 0.5 * p.Perimeter() * p.innerRadius
}

// Vertices returns the polygon's corners in counterclockwise order,
// starting at the vertex in the positive x direction from the center.
func (p Polygon) Vertices() []Point2 {
	outer := p.OuterRadius()
	verts := make([]Point2, p.sides)
	for i := range verts {
		sin, cos := math.Sincos(2 * math.Pi * float64(i) / float64(p.sides))
		verts[i] = p.center.Translate(V2(outer*cos, outer*sin))
	}
	return verts
}

// Vertices3D lifts the polygon's corners onto a plane in model space.
func (p Polygon) Vertices3D(pl Plane) []Point3 {
	verts := p.Vertices()
	out := make([]Point3, len(verts))
	for i, v := range verts {
		out[i] = pl.LiftPoint(v)
	}
	return out
}
