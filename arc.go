package geom

import (
	"fmt"
	"math"
)

// Arc is a circular arc in a two-dimensional sketch plane, bounded by a
// start and an end point around a center, with an explicit rotation sense.
// Arcs are solved from sketch constraints; [Arc.Curve3D] lifts them onto a
// plane in model space.
type Arc struct {
	start     Point2
	end       Point2
	center    Point2
	clockwise bool
}

// NewArc returns the arc from start to end around center, winding
// clockwise or counterclockwise. It fails with [ErrDegenerateInput] if any
// two of the three points coincide, and with [ErrConstruction] if start
// and end are not equidistant from center. Inputs are never silently
// adjusted.
func NewArc(start, end, center Point2, clockwise bool) (Arc, error) {
	if start.Distance(end) <= LengthAccuracy ||
		start.Distance(center) <= LengthAccuracy ||
		end.Distance(center) <= LengthAccuracy {
		return Arc{}, fmt.Errorf("%w: arc points %v, %v and center %v must be pairwise distinct", ErrDegenerateInput, start, end, center)
	}
	rs := start.Distance(center)
	re := end.Distance(center)
	if !EqualWithin(rs, re, LengthAccuracy) {
		return Arc{}, fmt.Errorf("%w: arc start radius %g and end radius %g differ", ErrConstruction, rs, re)
	}
	return Arc{start: start, end: end, center: center, clockwise: clockwise}, nil
}

// ArcFromThreePoints returns the arc from start through inter to end: the
// center is the solution of the two perpendicular-bisector equations, and
// the rotation sense is whichever one passes inter on the way from start
// to end. It fails with [ErrDegenerateInput] if the points are collinear
// or coincide.
func ArcFromThreePoints(start, inter, end Point2) (Arc, error) {
	// Equating the circle equations of (start, inter) and (start, end)
	// pairs gives a linear system for the center.
	a1 := 2 * (inter.X - start.X)
	b1 := 2 * (inter.Y - start.Y)
	c1 := inter.X*inter.X + inter.Y*inter.Y - start.X*start.X - start.Y*start.Y
	a2 := 2 * (end.X - start.X)
	b2 := 2 * (end.Y - start.Y)
	c2 := end.X*end.X + end.Y*end.Y - start.X*start.X - start.Y*start.Y
	det := a1*b2 - a2*b1
	if zeroWithin(det, LengthAccuracy) {
		return Arc{}, fmt.Errorf("%w: arc points %v, %v and %v are collinear", ErrDegenerateInput, start, inter, end)
	}
	center := Pt2((c1*b2-c2*b1)/det, (a1*c2-a2*c1)/det)

	// Counterclockwise, inter must come before end.
	vs := start.Sub(center)
	ti := wrapAngle(math.Atan2(vs.Cross(inter.Sub(center)), vs.Dot(inter.Sub(center))))
	te := wrapAngle(math.Atan2(vs.Cross(end.Sub(center)), vs.Dot(end.Sub(center))))
	return NewArc(start, end, center, ti > te)
}

// ArcFromStartEndRadius returns the arc of the given radius from start to
// end. Two centers are equidistant radius from both points; convex selects
// the one on the right-hand side of the chord from start to end. It fails
// with [ErrConstruction] if the radius is not positive or the chord is
// longer than the diameter, and with [ErrDegenerateInput] if start and end
// coincide.
func ArcFromStartEndRadius(start, end Point2, radius float64, convex, clockwise bool) (Arc, error) {
	if radius <= 0 {
		return Arc{}, fmt.Errorf("%w: arc radius must be positive, got %g", ErrConstruction, radius)
	}
	chord := end.Sub(start)
	d := chord.Hypot()
	if d <= LengthAccuracy {
		return Arc{}, fmt.Errorf("%w: arc start and end coincide at %v", ErrDegenerateInput, start)
	}
	if d > 2*radius+LengthAccuracy {
		return Arc{}, fmt.Errorf("%w: chord %g exceeds the diameter %g", ErrConstruction, d, 2*radius)
	}
	// Height of the center above the chord midpoint. The clamp absorbs a
	// chord within tolerance of the full diameter.
	h := math.Sqrt(max(radius*radius-d*d/4, 0))
	perp, err := chord.Perp().Normalize()
	if err != nil {
		return Arc{}, err
	}
	mid := start.Midpoint(end)
	center := mid.Translate(perp.Mul(h))
	if convex {
		center = mid.Translate(perp.Mul(-h))
	}
	return NewArc(start, end, center, clockwise)
}

// ArcFromStartCenterAngle returns the arc sweeping the given angle in
// radians from start around center, rotating start by the angle to find
// the end point. It fails with [ErrConstruction] if the angle is not in
// (0, 2π), and with [ErrDegenerateInput] if start and center coincide.
func ArcFromStartCenterAngle(start, center Point2, angle float64, clockwise bool) (Arc, error) {
	if angle <= 0 || angle >= 2*math.Pi {
		return Arc{}, fmt.Errorf("%w: arc sweep must lie in (0, 2π), got %g", ErrConstruction, angle)
	}
	if start.Distance(center) <= LengthAccuracy {
		return Arc{}, fmt.Errorf("%w: arc start and center coincide at %v", ErrDegenerateInput, start)
	}
	theta := angle
	if clockwise {
		theta = -angle
	}
	m := Translation2(Vec2(center).Negate()).
		Mul(Rotation2(theta)).
		Mul(Translation2(Vec2(center)))
	return NewArc(start, start.Transform(m), center, clockwise)
}

// Start returns the arc's start point.
func (a Arc) Start() Point2 { return a.start }

// End returns the arc's end point.
func (a Arc) End() Point2 { return a.end }

// Center returns the arc's center.
func (a Arc) Center() Point2 { return a.center }

// Clockwise reports which way the arc winds from start to end.
func (a Arc) Clockwise() bool { return a.clockwise }

// Radius returns the distance from the center to the start point.
func (a Arc) Radius() float64 {
	return a.start.Distance(a.center)
}

// Angle returns the sweep from start to end in the arc's rotation sense,
// in (0, 2π).
func (a Arc) Angle() float64 {
	as := a.start.Sub(a.center).Angle()
	ae := a.end.Sub(a.center).Angle()
	if a.clockwise {
		return wrapAngle(as - ae)
	}
	return wrapAngle(ae - as)
}

// Length returns the arc length, radius times sweep.
func (a Arc) Length() float64 {
	return a.Radius() * a.Angle()
}

// Curve3D lifts the arc onto a plane in model space, returning the circle
// it runs along and the parameter range of the arc on it. The circle's
// angle zero lies at the arc's start point; clockwise arcs run along a
// circle winding the opposite way, so the parameter increases along the
// arc in both senses.
func (a Arc) Curve3D(pl Plane) (Circle, Interval, error) {
	center := pl.LiftPoint(a.center)
	toStart, err := Unit3(pl.LiftPoint(a.start).Sub(center))
	if err != nil {
		return Circle{}, Interval{}, err
	}
	axis := pl.Normal()
	if a.clockwise {
		axis = axis.Negate()
	}
	f, err := NewFrame(center, toStart, axis)
	if err != nil {
		return Circle{}, Interval{}, err
	}
	c, err := NewCircleIn(f, a.Radius())
	if err != nil {
		return Circle{}, Interval{}, err
	}
	return c, Interval{Start: 0, End: a.Angle()}, nil
}
