package geom

import "fmt"

// ParamRecord is the flat serializable form of a [Parameterization].
type ParamRecord struct {
	Form  Form
	Type  ParamType
	Start float64
	End   float64
}

// NewParamRecord flattens p into a record.
func NewParamRecord(p Parameterization) ParamRecord {
	return ParamRecord{
		Form:  p.Form,
		Type:  p.Type,
		Start: p.Domain.Start,
		End:   p.Domain.End,
	}
}

// Parameterization rebuilds the parameterization the record describes.
func (r ParamRecord) Parameterization() Parameterization {
	return Parameterization{
		Form:   r.Form,
		Type:   r.Type,
		Domain: Interval{Start: r.Start, End: r.End},
	}
}

// CurveRecord is the flat serializable form of a [Curve]: a kind tag plus
// the fields that kind uses, with the rest left zero. Serialization layers
// shuttle records across the kernel boundary; [CurveRecord.Curve] runs the
// full constructor validation on the way back in.
type CurveRecord struct {
	Kind          CurveKind
	Origin        Point3
	Reference     Vec3
	Axis          Vec3
	Radius        float64
	MajorRadius   float64
	MinorRadius   float64
	Degree        int
	ControlPoints []Point3
	Weights       []float64
	Knots         []float64
}

// NewCurveRecord flattens c into a record. For a line the direction is
// stored as the axis; the frame curves store their frame's x direction as
// the reference and its z direction as the axis.
func NewCurveRecord(c Curve) CurveRecord {
	switch c := c.(type) {
	case Line:
		return CurveRecord{
			Kind:   LineKind,
			Origin: c.Origin(),
			Axis:   c.Direction().Vec3(),
		}
	case Circle:
		f := c.Frame()
		return CurveRecord{
			Kind:      CircleKind,
			Origin:    f.Origin(),
			Reference: f.DirX().Vec3(),
			Axis:      f.DirZ().Vec3(),
			Radius:    c.Radius(),
		}
	case Ellipse:
		f := c.Frame()
		return CurveRecord{
			Kind:        EllipseKind,
			Origin:      f.Origin(),
			Reference:   f.DirX().Vec3(),
			Axis:        f.DirZ().Vec3(),
			MajorRadius: c.MajorRadius(),
			MinorRadius: c.MinorRadius(),
		}
	case NurbsCurve:
		return CurveRecord{
			Kind:          NurbsCurveKind,
			Degree:        c.Degree(),
			ControlPoints: c.ControlPoints(),
			Weights:       c.Weights(),
			Knots:         c.Knots(),
		}
	}
	panic("unreachable")
}

// Curve rebuilds the curve the record describes. It fails with
// [ErrConstruction] if the kind is unknown, and with the constructors'
// errors if the fields do not form a valid curve.
func (r CurveRecord) Curve() (Curve, error) {
	switch r.Kind {
	case LineKind:
		dir, err := Unit3(r.Axis)
		if err != nil {
			return nil, err
		}
		return NewLine(r.Origin, dir), nil
	case CircleKind:
		f, err := recordFrame(r.Origin, r.Reference, r.Axis)
		if err != nil {
			return nil, err
		}
		c, err := NewCircleIn(f, r.Radius)
		if err != nil {
			return nil, err
		}
		return c, nil
	case EllipseKind:
		f, err := recordFrame(r.Origin, r.Reference, r.Axis)
		if err != nil {
			return nil, err
		}
		e, err := NewEllipseIn(f, r.MajorRadius, r.MinorRadius)
		if err != nil {
			return nil, err
		}
		return e, nil
	case NurbsCurveKind:
		c, err := NewNurbsCurve(r.Degree, r.ControlPoints, r.Weights, r.Knots)
		if err != nil {
			return nil, err
		}
		return c, nil
	}
	return nil, fmt.Errorf("%w: unknown curve kind %d", ErrConstruction, r.Kind)
}

// SurfaceRecord is the flat serializable form of a [Surface], mirroring
// [CurveRecord] with the tensor-product fields the NURBS surface needs.
type SurfaceRecord struct {
	Kind          SurfaceKind
	Origin        Point3
	Reference     Vec3
	Axis          Vec3
	Radius        float64
	HalfAngle     float64
	MajorRadius   float64
	MinorRadius   float64
	UDegree       int
	VDegree       int
	ControlPoints [][]Point3
	Weights       [][]float64
	UKnots        []float64
	VKnots        []float64
}

// NewSurfaceRecord flattens s into a record.
func NewSurfaceRecord(s Surface) SurfaceRecord {
	switch s := s.(type) {
	case Plane:
		f := s.Frame()
		return SurfaceRecord{
			Kind:      PlaneKind,
			Origin:    f.Origin(),
			Reference: f.DirX().Vec3(),
			Axis:      f.DirZ().Vec3(),
		}
	case Cylinder:
		f := s.Frame()
		return SurfaceRecord{
			Kind:      CylinderKind,
			Origin:    f.Origin(),
			Reference: f.DirX().Vec3(),
			Axis:      f.DirZ().Vec3(),
			Radius:    s.Radius(),
		}
	case Cone:
		f := s.Frame()
		return SurfaceRecord{
			Kind:      ConeKind,
			Origin:    f.Origin(),
			Reference: f.DirX().Vec3(),
			Axis:      f.DirZ().Vec3(),
			Radius:    s.Radius(),
			HalfAngle: s.HalfAngle(),
		}
	case Sphere:
		f := s.Frame()
		return SurfaceRecord{
			Kind:      SphereKind,
			Origin:    f.Origin(),
			Reference: f.DirX().Vec3(),
			Axis:      f.DirZ().Vec3(),
			Radius:    s.Radius(),
		}
	case Torus:
		f := s.Frame()
		return SurfaceRecord{
			Kind:        TorusKind,
			Origin:      f.Origin(),
			Reference:   f.DirX().Vec3(),
			Axis:        f.DirZ().Vec3(),
			MajorRadius: s.MajorRadius(),
			MinorRadius: s.MinorRadius(),
		}
	case NurbsSurface:
		return SurfaceRecord{
			Kind:          NurbsSurfaceKind,
			UDegree:       s.UDegree(),
			VDegree:       s.VDegree(),
			ControlPoints: s.ControlPoints(),
			Weights:       s.Weights(),
			UKnots:        s.UKnots(),
			VKnots:        s.VKnots(),
		}
	}
	panic("unreachable")
}

// Surface rebuilds the surface the record describes. It fails with
// [ErrConstruction] if the kind is unknown, and with the constructors'
// errors if the fields do not form a valid surface.
func (r SurfaceRecord) Surface() (Surface, error) {
	switch r.Kind {
	case PlaneKind:
		f, err := recordFrame(r.Origin, r.Reference, r.Axis)
		if err != nil {
			return nil, err
		}
		return NewPlaneIn(f), nil
	case CylinderKind:
		f, err := recordFrame(r.Origin, r.Reference, r.Axis)
		if err != nil {
			return nil, err
		}
		c, err := NewCylinderIn(f, r.Radius)
		if err != nil {
			return nil, err
		}
		return c, nil
	case ConeKind:
		f, err := recordFrame(r.Origin, r.Reference, r.Axis)
		if err != nil {
			return nil, err
		}
		c, err := NewConeIn(f, r.Radius, r.HalfAngle)
		if err != nil {
			return nil, err
		}
		return c, nil
	case SphereKind:
		f, err := recordFrame(r.Origin, r.Reference, r.Axis)
		if err != nil {
			return nil, err
		}
		s, err := NewSphereIn(f, r.Radius)
		if err != nil {
			return nil, err
		}
		return s, nil
	case TorusKind:
		f, err := recordFrame(r.Origin, r.Reference, r.Axis)
		if err != nil {
			return nil, err
		}
		t, err := NewTorusIn(f, r.MajorRadius, r.MinorRadius)
		if err != nil {
			return nil, err
		}
		return t, nil
	case NurbsSurfaceKind:
		s, err := NewNurbsSurface(r.UDegree, r.VDegree, r.ControlPoints, r.Weights, r.UKnots, r.VKnots)
		if err != nil {
			return nil, err
		}
		return s, nil
	}
	return nil, fmt.Errorf("%w: unknown surface kind %d", ErrConstruction, r.Kind)
}

// recordFrame rebuilds a frame from recorded directions, renormalizing
// them on the way in.
func recordFrame(origin Point3, reference, axis Vec3) (Frame, error) {
	ref, err := Unit3(reference)
	if err != nil {
		return Frame{}, err
	}
	ax, err := Unit3(axis)
	if err != nil {
		return Frame{}, err
	}
	return NewFrame(origin, ref, ax)
}
