package geom

import "fmt"

// Frame is a right-handed orthonormal coordinate frame: an origin together
// with three mutually perpendicular directions. Oriented curves and
// surfaces carry a frame that fixes where angle zero lies and which way the
// geometry winds.
type Frame struct {
	origin Point3
	dirX   UnitVec3
	dirY   UnitVec3
	dirZ   UnitVec3
}

// NewFrame returns the frame at origin whose x direction is reference and
// whose z direction is axis. The y direction is axis × reference, making
// the frame right-handed. It fails with [ErrConstruction] if reference and
// axis are not perpendicular.
func NewFrame(origin Point3, reference, axis UnitVec3) (Frame, error) {
	if !reference.IsPerpendicularTo(axis) {
		return Frame{}, fmt.Errorf("%w: frame reference %v and axis %v are not perpendicular", ErrConstruction, reference, axis)
	}
	return Frame{
		origin: origin,
		dirX:   reference,
		dirY:   MustUnit3(axis.Cross(reference)),
		dirZ:   axis,
	}, nil
}

// StandardFrame returns the frame at origin aligned with the global axes.
func StandardFrame(origin Point3) Frame {
	return Frame{
		origin: origin,
		dirX:   XAxis,
		dirY:   YAxis,
		dirZ:   ZAxis,
	}
}

// Origin returns the frame's origin.
func (f Frame) Origin() Point3 { return f.origin }

// DirX returns the frame's x direction.
func (f Frame) DirX() UnitVec3 { return f.dirX }

// DirY returns the frame's y direction.
func (f Frame) DirY() UnitVec3 { return f.dirY }

// DirZ returns the frame's z direction.
func (f Frame) DirZ() UnitVec3 { return f.dirZ }

// Local returns the coordinates of pt relative to the frame.
func (f Frame) Local(pt Point3) Vec3 {
	d := pt.Sub(f.origin)
	return Vec3{
		X: d.Dot(f.dirX.Vec3()),
		Y: d.Dot(f.dirY.Vec3()),
		Z: d.Dot(f.dirZ.Vec3()),
	}
}

// Global returns the point with the given frame-local coordinates.
func (f Frame) Global(x, y, z float64) Point3 {
	return f.origin.Translate(
		f.dirX.Mul(x).Add(f.dirY.Mul(y)).Add(f.dirZ.Mul(z)))
}

// Matrix returns the transform that maps frame-local coordinates to global
// ones.
func (f Frame) Matrix() Matrix4 {
	return Matrix4{
		f.dirX.x, f.dirX.y, f.dirX.z, 0,
		f.dirY.x, f.dirY.y, f.dirY.z, 0,
		f.dirZ.x, f.dirZ.y, f.dirZ.z, 0,
		f.origin.X, f.origin.Y, f.origin.Z, 1,
	}
}

// Transformed returns the frame mapped through m, with the directions
// renormalized. It fails if m collapses a direction or skews the x and z
// directions out of perpendicularity.
func (f Frame) Transformed(m Matrix4) (Frame, error) {
	dx, err := Unit3(m.ApplyVec3(f.dirX.Vec3()))
	if err != nil {
		return Frame{}, err
	}
	dz, err := Unit3(m.ApplyVec3(f.dirZ.Vec3()))
	if err != nil {
		return Frame{}, err
	}
	return NewFrame(f.origin.Transform(m), dx, dz)
}

// Mirrored returns the frame with its x and z directions negated. The y
// direction is unchanged, since (−z) × (−x) = z × x.
func (f Frame) Mirrored() Frame {
	return Frame{
		origin: f.origin,
		dirX:   f.dirX.Negate(),
		dirY:   f.dirY,
		dirZ:   f.dirZ.Negate(),
	}
}
