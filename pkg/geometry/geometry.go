// Package geometry defines the contracts shared by all three-dimensional
// spaces: positions, directions and the rigid motions between them.
//
// A concrete space supplies its own position, direction and map types.
// Code written against Geometry3 can be moved from one space to another by
// swapping the implementation.
package geometry

import (
	"errors"
	"fmt"
)

// ErrInvalidAxis is returned for an axis name other than x, y or z
var ErrInvalidAxis = errors.New("invalid axis")

// Geometry is an N-dimensional space with a metric
type Geometry[T Scalar, P, D any, M Map[M, P, D]] interface {
	// Origin is the reference point of the space
	Origin() P
	// DefaultDir is the reference direction at the origin
	DefaultDir() D

	Length(a P) T
	Distance(a, b P) T
}

// Geometry3 is a three-dimensional Geometry with the generators of its
// isometry group
type Geometry3[T Scalar, P, D any, M Map[M, P, D]] interface {
	Geometry[T, P, D, M]

	// DirToLocal expresses dir at pos in the flat tangent frame
	DirToLocal(pos P, dir D) UnitVector
	// DirFromLocal is the inverse of DirToLocal
	DirFromLocal(pos P, dir UnitVector) D

	// DirWhenMovedAtPos returns the direction of the line at dstPos
	// when the line at srcPos has direction srcDir.
	DirWhenMovedAtPos(srcPos P, srcDir D, dstPos P) D

	ShiftX(dist T) M
	ShiftY(dist T) M
	ShiftZ(dist T) M

	RotateX(angle T) M
	RotateY(angle T) M
	RotateZ(angle T) M

	// LookAtPos rotates around the origin so that pos lies ahead along DefaultDir
	LookAtPos(pos P) M
	// LookAtDir rotates dir into DefaultDir
	LookAtDir(dir D) M

	// MoveAtPos translates pos to the origin preserving orientation relative
	// to the line connecting them. Rotation around that line is not preserved.
	MoveAtPos(pos P) M
	// MoveAtDir is MoveAtPos for the point dist away from the origin along dir
	MoveAtDir(dir D, dist T) M
}

// Axis names one of the coordinate axes
type Axis int

const (
	AxisX Axis = iota
	AxisY
	AxisZ
)

// String returns the lower case axis name
func (a Axis) String() string {
	switch a {
	case AxisX:
		return "x"
	case AxisY:
		return "y"
	case AxisZ:
		return "z"
	}
	return "?"
}

// Valid reports whether a is one of AxisX, AxisY and AxisZ
func (a Axis) Valid() bool {
	return a >= AxisX && a <= AxisZ
}

// ParseAxis converts "x", "y" or "z" to an Axis
func ParseAxis(name string) (Axis, error) {
	switch name {
	case "x":
		return AxisX, nil
	case "y":
		return AxisY, nil
	case "z":
		return AxisZ, nil
	}
	return 0, fmt.Errorf("%q: %w", name, ErrInvalidAxis)
}

// Shift returns the translation by dist along axis. It panics if axis is
// not valid.
func Shift[T Scalar, P, D any, M Map[M, P, D]](g Geometry3[T, P, D, M], axis Axis, dist T) M {
	switch axis {
	case AxisX:
		return g.ShiftX(dist)
	case AxisY:
		return g.ShiftY(dist)
	case AxisZ:
		return g.ShiftZ(dist)
	}
	panic(fmt.Sprintf("geometry: shift along invalid axis %d", int(axis)))
}

// Rotate returns the rotation by angle around axis through the origin. It
// panics if axis is not valid.
func Rotate[T Scalar, P, D any, M Map[M, P, D]](g Geometry3[T, P, D, M], axis Axis, angle T) M {
	switch axis {
	case AxisX:
		return g.RotateX(angle)
	case AxisY:
		return g.RotateY(angle)
	case AxisZ:
		return g.RotateZ(angle)
	}
	panic(fmt.Sprintf("geometry: rotation around invalid axis %d", int(axis)))
}
