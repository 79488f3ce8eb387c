// Package euclidean implements flat three-dimensional space
package euclidean

import (
	"math"

	"github.com/philipparndt/geom3/pkg/geometry"
	"gonum.org/v1/gonum/num/quat"
	"gonum.org/v1/gonum/spatial/r3"
)

// Euclidean3 is flat three-dimensional space. It carries no state.
type Euclidean3 struct{}

var _ geometry.Geometry3[float64, r3.Vec, geometry.UnitVector, Affine] = Euclidean3{}

var (
	unitX = r3.Vec{X: 1}
	unitY = r3.Vec{Y: 1}
	unitZ = r3.Vec{Z: 1}
)

// Shift returns the translation by pos
func (Euclidean3) Shift(pos r3.Vec) Affine {
	return Affine{rot: quat.Number{Real: 1}, shift: pos}
}

// Rotate returns the right-handed rotation by angle around axis through the origin
func (Euclidean3) Rotate(axis geometry.UnitVector, angle float64) Affine {
	sin, cos := math.Sincos(angle / 2)
	v := axis.Vec()
	return Affine{rot: quat.Number{Real: cos, Imag: sin * v.X, Jmag: sin * v.Y, Kmag: sin * v.Z}}
}

// Origin is the zero vector
func (Euclidean3) Origin() r3.Vec {
	return r3.Vec{}
}

// DefaultDir is the positive z axis
func (Euclidean3) DefaultDir() geometry.UnitVector {
	return geometry.FromVecUnchecked(unitZ)
}

// Length returns the distance of a from the origin
func (Euclidean3) Length(a r3.Vec) float64 {
	return r3.Norm(a)
}

// Distance returns the straight-line distance between a and b
func (Euclidean3) Distance(a, b r3.Vec) float64 {
	return r3.Norm(r3.Sub(a, b))
}

// DirToLocal returns dir unchanged, every tangent space is the same
func (Euclidean3) DirToLocal(_ r3.Vec, dir geometry.UnitVector) geometry.UnitVector {
	return dir
}

// DirFromLocal returns dir unchanged
func (Euclidean3) DirFromLocal(_ r3.Vec, dir geometry.UnitVector) geometry.UnitVector {
	return dir
}

// DirWhenMovedAtPos returns srcDir: flat space needs no correction
func (Euclidean3) DirWhenMovedAtPos(_ r3.Vec, srcDir geometry.UnitVector, _ r3.Vec) geometry.UnitVector {
	return srcDir
}

// ShiftX translates by dist along x
func (e Euclidean3) ShiftX(dist float64) Affine {
	return e.Shift(r3.Vec{X: dist})
}

// ShiftY translates by dist along y
func (e Euclidean3) ShiftY(dist float64) Affine {
	return e.Shift(r3.Vec{Y: dist})
}

// ShiftZ translates by dist along z
func (e Euclidean3) ShiftZ(dist float64) Affine {
	return e.Shift(r3.Vec{Z: dist})
}

// RotateX turns y towards z
func (e Euclidean3) RotateX(angle float64) Affine {
	return e.Rotate(geometry.FromVecUnchecked(unitX), angle)
}

// RotateY turns z towards x
func (e Euclidean3) RotateY(angle float64) Affine {
	return e.Rotate(geometry.FromVecUnchecked(unitY), angle)
}

// RotateZ turns x towards y
func (e Euclidean3) RotateZ(angle float64) Affine {
	return e.Rotate(geometry.FromVecUnchecked(unitZ), angle)
}

// LookAtPos rotates pos onto the positive z axis
func (e Euclidean3) LookAtPos(pos r3.Vec) Affine {
	return e.LookAtDir(geometry.FromVec(pos))
}

// LookAtDir rotates dir onto the positive z axis. The azimuth is removed
// first, then the polar angle, so a dir of (0, 0, -1) turns by -π around y.
func (e Euclidean3) LookAtDir(dir geometry.UnitVector) Affine {
	phi := -math.Atan2(dir.Y(), dir.X())
	theta := -math.Atan2(math.Hypot(dir.X(), dir.Y()), dir.Z())
	return e.RotateY(theta).Chain(e.RotateZ(phi))
}

// MoveAtPos translates pos to the origin
func (e Euclidean3) MoveAtPos(pos r3.Vec) Affine {
	return e.Shift(r3.Scale(-1, pos))
}

// MoveAtDir translates the point dist along dir to the origin
func (e Euclidean3) MoveAtDir(dir geometry.UnitVector, dist float64) Affine {
	return e.MoveAtPos(r3.Scale(dist, dir.Vec()))
}
