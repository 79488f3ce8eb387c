package euclidean

import (
	"github.com/philipparndt/geom3/pkg/geometry"
	"gonum.org/v1/gonum/num/quat"
	"gonum.org/v1/gonum/spatial/r3"
)

// Affine is a rigid motion of Euclidean space: a rotation about the origin
// followed by a translation
type Affine struct {
	rot   quat.Number
	shift r3.Vec
}

var _ geometry.Map[Affine, r3.Vec, geometry.UnitVector] = Affine{}

// NewAffine creates a motion from a rotation and a translation
func NewAffine(rot r3.Rotation, shift r3.Vec) Affine {
	return Affine{rot: quat.Number(rot), shift: shift}
}

// Identity returns the motion that leaves every point in place
func (Affine) Identity() Affine {
	return Affine{rot: quat.Number{Real: 1}}
}

// Rotation returns the linear part
func (a Affine) Rotation() r3.Rotation {
	return r3.Rotation(a.rot)
}

// Translation returns the translation part
func (a Affine) Translation() r3.Vec {
	return a.shift
}

func (a Affine) linear(v r3.Vec) r3.Vec {
	p := quat.Mul(quat.Mul(a.rot, quat.Number{Imag: v.X, Jmag: v.Y, Kmag: v.Z}), quat.Conj(a.rot))
	return r3.Vec{X: p.Imag, Y: p.Jmag, Z: p.Kmag}
}

// ApplyPos maps a point
func (a Affine) ApplyPos(pos r3.Vec) r3.Vec {
	return r3.Add(a.linear(pos), a.shift)
}

// ApplyDir rotates dir. Translations do not affect directions.
func (a Affine) ApplyDir(_ r3.Vec, dir geometry.UnitVector) geometry.UnitVector {
	return geometry.FromVec(a.linear(dir.Vec()))
}

// Chain returns a∘other
func (a Affine) Chain(other Affine) Affine {
	return Affine{
		rot:   quat.Mul(a.rot, other.rot),
		shift: r3.Add(a.linear(other.shift), a.shift),
	}
}

// Inv returns the inverse motion
func (a Affine) Inv() Affine {
	inv := Affine{rot: quat.Conj(a.rot)}
	inv.shift = r3.Scale(-1, inv.linear(a.shift))
	return inv
}
