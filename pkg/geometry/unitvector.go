package geometry

import "gonum.org/v1/gonum/spatial/r3"

// UnitVector is a three-dimensional vector of length one
type UnitVector struct {
	vec r3.Vec
}

// FromVec normalizes v. The zero vector yields NaN components.
func FromVec(v r3.Vec) UnitVector {
	return UnitVector{vec: r3.Unit(v)}
}

// FromVecUnchecked wraps v, which must already be normalized
func FromVecUnchecked(v r3.Vec) UnitVector {
	return UnitVector{vec: v}
}

// Vec returns the underlying vector
func (u UnitVector) Vec() r3.Vec {
	return u.vec
}

func (u UnitVector) X() float64 { return u.vec.X }
func (u UnitVector) Y() float64 { return u.vec.Y }
func (u UnitVector) Z() float64 { return u.vec.Z }
