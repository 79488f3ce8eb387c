package hyperbolic

import (
	"fmt"

	"gonum.org/v1/gonum/num/quat"
)

// Poincare3 exposes the coordinates of the Poincaré half-space model.
// HZ is the height above the boundary plane and is positive for every
// point of the space.
type Poincare3 interface {
	HX() float64
	HY() float64
	HZ() float64
	HXY() complex128
}

// Quaternion is a point or direction of the half-space model stored as
// hx + hy·i + hz·j. The k component is always zero.
type Quaternion quat.Number

var _ Poincare3 = Quaternion{}

// NewPoint creates the point (hx, hy, hz)
func NewPoint(hx, hy, hz float64) Quaternion {
	return Quaternion{Real: hx, Imag: hy, Jmag: hz}
}

func (q Quaternion) HX() float64 { return q.Real }
func (q Quaternion) HY() float64 { return q.Imag }
func (q Quaternion) HZ() float64 { return q.Jmag }

// HXY returns the horizontal coordinates as a complex number
func (q Quaternion) HXY() complex128 {
	return complex(q.Real, q.Imag)
}

// NormSqr returns the squared Euclidean norm of the stored components
func (q Quaternion) NormSqr() float64 {
	return q.Real*q.Real + q.Imag*q.Imag + q.Jmag*q.Jmag + q.Kmag*q.Kmag
}

// Normalize scales q to unit Euclidean norm
func (q Quaternion) Normalize() Quaternion {
	return Quaternion(quat.Scale(1/quat.Abs(quat.Number(q)), quat.Number(q)))
}

func (q Quaternion) String() string {
	return fmt.Sprintf("(%g, %g, %g)", q.HX(), q.HY(), q.HZ())
}
