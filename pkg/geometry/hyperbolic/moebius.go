package hyperbolic

import (
	"gonum.org/v1/gonum/num/quat"
)

// Moebius is the fractional-linear map q ↦ (a·q + b)(c·q + d)⁻¹ given by a
// 2×2 complex matrix. Matrices with unit determinant are isometries of the
// half-space model.
type Moebius struct {
	a, b, c, d complex128
}

// NewMoebius creates the map of the matrix [[a, b], [c, d]]
func NewMoebius(a, b, c, d complex128) Moebius {
	return Moebius{a: a, b: b, c: c, d: d}
}

// Coefficients returns the matrix entries in row order
func (m Moebius) Coefficients() (a, b, c, d complex128) {
	return m.a, m.b, m.c, m.d
}

// Det returns the determinant of the matrix
func (m Moebius) Det() complex128 {
	return m.a*m.d - m.b*m.c
}

func lift(z complex128) quat.Number {
	return quat.Number{Real: real(z), Imag: imag(z)}
}

func (Moebius) Identity() Moebius {
	return Moebius{a: 1, d: 1}
}

func (m Moebius) apply(q quat.Number) (num, den quat.Number) {
	num = quat.Add(quat.Mul(lift(m.a), q), lift(m.b))
	den = quat.Add(quat.Mul(lift(m.c), q), lift(m.d))
	return num, den
}

// ApplyPos maps a point of the half-space
func (m Moebius) ApplyPos(pos Quaternion) Quaternion {
	num, den := m.apply(quat.Number(pos))
	r := quat.Mul(num, quat.Inv(den))
	r.Kmag = 0
	return Quaternion(r)
}

// ApplyDir transports dir at pos through the derivative of the map and
// normalizes the result
func (m Moebius) ApplyDir(pos, dir Quaternion) Quaternion {
	num, den := m.apply(quat.Number(pos))
	inv := quat.Inv(den)
	f := quat.Mul(num, inv)

	v := quat.Number(dir)
	dv := quat.Sub(quat.Mul(lift(m.a), v), quat.Mul(f, quat.Mul(lift(m.c), v)))
	r := quat.Mul(dv, inv)
	r.Kmag = 0
	return Quaternion(r).Normalize()
}

// Chain returns m∘other, the matrix product m·other
func (m Moebius) Chain(other Moebius) Moebius {
	return Moebius{
		a: m.a*other.a + m.b*other.c,
		b: m.a*other.b + m.b*other.d,
		c: m.c*other.a + m.d*other.c,
		d: m.c*other.b + m.d*other.d,
	}
}

// Inv returns the inverse map. A singular matrix yields NaN or Inf entries.
func (m Moebius) Inv() Moebius {
	det := m.Det()
	return Moebius{
		a: m.d / det,
		b: -m.b / det,
		c: -m.c / det,
		d: m.a / det,
	}
}
