// Package hyperbolic implements hyperbolic three-dimensional space in the
// Poincaré half-space model. Isometries are Möbius maps acting on points
// stored as quaternions.
package hyperbolic

import (
	"math"
	"math/cmplx"

	"github.com/philipparndt/geom3/pkg/geometry"
	"gonum.org/v1/gonum/spatial/r3"
)

// Hyperbolic3 is hyperbolic three-dimensional space. It carries no state.
type Hyperbolic3 struct{}

var _ geometry.Geometry3[float64, Quaternion, Quaternion, Moebius] = Hyperbolic3{}

// Horosphere moves along the horosphere through the origin by the
// horizontal offset pos
func (Hyperbolic3) Horosphere(pos complex128) Moebius {
	return Moebius{a: 1, b: pos, c: 0, d: 1}
}

// Origin is the point j
func (Hyperbolic3) Origin() Quaternion {
	return NewPoint(0, 0, 1)
}

// DefaultDir points up along the vertical geodesic through the origin
func (Hyperbolic3) DefaultDir() Quaternion {
	return NewPoint(0, 0, 1)
}

// Length returns the distance of a from the origin
func (h Hyperbolic3) Length(a Quaternion) float64 {
	return h.Distance(a, h.Origin())
}

// Distance computes arcosh(x) as ln(x + sqrt(x² - 1)) with
// x = 1 + |a - b|² / (2·hz(a)·hz(b))
func (Hyperbolic3) Distance(a, b Quaternion) float64 {
	diff := Quaternion{
		Real: a.Real - b.Real,
		Imag: a.Imag - b.Imag,
		Jmag: a.Jmag - b.Jmag,
		Kmag: a.Kmag - b.Kmag,
	}
	x := 1 + diff.NormSqr()/(2*a.HZ()*b.HZ())
	return math.Log(x + math.Sqrt(x*x-1))
}

// DirToLocal reads the half-space components of dir as a unit vector
func (Hyperbolic3) DirToLocal(_ Quaternion, dir Quaternion) geometry.UnitVector {
	return geometry.FromVec(r3.Vec{X: dir.HX(), Y: dir.HY(), Z: dir.HZ()})
}

// DirFromLocal is the inverse of DirToLocal
func (Hyperbolic3) DirFromLocal(_ Quaternion, dir geometry.UnitVector) Quaternion {
	return NewPoint(dir.X(), dir.Y(), dir.Z())
}

// DirWhenMovedAtPos returns the direction of the line at dstPos when the
// line at srcPos has direction srcDir
func (Hyperbolic3) DirWhenMovedAtPos(srcPos, srcDir, dstPos Quaternion) Quaternion {
	p, d, h := srcPos, srcDir, dstPos
	k := h.HZ() / p.HZ()
	return NewPoint(
		k*d.HX(),
		k*d.HY(),
		d.HZ()-cmplx.Abs(p.HXY()-h.HXY())/p.HZ()*cmplx.Abs(d.HXY()),
	)
}

// ShiftX moves the origin by dist towards positive x
func (Hyperbolic3) ShiftX(dist float64) Moebius {
	s, c := math.Sinh(dist/2), math.Cosh(dist/2)
	return Moebius{
		a: complex(c, 0), b: complex(s, 0),
		c: complex(s, 0), d: complex(c, 0),
	}
}

// ShiftY moves the origin by dist towards positive y
func (Hyperbolic3) ShiftY(dist float64) Moebius {
	s, c := math.Sinh(dist/2), math.Cosh(dist/2)
	return Moebius{
		a: complex(c, 0), b: complex(0, s),
		c: complex(0, -s), d: complex(c, 0),
	}
}

// ShiftZ moves along the vertical geodesic through the origin
func (Hyperbolic3) ShiftZ(dist float64) Moebius {
	e := math.Exp(dist / 2)
	return Moebius{a: complex(e, 0), d: complex(1/e, 0)}
}

// RotateX turns y towards z around the origin
func (Hyperbolic3) RotateX(angle float64) Moebius {
	s, c := math.Sincos(angle / 2)
	return Moebius{
		a: complex(c, 0), b: complex(0, s),
		c: complex(0, s), d: complex(c, 0),
	}
}

// RotateY turns z towards x around the origin
func (Hyperbolic3) RotateY(angle float64) Moebius {
	s, c := math.Sincos(angle / 2)
	return Moebius{
		a: complex(c, 0), b: complex(-s, 0),
		c: complex(s, 0), d: complex(c, 0),
	}
}

// RotateZ turns x towards y around the vertical geodesic
func (Hyperbolic3) RotateZ(angle float64) Moebius {
	s, c := math.Sincos(angle / 2)
	return Moebius{a: complex(c, s), d: complex(c, -s)}
}

// LookAtPos rotates pos around the origin onto the vertical geodesic
// above it
func (h Hyperbolic3) LookAtPos(pos Quaternion) Moebius {
	// the origin is at j, so the geodesic to pos leaves it at this polar angle
	phi := -math.Atan2(pos.HY(), pos.HX())
	theta := -math.Atan2(2*cmplx.Abs(pos.HXY()), pos.NormSqr()-1)
	return h.RotateY(theta).Chain(h.RotateZ(phi))
}

// LookAtDir turns dir into j
func (h Hyperbolic3) LookAtDir(dir Quaternion) Moebius {
	phi := -math.Atan2(dir.HY(), dir.HX())
	theta := -math.Atan2(cmplx.Abs(dir.HXY()), dir.HZ())
	return h.RotateY(theta).Chain(h.RotateZ(phi))
}

// MoveAtPos translates pos to the origin preserving orientation relative
// to the line that connects them
func (h Hyperbolic3) MoveAtPos(pos Quaternion) Moebius {
	a := h.LookAtPos(pos)
	b := h.ShiftZ(-h.Length(pos))
	return a.Inv().Chain(b).Chain(a)
}

// MoveAtDir moves the point dist along dir from the origin back to it
func (h Hyperbolic3) MoveAtDir(dir Quaternion, dist float64) Moebius {
	a := h.LookAtDir(dir)
	b := h.ShiftZ(-dist)
	return a.Inv().Chain(b).Chain(a)
}
