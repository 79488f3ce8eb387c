// Package sampling draws reproducible random inputs for property checks
package sampling

import (
	"math"
	"math/rand/v2"

	"github.com/philipparndt/geom3/pkg/geometry"
	"github.com/philipparndt/geom3/pkg/geometry/hyperbolic"
	"gonum.org/v1/gonum/spatial/r3"
)

// Source is a seeded random stream. It is not safe for concurrent use.
type Source struct {
	rng *rand.Rand
}

// New creates a source; equal seeds give equal streams
func New(seed uint64) *Source {
	return &Source{rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

// Normal draws from the standard normal distribution
func (s *Source) Normal() float64 {
	return s.rng.NormFloat64()
}

// Angle draws uniformly from [0, 2π)
func (s *Source) Angle() float64 {
	return s.rng.Float64() * 2 * math.Pi
}

// IntN draws uniformly from [0, n)
func (s *Source) IntN(n int) int {
	return s.rng.IntN(n)
}

// EuclideanPos draws each coordinate from the standard normal distribution
func (s *Source) EuclideanPos() r3.Vec {
	return r3.Vec{X: s.Normal(), Y: s.Normal(), Z: s.Normal()}
}

// Direction draws a uniformly distributed unit vector
func (s *Source) Direction() geometry.UnitVector {
	return geometry.FromVec(s.EuclideanPos())
}

// PoincarePos draws a half-space point with normal horizontal coordinates
// and a log-normal height
func (s *Source) PoincarePos() hyperbolic.Quaternion {
	return hyperbolic.NewPoint(s.Normal(), s.Normal(), math.Exp(s.Normal()))
}

// PoincareDir draws a unit direction of the half-space model
func (s *Source) PoincareDir() hyperbolic.Quaternion {
	return hyperbolic.NewPoint(s.Normal(), s.Normal(), s.Normal()).Normalize()
}

// Generator draws one of the six shift and rotation generators of g
func Generator[P, D any, M geometry.Map[M, P, D]](s *Source, g geometry.Geometry3[float64, P, D, M]) M {
	axis := geometry.Axis(s.IntN(3))
	if s.IntN(2) == 0 {
		return geometry.Shift(g, axis, s.Normal())
	}
	return geometry.Rotate(g, axis, s.Angle())
}

// Chain composes n random generators of g
func Chain[P, D any, M geometry.Map[M, P, D]](s *Source, g geometry.Geometry3[float64, P, D, M], n int) M {
	var m M
	m = m.Identity()
	for range n {
		m = m.Chain(Generator(s, g))
	}
	return m
}
