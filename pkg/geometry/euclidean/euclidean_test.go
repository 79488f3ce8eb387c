package euclidean_test

import (
	"math"
	"testing"

	"github.com/philipparndt/geom3/internal/sampling"
	"github.com/philipparndt/geom3/pkg/geometry"
	"github.com/philipparndt/geom3/pkg/geometry/euclidean"
	"github.com/stretchr/testify/assert"
	"gonum.org/v1/gonum/spatial/r3"
)

const (
	sampleAttempts = 256
	eps            = 1e-14
	lookEps        = 1e-7
)

var eu geometry.Geometry3[float64, r3.Vec, geometry.UnitVector, euclidean.Affine] = euclidean.Euclidean3{}

func assertVecInDelta(t *testing.T, expected, actual r3.Vec, delta float64) {
	t.Helper()
	assert.InDelta(t, expected.X, actual.X, delta, "x")
	assert.InDelta(t, expected.Y, actual.Y, delta, "y")
	assert.InDelta(t, expected.Z, actual.Z, delta, "z")
}

func TestDistanceInvariance(t *testing.T) {
	src := sampling.New(0xCCE)
	for range sampleAttempts {
		a := src.EuclideanPos()
		b := src.EuclideanPos()
		m := sampling.Chain(src, eu, 8)

		before := eu.Distance(a, b)
		after := eu.Distance(m.ApplyPos(a), m.ApplyPos(b))
		assert.InDelta(t, before, after, eps*math.Max(1, before))
	}
}

func TestIdentity(t *testing.T) {
	src := sampling.New(1)
	id := euclidean.Affine{}.Identity()
	for range sampleAttempts {
		p := src.EuclideanPos()
		assert.Equal(t, p, id.ApplyPos(p))
	}
}

func TestInverse(t *testing.T) {
	src := sampling.New(2)
	for range sampleAttempts {
		m := sampling.Chain(src, eu, 8)
		p := src.EuclideanPos()
		assertVecInDelta(t, p, m.Chain(m.Inv()).ApplyPos(p), eps)
		assertVecInDelta(t, p, m.Inv().Chain(m).ApplyPos(p), eps)
	}
}

func TestChainOrder(t *testing.T) {
	// rotate first, then shift
	m := eu.ShiftX(1).Chain(eu.RotateZ(math.Pi / 2))
	assertVecInDelta(t, r3.Vec{X: 1, Y: 1}, m.ApplyPos(r3.Vec{X: 1}), eps)

	// shift first, then rotate
	m = eu.RotateZ(math.Pi / 2).Chain(eu.ShiftX(1))
	assertVecInDelta(t, r3.Vec{Y: 2}, m.ApplyPos(r3.Vec{X: 1}), eps)
}

func TestRotationsAreRightHanded(t *testing.T) {
	tests := []struct {
		name     string
		m        euclidean.Affine
		in, want r3.Vec
	}{
		{"x", eu.RotateX(math.Pi / 2), r3.Vec{Y: 1}, r3.Vec{Z: 1}},
		{"y", eu.RotateY(math.Pi / 2), r3.Vec{Z: 1}, r3.Vec{X: 1}},
		{"z", eu.RotateZ(math.Pi / 2), r3.Vec{X: 1}, r3.Vec{Y: 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assertVecInDelta(t, tt.want, tt.m.ApplyPos(tt.in), eps)
		})
	}
}

func TestLookAtThePoint(t *testing.T) {
	src := sampling.New(0xCCE)
	for range sampleAttempts {
		q := src.EuclideanPos()
		p := eu.LookAtPos(q).ApplyPos(q)

		assert.InDelta(t, 0, p.X, lookEps)
		assert.InDelta(t, 0, p.Y, lookEps)
		assert.InDelta(t, r3.Norm(q), p.Z, lookEps)
	}
}

func TestLookAtDir(t *testing.T) {
	src := sampling.New(3)
	for range sampleAttempts {
		d := src.Direction()
		got := eu.LookAtDir(d).ApplyDir(eu.Origin(), d)
		assertVecInDelta(t, eu.DefaultDir().Vec(), got.Vec(), lookEps)
	}
}

func TestLookAtAntiparallel(t *testing.T) {
	d := geometry.FromVec(r3.Vec{Z: -1})
	got := eu.LookAtDir(d).ApplyDir(eu.Origin(), d)
	assertVecInDelta(t, r3.Vec{Z: 1}, got.Vec(), eps)
}

func TestMoveAtThePoint(t *testing.T) {
	src := sampling.New(0xCCE)
	for range sampleAttempts {
		p := src.EuclideanPos()
		q := src.EuclideanPos()

		a := eu.MoveAtPos(p)
		assertVecInDelta(t, eu.Origin(), a.ApplyPos(p), eps)

		b := eu.MoveAtPos(q).Inv().Chain(a)
		assertVecInDelta(t, q, b.ApplyPos(p), eps)
	}
}

func TestMoveAtDir(t *testing.T) {
	src := sampling.New(4)
	for range sampleAttempts {
		d := src.Direction()
		dist := src.Normal()
		p := r3.Scale(dist, d.Vec())
		assertVecInDelta(t, eu.Origin(), eu.MoveAtDir(d, dist).ApplyPos(p), eps)
	}
}

func TestMoveAtConcretePoint(t *testing.T) {
	p := r3.Vec{X: 1, Y: 2, Z: 3}
	assert.Equal(t, r3.Vec{}, eu.MoveAtPos(p).ApplyPos(p))
}

func TestShiftRoundTrip(t *testing.T) {
	for _, d := range []float64{-3.5, -1, 0, 0.25, 2, 7.75} {
		m := eu.ShiftZ(d).Chain(eu.ShiftZ(-d))
		assertVecInDelta(t, r3.Vec{}, m.Translation(), eps)
		assert.Equal(t, euclidean.Affine{}.Identity().Rotation(), m.Rotation())
	}
}

func TestMetric(t *testing.T) {
	a := r3.Vec{X: 3, Y: 4}
	assert.InDelta(t, 5.0, eu.Length(a), eps)
	assert.InDelta(t, 5.0, eu.Distance(a, eu.Origin()), eps)
	assert.Equal(t, 0.0, eu.Distance(a, a))
}

func TestDirectionsAreFlat(t *testing.T) {
	src := sampling.New(5)
	for range sampleAttempts {
		p := src.EuclideanPos()
		q := src.EuclideanPos()
		d := src.Direction()
		assert.Equal(t, d, eu.DirToLocal(p, d))
		assert.Equal(t, d, eu.DirFromLocal(p, d))
		assert.Equal(t, d, eu.DirWhenMovedAtPos(p, d, q))
	}
}

func TestApplyDirIgnoresTranslation(t *testing.T) {
	d := geometry.FromVec(r3.Vec{X: 1, Y: 1})
	got := eu.ShiftX(5).ApplyDir(r3.Vec{}, d)
	assertVecInDelta(t, d.Vec(), got.Vec(), eps)
}
