package hyperbolic_test

import (
	"math"
	"math/cmplx"
	"testing"

	"github.com/philipparndt/geom3/internal/sampling"
	"github.com/philipparndt/geom3/pkg/geometry"
	"github.com/philipparndt/geom3/pkg/geometry/hyperbolic"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	sampleAttempts = 256
	eps            = 1e-13
	moveEps        = 1e-14
	lookEps        = 1e-7
)

type (
	hq = hyperbolic.Quaternion
	hm = hyperbolic.Moebius
)

var hy geometry.Geometry3[float64, hq, hq, hm] = hyperbolic.Hyperbolic3{}

func assertQuatInDelta(t *testing.T, expected, actual hq, delta float64) {
	t.Helper()
	assert.InDelta(t, expected.HX(), actual.HX(), delta, "hx")
	assert.InDelta(t, expected.HY(), actual.HY(), delta, "hy")
	assert.InDelta(t, expected.HZ(), actual.HZ(), delta, "hz")
	assert.Zero(t, actual.Kmag, "k")
}

func TestDistanceInvariance(t *testing.T) {
	src := sampling.New(0xCCA)
	for range sampleAttempts {
		a := src.PoincarePos()
		b := src.PoincarePos()
		m := sampling.Chain(src, hy, 8)

		before := hy.Distance(a, b)
		after := hy.Distance(m.ApplyPos(a), m.ApplyPos(b))
		assert.InDelta(t, before, after, eps*math.Max(1, before))
	}
}

func TestDistanceAtOrigin(t *testing.T) {
	assert.Equal(t, 0.0, hy.Distance(hy.Origin(), hy.Origin()))
	assert.Equal(t, hq{Jmag: 1}, hy.Origin())
}

func TestDistanceAlongVerticalGeodesic(t *testing.T) {
	for _, d := range []float64{0.5, 1, 3} {
		p := hyperbolic.NewPoint(0, 0, math.Exp(d))
		assert.InDelta(t, d, hy.Length(p), 1e-14)
	}
}

func TestDistanceIsSymmetric(t *testing.T) {
	src := sampling.New(6)
	for range sampleAttempts {
		a := src.PoincarePos()
		b := src.PoincarePos()
		assert.Equal(t, hy.Distance(a, b), hy.Distance(b, a))
		assert.GreaterOrEqual(t, hy.Distance(a, b), 0.0)
	}
}

func TestTriangleInequality(t *testing.T) {
	src := sampling.New(7)
	for range sampleAttempts {
		a, b, c := src.PoincarePos(), src.PoincarePos(), src.PoincarePos()
		assert.LessOrEqual(t, hy.Distance(a, c), hy.Distance(a, b)+hy.Distance(b, c)+eps)
	}
}

func TestIdentity(t *testing.T) {
	src := sampling.New(1)
	id := hm{}.Identity()
	for range sampleAttempts {
		p := src.PoincarePos()
		assert.Equal(t, p, id.ApplyPos(p))
	}
}

func TestInverse(t *testing.T) {
	src := sampling.New(2)
	for range sampleAttempts {
		m := sampling.Chain(src, hy, 8)
		p := src.PoincarePos()
		tol := eps * math.Max(1, math.Sqrt(p.NormSqr()))
		assertQuatInDelta(t, p, m.Chain(m.Inv()).ApplyPos(p), tol)
		assertQuatInDelta(t, p, m.Inv().Chain(m).ApplyPos(p), tol)
	}
}

func TestGeneratorsHaveUnitDeterminant(t *testing.T) {
	src := sampling.New(8)
	for range sampleAttempts {
		m := sampling.Generator(src, hy)
		det := m.Det()
		assert.InDelta(t, 1, real(det), 1e-14)
		assert.InDelta(t, 0, imag(det), 1e-14)
	}
}

func TestShiftsMoveOriginByDistance(t *testing.T) {
	for _, d := range []float64{-2, -0.5, 0.5, 1.5} {
		for _, axis := range []geometry.Axis{geometry.AxisX, geometry.AxisY, geometry.AxisZ} {
			p := geometry.Shift(hy, axis, d).ApplyPos(hy.Origin())
			assert.InDelta(t, math.Abs(d), hy.Length(p), 1e-12, "axis %s", axis)
		}
	}
}

func TestShiftDirections(t *testing.T) {
	x := hy.ShiftX(1).ApplyPos(hy.Origin())
	assert.Greater(t, x.HX(), 0.0)
	assert.InDelta(t, 0, x.HY(), 1e-15)

	y := hy.ShiftY(1).ApplyPos(hy.Origin())
	assert.Greater(t, y.HY(), 0.0)
	assert.InDelta(t, 0, y.HX(), 1e-15)

	z := hy.ShiftZ(1).ApplyPos(hy.Origin())
	assertQuatInDelta(t, hyperbolic.NewPoint(0, 0, math.E), z, 1e-14)
}

func TestRotationsAreRightHanded(t *testing.T) {
	tests := []struct {
		name     string
		m        hm
		in, want hq
	}{
		{"x", hy.RotateX(math.Pi / 2), hyperbolic.NewPoint(0, 1, 0), hyperbolic.NewPoint(0, 0, 1)},
		{"y", hy.RotateY(math.Pi / 2), hyperbolic.NewPoint(0, 0, 1), hyperbolic.NewPoint(1, 0, 0)},
		{"z", hy.RotateZ(math.Pi / 2), hyperbolic.NewPoint(1, 0, 0), hyperbolic.NewPoint(0, 1, 0)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assertQuatInDelta(t, tt.want, tt.m.ApplyDir(hy.Origin(), tt.in), 1e-14)
		})
	}
}

func TestLookAtThePoint(t *testing.T) {
	src := sampling.New(0xCCA)
	for range sampleAttempts {
		q := src.PoincarePos()
		p := hy.LookAtPos(q).ApplyPos(q)

		assert.InDelta(t, 0, cmplx.Abs(p.HXY()), lookEps)
		assert.Greater(t, p.HZ(), 1.0-lookEps)
	}
}

func TestRotationOfDerivative(t *testing.T) {
	src := sampling.New(0xCCA)
	for range sampleAttempts {
		q := src.PoincarePos().Normalize()
		phi := -math.Atan2(q.HY(), q.HX())
		theta := -math.Atan2(cmplx.Abs(q.HXY()), q.HZ())

		c := hy.RotateY(theta).Chain(hy.RotateZ(phi))
		assertQuatInDelta(t, hy.DefaultDir(), c.ApplyDir(hy.Origin(), q), eps)
	}
}

func TestLookAtDir(t *testing.T) {
	src := sampling.New(9)
	for range sampleAttempts {
		d := src.PoincareDir()
		assertQuatInDelta(t, hy.DefaultDir(), hy.LookAtDir(d).ApplyDir(hy.Origin(), d), lookEps)
	}
}

func TestMoveAtThePoint(t *testing.T) {
	src := sampling.New(0xCCA)
	for range sampleAttempts {
		p := src.PoincarePos()
		q := src.PoincarePos()

		a := hy.MoveAtPos(p)
		assertQuatInDelta(t, hy.Origin(), a.ApplyPos(p), moveEps)

		b := hy.MoveAtPos(q).Inv().Chain(a)
		assertQuatInDelta(t, q, b.ApplyPos(p), lookEps)
	}
}

func TestMoveAtDir(t *testing.T) {
	src := sampling.New(10)
	for range sampleAttempts {
		d := src.PoincareDir()
		dist := math.Abs(src.Normal())
		p := hy.LookAtDir(d).Inv().Chain(hy.ShiftZ(dist)).ApplyPos(hy.Origin())

		require.InDelta(t, dist, hy.Length(p), 1e-9)
		assertQuatInDelta(t, hy.Origin(), hy.MoveAtDir(d, dist).ApplyPos(p), 1e-9)
	}
}

func TestShiftRoundTrip(t *testing.T) {
	for _, d := range []float64{-3.5, -1, 0, 0.25, 2, 7.75} {
		a, b, c, dd := hy.ShiftZ(d).Chain(hy.ShiftZ(-d)).Coefficients()
		assert.InDelta(t, 1, real(a), 1e-14)
		assert.InDelta(t, 1, real(dd), 1e-14)
		assert.Zero(t, b)
		assert.Zero(t, c)
	}
}

func TestHorosphere(t *testing.T) {
	h := hyperbolic.Hyperbolic3{}
	p := h.Horosphere(complex(1.5, -2)).ApplyPos(h.Origin())
	assert.Equal(t, hyperbolic.NewPoint(1.5, -2, 1), p)
	assert.InDelta(t, 0, cmplx.Abs(h.Horosphere(3).Chain(h.Horosphere(-3)).Det()-1), 1e-15)
}

func TestDirLocalRoundTrip(t *testing.T) {
	src := sampling.New(11)
	for range sampleAttempts {
		p := src.PoincarePos()
		d := src.PoincareDir()
		assertQuatInDelta(t, d, hy.DirFromLocal(p, hy.DirToLocal(p, d)), 1e-14)
	}
}

func TestDirWhenMovedAtSamePos(t *testing.T) {
	src := sampling.New(12)
	for range sampleAttempts {
		p := src.PoincarePos()
		d := src.PoincareDir()
		assert.Equal(t, d, hy.DirWhenMovedAtPos(p, d, p))
	}
}

func TestDirWhenMovedAtPos(t *testing.T) {
	p := hyperbolic.NewPoint(0, 0, 1)
	h := hyperbolic.NewPoint(3, 4, 2)
	d := hyperbolic.NewPoint(0.6, 0, 0.8)

	got := hy.DirWhenMovedAtPos(p, d, h)
	assertQuatInDelta(t, hyperbolic.NewPoint(1.2, 0, 0.8-5*0.6), got, 1e-15)
}
