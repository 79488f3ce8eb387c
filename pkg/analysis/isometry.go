package analysis

import (
	"math"

	"github.com/philipparndt/geom3/internal/sampling"
	"github.com/philipparndt/geom3/pkg/geometry"
	"github.com/philipparndt/geom3/pkg/geometry/euclidean"
	"github.com/philipparndt/geom3/pkg/geometry/hyperbolic"
	"gonum.org/v1/gonum/spatial/r3"
)

// Config controls a self-check run
type Config struct {
	Samples     int
	Seed        uint64
	ChainLength int
}

// DefaultConfig returns the settings used by the test-suite
func DefaultConfig() Config {
	return Config{Samples: 256, Seed: 0xCCA, ChainLength: 8}
}

// Report contains the worst deviations seen while checking a geometry
type Report struct {
	Geometry string
	Samples  int

	// MaxDistanceError is |d(a,b) - d(m(a),m(b))| relative to max(1, d(a,b))
	MaxDistanceError float64
	// MaxInverseError is d(p, m⁻¹(m(p)))
	MaxInverseError float64
	// MaxMoveError is the length of MoveAtPos(p) applied to p
	MaxMoveError float64
	// MaxLookAtError is the distance of LookAtPos(q) applied to q from the
	// point at the same length straight ahead
	MaxLookAtError float64
}

// Passed reports whether every deviation is within tolerance
func (r Report) Passed(tolerance float64) bool {
	return r.Worst() <= tolerance
}

// Worst returns the largest deviation. NaN counts as infinitely bad.
func (r Report) Worst() float64 {
	worst := 0.0
	for _, v := range []float64{r.MaxDistanceError, r.MaxInverseError, r.MaxMoveError, r.MaxLookAtError} {
		if math.IsNaN(v) {
			return math.Inf(1)
		}
		worst = math.Max(worst, v)
	}
	return worst
}

// CheckEuclidean samples maps and points of flat space
func CheckEuclidean(cfg Config) Report {
	return check[r3.Vec, geometry.UnitVector, euclidean.Affine](
		"euclidean", euclidean.Euclidean3{}, cfg, (*sampling.Source).EuclideanPos)
}

// CheckHyperbolic samples maps and points of the half-space model
func CheckHyperbolic(cfg Config) Report {
	return check[hyperbolic.Quaternion, hyperbolic.Quaternion, hyperbolic.Moebius](
		"hyperbolic", hyperbolic.Hyperbolic3{}, cfg, (*sampling.Source).PoincarePos)
}

func check[P, D any, M geometry.Map[M, P, D]](
	name string,
	g geometry.Geometry3[float64, P, D, M],
	cfg Config,
	sample func(*sampling.Source) P,
) Report {
	src := sampling.New(cfg.Seed)
	report := Report{Geometry: name, Samples: cfg.Samples}

	for range cfg.Samples {
		a, b := sample(src), sample(src)
		m := sampling.Chain(src, g, cfg.ChainLength)

		before := g.Distance(a, b)
		after := g.Distance(m.ApplyPos(a), m.ApplyPos(b))
		report.MaxDistanceError = worse(report.MaxDistanceError, math.Abs(before-after)/math.Max(1, before))

		report.MaxInverseError = worse(report.MaxInverseError, g.Distance(a, m.Inv().ApplyPos(m.ApplyPos(a))))

		report.MaxMoveError = worse(report.MaxMoveError, g.Length(g.MoveAtPos(a).ApplyPos(a)))

		ahead := g.ShiftZ(g.Length(b)).ApplyPos(g.Origin())
		report.MaxLookAtError = worse(report.MaxLookAtError, g.Distance(ahead, g.LookAtPos(b).ApplyPos(b)))
	}

	return report
}

func worse(current, v float64) float64 {
	if math.IsNaN(v) || v > current {
		return v
	}
	return current
}
