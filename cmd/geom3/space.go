package main

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/philipparndt/geom3/pkg/analysis"
	"github.com/philipparndt/geom3/pkg/geometry"
	"github.com/philipparndt/geom3/pkg/geometry/euclidean"
	"github.com/philipparndt/geom3/pkg/geometry/hyperbolic"
	"github.com/philipparndt/geom3/pkg/navigation"
	"github.com/philipparndt/geom3/pkg/script"
	"gonum.org/v1/gonum/spatial/r3"
)

var errUnknownGeometry = errors.New("unknown geometry")

// walkResult describes where a walk ended
type walkResult struct {
	Position   string
	Heading    string
	FromOrigin float64
}

// space hides the concrete types of a geometry from the commands
type space interface {
	Name() string
	Distance(a, b [3]float64) (float64, error)
	Walk(steps []script.Step) (walkResult, error)
}

type spaceOf[P, D any, M geometry.Map[M, P, D]] struct {
	name      string
	start     navigation.Pose[float64, P, D, M]
	toPos     func(x, y, z float64) P
	validate  func(P) error
	formatPos func(P) string
	formatDir func(D) string
}

func (s spaceOf[P, D, M]) Name() string {
	return s.name
}

func (s spaceOf[P, D, M]) point(c [3]float64) (P, error) {
	p := s.toPos(c[0], c[1], c[2])
	if s.validate != nil {
		if err := s.validate(p); err != nil {
			return p, err
		}
	}
	return p, nil
}

func (s spaceOf[P, D, M]) Distance(a, b [3]float64) (float64, error) {
	pa, err := s.point(a)
	if err != nil {
		return 0, err
	}
	pb, err := s.point(b)
	if err != nil {
		return 0, err
	}
	return s.start.Geometry().Distance(pa, pb), nil
}

func (s spaceOf[P, D, M]) Walk(steps []script.Step) (walkResult, error) {
	for i, step := range steps {
		if step.Kind != script.KindLook && step.Kind != script.KindTravel {
			continue
		}
		if _, err := s.point(step.Target); err != nil {
			return walkResult{}, fmt.Errorf("step %d (%s): %w", i+1, step, err)
		}
	}

	pose := script.Run(s.start, steps, s.toPos)
	return walkResult{
		Position:   s.formatPos(pose.Position()),
		Heading:    s.formatDir(pose.Heading()),
		FromOrigin: pose.DistanceTo(s.start.Geometry().Origin()),
	}, nil
}

func euclideanSpace() space {
	return spaceOf[r3.Vec, geometry.UnitVector, euclidean.Affine]{
		name:      "euclidean",
		start:     navigation.NewEuclidean(),
		toPos:     func(x, y, z float64) r3.Vec { return r3.Vec{X: x, Y: y, Z: z} },
		formatPos: analysis.FormatVector,
		formatDir: func(d geometry.UnitVector) string { return analysis.FormatVector(d.Vec()) },
	}
}

func hyperbolicSpace() space {
	format := func(q hyperbolic.Quaternion) string {
		return analysis.FormatVector(r3.Vec{X: q.HX(), Y: q.HY(), Z: q.HZ()})
	}
	return spaceOf[hyperbolic.Quaternion, hyperbolic.Quaternion, hyperbolic.Moebius]{
		name:  "hyperbolic",
		start: navigation.NewHyperbolic(),
		toPos: hyperbolic.NewPoint,
		validate: func(q hyperbolic.Quaternion) error {
			if !(q.HZ() > 0) {
				return fmt.Errorf("point %v lies outside the half-space (z must be positive)", q)
			}
			return nil
		},
		formatPos: format,
		formatDir: format,
	}
}

func lookupSpace(name string) (space, error) {
	switch name {
	case "euclidean", "eu":
		return euclideanSpace(), nil
	case "hyperbolic", "hy":
		return hyperbolicSpace(), nil
	}
	return nil, fmt.Errorf("%q: %w", name, errUnknownGeometry)
}

func parseCoords(args []string) ([]float64, error) {
	values := make([]float64, len(args))
	for i, arg := range args {
		v, err := strconv.ParseFloat(arg, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid coordinate %q: %w", arg, err)
		}
		values[i] = v
	}
	return values, nil
}
