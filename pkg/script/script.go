// Package script runs textual walk scripts over a navigation.Pose
package script

import (
	"fmt"

	"github.com/philipparndt/geom3/pkg/geometry"
	"github.com/philipparndt/geom3/pkg/navigation"
)

// Kind is the type of a walk step
type Kind int

const (
	KindShift Kind = iota
	KindRotate
	KindLook
	KindTravel
)

// Step is one motion of a walk script
type Step struct {
	Kind Kind
	// Axis and Value are used by shifts and rotations
	Axis  geometry.Axis
	Value float64
	// Target is used by look and travel, in world coordinates
	Target [3]float64
}

func (s Step) String() string {
	switch s.Kind {
	case KindShift:
		return fmt.Sprintf("shift-%s %g", s.Axis, s.Value)
	case KindRotate:
		return fmt.Sprintf("rotate-%s %g", s.Axis, s.Value)
	case KindLook:
		return fmt.Sprintf("look %g %g %g", s.Target[0], s.Target[1], s.Target[2])
	case KindTravel:
		return fmt.Sprintf("travel %g %g %g", s.Target[0], s.Target[1], s.Target[2])
	}
	return "?"
}

// Apply performs a single step. toPos builds a position of the pose's
// geometry from three coordinates. Shifts and rotations panic on an
// invalid axis.
func Apply[P, D any, M geometry.Map[M, P, D]](
	pose navigation.Pose[float64, P, D, M],
	step Step,
	toPos func(x, y, z float64) P,
) navigation.Pose[float64, P, D, M] {
	switch step.Kind {
	case KindShift:
		return pose.Shift(step.Axis, step.Value)
	case KindRotate:
		return pose.Rotate(step.Axis, step.Value)
	case KindLook:
		return pose.LookAt(toPos(step.Target[0], step.Target[1], step.Target[2]))
	case KindTravel:
		return pose.TravelTo(toPos(step.Target[0], step.Target[1], step.Target[2]))
	}
	return pose
}

// Run folds all steps over pose
func Run[P, D any, M geometry.Map[M, P, D]](
	pose navigation.Pose[float64, P, D, M],
	steps []Step,
	toPos func(x, y, z float64) P,
) navigation.Pose[float64, P, D, M] {
	for _, step := range steps {
		pose = Apply(pose, step, toPos)
	}
	return pose
}
