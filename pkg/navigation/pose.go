// Package navigation places cameras and agents in any Geometry3. The same
// code drives a walker through flat or hyperbolic space.
package navigation

import (
	"github.com/philipparndt/geom3/pkg/geometry"
	"github.com/philipparndt/geom3/pkg/geometry/euclidean"
	"github.com/philipparndt/geom3/pkg/geometry/hyperbolic"
	"gonum.org/v1/gonum/spatial/r3"
)

// Pose is the placement of an observer. Its frame carries the origin to
// the observer's position and DefaultDir to its heading.
type Pose[T geometry.Scalar, P, D any, M geometry.Map[M, P, D]] struct {
	geom  geometry.Geometry3[T, P, D, M]
	frame M
}

type (
	EuclideanPose  = Pose[float64, r3.Vec, geometry.UnitVector, euclidean.Affine]
	HyperbolicPose = Pose[float64, hyperbolic.Quaternion, hyperbolic.Quaternion, hyperbolic.Moebius]
)

// New creates a pose at the origin of g facing DefaultDir
func New[T geometry.Scalar, P, D any, M geometry.Map[M, P, D]](g geometry.Geometry3[T, P, D, M]) Pose[T, P, D, M] {
	var m M
	return Pose[T, P, D, M]{geom: g, frame: m.Identity()}
}

// NewEuclidean creates a pose at the origin of flat space
func NewEuclidean() EuclideanPose {
	return New[float64, r3.Vec, geometry.UnitVector, euclidean.Affine](euclidean.Euclidean3{})
}

// NewHyperbolic creates a pose at the origin of hyperbolic space
func NewHyperbolic() HyperbolicPose {
	return New[float64, hyperbolic.Quaternion, hyperbolic.Quaternion, hyperbolic.Moebius](hyperbolic.Hyperbolic3{})
}

// Geometry returns the space the pose lives in
func (p Pose[T, P, D, M]) Geometry() geometry.Geometry3[T, P, D, M] {
	return p.geom
}

// Frame returns the local-to-world map
func (p Pose[T, P, D, M]) Frame() M {
	return p.frame
}

// WithFrame returns a pose with the given local-to-world map
func (p Pose[T, P, D, M]) WithFrame(frame M) Pose[T, P, D, M] {
	p.frame = frame
	return p
}

// Position returns where the observer stands
func (p Pose[T, P, D, M]) Position() P {
	return p.frame.ApplyPos(p.geom.Origin())
}

// Heading returns the direction the observer faces, at Position
func (p Pose[T, P, D, M]) Heading() D {
	return p.frame.ApplyDir(p.geom.Origin(), p.geom.DefaultDir())
}

// Local expresses a world position in the observer's frame
func (p Pose[T, P, D, M]) Local(pos P) P {
	return p.frame.Inv().ApplyPos(pos)
}

// DistanceTo measures from the pose position to pos
func (p Pose[T, P, D, M]) DistanceTo(pos P) T {
	return p.geom.Distance(p.Position(), pos)
}

// Move applies m in the observer's frame
func (p Pose[T, P, D, M]) Move(m M) Pose[T, P, D, M] {
	p.frame = p.frame.Chain(m)
	return p
}

// Shift moves by dist along axis of the pose's own frame
func (p Pose[T, P, D, M]) Shift(axis geometry.Axis, dist T) Pose[T, P, D, M] {
	return p.Move(geometry.Shift(p.geom, axis, dist))
}

// Rotate turns by angle around axis of the pose's own frame
func (p Pose[T, P, D, M]) Rotate(axis geometry.Axis, angle T) Pose[T, P, D, M] {
	return p.Move(geometry.Rotate(p.geom, axis, angle))
}

// Forward steps dist along the heading
func (p Pose[T, P, D, M]) Forward(dist T) Pose[T, P, D, M] {
	return p.Shift(geometry.AxisZ, dist)
}

// LookAt turns the observer in place until it faces target
func (p Pose[T, P, D, M]) LookAt(target P) Pose[T, P, D, M] {
	return p.Move(p.geom.LookAtPos(p.Local(target)).Inv())
}

// TravelTo moves the observer to target along the connecting geodesic.
// The roll around that geodesic is not preserved.
func (p Pose[T, P, D, M]) TravelTo(target P) Pose[T, P, D, M] {
	return p.Move(p.geom.MoveAtPos(p.Local(target)).Inv())
}
