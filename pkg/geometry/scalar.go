package geometry

import "golang.org/x/exp/constraints"

// Scalar is the constraint for the real number types a geometry can be
// parametrized by
type Scalar interface {
	constraints.Float
}
