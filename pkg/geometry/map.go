package geometry

// Map is an invertible transform of a geometry acting on positions P and
// directions D. M is the implementing type itself.
//
// a.Chain(b) is the composition a∘b: b is applied first, then a.
type Map[M, P, D any] interface {
	// Identity returns the neutral map. It may be called on the zero value.
	Identity() M

	// ApplyPos maps a position
	ApplyPos(pos P) P
	// ApplyDir transports dir anchored at pos through the map
	ApplyDir(pos P, dir D) D

	// Chain composes the receiver with other, other applied first
	Chain(other M) M
	// Inv returns the two-sided inverse
	Inv() M
}

// Identity returns the identity of map type M
func Identity[M Map[M, P, D], P, D any]() M {
	var m M
	return m.Identity()
}

// ChainAll composes maps so that the first one is applied first
func ChainAll[M Map[M, P, D], P, D any](maps ...M) M {
	var acc M
	acc = acc.Identity()
	for _, m := range maps {
		acc = m.Chain(acc)
	}
	return acc
}
