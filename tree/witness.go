package tree

import (
	"fmt"
	"slices"
)

// WitnessFromBridges reconstructs the authentication path of the leaf at pos
// from a contiguous sequence of bridges, oldest first, such as the prior
// bridges of a tree followed by its current bridge.
//
// The leaf must be the last leaf of one of the bridges, as is the case for a
// marked leaf. Every later bridge is fused and the result witnessed against
// the frontier of that bridge.
func WitnessFromBridges[H any](hasher Hasher[H], depth Level, bridges []*MerkleBridge[H], pos Position) ([]H, error) {
	i := slices.IndexFunc(bridges, func(b *MerkleBridge[H]) bool {
		return b.Position() == pos
	})
	if i < 0 {
		return nil, fmt.Errorf("%w: %d", ErrPositionNotFound, pos)
	}
	leaf := bridges[i].Frontier()

	later := bridges[i+1:]
	if len(later) == 0 {
		// nothing has been appended since, every right sibling is empty
		return leaf.Witness(depth, func(addr Address) (H, bool) {
			return EmptyRoot(hasher, addr.Level), true
		})
	}

	var err error
	fused := later[0]
	for _, next := range later[1:] {
		if fused, err = fused.Fuse(next); err != nil {
			return nil, err
		}
	}
	return fused.Witness(hasher, depth, leaf)
}
