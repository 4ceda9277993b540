package tree

import (
	"fmt"
	"iter"
)

// MaxLevel is the height of the largest tree a 64 bit position can address.
const MaxLevel Level = 64

// Level is the height of a node above the leaves. Leaves are at level 0.
type Level uint8

// Position is the zero based index of a leaf in the order it was appended.
type Position uint64

func (p Position) String() string {
	return fmt.Sprintf("%d", uint64(p))
}

// IsOdd reports whether the leaf at p is the right child of its parent.
func (p Position) IsOdd() bool {
	return p&1 == 1
}

// RootLevel returns the level of the root of the smallest perfect tree that
// contains the leaves [0, p].
func (p Position) RootLevel() Level {
	return Level(BitLength(uint64(p)))
}

// PastOmmerCount returns the number of complete subtrees to the left of the
// path from the leaf at p to the root. A frontier at p carries exactly this
// many ommers.
func (p Position) PastOmmerCount() int {
	return OnesCount(uint64(p))
}

// IsRightAt reports whether the ancestor of p at level l is a right child.
// This is the case exactly when bit l of p is set.
//
// No range check is made, l must be below MaxLevel.
func (p Position) IsRightAt(l Level) bool {
	return uint64(p)&(uint64(1)<<l) != 0
}

// IncompleteLevels enumerates, lowest first, the levels at which the ancestor
// of the leaf at p still expects a right hand sibling: every level l where
// bit l of p is clear. As a special case every level is produced for the
// first leaf.
//
// These are the levels at which an auth path for p is extended by leaves
// appended after it. An ancestor at level l becomes complete exactly when the
// subtree to its right at that level is filled, so the sequence is also the
// order in which the legacy format recorded observed ommers for p.
//
// The sequence is bounded by MaxLevel.
func IncompleteLevels(p Position) iter.Seq[Level] {
	return func(yield func(Level) bool) {
		for l := Level(0); l < MaxLevel; l++ {
			if p != 0 && p.IsRightAt(l) {
				continue
			}
			if !yield(l) {
				return
			}
		}
	}
}
