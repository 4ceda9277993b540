package tree

import (
	"fmt"
	"math"
	"slices"
)

// NonEmptyFrontier is the right edge of an append-only tree that holds at
// least one leaf: the most recently appended leaf, its position, and the roots
// of the complete subtrees to the left of its path, lowest level first.
type NonEmptyFrontier[H any] struct {
	position Position
	leaf     H
	ommers   []H
}

// NewNonEmptyFrontier returns the frontier of a tree holding the single leaf.
func NewNonEmptyFrontier[H any](leaf H) *NonEmptyFrontier[H] {
	return &NonEmptyFrontier[H]{leaf: leaf}
}

// NonEmptyFrontierFromParts assembles a frontier, checking that the number of
// ommers is the one required by position.
func NonEmptyFrontierFromParts[H any](position Position, leaf H, ommers []H) (*NonEmptyFrontier[H], error) {
	if len(ommers) != position.PastOmmerCount() {
		return nil, fmt.Errorf(
			"%w: position %d requires %d ommers, got %d",
			ErrOmmerCountMismatch, position, position.PastOmmerCount(), len(ommers))
	}
	f := &NonEmptyFrontier[H]{position: position, leaf: leaf}
	if len(ommers) > 0 {
		f.ommers = slices.Clone(ommers)
	}
	return f, nil
}

func (f *NonEmptyFrontier[H]) Position() Position { return f.position }
func (f *NonEmptyFrontier[H]) Leaf() H            { return f.leaf }

// Ommers returns a copy of the ommers, lowest level first.
func (f *NonEmptyFrontier[H]) Ommers() []H { return slices.Clone(f.ommers) }

// Clone returns an independent copy of f
func (f *NonEmptyFrontier[H]) Clone() *NonEmptyFrontier[H] {
	return &NonEmptyFrontier[H]{
		position: f.position,
		leaf:     f.leaf,
		ommers:   slices.Clone(f.ommers),
	}
}

// Append adds leaf at the next position.
//
// The current leaf is carried up through the ommers at the levels where the
// current position is a right child, each complete pair being combined, and
// the result becomes the ommer at the first level where the position is a
// left child. Ommers above that level are unchanged.
//
// No depth check is made, see Frontier.Append.
func (f *NonEmptyFrontier[H]) Append(hasher Hasher[H], leaf H) {
	carry := f.leaf
	n := TrailingOnes(uint64(f.position))
	for i := 0; i < n; i++ {
		carry = hasher.Combine(Level(i), f.ommers[i], carry)
	}

	ommers := make([]H, 0, len(f.ommers)-n+1)
	ommers = append(ommers, carry)
	ommers = append(ommers, f.ommers[n:]...)

	f.ommers = ommers
	f.position++
	f.leaf = leaf
}

// RootAt returns the root of the subtree at level l that contains the
// frontier's leaf, treating every position after the leaf as empty.
func (f *NonEmptyFrontier[H]) RootAt(hasher Hasher[H], l Level) H {
	digest := f.leaf
	empty := hasher.EmptyLeaf()
	ommers := f.ommers

	for i := Level(0); i < l; i++ {
		if i < MaxLevel && f.position.IsRightAt(i) {
			digest = hasher.Combine(i, ommers[0], digest)
			ommers = ommers[1:]
		} else {
			digest = hasher.Combine(i, digest, empty)
		}
		empty = hasher.Combine(i, empty, empty)
	}
	return digest
}

// Root returns the root of the smallest perfect tree containing the leaf.
func (f *NonEmptyFrontier[H]) Root(hasher Hasher[H]) H {
	return f.RootAt(hasher, f.position.RootLevel())
}

// Witness returns the authentication path of the frontier's leaf in a tree of
// the given depth, leaf level first.
//
// Siblings to the left of the path are the frontier's own ommers. Siblings to
// the right are appended after the leaf, so their values are obtained from
// valueAt. If valueAt can not provide one, the error identifies its address.
func (f *NonEmptyFrontier[H]) Witness(depth Level, valueAt func(Address) (H, bool)) ([]H, error) {
	path := make([]H, 0, depth)
	ommers := f.ommers

	for l := Level(0); l < depth; l++ {
		if f.position.IsRightAt(l) {
			path = append(path, ommers[0])
			ommers = ommers[1:]
			continue
		}

		sibling := AbovePosition(l, f.position).Sibling()
		value, ok := valueAt(sibling)
		if !ok {
			return nil, fmt.Errorf("%w: %v", ErrWitnessIncomplete, sibling)
		}
		path = append(path, value)
	}
	return path, nil
}

// Frontier is the right edge of a tree of fixed depth, which may be empty.
type Frontier[H any] struct {
	depth    Level
	frontier *NonEmptyFrontier[H]
}

// EmptyFrontier returns the frontier of an empty tree of the given depth.
func EmptyFrontier[H any](depth Level) *Frontier[H] {
	return &Frontier[H]{depth: depth}
}

// FrontierFromNonEmpty binds f to a tree of the given depth, failing if the
// position of f can not be held by a tree of that depth.
func FrontierFromNonEmpty[H any](depth Level, f *NonEmptyFrontier[H]) (*Frontier[H], error) {
	if f == nil {
		return EmptyFrontier[H](depth), nil
	}
	if f.position.RootLevel() > depth {
		return nil, fmt.Errorf(
			"%w: position %d needs depth %d, tree depth is %d",
			ErrMaxDepthExceeded, f.position, f.position.RootLevel(), depth)
	}
	return &Frontier[H]{depth: depth, frontier: f}, nil
}

// FrontierFromParts is NonEmptyFrontierFromParts followed by FrontierFromNonEmpty
func FrontierFromParts[H any](depth Level, position Position, leaf H, ommers []H) (*Frontier[H], error) {
	f, err := NonEmptyFrontierFromParts(position, leaf, ommers)
	if err != nil {
		return nil, err
	}
	return FrontierFromNonEmpty(depth, f)
}

func (f *Frontier[H]) Depth() Level { return f.depth }

// Value returns the non empty frontier, or nil if the tree is empty.
func (f *Frontier[H]) Value() *NonEmptyFrontier[H] { return f.frontier }

func (f *Frontier[H]) IsEmpty() bool { return f.frontier == nil }

// TreeSize returns the number of leaves appended to the tree.
func (f *Frontier[H]) TreeSize() uint64 {
	if f.frontier == nil {
		return 0
	}
	return uint64(f.frontier.position) + 1
}

// Append adds leaf to the tree, failing with ErrTreeFull if the tree already
// holds 2^depth leaves.
func (f *Frontier[H]) Append(hasher Hasher[H], leaf H) error {
	if f.frontier == nil {
		f.frontier = NewNonEmptyFrontier(leaf)
		return nil
	}
	if f.frontier.position == math.MaxUint64 || (f.frontier.position + 1).RootLevel() > f.depth {
		return fmt.Errorf("%w: depth %d", ErrTreeFull, f.depth)
	}
	f.frontier.Append(hasher, leaf)
	return nil
}

// Root returns the root of the full depth tree.
func (f *Frontier[H]) Root(hasher Hasher[H]) H {
	if f.frontier == nil {
		return EmptyRoot(hasher, f.depth)
	}
	return f.frontier.RootAt(hasher, f.depth)
}
