package tree

import (
	"fmt"
	"slices"
)

// CommitmentTree is the legacy fixed depth representation of the right edge
// of a tree. Left and right hold the last one or two leaves, and parents[i]
// holds the root of the complete left subtree at level i+1, if there is one.
//
// It predates NonEmptyFrontier and is only kept so that state written in this
// layout can be read.
type CommitmentTree[H any] struct {
	left    *H
	right   *H
	parents []*H
}

// EmptyCommitmentTree returns a tree with no leaves
func EmptyCommitmentTree[H any]() *CommitmentTree[H] {
	return &CommitmentTree[H]{}
}

// CommitmentTreeFromParts assembles a commitment tree, checking that it is
// structurally valid for a tree of the given depth.
func CommitmentTreeFromParts[H any](left, right *H, parents []*H, depth Level) (*CommitmentTree[H], error) {
	if len(parents) >= int(depth) && len(parents) > 0 {
		return nil, fmt.Errorf(
			"%w: %d parents for depth %d", ErrCommitmentTreeTooDeep, len(parents), depth)
	}
	if left == nil {
		if right != nil {
			return nil, fmt.Errorf("%w: right leaf without a left leaf", ErrInvalidCommitmentTree)
		}
		if slices.ContainsFunc(parents, func(p *H) bool { return p != nil }) {
			return nil, fmt.Errorf("%w: parents without leaves", ErrInvalidCommitmentTree)
		}
	}
	return &CommitmentTree[H]{left: left, right: right, parents: slices.Clone(parents)}, nil
}

func (t *CommitmentTree[H]) Left() *H      { return t.left }
func (t *CommitmentTree[H]) Right() *H     { return t.right }
func (t *CommitmentTree[H]) Parents() []*H { return slices.Clone(t.parents) }

// Size returns the number of leaves in the tree. The occupied parents are
// read as a binary number, shifted left by one.
func (t *CommitmentTree[H]) Size() uint64 {
	var size uint64
	switch {
	case t.left != nil && t.right != nil:
		size = 2
	case t.left != nil:
		size = 1
	}
	for i, p := range t.parents {
		if p != nil {
			size += uint64(1) << (i + 1)
		}
	}
	return size
}

func (t *CommitmentTree[H]) isComplete(depth Level) bool {
	if depth == 0 {
		return t.left != nil && t.right == nil && len(t.parents) == 0
	}
	if t.left == nil || t.right == nil {
		return false
	}
	for i := 0; i < int(depth)-1; i++ {
		if i >= len(t.parents) || t.parents[i] == nil {
			return false
		}
	}
	return true
}

// Append adds leaf to a tree of the given depth, failing with ErrTreeFull if
// the tree is complete.
func (t *CommitmentTree[H]) Append(hasher Hasher[H], leaf H, depth Level) error {
	if t.isComplete(depth) {
		return fmt.Errorf("%w: depth %d", ErrTreeFull, depth)
	}

	switch {
	case t.left == nil:
		t.left = &leaf
		return nil
	case t.right == nil:
		t.right = &leaf
		return nil
	}

	combined := hasher.Combine(0, *t.left, *t.right)
	t.left = &leaf
	t.right = nil

	for i := 0; i < int(depth); i++ {
		if i >= len(t.parents) {
			c := combined
			t.parents = append(t.parents, &c)
			return nil
		}
		if t.parents[i] == nil {
			c := combined
			t.parents[i] = &c
			return nil
		}
		combined = hasher.Combine(Level(i+1), *t.parents[i], combined)
		t.parents[i] = nil
	}
	return nil
}

// ToFrontier converts the tree to the equivalent frontier of a tree of the
// given depth.
func (t *CommitmentTree[H]) ToFrontier(depth Level) (*Frontier[H], error) {
	size := t.Size()
	if size == 0 {
		return EmptyFrontier[H](depth), nil
	}

	var leaf H
	var ommers []H
	if t.right != nil {
		leaf = *t.right
		ommers = append(ommers, *t.left)
	} else {
		leaf = *t.left
	}
	for _, p := range t.parents {
		if p != nil {
			ommers = append(ommers, *p)
		}
	}
	return FrontierFromParts(depth, Position(size-1), leaf, ommers)
}
