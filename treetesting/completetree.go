package treetesting

import (
	"fmt"

	"github.com/forestrie/go-notetree/tree"
)

// CompleteTree retains every leaf and recomputes node values on demand. It is
// slow and simple, and serves as the reference the compact structures are
// checked against.
type CompleteTree[H any] struct {
	hasher tree.Hasher[H]
	depth  tree.Level
	leaves []H
	empty  []H
}

func NewCompleteTree[H any](hasher tree.Hasher[H], depth tree.Level) *CompleteTree[H] {
	return &CompleteTree[H]{
		hasher: hasher,
		depth:  depth,
		empty:  tree.EmptyRoots(hasher, depth),
	}
}

func (t *CompleteTree[H]) Size() uint64 { return uint64(len(t.leaves)) }

func (t *CompleteTree[H]) Append(leaf H) error {
	if t.depth < tree.MaxLevel && t.Size() == uint64(1)<<t.depth {
		return fmt.Errorf("%w: depth %d", tree.ErrTreeFull, t.depth)
	}
	t.leaves = append(t.leaves, leaf)
	return nil
}

// NodeAt returns the value of the node at addr given the leaves appended so
// far.
func (t *CompleteTree[H]) NodeAt(addr tree.Address) H {
	if uint64(addr.StartPosition()) >= t.Size() {
		return t.empty[addr.Level]
	}
	if addr.Level == 0 {
		return t.leaves[addr.Index]
	}
	child := tree.Address{Level: addr.Level - 1, Index: addr.Index << 1}
	return t.hasher.Combine(child.Level, t.NodeAt(child), t.NodeAt(child.Sibling()))
}

func (t *CompleteTree[H]) Root() H {
	return t.NodeAt(tree.Address{Level: t.depth})
}

// Witness returns the authentication path of the leaf at pos, leaf level first.
func (t *CompleteTree[H]) Witness(pos tree.Position) ([]H, error) {
	if uint64(pos) >= t.Size() {
		return nil, fmt.Errorf("position %d not in tree of size %d", pos, t.Size())
	}
	path := make([]H, 0, t.depth)
	for l := tree.Level(0); l < t.depth; l++ {
		path = append(path, t.NodeAt(tree.AbovePosition(l, pos).Sibling()))
	}
	return path, nil
}

// Frontier returns the frontier of the tree as it currently stands.
func (t *CompleteTree[H]) Frontier() (*tree.Frontier[H], error) {
	if t.Size() == 0 {
		return tree.EmptyFrontier[H](t.depth), nil
	}
	pos := tree.Position(t.Size() - 1)
	var ommers []H
	for l := tree.Level(0); l < pos.RootLevel(); l++ {
		if pos.IsRightAt(l) {
			ommers = append(ommers, t.NodeAt(tree.AbovePosition(l, pos).Sibling()))
		}
	}
	return tree.FrontierFromParts(t.depth, pos, t.leaves[pos], ommers)
}
