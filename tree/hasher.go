package tree

// Hasher provides the node hashing rules of a particular tree. Node values are
// opaque to this package.
type Hasher[H any] interface {
	// EmptyLeaf is the value of a leaf that has not been appended.
	EmptyLeaf() H
	// Combine returns the parent value, at level+1, of left and right, which
	// are both at level.
	Combine(level Level, left, right H) H
}

// EmptyRoot returns the root of a subtree at level l that contains only empty
// leaves.
func EmptyRoot[H any](hasher Hasher[H], l Level) H {
	root := hasher.EmptyLeaf()
	for i := Level(0); i < l; i++ {
		root = hasher.Combine(i, root, root)
	}
	return root
}

// EmptyRoots returns the empty subtree roots for every level in [0, depth].
func EmptyRoots[H any](hasher Hasher[H], depth Level) []H {
	roots := make([]H, 0, int(depth)+1)
	root := hasher.EmptyLeaf()
	roots = append(roots, root)
	for i := Level(0); i < depth; i++ {
		root = hasher.Combine(i, root, root)
		roots = append(roots, root)
	}
	return roots
}
