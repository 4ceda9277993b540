package tree

import (
	"cmp"
	"fmt"
)

// Address identifies a node of the perfect binary tree by its level and its
// index within that level.
//
// Index is only meaningful for 0 <= Index < 2^(depth - Level) for the depth of
// the tree the address is used with. No checks are made here.
type Address struct {
	Level Level
	Index uint64
}

// AbovePosition returns the address of the ancestor at level l of the leaf at p.
func AbovePosition(l Level, p Position) Address {
	if l >= MaxLevel {
		return Address{Level: l}
	}
	return Address{Level: l, Index: uint64(p) >> l}
}

func (a Address) String() string {
	return fmt.Sprintf("(%d, %d)", a.Level, a.Index)
}

// Sibling returns the address of the node that shares a parent with a.
func (a Address) Sibling() Address {
	return Address{Level: a.Level, Index: a.Index ^ 1}
}

// Parent returns the address of the node one level above a.
func (a Address) Parent() Address {
	return Address{Level: a.Level + 1, Index: a.Index >> 1}
}

// IsRightChild reports whether a is the right hand child of its parent.
func (a Address) IsRightChild() bool {
	return a.Index&1 == 1
}

// StartPosition returns the position of the left most leaf below a.
func (a Address) StartPosition() Position {
	if a.Level >= MaxLevel {
		return 0
	}
	return Position(a.Index << a.Level)
}

// ContainsPosition reports whether the leaf at p is in the subtree rooted at a.
func (a Address) ContainsPosition(p Position) bool {
	return AbovePosition(a.Level, p) == a
}

// Compare orders addresses by level, then by index. It gives encoders a
// deterministic order for address sets.
func (a Address) Compare(b Address) int {
	if c := cmp.Compare(a.Level, b.Level); c != 0 {
		return c
	}
	return cmp.Compare(a.Index, b.Index)
}
