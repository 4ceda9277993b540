package treecodec

import (
	"fmt"
	"io"

	"github.com/forestrie/go-notetree/tree"
)

// WriteNonEmptyFrontierV1 writes f in the v1 layout.
//
// When the position is odd the leaf is a right child and its left sibling is
// ommers[0]. The layout then writes that sibling first, the leaf as a present
// optional, and the remaining ommers. Otherwise it writes the leaf, an absent
// optional and all the ommers.
func WriteNonEmptyFrontierV1[H any](w io.Writer, nc NodeCodec[H], f *tree.NonEmptyFrontier[H]) error {
	if err := WritePosition(w, f.Position()); err != nil {
		return err
	}

	ommers := f.Ommers()

	if f.Position().IsOdd() {
		if err := nc.WriteNode(w, ommers[0]); err != nil {
			return err
		}
		err := writeOptional(w, true, func(w io.Writer) error { return nc.WriteNode(w, f.Leaf()) })
		if err != nil {
			return err
		}
		return writeVector(w, ommers[1:], nc.WriteNode)
	}

	if err := nc.WriteNode(w, f.Leaf()); err != nil {
		return err
	}
	if err := writeOptional(w, false, nil); err != nil {
		return err
	}
	return writeVector(w, ommers, nc.WriteNode)
}

// ReadNonEmptyFrontierV1 reads a frontier written by WriteNonEmptyFrontierV1.
// If the optional right value is present, the first value read is the left
// sibling and becomes the first ommer.
func ReadNonEmptyFrontierV1[H any](r io.Reader, nc NodeCodec[H]) (*tree.NonEmptyFrontier[H], error) {
	position, err := ReadPosition(r)
	if err != nil {
		return nil, err
	}
	left, err := nc.ReadNode(r)
	if err != nil {
		return nil, err
	}
	right, hasRight, err := readOptional(r, nc.ReadNode)
	if err != nil {
		return nil, err
	}
	ommers, err := readVector(r, nc.ReadNode)
	if err != nil {
		return nil, err
	}

	leaf := left
	if hasRight {
		ommers = append([]H{left}, ommers...)
		leaf = right
	}

	f, err := tree.NonEmptyFrontierFromParts(position, leaf, ommers)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedFrontier, err)
	}
	return f, nil
}

// WriteFrontierV1 writes f as an optional v1 frontier, absent when the tree
// is empty.
func WriteFrontierV1[H any](w io.Writer, nc NodeCodec[H], f *tree.Frontier[H]) error {
	return writeOptional(w, !f.IsEmpty(), func(w io.Writer) error {
		return WriteNonEmptyFrontierV1(w, nc, f.Value())
	})
}

// ReadFrontierV1 reads a frontier written by WriteFrontierV1 for a tree of the
// given depth.
func ReadFrontierV1[H any](r io.Reader, nc NodeCodec[H], depth tree.Level) (*tree.Frontier[H], error) {
	f, ok, err := readOptional(r, func(r io.Reader) (*tree.NonEmptyFrontier[H], error) {
		return ReadNonEmptyFrontierV1(r, nc)
	})
	if err != nil {
		return nil, err
	}
	if !ok {
		return tree.EmptyFrontier[H](depth), nil
	}

	frontier, err := tree.FrontierFromNonEmpty(depth, f)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedFrontier, err)
	}
	return frontier, nil
}

// WriteCommitmentTree writes t in the v0 layout: optional left, optional
// right, then a vector of optional parents.
func WriteCommitmentTree[H any](w io.Writer, nc NodeCodec[H], t *tree.CommitmentTree[H]) error {
	writeNode := func(node *H) error {
		return writeOptional(w, node != nil, func(w io.Writer) error { return nc.WriteNode(w, *node) })
	}
	if err := writeNode(t.Left()); err != nil {
		return err
	}
	if err := writeNode(t.Right()); err != nil {
		return err
	}
	return writeVector(w, t.Parents(), func(w io.Writer, node *H) error {
		return writeNode(node)
	})
}

// ReadCommitmentTree reads a v0 commitment tree for a tree of the given depth.
func ReadCommitmentTree[H any](r io.Reader, nc NodeCodec[H], depth tree.Level) (*tree.CommitmentTree[H], error) {
	readNode := func(r io.Reader) (*H, error) {
		node, ok, err := readOptional(r, nc.ReadNode)
		if err != nil || !ok {
			return nil, err
		}
		return &node, nil
	}

	left, err := readNode(r)
	if err != nil {
		return nil, err
	}
	right, err := readNode(r)
	if err != nil {
		return nil, err
	}
	parents, err := readVector(r, readNode)
	if err != nil {
		return nil, err
	}

	t, err := tree.CommitmentTreeFromParts(left, right, parents, depth)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedCommitmentTree, err)
	}
	return t, nil
}

// ReadFrontierV0 reads a v0 commitment tree and converts it to the equivalent
// frontier.
func ReadFrontierV0[H any](r io.Reader, nc NodeCodec[H], depth tree.Level) (*tree.Frontier[H], error) {
	t, err := ReadCommitmentTree(r, nc, depth)
	if err != nil {
		return nil, err
	}
	f, err := t.ToFrontier(depth)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedFrontier, err)
	}
	return f, nil
}
