package treecodec

import "io"

// NodeCodec reads and writes the fixed width encoding of a node value.
//
// ReadNode must fail, rather than normalize, when the bytes are not the
// canonical encoding of a value.
type NodeCodec[H any] interface {
	ReadNode(r io.Reader) (H, error)
	WriteNode(w io.Writer, node H) error
}
