package nodehash

import (
	"encoding/binary"
	"io"

	"github.com/forestrie/go-notetree/tree"
)

// TestNodeBytes is the encoded width of a TestNode
const TestNodeBytes = 8

// TestNode is a cheap node value for exercising tree and codec logic. Values
// are compatible with the legacy bridge fixtures.
type TestNode uint64

// TestHasher combines test nodes with SipHash-1-3 (zero keys) over
// level || left || right, integers little endian. The empty leaf is 0.
type TestHasher struct{}

var _ tree.Hasher[TestNode] = TestHasher{}

func (TestHasher) EmptyLeaf() TestNode { return 0 }

func (TestHasher) Combine(level tree.Level, left, right TestNode) TestNode {
	var msg [1 + 2*TestNodeBytes]byte
	msg[0] = byte(level)
	binary.LittleEndian.PutUint64(msg[1:9], uint64(left))
	binary.LittleEndian.PutUint64(msg[9:17], uint64(right))
	return TestNode(sipHash13(0, 0, msg[:]))
}

// TestNodeCodec reads and writes test nodes as 8 byte little endian values.
// Every value is canonical.
type TestNodeCodec struct{}

func (TestNodeCodec) ReadNode(r io.Reader) (TestNode, error) {
	var b [TestNodeBytes]byte
	if _, err := io.ReadFull(r, b[:]); err != nil {
		return 0, err
	}
	return TestNode(binary.LittleEndian.Uint64(b[:])), nil
}

func (TestNodeCodec) WriteNode(w io.Writer, node TestNode) error {
	var b [TestNodeBytes]byte
	binary.LittleEndian.PutUint64(b[:], uint64(node))
	_, err := w.Write(b[:])
	return err
}

// TestNodes returns the sequence TestNode(0) ... TestNode(n-1)
func TestNodes(n int) []TestNode {
	nodes := make([]TestNode, n)
	for i := range nodes {
		nodes[i] = TestNode(i)
	}
	return nodes
}
