package nodehash

import (
	"encoding/hex"
	"errors"
	"fmt"
	"io"

	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
)

const NodeBytes = 32

var (
	ErrNonCanonical = errors.New("nodehash: non canonical field element encoding")
	ErrBadNodeSize  = errors.New("nodehash: node values must be 32 bytes")
)

// pallasModulus is the Pallas base field modulus, little endian.
var pallasModulus = [NodeBytes]byte{
	0x01, 0x00, 0x00, 0x00, 0xed, 0x30, 0x2d, 0x99,
	0x1b, 0xf9, 0x4c, 0x09, 0xfc, 0x98, 0x46, 0x22,
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x40,
}

// SaplingNode is a Sapling note commitment tree node, a BLS12-381 scalar in
// its little endian encoding.
type SaplingNode [NodeBytes]byte

// OrchardNode is an Orchard note commitment tree node, a Pallas base field
// element in its little endian encoding.
type OrchardNode [NodeBytes]byte

func (n SaplingNode) String() string { return hex.EncodeToString(n[:]) }
func (n OrchardNode) String() string { return hex.EncodeToString(n[:]) }

// SaplingNodeFromBytes returns the node encoded by b, which must be canonical.
func SaplingNodeFromBytes(b []byte) (SaplingNode, error) {
	var n SaplingNode
	if len(b) != NodeBytes {
		return n, fmt.Errorf("%w: got %d", ErrBadNodeSize, len(b))
	}
	copy(n[:], b)
	if err := checkSapling(n); err != nil {
		return SaplingNode{}, err
	}
	return n, nil
}

// OrchardNodeFromBytes returns the node encoded by b, which must be canonical.
func OrchardNodeFromBytes(b []byte) (OrchardNode, error) {
	var n OrchardNode
	if len(b) != NodeBytes {
		return n, fmt.Errorf("%w: got %d", ErrBadNodeSize, len(b))
	}
	copy(n[:], b)
	if err := checkOrchard(n); err != nil {
		return OrchardNode{}, err
	}
	return n, nil
}

func checkSapling(n SaplingNode) error {
	// fr decodes big endian
	var be [NodeBytes]byte
	for i := range n {
		be[NodeBytes-1-i] = n[i]
	}
	var e fr.Element
	if err := e.SetBytesCanonical(be[:]); err != nil {
		return fmt.Errorf("%w: sapling node %s", ErrNonCanonical, n)
	}
	return nil
}

func checkOrchard(n OrchardNode) error {
	for i := NodeBytes - 1; i >= 0; i-- {
		switch {
		case n[i] < pallasModulus[i]:
			return nil
		case n[i] > pallasModulus[i]:
			return fmt.Errorf("%w: orchard node %s", ErrNonCanonical, n)
		}
	}
	return fmt.Errorf("%w: orchard node %s equals the modulus", ErrNonCanonical, n)
}

// SaplingCodec reads and writes Sapling nodes
type SaplingCodec struct{}

func (SaplingCodec) ReadNode(r io.Reader) (SaplingNode, error) {
	var n SaplingNode
	if _, err := io.ReadFull(r, n[:]); err != nil {
		return SaplingNode{}, err
	}
	if err := checkSapling(n); err != nil {
		return SaplingNode{}, err
	}
	return n, nil
}

func (SaplingCodec) WriteNode(w io.Writer, n SaplingNode) error {
	_, err := w.Write(n[:])
	return err
}

// OrchardCodec reads and writes Orchard nodes
type OrchardCodec struct{}

func (OrchardCodec) ReadNode(r io.Reader) (OrchardNode, error) {
	var n OrchardNode
	if _, err := io.ReadFull(r, n[:]); err != nil {
		return OrchardNode{}, err
	}
	if err := checkOrchard(n); err != nil {
		return OrchardNode{}, err
	}
	return n, nil
}

func (OrchardCodec) WriteNode(w io.Writer, n OrchardNode) error {
	_, err := w.Write(n[:])
	return err
}
