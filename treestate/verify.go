package treestate

import (
	"crypto"
	"fmt"

	dtcbor "github.com/datatrails/go-datatrails-common/cbor"
	dtcose "github.com/datatrails/go-datatrails-common/cose"
	"github.com/forestrie/go-notetree/tree"
	"github.com/forestrie/go-notetree/treecodec"
	"github.com/veraison/go-cose"
)

type publicKeyProvider interface {
	PublicKey() (crypto.PublicKey, cose.Algorithm, error)
}

// DecodeSignedAnchor decodes the anchor from a signed message. The anchor has
// no root and will not verify as it stands, see VerifySignedAnchor.
func DecodeSignedAnchor(codec dtcbor.CBORCodec, msg []byte) (*dtcose.CoseSign1Message, Anchor, error) {
	signed, err := dtcose.NewCoseSign1MessageFromCBOR(msg, newSign1DecOptions()...)
	if err != nil {
		return nil, Anchor{}, err
	}

	var unverified Anchor
	if err = codec.UnmarshalInto(signed.Payload, &unverified); err != nil {
		return nil, Anchor{}, err
	}
	return signed, unverified, nil
}

// VerifySignedAnchor restores the payload of signed from unverified and
// checks the signature.
//
// Verification of a published anchor is a 3 step process:
//  1. Use DecodeSignedAnchor to obtain the anchor, which has no root.
//  2. Obtain the frontier of the tree at Anchor.TreeSize and compute its root.
//  3. Set Anchor.Root and call this function.
//
// VerifySignedAnchorFrontier does steps 2 and 3 given the frontier.
func VerifySignedAnchor(
	codec dtcbor.CBORCodec, keyProvider publicKeyProvider, signed *dtcose.CoseSign1Message,
	unverified Anchor, external []byte,
) error {
	var err error
	signed.Payload, err = codec.MarshalCBOR(unverified)
	if err != nil {
		return err
	}
	return signed.VerifyWithProvider(keyProvider, external)
}

// VerifySignedAnchorFrontier recomputes the anchored root from f and verifies
// the signature. f must describe a tree of the anchored depth and size.
func VerifySignedAnchorFrontier[H any](
	codec dtcbor.CBORCodec, keyProvider publicKeyProvider, signed *dtcose.CoseSign1Message,
	unverified Anchor, f *tree.Frontier[H], hasher tree.Hasher[H], nc treecodec.NodeCodec[H],
	external []byte,
) error {
	if uint8(f.Depth()) != unverified.Depth || f.TreeSize() != unverified.TreeSize {
		return fmt.Errorf(
			"%w: anchored depth %d size %d, frontier depth %d size %d",
			ErrAnchorMismatch, unverified.Depth, unverified.TreeSize, f.Depth(), f.TreeSize())
	}

	root, err := encodeRoot(f, hasher, nc)
	if err != nil {
		return err
	}
	unverified.Root = root
	return VerifySignedAnchor(codec, keyProvider, signed, unverified, external)
}
