package treestate

import (
	"bytes"
	"crypto/ecdsa"
	"crypto/rand"
	"time"

	dtcbor "github.com/datatrails/go-datatrails-common/cbor"
	dtcose "github.com/datatrails/go-datatrails-common/cose"
	"github.com/forestrie/go-notetree/tree"
	"github.com/forestrie/go-notetree/treecodec"
	"github.com/veraison/go-cose"
)

// Anchor is the signed commitment to the state of a tree.
type Anchor struct {
	Pool  string `cbor:"1,keyasint"`
	Depth uint8  `cbor:"2,keyasint"`
	// TreeSize is the number of leaves in the tree. All later states of the
	// same tree contain the leaves committed to here.
	TreeSize uint64 `cbor:"3,keyasint"`
	// Root is the canonical encoding of the root of the full depth tree. It
	// is removed from the payload of published messages.
	Root []byte `cbor:"4,keyasint"`
	// Timestamp is the unix time (milliseconds) at which the anchor was made.
	// Including it allows for the same root to be re-signed.
	Timestamp int64 `cbor:"5,keyasint"`
}

// NewAnchor returns the anchor for the tree whose right edge is f.
func NewAnchor[H any](
	pool string, f *tree.Frontier[H], hasher tree.Hasher[H], nc treecodec.NodeCodec[H], now time.Time,
) (Anchor, error) {
	root, err := encodeRoot(f, hasher, nc)
	if err != nil {
		return Anchor{}, err
	}
	return Anchor{
		Pool:      pool,
		Depth:     uint8(f.Depth()),
		TreeSize:  f.TreeSize(),
		Root:      root,
		Timestamp: now.UnixMilli(),
	}, nil
}

func encodeRoot[H any](f *tree.Frontier[H], hasher tree.Hasher[H], nc treecodec.NodeCodec[H]) ([]byte, error) {
	var buf bytes.Buffer
	if err := nc.WriteNode(&buf, f.Root(hasher)); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// AnchorSigner produces signed anchors. Anchors should only be signed for
// states that have been checked to extend the most recently signed state.
type AnchorSigner struct {
	issuer    string
	cborCodec dtcbor.CBORCodec
}

func NewAnchorSigner(issuer string, cborCodec dtcbor.CBORCodec) AnchorSigner {
	return AnchorSigner{
		issuer:    issuer,
		cborCodec: cborCodec,
	}
}

// Sign1 signs anchor and returns the encoded COSE Sign1 message, with the root
// detached from the payload.
func (s AnchorSigner) Sign1(
	coseSigner cose.Signer, keyIdentifier string, publicKey *ecdsa.PublicKey,
	subject string, anchor Anchor, external []byte,
) ([]byte, error) {
	payload, err := s.cborCodec.MarshalCBOR(anchor)
	if err != nil {
		return nil, err
	}

	coseHeaders := cose.Headers{
		Protected: cose.ProtectedHeader{
			dtcose.HeaderLabelCWTClaims: dtcose.NewCNFClaim(
				s.issuer, subject, keyIdentifier, coseSigner.Algorithm(), *publicKey),
		},
	}

	msg := cose.Sign1Message{
		Headers: coseHeaders,
		Payload: payload,
	}
	if err = msg.Sign(rand.Reader, external, coseSigner); err != nil {
		return nil, err
	}

	// verifiers must recompute the root from the tree
	anchor.Root = nil
	if msg.Payload, err = s.cborCodec.MarshalCBOR(anchor); err != nil {
		return nil, err
	}

	return msg.MarshalCBOR()
}
