package treestate

import (
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func generateTestECKey(t *testing.T, curve elliptic.Curve) ecdsa.PrivateKey {
	privateKey, err := ecdsa.GenerateKey(curve, rand.Reader)
	require.NoError(t, err)
	return *privateKey
}

func newTestAnchorSigner(t *testing.T, issuer string) AnchorSigner {
	codec, err := NewCodec()
	require.NoError(t, err)
	return NewAnchorSigner(issuer, codec)
}
