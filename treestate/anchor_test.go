package treestate

import (
	"crypto/elliptic"
	"testing"
	"time"

	"github.com/datatrails/go-datatrails-common/azkeys"
	dtcose "github.com/datatrails/go-datatrails-common/cose"
	"github.com/datatrails/go-datatrails-common/logger"
	"github.com/forestrie/go-notetree/nodehash"
	"github.com/forestrie/go-notetree/treetesting"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnchorSigner_Sign1(t *testing.T) {
	logger.New("TEST")
	tc := treetesting.NewTestContext(t, treetesting.TestConfig{TestLabelPrefix: "treestate"})
	hasher := nodehash.TestHasher{}
	nc := nodehash.TestNodeCodec{}

	tests := []struct {
		name     string
		issuer   string
		subject  string
		leaves   int
		external []byte
	}{
		{name: "empty tree", issuer: "synsation.org", subject: "notetree-anchor", leaves: 0},
		{name: "one leaf", issuer: "synsation.org", subject: "notetree-anchor", leaves: 1},
		{
			name: "with external data", issuer: "synsation.org", subject: "notetree-anchor",
			leaves: 37, external: []byte("external"),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			key := generateTestECKey(t, elliptic.P256())
			s := newTestAnchorSigner(t, tt.issuer)

			coseSigner := azkeys.NewTestCoseSigner(t, key)
			pubKey, err := coseSigner.PublicKey()
			require.NoError(t, err)

			f := tc.NewFrontier(32, tt.leaves)
			anchor, err := NewAnchor("test", f, hasher, nc, time.UnixMilli(1234))
			require.NoError(t, err)
			assert.Equal(t, uint64(tt.leaves), anchor.TreeSize)
			assert.Equal(t, uint8(32), anchor.Depth)
			assert.Equal(t, int64(1234), anchor.Timestamp)

			msg, err := s.Sign1(coseSigner, coseSigner.KeyIdentifier(), pubKey, tt.subject, anchor, tt.external)
			require.NoError(t, err)

			signed, unverified, err := DecodeSignedAnchor(s.cborCodec, msg)
			require.NoError(t, err)
			assert.Nil(t, unverified.Root)
			assert.Equal(t, anchor.TreeSize, unverified.TreeSize)

			// the root is detached, so this must fail
			err = VerifySignedAnchor(s.cborCodec, dtcose.NewCWTPublicKeyProvider(signed), signed, unverified, tt.external)
			assert.Error(t, err)

			err = VerifySignedAnchorFrontier(
				s.cborCodec, dtcose.NewCWTPublicKeyProvider(signed), signed, unverified, f, hasher, nc, tt.external)
			assert.NoError(t, err)

			other := tc.NewFrontier(32, tt.leaves+1)
			err = VerifySignedAnchorFrontier(
				s.cborCodec, dtcose.NewCWTPublicKeyProvider(signed), signed, unverified, other, hasher, nc, tt.external)
			require.ErrorIs(t, err, ErrAnchorMismatch)
		})
	}
}

func TestVerifySignedAnchorFrontierWrongLeaves(t *testing.T) {
	tc := treetesting.NewTestContext(t, treetesting.TestConfig{TestLabelPrefix: "treestate"})
	hasher := nodehash.TestHasher{}
	nc := nodehash.TestNodeCodec{}

	key := generateTestECKey(t, elliptic.P256())
	s := newTestAnchorSigner(t, "synsation.org")
	coseSigner := azkeys.NewTestCoseSigner(t, key)
	pubKey, err := coseSigner.PublicKey()
	require.NoError(t, err)

	anchor, err := NewAnchor("test", tc.NewFrontier(16, 5), hasher, nc, time.UnixMilli(1))
	require.NoError(t, err)
	msg, err := s.Sign1(coseSigner, coseSigner.KeyIdentifier(), pubKey, "notetree-anchor", anchor, nil)
	require.NoError(t, err)
	signed, unverified, err := DecodeSignedAnchor(s.cborCodec, msg)
	require.NoError(t, err)

	other := tc.NewFrontier(16, 4)
	require.NoError(t, other.Append(hasher, 99))
	err = VerifySignedAnchorFrontier(
		s.cborCodec, dtcose.NewCWTPublicKeyProvider(signed), signed, unverified, other, hasher, nc, nil)
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrAnchorMismatch)
}
