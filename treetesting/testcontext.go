package treetesting

import (
	"encoding/hex"
	"testing"

	"github.com/datatrails/go-datatrails-common/logger"
	"github.com/forestrie/go-notetree/nodehash"
	"github.com/forestrie/go-notetree/tree"
	"github.com/stretchr/testify/require"
)

type TestContext struct {
	Log logger.Logger
	T   *testing.T
}

type TestConfig struct {
	TestLabelPrefix string
	LogLevel        string // defaults to INFO
}

func NewTestContext(t *testing.T, cfg TestConfig) TestContext {
	c := TestContext{
		T: t,
	}
	level := cfg.LogLevel
	if level == "" {
		level = "INFO"
	}
	logger.New(level)
	c.Log = logger.Sugar.WithServiceName(cfg.TestLabelPrefix)
	return c
}

// DecodeHex decodes a hex fixture, failing the test if it is malformed
func (c *TestContext) DecodeHex(s string) []byte {
	b, err := hex.DecodeString(s)
	require.NoError(c.T, err)
	return b
}

// NewFrontier returns the frontier of a tree of the given depth after
// appending nodehash.TestNode(0) ... nodehash.TestNode(n-1)
func (c *TestContext) NewFrontier(depth tree.Level, n int) *tree.Frontier[nodehash.TestNode] {
	f := tree.EmptyFrontier[nodehash.TestNode](depth)
	for _, leaf := range nodehash.TestNodes(n) {
		require.NoError(c.T, f.Append(nodehash.TestHasher{}, leaf))
	}
	return f
}

// NewCompleteTree returns a reference tree of the given depth holding
// nodehash.TestNode(0) ... nodehash.TestNode(n-1)
func (c *TestContext) NewCompleteTree(depth tree.Level, n int) *CompleteTree[nodehash.TestNode] {
	t := NewCompleteTree[nodehash.TestNode](nodehash.TestHasher{}, depth)
	for _, leaf := range nodehash.TestNodes(n) {
		require.NoError(c.T, t.Append(leaf))
	}
	return t
}
