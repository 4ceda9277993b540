package config

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/forestrie/go-notetree/tree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	c, err := Parse(`
log_level = "DEBUG"

[[pools]]
name = "orchard"
depth = 32
node = "orchard"

[[pools]]
name = "fixtures"
depth = 8
node = "test"
`)
	require.NoError(t, err)
	assert.Equal(t, "DEBUG", c.LogLevel)
	require.Len(t, c.Pools, 2)

	p, err := c.Pool("fixtures")
	require.NoError(t, err)
	assert.Equal(t, Pool{Name: "fixtures", Depth: 8, Node: NodeTest}, p)
	assert.Equal(t, tree.Level(8), p.TreeDepth())

	_, err = c.Pool("sapling")
	require.ErrorIs(t, err, ErrUnknownPool)
}

func TestParseDefaultsLogLevel(t *testing.T) {
	c, err := Parse(`pools = []`)
	require.NoError(t, err)
	assert.Equal(t, "INFO", c.LogLevel)
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		wantErr error
	}{
		{
			"unknown field",
			"log_level = \"INFO\"\nloglevel = \"DEBUG\"\n",
			ErrUndecodedField,
		},
		{
			"zero depth",
			"[[pools]]\nname = \"sapling\"\ndepth = 0\nnode = \"sapling\"\n",
			ErrInvalidPool,
		},
		{
			"depth above the maximum level",
			"[[pools]]\nname = \"sapling\"\ndepth = 65\nnode = \"sapling\"\n",
			ErrInvalidPool,
		},
		{
			"unknown node kind",
			"[[pools]]\nname = \"sapling\"\ndepth = 32\nnode = \"sprout\"\n",
			ErrInvalidPool,
		},
		{
			"duplicate pool",
			"[[pools]]\nname = \"a\"\ndepth = 4\nnode = \"test\"\n[[pools]]\nname = \"a\"\ndepth = 4\nnode = \"test\"\n",
			ErrInvalidPool,
		},
		{
			"missing name",
			"[[pools]]\ndepth = 4\nnode = \"test\"\n",
			ErrInvalidPool,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.data)
			require.ErrorIs(t, err, tt.wantErr)
		})
	}

	_, err := Parse("log_level = ")
	require.Error(t, err)
}

func TestDefaultRoundTrip(t *testing.T) {
	c := Default()
	require.NoError(t, c.Validate())

	sapling, err := c.Pool("sapling")
	require.NoError(t, err)
	assert.Equal(t, NodeSapling, sapling.Node)
	assert.Equal(t, uint8(DefaultDepth), sapling.Depth)

	var buf bytes.Buffer
	require.NoError(t, c.Encode(&buf))

	file := filepath.Join(t.TempDir(), "notetree.toml")
	require.NoError(t, os.WriteFile(file, buf.Bytes(), 0o644))

	loaded, err := Load(file)
	require.NoError(t, err)
	assert.Equal(t, c, loaded)

	_, err = Load(filepath.Join(t.TempDir(), "missing.toml"))
	require.Error(t, err)
}
