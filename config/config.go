// Package config holds the notetree configuration: the log level and, for
// each shielded pool, the depth of its note commitment tree and the kind of
// node it holds.
package config

import (
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/forestrie/go-notetree/tree"
)

// NodeKind names the node value type of a pool's tree.
type NodeKind string

const (
	NodeSapling NodeKind = "sapling"
	NodeOrchard NodeKind = "orchard"
	// NodeTest is the 8 byte test node, for fixtures and debugging.
	NodeTest NodeKind = "test"
)

// DefaultDepth is the note commitment tree depth of both shielded pools.
const DefaultDepth = 32

var (
	ErrUnknownPool    = errors.New("config: unknown pool")
	ErrInvalidPool    = errors.New("config: invalid pool")
	ErrUndecodedField = errors.New("config: unrecognized field")
)

// Pool configures the tree of one shielded pool.
type Pool struct {
	Name  string   `toml:"name"`
	Depth uint8    `toml:"depth"`
	Node  NodeKind `toml:"node"`
}

// TreeDepth returns the depth as a tree level.
func (p Pool) TreeDepth() tree.Level { return tree.Level(p.Depth) }

type Config struct {
	LogLevel string `toml:"log_level"`
	Pools    []Pool `toml:"pools"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		LogLevel: "INFO",
		Pools: []Pool{
			{Name: "sapling", Depth: DefaultDepth, Node: NodeSapling},
			{Name: "orchard", Depth: DefaultDepth, Node: NodeOrchard},
		},
	}
}

// Load reads and validates the configuration in file.
func Load(file string) (*Config, error) {
	var c Config
	md, err := toml.DecodeFile(file, &c)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return c.finish(md)
}

// Parse reads and validates a configuration from data.
func Parse(data string) (*Config, error) {
	var c Config
	md, err := toml.Decode(data, &c)
	if err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return c.finish(md)
}

func (c *Config) finish(md toml.MetaData) (*Config, error) {
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, k := range undecoded {
			keys = append(keys, k.String())
		}
		return nil, fmt.Errorf("%w: %s", ErrUndecodedField, strings.Join(keys, ", "))
	}
	if c.LogLevel == "" {
		c.LogLevel = "INFO"
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// Validate checks every pool has a unique name, a known node kind and a depth
// in [1, tree.MaxLevel].
func (c *Config) Validate() error {
	var names []string
	for _, p := range c.Pools {
		switch {
		case p.Name == "":
			return fmt.Errorf("%w: missing name", ErrInvalidPool)
		case slices.Contains(names, p.Name):
			return fmt.Errorf("%w: %s is configured more than once", ErrInvalidPool, p.Name)
		case p.Depth == 0 || tree.Level(p.Depth) > tree.MaxLevel:
			return fmt.Errorf("%w: %s depth %d", ErrInvalidPool, p.Name, p.Depth)
		}
		switch p.Node {
		case NodeSapling, NodeOrchard, NodeTest:
		default:
			return fmt.Errorf("%w: %s node kind %q", ErrInvalidPool, p.Name, p.Node)
		}
		names = append(names, p.Name)
	}
	return nil
}

// Pool returns the pool called name.
func (c *Config) Pool(name string) (Pool, error) {
	i := slices.IndexFunc(c.Pools, func(p Pool) bool { return p.Name == name })
	if i < 0 {
		return Pool{}, fmt.Errorf("%w: %s", ErrUnknownPool, name)
	}
	return c.Pools[i], nil
}

// Encode writes c as TOML.
func (c *Config) Encode(w io.Writer) error {
	return toml.NewEncoder(w).Encode(c)
}
