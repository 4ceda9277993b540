package cli

import (
	"bytes"
	"encoding/hex"
	"fmt"

	"github.com/datatrails/go-datatrails-common/logger"
	"github.com/forestrie/go-notetree/config"
	"github.com/forestrie/go-notetree/nodehash"
	"github.com/forestrie/go-notetree/tree"
	"github.com/forestrie/go-notetree/treecodec"
	"github.com/forestrie/go-notetree/treestate"
)

// nodeOps runs the commands for one node kind.
type nodeOps interface {
	inspectBridge(data []byte) (bridgeJSON, error)
	upgradeBridge(data []byte) ([]byte, error)
	inspectFrontier(data []byte, format string, depth tree.Level) (frontierJSON, error)
	upgradeSnapshot(log logger.Logger, pool config.Pool, data []byte) ([]byte, error)
	inspectSnapshot(log logger.Logger, pool config.Pool, data []byte) (snapshotJSON, error)
}

// typedOps implements nodeOps for node type H. hasher is nil for the node
// kinds whose hash function is not available here, and roots are then not
// computed.
type typedOps[H any] struct {
	nc     treecodec.NodeCodec[H]
	hasher tree.Hasher[H]
}

func opsFor(kind config.NodeKind) (nodeOps, error) {
	switch kind {
	case config.NodeSapling:
		return typedOps[nodehash.SaplingNode]{nc: nodehash.SaplingCodec{}}, nil
	case config.NodeOrchard:
		return typedOps[nodehash.OrchardNode]{nc: nodehash.OrchardCodec{}}, nil
	case config.NodeTest:
		return typedOps[nodehash.TestNode]{nc: nodehash.TestNodeCodec{}, hasher: nodehash.TestHasher{}}, nil
	default:
		return nil, fmt.Errorf("%w: node kind %q", config.ErrInvalidPool, kind)
	}
}

func (o typedOps[H]) formatNode(node H) string {
	var buf bytes.Buffer
	if err := o.nc.WriteNode(&buf, node); err != nil {
		return fmt.Sprintf("<%v>", err)
	}
	return hex.EncodeToString(buf.Bytes())
}

func (o typedOps[H]) inspectBridge(data []byte) (bridgeJSON, error) {
	if len(data) == 0 {
		return bridgeJSON{}, errEmptyInput
	}
	b, err := treecodec.ReadBridge(bytes.NewReader(data), o.nc)
	if err != nil {
		return bridgeJSON{}, err
	}

	out := bridgeJSON{
		Version:  data[0],
		Position: uint64(b.Position()),
		Tracking: []string{},
		Ommers:   []ommerJSON{},
		Frontier: o.nonEmptyFrontierJSON(b.Frontier()),
	}
	if prior, ok := b.PriorPosition(); ok {
		p := uint64(prior)
		out.Prior = &p
	}
	for _, addr := range b.TrackingAddresses() {
		out.Tracking = append(out.Tracking, addr.String())
	}
	for _, addr := range b.OmmerAddresses() {
		value, _ := b.Ommer(addr)
		out.Ommers = append(out.Ommers, ommerJSON{Address: addr.String(), Value: o.formatNode(value)})
	}
	return out, nil
}

func (o typedOps[H]) upgradeBridge(data []byte) ([]byte, error) {
	b, err := treecodec.ReadBridge(bytes.NewReader(data), o.nc)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := treecodec.WriteBridge(&buf, o.nc, b); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (o typedOps[H]) inspectFrontier(data []byte, format string, depth tree.Level) (frontierJSON, error) {
	var f *tree.Frontier[H]
	var err error
	switch format {
	case "v0":
		f, err = treecodec.ReadFrontierV0(bytes.NewReader(data), o.nc, depth)
	case "v1":
		f, err = treecodec.ReadFrontierV1(bytes.NewReader(data), o.nc, depth)
	default:
		return frontierJSON{}, fmt.Errorf("%w: %q", errUnknownFormat, format)
	}
	if err != nil {
		return frontierJSON{}, err
	}
	return o.frontierJSON(f), nil
}

func (o typedOps[H]) frontierJSON(f *tree.Frontier[H]) frontierJSON {
	out := frontierJSON{Size: f.TreeSize()}
	if !f.IsEmpty() {
		out = o.nonEmptyFrontierJSON(f.Value())
	}
	depth := uint8(f.Depth())
	out.Depth = &depth
	if o.hasher != nil {
		out.Root = o.formatNode(f.Root(o.hasher))
	}
	return out
}

func (o typedOps[H]) nonEmptyFrontierJSON(f *tree.NonEmptyFrontier[H]) frontierJSON {
	pos := uint64(f.Position())
	out := frontierJSON{
		Size:     pos + 1,
		Position: &pos,
		Leaf:     o.formatNode(f.Leaf()),
		Ommers:   []string{},
	}
	for _, ommer := range f.Ommers() {
		out.Ommers = append(out.Ommers, o.formatNode(ommer))
	}
	return out
}

func (o typedOps[H]) upgradeSnapshot(log logger.Logger, pool config.Pool, data []byte) ([]byte, error) {
	codec, err := treestate.NewCodec()
	if err != nil {
		return nil, err
	}
	state, err := treestate.NewSnapshotReader(log, codec, o.nc, pool.Name, pool.TreeDepth()).Decode(data)
	if err != nil {
		return nil, err
	}
	return treestate.EncodeSnapshot(codec, o.nc, state)
}

func (o typedOps[H]) inspectSnapshot(log logger.Logger, pool config.Pool, data []byte) (snapshotJSON, error) {
	codec, err := treestate.NewCodec()
	if err != nil {
		return snapshotJSON{}, err
	}
	state, err := treestate.NewSnapshotReader(log, codec, o.nc, pool.Name, pool.TreeDepth()).Decode(data)
	if err != nil {
		return snapshotJSON{}, err
	}

	out := snapshotJSON{
		Pool:     state.Pool,
		Frontier: o.frontierJSON(state.Frontier),
		Bridges:  []bridgeSummaryJSON{},
	}
	for _, b := range state.Bridges {
		summary := bridgeSummaryJSON{
			Position: uint64(b.Position()),
			Tracking: len(b.Tracking()),
			Ommers:   len(b.Ommers()),
		}
		if prior, ok := b.PriorPosition(); ok {
			p := uint64(prior)
			summary.Prior = &p
		}
		out.Bridges = append(out.Bridges, summary)
	}
	return out, nil
}
