package treestate

import (
	"bytes"
	"fmt"

	dtcbor "github.com/datatrails/go-datatrails-common/cbor"
	"github.com/datatrails/go-datatrails-common/logger"
	"github.com/forestrie/go-notetree/tree"
	"github.com/forestrie/go-notetree/treecodec"
)

// SnapshotVersion is the version of the snapshot envelope.
const SnapshotVersion = 1

// Snapshot is the CBOR envelope for the state of one tree. Frontier holds a
// v1 frontier encoding and each of Bridges a version tagged bridge encoding,
// oldest first.
type Snapshot struct {
	Version  uint16   `cbor:"1,keyasint"`
	Pool     string   `cbor:"2,keyasint"`
	Depth    uint8    `cbor:"3,keyasint"`
	Frontier []byte   `cbor:"4,keyasint"`
	Bridges  [][]byte `cbor:"5,keyasint"`
}

// TreeState is the decoded state of a tree: its frontier and the bridges
// needed to witness its marked leaves.
type TreeState[H any] struct {
	Pool     string
	Depth    tree.Level
	Frontier *tree.Frontier[H]
	Bridges  []*tree.MerkleBridge[H]
}

// Witness returns the authentication path of the marked leaf at pos.
func (s TreeState[H]) Witness(hasher tree.Hasher[H], pos tree.Position) ([]H, error) {
	return tree.WitnessFromBridges(hasher, s.Depth, s.Bridges, pos)
}

// EncodeSnapshot encodes state. Bridges are always written in the current
// bridge version.
func EncodeSnapshot[H any](codec dtcbor.CBORCodec, nc treecodec.NodeCodec[H], state TreeState[H]) ([]byte, error) {
	snapshot := Snapshot{
		Version: SnapshotVersion,
		Pool:    state.Pool,
		Depth:   uint8(state.Depth),
	}

	var buf bytes.Buffer
	if err := treecodec.WriteFrontierV1(&buf, nc, state.Frontier); err != nil {
		return nil, err
	}
	snapshot.Frontier = bytes.Clone(buf.Bytes())

	for _, b := range state.Bridges {
		buf.Reset()
		if err := treecodec.WriteBridge(&buf, nc, b); err != nil {
			return nil, err
		}
		snapshot.Bridges = append(snapshot.Bridges, bytes.Clone(buf.Bytes()))
	}

	return codec.MarshalCBOR(snapshot)
}

// SnapshotReader decodes snapshots of one pool's tree.
type SnapshotReader[H any] struct {
	log   logger.Logger
	codec dtcbor.CBORCodec
	nc    treecodec.NodeCodec[H]
	pool  string
	depth tree.Level
}

// NewSnapshotReader returns a reader that only accepts snapshots of the tree
// of the given pool and depth.
func NewSnapshotReader[H any](
	log logger.Logger, codec dtcbor.CBORCodec, nc treecodec.NodeCodec[H], pool string, depth tree.Level,
) SnapshotReader[H] {
	return SnapshotReader[H]{log: log, codec: codec, nc: nc, pool: pool, depth: depth}
}

// Decode decodes a snapshot produced by EncodeSnapshot, or by an older writer
// that stored legacy bridges. The bridges must be contiguous.
func (r SnapshotReader[H]) Decode(data []byte) (TreeState[H], error) {
	var snapshot Snapshot
	if err := r.codec.UnmarshalInto(data, &snapshot); err != nil {
		return TreeState[H]{}, err
	}
	if snapshot.Version != SnapshotVersion {
		return TreeState[H]{}, fmt.Errorf(
			"%w: expected %d, got %d", ErrUnsupportedSnapshotVersion, SnapshotVersion, snapshot.Version)
	}
	if snapshot.Depth == 0 || tree.Level(snapshot.Depth) > tree.MaxLevel {
		return TreeState[H]{}, fmt.Errorf("%w: %d", ErrInvalidDepth, snapshot.Depth)
	}
	if snapshot.Pool != r.pool || tree.Level(snapshot.Depth) != r.depth {
		return TreeState[H]{}, fmt.Errorf(
			"%w: expected pool %s depth %d, got pool %s depth %d",
			ErrSnapshotMismatch, r.pool, r.depth, snapshot.Pool, snapshot.Depth)
	}

	state := TreeState[H]{
		Pool:  snapshot.Pool,
		Depth: tree.Level(snapshot.Depth),
	}

	fr := bytes.NewReader(snapshot.Frontier)
	frontier, err := treecodec.ReadFrontierV1(fr, r.nc, state.Depth)
	if err != nil {
		return TreeState[H]{}, fmt.Errorf("frontier: %w", err)
	}
	if fr.Len() != 0 {
		return TreeState[H]{}, fmt.Errorf("%w: %d after frontier", ErrTrailingBytes, fr.Len())
	}
	state.Frontier = frontier

	legacy := 0
	for i, encoded := range snapshot.Bridges {
		br := bytes.NewReader(encoded)
		b, err := treecodec.ReadBridge(br, r.nc)
		if err != nil {
			return TreeState[H]{}, fmt.Errorf("bridge %d: %w", i, err)
		}
		if br.Len() != 0 {
			return TreeState[H]{}, fmt.Errorf("%w: %d after bridge %d", ErrTrailingBytes, br.Len(), i)
		}
		if encoded[0] == treecodec.SerV1 {
			legacy++
		}

		if i > 0 {
			prior, ok := b.PriorPosition()
			if end := state.Bridges[i-1].Position(); !ok || prior != end {
				return TreeState[H]{}, fmt.Errorf(
					"%w: bridge %d does not start at %d", tree.ErrBridgeDiscontinuity, i, end)
			}
		}
		state.Bridges = append(state.Bridges, b)
	}

	if legacy > 0 {
		r.log.Infof("upgraded %d of %d bridges from the legacy format, pool %s", legacy, len(snapshot.Bridges), state.Pool)
	}
	r.log.Debugf("decoded %s snapshot: depth %d, size %d, bridges %d",
		state.Pool, state.Depth, state.Frontier.TreeSize(), len(state.Bridges))
	return state, nil
}
