package treecodec

import (
	"fmt"
	"io"

	"github.com/forestrie/go-notetree/tree"
)

// Bridge serialization versions.
const (
	SerV1 byte = 1
	SerV2 byte = 2
)

// WriteBridge writes b, prefixed with the version tag, in the current format.
func WriteBridge[H any](w io.Writer, nc NodeCodec[H], b *tree.MerkleBridge[H]) error {
	if err := writeByte(w, SerV2); err != nil {
		return err
	}
	return WriteBridgeV2(w, nc, b)
}

// ReadBridge reads a version tagged bridge of either version.
func ReadBridge[H any](r io.Reader, nc NodeCodec[H]) (*tree.MerkleBridge[H], error) {
	version, err := readByte(r)
	if err != nil {
		return nil, err
	}
	switch version {
	case SerV1:
		return ReadBridgeV1(r, nc)
	case SerV2:
		return ReadBridgeV2(r, nc)
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnrecognizedVersion, version)
	}
}

// WriteBridgeV2 writes the body of a version 2 bridge. Tracked addresses and
// ommers are written in tree.Address.Compare order so that equal bridges have
// equal encodings.
func WriteBridgeV2[H any](w io.Writer, nc NodeCodec[H], b *tree.MerkleBridge[H]) error {
	prior, hasPrior := b.PriorPosition()
	err := writeOptional(w, hasPrior, func(w io.Writer) error { return WritePosition(w, prior) })
	if err != nil {
		return err
	}

	if err = writeVector(w, b.TrackingAddresses(), WriteAddress); err != nil {
		return err
	}
	err = writeVector(w, b.OmmerAddresses(), func(w io.Writer, addr tree.Address) error {
		if err := WriteAddress(w, addr); err != nil {
			return err
		}
		value, _ := b.Ommer(addr)
		return nc.WriteNode(w, value)
	})
	if err != nil {
		return err
	}

	return WriteNonEmptyFrontierV1(w, nc, b.Frontier())
}

type ommerEntry[H any] struct {
	addr  tree.Address
	value H
}

// ReadBridgeV2 reads the body of a version 2 bridge.
func ReadBridgeV2[H any](r io.Reader, nc NodeCodec[H]) (*tree.MerkleBridge[H], error) {
	prior, err := readPrior(r)
	if err != nil {
		return nil, err
	}

	addrs, err := readVector(r, ReadAddress)
	if err != nil {
		return nil, err
	}
	entries, err := readVector(r, func(r io.Reader) (ommerEntry[H], error) {
		addr, err := ReadAddress(r)
		if err != nil {
			return ommerEntry[H]{}, err
		}
		value, err := nc.ReadNode(r)
		if err != nil {
			return ommerEntry[H]{}, err
		}
		return ommerEntry[H]{addr: addr, value: value}, nil
	})
	if err != nil {
		return nil, err
	}

	frontier, err := ReadNonEmptyFrontierV1(r, nc)
	if err != nil {
		return nil, err
	}

	tracking := make(map[tree.Address]struct{}, len(addrs))
	for _, addr := range addrs {
		tracking[addr] = struct{}{}
	}
	ommers := make(map[tree.Address]H, len(entries))
	for _, e := range entries {
		ommers[e.addr] = e.value
	}
	return tree.MerkleBridgeFromParts(prior, tracking, ommers, frontier)
}

func readPrior(r io.Reader) (*tree.Position, error) {
	pos, ok, err := readOptional(r, ReadPosition)
	if err != nil || !ok {
		return nil, err
	}
	return &pos, nil
}
