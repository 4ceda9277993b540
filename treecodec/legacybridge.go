package treecodec

import (
	"fmt"
	"io"

	"github.com/forestrie/go-notetree/tree"
)

// AuthFragment is the version 1 record of a partially built authentication
// path. It holds the position being witnessed, how many of the levels at which
// that position expects a right sibling have been passed, and the sibling
// values observed on the way, lowest level first.
type AuthFragment[H any] struct {
	Position       tree.Position
	LevelsObserved int
	Values         []H
}

// ReadBridgeV1 reads the body of a version 1 bridge and reconstructs it with
// ReconstructBridge.
//
// Each fragment is preceded by a copy of its position, and the two must agree.
func ReadBridgeV1[H any](r io.Reader, nc NodeCodec[H]) (*tree.MerkleBridge[H], error) {
	prior, err := readPrior(r)
	if err != nil {
		return nil, err
	}

	fragments, err := readVector(r, func(r io.Reader) (AuthFragment[H], error) {
		outer, err := ReadPosition(r)
		if err != nil {
			return AuthFragment[H]{}, err
		}
		fragment, err := readAuthFragmentV1(r, nc)
		if err != nil {
			return AuthFragment[H]{}, err
		}
		if fragment.Position != outer {
			return AuthFragment[H]{}, fmt.Errorf(
				"%w: expected %d, got %d", ErrFragmentPositionMismatch, outer, fragment.Position)
		}
		return fragment, nil
	})
	if err != nil {
		return nil, err
	}

	frontier, err := ReadNonEmptyFrontierV1(r, nc)
	if err != nil {
		return nil, err
	}
	return ReconstructBridge(prior, fragments, frontier)
}

func readAuthFragmentV1[H any](r io.Reader, nc NodeCodec[H]) (AuthFragment[H], error) {
	position, err := ReadPosition(r)
	if err != nil {
		return AuthFragment[H]{}, err
	}
	levelsObserved, err := ReadUint64Count(r)
	if err != nil {
		return AuthFragment[H]{}, err
	}
	values, err := readVector(r, nc.ReadNode)
	if err != nil {
		return AuthFragment[H]{}, err
	}
	return AuthFragment[H]{Position: position, LevelsObserved: levelsObserved, Values: values}, nil
}

// ReconstructBridge derives the tracked addresses and ommers of a bridge from
// its version 1 auth fragments.
//
// For each fragment, the first LevelsObserved+1 levels of
// tree.IncompleteLevels(Position) are the levels it has information for. The
// ancestor at the highest of them is the subtree still being built, and is
// tracked. Walking the remaining levels down from the top, each is paired with
// the values taken from the end, and the sibling of the ancestor at that level
// holds the value. Levels or values left over once either runs out are
// ignored.
//
// Fragments only ever add entries. An address that already has an ommer keeps
// the first value seen for it.
func ReconstructBridge[H any](
	prior *tree.Position, fragments []AuthFragment[H], frontier *tree.NonEmptyFrontier[H],
) (*tree.MerkleBridge[H], error) {
	tracking := map[tree.Address]struct{}{}
	ommers := map[tree.Address]H{}

	for _, fragment := range fragments {
		var levels []tree.Level
		for l := range tree.IncompleteLevels(fragment.Position) {
			if len(levels) > fragment.LevelsObserved {
				break
			}
			levels = append(levels, l)
		}
		if len(levels) == 0 {
			return nil, fmt.Errorf("%w: position %d", ErrMalformedFragment, fragment.Position)
		}

		top := len(levels) - 1
		tracking[tree.AbovePosition(levels[top], fragment.Position)] = struct{}{}

		values := fragment.Values
		for i, j := top-1, len(values)-1; i >= 0 && j >= 0; i, j = i-1, j-1 {
			addr := tree.AbovePosition(levels[i], fragment.Position).Sibling()
			if _, ok := ommers[addr]; !ok {
				ommers[addr] = values[j]
			}
		}
	}

	return tree.MerkleBridgeFromParts(prior, tracking, ommers, frontier)
}
