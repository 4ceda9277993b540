package tree

import (
	"fmt"
	"maps"
	"slices"
)

// MerkleBridge spans the leaves appended between two checkpoints or marks.
//
// The bridge starts from the leaf at its prior position (absent for the first
// bridge of a tree) and ends at its frontier. Tracking holds the addresses of
// the subtrees, on the paths of the witnessed leaves, that were incomplete when
// the bridge was started. Ommers holds the values of the complete sibling
// subtrees observed while growing towards them.
type MerkleBridge[H any] struct {
	prior    *Position
	tracking map[Address]struct{}
	ommers   map[Address]H
	frontier *NonEmptyFrontier[H]
}

// NewMerkleBridge returns the first bridge of a tree, which starts with leaf
// at position 0.
func NewMerkleBridge[H any](leaf H) *MerkleBridge[H] {
	return &MerkleBridge[H]{
		tracking: map[Address]struct{}{},
		ommers:   map[Address]H{},
		frontier: NewNonEmptyFrontier(leaf),
	}
}

// MerkleBridgeFromParts assembles a bridge. The collections are copied, the
// frontier is not and must be present.
func MerkleBridgeFromParts[H any](
	prior *Position,
	tracking map[Address]struct{},
	ommers map[Address]H,
	frontier *NonEmptyFrontier[H],
) (*MerkleBridge[H], error) {
	if frontier == nil {
		return nil, ErrMissingFrontier
	}
	b := &MerkleBridge[H]{
		tracking: make(map[Address]struct{}, len(tracking)),
		ommers:   make(map[Address]H, len(ommers)),
		frontier: frontier,
	}
	if prior != nil {
		p := *prior
		b.prior = &p
	}
	maps.Copy(b.tracking, tracking)
	maps.Copy(b.ommers, ommers)
	return b, nil
}

// PriorPosition returns the position the bridge starts from. ok is false for
// the first bridge of a tree.
func (b *MerkleBridge[H]) PriorPosition() (pos Position, ok bool) {
	if b.prior == nil {
		return 0, false
	}
	return *b.prior, true
}

// Position returns the position of the last leaf in the bridge.
func (b *MerkleBridge[H]) Position() Position { return b.frontier.position }

func (b *MerkleBridge[H]) Frontier() *NonEmptyFrontier[H] { return b.frontier }

func (b *MerkleBridge[H]) Tracking() map[Address]struct{} { return maps.Clone(b.tracking) }

func (b *MerkleBridge[H]) Ommers() map[Address]H { return maps.Clone(b.ommers) }

// IsTracking reports whether addr is in the tracking set.
func (b *MerkleBridge[H]) IsTracking(addr Address) bool {
	_, ok := b.tracking[addr]
	return ok
}

// Ommer returns the observed value at addr.
func (b *MerkleBridge[H]) Ommer(addr Address) (H, bool) {
	v, ok := b.ommers[addr]
	return v, ok
}

// TrackingAddresses returns the tracking set in Address.Compare order.
func (b *MerkleBridge[H]) TrackingAddresses() []Address {
	return slices.SortedFunc(maps.Keys(b.tracking), Address.Compare)
}

// OmmerAddresses returns the addresses of the ommers in Address.Compare order.
func (b *MerkleBridge[H]) OmmerAddresses() []Address {
	return slices.SortedFunc(maps.Keys(b.ommers), Address.Compare)
}

// Fuse joins b with the bridge that immediately follows it. The result starts
// where b starts, ends where next ends, tracks what next tracks and holds the
// ommers of both.
func (b *MerkleBridge[H]) Fuse(next *MerkleBridge[H]) (*MerkleBridge[H], error) {
	prior, ok := next.PriorPosition()
	if !ok || prior != b.frontier.position {
		return nil, fmt.Errorf(
			"%w: bridge ends at %d, next starts at %s",
			ErrBridgeDiscontinuity, b.frontier.position, formatPrior(next.prior))
	}

	fused, err := MerkleBridgeFromParts(b.prior, next.tracking, b.ommers, next.frontier.Clone())
	if err != nil {
		return nil, err
	}
	maps.Copy(fused.ommers, next.ommers)
	return fused, nil
}

// Witness returns the authentication path, in a tree of the given depth, of
// the leaf at the end of prior. b must start at that leaf, and will usually be
// the fusion of every bridge after it.
//
// A sibling entirely after the bridge's frontier is empty, the one containing
// the frontier is the frontier's root at that level, and one entirely before
// the frontier must have been recorded as an ommer.
func (b *MerkleBridge[H]) Witness(hasher Hasher[H], depth Level, prior *NonEmptyFrontier[H]) ([]H, error) {
	pos, ok := b.PriorPosition()
	if !ok || pos != prior.position {
		return nil, fmt.Errorf(
			"%w: bridge starts at %s, leaf is at %d",
			ErrBridgePriorMismatch, formatPrior(b.prior), prior.position)
	}

	end := b.frontier.position
	return prior.Witness(depth, func(addr Address) (H, bool) {
		switch {
		case end < addr.StartPosition():
			return EmptyRoot(hasher, addr.Level), true
		case addr.ContainsPosition(end):
			return b.frontier.RootAt(hasher, addr.Level), true
		default:
			v, ok := b.ommers[addr]
			return v, ok
		}
	})
}

func formatPrior(p *Position) string {
	if p == nil {
		return "none"
	}
	return p.String()
}
