// Package treecodec reads and writes the binary encodings of frontiers and
// bridges.
//
// All integers are little endian. Optional values carry a one byte presence
// flag and sequences carry a CompactSize element count:
//
//	Position         u64
//	Level            u8
//	Address          Level || u64 index
//	Optional(T)      0x00 | 0x01 || T
//	Vector(T)        CompactSize(n) || T * n
//
// Frontiers have two generations. The v0 layout is the fixed depth commitment
// tree, which can only be read. The v1 layout records the position, then the
// leaf and ommers with the parity special case described on
// WriteNonEmptyFrontierV1.
//
// Bridges are prefixed by a version tag. Version 2 records the tracked
// addresses and the ommers explicitly and is always the version written.
// Version 1 recorded authentication fragments from which the addresses have to
// be derived again, see ReconstructBridge.
//
// Node values are read and written by a NodeCodec, which is responsible for
// rejecting non canonical encodings.
package treecodec
