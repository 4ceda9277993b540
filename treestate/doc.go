// Package treestate carries note commitment tree state between processes.
//
// A Snapshot is a CBOR envelope holding the binary encodings of a tree's
// frontier and bridges. Reading a snapshot accepts bridges of either wire
// version, and writing one always produces the current version, so reading
// and re-writing a snapshot upgrades it.
//
// An Anchor is a signed commitment to the root of a tree at a given size. It
// is published as a COSE Sign1 message with the root removed from the
// payload. A verifier must obtain the frontier for the anchored size and
// recompute the root before the signature will verify.
package treestate
