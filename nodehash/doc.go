// Package nodehash provides the canonical 32 byte encodings of the note
// commitment tree node values of the two shielded pools.
//
// Sapling nodes are elements of the BLS12-381 scalar field and Orchard nodes
// are elements of the Pallas base field. Both are encoded little endian, and a
// value is only accepted if it is strictly below the field modulus. Non
// canonical encodings are rejected, never reduced.
//
// TestNode is an 8 byte node hashed with SipHash-1-3, for trees whose
// contents only need to be distinct and cheap to compute.
package nodehash
