package tree

import "math/bits"

// BitLength returns the number of bits needed to represent num.
func BitLength(num uint64) int {
	return bits.Len64(num)
}

// OnesCount returns the number of set bits in num.
func OnesCount(num uint64) int {
	return bits.OnesCount64(num)
}

// TrailingOnes returns the number of consecutive set bits at the low end of num.
func TrailingOnes(num uint64) int {
	return bits.TrailingZeros64(^num)
}
