package field

// clmulGeneric returns the 128-bit carry-less product of a and b.
// It runs in constant time: every bit of b selects a shifted copy of a
// through a mask instead of a branch.
func clmulGeneric(a, b uint64) (hi, lo uint64) {
	for i := uint(0); i < 64; i++ {
		mask := -((b >> i) & 1)
		lo ^= (a << i) & mask
		hi ^= (a >> (64 - i)) & mask // a >> 64 == 0 for i == 0
	}
	return
}
