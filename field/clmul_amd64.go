//go:build amd64 && !purego

package field

import "github.com/klauspost/cpuid/v2"

var hasCLMUL = cpuid.CPU.Supports(cpuid.SSE2, cpuid.CLMUL)

//go:noescape
func clmulAsm(a, b uint64) (hi, lo uint64)

// clmul returns the 128-bit carry-less product of a and b, using
// PCLMULQDQ when the CPU supports it.
func clmul(a, b uint64) (hi, lo uint64) {
	if hasCLMUL {
		return clmulAsm(a, b)
	}
	return clmulGeneric(a, b)
}
