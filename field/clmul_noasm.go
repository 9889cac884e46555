//go:build !amd64 || purego

package field

const hasCLMUL = false

func clmul(a, b uint64) (hi, lo uint64) {
	return clmulGeneric(a, b)
}
