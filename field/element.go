package field

import "fmt"

// Element is an element of a binary extension field GF(2^k), stored as the
// bitmask of the coefficients of its polynomial representation: bit i holds
// the coefficient of x^i. Only the low k bits are significant and an Element
// is only meaningful together with the Field that produced it.
type Element uint64

// Zero and One are the neutral elements of every supported field.
const (
	Zero Element = 0
	One  Element = 1
)

// Add returns a + b.
func Add(a, b Element) Element {
	return a ^ b
}

// Sub returns a - b, which equals a + b in characteristic 2.
func Sub(a, b Element) Element {
	return a ^ b
}

// IsZero returns true if a is the zero element.
func (a Element) IsZero() bool {
	return a == 0
}

// Coeff returns the coefficient of x^i of a.
func (a Element) Coeff(i int) uint64 {
	return uint64(a>>uint(i)) & 1
}

func (a Element) String() string {
	return fmt.Sprintf("%#x", uint64(a))
}

// Wide is an unreduced carry-less product of two elements.
// Sums of Wide values can be reduced once with [Field.Reduce].
type Wide struct {
	Hi, Lo uint64
}

// Xor returns w + v.
func (w Wide) Xor(v Wide) Wide {
	return Wide{Hi: w.Hi ^ v.Hi, Lo: w.Lo ^ v.Lo}
}
