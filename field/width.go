package field

import "fmt"

// Width selects one of the supported binary extension fields.
// Its value is the byte size of the field elements.
type Width int

const (
	// GF32 is GF(2^32) = GF(2)[x]/(x^32 + x^7 + x^3 + x^2 + 1).
	GF32 Width = 4
	// GF40 is GF(2^40) = GF(2)[x]/(x^40 + x^5 + x^4 + x^3 + 1).
	GF40 Width = 5
	// GF48 is GF(2^48) = GF(2)[x]/(x^48 + x^5 + x^3 + x^2 + 1).
	GF48 Width = 6
)

const (
	modulus32 uint64 = 1<<32 | 1<<7 | 1<<3 | 1<<2 | 1
	modulus40 uint64 = 1<<40 | 1<<5 | 1<<4 | 1<<3 | 1
	modulus48 uint64 = 1<<48 | 1<<5 | 1<<3 | 1<<2 | 1

	mask32 uint64 = 1<<32 - 1
	mask40 uint64 = 1<<40 - 1
	mask48 uint64 = 1<<48 - 1
)

// WidthFromLambda returns the Width of the field whose elements are lambda bytes long.
func WidthFromLambda(lambda int) (Width, error) {
	w := Width(lambda)
	if !w.Valid() {
		return 0, fmt.Errorf("%w: %d (must be 4, 5 or 6)", ErrUnsupportedLambda, lambda)
	}
	return w, nil
}

// Valid returns true if w is one of GF32, GF40 or GF48.
func (w Width) Valid() bool {
	return w == GF32 || w == GF40 || w == GF48
}

// ByteSize returns the number of bytes of a serialized element.
// It panics if w is not valid.
func (w Width) ByteSize() int {
	w.mustBeValid()
	return int(w)
}

// Bits returns the extension degree k of GF(2^k).
// It panics if w is not valid.
func (w Width) Bits() int {
	w.mustBeValid()
	return 8 * int(w)
}

// mustBeValid panics unless w is one of GF32, GF40 or GF48. The zero
// Width, as found in a Field that was not built by a constructor, is invalid.
func (w Width) mustBeValid() {
	if !w.Valid() {
		panic(fmt.Errorf("invalid width %d", int(w)))
	}
}

// Modulus returns the irreducible polynomial of the field, as a bitmask
// including the leading x^k term.
func (w Width) Modulus() uint64 {
	switch w {
	case GF32:
		return modulus32
	case GF40:
		return modulus40
	case GF48:
		return modulus48
	default:
		panic(fmt.Errorf("invalid width %d", int(w)))
	}
}

// Mask returns the bitmask of the significant bits of an element.
func (w Width) Mask() uint64 {
	return 1<<w.Bits() - 1
}

func (w Width) String() string {
	if !w.Valid() {
		return fmt.Sprintf("Width(%d)", int(w))
	}
	return fmt.Sprintf("GF(2^%d)", w.Bits())
}

// barrett reduces the 128-bit carry-less product hi:lo modulo the degree-k
// polynomial p. The quotient estimate uses mu = p, which is exact because
// floor(x^2k / p) = p whenever deg(p - x^k) < k/2.
func barrett(hi, lo uint64, k uint, p, mask uint64) uint64 {
	q1 := lo>>k | hi<<(64-k)
	t1hi, t1lo := clmul(q1, p)
	q2 := t1lo>>k | t1hi<<(64-k)
	_, t2 := clmul(q2, p)
	return (lo ^ t2) & mask
}

func reduce32(hi, lo uint64) uint64 {
	return barrett(hi, lo, 32, modulus32, mask32)
}

func reduce40(hi, lo uint64) uint64 {
	return barrett(hi, lo, 40, modulus40, mask40)
}

func reduce48(hi, lo uint64) uint64 {
	return barrett(hi, lo, 48, modulus48, mask48)
}

// reduce dispatches on the width. The switch depends only on the field,
// never on the operands.
func (w Width) reduce(hi, lo uint64) Element {
	switch w {
	case GF32:
		return Element(reduce32(hi, lo))
	case GF40:
		return Element(reduce40(hi, lo))
	case GF48:
		return Element(reduce48(hi, lo))
	default:
		panic(fmt.Errorf("invalid width %d", int(w)))
	}
}
