// Package field implements arithmetic in the binary extension fields GF(2^32),
// GF(2^40) and GF(2^48) used by the Banquet MPC-in-the-head signature, together
// with the embedding of GF(2^8) into them.
//
// A [Field] is immutable once constructed. Operations never touch global state,
// so fields of different widths can be used concurrently.
package field

import (
	"fmt"

	"github.com/mpcith/banquet/params"
)

// Field is the configuration of one extension field: its width, which
// selects the modulus and the reduction, and the table lifting GF(2^8)
// into it. The zero value is not usable: its methods panic.
type Field struct {
	width Width
	lut   [256]Element
}

// NewField returns the Field whose elements are lambda bytes long.
// It returns ErrUnsupportedLambda unless lambda is 4, 5 or 6.
func NewField(lambda int) (*Field, error) {
	w, err := WidthFromLambda(lambda)
	if err != nil {
		return nil, err
	}
	return NewFieldFromWidth(w)
}

// MustNewField is like NewField but panics on error.
func MustNewField(lambda int) *Field {
	f, err := NewField(lambda)
	if err != nil {
		panic(err)
	}
	return f
}

// NewFieldFromWidth returns the Field of width w.
func NewFieldFromWidth(w Width) (*Field, error) {
	if !w.Valid() {
		return nil, fmt.Errorf("%w: %v", ErrUnsupportedLambda, w)
	}
	f := &Field{width: w}
	f.initLiftingTable(liftingGenerator(w))
	return f, nil
}

// NewFieldFromParameterSet returns the Field selected by the lambda of the
// Banquet parameter set ps.
func NewFieldFromParameterSet(ps params.ParameterSet) (*Field, error) {
	inst, err := params.Get(ps)
	if err != nil {
		return nil, err
	}
	return NewField(inst.Lambda)
}

// Width returns the width of the field.
func (f *Field) Width() Width {
	return f.width
}

// Lambda returns the byte size of the field elements, as in [params.Instance].
func (f *Field) Lambda() int {
	return int(f.width)
}

// ByteSize returns the number of bytes of a serialized element.
func (f *Field) ByteSize() int {
	return f.width.ByteSize()
}

// Bits returns the extension degree k of GF(2^k).
func (f *Field) Bits() int {
	return f.width.Bits()
}

// Modulus returns the irreducible polynomial of the field.
func (f *Field) Modulus() uint64 {
	return f.width.Modulus()
}

// NewElement returns the element whose coefficient bitmask is v, truncated
// to the width of the field.
func (f *Field) NewElement(v uint64) Element {
	return Element(v & f.width.Mask())
}

// Mul returns a * b.
func (f *Field) Mul(a, b Element) Element {
	hi, lo := clmul(uint64(a), uint64(b))
	return f.width.reduce(hi, lo)
}

// Square returns a * a.
func (f *Field) Square(a Element) Element {
	return f.Mul(a, a)
}

// MulWide returns the unreduced product of a and b.
func (f *Field) MulWide(a, b Element) Wide {
	hi, lo := clmul(uint64(a), uint64(b))
	return Wide{Hi: hi, Lo: lo}
}

// Reduce reduces w modulo the field polynomial.
func (f *Field) Reduce(w Wide) Element {
	return f.width.reduce(w.Hi, w.Lo)
}

// Inv returns the multiplicative inverse of a, computed as a^(2^k - 2).
// The exponentiation chain is fixed by k, so the running time does not
// depend on a. Inv(0) returns 0.
func (f *Field) Inv(a Element) Element {
	// r = a^(2^j - 1) after iteration j.
	r := a
	for j := 1; j < f.Bits()-1; j++ {
		r = f.Mul(f.Square(r), a)
	}
	return f.Square(r)
}

// Div returns a / b. Division by zero returns zero.
func (f *Field) Div(a, b Element) Element {
	return f.Mul(a, f.Inv(b))
}

// FirstNPowersOfGenerator returns x, x^2, ..., x^n where x is the element 2.
// The values are distinct for n < 2^k - 1 and serve as interpolation points.
// A non-positive n returns an empty slice.
func (f *Field) FirstNPowersOfGenerator(n int) []Element {
	if n < 0 {
		n = 0
	}
	powers := make([]Element, n)
	x := Element(2)
	gen := x
	for i := range powers {
		powers[i] = gen
		gen = f.Mul(gen, x)
	}
	return powers
}

func (f *Field) String() string {
	return f.width.String()
}
