package field

import "fmt"

// Images of the generator x of GF(2^8) = GF(2)[x]/(x^8 + x^4 + x^3 + x + 1)
// under the ring embeddings into each extension field.
const (
	// y^30 + y^23 + y^21 + y^18 + y^14 + y^13 + y^11 + y^9 + y^7 + y^6 + y^5 + y^4 + y^3 + y
	liftGenerator32 Element = 0x40a46afa
	// y^31 + y^30 + y^27 + y^25 + y^22 + y^21 + y^20 + y^18 + y^15 + y^9 + y^6 + y^4 + y^2
	liftGenerator40 Element = 0xca748254
	// y^45 + y^43 + y^40 + y^37 + y^36 + y^35 + y^34 + y^33 + y^31 + y^30 + y^29 + y^28 +
	// y^24 + y^21 + y^20 + y^19 + y^16 + y^14 + y^13 + y^11 + y^10 + y^7 + y^3 + y^2
	liftGenerator48 Element = 0x293ef1396c8c
)

func liftingGenerator(w Width) Element {
	switch w {
	case GF32:
		return liftGenerator32
	case GF40:
		return liftGenerator40
	case GF48:
		return liftGenerator48
	default:
		panic(fmt.Errorf("invalid width %d", int(w)))
	}
}

// initLiftingTable fills the table by doubling: the entries [2^b, 2^(b+1))
// are the entries [0, 2^b) plus gen^b. This is sufficient because the
// embedding is additive.
func (f *Field) initLiftingTable(gen Element) {
	f.lut[0] = Zero
	f.lut[1] = One

	pow := gen
	for bit := 1; bit < 8; bit++ {
		start := 1 << bit
		for idx := 0; idx < start; idx++ {
			f.lut[start+idx] = Add(f.lut[idx], pow)
		}
		pow = f.Mul(pow, gen)
	}
}

// Lift maps the GF(2^8) element v into the field.
// It panics if f was not built by one of the constructors.
func (f *Field) Lift(v byte) Element {
	f.width.mustBeValid()
	return f.lut[v]
}

// LiftSlice lifts every byte of v.
func (f *Field) LiftSlice(v []byte) []Element {
	f.width.mustBeValid()
	out := make([]Element, len(v))
	for i, b := range v {
		out[i] = f.lut[b]
	}
	return out
}
