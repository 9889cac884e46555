package field

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// gf256Mul multiplies in GF(2^8) = GF(2)[x]/(x^8 + x^4 + x^3 + x + 1).
func gf256Mul(a, b byte) (p byte) {
	for i := 0; i < 8; i++ {
		p ^= -(b & 1) & a
		b >>= 1
		a = a<<1 ^ -(a>>7)&0x1b
	}
	return
}

func TestLift(t *testing.T) {

	t.Run("GF256", func(t *testing.T) {
		require.Equal(t, byte(0xc1), gf256Mul(0x57, 0x83))
		require.Equal(t, byte(0xfe), gf256Mul(0x57, 0x13))
	})

	for _, w := range testWidths {
		f, err := NewFieldFromWidth(w)
		require.NoError(t, err)

		t.Run(testString("Fixed", f), func(t *testing.T) {
			require.Equal(t, Zero, f.Lift(0))
			require.Equal(t, One, f.Lift(1))
			require.Equal(t, liftingGenerator(w), f.Lift(2))
			require.Equal(t, Add(liftingGenerator(w), One), f.Lift(3))
		})

		t.Run(testString("Homomorphism", f), func(t *testing.T) {
			for p := 0; p < 256; p++ {
				for q := 0; q < 256; q++ {
					lp, lq := f.Lift(byte(p)), f.Lift(byte(q))
					require.Equal(t, f.Lift(byte(p^q)), Add(lp, lq))
					require.Equal(t, f.Lift(gf256Mul(byte(p), byte(q))), f.Mul(lp, lq))
				}
			}
		})

		t.Run(testString("Injective", f), func(t *testing.T) {
			seen := map[Element]bool{}
			for v := 0; v < 256; v++ {
				seen[f.Lift(byte(v))] = true
			}
			require.Len(t, seen, 256)
		})

		t.Run(testString("LiftSlice", f), func(t *testing.T) {
			in := []byte{0, 1, 2, 0x53, 0xff}
			out := f.LiftSlice(in)
			require.Len(t, out, len(in))
			for i, b := range in {
				require.Equal(t, f.Lift(b), out[i])
			}
		})
	}

	t.Run("GeneratorDegrees", func(t *testing.T) {
		degrees := []int{30, 23, 21, 18, 14, 13, 11, 9, 7, 6, 5, 4, 3, 1}
		gen := MustNewField(4).Lift(2)
		var want uint64
		for _, d := range degrees {
			require.Equal(t, uint64(1), gen.Coeff(d))
			want |= 1 << d
		}
		require.Equal(t, want, uint64(gen))
		require.Equal(t, uint64(0), gen.Coeff(0))
	})

	t.Run("KnownAnswers", func(t *testing.T) {
		require.Equal(t, Element(0x10c3d2f4), MustNewField(4).Lift(0xff))
		require.Equal(t, Element(0x684c60edff), MustNewField(5).Lift(0x53))
		require.Equal(t, Element(0x548d97587ff0), MustNewField(6).Lift(0xff))
	})
}
