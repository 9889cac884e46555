// Package poly implements polynomials with coefficients in the binary
// extension fields of package field: root polynomials, Lagrange
// interpolation with precomputed bases, Horner evaluation and vector
// arithmetic with lazy reduction.
package poly

import (
	"github.com/mpcith/banquet/field"
)

// Poly is a polynomial in coefficient form: p[i] is the coefficient of X^i.
type Poly []field.Element

// NewPoly returns the zero polynomial with n coefficients.
func NewPoly(n int) Poly {
	return make(Poly, n)
}

// Degree returns the index of the highest non-zero coefficient,
// or -1 for the zero polynomial.
func (p Poly) Degree() int {
	for i := len(p) - 1; i >= 0; i-- {
		if !p[i].IsZero() {
			return i
		}
	}
	return -1
}

// CopyNew returns a deep copy of p.
func (p Poly) CopyNew() Poly {
	q := make(Poly, len(p))
	copy(q, p)
	return q
}

// Equal returns true if p and q have the same length and coefficients.
func (p Poly) Equal(q Poly) bool {
	if len(p) != len(q) {
		return false
	}
	for i := range p {
		if p[i] != q[i] {
			return false
		}
	}
	return true
}

// LagrangeBasis holds, for each interpolation point x_k, the polynomial
// L_k(X) = prod_{j != k} (X - x_j) / (x_k - x_j).
type LagrangeBasis []Poly
