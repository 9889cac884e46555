package poly

import (
	"errors"
	"fmt"

	"github.com/mpcith/banquet/field"
)

// ErrDuplicatePoint is returned when interpolation points are not distinct.
var ErrDuplicatePoint = errors.New("duplicate interpolation point")

// Evaluator performs polynomial operations over a fixed field.
// It holds no mutable state and is safe for concurrent use.
type Evaluator struct {
	f *field.Field
}

// NewEvaluator returns an Evaluator over f.
func NewEvaluator(f *field.Field) *Evaluator {
	return &Evaluator{f: f}
}

// Field returns the field of the evaluator.
func (eval *Evaluator) Field() *field.Field {
	return eval.f
}

// BuildFromRoots returns the monic polynomial prod_i (X - roots[i]).
// An empty list of roots gives the constant polynomial 1.
func (eval *Evaluator) BuildFromRoots(roots []field.Element) Poly {
	f := eval.f
	p := make(Poly, len(roots)+1)
	p[0] = field.One

	for deg, root := range roots {
		// p <- p * (X - root) in place. Sweeping from high to low index,
		// p[i-1] still holds its previous value when p[i] is updated.
		p[deg+1] = p[deg]
		for i := deg; i >= 1; i-- {
			p[i] = field.Add(f.Mul(p[i], root), p[i-1])
		}
		p[0] = f.Mul(p[0], root)
	}

	p[len(roots)] = field.One
	return p
}

// PrecomputeLagrangeBasis returns the Lagrange basis of the points x.
// It returns ErrEmptyInput if x is empty and ErrDuplicatePoint if two
// points are equal.
func (eval *Evaluator) PrecomputeLagrangeBasis(x []field.Element) (LagrangeBasis, error) {
	f := eval.f
	m := len(x)
	if m == 0 {
		return nil, fmt.Errorf("%w: no interpolation point", field.ErrEmptyInput)
	}

	basis := make(LagrangeBasis, m)
	xExceptK := make([]field.Element, 0, m-1)

	for k := 0; k < m; k++ {
		den := field.One
		xExceptK = xExceptK[:0]
		for j := 0; j < m; j++ {
			if j != k {
				den = f.Mul(den, field.Sub(x[k], x[j]))
				xExceptK = append(xExceptK, x[j])
			}
		}

		if den.IsZero() {
			return nil, fmt.Errorf("%w: x[%d] = %v", ErrDuplicatePoint, k, x[k])
		}

		basis[k] = eval.BuildFromRoots(xExceptK)
		eval.MulScalarInPlace(basis[k], f.Inv(den))
	}

	return basis, nil
}

// Interpolate returns sum_k y[k] * basis[k], the unique polynomial of degree
// smaller than len(y) taking the value y[k] at the k-th point of the basis.
func (eval *Evaluator) Interpolate(basis LagrangeBasis, y []field.Element) (Poly, error) {
	if len(basis) != len(y) {
		return nil, fmt.Errorf("%w: %d basis polynomials for %d values", field.ErrSizeMismatch, len(basis), len(y))
	}
	if len(y) == 0 {
		return nil, fmt.Errorf("%w: no value to interpolate", field.ErrEmptyInput)
	}

	f := eval.f
	res := NewPoly(len(basis[0]))
	for k, yk := range y {
		if len(basis[k]) != len(res) {
			return nil, fmt.Errorf("%w: basis polynomial %d has %d coefficients, expected %d", field.ErrSizeMismatch, k, len(basis[k]), len(res))
		}
		for i, c := range basis[k] {
			res[i] = field.Add(res[i], f.Mul(c, yk))
		}
	}

	return res, nil
}

// Eval returns p(x) using Horner's method.
func (eval *Evaluator) Eval(p Poly, x field.Element) field.Element {
	f := eval.f
	var acc field.Element
	for i := len(p) - 1; i >= 0; i-- {
		acc = field.Add(f.Mul(acc, x), p[i])
	}
	return acc
}

// Add returns a + b. It returns ErrSizeMismatch if a and b have different lengths.
func (eval *Evaluator) Add(a, b Poly) (Poly, error) {
	res := a.CopyNew()
	if err := eval.AddInPlace(res, b); err != nil {
		return nil, err
	}
	return res, nil
}

// AddInPlace sets acc to acc + b. It returns ErrSizeMismatch if acc and b
// have different lengths, in which case acc is left unchanged.
func (eval *Evaluator) AddInPlace(acc, b Poly) error {
	if len(acc) != len(b) {
		return fmt.Errorf("%w: adding vectors of sizes %d and %d", field.ErrSizeMismatch, len(acc), len(b))
	}
	for i := range acc {
		acc[i] = field.Add(acc[i], b[i])
	}
	return nil
}

// MulScalar returns s * p.
func (eval *Evaluator) MulScalar(p Poly, s field.Element) Poly {
	res := p.CopyNew()
	eval.MulScalarInPlace(res, s)
	return res
}

// MulScalarInPlace sets p to s * p.
func (eval *Evaluator) MulScalarInPlace(p Poly, s field.Element) {
	f := eval.f
	for i := range p {
		p[i] = f.Mul(p[i], s)
	}
}

// Mul returns the product a * b, of length len(a) + len(b) - 1.
// The product with an empty polynomial is empty.
func (eval *Evaluator) Mul(a, b Poly) Poly {
	if len(a) == 0 || len(b) == 0 {
		return Poly{}
	}

	f := eval.f
	acc := make([]field.Wide, len(a)+len(b)-1)
	for i := range a {
		for j := range b {
			acc[i+j] = acc[i+j].Xor(f.MulWide(a[i], b[j]))
		}
	}

	res := make(Poly, len(acc))
	for i := range acc {
		res[i] = f.Reduce(acc[i])
	}
	return res
}

// DotProduct returns sum_i u[i] * v[i]. The products are accumulated
// unreduced and reduced once. It returns ErrSizeMismatch if u and v have
// different lengths.
func (eval *Evaluator) DotProduct(u, v []field.Element) (field.Element, error) {
	if len(u) != len(v) {
		return field.Zero, fmt.Errorf("%w: dot product of vectors of sizes %d and %d", field.ErrSizeMismatch, len(u), len(v))
	}

	f := eval.f
	var acc field.Wide
	for i := range u {
		acc = acc.Xor(f.MulWide(u[i], v[i]))
	}
	return f.Reduce(acc), nil
}
