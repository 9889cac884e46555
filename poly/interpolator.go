package poly

import (
	"github.com/mpcith/banquet/field"
)

// Interpolator stores the Lagrange basis of a fixed set of points, so that
// polynomials through these points can be recovered for many sets of values
// at the cost of O(m^2) multiplications each.
type Interpolator struct {
	*Evaluator
	x     []field.Element
	basis LagrangeBasis
}

// NewInterpolator precomputes the Lagrange basis of the points x over f.
func NewInterpolator(f *field.Field, x []field.Element) (itp *Interpolator, err error) {
	itp = &Interpolator{Evaluator: NewEvaluator(f)}

	itp.x = make([]field.Element, len(x))
	copy(itp.x, x)

	if itp.basis, err = itp.PrecomputeLagrangeBasis(itp.x); err != nil {
		return nil, err
	}

	return
}

// NewInterpolatorFromGenerator returns the Interpolator of the first n powers
// of the generator of f, see [field.Field.FirstNPowersOfGenerator].
func NewInterpolatorFromGenerator(f *field.Field, n int) (*Interpolator, error) {
	return NewInterpolator(f, f.FirstNPowersOfGenerator(n))
}

// XValues returns a copy of the interpolation points.
func (itp *Interpolator) XValues() []field.Element {
	x := make([]field.Element, len(itp.x))
	copy(x, itp.x)
	return x
}

// Basis returns the precomputed Lagrange basis. It must not be modified.
func (itp *Interpolator) Basis() LagrangeBasis {
	return itp.basis
}

// Interpolate returns the polynomial of degree smaller than the number of
// points taking the values y at the points.
func (itp *Interpolator) Interpolate(y []field.Element) (Poly, error) {
	return itp.Evaluator.Interpolate(itp.basis, y)
}
