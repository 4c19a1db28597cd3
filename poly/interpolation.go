package poly

import (
	"errors"

	"github.com/jonathanmweiss/go-polyfactor/algebra"
)

var (
	errPointsSizeMismatch = errors.New("points size mismatch")
	errNonUniqueXs        = errors.New("non-unique x values")
	errNoPoints           = errors.New("no interpolation points")
)

// Interpolator builds the unique polynomial of degree < n through n points over a field.
type Interpolator[T any] struct {
	r   *Ring[T]
	fld algebra.Field[T]
}

func NewInterpolator[T any](r *Ring[T]) *Interpolator[T] {
	return &Interpolator[T]{r: r, fld: algebra.MustField("Interpolate", r.k)}
}

// Interpolate follows the Lagrange method in O(n^2):
// 1. m(x) = prod (x - x_i).
// 2. q_i(x) = m(x) / (x - x_i), by synthetic division.
// 3. l_i = q_i / q_i(x_i).
// 4. The result is sum y_i * l_i.
func (intr *Interpolator[T]) Interpolate(xs, ys []T) (*Polynomial[T], error) {
	if err := validateInterpolationPoints(intr.fld, xs, ys); err != nil {
		return nil, err
	}

	k := intr.fld
	m := ProductOfLinears(intr.r, xs)

	sum := make([]T, len(xs))
	for i := range sum {
		sum[i] = k.Zero()
	}

	for i, xi := range xs {
		qi := intr.mDivMi(m, xi)

		// l_i(x) * y_i, with l_i = q_i / q_i(x_i).
		s := k.Mul(ys[i], k.Inv(evalSlice(k, qi, xi)))
		for j, c := range qi {
			sum[j] = k.Add(sum[j], k.Mul(c, s))
		}
	}

	return intr.r.wrap(sum), nil
}

// mDivMi divides m by (x - u) knowing the remainder is zero.
func (intr *Interpolator[T]) mDivMi(m *Polynomial[T], u T) []T {
	k := intr.fld

	q := make([]T, len(m.coeffs)-1)
	carry := k.Zero()
	for i := len(m.coeffs) - 1; i > 0; i-- {
		carry = k.Add(m.coeffs[i], k.Mul(carry, u))
		q[i-1] = carry
	}

	return q
}

func evalSlice[T any](k algebra.Ring[T], cs []T, x T) T {
	result := k.Zero()
	for i := len(cs) - 1; i >= 0; i-- {
		result = k.Add(cs[i], k.Mul(x, result))
	}

	return result
}

// ProductOfLinears computes prod (x - r_i).
func ProductOfLinears[T any](r *Ring[T], roots []T) *Polynomial[T] {
	k := r.k

	coeffs := make([]T, len(roots)+1)
	coeffs[0] = k.One()
	for i := 1; i < len(coeffs); i++ {
		coeffs[i] = k.Zero()
	}

	deg := 0
	for _, root := range roots {
		neg := k.Neg(root)
		for j := deg; j >= 0; j-- {
			coeffs[j+1] = k.Add(coeffs[j+1], coeffs[j])
			coeffs[j] = k.Mul(coeffs[j], neg)
		}
		deg++
	}

	return r.wrap(coeffs)
}

// NewtonInterpolate builds the interpolating polynomial from divided differences
// using exact division only, so it works over any integral domain. When some
// divided difference is not exact there is no interpolant with coefficients in the
// domain and the error is algebra.ErrNotDivisible.
func NewtonInterpolate[T any](r *Ring[T], xs, ys []T) (*Polynomial[T], error) {
	dom := algebra.MustIntegralDomain("NewtonInterpolate", r.k)
	if err := validateInterpolationPoints(dom, xs, ys); err != nil {
		return nil, err
	}

	n := len(xs)
	d := append([]T(nil), ys...)
	for j := 1; j < n; j++ {
		for i := n - 1; i >= j; i-- {
			q, err := dom.Div(dom.Sub(d[i], d[i-1]), dom.Sub(xs[i], xs[i-j]))
			if err != nil {
				return nil, err
			}
			d[i] = q
		}
	}

	x := r.X()
	p := r.Constant(d[n-1])
	for i := n - 2; i >= 0; i-- {
		p = p.Mul(x.Sub(r.Constant(xs[i]))).Add(r.Constant(d[i]))
	}

	return p, nil
}

func validateInterpolationPoints[T any](k algebra.Ring[T], xs, ys []T) error {
	if len(xs) != len(ys) {
		return errPointsSizeMismatch
	}

	if len(xs) == 0 {
		return errNoPoints
	}

	for i := range xs {
		for j := i + 1; j < len(xs); j++ {
			if k.Equal(xs[i], xs[j]) {
				return errNonUniqueXs
			}
		}
	}

	return nil
}
