// Package extension implements simple algebraic extensions K[a]/(m(a)) of a base
// field K: number fields over Q and finite fields GF(p^k) over GF(p).
//
// Elements are polynomials in a of degree below deg m, reduced on every operation and
// shared immutably. Extensions are built once by a Builder from a modulus over the
// base field, so a defining polynomial can never refer to the field it defines.
package extension

import (
	"math/big"

	"github.com/jonathanmweiss/go-polyfactor/algebra"
	"github.com/jonathanmweiss/go-polyfactor/poly"
)

// quotient carries the arithmetic shared by all simple extensions.
type quotient[T any] struct {
	base    algebra.Field[T]
	ring    *poly.Ring[T]
	modulus *poly.Polynomial[T] // monic
}

func newQuotient[T any](base algebra.Field[T], variable string, modulus *poly.Polynomial[T]) (*quotient[T], error) {
	if modulus.Degree() < 1 {
		return nil, ErrModulusDegree
	}

	ring := poly.NewRing[T](base, poly.WithVariable[T](variable))
	m, err := poly.Map(modulus, ring, func(c T) T { return c }).Monic()
	if err != nil {
		return nil, err
	}

	return &quotient[T]{base: base, ring: ring, modulus: m}, nil
}

func (q *quotient[T]) reduce(p *poly.Polynomial[T]) *poly.Polynomial[T] {
	if p.Degree() < q.modulus.Degree() {
		return p
	}

	r, err := p.Rem(q.modulus)
	if err != nil {
		panic(err)
	}

	return r
}

// Degree is [K(a) : K].
func (q *quotient[T]) Degree() int { return q.modulus.Degree() }

// Modulus is the monic defining polynomial.
func (q *quotient[T]) Modulus() *poly.Polynomial[T] { return q.modulus }

// ElementRing is the polynomial ring elements are represented in.
func (q *quotient[T]) ElementRing() *poly.Ring[T] { return q.ring }

// Generator returns a, the class of the variable.
func (q *quotient[T]) Generator() *poly.Polynomial[T] { return q.reduce(q.ring.X()) }

// Embed maps a base field element to a constant.
func (q *quotient[T]) Embed(c T) *poly.Polynomial[T] { return q.ring.Constant(c) }

// FromCoefficients builds sum c_i a^i.
func (q *quotient[T]) FromCoefficients(cs ...T) *poly.Polynomial[T] { return q.reduce(q.ring.New(cs)) }

func (q *quotient[T]) Zero() *poly.Polynomial[T]                        { return q.ring.Zero() }
func (q *quotient[T]) One() *poly.Polynomial[T]                         { return q.reduce(q.ring.One()) }
func (q *quotient[T]) FromInt64(n int64) *poly.Polynomial[T]            { return q.ring.Constant(q.base.FromInt64(n)) }
func (q *quotient[T]) Add(a, b *poly.Polynomial[T]) *poly.Polynomial[T] { return a.Add(b) }
func (q *quotient[T]) Sub(a, b *poly.Polynomial[T]) *poly.Polynomial[T] { return a.Sub(b) }
func (q *quotient[T]) Neg(a *poly.Polynomial[T]) *poly.Polynomial[T]    { return a.Neg() }
func (q *quotient[T]) Mul(a, b *poly.Polynomial[T]) *poly.Polynomial[T] { return q.reduce(a.Mul(b)) }
func (q *quotient[T]) Equal(a, b *poly.Polynomial[T]) bool              { return a.Equal(b) }
func (q *quotient[T]) IsZero(a *poly.Polynomial[T]) bool                { return a.IsZero() }
func (q *quotient[T]) Characteristic() *big.Int                         { return q.base.Characteristic() }
func (q *quotient[T]) Format(a *poly.Polynomial[T]) string              { return a.String() }

// Inv inverts a nonzero element with the extended Euclidean algorithm.
func (q *quotient[T]) Inv(a *poly.Polynomial[T]) *poly.Polynomial[T] {
	if a.IsZero() {
		panic("zero has no inverse")
	}

	g, u, _ := poly.ExtendedGCD(a, q.modulus)
	if g.Degree() != 0 {
		panic(ErrReducibleModulus)
	}

	return q.reduce(u)
}

func (q *quotient[T]) Div(a, b *poly.Polynomial[T]) (*poly.Polynomial[T], error) {
	if b.IsZero() {
		return nil, algebra.ErrDivisionByZero
	}

	return q.Mul(a, q.Inv(b)), nil
}

func (q *quotient[T]) QuoRem(a, b *poly.Polynomial[T]) (*poly.Polynomial[T], *poly.Polynomial[T]) {
	return q.Mul(a, q.Inv(b)), q.Zero()
}

func (q *quotient[T]) Norm(a *poly.Polynomial[T]) *big.Int {
	if a.IsZero() {
		return new(big.Int)
	}

	return big.NewInt(1)
}

func (q *quotient[T]) GCD(a, b *poly.Polynomial[T]) *poly.Polynomial[T] {
	if a.IsZero() && b.IsZero() {
		return q.Zero()
	}

	return q.One()
}

func (q *quotient[T]) Canonical(a *poly.Polynomial[T]) (*poly.Polynomial[T], *poly.Polynomial[T]) {
	if a.IsZero() {
		return q.One(), a
	}

	return a, q.One()
}

// Pow raises a to e by repeated squaring.
func (q *quotient[T]) Pow(a *poly.Polynomial[T], e *big.Int) *poly.Polynomial[T] {
	x := q.One()
	for i := e.BitLen() - 1; i >= 0; i-- {
		x = q.Mul(x, x)
		if e.Bit(i) == 1 {
			x = q.Mul(x, a)
		}
	}

	return x
}

// multiplicationTrace is the trace of the K-linear map x -> a*x in the basis
// 1, a, ..., a^(n-1).
func (q *quotient[T]) multiplicationTrace(a *poly.Polynomial[T]) T {
	tr := q.base.Zero()

	basis := q.One()
	gen := q.Generator()
	for i := 0; i < q.Degree(); i++ {
		tr = q.base.Add(tr, q.Mul(a, basis).Coeff(i))
		basis = q.Mul(basis, gen)
	}

	return tr
}
