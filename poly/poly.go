// Package poly implements dense univariate polynomials over any coefficient
// structure from package algebra, together with division, GCD, resultants and
// square-free decomposition.
//
// A Polynomial carries a pointer to the Ring it belongs to; the ring holds the
// coefficient structure and the multiplication primitive. Polynomials are immutable:
// every operation returns a freshly allocated result in canonical form (no trailing
// zero coefficients). A Ring is itself an algebra structure, so polynomials can be
// used as coefficients of another polynomial ring (e.g. Z[y][x]).
package poly

import (
	"errors"
	"math"
	"math/big"
	"strconv"
	"strings"

	"github.com/jonathanmweiss/go-polyfactor/algebra"
)

// DegreeZero is the degree of the zero polynomial. It never takes part in degree
// arithmetic; test IsZero first.
const DegreeZero = math.MinInt

var (
	ErrZeroPolynomial = errors.New("zero polynomial")
	ErrLeadNotUnit    = errors.New("leading coefficient of the divisor is not a unit")
)

// Multiplier computes the coefficients of a product. Inputs and output are ascending
// coefficient slices; trailing zeros in the output are allowed.
type Multiplier[T any] interface {
	Multiply(a, b []T) []T
}

// Ring is the polynomial ring K[x] over the coefficient structure K.
type Ring[T any] struct {
	k        algebra.Ring[T]
	mul      Multiplier[T]
	reducer  algebra.Reducer[T]
	variable string
}

type RingOption[T any] func(*Ring[T])

// WithMultiplier replaces schoolbook multiplication.
func WithMultiplier[T any](m Multiplier[T]) RingOption[T] {
	return func(r *Ring[T]) { r.mul = m }
}

// WithVariable sets the variable name used by String. Defaults to "x".
func WithVariable[T any](name string) RingOption[T] {
	return func(r *Ring[T]) { r.variable = name }
}

func NewRing[T any](k algebra.Ring[T], opts ...RingOption[T]) *Ring[T] {
	r := &Ring[T]{k: k, variable: "x"}
	if rd, ok := k.(algebra.Reducer[T]); ok {
		r.reducer = rd
	}

	for _, opt := range opts {
		opt(r)
	}

	return r
}

// Coefficients returns the coefficient structure.
func (r *Ring[T]) Coefficients() algebra.Ring[T] { return r.k }
func (r *Ring[T]) Variable() string              { return r.variable }

// Polynomial is an element of a Ring.
type Polynomial[T any] struct {
	r      *Ring[T]
	coeffs []T
}

// wrap takes ownership of coeffs.
func (r *Ring[T]) wrap(coeffs []T) *Polynomial[T] {
	n := len(coeffs)
	for n > 0 && r.k.IsZero(coeffs[n-1]) {
		n--
	}

	return &Polynomial[T]{r: r, coeffs: coeffs[:n:n]}
}

// normalize maps caller-supplied coefficients to canonical representatives.
func (r *Ring[T]) normalize(coeffs []T) []T {
	if r.reducer == nil {
		return coeffs
	}

	for i, c := range coeffs {
		coeffs[i] = r.reducer.Reduce(c)
	}

	return coeffs
}

// New builds a polynomial from ascending coefficients ([1, 2, 3] is 1 + 2x + 3x^2).
// Coefficients with several representatives, such as residues, are reduced.
func (r *Ring[T]) New(coeffs []T) *Polynomial[T] {
	return r.wrap(r.normalize(append([]T(nil), coeffs...)))
}

func (r *Ring[T]) FromInt64s(coeffs ...int64) *Polynomial[T] {
	cs := make([]T, len(coeffs))
	for i, c := range coeffs {
		cs[i] = r.k.FromInt64(c)
	}

	return r.wrap(cs)
}

// Monomial returns c*x^deg.
func (r *Ring[T]) Monomial(c T, deg int) *Polynomial[T] {
	if deg < 0 {
		panic("negative monomial degree")
	}

	cs := make([]T, deg+1)
	for i := 0; i < deg; i++ {
		cs[i] = r.k.Zero()
	}
	cs[deg] = c

	return r.wrap(r.normalize(cs))
}

func (r *Ring[T]) Constant(c T) *Polynomial[T] { return r.wrap(r.normalize([]T{c})) }
func (r *Ring[T]) X() *Polynomial[T]           { return r.Monomial(r.k.One(), 1) }

func (p *Polynomial[T]) Ring() *Ring[T] { return p.r }
func (p *Polynomial[T]) IsZero() bool   { return len(p.coeffs) == 0 }

// Degree returns DegreeZero for the zero polynomial.
func (p *Polynomial[T]) Degree() int {
	if len(p.coeffs) == 0 {
		return DegreeZero
	}

	return len(p.coeffs) - 1
}

// IsConstant is true for zero and nonzero constants.
func (p *Polynomial[T]) IsConstant() bool { return len(p.coeffs) <= 1 }

func (p *Polynomial[T]) IsOne() bool {
	return len(p.coeffs) == 1 && p.r.k.Equal(p.coeffs[0], p.r.k.One())
}

// Coeff returns the coefficient of x^i, zero outside the stored range.
func (p *Polynomial[T]) Coeff(i int) T {
	if i < 0 || i >= len(p.coeffs) {
		return p.r.k.Zero()
	}

	return p.coeffs[i]
}

// Lead is the leading coefficient, zero for the zero polynomial.
func (p *Polynomial[T]) Lead() T { return p.Coeff(len(p.coeffs) - 1) }

// Coefficients returns a copy of the ascending coefficient slice.
func (p *Polynomial[T]) Coefficients() []T {
	return append([]T(nil), p.coeffs...)
}

func (p *Polynomial[T]) Equal(q *Polynomial[T]) bool {
	if len(p.coeffs) != len(q.coeffs) {
		return false
	}

	k := p.r.k
	for i := range p.coeffs {
		if !k.Equal(p.coeffs[i], q.coeffs[i]) {
			return false
		}
	}

	return true
}

func (p *Polynomial[T]) String() string {
	if p.IsZero() {
		return "0"
	}

	k := p.r.k
	one := k.One()
	minusOne := k.Neg(one)
	signed := k.Characteristic().Sign() == 0

	bldr := strings.Builder{}
	for i := len(p.coeffs) - 1; i >= 0; i-- {
		c := p.coeffs[i]
		if k.IsZero(c) {
			continue
		}

		term := k.Format(c)
		if strings.Contains(term, " ") {
			term = "(" + term + ")"
		}

		if i > 0 {
			switch {
			case k.Equal(c, one):
				term = ""
			case signed && k.Equal(c, minusOne):
				term = "-"
			default:
				term += "*"
			}

			term += p.r.variable
			if i > 1 {
				term += "^" + strconv.Itoa(i)
			}
		}

		switch {
		case bldr.Len() == 0:
			bldr.WriteString(term)
		case strings.HasPrefix(term, "-"):
			bldr.WriteString(" - ")
			bldr.WriteString(term[1:])
		default:
			bldr.WriteString(" + ")
			bldr.WriteString(term)
		}
	}

	return bldr.String()
}

// Map moves p into the ring to through a coefficient embedding. Coefficients that
// map to zero are dropped.
func Map[T, U any](p *Polynomial[T], to *Ring[U], fn func(T) U) *Polynomial[U] {
	cs := make([]U, len(p.coeffs))
	for i, c := range p.coeffs {
		cs[i] = fn(c)
	}

	return to.wrap(cs)
}

// ---------- Ring as a coefficient structure ----------

func (r *Ring[T]) Capabilities() algebra.Capability {
	switch {
	case algebra.Has(r.k, algebra.CapField):
		return algebra.EuclidCaps
	case algebra.Has(r.k, algebra.CapUFD):
		return algebra.DomainCaps | algebra.CapUFD
	case algebra.Has(r.k, algebra.CapIntegralDomain):
		return algebra.DomainCaps
	}

	return algebra.RingCaps
}

func (r *Ring[T]) String() string { return r.k.String() + "[" + r.variable + "]" }

func (r *Ring[T]) Zero() *Polynomial[T]                   { return &Polynomial[T]{r: r} }
func (r *Ring[T]) One() *Polynomial[T]                    { return r.Constant(r.k.One()) }
func (r *Ring[T]) FromInt64(n int64) *Polynomial[T]       { return r.Constant(r.k.FromInt64(n)) }
func (r *Ring[T]) Add(a, b *Polynomial[T]) *Polynomial[T] { return a.Add(b) }
func (r *Ring[T]) Sub(a, b *Polynomial[T]) *Polynomial[T] { return a.Sub(b) }
func (r *Ring[T]) Neg(a *Polynomial[T]) *Polynomial[T]    { return a.Neg() }
func (r *Ring[T]) Mul(a, b *Polynomial[T]) *Polynomial[T] { return a.Mul(b) }
func (r *Ring[T]) Equal(a, b *Polynomial[T]) bool         { return a.Equal(b) }
func (r *Ring[T]) IsZero(a *Polynomial[T]) bool           { return a.IsZero() }
func (r *Ring[T]) Characteristic() *big.Int               { return r.k.Characteristic() }
func (r *Ring[T]) Format(a *Polynomial[T]) string         { return a.String() }

// Div is exact division.
func (r *Ring[T]) Div(a, b *Polynomial[T]) (*Polynomial[T], error) { return a.ExactDiv(b) }

// QuoRem panics when b is zero or its leading coefficient is not a unit.
func (r *Ring[T]) QuoRem(a, b *Polynomial[T]) (*Polynomial[T], *Polynomial[T]) {
	q, rem, err := a.QuoRem(b)
	if err != nil {
		panic(err)
	}

	return q, rem
}

// Norm is deg+1, and 0 for the zero polynomial.
func (r *Ring[T]) Norm(a *Polynomial[T]) *big.Int {
	return big.NewInt(int64(len(a.coeffs)))
}

func (r *Ring[T]) GCD(a, b *Polynomial[T]) *Polynomial[T] { return GCD(a, b) }

// Canonical splits off the unit that normalizes the leading coefficient.
func (r *Ring[T]) Canonical(a *Polynomial[T]) (*Polynomial[T], *Polynomial[T]) {
	if a.IsZero() {
		return r.One(), a
	}

	u, c := normalize(a)

	return r.Constant(u), c
}

// UnitInverse inverts constant polynomials whose value is a unit.
func (r *Ring[T]) UnitInverse(a *Polynomial[T]) (*Polynomial[T], bool) {
	if a.Degree() != 0 {
		return nil, false
	}

	units, ok := algebra.AsUnits(r.k)
	if !ok {
		return nil, false
	}

	inv, ok := units.UnitInverse(a.coeffs[0])
	if !ok {
		return nil, false
	}

	return r.Constant(inv), true
}
