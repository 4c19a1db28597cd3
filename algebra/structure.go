// Package algebra defines the capability-tagged coefficient structures polynomial
// algorithms are generic over, and the concrete structures Z, Q and Z/mZ.
//
// Elements are values of a type parameter T; a structure value carries every operation.
// Algorithms ask for the smallest interface they need (AsField, AsUFD, ...) and pick
// a variant according to what the structure offers. Elements are treated as immutable:
// every operation returns a fresh value.
package algebra

import (
	"errors"
	"io"
	"math/big"
)

var (
	ErrDivisionByZero = errors.New("division by zero")
	ErrNotDivisible   = errors.New("not exactly divisible")
	ErrNotEmbeddable  = errors.New("value has no image in the target structure")
)

// Ring is a commutative ring with identity.
type Ring[T any] interface {
	Structure

	Zero() T
	One() T
	FromInt64(n int64) T

	Add(a, b T) T
	Sub(a, b T) T
	Neg(a T) T
	Mul(a, b T) T

	Equal(a, b T) bool
	IsZero(a T) bool

	// Characteristic is zero for characteristic-zero rings.
	Characteristic() *big.Int
	Format(a T) string
}

// Units is implemented by rings that can invert their units without being fields,
// e.g. Z/mZ for composite m. The boolean is false when a is not a unit.
type Units[T any] interface {
	Ring[T]
	UnitInverse(a T) (T, bool)
}

// IntegralDomain offers exact division: Div(a, b) = q with a = q*b, or an error
// (ErrDivisionByZero, ErrNotDivisible).
type IntegralDomain[T any] interface {
	Ring[T]
	Div(a, b T) (T, error)
}

// EuclideanDomain adds division with remainder. Norm(r) < Norm(b) or r = 0.
// QuoRem panics when b is zero.
type EuclideanDomain[T any] interface {
	IntegralDomain[T]
	QuoRem(a, b T) (q, r T)
	Norm(a T) *big.Int
}

// UFD offers element gcds and a canonical associate.
// Canonical returns (u, c) with a = u*c, u a unit and c the canonical representative.
type UFD[T any] interface {
	IntegralDomain[T]
	GCD(a, b T) T
	Canonical(a T) (unit, assoc T)
}

// Field inverts every nonzero element. Inv panics on zero.
type Field[T any] interface {
	IntegralDomain[T]
	Inv(a T) T
}

// FiniteField is a field with finitely many elements.
type FiniteField[T any] interface {
	Field[T]

	Order() *big.Int
	// PthRoot returns the unique b with b^p = a, p the characteristic.
	PthRoot(a T) T
	// Element enumerates the field: Element(0..Order()-1) lists each element once.
	Element(i uint64) T
	Random(src io.Reader) (T, error)
}

// Reducer is implemented by structures whose element type admits several
// representatives of one element, e.g. residues. Reduce returns the canonical one.
type Reducer[T any] interface {
	Reduce(a T) T
}

// DivisorEnumerator lists the finitely many divisors of a nonzero element up to units,
// and the finite unit group. Kronecker's method needs both.
type DivisorEnumerator[T any] interface {
	Divisors(a T) ([]T, error)
	Units() []T
}

// Pow computes a^e by repeated squaring.
func Pow[T any](r Ring[T], a T, e uint64) T {
	x := r.One()
	for e > 0 {
		if e%2 == 1 {
			x = r.Mul(x, a)
		}

		e /= 2
		if e > 0 {
			a = r.Mul(a, a)
		}
	}

	return x
}

// PowBig is Pow with an arbitrary-precision exponent.
func PowBig[T any](r Ring[T], a T, e *big.Int) T {
	x := r.One()
	for i := e.BitLen() - 1; i >= 0; i-- {
		x = r.Mul(x, x)
		if e.Bit(i) == 1 {
			x = r.Mul(x, a)
		}
	}

	return x
}
