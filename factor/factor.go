// Package factor factors univariate polynomials into irreducibles over the
// coefficient structures the algebra package describes.
//
// The algorithm is picked from the coefficient structure: finite fields use
// distinct-degree factorization followed by Cantor-Zassenhaus or Berlekamp, the
// integers use Berlekamp-Zassenhaus with Hensel lifting, the rationals reduce to
// the integers, number fields use Trager's norm method, and any other UFD that can
// enumerate divisors falls back to Kronecker's method.
package factor

import (
	"errors"
	"math/big"

	"github.com/jonathanmweiss/go-polyfactor/algebra"
	"github.com/jonathanmweiss/go-polyfactor/extension"
	"github.com/jonathanmweiss/go-polyfactor/poly"
	"gopkg.in/errgo.v1"
)

// ErrExhausted is returned when a randomized or search step runs out of attempts.
var ErrExhausted = errors.New("factorization search exhausted")

// Factor decomposes f into Unit * prod Factors[i].Poly^Factors[i].Multiplicity with
// every factor irreducible and non-constant, except that over Z the prime factors of
// the content are listed as degree-zero factors. Factors are pairwise non-associate,
// canonical for the structure (monic over fields, positive leading coefficient over
// Z) and sorted by degree then coefficients.
//
// The zero polynomial has no factorization and yields poly.ErrZeroPolynomial.
// Structures without a factoring algorithm make Factor panic with an
// *algebra.CapabilityError.
func Factor[T any](f *poly.Polynomial[T], opts ...Option) (*poly.Factorization[T], error) {
	if f.IsZero() {
		return nil, errgo.WithCausef(nil, poly.ErrZeroPolynomial, "factor")
	}

	c, err := newConfig(opts...)
	if err != nil {
		return nil, errgo.NoteMask(err, "factor options")
	}

	k := f.Ring().Coefficients()
	c.log = c.log.With("structure", k.String())

	res, err := dispatch(k, f, c)
	if err != nil {
		return nil, errgo.NoteMask(err, "factor over "+k.String(), errgo.Any)
	}

	return res, nil
}

func dispatch[T any](k algebra.Ring[T], f *poly.Polynomial[T], c *config) (*poly.Factorization[T], error) {
	if ff, ok := algebra.AsFiniteField(k); ok {
		return factorFinite(ff, f, c)
	}

	switch any(k).(type) {
	case *algebra.Integers:
		res, err := factorIntegers(any(f).(*poly.Polynomial[*big.Int]), c)
		if err != nil {
			return nil, err
		}
		return any(res).(*poly.Factorization[T]), nil

	case *algebra.Rationals:
		res, err := factorRationals(any(f).(*poly.Polynomial[*big.Rat]), c)
		if err != nil {
			return nil, err
		}
		return any(res).(*poly.Factorization[T]), nil

	case *extension.NumberField:
		res, err := factorNumberField(any(f).(*poly.Polynomial[*poly.Polynomial[*big.Rat]]), c)
		if err != nil {
			return nil, err
		}
		return any(res).(*poly.Factorization[T]), nil
	}

	if ufd, ok := algebra.AsUFD(k); ok {
		if de, ok := k.(algebra.DivisorEnumerator[T]); ok {
			return factorKronecker(ufd, de, f, c)
		}
	}

	algebra.Violation("Factor", k, algebra.CapUFD)

	return nil, nil
}
