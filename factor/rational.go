package factor

import (
	"math/big"

	"github.com/jonathanmweiss/go-polyfactor/algebra"
	"github.com/jonathanmweiss/go-polyfactor/poly"
)

type qPoly = poly.Polynomial[*big.Rat]

// factorRationals clears denominators, factors over Z and makes the factors monic.
// The unit is the leading coefficient of f.
func factorRationals(f *qPoly, c *config) (*poly.Factorization[*big.Rat], error) {
	out := &poly.Factorization[*big.Rat]{Ring: f.Ring(), Unit: f.Lead()}
	if f.Degree() == 0 {
		return out, nil
	}

	zf := clearDenominators(f)

	zres, err := factorIntegers(zf, c)
	if err != nil {
		return nil, err
	}

	for _, fc := range zres.Factors {
		if fc.Poly.Degree() == 0 {
			continue
		}

		m, err := poly.Map(fc.Poly, f.Ring(), algebra.Q.FromInt).Monic()
		if err != nil {
			return nil, err
		}

		out.Add(m, fc.Multiplicity)
	}

	out.Sort()

	return out, nil
}

// clearDenominators returns lcm(denominators) * f in Z[x].
func clearDenominators(f *qPoly) *zPoly {
	l := big.NewInt(1)
	for _, c := range f.Coefficients() {
		d := c.Denom()
		g := new(big.Int).GCD(nil, nil, l, d)
		l.Mul(l, new(big.Int).Quo(d, g))
	}

	zx := poly.NewRing[*big.Int](algebra.Z, poly.WithVariable[*big.Int](f.Ring().Variable()))

	return poly.Map(f, zx, func(c *big.Rat) *big.Int {
		n := new(big.Int).Mul(c.Num(), l)
		return n.Quo(n, c.Denom())
	})
}
