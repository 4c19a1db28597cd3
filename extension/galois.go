package extension

import (
	"io"
	"math/big"
	"strconv"

	"github.com/jonathanmweiss/go-polyfactor/algebra"
	"github.com/jonathanmweiss/go-polyfactor/field"
	"github.com/jonathanmweiss/go-polyfactor/poly"
)

// GaloisField is GF(p^k) = GF(p)[a]/(m(a)) for an irreducible m of degree k.
type GaloisField struct {
	*quotient[uint64]
	base  *field.PrimeField
	order *big.Int
}

var _ algebra.FiniteField[*poly.Polynomial[uint64]] = (*GaloisField)(nil)

func newGaloisField(base *field.PrimeField, q *quotient[uint64]) *GaloisField {
	p := new(big.Int).SetUint64(base.Modulus())

	return &GaloisField{
		quotient: q,
		base:     base,
		order:    new(big.Int).Exp(p, big.NewInt(int64(q.Degree())), nil),
	}
}

func (g *GaloisField) Capabilities() algebra.Capability { return algebra.FiniteCaps }

func (g *GaloisField) String() string {
	return "GF(" + strconv.FormatUint(g.base.Modulus(), 10) + "^" + strconv.Itoa(g.Degree()) + ")"
}

// Base is the prime subfield.
func (g *GaloisField) Base() *field.PrimeField { return g.base }

// Order is p^k.
func (g *GaloisField) Order() *big.Int { return new(big.Int).Set(g.order) }

// PthRoot inverts the Frobenius map: a^(p^(k-1)).
func (g *GaloisField) PthRoot(a *poly.Polynomial[uint64]) *poly.Polynomial[uint64] {
	e := new(big.Int).Div(g.order, g.base.Characteristic())

	return g.Pow(a, e)
}

// Element maps i in [0, p^k) to the element whose coefficients are the base-p
// digits of i, lowest first.
func (g *GaloisField) Element(i uint64) *poly.Polynomial[uint64] {
	p := g.base.Modulus()

	cs := make([]uint64, g.Degree())
	for j := range cs {
		cs[j] = i % p
		i /= p
	}

	return g.FromCoefficients(cs...)
}

// Random draws k independent uniform coefficients from src.
func (g *GaloisField) Random(src io.Reader) (*poly.Polynomial[uint64], error) {
	cs := make([]uint64, g.Degree())
	for j := range cs {
		c, err := g.base.Random(src)
		if err != nil {
			return nil, err
		}
		cs[j] = c
	}

	return g.FromCoefficients(cs...), nil
}

// FromRat embeds a rational through the prime subfield.
func (g *GaloisField) FromRat(r *big.Rat) (*poly.Polynomial[uint64], error) {
	c, err := g.base.FromRat(r)
	if err != nil {
		return nil, err
	}

	return g.Embed(c), nil
}

// Frobenius is a -> a^p.
func (g *GaloisField) Frobenius(a *poly.Polynomial[uint64]) *poly.Polynomial[uint64] {
	return g.Pow(a, g.base.Characteristic())
}

// isIrreducible runs Rabin's test on m of degree n over GF(p): m divides
// x^(p^n) - x and gcd(x^(p^(n/r)) - x, m) = 1 for every prime r dividing n.
func isIrreducible(m *poly.Polynomial[uint64], p uint64) (bool, error) {
	n := m.Degree()
	if n < 1 {
		return false, ErrModulusDegree
	}

	if n == 1 {
		return true, nil
	}

	x := m.Ring().X()
	bp := new(big.Int).SetUint64(p)
	frob := func(e int) (*poly.Polynomial[uint64], error) {
		xq, err := x.PowMod(new(big.Int).Exp(bp, big.NewInt(int64(e)), nil), m)
		if err != nil {
			return nil, err
		}

		return xq.Sub(x), nil
	}

	for _, r := range algebra.FactorInt(big.NewInt(int64(n))) {
		h, err := frob(n / int(r.Prime.Int64()))
		if err != nil {
			return false, err
		}

		if poly.GCD(h, m).Degree() != 0 {
			return false, nil
		}
	}

	h, err := frob(n)
	if err != nil {
		return false, err
	}

	r, err := h.Rem(m)
	if err != nil {
		return false, err
	}

	return r.IsZero(), nil
}
