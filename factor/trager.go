package factor

import (
	"math/big"

	"github.com/jonathanmweiss/go-polyfactor/extension"
	"github.com/jonathanmweiss/go-polyfactor/poly"
	"gopkg.in/errgo.v1"
)

type kPoly = poly.Polynomial[*poly.Polynomial[*big.Rat]]

// factorNumberField runs Trager's algorithm on every square-free part of f.
func factorNumberField(f *kPoly, c *config) (*poly.Factorization[*qPoly], error) {
	k := f.Ring().Coefficients().(*extension.NumberField)

	out := &poly.Factorization[*qPoly]{Ring: f.Ring(), Unit: f.Lead()}
	if f.Degree() == 0 {
		return out, nil
	}

	monic, err := f.Monic()
	if err != nil {
		return nil, err
	}

	sqf, err := poly.SquareFree(monic)
	if err != nil {
		return nil, err
	}

	for _, part := range sqf.Factors {
		irr, err := trager(k, part.Poly, c)
		if err != nil {
			return nil, err
		}

		for _, p := range irr {
			out.Add(p, part.Multiplicity)
		}
	}

	out.Sort()

	return out, nil
}

// trager factors a monic square-free g over K = Q(a): it shifts g(x - s*a) for
// s = 0, 1, -1, 2, ... until the norm N(x) in Q[x] is square-free, factors N over Q,
// and recovers each factor of g as gcd(g_s, N_i) shifted back.
func trager(k *extension.NumberField, g *kPoly, c *config) ([]*kPoly, error) {
	if g.Degree() <= 1 {
		return []*kPoly{g}, nil
	}

	kx := g.Ring()
	alpha := k.Generator()

	var (
		shifted *kPoly
		norm    *qPoly
		s       int64
	)

	found := false
	for i := 0; i < c.maxPrimeTries; i++ {
		s = node(i)
		shifted = g.Compose(shiftPoly(k, kx, alpha, -s))
		norm = k.NormPoly(shifted)
		if poly.IsSquareFree(norm) {
			found = true
			break
		}
	}

	if !found {
		c.log.Warn("no square-free norm", "shifts", c.maxPrimeTries)
		return nil, errgo.WithCausef(nil, ErrExhausted, "no square-free norm for %v in %d shifts", g, c.maxPrimeTries)
	}

	if c.log.Enabled() {
		c.log.Debug("trager shift", "shift", s, "norm", norm.String())
	}

	nf, err := factorRationals(norm, c)
	if err != nil {
		return nil, err
	}

	if len(nf.Factors) == 1 {
		return []*kPoly{g}, nil
	}

	back := shiftPoly(k, kx, alpha, s)

	out := make([]*kPoly, 0, len(nf.Factors))
	for _, fc := range nf.Factors {
		ni := poly.Map(fc.Poly, kx, k.Embed)

		h := poly.GCD(shifted, ni).Compose(back)
		if h, err = h.Monic(); err != nil {
			return nil, err
		}

		out = append(out, h)
	}

	return out, nil
}

// shiftPoly is x + s*a in K[x].
func shiftPoly(k *extension.NumberField, kx *poly.Ring[*qPoly], alpha *qPoly, s int64) *kPoly {
	return kx.New([]*qPoly{k.Mul(k.FromInt64(s), alpha), k.One()})
}
