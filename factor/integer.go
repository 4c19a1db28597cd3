package factor

import (
	"math/big"

	"github.com/jonathanmweiss/go-polyfactor/algebra"
	"github.com/jonathanmweiss/go-polyfactor/field"
	"github.com/jonathanmweiss/go-polyfactor/poly"
	"github.com/tuneinsight/lattigo/v6/ring"
	"gopkg.in/errgo.v1"
)

// factorIntegers splits off the signed content, factors it into primes, and factors
// every square-free part of the primitive part.
func factorIntegers(f *zPoly, c *config) (*poly.Factorization[*big.Int], error) {
	r := f.Ring()

	sqf, err := poly.SquareFree(f)
	if err != nil {
		return nil, err
	}

	sign, content := algebra.Z.Canonical(sqf.Unit)
	out := &poly.Factorization[*big.Int]{Ring: r, Unit: sign}
	for _, pp := range algebra.FactorInt(content) {
		out.Add(r.Constant(pp.Prime), pp.Exp)
	}

	ev := newNodeEvaluator[*big.Int](algebra.Z)
	for _, part := range sqf.Factors {
		var irr []*zPoly
		switch c.intMethod {
		case Kronecker:
			irr, err = kronecker[*big.Int](algebra.Z, algebra.Z, ev, part.Poly, c)
		default:
			irr, err = zassenhaus(part.Poly, c)
		}

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

// zassenhaus factors a primitive square-free f with positive leading coefficient.
func zassenhaus(f *zPoly, c *config) ([]*zPoly, error) {
	if f.Degree() <= 1 {
		return []*zPoly{f}, nil
	}

	gf, modFactors, err := choosePrime(f, c)
	if err != nil {
		return nil, err
	}

	if len(modFactors) == 1 {
		return []*zPoly{f}, nil
	}

	st := newLiftState(f, gf.Modulus(), mignotteBound(f))
	c.log.Debug("hensel lift", "prime", gf.Modulus(), "exponent", st.k, "factors", len(modFactors))

	st.lift(f, gf, modFactors)

	return recombine(f, st, c), nil
}

// choosePrime examines odd primes p not dividing lc(f) with f mod p square-free, and
// keeps, among the first WithPrimeCandidates of them, the one with the fewest
// modular factors.
func choosePrime(f *zPoly, c *config) (*field.PrimeField, []*poly.Polynomial[uint64], error) {
	var (
		best        *field.PrimeField
		bestFactors []*poly.Polynomial[uint64]
	)

	lc := f.Lead()
	good, tries := 0, 0
	for p := uint64(3); tries < c.maxPrimeTries && good < c.primeCandidates; p += 2 {
		if !ring.IsPrime(p) {
			continue
		}
		tries++

		if new(big.Int).Mod(lc, new(big.Int).SetUint64(p)).Sign() == 0 {
			continue
		}

		gf := field.MustPrimeField(p)
		fp := reduceModPrime(f, gf)
		if !poly.IsSquareFree(fp) {
			continue
		}
		good++

		monic, err := fp.Monic()
		if err != nil {
			return nil, nil, err
		}

		factors, err := splitSquareFree[uint64](gf, monic, c)
		if err != nil {
			return nil, nil, err
		}

		c.log.Debug("candidate prime", "prime", p, "factors", len(factors))

		if best == nil || len(factors) < len(bestFactors) {
			best, bestFactors = gf, factors
		}

		if len(factors) == 1 {
			break
		}
	}

	if best == nil {
		c.log.Warn("no good prime", "tries", c.maxPrimeTries)
		return nil, nil, errgo.WithCausef(nil, ErrExhausted, "no good prime for %v in %d tries", f, c.maxPrimeTries)
	}

	return best, bestFactors, nil
}

func reduceModPrime(f *zPoly, gf *field.PrimeField) *poly.Polynomial[uint64] {
	r := poly.NewRing[uint64](gf, poly.WithMultiplier[uint64](field.NewNTTMultiplier(gf)), poly.WithVariable[uint64](f.Ring().Variable()))
	p := new(big.Int).SetUint64(gf.Modulus())

	return poly.Map(f, r, func(c *big.Int) uint64 { return new(big.Int).Mod(c, p).Uint64() })
}

// recombine searches subsets of the lifted factors, smallest first, for true factors
// of f. A subset S gives the candidate lc * prod_S u (mod p^k) with symmetric
// coefficients; its constant term must divide lc * f(0) before trial division.
func recombine(f *zPoly, st *liftState, c *config) []*zPoly {
	var out []*zPoly

	g := f
	left := len(st.factors)
	for d := 1; 2*d <= left; d++ {
		it := newSubsetIterator(len(st.factors), d)
		for i, u := range st.factors {
			if u == nil {
				it.Exclude(i)
			}
		}

		for {
			subset, ok := it.Next()
			if !ok {
				break
			}

			if 2*d > left {
				break
			}

			h, ok := st.trial(g, subset)
			if !ok {
				continue
			}

			if c.log.Enabled() {
				c.log.Debug("recombined factor", "size", d, "factor", h.String())
			}

			out = append(out, h)
			g = mustExactDiv(g, h)
			left -= d
			for _, i := range subset {
				st.factors[i] = nil
				it.Exclude(i)
			}
		}
	}

	if g.Degree() > 0 {
		out = append(out, canonicalZ(g))
	}

	return out
}

func canonicalZ(p *zPoly) *zPoly {
	if p.Lead().Sign() < 0 {
		return p.Neg()
	}

	return p
}

// trial tests whether the subset of lifted factors yields a factor of g.
func (s *liftState) trial(g *zPoly, subset []int) (*zPoly, bool) {
	lc := s.zm.Reduce(g.Lead())

	g0 := g.Coeff(0)
	if g0.Sign() != 0 {
		t := lc
		for _, i := range subset {
			t = s.zm.Mul(t, s.factors[i].Coeff(0))
		}

		t = s.zm.Symmetric(t)
		if t.Sign() == 0 {
			return nil, false
		}

		if new(big.Int).Rem(new(big.Int).Mul(g.Lead(), g0), t).Sign() != 0 {
			return nil, false
		}
	}

	prod := s.ring.Constant(lc)
	for _, i := range subset {
		prod = prod.Mul(s.factors[i])
	}

	cand := poly.Map(prod, g.Ring(), s.zm.Symmetric).PrimitivePart()
	if cand.Degree() <= 0 {
		return nil, false
	}

	if _, err := g.ExactDiv(cand); err != nil {
		return nil, false
	}

	return canonicalZ(cand), true
}
