package factor

import (
	"math/big"

	"github.com/jonathanmweiss/go-polyfactor/algebra"
	"github.com/jonathanmweiss/go-polyfactor/field"
	"github.com/jonathanmweiss/go-polyfactor/poly"
)

type zPoly = poly.Polynomial[*big.Int]

// liftState is the modular data of one Berlekamp-Zassenhaus run: the factorization
// of f modulo p lifted to p^k, k a power of two.
type liftState struct {
	prime   *big.Int
	k       int
	modulus *big.Int
	zm      *algebra.IntegersMod
	ring    *poly.Ring[*big.Int]
	lc      *big.Int
	factors []*zPoly // monic over Z/p^k
}

// newLiftState fixes the smallest precision p^k, k = 2^j, above 2*bound.
func newLiftState(f *zPoly, p uint64, bound *big.Int) *liftState {
	prime := new(big.Int).SetUint64(p)
	target := new(big.Int).Lsh(bound, 1)

	k := 1
	modulus := new(big.Int).Set(prime)
	for modulus.Cmp(target) <= 0 {
		modulus.Mul(modulus, modulus)
		k *= 2
	}

	return &liftState{
		prime:   prime,
		k:       k,
		modulus: modulus,
		zm:      mustIntegersMod(modulus),
		lc:      new(big.Int).Set(f.Lead()),
	}
}

func mustIntegersMod(m *big.Int) *algebra.IntegersMod {
	zm, err := algebra.NewIntegersMod(m)
	if err != nil {
		panic(err)
	}

	return zm
}

// lift turns f = lc * prod modFactors (mod p) into f = lc * prod factors (mod p^k).
func (s *liftState) lift(f *zPoly, gf *field.PrimeField, modFactors []*poly.Polynomial[uint64]) {
	s.ring = poly.NewRing[*big.Int](s.zm)
	s.factors = s.liftTree(poly.Map(f, s.ring, s.zm.Reduce), gf, modFactors)
}

// liftTree splits the factor list in halves, lifts the two-factor split of f, and
// recurses into both halves.
func (s *liftState) liftTree(f *zPoly, gf *field.PrimeField, modFactors []*poly.Polynomial[uint64]) []*zPoly {
	if len(modFactors) == 1 {
		m, err := f.Monic()
		if err != nil {
			panic(err)
		}
		return []*zPoly{m}
	}

	half := len(modFactors) / 2
	left, right := modFactors[:half], modFactors[half:]

	fp := modFactors[0].Ring()
	lcp := gf.Reduce(new(big.Int).Mod(f.Lead(), s.prime).Uint64())
	g0 := fp.Product(left...).MulScalar(lcp)
	h0 := fp.Product(right...)

	one, u, v := poly.ExtendedGCD(g0, h0)
	if !one.IsOne() {
		panic("modular factors are not coprime")
	}

	g, h := s.liftPair(f, toZ(g0), toZ(h0), toZ(u), toZ(v))

	return append(s.liftTree(g, gf, left), s.liftTree(h, gf, right)...)
}

func toZ(p *poly.Polynomial[uint64]) *zPoly {
	return poly.Map(p, zRing, func(c uint64) *big.Int { return new(big.Int).SetUint64(c) })
}

var zRing = poly.NewRing[*big.Int](algebra.Z)

// liftPair lifts f = g h, s g + t h = 1 (mod p) with h monic to f = g h (mod p^k) by
// quadratic Hensel steps (von zur Gathen and Gerhard, Algorithm 15.10).
func (s *liftState) liftPair(f, g, h, sg, th *zPoly) (*zPoly, *zPoly) {
	m := new(big.Int).Set(s.prime)
	for m.Cmp(s.modulus) < 0 {
		m.Mul(m, m)

		zm := mustIntegersMod(m)
		r := poly.NewRing[*big.Int](zm)
		at := func(p *zPoly) *zPoly { return poly.Map(p, r, zm.Reduce) }

		fm, gm, hm, sm, tm := at(f), at(g), at(h), at(sg), at(th)

		e := fm.Sub(gm.Mul(hm))
		q, rem := mustQuoRem(sm.Mul(e), hm)
		gm = gm.Add(tm.Mul(e)).Add(q.Mul(gm))
		hm = hm.Add(rem)

		b := sm.Mul(gm).Add(tm.Mul(hm)).Sub(r.One())
		c, d := mustQuoRem(sm.Mul(b), hm)
		sm = sm.Sub(d)
		tm = tm.Sub(tm.Mul(b)).Sub(c.Mul(gm))

		g, h, sg, th = gm, hm, sm, tm
	}

	return poly.Map(g, s.ring, s.zm.Reduce), poly.Map(h, s.ring, s.zm.Reduce)
}

func mustQuoRem(a, b *zPoly) (*zPoly, *zPoly) {
	q, r, err := a.QuoRem(b)
	if err != nil {
		panic(err)
	}

	return q, r
}

// mignotteBound bounds the coefficients of any factor of f, scaled by |lc f|:
// 2^n * ceil(sqrt(n+1)) * |f|_inf * |lc f|.
func mignotteBound(f *zPoly) *big.Int {
	n := f.Degree()

	norm := new(big.Int)
	for _, c := range f.Coefficients() {
		if c.CmpAbs(norm) > 0 {
			norm.Abs(c)
		}
	}

	n1 := big.NewInt(int64(n + 1))
	root := new(big.Int).Sqrt(n1)
	if new(big.Int).Mul(root, root).Cmp(n1) < 0 {
		root.Add(root, big.NewInt(1))
	}

	b := new(big.Int).Lsh(root, uint(n))
	b.Mul(b, norm)

	return b.Mul(b, new(big.Int).Abs(f.Lead()))
}
