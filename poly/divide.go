package poly

import (
	"math/big"

	"github.com/jonathanmweiss/go-polyfactor/algebra"
)

// leadInverse returns the inverse of d's leading coefficient. It panics when the
// coefficient structure cannot invert anything.
func (d *Polynomial[T]) leadInverse(op string) (T, error) {
	units, ok := algebra.AsUnits(d.r.k)
	if !ok {
		algebra.Violation(op, d.r.k, algebra.CapField)
	}

	inv, ok := units.UnitInverse(d.Lead())
	if !ok {
		var zero T
		return zero, ErrLeadNotUnit
	}

	return inv, nil
}

// QuoRem divides p by d: p = q*d + r with deg r < deg d. It needs a coefficient
// field, or a structure with unit inversion and a unit leading coefficient in d
// (ErrLeadNotUnit otherwise).
func (p *Polynomial[T]) QuoRem(d *Polynomial[T]) (q, r *Polynomial[T], err error) {
	p.checkRing(d)

	if d.IsZero() {
		return nil, nil, algebra.ErrDivisionByZero
	}

	inv, err := d.leadInverse("QuoRem")
	if err != nil {
		return nil, nil, err
	}

	return p.divideBy(d, func(c T) (T, error) { return p.r.k.Mul(c, inv), nil })
}

// divideBy runs long division where quo computes the quotient coefficient c / lead(d).
func (p *Polynomial[T]) divideBy(d *Polynomial[T], quo func(T) (T, error)) (*Polynomial[T], *Polynomial[T], error) {
	k := p.r.k
	dd := d.Degree()

	if p.IsZero() || p.Degree() < dd {
		return p.r.Zero(), p, nil
	}

	rem := p.Coefficients()
	qs := make([]T, len(rem)-dd)
	for i := len(rem) - 1; i >= dd; i-- {
		c := rem[i]
		if k.IsZero(c) {
			qs[i-dd] = k.Zero()
			continue
		}

		qc, err := quo(c)
		if err != nil {
			return nil, nil, err
		}
		qs[i-dd] = qc

		for j := 0; j <= dd; j++ {
			rem[i-dd+j] = k.Sub(rem[i-dd+j], k.Mul(qc, d.coeffs[j]))
		}
	}

	return p.r.wrap(qs), p.r.wrap(rem[:dd]), nil
}

// Rem is the remainder of QuoRem.
func (p *Polynomial[T]) Rem(d *Polynomial[T]) (*Polynomial[T], error) {
	_, r, err := p.QuoRem(d)

	return r, err
}

// PseudoQuoRem returns q, r with lc(d)^(deg p - deg d + 1) * p = q*d + r and
// deg r < deg d. It works over any ring.
func (p *Polynomial[T]) PseudoQuoRem(d *Polynomial[T]) (q, r *Polynomial[T], err error) {
	p.checkRing(d)

	if d.IsZero() {
		return nil, nil, algebra.ErrDivisionByZero
	}

	k := p.r.k
	dn := d.Degree()
	if p.IsZero() || p.Degree() < dn {
		return p.r.Zero(), p, nil
	}

	e := p.Degree() - dn + 1
	lc := d.Lead()

	rem := p
	quo := p.r.Zero()
	for !rem.IsZero() && rem.Degree() >= dn {
		s := p.r.Monomial(rem.Lead(), rem.Degree()-dn)
		quo = quo.MulScalar(lc).Add(s)
		rem = rem.MulScalar(lc).Sub(s.Mul(d))
		e--
	}

	scale := algebra.Pow(k, lc, uint64(e))

	return quo.MulScalar(scale), rem.MulScalar(scale), nil
}

// PseudoRem is the remainder of PseudoQuoRem.
func (p *Polynomial[T]) PseudoRem(d *Polynomial[T]) *Polynomial[T] {
	_, r, err := p.PseudoQuoRem(d)
	if err != nil {
		panic(err)
	}

	return r
}

// ExactDiv returns q with p = q*d over an integral domain, ErrNotDivisible when
// d does not divide p.
func (p *Polynomial[T]) ExactDiv(d *Polynomial[T]) (*Polynomial[T], error) {
	p.checkRing(d)

	dom := algebra.MustIntegralDomain("ExactDiv", p.r.k)
	if d.IsZero() {
		return nil, algebra.ErrDivisionByZero
	}

	lc := d.Lead()
	q, r, err := p.divideBy(d, func(c T) (T, error) { return dom.Div(c, lc) })
	if err != nil {
		return nil, algebra.ErrNotDivisible
	}

	if !r.IsZero() {
		return nil, algebra.ErrNotDivisible
	}

	return q, nil
}

// mustDiv is ExactDiv for divisions known to be exact.
func (p *Polynomial[T]) mustDiv(d *Polynomial[T]) *Polynomial[T] {
	q, err := p.ExactDiv(d)
	if err != nil {
		panic(err)
	}

	return q
}

// DivScalar divides every coefficient exactly by c.
func (p *Polynomial[T]) DivScalar(c T) (*Polynomial[T], error) {
	dom := algebra.MustIntegralDomain("DivScalar", p.r.k)

	out := make([]T, len(p.coeffs))
	for i, pc := range p.coeffs {
		q, err := dom.Div(pc, c)
		if err != nil {
			return nil, err
		}
		out[i] = q
	}

	return p.r.wrap(out), nil
}

func (p *Polynomial[T]) mustDivScalar(c T) *Polynomial[T] {
	q, err := p.DivScalar(c)
	if err != nil {
		panic(err)
	}

	return q
}

// Monic scales p to leading coefficient one.
func (p *Polynomial[T]) Monic() (*Polynomial[T], error) {
	if p.IsZero() {
		return nil, ErrZeroPolynomial
	}

	inv, err := p.leadInverse("Monic")
	if err != nil {
		return nil, err
	}

	return p.MulScalar(inv), nil
}

func (p *Polynomial[T]) mustMonic() *Polynomial[T] {
	m, err := p.Monic()
	if err != nil {
		panic(err)
	}

	return m
}

// Content is the canonical gcd of the coefficients; zero for the zero polynomial.
func (p *Polynomial[T]) Content() T {
	ufd, ok := algebra.AsUFD(p.r.k)
	if !ok {
		algebra.Violation("Content", p.r.k, algebra.CapUFD)
	}

	g := ufd.Zero()
	for _, c := range p.coeffs {
		g = ufd.GCD(g, c)
		if ufd.Equal(g, ufd.One()) {
			break
		}
	}

	_, g = ufd.Canonical(g)

	return g
}

// PrimitivePart is p divided by its content.
func (p *Polynomial[T]) PrimitivePart() *Polynomial[T] {
	if p.IsZero() {
		return p
	}

	return p.mustDivScalar(p.Content())
}

// normalize divides p by the unit that makes its leading coefficient canonical.
// Over a field that is the monic associate.
func normalize[T any](p *Polynomial[T]) (T, *Polynomial[T]) {
	k := p.r.k
	if p.IsZero() {
		return k.One(), p
	}

	if f, ok := algebra.AsField(k); ok {
		lc := p.Lead()
		return lc, p.MulScalar(f.Inv(lc))
	}

	if ufd, ok := algebra.AsUFD(k); ok {
		u, _ := ufd.Canonical(p.Lead())
		if ufd.Equal(u, ufd.One()) {
			return u, p
		}

		return u, p.mustDivScalar(u)
	}

	return k.One(), p
}

// PowMod computes p^e mod m by repeated squaring.
func (p *Polynomial[T]) PowMod(e *big.Int, m *Polynomial[T]) (*Polynomial[T], error) {
	base, err := p.Rem(m)
	if err != nil {
		return nil, err
	}

	x := p.r.One()
	if m.Degree() == 0 {
		return p.r.Zero(), nil
	}

	for i := e.BitLen() - 1; i >= 0; i-- {
		if x, err = x.Mul(x).Rem(m); err != nil {
			return nil, err
		}

		if e.Bit(i) == 1 {
			if x, err = x.Mul(base).Rem(m); err != nil {
				return nil, err
			}
		}
	}

	return x, nil
}
