package poly

import (
	"sort"

	"github.com/jonathanmweiss/go-polyfactor/algebra"
)

// SquareFree decomposes f into unit * prod g_i^m_i with the g_i square-free, pairwise
// coprime, canonical (monic over fields) and of positive degree, sorted by
// multiplicity.
//
// Characteristic zero uses Yun's algorithm; over a UFD it works on the primitive part
// and the unit absorbs the content. Finite fields of characteristic p use Musser's
// algorithm, taking p-th roots when the derivative vanishes. The zero polynomial gives
// ErrZeroPolynomial; a constant gives a factorization with no factors.
func SquareFree[T any](f *Polynomial[T]) (*Factorization[T], error) {
	if f.IsZero() {
		return nil, ErrZeroPolynomial
	}

	k := f.r.k
	out := &Factorization[T]{Ring: f.r, Unit: f.Lead()}
	if f.Degree() == 0 {
		return out, nil
	}

	var parts []Factor[T]
	switch {
	case k.Characteristic().Sign() != 0:
		ff, ok := algebra.AsFiniteField(k)
		if !ok {
			algebra.Violation("SquareFree", k, algebra.CapFiniteField)
		}

		parts = musser(ff, f.mustMonic())
	case algebra.Has(k, algebra.CapField):
		parts = yun(f.mustMonic())
	case algebra.Has(k, algebra.CapUFD):
		_, pp := normalize(f.PrimitivePart())
		parts = yun(pp)
	default:
		algebra.Violation("SquareFree", k, algebra.CapUFD)
	}

	sort.SliceStable(parts, func(i, j int) bool { return parts[i].Multiplicity < parts[j].Multiplicity })
	out.Factors = parts

	// unit = lc(f) / prod lc(g_i)^m_i
	dom := algebra.MustIntegralDomain("SquareFree", k)
	den := k.One()
	for _, p := range parts {
		den = k.Mul(den, algebra.Pow(k, p.Poly.Lead(), uint64(p.Multiplicity)))
	}

	unit, err := dom.Div(f.Lead(), den)
	if err != nil {
		return nil, err
	}
	out.Unit = unit

	return out, nil
}

// yun runs Yun's algorithm on a primitive (or monic) f of positive degree.
func yun[T any](f *Polynomial[T]) []Factor[T] {
	var out []Factor[T]

	df := f.Derivative()
	a := GCD(f, df)
	b := f.mustDiv(a)
	c := df.mustDiv(a)
	d := c.Sub(b.Derivative())

	for i := 1; b.Degree() > 0; i++ {
		a = GCD(b, d)
		b = b.mustDiv(a)
		c = d.mustDiv(a)
		d = c.Sub(b.Derivative())

		if a.Degree() > 0 {
			_, a = normalize(a)
			out = append(out, Factor[T]{Poly: a, Multiplicity: i})
		}
	}

	return out
}

// musser is the characteristic-p square-free decomposition of a monic f.
func musser[T any](ff algebra.FiniteField[T], f *Polynomial[T]) []Factor[T] {
	var out []Factor[T]

	p := int(ff.Characteristic().Int64())

	df := f.Derivative()
	if df.IsZero() {
		for _, fc := range musser(ff, pthRoot(ff, f, p)) {
			out = append(out, Factor[T]{Poly: fc.Poly, Multiplicity: fc.Multiplicity * p})
		}

		return out
	}

	c := GCD(f, df)
	w := f.mustDiv(c)

	for i := 1; w.Degree() > 0; i++ {
		y := GCD(w, c)
		fac := w.mustDiv(y)
		if fac.Degree() > 0 {
			out = append(out, Factor[T]{Poly: fac.mustMonic(), Multiplicity: i})
		}

		w = y
		c = c.mustDiv(y)
	}

	if c.Degree() > 0 {
		for _, fc := range musser(ff, pthRoot(ff, c.mustMonic(), p)) {
			out = append(out, Factor[T]{Poly: fc.Poly, Multiplicity: fc.Multiplicity * p})
		}
	}

	return out
}

// pthRoot returns g with g^p = f for f whose exponents are all multiples of p.
func pthRoot[T any](ff algebra.FiniteField[T], f *Polynomial[T], p int) *Polynomial[T] {
	n := f.Degree() / p
	out := make([]T, n+1)
	for i := 0; i <= n; i++ {
		out[i] = ff.PthRoot(f.Coeff(i * p))
	}

	return f.r.wrap(out)
}

// IsSquareFree reports whether gcd(f, f') is constant. Zero is not square-free.
func IsSquareFree[T any](f *Polynomial[T]) bool {
	if f.IsZero() {
		return false
	}

	return GCD(f, f.Derivative()).Degree() <= 0
}
