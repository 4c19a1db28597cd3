package poly

import (
	"github.com/jonathanmweiss/go-polyfactor/algebra"
)

// GCD returns a greatest common divisor of f and g with a canonical leading
// coefficient: monic over a field, canonical associate over a UFD.
//
// Over a field it runs the Euclidean remainder sequence. Without inverses it runs the
// subresultant pseudo-remainder sequence, which keeps coefficients integral and
// bounded. gcd(0, g) is the normalized g, and gcd(0, 0) is 0. Coefficient structures
// that are not integral domains cause a *algebra.CapabilityError panic.
func GCD[T any](f, g *Polynomial[T]) *Polynomial[T] {
	f.checkRing(g)

	k := f.r.k
	switch {
	case algebra.Has(k, algebra.CapField):
		return euclideanGCD(f, g)
	case algebra.Has(k, algebra.CapUFD):
		return primitiveGCD(f, g)
	case algebra.Has(k, algebra.CapIntegralDomain):
		return subresultantGCD(f, g)
	}

	algebra.Violation("GCD", k, algebra.CapIntegralDomain)

	return nil
}

func euclideanGCD[T any](a, b *Polynomial[T]) *Polynomial[T] {
	for !b.IsZero() {
		_, r, err := a.QuoRem(b)
		if err != nil {
			panic(err)
		}

		a, b = b, r
	}

	if a.IsZero() {
		return a
	}

	return a.mustMonic()
}

// primitiveGCD splits contents and primitive parts, then runs the subresultant
// sequence on the primitive parts.
func primitiveGCD[T any](f, g *Polynomial[T]) *Polynomial[T] {
	ufd, _ := algebra.AsUFD(f.r.k)

	switch {
	case f.IsZero() && g.IsZero():
		return f
	case f.IsZero():
		_, n := normalize(g)
		return n
	case g.IsZero():
		_, n := normalize(f)
		return n
	}

	_, d := ufd.Canonical(ufd.GCD(f.Content(), g.Content()))

	h := subresultantGCD(f.PrimitivePart(), g.PrimitivePart())
	if h.IsConstant() {
		return f.r.Constant(d)
	}

	_, h = normalize(h.PrimitivePart())

	return h.MulScalar(d)
}

// subresultantGCD follows Cohen, Algorithm 3.3.1, without the content split. The
// result is the last nonzero subresultant, an associate of the gcd up to a scalar
// factor in the coefficient domain.
func subresultantGCD[T any](a, b *Polynomial[T]) *Polynomial[T] {
	switch {
	case a.IsZero():
		_, n := normalize(b)
		return n
	case b.IsZero():
		_, n := normalize(a)
		return n
	}

	if b.Degree() > a.Degree() {
		a, b = b, a
	}

	k := a.r.k
	dom := algebra.MustIntegralDomain("GCD", k)

	g := k.One()
	h := k.One()
	for {
		delta := a.Degree() - b.Degree()

		r := a.PseudoRem(b)
		if r.IsZero() {
			return b
		}

		if r.Degree() == 0 {
			return a.r.One()
		}

		a = b
		b = r.mustDivScalar(k.Mul(g, algebra.Pow(k, h, uint64(delta))))

		g = a.Lead()
		h = nextH(dom, h, g, delta)
	}
}

// nextH computes h^(1-delta) * g^delta exactly.
func nextH[T any](dom algebra.IntegralDomain[T], h, g T, delta int) T {
	switch delta {
	case 0:
		return h
	case 1:
		return g
	}

	q, err := dom.Div(algebra.Pow(dom, g, uint64(delta)), algebra.Pow(dom, h, uint64(delta-1)))
	if err != nil {
		panic(err)
	}

	return q
}

// ExtendedGCD returns gcd, u, v with u*f + v*g = gcd and gcd monic. It requires a
// coefficient field.
func ExtendedGCD[T any](f, g *Polynomial[T]) (gcd, u, v *Polynomial[T]) {
	f.checkRing(g)
	fld := algebra.MustField("ExtendedGCD", f.r.k)

	r := f.r
	switch {
	case f.IsZero() && g.IsZero():
		return r.Zero(), r.Zero(), r.Zero()
	case f.IsZero():
		inv := fld.Inv(g.Lead())
		return g.MulScalar(inv), r.Zero(), r.Constant(inv)
	}

	gcd, u, v = PartialExtendedEuclidean(f, g, 0)

	inv := fld.Inv(gcd.Lead())

	return gcd.MulScalar(inv), u.MulScalar(inv), v.MulScalar(inv)
}

// PartialExtendedEuclidean runs the extended Euclidean algorithm until the remainder
// degree falls below stopDegree, returning the current remainder and its Bezout
// coefficients: gcd = x*a + y*b. Over a field only.
func PartialExtendedEuclidean[T any](a, b *Polynomial[T], stopDegree int) (gcd, x, y *Polynomial[T]) {
	algebra.MustField("PartialExtendedEuclidean", a.r.k)

	r := a.r
	A, B := a, b

	// Invariants:
	//   A = x0*a + y0*b
	//   B = x1*a + y1*b
	x0, x1 := r.One(), r.Zero()
	y0, y1 := r.Zero(), r.One()

	for !A.IsZero() && A.Degree() >= stopDegree {
		if B.IsZero() {
			break
		}

		q, rem, err := A.QuoRem(B)
		if err != nil {
			panic(err)
		}
		A, B = B, rem

		x0, x1 = x1, x0.Sub(q.Mul(x1))
		y0, y1 = y1, y0.Sub(q.Mul(y1))
	}

	return A, x0, y0
}
