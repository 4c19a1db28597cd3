package poly

import (
	"github.com/jonathanmweiss/go-polyfactor/algebra"
)

// Resultant computes Res(a, b) over an integral domain with the subresultant
// algorithm (Cohen, Algorithm 3.3.7). Res(0, b) = 0.
func Resultant[T any](a, b *Polynomial[T]) T {
	a.checkRing(b)

	k := a.r.k
	dom := algebra.MustIntegralDomain("Resultant", k)

	if a.IsZero() || b.IsZero() {
		return k.Zero()
	}

	t := k.One()
	if _, ok := algebra.AsUFD(k); ok && !algebra.Has(k, algebra.CapField) {
		ca, cb := a.Content(), b.Content()
		t = k.Mul(algebra.Pow(k, ca, uint64(b.Degree())), algebra.Pow(k, cb, uint64(a.Degree())))
		a, b = a.PrimitivePart(), b.PrimitivePart()
	}

	s := k.One()
	if a.Degree() < b.Degree() {
		a, b = b, a
		if a.Degree()%2 == 1 && b.Degree()%2 == 1 {
			s = k.Neg(s)
		}
	}

	if b.Degree() == 0 {
		return k.Mul(t, k.Mul(s, algebra.Pow(k, b.Lead(), uint64(a.Degree()))))
	}

	g := k.One()
	h := k.One()
	for {
		delta := a.Degree() - b.Degree()
		if a.Degree()%2 == 1 && b.Degree()%2 == 1 {
			s = k.Neg(s)
		}

		r := a.PseudoRem(b)
		a = b
		if r.IsZero() {
			return k.Zero()
		}

		b = r.mustDivScalar(k.Mul(g, algebra.Pow(k, h, uint64(delta))))
		g = a.Lead()
		h = nextH(dom, h, g, delta)

		if b.Degree() == 0 {
			break
		}
	}

	// h <- h^(1-deg a) * lc(b)^deg a
	da := a.Degree()
	lb := algebra.Pow(k, b.Lead(), uint64(da))
	if da == 0 {
		h = k.Mul(h, lb)
	} else {
		q, err := dom.Div(lb, algebra.Pow(k, h, uint64(da-1)))
		if err != nil {
			panic(err)
		}
		h = q
	}

	return k.Mul(s, k.Mul(t, h))
}

// Discriminant is (-1)^(n(n-1)/2) * Res(f, f') / lc(f) for deg f = n >= 1.
func Discriminant[T any](f *Polynomial[T]) (T, error) {
	k := f.r.k
	dom := algebra.MustIntegralDomain("Discriminant", k)

	n := f.Degree()
	if n < 1 {
		var zero T
		return zero, ErrZeroPolynomial
	}

	if n == 1 {
		return k.One(), nil
	}

	res := Resultant(f, f.Derivative())
	d, err := dom.Div(res, f.Lead())
	if err != nil {
		var zero T
		return zero, err
	}

	if (n*(n-1)/2)%2 == 1 {
		d = k.Neg(d)
	}

	return d, nil
}
