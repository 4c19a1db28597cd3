package poly

import (
	"fmt"
)

func (p *Polynomial[T]) checkRing(q *Polynomial[T]) {
	if p.r != q.r && p.r.k != q.r.k {
		panic(fmt.Sprintf("mixing polynomials over %s and %s", p.r.k, q.r.k))
	}
}

func (p *Polynomial[T]) Add(q *Polynomial[T]) *Polynomial[T] {
	p.checkRing(q)

	k := p.r.k
	n := max(len(p.coeffs), len(q.coeffs))
	out := make([]T, n)
	for i := 0; i < n; i++ {
		switch {
		case i >= len(p.coeffs):
			out[i] = q.coeffs[i]
		case i >= len(q.coeffs):
			out[i] = p.coeffs[i]
		default:
			out[i] = k.Add(p.coeffs[i], q.coeffs[i])
		}
	}

	return p.r.wrap(out)
}

func (p *Polynomial[T]) Sub(q *Polynomial[T]) *Polynomial[T] {
	p.checkRing(q)

	k := p.r.k
	n := max(len(p.coeffs), len(q.coeffs))
	out := make([]T, n)
	for i := 0; i < n; i++ {
		switch {
		case i >= len(p.coeffs):
			out[i] = k.Neg(q.coeffs[i])
		case i >= len(q.coeffs):
			out[i] = p.coeffs[i]
		default:
			out[i] = k.Sub(p.coeffs[i], q.coeffs[i])
		}
	}

	return p.r.wrap(out)
}

func (p *Polynomial[T]) Neg() *Polynomial[T] {
	out := make([]T, len(p.coeffs))
	for i, c := range p.coeffs {
		out[i] = p.r.k.Neg(c)
	}

	return p.r.wrap(out)
}

func (p *Polynomial[T]) Mul(q *Polynomial[T]) *Polynomial[T] {
	p.checkRing(q)

	if p.IsZero() || q.IsZero() {
		return p.r.Zero()
	}

	return p.r.wrap(p.r.convolve(p.coeffs, q.coeffs))
}

// convolve is the multiplication primitive: out[i+j] += a[i] * b[j].
func (r *Ring[T]) convolve(a, b []T) []T {
	if r.mul != nil {
		return r.mul.Multiply(a, b)
	}

	k := r.k
	out := make([]T, len(a)+len(b)-1)
	for i := range out {
		out[i] = k.Zero()
	}

	for i, ai := range a {
		if k.IsZero(ai) {
			continue
		}

		for j, bj := range b {
			out[i+j] = k.Add(out[i+j], k.Mul(ai, bj))
		}
	}

	return out
}

// MulScalar returns c*p.
func (p *Polynomial[T]) MulScalar(c T) *Polynomial[T] {
	out := make([]T, len(p.coeffs))
	for i, pc := range p.coeffs {
		out[i] = p.r.k.Mul(pc, c)
	}

	return p.r.wrap(out)
}

// ShiftLeft returns p*x^n.
func (p *Polynomial[T]) ShiftLeft(n int) *Polynomial[T] {
	if p.IsZero() || n == 0 {
		return p
	}

	out := make([]T, n+len(p.coeffs))
	for i := 0; i < n; i++ {
		out[i] = p.r.k.Zero()
	}
	copy(out[n:], p.coeffs)

	return p.r.wrap(out)
}

// Eval evaluates p at x with Horner's rule.
func (p *Polynomial[T]) Eval(x T) T {
	k := p.r.k

	result := k.Zero()
	for i := len(p.coeffs) - 1; i >= 0; i-- {
		result = k.Add(p.coeffs[i], k.Mul(x, result))
	}

	return result
}

// Derivative is the formal derivative; in characteristic p the coefficients i*c_i
// with p | i vanish.
func (p *Polynomial[T]) Derivative() *Polynomial[T] {
	if len(p.coeffs) <= 1 {
		return p.r.Zero()
	}

	k := p.r.k
	out := make([]T, len(p.coeffs)-1)
	for i := 1; i < len(p.coeffs); i++ {
		out[i-1] = k.Mul(k.FromInt64(int64(i)), p.coeffs[i])
	}

	return p.r.wrap(out)
}

// Pow computes p^e by repeated squaring.
func (p *Polynomial[T]) Pow(e uint) *Polynomial[T] {
	x := p.r.One()
	base := p
	for e > 0 {
		if e%2 == 1 {
			x = x.Mul(base)
		}

		e /= 2
		if e > 0 {
			base = base.Mul(base)
		}
	}

	return x
}

// Compose returns p(q).
func (p *Polynomial[T]) Compose(q *Polynomial[T]) *Polynomial[T] {
	p.checkRing(q)

	result := p.r.Zero()
	for i := len(p.coeffs) - 1; i >= 0; i-- {
		result = result.Mul(q).Add(p.r.Constant(p.coeffs[i]))
	}

	return result
}

// Product multiplies all polys; the empty product is one.
func (r *Ring[T]) Product(polys ...*Polynomial[T]) *Polynomial[T] {
	out := r.One()
	for _, p := range polys {
		out = out.Mul(p)
	}

	return out
}
