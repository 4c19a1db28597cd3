package extension

import (
	"errors"
	"math/big"

	"github.com/jonathanmweiss/go-polyfactor/algebra"
	"github.com/jonathanmweiss/go-polyfactor/poly"
)

var (
	ErrModulusDegree    = errors.New("extension modulus must have degree at least 1")
	ErrReducibleModulus = errors.New("extension modulus is reducible")
	ErrNotSquareFree    = errors.New("extension modulus is not square-free")
	ErrNoModulus        = errors.New("extension modulus not set")
)

// NumberField is Q(a) = Q[a]/(m(a)) for an irreducible m.
// Elements are *poly.Polynomial[*big.Rat] in the variable a.
type NumberField struct {
	*quotient[*big.Rat]
}

var _ algebra.Field[*poly.Polynomial[*big.Rat]] = (*NumberField)(nil)

func (k *NumberField) Capabilities() algebra.Capability { return algebra.FieldCaps }

func (k *NumberField) String() string {
	return "Q[" + k.ring.Variable() + "]/(" + k.modulus.String() + ")"
}

// FromRat embeds a rational constant; it never fails.
func (k *NumberField) FromRat(r *big.Rat) (*poly.Polynomial[*big.Rat], error) {
	return k.Embed(new(big.Rat).Set(r)), nil
}

// Norm is the product of the conjugates of e, Res(m, e) for monic m.
func (k *NumberField) Norm(e *poly.Polynomial[*big.Rat]) *big.Rat {
	return poly.Resultant(k.modulus, e)
}

// Trace is the sum of the conjugates of e.
func (k *NumberField) Trace(e *poly.Polynomial[*big.Rat]) *big.Rat {
	return k.multiplicationTrace(e)
}

// CharPoly is Res_a(m(a), x - e(a)), a monic polynomial of degree [K : Q] in x.
// It is interpolated from its values Norm(t - e) at t = 0..n.
func (k *NumberField) CharPoly(e *poly.Polynomial[*big.Rat], variable string) *poly.Polynomial[*big.Rat] {
	qx := poly.NewRing[*big.Rat](algebra.Q, poly.WithVariable[*big.Rat](variable))

	n := k.Degree()
	xs := make([]*big.Rat, n+1)
	ys := make([]*big.Rat, n+1)
	for t := 0; t <= n; t++ {
		xs[t] = new(big.Rat).SetInt64(int64(t))
		ys[t] = k.Norm(k.Sub(k.FromInt64(int64(t)), e))
	}

	chi, err := poly.NewInterpolator(qx).Interpolate(xs, ys)
	if err != nil {
		panic(err)
	}

	return chi
}

// MinPoly is the monic minimal polynomial of e over Q. The characteristic
// polynomial of e is a power of it, so it is the square-free part of CharPoly.
func (k *NumberField) MinPoly(e *poly.Polynomial[*big.Rat], variable string) *poly.Polynomial[*big.Rat] {
	chi := k.CharPoly(e, variable)

	g := poly.GCD(chi, chi.Derivative())
	if g.Degree() == 0 {
		return chi
	}

	mp, err := chi.ExactDiv(g)
	if err != nil {
		panic(err)
	}

	return mp
}

// NormPoly maps g in K[x] to Res_a(m(a), g(x, a)) in Q[x], the product of the
// conjugates of g. Its degree is [K : Q] * deg g.
func (k *NumberField) NormPoly(g *poly.Polynomial[*poly.Polynomial[*big.Rat]]) *poly.Polynomial[*big.Rat] {
	qx := poly.NewRing[*big.Rat](algebra.Q, poly.WithVariable[*big.Rat](g.Ring().Variable()))
	if g.IsZero() {
		return qx.Zero()
	}

	d := k.Degree() * g.Degree()
	xs := make([]*big.Rat, d+1)
	ys := make([]*big.Rat, d+1)
	for t := 0; t <= d; t++ {
		xs[t] = new(big.Rat).SetInt64(int64(t))
		ys[t] = k.Norm(g.Eval(k.FromInt64(int64(t))))
	}

	np, err := poly.NewInterpolator(qx).Interpolate(xs, ys)
	if err != nil {
		panic(err)
	}

	return np
}

// Discriminant of the defining polynomial.
func (k *NumberField) Discriminant() *big.Rat {
	d, err := poly.Discriminant(k.modulus)
	if err != nil {
		panic(err)
	}

	return d
}

// IsAlgebraicInteger reports whether the minimal polynomial of e has integral coefficients.
func (k *NumberField) IsAlgebraicInteger(e *poly.Polynomial[*big.Rat]) bool {
	for _, c := range k.MinPoly(e, "x").Coefficients() {
		if !c.IsInt() {
			return false
		}
	}

	return true
}
