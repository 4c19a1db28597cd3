package extension

import (
	"math/big"
	"testing"

	"github.com/jonathanmweiss/go-polyfactor/algebra"
	"github.com/jonathanmweiss/go-polyfactor/field"
	"github.com/jonathanmweiss/go-polyfactor/poly"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/errgo.v1"
)

type ratPoly = poly.Polynomial[*big.Rat]

func qRing(variable string) *poly.Ring[*big.Rat] {
	return poly.NewRing[*big.Rat](algebra.Q, poly.WithVariable[*big.Rat](variable))
}

func sqrt2(t *testing.T) *NumberField {
	k, err := NewNumberFieldBuilder().Modulus(qRing("x").FromInt64s(-2, 0, 1)).Build()
	require.NoError(t, err)

	return k
}

func TestNumberFieldArithmetic(t *testing.T) {
	a := assert.New(t)
	k := sqrt2(t)
	alpha := k.Generator()

	a.Equal("Q[a]/(a^2 - 2)", k.String())
	a.Equal(2, k.Degree())
	a.True(k.Equal(k.FromInt64(2), k.Mul(alpha, alpha)))

	inv := k.Inv(alpha)
	a.True(k.Equal(k.One(), k.Mul(alpha, inv)))
	a.True(k.Equal(k.FromCoefficients(big.NewRat(0, 1), big.NewRat(1, 2)), inv))

	onePlus := k.Add(k.One(), alpha)
	a.Equal("a + 1", k.Format(onePlus))

	q, err := k.Div(k.One(), onePlus)
	a.NoError(err)
	// 1/(1+a) = a - 1
	a.True(k.Equal(k.Sub(alpha, k.One()), q))

	_, err = k.Div(k.One(), k.Zero())
	a.Equal(algebra.ErrDivisionByZero, err)

	a.Panics(func() { k.Inv(k.Zero()) })

	a.True(k.Equal(k.FromInt64(4), k.Pow(alpha, big.NewInt(4))))
}

func TestNumberFieldNormTrace(t *testing.T) {
	a := assert.New(t)
	k := sqrt2(t)
	alpha := k.Generator()
	onePlus := k.Add(k.One(), alpha)

	a.Equal("-2", k.Norm(alpha).RatString())
	a.Equal("-1", k.Norm(onePlus).RatString())
	a.Equal("9", k.Norm(k.FromInt64(3)).RatString())

	a.Equal(0, k.Trace(alpha).Sign())
	a.Equal("2", k.Trace(onePlus).RatString())
	a.Equal("2", k.Trace(k.One()).RatString())

	a.Equal("8", k.Discriminant().RatString())
}

func TestNumberFieldMinPoly(t *testing.T) {
	a := assert.New(t)
	k := sqrt2(t)
	qx := qRing("x")
	alpha := k.Generator()

	assert.True(t, qx.FromInt64s(-2, 0, 1).Equal(k.MinPoly(alpha, "x")))
	a.Equal("x^2 - 2*x - 1", k.MinPoly(k.Add(k.One(), alpha), "x").String())
	a.Equal("x - 3", k.MinPoly(k.FromInt64(3), "x").String())
	a.Equal("x^2 - 6*x + 9", k.CharPoly(k.FromInt64(3), "x").String())

	a.True(k.IsAlgebraicInteger(alpha))
	a.False(k.IsAlgebraicInteger(k.Inv(alpha)))
}

func TestNormPoly(t *testing.T) {
	a := assert.New(t)
	k := sqrt2(t)
	kx := poly.NewRing[*ratPoly](k)

	// N(x - a) = (x - a)(x + a)
	g := kx.New([]*ratPoly{k.Neg(k.Generator()), k.One()})
	a.Equal("x^2 - 2", k.NormPoly(g).String())

	// N(x^2 + a*x) = x^2 (x^2 - 2)
	g = kx.New([]*ratPoly{k.Zero(), k.Generator(), k.One()})
	a.Equal("x^4 - 2*x^2", k.NormPoly(g).String())

	a.True(k.NormPoly(kx.Zero()).IsZero())
}

func TestNumberFieldBuilderErrors(t *testing.T) {
	a := assert.New(t)
	qx := qRing("x")

	_, err := NewNumberFieldBuilder().Build()
	a.Equal(ErrNoModulus, err)

	_, err = NewNumberFieldBuilder().Modulus(qx.FromInt64s(5)).Build()
	a.Equal(ErrModulusDegree, errgo.Cause(err))

	_, err = NewNumberFieldBuilder().Modulus(qx.FromInt64s(1, -2, 1)).Build()
	a.Equal(ErrNotSquareFree, errgo.Cause(err))

	k, err := NewNumberFieldBuilder().Variable("t").Modulus(qx.FromInt64s(-3, 0, 2)).Build()
	a.NoError(err)
	a.Equal("Q[t]/(t^2 - 3/2)", k.String())
}

func gf9(t *testing.T) *GaloisField {
	gf3 := field.MustPrimeField(3)
	m := poly.NewRing[uint64](gf3).FromInt64s(1, 1, 2)

	g, err := NewGaloisFieldBuilder(gf3).Modulus(m).Build()
	require.NoError(t, err)

	return g
}

func TestGaloisField(t *testing.T) {
	a := assert.New(t)
	g := gf9(t)

	a.Equal("GF(3^2)", g.String())
	a.Equal("9", g.Order().String())
	a.Equal("a^2 + 2*a + 2", g.Modulus().String())

	seen := map[string]bool{}
	nine := big.NewInt(9)
	for i := uint64(0); i < 9; i++ {
		e := g.Element(i)
		seen[g.Format(e)] = true

		a.True(g.Equal(e, g.Pow(e, nine)), "x^9 = x fails for %s", e)

		r := g.PthRoot(e)
		a.True(g.Equal(e, g.Frobenius(r)))

		if !g.IsZero(e) {
			a.True(g.Equal(g.One(), g.Mul(e, g.Inv(e))))
			a.True(g.Equal(g.One(), g.Pow(e, big.NewInt(8))))
		}
	}
	a.Len(seen, 9)

	e, err := g.Random(nil)
	a.NoError(err)
	a.Less(e.Degree(), 2)

	c, err := g.FromRat(big.NewRat(1, 2))
	a.NoError(err)
	a.True(g.Equal(g.FromInt64(2), c))

	_, err = g.FromRat(big.NewRat(1, 3))
	a.Equal(algebra.ErrNotEmbeddable, err)
}

func TestGaloisFieldBuilder(t *testing.T) {
	a := assert.New(t)
	gf5 := field.MustPrimeField(5)
	r := poly.NewRing[uint64](gf5)

	_, err := NewGaloisFieldBuilder(gf5).Modulus(r.FromInt64s(1, 0, 1)).Build()
	a.Equal(ErrReducibleModulus, errgo.Cause(err))

	_, err = NewGaloisFieldBuilder(gf5).Modulus(r.FromInt64s(5, 10)).Build()
	a.Equal(ErrModulusDegree, errgo.Cause(err))

	_, err = NewGaloisFieldBuilder(gf5).Build()
	a.Equal(ErrNoModulus, err)

	g, err := NewGaloisFieldBuilder(gf5).Modulus(r.FromInt64s(2, 0, 1)).Build()
	a.NoError(err)
	a.Equal("25", g.Order().String())
}

func TestRabinIrreducibility(t *testing.T) {
	a := assert.New(t)
	gf2 := poly.NewRing[uint64](field.MustPrimeField(2))

	tests := []struct {
		coeffs []int64
		want   bool
	}{
		{[]int64{1, 1}, true},
		{[]int64{1, 1, 1}, true},
		{[]int64{1, 0, 1}, false},
		{[]int64{1, 1, 0, 0, 1}, true},
		{[]int64{1, 0, 1, 0, 1}, false},
		{[]int64{1, 1, 1, 1, 1}, true},
		{[]int64{1, 0, 0, 1, 0, 1}, true},
		{[]int64{1, 0, 0, 1, 1, 1, 1}, false},
	}

	for _, tc := range tests {
		got, err := isIrreducible(gf2.FromInt64s(tc.coeffs...), 2)
		a.NoError(err)
		a.Equal(tc.want, got, "%v", gf2.FromInt64s(tc.coeffs...))
	}
}
