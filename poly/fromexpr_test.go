package poly

import (
	"math/big"
	"testing"

	"github.com/jonathanmweiss/go-polyfactor/algebra"
	"github.com/jonathanmweiss/go-polyfactor/expr"
	"github.com/jonathanmweiss/go-polyfactor/field"
	"github.com/stretchr/testify/assert"
	"gopkg.in/errgo.v1"
)

func TestFromExpr(t *testing.T) {
	a := assert.New(t)
	x := expr.S("x")

	t.Run("integers", func(t *testing.T) {
		zx := intRing()
		e := expr.AddOf(expr.PowOf(x, expr.N(2)), expr.MulOf(expr.N(-5), x), expr.N(6))

		p, err := FromExpr(zx, e, algebra.Z.FromRat)
		a.NoError(err)
		assertPolyEqual(t, zx.FromInt64s(6, -5, 1), p)

		// (x - 1)^3
		cube := expr.PowOf(expr.AddOf(x, expr.NegOf(expr.N(1))), expr.N(3))
		p, err = FromExpr(zx, cube, algebra.Z.FromRat)
		a.NoError(err)
		assertPolyEqual(t, zx.FromInt64s(-1, 3, -3, 1), p)
	})

	t.Run("finiteField", func(t *testing.T) {
		gf := NewRing[uint64](field.MustPrimeField(7))
		e := expr.MulOf(expr.F(1, 2), x)

		p, err := FromExpr(gf, e, gf.Coefficients().(*field.PrimeField).FromRat)
		a.NoError(err)
		assertPolyEqual(t, gf.FromInt64s(0, 4), p)
	})

	t.Run("errors", func(t *testing.T) {
		zx := intRing()

		_, err := FromExpr(zx, expr.AddOf(x, expr.S("y")), algebra.Z.FromRat)
		a.Equal(ErrUnknownSymbol, errgo.Cause(err))

		_, err = FromExpr(zx, expr.PowOf(x, expr.F(1, 2)), algebra.Z.FromRat)
		a.Equal(ErrBadExponent, errgo.Cause(err))

		_, err = FromExpr(zx, expr.PowOf(x, expr.N(-1)), algebra.Z.FromRat)
		a.Equal(ErrBadExponent, errgo.Cause(err))

		_, err = FromExpr(zx, expr.PowOf(x, x), algebra.Z.FromRat)
		a.Equal(ErrBadExponent, errgo.Cause(err))

		_, err = FromExpr(zx, expr.F(1, 2), algebra.Z.FromRat)
		a.Equal(algebra.ErrNotEmbeddable, errgo.Cause(err))
	})

	t.Run("variableName", func(t *testing.T) {
		qt := NewRing[*big.Rat](algebra.Q, WithVariable[*big.Rat]("t"))

		p, err := FromExpr(qt, expr.AddOf(expr.S("t"), expr.F(1, 3)), algebra.Q.FromRat)
		a.NoError(err)
		a.Equal("t + 1/3", p.String())
	})
}
