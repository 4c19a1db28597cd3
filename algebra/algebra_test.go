package algebra

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCapabilities(t *testing.T) {
	a := assert.New(t)

	a.Equal("none", Capability(0).String())
	a.Equal("Ring|CommutativeRing", RingCaps.String())
	a.Equal("Ring|CommutativeRing|IntegralDomain|EuclideanDomain|UniqueFactorizationDomain|Field", FieldCaps.String())

	a.True(Has(Z, EuclidCaps))
	a.False(Has(Z, CapField))
	a.True(Has(Q, FieldCaps))

	_, ok := AsField[*big.Int](Z)
	a.False(ok)

	_, ok = AsEuclidean[*big.Int](Z)
	a.True(ok)

	_, ok = AsFiniteField[*big.Rat](Q)
	a.False(ok)

	u, ok := AsUnits[*big.Rat](Q)
	a.True(ok)
	inv, ok := u.UnitInverse(big.NewRat(2, 3))
	a.True(ok)
	a.Equal("3/2", inv.RatString())

	_, ok = u.UnitInverse(new(big.Rat))
	a.False(ok)
}

func TestMustFieldPanics(t *testing.T) {
	a := assert.New(t)

	var r any
	func() {
		defer func() { r = recover() }()
		MustField[*big.Int]("test", Z)
	}()

	err, ok := r.(*CapabilityError)
	a.True(ok)
	a.Equal(CapField, err.Missing)
	a.Equal("test: structure Z lacks capability Field", err.Error())
}

func TestIntegers(t *testing.T) {
	a := assert.New(t)

	q, r := Z.QuoRem(big.NewInt(-7), big.NewInt(2))
	a.Equal("-4", q.String())
	a.Equal("1", r.String())

	_, err := Z.Div(big.NewInt(6), big.NewInt(4))
	a.Equal(ErrNotDivisible, err)

	_, err = Z.Div(big.NewInt(6), new(big.Int))
	a.Equal(ErrDivisionByZero, err)

	u, c := Z.Canonical(big.NewInt(-12))
	a.Equal("-1", u.String())
	a.Equal("12", c.String())

	_, err = Z.FromRat(big.NewRat(1, 2))
	a.Equal(ErrNotEmbeddable, err)

	a.Equal("6", Z.GCD(big.NewInt(-12), big.NewInt(18)).String())
	a.Equal("243", Pow[*big.Int](Z, big.NewInt(3), 5).String())
	a.Equal("8/27", PowBig[*big.Rat](Q, big.NewRat(2, 3), big.NewInt(3)).RatString())
}

func TestDivisors(t *testing.T) {
	a := assert.New(t)

	tests := []struct {
		n    int64
		want []string
	}{
		{1, []string{"1"}},
		{12, []string{"1", "2", "3", "4", "6", "12"}},
		{-12, []string{"1", "2", "3", "4", "6", "12"}},
		{49, []string{"1", "7", "49"}},
	}

	for _, tt := range tests {
		divs, err := Z.Divisors(big.NewInt(tt.n))
		a.NoError(err)

		got := make([]string, len(divs))
		for i, d := range divs {
			got[i] = d.String()
		}
		a.Equal(tt.want, got, "divisors of %d", tt.n)
	}

	_, err := Z.Divisors(new(big.Int))
	a.Equal(ErrDivisionByZero, err)
}

func TestFactorInt(t *testing.T) {
	a := assert.New(t)

	a.Empty(FactorInt(big.NewInt(0)))
	a.Empty(FactorInt(big.NewInt(-1)))

	pp := FactorInt(big.NewInt(-360))
	require.Len(t, pp, 3)
	a.Equal("2", pp[0].Prime.String())
	a.Equal(3, pp[0].Exp)
	a.Equal("3", pp[1].Prime.String())
	a.Equal(2, pp[1].Exp)
	a.Equal("5", pp[2].Prime.String())
	a.Equal(1, pp[2].Exp)

	mersenne := new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 61), big.NewInt(1))
	pp = FactorInt(new(big.Int).Mul(mersenne, big.NewInt(3)))
	require.Len(t, pp, 2)
	a.Equal("3", pp[0].Prime.String())
	a.Equal(mersenne.String(), pp[1].Prime.String())

	a.True(IsPrime(mersenne))
	a.False(IsPrime(big.NewInt(1)))
	a.False(IsPrime(big.NewInt(91)))
}

func TestIntegersMod(t *testing.T) {
	a := assert.New(t)

	_, err := NewIntegersMod(big.NewInt(1))
	a.Error(err)

	t.Run("composite", func(t *testing.T) {
		z6, err := NewIntegersMod(big.NewInt(6))
		require.NoError(t, err)

		a.Equal("Z/6Z", z6.String())
		a.Equal(RingCaps, z6.Capabilities())

		inv, ok := z6.UnitInverse(big.NewInt(5))
		a.True(ok)
		a.Equal("5", inv.String())

		_, ok = z6.UnitInverse(big.NewInt(2))
		a.False(ok)

		a.Panics(func() { z6.Inv(big.NewInt(5)) })

		v, err := z6.FromRat(big.NewRat(1, 5))
		a.NoError(err)
		a.Equal("5", v.String())

		_, err = z6.FromRat(big.NewRat(1, 3))
		a.Equal(ErrNotEmbeddable, err)
	})

	t.Run("prime", func(t *testing.T) {
		z7, err := NewIntegersMod(big.NewInt(7))
		require.NoError(t, err)

		_, ok := AsFiniteField[*big.Int](z7)
		a.True(ok)

		a.Equal("5", z7.Inv(big.NewInt(3)).String())
		a.Equal("6", z7.FromInt64(-1).String())
		a.True(z7.Equal(big.NewInt(9), big.NewInt(2)))

		seen := map[string]bool{}
		for i := uint64(0); i < 7; i++ {
			seen[z7.Element(i).String()] = true
		}
		a.Len(seen, 7)
	})

	t.Run("symmetric", func(t *testing.T) {
		z10, err := NewIntegersMod(big.NewInt(10))
		require.NoError(t, err)

		a.Equal("4", z10.Symmetric(big.NewInt(4)).String())
		a.Equal("-5", z10.Symmetric(big.NewInt(5)).String())
		a.Equal("-1", z10.Symmetric(big.NewInt(19)).String())

		z7, err := NewIntegersMod(big.NewInt(7))
		require.NoError(t, err)

		a.Equal("3", z7.Symmetric(big.NewInt(3)).String())
		a.Equal("-3", z7.Symmetric(big.NewInt(4)).String())
	})
}

func TestRationals(t *testing.T) {
	a := assert.New(t)

	a.Equal("1/2", Q.Format(big.NewRat(2, 4)))
	a.Equal("-3", Q.Format(big.NewRat(-6, 2)))

	_, err := Q.Div(big.NewRat(1, 1), new(big.Rat))
	a.Equal(ErrDivisionByZero, err)

	a.Panics(func() { Q.Inv(new(big.Rat)) })

	u, c := Q.Canonical(big.NewRat(-2, 3))
	a.Equal("-2/3", u.RatString())
	a.Equal("1", c.RatString())
}
