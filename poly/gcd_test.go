package poly

import (
	"math/big"
	"testing"

	"github.com/jonathanmweiss/go-polyfactor/algebra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func assertCapabilityPanic(t *testing.T, fn func()) {
	t.Helper()

	defer func() {
		r := recover()
		_, ok := r.(*algebra.CapabilityError)
		assert.True(t, ok, "expected *algebra.CapabilityError panic, got %v", r)
	}()

	fn()
}

func TestGCDIntegers(t *testing.T) {
	zx := intRing()

	t.Run("x^4-1,x^6-1", func(t *testing.T) {
		h := GCD(zx.FromInt64s(-1, 0, 0, 0, 1), zx.FromInt64s(-1, 0, 0, 0, 0, 0, 1))
		assertPolyEqual(t, zx.FromInt64s(-1, 0, 1), h)
	})

	t.Run("content", func(t *testing.T) {
		h := GCD(zx.FromInt64s(-4, 0, 4), zx.FromInt64s(-6, 6))
		assertPolyEqual(t, zx.FromInt64s(-2, 2), h)
	})

	t.Run("coprime", func(t *testing.T) {
		h := GCD(zx.FromInt64s(1, 0, 1), zx.FromInt64s(-1, 1))
		assertPolyEqual(t, zx.One(), h)
	})

	t.Run("positiveLead", func(t *testing.T) {
		h := GCD(zx.FromInt64s(2, -1), zx.FromInt64s(-4, 0, 1))
		assertPolyEqual(t, zx.FromInt64s(-2, 1), h)
	})
}

func TestGCDZeroBoundaries(t *testing.T) {
	a := assert.New(t)

	zx := intRing()
	assertPolyEqual(t, zx.FromInt64s(-4, 2), GCD(zx.Zero(), zx.FromInt64s(4, -2)))
	assertPolyEqual(t, zx.FromInt64s(-4, 2), GCD(zx.FromInt64s(4, -2), zx.Zero()))
	a.True(GCD(zx.Zero(), zx.Zero()).IsZero())

	qx := ratRing()
	assertPolyEqual(t, qx.FromInt64s(2, 1), GCD(qx.Zero(), qx.FromInt64s(4, 2)))
	a.True(GCD(qx.Zero(), qx.Zero()).IsZero())
}

func TestGCDFiniteField(t *testing.T) {
	gf := gfRing(5)

	h := GCD(gf.FromInt64s(1, 0, 1), gf.FromInt64s(-2, 1))
	assertPolyEqual(t, gf.FromInt64s(3, 1), h)

	// x^4 - 1 = prod (x - a) over GF(5)
	h = GCD(gf.FromInt64s(-1, 0, 0, 0, 1), gf.FromInt64s(2, 3, 1))
	assertPolyEqual(t, gf.FromInt64s(2, 3, 1), h)
}

func TestGCDTower(t *testing.T) {
	zy := NewRing[*big.Int](algebra.Z, WithVariable[*big.Int]("y"))
	zyx := NewRing[*Polynomial[*big.Int]](zy)

	y := zy.X()
	one := zy.One()
	x := zyx.X()

	xMinusY := x.Sub(zyx.Constant(y))
	f := xMinusY.Mul(x.Add(zyx.Constant(y)))   // x^2 - y^2
	g := xMinusY.Mul(x.Add(zyx.Constant(one))) // (x - y)(x + 1)

	assertPolyEqual(t, xMinusY, GCD(f, g))
	assertPolyEqual(t, xMinusY, GCD(g, f))
}

func TestGCDWithoutDomainPanics(t *testing.T) {
	z6, err := algebra.NewIntegersMod(big.NewInt(6))
	require.NoError(t, err)

	r := NewRing[*big.Int](z6)
	assertCapabilityPanic(t, func() { GCD(r.FromInt64s(1, 1), r.FromInt64s(2, 1)) })
}

func TestExtendedGCD(t *testing.T) {
	a := assert.New(t)
	qx := ratRing()

	f := qx.FromInt64s(-1, 0, 1)
	g := qx.FromInt64s(1, -2, 1)

	h, u, v := ExtendedGCD(f, g)
	assertPolyEqual(t, qx.FromInt64s(-1, 1), h)
	assertPolyEqual(t, h, u.Mul(f).Add(v.Mul(g)))

	h, u, v = ExtendedGCD(qx.Zero(), qx.FromInt64s(4, 2))
	assertPolyEqual(t, qx.FromInt64s(2, 1), h)
	a.True(u.IsZero())
	assertPolyEqual(t, qx.New([]*big.Rat{big.NewRat(1, 2)}), v)

	h, _, _ = ExtendedGCD(qx.Zero(), qx.Zero())
	a.True(h.IsZero())

	gf := gfRing(7)
	f2 := gf.FromInt64s(3, 1, 4, 1)
	g2 := gf.FromInt64s(2, 5)
	h2, u2, v2 := ExtendedGCD(f2, g2)
	a.Equal(0, h2.Degree())
	assertPolyEqual(t, h2, u2.Mul(f2).Add(v2.Mul(g2)))

	zx := intRing()
	assertCapabilityPanic(t, func() { ExtendedGCD(zx.One(), zx.One()) })
}

func TestPartialExtendedEuclidean(t *testing.T) {
	gf := gfRing(7)

	a := gf.FromInt64s(0, 0, 0, 0, 0, 1) // x^5
	b := gf.FromInt64s(1, 2, 3, 4, 5)

	r, x, y := PartialExtendedEuclidean(a, b, 3)
	assert.Less(t, r.Degree(), 3)
	assertPolyEqual(t, r, x.Mul(a).Add(y.Mul(b)))
}

func TestResultant(t *testing.T) {
	a := assert.New(t)
	zx := intRing()

	a.Equal(int64(-2), Resultant(zx.FromInt64s(-2, 0, 1), zx.X()).Int64())
	a.Equal(int64(4), Resultant(zx.FromInt64s(1, 0, 1), zx.FromInt64s(-1, 0, 1)).Int64())
	a.Equal(int64(2), Resultant(zx.X(), zx.FromInt64s(2, 0, 0, 1)).Int64())
	a.Equal(int64(-2), Resultant(zx.FromInt64s(2, 0, 0, 1), zx.X()).Int64())
	a.Equal(int64(9), Resultant(zx.FromInt64s(3), zx.FromInt64s(1, 0, 1)).Int64())
	a.Equal(0, Resultant(zx.Zero(), zx.X()).Sign())

	common := zx.FromInt64s(-1, 1)
	a.Equal(0, Resultant(common.Mul(zx.FromInt64s(-2, 1)), common.Mul(zx.FromInt64s(5, 1))).Sign())

	qx := ratRing()
	a.Equal(0, big.NewRat(4, 1).Cmp(Resultant(qx.FromInt64s(1, 0, 1), qx.FromInt64s(-1, 0, 1))))
}

func TestDiscriminant(t *testing.T) {
	a := assert.New(t)
	zx := intRing()

	d, err := Discriminant(zx.FromInt64s(6, -5, 1))
	a.NoError(err)
	a.Equal(int64(1), d.Int64())

	d, err = Discriminant(zx.FromInt64s(-2, 0, 0, 1))
	a.NoError(err)
	a.Equal(int64(-108), d.Int64())

	d, err = Discriminant(zx.FromInt64s(-1, 0, 1).Mul(zx.FromInt64s(-1, 1)))
	a.NoError(err)
	a.Equal(0, d.Sign())

	_, err = Discriminant(zx.FromInt64s(5))
	a.ErrorIs(err, ErrZeroPolynomial)
}

func FuzzGCDDivides(f *testing.F) {
	f.Add([]byte{1, 0, 255, 3}, []byte{255, 1})
	f.Add([]byte{2, 4, 2}, []byte{1, 2, 1, 0, 7})
	f.Add([]byte{}, []byte{5})

	zx := intRing()
	toPoly := func(bs []byte) *Polynomial[*big.Int] {
		if len(bs) > 10 {
			bs = bs[:10]
		}

		cs := make([]int64, len(bs))
		for i, b := range bs {
			cs[i] = int64(int8(b))
		}

		return zx.FromInt64s(cs...)
	}

	f.Fuzz(func(t *testing.T, fb, gb []byte) {
		p, q := toPoly(fb), toPoly(gb)
		common := zx.FromInt64s(3, -1, 2)

		p, q = p.Mul(common), q.Mul(common)
		h := GCD(p, q)

		if p.IsZero() && q.IsZero() {
			if !h.IsZero() {
				t.Fatalf("gcd(0, 0) = %s", h)
			}
			return
		}

		for _, x := range []*Polynomial[*big.Int]{p, q} {
			if _, err := x.ExactDiv(h); err != nil {
				t.Fatalf("gcd %s does not divide %s", h, x)
			}
		}

		if _, err := h.ExactDiv(common); err != nil {
			t.Fatalf("common factor %s does not divide gcd %s", common, h)
		}
	})
}

func BenchmarkGCD(b *testing.B) {
	zx := intRing()

	f := zx.FromInt64s(-1, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 1)
	g := zx.FromInt64s(-1, 0, 0, 0, 0, 0, 0, 0, 1)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		GCD(f, g)
	}
}
