package field

import (
	"math"
	"math/big"
	"testing"

	"github.com/jonathanmweiss/go-polyfactor/algebra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tuneinsight/lattigo/v6/utils/sampling"
)

const largePrime = 9191248642791733759

func TestRootsOfUnity(t *testing.T) {
	a := assert.New(t)

	f, err := NewPrimeField(65537)
	a.NoError(err)

	root, err := f.GetRootOfUnity(4)
	a.NoError(err)
	a.Equal(uint64(1), f.Pow(root, 4))
	a.NotEqual(uint64(1), f.Pow(root, 2))

	root, err = f.GetRootOfUnity(8)
	a.NoError(err)
	a.Equal(uint64(1), f.Pow(root, 8))
	a.NotEqual(uint64(1), f.Pow(root, 4))

	_, err = f.GetRootOfUnity(3)
	a.ErrorIs(err, errNotPowerOfTwo)

	f, err = NewPrimeField(157)
	a.NoError(err)

	_, err = f.GetRootOfUnity(8)
	a.ErrorIs(err, errNotDivisible)
}

func TestNewPrimeField(t *testing.T) {
	a := assert.New(t)

	_, err := NewPrimeField(15)
	a.ErrorIs(err, errNotPrime)

	_, err = NewPrimeField(1 << 63)
	a.ErrorIs(err, errPrimeTooLarge)

	for _, p := range []uint64{2, 3, 5, 7} {
		f, err := NewPrimeField(p)
		a.NoError(err)
		a.Equal(p, f.Modulus())
		a.True(algebra.Has(f, algebra.CapFiniteField))
	}
}

func TestCorrectOps(t *testing.T) {
	a := assert.New(t)

	f, err := NewPrimeField(largePrime) // p > 2^62
	a.NoError(err)

	n := uint64((1 << 63) - 1)
	e1 := f.Reduce(n)

	e2 := new(big.Int).SetUint64(n)
	e2.Mul(e2, e2)
	e2.Mod(e2, f.asBigInt)

	a.Equal(e2.Uint64(), f.Mul(e1, e1))
	a.Equal(uint64(1), f.Mul(e1, f.Inv(e1)))
}

func TestFromInt64AndRat(t *testing.T) {
	a := assert.New(t)
	f := MustPrimeField(7)

	a.Equal(uint64(4), f.FromInt64(-3))
	a.Equal(uint64(0), f.FromInt64(-14))
	a.Equal(uint64(3), f.FromInt64(10))
	a.Equal(uint64(6), f.FromInt64(math.MinInt64)) // 2^63 = 8^21 = 1 (mod 7)

	v, err := f.FromRat(big.NewRat(1, 2))
	a.NoError(err)
	a.Equal(uint64(4), v)

	_, err = f.FromRat(big.NewRat(1, 14))
	a.ErrorIs(err, algebra.ErrNotEmbeddable)

	_, err = f.Div(3, 0)
	a.ErrorIs(err, algebra.ErrDivisionByZero)
	a.Panics(func() { f.Inv(0) })
}

func TestUnreducedOperands(t *testing.T) {
	a := assert.New(t)
	f := MustPrimeField(5)

	a.Equal(uint64(3), f.Neg(12))
	a.Equal(uint64(3), f.Sub(0, 12))
	a.Equal(uint64(4), f.Sub(12, 3))
	a.Equal(uint64(1), f.Add(12, 14))
	a.Equal(uint64(0), f.Add(math.MaxUint64, math.MaxUint64)) // 2^64 = 1 (mod 5)
	a.Equal(uint64(4), f.Mul(12, 7))
	a.Equal("2", f.Format(12))

	u, c := f.Canonical(13)
	a.Equal(uint64(3), u)
	a.Equal(uint64(1), c)

	wide := MustPrimeField(largePrime)
	a.Less(wide.Add(math.MaxUint64, math.MaxUint64), uint64(largePrime))
	a.Less(wide.Sub(3, math.MaxUint64), uint64(largePrime))
	a.Equal(wide.Neg(wide.Reduce(math.MaxUint64)), wide.Neg(math.MaxUint64))
}

func TestRandomIsDeterministicPerSource(t *testing.T) {
	a := assert.New(t)
	f := MustPrimeField(65537)

	draw := func(seed string) []uint64 {
		prng, err := sampling.NewKeyedPRNG([]byte(seed))
		require.NoError(t, err)

		out := make([]uint64, 16)
		for i := range out {
			out[i], err = f.Random(prng)
			require.NoError(t, err)
			a.Less(out[i], uint64(65537))
		}

		return out
	}

	a.Equal(draw("seed"), draw("seed"))
	a.NotEqual(draw("seed"), draw("other seed"))
}

func FuzzInverse(f *testing.F) {
	testcases := []uint64{1, 54347, 4534523, 021310, 1<<63 - 1}
	for _, tc := range testcases {
		f.Add(tc)
	}

	fld, err := NewPrimeField(largePrime)
	if err != nil {
		f.FailNow()
	}

	f.Fuzz(func(t *testing.T, num uint64) {
		e1 := fld.Reduce(num)
		if e1 == 0 {
			return
		}

		if res := fld.Mul(e1, fld.Inv(e1)); res != 1 {
			t.Fatalf("expected 1, got %d", res)
		}

		if res := fld.Add(fld.Neg(e1), e1); res != 0 {
			t.Fatalf("expected 0, got %d", res)
		}
	})
}
