// Package field implements the prime field GF(p) for word-sized primes, with
// an NTT multiplier for polynomials over NTT-friendly primes.
package field

import (
	"crypto/rand"
	"errors"
	"io"
	"math/big"
	"strconv"

	"github.com/jonathanmweiss/go-polyfactor/algebra"
	"github.com/tuneinsight/lattigo/v6/ring"
	"lukechampine.com/uint128"
)

// PrimeField is GF(p) with elements reduced into [0, p).
// It satisfies algebra.FiniteField[uint64].
type PrimeField struct {
	prime     uint64
	generator uint64
	factors   []uint64
	asBigInt  *big.Int
}

var (
	errPrimeTooLarge = errors.New("supporting up to 63-bit prime")
	errNotPrime      = errors.New("this package only support prime fields. please use a prime order")
)

const maxBitUsage = 63

var (
	_ algebra.FiniteField[uint64] = (*PrimeField)(nil)
	_ algebra.Reducer[uint64]     = (*PrimeField)(nil)
)

func NewPrimeField(prime uint64) (*PrimeField, error) {
	if prime >= (1 << maxBitUsage) {
		return nil, errPrimeTooLarge
	}

	if !ring.IsPrime(prime) {
		return nil, errNotPrime
	}

	f := &PrimeField{
		prime:    prime,
		asBigInt: new(big.Int).SetUint64(prime),
	}

	switch prime {
	case 2:
		f.generator = 1
	case 3:
		f.generator, f.factors = 2, []uint64{2}
	default:
		g, factors, err := ring.PrimitiveRoot(prime, nil)
		if err != nil {
			return nil, err
		}

		f.generator, f.factors = g, factors
	}

	return f, nil
}

// MustPrimeField is NewPrimeField for known-good primes.
func MustPrimeField(prime uint64) *PrimeField {
	f, err := NewPrimeField(prime)
	if err != nil {
		panic(err)
	}

	return f
}

var (
	errNotPowerOfTwo = errors.New("n must be a power of 2")
	errNotDivisible  = errors.New("n must divide p-1")
	errNSTooSmall    = errors.New("n must be >= 2")
)

func (f *PrimeField) Capabilities() algebra.Capability { return algebra.FiniteCaps }
func (f *PrimeField) String() string                   { return "GF(" + strconv.FormatUint(f.prime, 10) + ")" }

func (f *PrimeField) Modulus() uint64          { return f.prime }
func (f *PrimeField) Generator() uint64        { return f.generator }
func (f *PrimeField) Factors() []uint64        { return f.factors }
func (f *PrimeField) Characteristic() *big.Int { return new(big.Int).Set(f.asBigInt) }
func (f *PrimeField) Order() *big.Int          { return new(big.Int).Set(f.asBigInt) }
func (f *PrimeField) Format(a uint64) string   { return strconv.FormatUint(a%f.prime, 10) }
func (f *PrimeField) Zero() uint64             { return 0 }
func (f *PrimeField) One() uint64              { return 1 % f.prime }
func (f *PrimeField) IsZero(a uint64) bool     { return a%f.prime == 0 }
func (f *PrimeField) Equal(a, b uint64) bool   { return a%f.prime == b%f.prime }
func (f *PrimeField) Reduce(val uint64) uint64 { return val % f.prime }
func (f *PrimeField) Element(i uint64) uint64  { return i % f.prime }
func (f *PrimeField) PthRoot(a uint64) uint64  { return a }
func (f *PrimeField) Canonical(a uint64) (uint64, uint64) {
	if a%f.prime == 0 {
		return 1, 0
	}

	return a % f.prime, 1
}

func (f *PrimeField) GetRootOfUnity(n uint64) (uint64, error) {
	if n == 0 || n == 1 {
		return 0, errNSTooSmall
	}

	if !IsPowerOfTwo(n) {
		return 0, errNotPowerOfTwo
	}

	if (f.prime-1)%n != 0 {
		return 0, errNotDivisible
	}

	// w = g^((p-1)/n) has order exactly n since g generates the multiplicative group.
	return f.Pow(f.generator, (f.prime-1)/n), nil
}

func IsPowerOfTwo(n uint64) bool {
	// https://graphics.stanford.edu/~seander/bithacks.html#DetermineIfPowerOf2
	return n != 0 && (n&(n-1)) == 0
}

func (f *PrimeField) FromInt64(n int64) uint64 {
	if n >= 0 {
		return uint64(n) % f.prime
	}

	// -(n+1) avoids overflowing on MinInt64.
	return f.Neg(f.Add(uint64(-(n+1))%f.prime, 1%f.prime))
}

// FromRat maps num/den into the field; ErrNotEmbeddable when p divides den.
func (f *PrimeField) FromRat(r *big.Rat) (uint64, error) {
	den := new(big.Int).Mod(r.Denom(), f.asBigInt).Uint64()
	if den == 0 {
		return 0, algebra.ErrNotEmbeddable
	}

	num := new(big.Int).Mod(r.Num(), f.asBigInt).Uint64()

	return f.Mul(num, f.Inv(den)), nil
}

// Add, Sub and Neg accept any uint64 and return a value in [0, p).
func (f *PrimeField) Add(a, b uint64) uint64 {
	a, b = a%f.prime, b%f.prime

	tmp := a + b // can't overflow since adding two integers smaller than 2^63.
	if tmp >= f.prime {
		tmp -= f.prime
	}

	return tmp
}

// Mul returns a * b (mod field prime).
func (f *PrimeField) Mul(a, b uint64) uint64 {
	if a == 0 || b == 0 {
		return 0
	}

	return fieldMul(a, b, f.prime)
}

func fieldMul(a, b uint64, mod uint64) uint64 {
	return uint128.From64(a).Mul64(b).Mod64(mod)
}

// https://en.wikipedia.org/wiki/Exponentiation_by_squaring
func (f *PrimeField) Pow(base, exp uint64) uint64 {
	mod := f.prime

	x := uint64(1)
	for exp > 0 {
		if exp%2 == 1 {
			x = fieldMul(x, base, mod)
		}

		base = fieldMul(base, base, mod)
		exp /= 2
	}

	return x % mod
}

// Inv uses Fermat's little theorem: a^(p-2) * a = 1 (mod p).
func (f *PrimeField) Inv(e uint64) uint64 {
	if e%f.prime == 0 {
		panic("zero has no inverse")
	}

	return f.Pow(e, f.prime-2)
}

func (f *PrimeField) Neg(e uint64) uint64 {
	e %= f.prime
	if e == 0 {
		return 0
	}

	return f.prime - e
}

func (f *PrimeField) Sub(a, b uint64) uint64 {
	a, b = a%f.prime, b%f.prime
	if a < b {
		return f.prime - (b - a)
	}

	return a - b
}

func (f *PrimeField) Div(a, b uint64) (uint64, error) {
	if b%f.prime == 0 {
		return 0, algebra.ErrDivisionByZero
	}

	return f.Mul(a, f.Inv(b)), nil
}

func (f *PrimeField) QuoRem(a, b uint64) (uint64, uint64) {
	return f.Mul(a, f.Inv(b)), 0
}

func (f *PrimeField) Norm(a uint64) *big.Int {
	if a == 0 {
		return new(big.Int)
	}

	return big.NewInt(1)
}

func (f *PrimeField) GCD(a, b uint64) uint64 {
	if a == 0 && b == 0 {
		return 0
	}

	return 1
}

// Random draws a uniform element from src, falling back to crypto/rand.
func (f *PrimeField) Random(src io.Reader) (uint64, error) {
	if src == nil {
		src = rand.Reader
	}

	v, err := rand.Int(src, f.asBigInt)
	if err != nil {
		return 0, err
	}

	return v.Uint64(), nil
}
