package algebra

import (
	"crypto/rand"
	"fmt"
	"io"
	"math/big"
)

// IntegersMod is Z/mZ with elements in [0, m). It is a ring with unit inversion;
// when m is prime it additionally claims the field capabilities and implements
// FiniteField. Field operations on a composite modulus violate the capability contract.
type IntegersMod struct {
	m     *big.Int
	caps  Capability
	prime bool
}

// NewIntegersMod builds Z/mZ for m >= 2.
func NewIntegersMod(m *big.Int) (*IntegersMod, error) {
	if m.Cmp(big.NewInt(2)) < 0 {
		return nil, fmt.Errorf("modulus must be at least 2, got %s", m)
	}

	zm := &IntegersMod{m: new(big.Int).Set(m), caps: RingCaps}
	if IsPrime(m) {
		zm.prime = true
		zm.caps = FiniteCaps
	}

	return zm, nil
}

func (z *IntegersMod) Capabilities() Capability { return z.caps }
func (z *IntegersMod) String() string           { return "Z/" + z.m.String() + "Z" }

// Modulus returns a copy of m.
func (z *IntegersMod) Modulus() *big.Int { return new(big.Int).Set(z.m) }

// Reduce maps any integer to its residue in [0, m).
func (z *IntegersMod) Reduce(a *big.Int) *big.Int { return new(big.Int).Mod(a, z.m) }

// Symmetric lifts a residue to the representative in [-m/2, m/2).
func (z *IntegersMod) Symmetric(a *big.Int) *big.Int {
	r := z.Reduce(a)
	half := new(big.Int).Rsh(z.m, 1)
	if r.Cmp(half) >= 0 && !(z.m.Bit(0) == 1 && r.Cmp(half) == 0) {
		r.Sub(r, z.m)
	}

	return r
}

func (z *IntegersMod) Zero() *big.Int             { return new(big.Int) }
func (z *IntegersMod) One() *big.Int              { return z.Reduce(bigOne) }
func (z *IntegersMod) FromInt64(n int64) *big.Int { return z.Reduce(big.NewInt(n)) }
func (z *IntegersMod) Add(a, b *big.Int) *big.Int { return z.Reduce(new(big.Int).Add(a, b)) }
func (z *IntegersMod) Sub(a, b *big.Int) *big.Int { return z.Reduce(new(big.Int).Sub(a, b)) }
func (z *IntegersMod) Neg(a *big.Int) *big.Int    { return z.Reduce(new(big.Int).Neg(a)) }
func (z *IntegersMod) Mul(a, b *big.Int) *big.Int { return z.Reduce(new(big.Int).Mul(a, b)) }
func (z *IntegersMod) IsZero(a *big.Int) bool     { return z.Reduce(a).Sign() == 0 }
func (z *IntegersMod) Characteristic() *big.Int   { return new(big.Int).Set(z.m) }
func (z *IntegersMod) Format(a *big.Int) string   { return z.Reduce(a).String() }

func (z *IntegersMod) Equal(a, b *big.Int) bool {
	return z.Reduce(a).Cmp(z.Reduce(b)) == 0
}

func (z *IntegersMod) UnitInverse(a *big.Int) (*big.Int, bool) {
	inv := new(big.Int).ModInverse(z.Reduce(a), z.m)
	if inv == nil {
		return nil, false
	}

	return inv, true
}

func (z *IntegersMod) requirePrime(op string) {
	if !z.prime {
		Violation(op, z, CapField)
	}
}

func (z *IntegersMod) Inv(a *big.Int) *big.Int {
	z.requirePrime("Inv")

	inv, ok := z.UnitInverse(a)
	if !ok {
		panic("zero has no inverse")
	}

	return inv
}

func (z *IntegersMod) Div(a, b *big.Int) (*big.Int, error) {
	z.requirePrime("Div")

	if z.IsZero(b) {
		return nil, ErrDivisionByZero
	}

	return z.Mul(a, z.Inv(b)), nil
}

func (z *IntegersMod) QuoRem(a, b *big.Int) (*big.Int, *big.Int) {
	q, err := z.Div(a, b)
	if err != nil {
		panic(err)
	}

	return q, new(big.Int)
}

func (z *IntegersMod) Norm(a *big.Int) *big.Int {
	if z.IsZero(a) {
		return new(big.Int)
	}

	return big.NewInt(1)
}

func (z *IntegersMod) GCD(a, b *big.Int) *big.Int {
	z.requirePrime("GCD")

	if z.IsZero(a) && z.IsZero(b) {
		return new(big.Int)
	}

	return z.One()
}

func (z *IntegersMod) Canonical(a *big.Int) (*big.Int, *big.Int) {
	z.requirePrime("Canonical")

	if z.IsZero(a) {
		return z.One(), new(big.Int)
	}

	return z.Reduce(a), z.One()
}

func (z *IntegersMod) Order() *big.Int {
	z.requirePrime("Order")

	return z.Modulus()
}

// PthRoot is the identity: Frobenius fixes the prime field.
func (z *IntegersMod) PthRoot(a *big.Int) *big.Int {
	z.requirePrime("PthRoot")

	return z.Reduce(a)
}

func (z *IntegersMod) Element(i uint64) *big.Int {
	return z.Reduce(new(big.Int).SetUint64(i))
}

// Random draws a uniform residue from src; a nil src uses crypto/rand.
func (z *IntegersMod) Random(src io.Reader) (*big.Int, error) {
	if src == nil {
		src = rand.Reader
	}

	return rand.Int(src, z.m)
}

// FromRat maps num/den to num * den^-1 when den is invertible.
func (z *IntegersMod) FromRat(r *big.Rat) (*big.Int, error) {
	inv, ok := z.UnitInverse(r.Denom())
	if !ok {
		return nil, ErrNotEmbeddable
	}

	return z.Mul(r.Num(), inv), nil
}
