package algebra

import (
	"math/big"
)

// Rationals is the field Q with *big.Rat elements.
type Rationals struct{}

// Q is the shared rationals structure.
var Q = &Rationals{}

func (*Rationals) Capabilities() Capability { return FieldCaps }
func (*Rationals) String() string           { return "Q" }

func (*Rationals) Zero() *big.Rat             { return new(big.Rat) }
func (*Rationals) One() *big.Rat              { return big.NewRat(1, 1) }
func (*Rationals) FromInt64(n int64) *big.Rat { return new(big.Rat).SetInt64(n) }
func (*Rationals) Add(a, b *big.Rat) *big.Rat { return new(big.Rat).Add(a, b) }
func (*Rationals) Sub(a, b *big.Rat) *big.Rat { return new(big.Rat).Sub(a, b) }
func (*Rationals) Neg(a *big.Rat) *big.Rat    { return new(big.Rat).Neg(a) }
func (*Rationals) Mul(a, b *big.Rat) *big.Rat { return new(big.Rat).Mul(a, b) }
func (*Rationals) Equal(a, b *big.Rat) bool   { return a.Cmp(b) == 0 }
func (*Rationals) IsZero(a *big.Rat) bool     { return a.Sign() == 0 }
func (*Rationals) Characteristic() *big.Int   { return new(big.Int) }
func (*Rationals) FromRat(r *big.Rat) (*big.Rat, error) {
	return new(big.Rat).Set(r), nil
}

func (*Rationals) Format(a *big.Rat) string {
	if a.IsInt() {
		return a.Num().String()
	}

	return a.RatString()
}

func (*Rationals) Inv(a *big.Rat) *big.Rat {
	if a.Sign() == 0 {
		panic("zero has no inverse")
	}

	return new(big.Rat).Inv(a)
}

func (q *Rationals) Div(a, b *big.Rat) (*big.Rat, error) {
	if b.Sign() == 0 {
		return nil, ErrDivisionByZero
	}

	return new(big.Rat).Quo(a, b), nil
}

func (q *Rationals) QuoRem(a, b *big.Rat) (*big.Rat, *big.Rat) {
	return new(big.Rat).Quo(a, q.nonZero(b)), new(big.Rat)
}

func (*Rationals) Norm(a *big.Rat) *big.Int {
	if a.Sign() == 0 {
		return new(big.Int)
	}

	return big.NewInt(1)
}

// GCD in a field is 0 or 1.
func (*Rationals) GCD(a, b *big.Rat) *big.Rat {
	if a.Sign() == 0 && b.Sign() == 0 {
		return new(big.Rat)
	}

	return big.NewRat(1, 1)
}

// Canonical makes every nonzero rational a unit times 1.
func (*Rationals) Canonical(a *big.Rat) (*big.Rat, *big.Rat) {
	if a.Sign() == 0 {
		return big.NewRat(1, 1), new(big.Rat)
	}

	return new(big.Rat).Set(a), big.NewRat(1, 1)
}

func (*Rationals) nonZero(b *big.Rat) *big.Rat {
	if b.Sign() == 0 {
		panic(ErrDivisionByZero)
	}

	return b
}

// FromInt embeds an integer.
func (*Rationals) FromInt(a *big.Int) *big.Rat {
	return new(big.Rat).SetInt(a)
}
