package algebra

import (
	"math/big"
	"sort"

	"github.com/tuneinsight/lattigo/v6/utils/factorization"
)

var bigOne = big.NewInt(1)

// Integers is the ring Z with *big.Int elements.
type Integers struct{}

// Z is the shared integers structure.
var Z = &Integers{}

func (*Integers) Capabilities() Capability { return EuclidCaps }
func (*Integers) String() string           { return "Z" }

func (*Integers) Zero() *big.Int             { return new(big.Int) }
func (*Integers) One() *big.Int              { return big.NewInt(1) }
func (*Integers) FromInt64(n int64) *big.Int { return big.NewInt(n) }
func (*Integers) Add(a, b *big.Int) *big.Int { return new(big.Int).Add(a, b) }
func (*Integers) Sub(a, b *big.Int) *big.Int { return new(big.Int).Sub(a, b) }
func (*Integers) Neg(a *big.Int) *big.Int    { return new(big.Int).Neg(a) }
func (*Integers) Mul(a, b *big.Int) *big.Int { return new(big.Int).Mul(a, b) }
func (*Integers) Equal(a, b *big.Int) bool   { return a.Cmp(b) == 0 }
func (*Integers) IsZero(a *big.Int) bool     { return a.Sign() == 0 }
func (*Integers) Characteristic() *big.Int   { return new(big.Int) }
func (*Integers) Format(a *big.Int) string   { return a.String() }
func (*Integers) Norm(a *big.Int) *big.Int   { return new(big.Int).Abs(a) }
func (*Integers) GCD(a, b *big.Int) *big.Int { return new(big.Int).GCD(nil, nil, a, b) }
func (*Integers) Units() []*big.Int          { return []*big.Int{big.NewInt(1), big.NewInt(-1)} }
func (*Integers) Embed(a *big.Int) *big.Int  { return new(big.Int).Set(a) }
func (*Integers) IsUnit(a *big.Int) bool     { return a.CmpAbs(bigOne) == 0 }

// Div is exact division.
func (*Integers) Div(a, b *big.Int) (*big.Int, error) {
	if b.Sign() == 0 {
		return nil, ErrDivisionByZero
	}

	q, r := new(big.Int).QuoRem(a, b, new(big.Int))
	if r.Sign() != 0 {
		return nil, ErrNotDivisible
	}

	return q, nil
}

// QuoRem is Euclidean division with a non-negative remainder.
func (*Integers) QuoRem(a, b *big.Int) (*big.Int, *big.Int) {
	return new(big.Int).DivMod(a, b, new(big.Int))
}

// UnitInverse inverts ±1.
func (z *Integers) UnitInverse(a *big.Int) (*big.Int, bool) {
	if !z.IsUnit(a) {
		return nil, false
	}

	return new(big.Int).Set(a), true
}

// Canonical splits off the sign: canonical integers are non-negative.
func (*Integers) Canonical(a *big.Int) (*big.Int, *big.Int) {
	if a.Sign() < 0 {
		return big.NewInt(-1), new(big.Int).Neg(a)
	}

	return big.NewInt(1), new(big.Int).Set(a)
}

// FromRat embeds an integral rational.
func (*Integers) FromRat(r *big.Rat) (*big.Int, error) {
	if !r.IsInt() {
		return nil, ErrNotEmbeddable
	}

	return new(big.Int).Set(r.Num()), nil
}

// Divisors lists the positive divisors of a in increasing order.
func (*Integers) Divisors(a *big.Int) ([]*big.Int, error) {
	if a.Sign() == 0 {
		return nil, ErrDivisionByZero
	}

	divs := []*big.Int{big.NewInt(1)}
	for _, pp := range FactorInt(a) {
		next := make([]*big.Int, 0, len(divs)*(pp.Exp+1))
		for _, d := range divs {
			pk := new(big.Int).Set(d)
			next = append(next, pk)
			for e := 0; e < pp.Exp; e++ {
				pk = new(big.Int).Mul(pk, pp.Prime)
				next = append(next, pk)
			}
		}
		divs = next
	}

	sort.Slice(divs, func(i, j int) bool { return divs[i].Cmp(divs[j]) < 0 })

	return divs, nil
}

// PrimePower is p^Exp.
type PrimePower struct {
	Prime *big.Int
	Exp   int
}

const trialDivisionBound = 1000

// FactorInt returns the prime factorization of |n| in increasing prime order.
// Zero and units have no prime factors.
func FactorInt(n *big.Int) []PrimePower {
	m := new(big.Int).Abs(n)
	if m.Cmp(bigOne) <= 0 {
		return nil
	}

	exps := map[string]*PrimePower{}
	add := func(p *big.Int) {
		if pp, ok := exps[p.String()]; ok {
			pp.Exp++
			return
		}
		exps[p.String()] = &PrimePower{Prime: new(big.Int).Set(p), Exp: 1}
	}

	// small primes first, the remaining cofactor has only large prime factors.
	r := new(big.Int)
	for d := int64(2); d < trialDivisionBound && m.Cmp(bigOne) > 0; d++ {
		bd := big.NewInt(d)
		for {
			q, rem := new(big.Int).QuoRem(m, bd, r)
			if rem.Sign() != 0 {
				break
			}
			add(bd)
			m = q
		}
	}

	splitLarge(m, add)

	out := make([]PrimePower, 0, len(exps))
	for _, pp := range exps {
		out = append(out, *pp)
	}

	sort.Slice(out, func(i, j int) bool { return out[i].Prime.Cmp(out[j].Prime) < 0 })

	return out
}

func splitLarge(m *big.Int, add func(*big.Int)) {
	for m.Cmp(bigOne) > 0 {
		if factorization.IsPrime(m) {
			add(m)
			return
		}

		progress := false
		for _, f := range factorization.GetFactors(m) {
			if f.Cmp(bigOne) <= 0 || f.Cmp(m) == 0 {
				continue
			}

			rem := new(big.Int)
			for {
				q, r := new(big.Int).QuoRem(m, f, rem)
				if r.Sign() != 0 {
					break
				}

				if factorization.IsPrime(f) {
					add(f)
				} else {
					splitLarge(new(big.Int).Set(f), add)
				}

				m = q
				progress = true
			}
		}

		if !progress {
			// GetFactors found nothing useful; treat the cofactor as prime.
			add(m)
			return
		}
	}
}

// IsPrime reports whether n is a prime.
func IsPrime(n *big.Int) bool {
	if n.Cmp(big.NewInt(2)) < 0 {
		return false
	}

	return factorization.IsPrime(n)
}
