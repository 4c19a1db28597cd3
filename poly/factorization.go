package poly

import (
	"sort"
	"strconv"
	"strings"

	"github.com/jonathanmweiss/go-polyfactor/algebra"
)

// Factor is an irreducible (or square-free) factor with its multiplicity.
type Factor[T any] struct {
	Poly         *Polynomial[T]
	Multiplicity int
}

// Factorization is Unit * prod Factors[i].Poly^Factors[i].Multiplicity.
type Factorization[T any] struct {
	Ring    *Ring[T]
	Unit    T
	Factors []Factor[T]
}

// Expand multiplies the factorization back out.
func (f *Factorization[T]) Expand() *Polynomial[T] {
	out := f.Ring.Constant(f.Unit)
	for _, fc := range f.Factors {
		out = out.Mul(fc.Poly.Pow(uint(fc.Multiplicity)))
	}

	return out
}

// Add appends a factor, merging multiplicities with an equal factor already present.
func (f *Factorization[T]) Add(p *Polynomial[T], multiplicity int) {
	for i := range f.Factors {
		if f.Factors[i].Poly.Equal(p) {
			f.Factors[i].Multiplicity += multiplicity
			return
		}
	}

	f.Factors = append(f.Factors, Factor[T]{Poly: p, Multiplicity: multiplicity})
}

// Sort orders factors by degree, then by their printed coefficients, then multiplicity.
func (f *Factorization[T]) Sort() {
	keys := make([]string, len(f.Factors))
	for i, fc := range f.Factors {
		keys[i] = sortKey(fc.Poly)
	}

	idx := make([]int, len(f.Factors))
	for i := range idx {
		idx[i] = i
	}

	sort.SliceStable(idx, func(i, j int) bool {
		a, b := f.Factors[idx[i]], f.Factors[idx[j]]
		if a.Poly.Degree() != b.Poly.Degree() {
			return a.Poly.Degree() < b.Poly.Degree()
		}

		if keys[idx[i]] != keys[idx[j]] {
			return keys[idx[i]] < keys[idx[j]]
		}

		return a.Multiplicity < b.Multiplicity
	})

	sorted := make([]Factor[T], len(idx))
	for i, j := range idx {
		sorted[i] = f.Factors[j]
	}
	f.Factors = sorted
}

// sortKey lists coefficients from the leading one down, padded so that shorter
// numerals sort first.
func sortKey[T any](p *Polynomial[T]) string {
	k := p.r.k

	parts := make([]string, 0, len(p.coeffs))
	for i := len(p.coeffs) - 1; i >= 0; i-- {
		s := k.Format(p.coeffs[i])
		parts = append(parts, strconv.Itoa(len(s))+":"+s)
	}

	return strings.Join(parts, "|")
}

func (f *Factorization[T]) String() string {
	bldr := strings.Builder{}
	bldr.WriteString(f.Ring.k.Format(f.Unit))

	for _, fc := range f.Factors {
		bldr.WriteString(" * (")
		bldr.WriteString(fc.Poly.String())
		bldr.WriteString(")")

		if fc.Multiplicity > 1 {
			bldr.WriteString("^")
			bldr.WriteString(strconv.Itoa(fc.Multiplicity))
		}
	}

	return bldr.String()
}

// Multiplicities lists the factor multiplicities in order.
func (f *Factorization[T]) Multiplicities() []int {
	out := make([]int, len(f.Factors))
	for i, fc := range f.Factors {
		out[i] = fc.Multiplicity
	}

	return out
}

// IsUnit reports whether a constant is a unit of the coefficient structure.
func IsUnit[T any](k algebra.Ring[T], c T) bool {
	units, ok := algebra.AsUnits(k)
	if !ok {
		return k.Equal(c, k.One()) || k.Equal(c, k.Neg(k.One()))
	}

	_, ok = units.UnitInverse(c)

	return ok
}
