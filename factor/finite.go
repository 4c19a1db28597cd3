package factor

import (
	"math/big"

	"github.com/jonathanmweiss/go-polyfactor/algebra"
	"github.com/jonathanmweiss/go-polyfactor/poly"
	"gopkg.in/errgo.v1"
)

// maxSplitAttempts bounds random draws in one equal-degree split. Each draw
// succeeds with probability at least 1/2.
const maxSplitAttempts = 128

// berlekampMaxOrder bounds the field size Berlekamp enumerates.
const berlekampMaxOrder = 1 << 16

// factorFinite factors f over a finite field into a unit times monic irreducibles.
func factorFinite[T any](ff algebra.FiniteField[T], f *poly.Polynomial[T], c *config) (*poly.Factorization[T], error) {
	out := &poly.Factorization[T]{Ring: f.Ring(), Unit: f.Lead()}
	if f.Degree() == 0 {
		return out, nil
	}

	monic, err := f.Monic()
	if err != nil {
		return nil, err
	}

	sqf, err := poly.SquareFree(monic)
	if err != nil {
		return nil, err
	}

	for _, part := range sqf.Factors {
		irr, err := splitSquareFree(ff, part.Poly, c)
		if err != nil {
			return nil, err
		}

		for _, p := range irr {
			out.Add(p, part.Multiplicity)
		}
	}

	out.Sort()

	return out, nil
}

// splitSquareFree returns the monic irreducible factors of a monic square-free f.
func splitSquareFree[T any](ff algebra.FiniteField[T], f *poly.Polynomial[T], c *config) ([]*poly.Polynomial[T], error) {
	if f.Degree() <= 1 {
		return []*poly.Polynomial[T]{f}, nil
	}

	if useBerlekamp(ff, c.ffMethod) {
		c.log.Debug("berlekamp", "degree", f.Degree())
		return berlekamp(ff, f), nil
	}

	var out []*poly.Polynomial[T]
	for _, part := range distinctDegree(ff, f) {
		c.log.Debug("distinct degree part", "degree", part.degree, "size", part.poly.Degree())

		split, err := equalDegree(ff, part.poly, part.degree, c)
		if err != nil {
			return nil, err
		}

		out = append(out, split...)
	}

	return out, nil
}

func useBerlekamp[T any](ff algebra.FiniteField[T], m FiniteFieldMethod) bool {
	q := ff.Order()
	if !q.IsUint64() || q.Uint64() > berlekampMaxOrder {
		return false
	}

	switch m {
	case Berlekamp:
		return true
	case Auto:
		return q.Uint64() <= berlekampAutoOrder
	}

	return false
}

type ddfPart[T any] struct {
	poly   *poly.Polynomial[T]
	degree int
}

// distinctDegree splits a monic square-free f into products of irreducibles of equal
// degree: the d-th part is gcd(x^(q^d) - x, f) once lower degrees are removed.
func distinctDegree[T any](ff algebra.FiniteField[T], f *poly.Polynomial[T]) []ddfPart[T] {
	q := ff.Order()
	x := f.Ring().X()

	var parts []ddfPart[T]

	rest := f
	h := x
	for d := 1; rest.Degree() >= 2*d; d++ {
		var err error
		if h, err = h.PowMod(q, rest); err != nil {
			panic(err)
		}

		g := poly.GCD(h.Sub(x), rest)
		if g.Degree() <= 0 {
			continue
		}

		parts = append(parts, ddfPart[T]{poly: g, degree: d})
		rest = mustExactDiv(rest, g)
		if h, err = h.Rem(rest); err != nil {
			panic(err)
		}
	}

	if rest.Degree() > 0 {
		parts = append(parts, ddfPart[T]{poly: rest, degree: rest.Degree()})
	}

	return parts
}

// equalDegree splits f, a product of distinct monic irreducibles of degree d, with
// the Cantor-Zassenhaus algorithm.
func equalDegree[T any](ff algebra.FiniteField[T], f *poly.Polynomial[T], d int, c *config) ([]*poly.Polynomial[T], error) {
	if f.Degree() == d {
		return []*poly.Polynomial[T]{f}, nil
	}

	splitter := newSplitter(ff, d)
	for attempt := 0; attempt < maxSplitAttempts; attempt++ {
		a, err := randomPoly(ff, f.Ring(), f.Degree(), c)
		if err != nil {
			return nil, errgo.Mask(err)
		}

		g := poly.GCD(splitter(a, f), f)
		if g.Degree() <= 0 || g.Degree() == f.Degree() {
			continue
		}

		c.log.Debug("equal degree split", "degree", d, "attempt", attempt, "left", g.Degree(), "right", f.Degree()-g.Degree())

		left, err := equalDegree(ff, g, d, c)
		if err != nil {
			return nil, err
		}

		right, err := equalDegree(ff, mustExactDiv(f, g), d, c)
		if err != nil {
			return nil, err
		}

		return append(left, right...), nil
	}

	c.log.Warn("equal degree split exhausted", "degree", d, "attempts", maxSplitAttempts)

	return nil, errgo.WithCausef(nil, ErrExhausted, "no equal-degree split of %v after %d attempts", f, maxSplitAttempts)
}

// newSplitter returns the map whose gcd with f separates factors: a^((q^d-1)/2) - 1
// for odd q, and the trace a + a^2 + ... + a^(2^(md-1)) for q = 2^m.
func newSplitter[T any](ff algebra.FiniteField[T], d int) func(a, f *poly.Polynomial[T]) *poly.Polynomial[T] {
	q := ff.Order()
	qd := new(big.Int).Exp(q, big.NewInt(int64(d)), nil)

	if q.Bit(0) == 1 {
		e := new(big.Int).Rsh(new(big.Int).Sub(qd, big.NewInt(1)), 1)

		return func(a, f *poly.Polynomial[T]) *poly.Polynomial[T] {
			b, err := a.PowMod(e, f)
			if err != nil {
				panic(err)
			}

			return b.Sub(f.Ring().One())
		}
	}

	steps := qd.BitLen() - 1

	return func(a, f *poly.Polynomial[T]) *poly.Polynomial[T] {
		t, err := a.Rem(f)
		if err != nil {
			panic(err)
		}

		sum := t
		for i := 1; i < steps; i++ {
			if t, err = t.Mul(t).Rem(f); err != nil {
				panic(err)
			}
			sum = sum.Add(t)
		}

		return sum
	}
}

func randomPoly[T any](ff algebra.FiniteField[T], r *poly.Ring[T], n int, c *config) (*poly.Polynomial[T], error) {
	cs := make([]T, n)
	for i := range cs {
		v, err := ff.Random(c.random)
		if err != nil {
			return nil, err
		}
		cs[i] = v
	}

	return r.New(cs), nil
}

// berlekamp splits a monic square-free f using a basis of the Berlekamp subalgebra,
// the kernel of Q - I where row i of Q holds x^(iq) mod f.
func berlekamp[T any](ff algebra.FiniteField[T], f *poly.Polynomial[T]) []*poly.Polynomial[T] {
	n := f.Degree()
	r := f.Ring()

	xq, err := r.X().PowMod(ff.Order(), f)
	if err != nil {
		panic(err)
	}

	// a[j][i] = Q[i][j] - delta(i, j), so the kernel of a holds the row vectors v with v(Q - I) = 0.
	a := make([][]T, n)
	for j := range a {
		a[j] = make([]T, n)
	}

	row := r.One()
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			a[j][i] = row.Coeff(j)
		}
		a[i][i] = ff.Sub(a[i][i], ff.One())

		if row, err = row.Mul(xq).Rem(f); err != nil {
			panic(err)
		}
	}

	basis := nullSpace(ff, a, n)
	if len(basis) == 1 {
		return []*poly.Polynomial[T]{f}
	}

	q := ff.Order().Uint64()
	factors := []*poly.Polynomial[T]{f}
	for _, v := range basis {
		if len(factors) == len(basis) {
			break
		}

		vp := r.New(v)
		if vp.Degree() <= 0 {
			continue
		}

		next := make([]*poly.Polynomial[T], 0, len(basis))
		for _, h := range factors {
			if h.Degree() <= 1 {
				next = append(next, h)
				continue
			}

			rest := h
			for s := uint64(0); s < q && rest.Degree() > 0; s++ {
				g := poly.GCD(rest, vp.Sub(r.Constant(ff.Element(s))))
				if g.Degree() <= 0 {
					continue
				}

				next = append(next, g)
				rest = mustExactDiv(rest, g)
			}

			if rest.Degree() > 0 {
				next = append(next, rest)
			}
		}

		factors = next
	}

	return factors
}

// nullSpace returns a basis of {v : a v = 0} for an n-column matrix, by Gauss-Jordan
// elimination. The basis vector of free column c has a 1 in position c.
func nullSpace[T any](k algebra.Field[T], a [][]T, n int) [][]T {
	m := make([][]T, len(a))
	for i := range a {
		m[i] = append([]T(nil), a[i]...)
	}

	pivots := make([]int, 0, n)
	isPivot := make([]bool, n)
	r := 0
	for col := 0; col < n && r < len(m); col++ {
		p := -1
		for i := r; i < len(m); i++ {
			if !k.IsZero(m[i][col]) {
				p = i
				break
			}
		}

		if p < 0 {
			continue
		}

		m[r], m[p] = m[p], m[r]
		inv := k.Inv(m[r][col])
		for j := col; j < n; j++ {
			m[r][j] = k.Mul(m[r][j], inv)
		}

		for i := range m {
			if i == r || k.IsZero(m[i][col]) {
				continue
			}

			factor := m[i][col]
			for j := col; j < n; j++ {
				m[i][j] = k.Sub(m[i][j], k.Mul(factor, m[r][j]))
			}
		}

		pivots = append(pivots, col)
		isPivot[col] = true
		r++
	}

	var basis [][]T
	for free := 0; free < n; free++ {
		if isPivot[free] {
			continue
		}

		v := make([]T, n)
		for i := range v {
			v[i] = k.Zero()
		}
		v[free] = k.One()

		for i, pc := range pivots {
			v[pc] = k.Neg(m[i][free])
		}

		basis = append(basis, v)
	}

	return basis
}

func mustExactDiv[T any](p, d *poly.Polynomial[T]) *poly.Polynomial[T] {
	q, err := p.ExactDiv(d)
	if err != nil {
		panic(err)
	}

	return q
}
