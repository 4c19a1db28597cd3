package factor

import (
	"github.com/jonathanmweiss/go-polyfactor/algebra"
	"github.com/jonathanmweiss/go-polyfactor/poly"
	"gopkg.in/errgo.v1"
)

// maxKroneckerCandidates bounds the divisor combinations tried for one degree.
const maxKroneckerCandidates = 1 << 20

func factorKronecker[T any](ufd algebra.UFD[T], de algebra.DivisorEnumerator[T], f *poly.Polynomial[T], c *config) (*poly.Factorization[T], error) {
	sqf, err := poly.SquareFree(f)
	if err != nil {
		return nil, err
	}

	// Without a prime decomposition of elements the content stays in the unit.
	out := &poly.Factorization[T]{Ring: f.Ring(), Unit: sqf.Unit}
	ev := newNodeEvaluator[T](ufd)
	for _, part := range sqf.Factors {
		irr, err := kronecker(ufd, de, ev, part.Poly, c)
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

// kronecker factors a primitive canonical f by searching, for d = 1 .. deg/2, the
// interpolants of degree d through divisors of f's values at d+1 nodes. The node
// lists in ev are shared by every part of one factorization.
func kronecker[T any](ufd algebra.UFD[T], de algebra.DivisorEnumerator[T], ev *nodeEvaluator[T], f *poly.Polynomial[T], c *config) ([]*poly.Polynomial[T], error) {
	var out []*poly.Polynomial[T]

	g := f
	for d := 1; 2*d <= g.Degree(); {
		h, err := kroneckerSearch(ufd, de, ev, g, d)
		if err != nil {
			return nil, err
		}

		if h == nil {
			d++
			continue
		}

		if c.log.Enabled() {
			c.log.Debug("kronecker factor", "degree", d, "factor", h.String())
		}

		out = append(out, h)
		g = mustExactDiv(g, h)
	}

	if g.Degree() > 0 {
		_, g = g.Ring().Canonical(g)
		out = append(out, g)
	}

	return out, nil
}

// kroneckerSearch returns a canonical factor of g of degree d, or nil.
func kroneckerSearch[T any](ufd algebra.UFD[T], de algebra.DivisorEnumerator[T], ev *nodeEvaluator[T], g *poly.Polynomial[T], d int) (*poly.Polynomial[T], error) {
	r := g.Ring()
	xs := ev.EvaluationPoints(d + 1)
	ys := ev.EvaluatePolynomial(g, d+1)

	// a zero value is a root.
	for i, y := range ys {
		if ufd.IsZero(y) {
			_, lin := r.Canonical(r.X().Sub(r.Constant(xs[i])))
			return lin, nil
		}
	}

	units := de.Units()
	choices := make([][]T, len(ys))
	total := 1
	for i, y := range ys {
		divs, err := de.Divisors(y)
		if err != nil {
			return nil, err
		}

		if i == 0 {
			choices[i] = divs
		} else {
			for _, dv := range divs {
				for _, u := range units {
					choices[i] = append(choices[i], ufd.Mul(u, dv))
				}
			}
		}

		total *= len(choices[i])
		if total > maxKroneckerCandidates {
			return nil, errgo.WithCausef(nil, ErrExhausted, "kronecker: too many divisor combinations for degree %d", d)
		}
	}

	idx := make([]int, len(choices))
	vals := make([]T, len(choices))
	for {
		for i, j := range idx {
			vals[i] = choices[i][j]
		}

		if h := kroneckerCandidate(g, xs, vals, d); h != nil {
			return h, nil
		}

		if !odometer(idx, choices) {
			return nil, nil
		}
	}
}

func kroneckerCandidate[T any](g *poly.Polynomial[T], xs, vals []T, d int) *poly.Polynomial[T] {
	h, err := poly.NewtonInterpolate(g.Ring(), xs, vals)
	if err != nil || h.Degree() != d {
		return nil
	}

	if _, err := g.ExactDiv(h); err != nil {
		return nil
	}

	_, h = g.Ring().Canonical(h)

	return h
}

// odometer advances idx to the next combination; false once all were visited.
func odometer[T any](idx []int, choices [][]T) bool {
	for i := len(idx) - 1; i >= 0; i-- {
		idx[i]++
		if idx[i] < len(choices[i]) {
			return true
		}
		idx[i] = 0
	}

	return false
}
