package poly

import (
	"errors"
	"math/big"

	"github.com/jonathanmweiss/go-polyfactor/expr"
	"gopkg.in/errgo.v1"
)

var (
	ErrUnknownSymbol = errors.New("unknown symbol")
	ErrBadExponent   = errors.New("exponent must be a non-negative integer constant")
	ErrUnknownNode   = errors.New("unsupported expression node")
)

// maxExprExponent bounds exponents accepted from expression trees.
const maxExprExponent = 1 << 16

// FromExpr builds a polynomial in the ring's variable from an expression tree.
// Numeric constants enter the coefficient structure through embed.
func FromExpr[T any](r *Ring[T], e expr.Node, embed func(*big.Rat) (T, error)) (*Polynomial[T], error) {
	switch n := e.(type) {
	case *expr.Num:
		c, err := embed(n.Rat())
		if err != nil {
			return nil, errgo.NoteMask(err, "embedding "+n.String(), errgo.Any)
		}

		return r.Constant(c), nil

	case *expr.Sym:
		if n.Name() != r.variable {
			return nil, errgo.WithCausef(nil, ErrUnknownSymbol, "symbol %q in %s", n.Name(), r)
		}

		return r.X(), nil

	case *expr.Neg:
		p, err := FromExpr(r, n.Operand(), embed)
		if err != nil {
			return nil, err
		}

		return p.Neg(), nil

	case *expr.Add:
		sum := r.Zero()
		for _, t := range n.Terms() {
			p, err := FromExpr(r, t, embed)
			if err != nil {
				return nil, err
			}
			sum = sum.Add(p)
		}

		return sum, nil

	case *expr.Mul:
		prod := r.One()
		for _, f := range n.Factors() {
			p, err := FromExpr(r, f, embed)
			if err != nil {
				return nil, err
			}
			prod = prod.Mul(p)
		}

		return prod, nil

	case *expr.Pow:
		num, ok := n.Exp().(*expr.Num)
		if !ok || !num.IsInteger() {
			return nil, errgo.WithCausef(nil, ErrBadExponent, "exponent %s", n.Exp())
		}

		e := num.Rat().Num()
		if e.Sign() < 0 || !e.IsInt64() || e.Int64() > maxExprExponent {
			return nil, errgo.WithCausef(nil, ErrBadExponent, "exponent %s", e)
		}

		base, err := FromExpr(r, n.Base(), embed)
		if err != nil {
			return nil, err
		}

		return base.Pow(uint(e.Int64())), nil
	}

	return nil, errgo.WithCausef(nil, ErrUnknownNode, "%T", e)
}
