// Package expr holds the expression-tree nodes a front-end parser hands to the
// polynomial constructor. Nodes are immutable and carry no simplification logic.
package expr

import (
	"math/big"
	"strings"
)

// Node is an expression tree node.
type Node interface {
	String() string
	node()
}

// Num is an exact rational constant.
type Num struct{ val *big.Rat }

func N(n int64) *Num { return &Num{val: new(big.Rat).SetInt64(n)} }
func F(p, q int64) *Num {
	if q == 0 {
		panic("expr: denominator is zero")
	}
	return &Num{val: new(big.Rat).SetFrac(big.NewInt(p), big.NewInt(q))}
}
func R(r *big.Rat) *Num { return &Num{val: new(big.Rat).Set(r)} }

func (n *Num) node()           {}
func (n *Num) Rat() *big.Rat   { return new(big.Rat).Set(n.val) }
func (n *Num) IsInteger() bool { return n.val.IsInt() }

func (n *Num) String() string {
	if n.val.IsInt() {
		return n.val.Num().String()
	}
	return n.val.RatString()
}

// Sym is a named variable.
type Sym struct{ name string }

func S(name string) *Sym      { return &Sym{name: name} }
func (s *Sym) node()          {}
func (s *Sym) Name() string   { return s.name }
func (s *Sym) String() string { return s.name }

// Add is a sum of terms.
type Add struct{ terms []Node }

func AddOf(terms ...Node) *Add { return &Add{terms: terms} }
func (a *Add) node()           {}
func (a *Add) Terms() []Node   { return append([]Node(nil), a.terms...) }
func (a *Add) String() string  { return joinNodes(a.terms, " + ", "0") }

// Mul is a product of factors.
type Mul struct{ factors []Node }

func MulOf(factors ...Node) *Mul { return &Mul{factors: factors} }
func (m *Mul) node()             {}
func (m *Mul) Factors() []Node   { return append([]Node(nil), m.factors...) }
func (m *Mul) String() string    { return joinNodes(m.factors, "*", "1") }

// Pow raises base to exp.
type Pow struct{ base, exp Node }

func PowOf(base, exp Node) *Pow { return &Pow{base: base, exp: exp} }
func (p *Pow) node()            {}
func (p *Pow) Base() Node       { return p.base }
func (p *Pow) Exp() Node        { return p.exp }

func (p *Pow) String() string {
	return wrap(p.base) + "^" + wrap(p.exp)
}

// Neg is unary minus.
type Neg struct{ x Node }

func NegOf(x Node) *Neg       { return &Neg{x: x} }
func (n *Neg) node()          {}
func (n *Neg) Operand() Node  { return n.x }
func (n *Neg) String() string { return "-" + wrap(n.x) }

func wrap(n Node) string {
	switch n.(type) {
	case *Add, *Mul, *Pow, *Neg:
		return "(" + n.String() + ")"
	}
	return n.String()
}

func joinNodes(nodes []Node, sep, empty string) string {
	if len(nodes) == 0 {
		return empty
	}
	parts := make([]string, len(nodes))
	for i, n := range nodes {
		parts[i] = wrap(n)
	}
	return strings.Join(parts, sep)
}
