package extension

import (
	"math/big"

	"github.com/jonathanmweiss/go-polyfactor/algebra"
	"github.com/jonathanmweiss/go-polyfactor/field"
	"github.com/jonathanmweiss/go-polyfactor/poly"
	"gopkg.in/errgo.v1"
)

const defaultVariable = "a"

// NumberFieldBuilder constructs a NumberField from a defining polynomial over Q.
//
//	k, err := NewNumberFieldBuilder().Modulus(qx.FromInt64s(-2, 0, 1)).Build()
type NumberFieldBuilder struct {
	modulus  *poly.Polynomial[*big.Rat]
	variable string
}

func NewNumberFieldBuilder() *NumberFieldBuilder {
	return &NumberFieldBuilder{variable: defaultVariable}
}

// Modulus sets the defining polynomial. Irreducibility over Q is the caller's guarantee.
func (b *NumberFieldBuilder) Modulus(m *poly.Polynomial[*big.Rat]) *NumberFieldBuilder {
	b.modulus = m
	return b
}

// Variable names the generator in formatted elements.
func (b *NumberFieldBuilder) Variable(name string) *NumberFieldBuilder {
	b.variable = name
	return b
}

func (b *NumberFieldBuilder) Build() (*NumberField, error) {
	if b.modulus == nil {
		return nil, ErrNoModulus
	}

	if b.modulus.Degree() < 1 {
		return nil, errgo.WithCausef(nil, ErrModulusDegree, "modulus %v", b.modulus)
	}

	if !poly.IsSquareFree(b.modulus) {
		return nil, errgo.WithCausef(nil, ErrNotSquareFree, "modulus %v", b.modulus)
	}

	q, err := newQuotient[*big.Rat](algebra.Q, b.variable, b.modulus)
	if err != nil {
		return nil, errgo.NoteMask(err, "building number field", errgo.Any)
	}

	return &NumberField{quotient: q}, nil
}

// GaloisFieldBuilder constructs GF(p^k) from an irreducible polynomial of degree k
// over GF(p).
type GaloisFieldBuilder struct {
	base     *field.PrimeField
	modulus  *poly.Polynomial[uint64]
	variable string
}

func NewGaloisFieldBuilder(base *field.PrimeField) *GaloisFieldBuilder {
	return &GaloisFieldBuilder{base: base, variable: defaultVariable}
}

// Modulus sets the defining polynomial; its coefficients are read as residues mod p.
func (b *GaloisFieldBuilder) Modulus(m *poly.Polynomial[uint64]) *GaloisFieldBuilder {
	b.modulus = m
	return b
}

// Variable names the generator in formatted elements.
func (b *GaloisFieldBuilder) Variable(name string) *GaloisFieldBuilder {
	b.variable = name
	return b
}

// Build checks the modulus with Rabin's irreducibility test.
func (b *GaloisFieldBuilder) Build() (*GaloisField, error) {
	if b.modulus == nil {
		return nil, ErrNoModulus
	}

	m := poly.Map(b.modulus, poly.NewRing[uint64](b.base), b.base.Reduce)
	if m.Degree() < 1 {
		return nil, errgo.WithCausef(nil, ErrModulusDegree, "modulus %v", b.modulus)
	}

	q, err := newQuotient[uint64](b.base, b.variable, m)
	if err != nil {
		return nil, errgo.NoteMask(err, "building galois field", errgo.Any)
	}

	ok, err := isIrreducible(q.modulus, b.base.Modulus())
	if err != nil {
		return nil, errgo.NoteMask(err, "checking modulus", errgo.Any)
	}

	if !ok {
		return nil, errgo.WithCausef(nil, ErrReducibleModulus, "modulus %v over %v", q.modulus, b.base)
	}

	return newGaloisField(b.base, q), nil
}
