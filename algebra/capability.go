package algebra

import (
	"fmt"
	"strings"
)

// Capability is a set of algebraic properties a coefficient structure claims.
// A structure claiming a capability guarantees its laws; nothing is checked at runtime.
type Capability uint32

const (
	CapRing Capability = 1 << iota
	CapCommutativeRing
	CapIntegralDomain
	CapEuclideanDomain
	CapUFD
	CapField
	CapFiniteField
)

var capabilityNames = []struct {
	c    Capability
	name string
}{
	{CapRing, "Ring"},
	{CapCommutativeRing, "CommutativeRing"},
	{CapIntegralDomain, "IntegralDomain"},
	{CapEuclideanDomain, "EuclideanDomain"},
	{CapUFD, "UniqueFactorizationDomain"},
	{CapField, "Field"},
	{CapFiniteField, "FiniteField"},
}

// Common capability sets.
const (
	RingCaps   = CapRing | CapCommutativeRing
	DomainCaps = RingCaps | CapIntegralDomain
	EuclidCaps = DomainCaps | CapEuclideanDomain | CapUFD
	FieldCaps  = EuclidCaps | CapField
	FiniteCaps = FieldCaps | CapFiniteField
)

func (c Capability) String() string {
	if c == 0 {
		return "none"
	}

	names := make([]string, 0, len(capabilityNames))
	for _, cn := range capabilityNames {
		if c&cn.c != 0 {
			names = append(names, cn.name)
		}
	}

	return strings.Join(names, "|")
}

// Structure is the capability descriptor every coefficient structure exposes.
type Structure interface {
	Capabilities() Capability
	String() string
}

// Has reports whether s claims every capability in c.
func Has(s Structure, c Capability) bool {
	return s.Capabilities()&c == c
}

// CapabilityError reports an operation invoked on a structure lacking a
// required capability. It is a programming error and is raised with panic.
type CapabilityError struct {
	Op        string
	Structure string
	Missing   Capability
}

func (e *CapabilityError) Error() string {
	return fmt.Sprintf("%s: structure %s lacks capability %s", e.Op, e.Structure, e.Missing)
}

// Violation panics with a CapabilityError for op on s.
func Violation(op string, s Structure, missing Capability) {
	panic(&CapabilityError{Op: op, Structure: s.String(), Missing: missing})
}

// AsIntegralDomain returns the integral-domain operations of s, if claimed and implemented.
func AsIntegralDomain[T any](s Ring[T]) (IntegralDomain[T], bool) {
	if !Has(s, CapIntegralDomain) {
		return nil, false
	}

	d, ok := s.(IntegralDomain[T])

	return d, ok
}

func AsEuclidean[T any](s Ring[T]) (EuclideanDomain[T], bool) {
	if !Has(s, CapEuclideanDomain) {
		return nil, false
	}

	d, ok := s.(EuclideanDomain[T])

	return d, ok
}

func AsUFD[T any](s Ring[T]) (UFD[T], bool) {
	if !Has(s, CapUFD) {
		return nil, false
	}

	d, ok := s.(UFD[T])

	return d, ok
}

func AsField[T any](s Ring[T]) (Field[T], bool) {
	if !Has(s, CapField) {
		return nil, false
	}

	f, ok := s.(Field[T])

	return f, ok
}

func AsFiniteField[T any](s Ring[T]) (FiniteField[T], bool) {
	if !Has(s, CapFiniteField) {
		return nil, false
	}

	f, ok := s.(FiniteField[T])

	return f, ok
}

// AsUnits returns the unit-inversion operation of s. Fields always qualify.
func AsUnits[T any](s Ring[T]) (Units[T], bool) {
	if f, ok := AsField(s); ok {
		return fieldUnits[T]{f}, true
	}

	u, ok := s.(Units[T])

	return u, ok
}

type fieldUnits[T any] struct {
	Field[T]
}

func (f fieldUnits[T]) UnitInverse(a T) (T, bool) {
	if f.IsZero(a) {
		return a, false
	}

	return f.Inv(a), true
}

// MustIntegralDomain is AsIntegralDomain that panics with a CapabilityError.
func MustIntegralDomain[T any](op string, s Ring[T]) IntegralDomain[T] {
	d, ok := AsIntegralDomain(s)
	if !ok {
		Violation(op, s, CapIntegralDomain)
	}

	return d
}

func MustField[T any](op string, s Ring[T]) Field[T] {
	f, ok := AsField(s)
	if !ok {
		Violation(op, s, CapField)
	}

	return f
}
