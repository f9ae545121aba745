package fwi

import (
	"errors"
	"fmt"
	"math"
)

// Invalid is returned by every raw formula when one of its primary inputs is
// outside the documented domain. Downstream formulas do not recognise it: a
// sentinel fed back in as an ordinary input yields another, meaningless,
// number. Callers composing raw formulas must check for it themselves, or use
// the orchestrator which does.
const Invalid = -98.0

// ErrDomain is the single error category of the engine: a primary input was
// outside its valid range.
var ErrDomain = errors.New("fwi: input outside valid domain")

// DomainError names the index that could not be computed.
type DomainError struct {
	Index string
}

func (e *DomainError) Error() string {
	return fmt.Sprintf("fwi: %s: input outside valid domain", e.Index)
}

func (e *DomainError) Unwrap() error { return ErrDomain }

// Value wraps a raw formula result so the sentinel can be handled explicitly.
type Value struct {
	V float64
}

// Valid reports whether v holds a finite computed value rather than the
// sentinel. Formulas that do not bound their inputs, such as ISI with an
// extreme wind speed, overflow to infinity instead of returning the sentinel.
func (v Value) Valid() bool {
	return v.V != Invalid && !math.IsInf(v.V, 0) && !math.IsNaN(v.V)
}

// Check returns a *DomainError naming index when v is the sentinel or not
// finite.
func (v Value) Check(index string) (float64, error) {
	if !v.Valid() {
		return Invalid, &DomainError{Index: index}
	}
	return v.V, nil
}

// IsInvalid reports whether x is the domain violation sentinel.
func IsInvalid(x float64) bool { return x == Invalid }

// Violations lists, in order, the index named by every DomainError joined
// into err.
func Violations(err error) []string {
	if err == nil {
		return nil
	}
	var out []string
	var walk func(error)
	walk = func(e error) {
		var de *DomainError
		switch x := e.(type) {
		case interface{ Unwrap() []error }:
			for _, inner := range x.Unwrap() {
				walk(inner)
			}
		default:
			if errors.As(e, &de) {
				out = append(out, de.Index)
			}
		}
	}
	walk(err)
	return out
}
