// Package testutil provides assertions over lattice elements and constraint
// systems, and a small lattice of integer signs to build sample analyses with.
package testutil

import (
	"fmt"
	"testing"

	"github.com/cs-au-dk/monotone/analysis/constraint"
	"github.com/cs-au-dk/monotone/analysis/lattice"
)

// AssertLatticeEq fails the test unless expected and actual are equal in
// their lattice.
func AssertLatticeEq[V lattice.Element[V]](t testing.TB, expected, actual V, msgAndArgs ...any) bool {
	t.Helper()
	switch {
	case !expected.Leq(actual):
		t.Errorf("%sexpected %s, got smaller or unordered %s", prefix(msgAndArgs), expected, actual)
		return false
	case !actual.Leq(expected):
		t.Errorf("%sexpected %s, got larger %s", prefix(msgAndArgs), expected, actual)
		return false
	}
	return true
}

func prefix(msgAndArgs []any) string {
	if len(msgAndArgs) == 0 {
		return ""
	}
	if format, ok := msgAndArgs[0].(string); ok {
		return fmt.Sprintf(format, msgAndArgs[1:]...) + ": "
	}
	return ""
}

// AssertValues checks the cached values of the given flow variables.
func AssertValues[V lattice.Element[V]](t testing.TB, cs *constraint.System[V], expected map[int]V) bool {
	t.Helper()
	ok := true
	for v, value := range expected {
		ok = AssertLatticeEq(t, value, cs.ValueOf(v), "flow variable %d", v) && ok
	}
	return ok
}

// AssertAllValues checks the cached values of all flow variables, in order.
func AssertAllValues[V lattice.Element[V]](t testing.TB, cs *constraint.System[V], expected ...V) bool {
	t.Helper()
	if n := cs.NumberOfVariables(); n != len(expected) {
		t.Errorf("expected %d flow variables, got %d", len(expected), n)
		return false
	}

	ok := true
	for v, value := range expected {
		ok = AssertLatticeEq(t, value, cs.ValueOf(v), "flow variable %d", v) && ok
	}
	return ok
}
