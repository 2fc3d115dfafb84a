package testutil

import (
	"fmt"

	"github.com/cs-au-dk/monotone/analysis/lattice"
)

// Sign abstracts an integer by its sign.
type Sign int

const (
	Neg Sign = iota
	Zero
	Pos
)

func (s Sign) String() string {
	switch s {
	case Neg:
		return "-"
	case Zero:
		return "0"
	case Pos:
		return "+"
	}
	return fmt.Sprintf("Sign(%d)", int(s))
}

// SignOf returns the sign of n.
func SignOf(n int) Sign {
	switch {
	case n < 0:
		return Neg
	case n == 0:
		return Zero
	}
	return Pos
}

// Signs is a set of possible signs.
type Signs = lattice.PowerSet[Sign]

// SignState maps variables to their possible signs.
type SignState = lattice.TotalFunction[string, Signs]

// MakeSigns creates a set of signs.
func MakeSigns(signs ...Sign) Signs {
	return lattice.MakePowerSet(signs...)
}

// AnySign is the set of all signs.
func AnySign() Signs {
	return MakeSigns(Neg, Zero, Pos)
}

// MakeSignState maps every given variable to ∅.
func MakeSignState(vars ...string) SignState {
	return lattice.MakeTotalFunction[string](MakeSigns(), vars...)
}
