package lattice

import "github.com/fatih/color"

var colorize = struct {
	Lattice func(...interface{}) string
	Element func(...interface{}) string
	Key     func(...interface{}) string
}{
	Lattice: color.New(color.FgHiBlue).SprintFunc(),
	Element: color.New(color.FgCyan).SprintFunc(),
	Key:     color.New(color.FgYellow).SprintFunc(),
}

// Element is a member of a complete lattice. Every element doubles as an
// instance of its lattice: Bot returns the least element of the lattice the
// receiver belongs to.
//
// Implementations are immutable values. Join must return a new value and never
// modify either operand. Leq must be a partial order consistent with Join, i.e.
// a.Leq(a.Join(b)) and b.Leq(a.Join(b)) always hold.
type Element[E any] interface {
	// Bot returns ⊥ of the receiver's lattice.
	Bot() E
	// IsBot checks whether the receiver is ⊥.
	IsBot() bool
	// Leq computes receiver ⊑ argument.
	Leq(E) bool
	// Join computes the least upper bound of the receiver and the argument.
	Join(E) E
	String() string
}

// Eq checks lattice equality, i.e. a ⊑ b and b ⊑ a.
func Eq[E Element[E]](a, b E) bool {
	return a.Leq(b) && b.Leq(a)
}

// Geq computes a ⊒ b.
func Geq[E Element[E]](a, b E) bool {
	return b.Leq(a)
}

// Unordered checks that neither a ⊑ b nor b ⊑ a.
func Unordered[E Element[E]](a, b E) bool {
	return !a.Leq(b) && !b.Leq(a)
}

// JoinAll computes the least upper bound of all given elements. The result for
// no elements is bot.
func JoinAll[E Element[E]](bot E, es ...E) E {
	res := bot
	for _, e := range es {
		res = res.Join(e)
	}
	return res
}
