package lattice

import "fmt"

type flatKind uint8

const (
	flatBot flatKind = iota
	flatValue
	flatTop
)

// Flat is a member of the flat lattice over values of T: ⊥ ⊑ c ⊑ ⊤ for every
// constant c, and distinct constants are unordered.
// The zero value is ⊥.
type Flat[T comparable] struct {
	kind  flatKind
	value T
}

// FlatBot returns the flat ⊥ element.
func FlatBot[T comparable]() Flat[T] {
	return Flat[T]{}
}

// FlatTop returns the flat ⊤ element.
func FlatTop[T comparable]() Flat[T] {
	return Flat[T]{kind: flatTop}
}

// FlatValue returns the flat element representing x.
func FlatValue[T comparable](x T) Flat[T] {
	return Flat[T]{kind: flatValue, value: x}
}

func (Flat[T]) Bot() Flat[T] {
	return FlatBot[T]()
}

func (f Flat[T]) IsBot() bool {
	return f.kind == flatBot
}

func (f Flat[T]) IsTop() bool {
	return f.kind == flatTop
}

// Value returns the represented constant. The boolean is false for ⊥ and ⊤.
func (f Flat[T]) Value() (T, bool) {
	return f.value, f.kind == flatValue
}

// Is checks whether the element represents x.
func (f Flat[T]) Is(x T) bool {
	return f.kind == flatValue && f.value == x
}

func (e1 Flat[T]) Leq(e2 Flat[T]) bool {
	switch {
	case e1.kind == flatBot, e2.kind == flatTop:
		return true
	case e1.kind == flatTop, e2.kind == flatBot:
		return false
	default:
		return e1.value == e2.value
	}
}

func (e1 Flat[T]) Join(e2 Flat[T]) Flat[T] {
	switch {
	case e1.Leq(e2):
		return e2
	case e2.Leq(e1):
		return e1
	default:
		return FlatTop[T]()
	}
}

func (f Flat[T]) String() string {
	switch f.kind {
	case flatBot:
		return colorize.Element("⊥")
	case flatTop:
		return colorize.Element("⊤")
	default:
		return colorize.Element(fmt.Sprint(f.value))
	}
}

var _ Element[Flat[int]] = Flat[int]{}
