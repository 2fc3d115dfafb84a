package lattice

import (
	"fmt"
	"strings"

	"github.com/benbjohnson/immutable"
	"github.com/cs-au-dk/monotone/utils"
	"golang.org/x/exp/slices"
)

// PowerSet is a finite set of values of T, ordered by inclusion.
// Sets are persistent: Add, Remove and Join never modify their operands.
// The zero value is the empty set.
type PowerSet[T comparable] struct {
	hasher immutable.Hasher[T]
	mp     *immutable.Map[T, struct{}]
}

// MakePowerSet constructs the set containing elems.
func MakePowerSet[T comparable](elems ...T) PowerSet[T] {
	return MakePowerSetH(nil, elems...)
}

// MakePowerSetH constructs the set containing elems, hashing members with the
// given hasher. A nil hasher hashes members by Go equality.
func MakePowerSetH[T comparable](hasher immutable.Hasher[T], elems ...T) PowerSet[T] {
	s := PowerSet[T]{hasher: hasher}
	for _, x := range elems {
		s = s.Add(x)
	}
	return s
}

func (s PowerSet[T]) getHasher() immutable.Hasher[T] {
	if s.hasher == nil {
		return utils.ComparableHasher[T]()
	}
	return s.hasher
}

// Bot returns the empty set.
func (s PowerSet[T]) Bot() PowerSet[T] {
	return PowerSet[T]{hasher: s.hasher}
}

func (s PowerSet[T]) IsBot() bool {
	return s.Size() == 0
}

func (s PowerSet[T]) Size() int {
	if s.mp == nil {
		return 0
	}
	return s.mp.Len()
}

func (s PowerSet[T]) Contains(x T) bool {
	if s.mp == nil {
		return false
	}
	_, found := s.mp.Get(x)
	return found
}

// Add returns the set extended with x.
func (s PowerSet[T]) Add(x T) PowerSet[T] {
	if s.Contains(x) {
		return s
	}
	if s.mp == nil {
		s.mp = immutable.NewMap[T, struct{}](s.getHasher())
	}
	s.mp = s.mp.Set(x, struct{}{})
	return s
}

// Remove returns the set without x.
func (s PowerSet[T]) Remove(x T) PowerSet[T] {
	if !s.Contains(x) {
		return s
	}
	s.mp = s.mp.Delete(x)
	return s
}

func (s PowerSet[T]) ForEach(do func(T)) {
	if s.mp == nil {
		return
	}
	for it := s.mp.Iterator(); !it.Done(); {
		x, _, _ := it.Next()
		do(x)
	}
}

// Elements returns the members of the set, ordered by their rendering.
func (s PowerSet[T]) Elements() []T {
	res := make([]T, 0, s.Size())
	s.ForEach(func(x T) {
		res = append(res, x)
	})
	slices.SortFunc(res, func(a, b T) bool {
		return fmt.Sprint(a) < fmt.Sprint(b)
	})
	return res
}

// Leq checks set inclusion.
func (s PowerSet[T]) Leq(o PowerSet[T]) bool {
	if s.Size() > o.Size() {
		return false
	}
	if s.mp == o.mp {
		return true
	}

	leq := true
	s.ForEach(func(x T) {
		leq = leq && o.Contains(x)
	})
	return leq
}

// Join computes set union.
func (s PowerSet[T]) Join(o PowerSet[T]) PowerSet[T] {
	if s.Size() < o.Size() {
		s, o = o, s
	}
	if o.Size() == 0 || s.mp == o.mp {
		return s
	}

	o.ForEach(func(x T) {
		s = s.Add(x)
	})
	return s
}

func (s PowerSet[T]) String() string {
	if s.Size() == 0 {
		return colorize.Element("∅")
	}

	strs := make([]string, 0, s.Size())
	for _, x := range s.Elements() {
		strs = append(strs, colorize.Element(fmt.Sprint(x)))
	}
	return "{" + strings.Join(strs, ", ") + "}"
}

var _ Element[PowerSet[int]] = PowerSet[int]{}
