package utils

import (
	"fmt"
	"hash/fnv"
	"reflect"

	"github.com/benbjohnson/immutable"
)

// comparableHasher hashes any comparable value. Equality is Go equality.
type comparableHasher[T comparable] struct{}

// Equal checks Go equality between a and b.
func (comparableHasher[T]) Equal(a, b T) bool { return a == b }

// Hash computes a hash of v. Pointer-like values hash their address, everything
// else hashes its Go-syntax representation, which is stable for equal values.
func (comparableHasher[T]) Hash(v T) uint32 {
	rv := reflect.ValueOf(any(v))
	switch rv.Kind() {
	case reflect.Ptr, reflect.Chan, reflect.UnsafePointer:
		p := rv.Pointer()
		return uint32(p ^ (p >> 32))
	}

	h := fnv.New32a()
	fmt.Fprintf(h, "%#v", v)
	return h.Sum32()
}

// ComparableHasher is a hasher for any comparable type. It lets immutable maps
// key on user types that the library's built-in hashers reject.
func ComparableHasher[T comparable]() immutable.Hasher[T] { return comparableHasher[T]{} }

var _ immutable.Hasher[any] = comparableHasher[any]{}
