package worklist

import (
	"github.com/cs-au-dk/monotone/utils/pq"
	"github.com/pkg/errors"
)

// Worklist is a collection of pending work items with an extraction order.
type Worklist[T any] interface {
	Add(el T)
	GetNext() T
	IsEmpty() bool
	Len() int
}

// Start worklist execution with provided `starting` element and an iteration
// function. The iteration function exposes the next element and a function with
// which to add more elements to the worklist.
func Start[T any](start T, do func(next T, add func(el T))) {
	StartV([]T{start}, do)
}

// Start worklist execution with a preloaded queue and an iteration
// function. The iteration function exposes the next element and a function with
// which to add more elements to the worklist.
func StartV[T any](start []T, do func(next T, add func(el T))) {
	W := Empty[T]()
	for _, e := range start {
		W.Add(e)
	}

	Process[T](W, do)
}

// Process drains the worklist, calling do on every extracted element.
func Process[T any](w Worklist[T], do func(next T, add func(element T))) {
	for !w.IsEmpty() {
		do(w.GetNext(), w.Add)
	}
}

// FIFO is a queue. Duplicates are kept.
type FIFO[T any] struct {
	list []T
}

func Empty[T any]() *FIFO[T] {
	return &FIFO[T]{}
}

func (w *FIFO[T]) GetNext() (ret T) {
	if len(w.list) == 0 {
		return
	}
	next := w.list[0]
	w.list = w.list[1:]
	return next
}

func (w *FIFO[T]) IsEmpty() bool {
	return len(w.list) == 0
}

func (w *FIFO[T]) Len() int {
	return len(w.list)
}

func (w *FIFO[T]) Add(el T) {
	w.list = append(w.list, el)
}

// LIFO is a stack. Duplicates are kept.
type LIFO[T any] struct {
	list []T
}

func EmptyLIFO[T any]() *LIFO[T] {
	return &LIFO[T]{}
}

func (w *LIFO[T]) GetNext() (ret T) {
	n := len(w.list)
	if n == 0 {
		return
	}
	next := w.list[n-1]
	w.list = w.list[:n-1]
	return next
}

func (w *LIFO[T]) IsEmpty() bool {
	return len(w.list) == 0
}

func (w *LIFO[T]) Len() int {
	return len(w.list)
}

func (w *LIFO[T]) Add(el T) {
	w.list = append(w.list, el)
}

// Priority extracts the least element according to a comparison function.
// An element that is already pending is not added again.
type Priority[T comparable] struct {
	queue pq.PriorityQueue[T]
}

func EmptyPriority[T comparable](less func(a, b T) bool) *Priority[T] {
	return &Priority[T]{pq.Empty(less)}
}

func (w *Priority[T]) GetNext() (ret T) {
	if w.queue.IsEmpty() {
		return
	}
	return w.queue.GetNext()
}

func (w *Priority[T]) IsEmpty() bool {
	return w.queue.IsEmpty()
}

func (w *Priority[T]) Len() int {
	return w.queue.Len()
}

func (w *Priority[T]) Add(el T) {
	w.queue.Add(el)
}

const (
	KindFIFO     = "fifo"
	KindLIFO     = "lifo"
	KindPriority = "rpo"
)

// Make creates an empty worklist of the given kind. The less function is only
// used by priority worklists and must be provided for them.
func Make[T comparable](kind string, less func(a, b T) bool) (Worklist[T], error) {
	switch kind {
	case KindFIFO:
		return Empty[T](), nil
	case KindLIFO:
		return EmptyLIFO[T](), nil
	case KindPriority:
		if less == nil {
			return nil, errors.Errorf("worklist %q requires an ordering", kind)
		}
		return EmptyPriority(less), nil
	}
	return nil, errors.Errorf("unknown worklist kind %q", kind)
}

var (
	_ Worklist[int] = (*FIFO[int])(nil)
	_ Worklist[int] = (*LIFO[int])(nil)
	_ Worklist[int] = (*Priority[int])(nil)
)
