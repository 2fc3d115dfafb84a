package framework

// TransferFunction maps the abstract state before an edge to the abstract
// state after it, given the action of the edge. Apply is only called with
// actions the function is applicable to, and must be monotone in the state.
type TransferFunction[K any, V any] interface {
	ApplicableTo(action K) bool
	Apply(action K, state V) V
}

// Transfer is a transfer function applicable to every action.
type Transfer[K any, V any] func(action K, state V) V

func (Transfer[K, V]) ApplicableTo(K) bool {
	return true
}

func (f Transfer[K, V]) Apply(action K, state V) V {
	return f(action, state)
}

type typed[K any, A any, V any] struct {
	f func(A, V) V
}

// OfType creates a transfer function applicable to the actions of dynamic
// type A.
func OfType[K any, A any, V any](f func(action A, state V) V) TransferFunction[K, V] {
	return typed[K, A, V]{f}
}

func (typed[K, A, V]) ApplicableTo(action K) bool {
	_, ok := any(action).(A)
	return ok
}

func (t typed[K, A, V]) Apply(action K, state V) V {
	return t.f(any(action).(A), state)
}

type guarded[K any, V any] struct {
	pred func(K) bool
	f    func(K, V) V
}

// When creates a transfer function applicable to the actions satisfying pred.
func When[K any, V any](pred func(action K) bool, f func(action K, state V) V) TransferFunction[K, V] {
	return guarded[K, V]{pred, f}
}

func (g guarded[K, V]) ApplicableTo(action K) bool {
	return g.pred(action)
}

func (g guarded[K, V]) Apply(action K, state V) V {
	return g.f(action, state)
}

// Dispatcher selects a transfer function per action. The first function in
// the list that is applicable to an action is used for it.
type Dispatcher[K any, V any] []TransferFunction[K, V]

// Dispatch creates a dispatcher over the given transfer functions, in order of
// precedence.
func Dispatch[K any, V any](fs ...TransferFunction[K, V]) Dispatcher[K, V] {
	return Dispatcher[K, V](fs)
}

// Lookup finds the transfer function used for action.
func (d Dispatcher[K, V]) Lookup(action K) (TransferFunction[K, V], bool) {
	for _, f := range d {
		if f.ApplicableTo(action) {
			return f, true
		}
	}
	return nil, false
}

func (d Dispatcher[K, V]) ApplicableTo(action K) bool {
	_, found := d.Lookup(action)
	return found
}

// Apply applies the transfer function selected for action. It panics with a
// *DispatchError if none is applicable.
func (d Dispatcher[K, V]) Apply(action K, state V) V {
	f, found := d.Lookup(action)
	if !found {
		panic(&DispatchError{From: -1, To: -1, Action: action})
	}
	return f.Apply(action, state)
}

var (
	_ TransferFunction[any, int] = Transfer[any, int](nil)
	_ TransferFunction[any, int] = Dispatcher[any, int](nil)
)
