package lattice

import (
	"fmt"
	"strings"

	"github.com/benbjohnson/immutable"
	"github.com/cs-au-dk/monotone/utils"
	"golang.org/x/exp/slices"
)

// TotalFunction maps every key of K to an element of the range lattice V.
// Keys without an explicit binding map to the default element, which is ⊥
// unless chosen otherwise. Ordering and join are point-wise.
//
// Functions are persistent: Update and Join return new values and leave the
// underlying map of their operands untouched.
type TotalFunction[K comparable, V Element[V]] struct {
	def V
	mp  *immutable.Map[K, V]
}

// MakeTotalFunction constructs the function mapping every key to ⊥ of the
// range lattice rng.
func MakeTotalFunction[K comparable, V Element[V]](rng V, keys ...K) TotalFunction[K, V] {
	bot := rng.Bot()
	mp := immutable.NewMap[K, V](utils.ComparableHasher[K]())
	for _, k := range keys {
		mp = mp.Set(k, bot)
	}
	return TotalFunction[K, V]{def: bot, mp: mp}
}

// MakeTotalFunctionD constructs a function with the given bindings. Other keys
// map to def.
func MakeTotalFunctionD[K comparable, V Element[V]](def V, bindings map[K]V) TotalFunction[K, V] {
	mp := immutable.NewMap[K, V](utils.ComparableHasher[K]())
	for k, v := range bindings {
		mp = mp.Set(k, v)
	}
	return TotalFunction[K, V]{def: def, mp: mp}
}

// WithDefault returns the function with unbound keys mapped to d.
func (f TotalFunction[K, V]) WithDefault(d V) TotalFunction[K, V] {
	f.def = d
	return f
}

func (f TotalFunction[K, V]) Default() V {
	return f.def
}

// Get returns the value of k.
func (f TotalFunction[K, V]) Get(k K) V {
	if v, found := f.lookup(k); found {
		return v
	}
	return f.def
}

func (f TotalFunction[K, V]) lookup(k K) (V, bool) {
	if f.mp == nil {
		var zero V
		return zero, false
	}
	return f.mp.Get(k)
}

// Update returns the function where k is mapped to v.
func (f TotalFunction[K, V]) Update(k K, v V) TotalFunction[K, V] {
	if f.mp == nil {
		f.mp = immutable.NewMap[K, V](utils.ComparableHasher[K]())
	}
	f.mp = f.mp.Set(k, v)
	return f
}

// WeakUpdate returns the function where k is mapped to the join of its
// previous value and v.
func (f TotalFunction[K, V]) WeakUpdate(k K, v V) TotalFunction[K, V] {
	return f.Update(k, f.Get(k).Join(v))
}

// Size returns the number of explicitly bound keys.
func (f TotalFunction[K, V]) Size() int {
	if f.mp == nil {
		return 0
	}
	return f.mp.Len()
}

func (f TotalFunction[K, V]) ForEach(do func(K, V)) {
	if f.mp == nil {
		return
	}
	for it := f.mp.Iterator(); !it.Done(); {
		k, v, _ := it.Next()
		do(k, v)
	}
}

// Keys returns the explicitly bound keys, ordered by their rendering.
func (f TotalFunction[K, V]) Keys() []K {
	keys := make([]K, 0, f.Size())
	f.ForEach(func(k K, _ V) {
		keys = append(keys, k)
	})
	slices.SortFunc(keys, func(a, b K) bool {
		return fmt.Sprint(a) < fmt.Sprint(b)
	})
	return keys
}

// Bot returns the function mapping every key to ⊥. Explicit keys stay bound.
func (f TotalFunction[K, V]) Bot() TotalFunction[K, V] {
	res := TotalFunction[K, V]{def: f.def.Bot(), mp: f.mp}
	f.ForEach(func(k K, v V) {
		if !v.IsBot() {
			res = res.Update(k, v.Bot())
		}
	})
	return res
}

func (f TotalFunction[K, V]) IsBot() bool {
	if !f.def.IsBot() {
		return false
	}

	bot := true
	f.ForEach(func(_ K, v V) {
		bot = bot && v.IsBot()
	})
	return bot
}

// Leq checks that every key maps to a smaller or equal value in o.
func (f TotalFunction[K, V]) Leq(o TotalFunction[K, V]) bool {
	if f.mp == o.mp {
		return f.def.Leq(o.def)
	}
	if !f.def.Leq(o.def) {
		return false
	}

	leq := true
	f.ForEach(func(k K, v V) {
		leq = leq && v.Leq(o.Get(k))
	})
	o.ForEach(func(k K, v V) {
		if _, found := f.lookup(k); !found {
			leq = leq && f.def.Leq(v)
		}
	})
	return leq
}

// Join computes the point-wise least upper bound.
func (f TotalFunction[K, V]) Join(o TotalFunction[K, V]) TotalFunction[K, V] {
	res := TotalFunction[K, V]{def: f.def.Join(o.def), mp: f.mp}

	f.ForEach(func(k K, v V) {
		if _, found := o.lookup(k); !found {
			res = res.Update(k, v.Join(o.def))
		}
	})
	o.ForEach(func(k K, v V) {
		res = res.Update(k, f.Get(k).Join(v))
	})
	return res
}

func (f TotalFunction[K, V]) String() string {
	strs := make([]string, 0, f.Size()+1)
	for _, k := range f.Keys() {
		strs = append(strs, fmt.Sprintf("%s ↦ %s", colorize.Key(fmt.Sprint(k)), f.Get(k)))
	}
	if !f.def.IsBot() {
		strs = append(strs, fmt.Sprintf("%s ↦ %s", colorize.Key("_"), f.def))
	}
	return "[" + strings.Join(strs, ", ") + "]"
}

var _ Element[TotalFunction[string, TwoElement]] = TotalFunction[string, TwoElement]{}
