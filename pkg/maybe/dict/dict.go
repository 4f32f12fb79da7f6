// Package dict contains nil-safe helpers for maps: iteration, and lookups
// that fall back to zero, a default, or an absent Option.
package dict

import (
	"golang.org/x/exp/constraints"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"github.com/ib-77/maybe/pkg/maybe"
)

// Do calls action for every entry in range order and returns source.
func Do[K comparable, V any](source map[K]V, action func(k K, v V)) map[K]V {
	if source == nil {
		return source
	}
	for k, v := range source {
		action(k, v)
	}
	return source
}

// DoSorted is Do visiting entries in ascending key order.
func DoSorted[K constraints.Ordered, V any](source map[K]V, action func(k K, v V)) map[K]V {
	if source == nil {
		return source
	}
	keys := maps.Keys(source)
	slices.Sort(keys)
	for _, k := range keys {
		action(k, source[k])
	}
	return source
}

func With[K comparable, V any](source map[K]V, key K) V {
	if source != nil {
		if v, ok := source[key]; ok {
			return v
		}
	}
	var zero V
	return zero
}

func Return[K comparable, V any](source map[K]V, key K, defaultV V) V {
	if source != nil {
		if v, ok := source[key]; ok {
			return v
		}
	}
	return defaultV
}

// Lookup keeps a missing key distinct from a stored zero value.
func Lookup[K comparable, V any](source map[K]V, key K) maybe.Option[V] {
	if source == nil {
		return maybe.None[V]()
	}
	v, ok := source[key]
	return maybe.Of(v, ok)
}
