// Package index provides bounds-safe positional lookups on slices.
package index

import "github.com/ib-77/maybe/pkg/maybe"

// At returns source[i], or the zero value when source is nil or i is out of
// range.
func At[S any](source []S, i int) S {
	if i >= 0 && i < len(source) {
		return source[i]
	}
	var zero S
	return zero
}

func AtOr[S any](source []S, i int, defaultV S) S {
	if i >= 0 && i < len(source) {
		return source[i]
	}
	return defaultV
}

func AtOption[S any](source []S, i int) maybe.Option[S] {
	if i >= 0 && i < len(source) {
		return maybe.Some(source[i])
	}
	return maybe.None[S]()
}
