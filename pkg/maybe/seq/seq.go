package seq

import (
	"iter"

	"github.com/ib-77/maybe/pkg/maybe"
)

// Do calls action for every non-nil element and returns source.
func Do[S any](source iter.Seq[S], action func(s S)) iter.Seq[S] {
	if source == nil {
		return source
	}
	for element := range source {
		if !maybe.IsNil(element) {
			action(element)
		}
	}
	return source
}

// DoIndexed is Do with the zero-based position of each element in source,
// counting skipped nil elements.
func DoIndexed[S any](source iter.Seq[S], action func(s S, i int)) iter.Seq[S] {
	if source == nil {
		return source
	}
	i := -1
	for element := range source {
		i++
		if !maybe.IsNil(element) {
			action(element, i)
		}
	}
	return source
}

// With lazily maps every element, yielding the zero value of R in place of
// nil elements.
func With[S, R any](source iter.Seq[S], convert func(s S) R) iter.Seq[R] {
	return func(yield func(R) bool) {
		if source == nil {
			return
		}
		for element := range source {
			var out R
			if !maybe.IsNil(element) {
				out = convert(element)
			}
			if !yield(out) {
				return
			}
		}
	}
}

func WithIndexed[S, R any](source iter.Seq[S], convert func(s S, i int) R) iter.Seq[R] {
	return func(yield func(R) bool) {
		if source == nil {
			return
		}
		i := -1
		for element := range source {
			i++
			var out R
			if !maybe.IsNil(element) {
				out = convert(element, i)
			}
			if !yield(out) {
				return
			}
		}
	}
}
