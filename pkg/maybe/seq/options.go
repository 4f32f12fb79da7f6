package seq

import (
	"iter"

	"github.com/ib-77/maybe/pkg/maybe"
)

func DoOptions[T any](source iter.Seq[maybe.Option[T]], action func(v T)) iter.Seq[maybe.Option[T]] {
	if source == nil {
		return source
	}
	for element := range source {
		if v, ok := element.Get(); ok {
			action(v)
		}
	}
	return source
}

func DoOptionsIndexed[T any](source iter.Seq[maybe.Option[T]],
	action func(v T, i int)) iter.Seq[maybe.Option[T]] {
	if source == nil {
		return source
	}
	i := -1
	for element := range source {
		i++
		if v, ok := element.Get(); ok {
			action(v, i)
		}
	}
	return source
}

func WithOptions[T, R any](source iter.Seq[maybe.Option[T]], convert func(v T) R) iter.Seq[R] {
	return func(yield func(R) bool) {
		if source == nil {
			return
		}
		for element := range source {
			var out R
			if v, ok := element.Get(); ok {
				out = convert(v)
			}
			if !yield(out) {
				return
			}
		}
	}
}

func WithOptionsIndexed[T, R any](source iter.Seq[maybe.Option[T]], convert func(v T, i int) R) iter.Seq[R] {
	return func(yield func(R) bool) {
		if source == nil {
			return
		}
		i := -1
		for element := range source {
			i++
			var out R
			if v, ok := element.Get(); ok {
				out = convert(v, i)
			}
			if !yield(out) {
				return
			}
		}
	}
}
