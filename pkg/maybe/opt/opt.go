package opt

import "github.com/ib-77/maybe/pkg/maybe"

func Do[T any](source maybe.Option[T], action func(v T)) maybe.Option[T] {
	if v, ok := source.Get(); ok {
		action(v)
	}
	return source
}

func DoOr[T any](source maybe.Option[T], action func(v T), onAbsent func()) maybe.Option[T] {
	if v, ok := source.Get(); ok {
		action(v)
	} else if onAbsent != nil {
		onAbsent()
	}
	return source
}

func DoSelect[T, R any](source maybe.Option[T], action func(v T) R, onAbsent func()) R {
	if v, ok := source.Get(); ok {
		return action(v)
	}
	if onAbsent != nil {
		onAbsent()
	}
	var zero R
	return zero
}

// With returns convert(v) for a present source and the zero value of R
// otherwise.
func With[T, R any](source maybe.Option[T], convert func(v T) R) R {
	if v, ok := source.Get(); ok {
		return convert(v)
	}
	var zero R
	return zero
}

// WithOption is With keeping absence visible in the result.
func WithOption[T, R any](source maybe.Option[T], convert func(v T) R) maybe.Option[R] {
	if v, ok := source.Get(); ok {
		return maybe.Some(convert(v))
	}
	return maybe.None[R]()
}

func Return[T, R any](source maybe.Option[T], convert func(v T) R, defaultV R) R {
	if v, ok := source.Get(); ok {
		return convert(v)
	}
	return defaultV
}

func If[T any](source maybe.Option[T], condition func(v T) bool) maybe.Option[T] {
	if v, ok := source.Get(); ok && condition(v) {
		return source
	}
	return maybe.None[T]()
}

func IfNot[T any](source maybe.Option[T], condition func(v T) bool) maybe.Option[T] {
	if v, ok := source.Get(); ok && !condition(v) {
		return source
	}
	return maybe.None[T]()
}

// Recover returns the payload, or supply() when source is absent.
func Recover[T any](source maybe.Option[T], supply func() T) T {
	if v, ok := source.Get(); ok {
		return v
	}
	return supply()
}

// OrRecover is Recover that stays an Option.
func OrRecover[T any](source maybe.Option[T], supply func() maybe.Option[T]) maybe.Option[T] {
	if source.HasValue() {
		return source
	}
	return supply()
}

// OfType asserts the payload to R. An absent source or a payload of another
// type yields an absent Option.
func OfType[R, T any](source maybe.Option[T]) maybe.Option[R] {
	v, ok := source.Get()
	if !ok {
		return maybe.None[R]()
	}
	r, ok := any(v).(R)
	return maybe.Of(r, ok)
}

func Any[T any](source maybe.Option[T]) bool {
	return source.HasValue()
}

func IsNull[T any](source maybe.Option[T]) bool {
	return source.IsAbsent()
}

func IsNotNull[T any](source maybe.Option[T]) bool {
	return source.HasValue()
}
