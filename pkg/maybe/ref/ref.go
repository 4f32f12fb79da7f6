package ref

import "github.com/ib-77/maybe/pkg/maybe"

func Do[S any](source S, action func(s S)) S {
	if !maybe.IsNil(source) {
		action(source)
	}
	return source
}

// DoOr is Do with onAbsent invoked for a nil source. A nil onAbsent does
// nothing.
func DoOr[S any](source S, action func(s S), onAbsent func()) S {
	if !maybe.IsNil(source) {
		action(source)
	} else if onAbsent != nil {
		onAbsent()
	}
	return source
}

func DoSelect[S, R any](source S, action func(s S) R, onAbsent func()) R {
	if !maybe.IsNil(source) {
		return action(source)
	}
	if onAbsent != nil {
		onAbsent()
	}
	var zero R
	return zero
}

func With[S, R any](source S, convert func(s S) R) R {
	if !maybe.IsNil(source) {
		return convert(source)
	}
	var zero R
	return zero
}

func Return[S, R any](source S, convert func(s S) R, defaultV R) R {
	if !maybe.IsNil(source) {
		return convert(source)
	}
	return defaultV
}

func If[S any](source S, condition func(s S) bool) S {
	if !maybe.IsNil(source) && condition(source) {
		return source
	}
	var zero S
	return zero
}

func IfNot[S any](source S, condition func(s S) bool) S {
	if !maybe.IsNil(source) && !condition(source) {
		return source
	}
	var zero S
	return zero
}

// Recover returns source, or the result of supply when source is nil.
func Recover[S any](source S, supply func() S) S {
	if !maybe.IsNil(source) {
		return source
	}
	return supply()
}

// OfType returns source as R when its dynamic type implements or equals R,
// and the zero value of R otherwise.
func OfType[R any](source any) R {
	if r, ok := source.(R); ok {
		return r
	}
	var zero R
	return zero
}

func Any[S any](source S) bool {
	return !maybe.IsNil(source)
}

func IsNull[S any](source S) bool {
	return maybe.IsNil(source)
}

func IsNotNull[S any](source S) bool {
	return !maybe.IsNil(source)
}
