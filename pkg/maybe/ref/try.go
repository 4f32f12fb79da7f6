package ref

import "github.com/ib-77/maybe/pkg/maybe"

// TryDo runs action on a present source and captures any panic it raises.
// The value slot is always source.
func TryDo[S any](source S, action func(s S)) maybe.Outcome[S] {
	return TryDoFilter(source, action, maybe.AcceptAll)
}

// TryDoFilter captures a failure only when accept reports true; any other
// failure keeps propagating.
func TryDoFilter[S any](source S, action func(s S), accept maybe.Filter) maybe.Outcome[S] {
	if maybe.IsNil(source) {
		return maybe.Completed(source)
	}

	if err := maybe.Guard(func() { action(source) }, accept); err != nil {
		return maybe.Captured(source, err)
	}
	return maybe.Completed(source)
}

// TryDoKinds captures a failure only when it matches one of kinds.
func TryDoKinds[S any](source S, action func(s S), kinds ...maybe.Filter) maybe.Outcome[S] {
	return TryDoFilter(source, action, maybe.AnyOf(kinds...))
}

// TryDoErr captures both an error returned by action and a panic raised by
// it.
func TryDoErr[S any](source S, action func(s S) error) maybe.Outcome[S] {
	if maybe.IsNil(source) {
		return maybe.Completed(source)
	}

	var err error
	if failure := maybe.Guard(func() { err = action(source) }, maybe.AcceptAll); failure != nil {
		return maybe.Captured(source, failure)
	}
	if err != nil {
		return maybe.Captured(source, err)
	}
	return maybe.Completed(source)
}

// TryWith converts a present source and captures any panic raised by
// convert. The value slot is the zero value of R when source is nil or a
// failure was captured.
func TryWith[S, R any](source S, convert func(s S) R) maybe.Outcome[R] {
	return TryWithFilter(source, convert, maybe.AcceptAll)
}

func TryWithFilter[S, R any](source S, convert func(s S) R, accept maybe.Filter) maybe.Outcome[R] {
	if maybe.IsNil(source) {
		var zero R
		return maybe.Completed(zero)
	}

	out, err := maybe.GuardValue(func() R { return convert(source) }, accept)
	if err != nil {
		return maybe.Captured(out, err)
	}
	return maybe.Completed(out)
}

func TryWithKinds[S, R any](source S, convert func(s S) R, kinds ...maybe.Filter) maybe.Outcome[R] {
	return TryWithFilter(source, convert, maybe.AnyOf(kinds...))
}

// TryWithErr captures both a returned error and a panic. On failure the
// value slot is the zero value of R.
func TryWithErr[S, R any](source S, convert func(s S) (R, error)) maybe.Outcome[R] {
	var zero R
	if maybe.IsNil(source) {
		return maybe.Completed(zero)
	}

	var (
		out R
		err error
	)
	if failure := maybe.Guard(func() { out, err = convert(source) }, maybe.AcceptAll); failure != nil {
		return maybe.Captured(zero, failure)
	}
	if err != nil {
		return maybe.Captured(zero, err)
	}
	return maybe.Completed(out)
}
