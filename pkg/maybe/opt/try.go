package opt

import "github.com/ib-77/maybe/pkg/maybe"

// TryDo runs action on the payload and captures any panic. The value slot is
// always source, absent or not.
func TryDo[T any](source maybe.Option[T], action func(v T)) maybe.Outcome[maybe.Option[T]] {
	return TryDoFilter(source, action, maybe.AcceptAll)
}

func TryDoFilter[T any](source maybe.Option[T], action func(v T),
	accept maybe.Filter) maybe.Outcome[maybe.Option[T]] {

	v, ok := source.Get()
	if !ok {
		return maybe.Completed(source)
	}

	if err := maybe.Guard(func() { action(v) }, accept); err != nil {
		return maybe.Captured(source, err)
	}
	return maybe.Completed(source)
}

func TryDoKinds[T any](source maybe.Option[T], action func(v T),
	kinds ...maybe.Filter) maybe.Outcome[maybe.Option[T]] {
	return TryDoFilter(source, action, maybe.AnyOf(kinds...))
}

func TryDoErr[T any](source maybe.Option[T], action func(v T) error) maybe.Outcome[maybe.Option[T]] {
	v, ok := source.Get()
	if !ok {
		return maybe.Completed(source)
	}

	var err error
	if failure := maybe.Guard(func() { err = action(v) }, maybe.AcceptAll); failure != nil {
		return maybe.Captured(source, failure)
	}
	if err != nil {
		return maybe.Captured(source, err)
	}
	return maybe.Completed(source)
}

func TryWith[T, R any](source maybe.Option[T], convert func(v T) R) maybe.Outcome[R] {
	return TryWithFilter(source, convert, maybe.AcceptAll)
}

func TryWithFilter[T, R any](source maybe.Option[T], convert func(v T) R,
	accept maybe.Filter) maybe.Outcome[R] {

	v, ok := source.Get()
	if !ok {
		var zero R
		return maybe.Completed(zero)
	}

	out, err := maybe.GuardValue(func() R { return convert(v) }, accept)
	if err != nil {
		return maybe.Captured(out, err)
	}
	return maybe.Completed(out)
}

func TryWithKinds[T, R any](source maybe.Option[T], convert func(v T) R,
	kinds ...maybe.Filter) maybe.Outcome[R] {
	return TryWithFilter(source, convert, maybe.AnyOf(kinds...))
}

func TryWithErr[T, R any](source maybe.Option[T], convert func(v T) (R, error)) maybe.Outcome[R] {
	var zero R
	v, ok := source.Get()
	if !ok {
		return maybe.Completed(zero)
	}

	var (
		out R
		err error
	)
	if failure := maybe.Guard(func() { out, err = convert(v) }, maybe.AcceptAll); failure != nil {
		return maybe.Captured(zero, failure)
	}
	if err != nil {
		return maybe.Captured(zero, err)
	}
	return maybe.Completed(out)
}
